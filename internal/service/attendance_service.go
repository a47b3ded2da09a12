package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/MuefXyz/res-Smp-Ash-sub001/internal/dto"
	"github.com/MuefXyz/res-Smp-Ash-sub001/internal/model"
	"github.com/MuefXyz/res-Smp-Ash-sub001/internal/notify"
	"github.com/MuefXyz/res-Smp-Ash-sub001/internal/repository"
	"github.com/MuefXyz/res-Smp-Ash-sub001/pkg/dateutil"
)

var (
	ErrAlreadyCheckedIn  = errors.New("anda sudah melakukan check-in hari ini")
	ErrAlreadyCheckedOut = errors.New("anda sudah melakukan check-out hari ini")
	ErrNoCheckInFound    = errors.New("belum ada check-in hari ini")
	ErrInvalidDate       = errors.New("format tanggal tidak valid, gunakan YYYY-MM-DD")
	ErrInvalidMonth      = errors.New("format bulan tidak valid, gunakan YYYY-MM")
)

// AttendanceService is the daily check-in/check-out state machine plus the
// absence ledger. Per (user, local calendar day) the states are
// NONE → CHECKED_IN → CHECKED_OUT; the store's (user_id, date) unique
// constraint guarantees at most one row per day even under concurrency.
type AttendanceService interface {
	// CheckIn transitions NONE → CHECKED_IN. For GURU the schedule resolver
	// annotates the row; STAFF rows are never scheduled.
	CheckIn(ctx context.Context, userID, role string) (*dto.AttendanceResponse, error)
	// CheckOut transitions CHECKED_IN → CHECKED_OUT.
	CheckOut(ctx context.Context, userID string) (*dto.AttendanceResponse, error)
	Status(ctx context.Context, userID string) (*dto.AttendanceStatusResponse, error)
	ListByDate(ctx context.Context, date string) ([]dto.AttendanceResponse, error)
	MonthlyRecap(ctx context.Context, month string) (*dto.MonthlyRecapResponse, error)

	// SubmitAbsence upserts the caller's absence-ledger row for today.
	SubmitAbsence(ctx context.Context, userID string, req *dto.SubmitAbsenceRequest) (*dto.AbsenceResponse, error)
	ListAbsencesByDate(ctx context.Context, date string) ([]dto.AbsenceResponse, error)
}

type attendanceService struct {
	repo     *repository.Repository
	notifier notify.Notifier
	logger   *zap.Logger
}

// NewAttendanceService creates the AttendanceService.
func NewAttendanceService(repo *repository.Repository, notifier notify.Notifier, logger *zap.Logger) AttendanceService {
	return &attendanceService{repo: repo, notifier: notifier, logger: logger}
}

// ────────────────────── CheckIn ──────────────────────

func (s *attendanceService) CheckIn(ctx context.Context, userID, role string) (*dto.AttendanceResponse, error) {
	now := time.Now()
	day := dateutil.DayStart(now)

	existing, err := s.repo.Attendance.GetByUserAndDate(ctx, userID, day)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("gagal mengambil absensi hari ini", zap.Error(err))
		return nil, err
	}
	if existing != nil && existing.CheckInTime != nil {
		return nil, ErrAlreadyCheckedIn
	}

	// Schedule annotation: GURU only; STAFF always checks in unscheduled.
	isScheduled := false
	var scheduleID *string
	if role == model.RoleGuru {
		schedule, err := s.repo.Schedule.GetActiveByTeacherAndDay(ctx, userID, dateutil.IsoWeekday(now))
		switch {
		case err == nil:
			isScheduled = true
			scheduleID = &schedule.ScheduleID
		case errors.Is(err, gorm.ErrRecordNotFound):
			// No slot today; the check-in is still valid.
		default:
			s.logger.Error("gagal mengambil jadwal guru", zap.Error(err))
			return nil, err
		}
	}

	var log *model.AttendanceLog
	if existing != nil {
		existing.CheckInTime = &now
		existing.Status = model.StatusPresent
		existing.IsScheduled = isScheduled
		existing.ScheduleID = scheduleID
		if err := s.repo.Attendance.Update(ctx, existing); err != nil {
			s.logger.Error("gagal memperbarui absensi", zap.Error(err))
			return nil, err
		}
		log = existing
	} else {
		log = &model.AttendanceLog{
			UserID:      userID,
			Date:        day,
			CheckInTime: &now,
			Status:      model.StatusPresent,
			IsScheduled: isScheduled,
			ScheduleID:  scheduleID,
		}
		if err := s.repo.Attendance.Create(ctx, log); err != nil {
			// A concurrent check-in won the insert race; report it the same
			// as the read-path duplicate.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, ErrAlreadyCheckedIn
			}
			s.logger.Error("gagal menyimpan absensi", zap.Error(err))
			return nil, err
		}
	}

	s.notifier.Dispatch(ctx, []notify.Event{{
		Type:     model.NotifAttendance,
		Title:    "Check-in tercatat",
		Message:  fmt.Sprintf("Check-in pada %s tercatat", now.Format("15:04")),
		Audience: notify.Audience{Roles: []string{model.RoleAdmin}},
	}})

	resp := toAttendanceResponse(log)
	return &resp, nil
}

// ────────────────────── CheckOut ──────────────────────

func (s *attendanceService) CheckOut(ctx context.Context, userID string) (*dto.AttendanceResponse, error) {
	now := time.Now()
	day := dateutil.DayStart(now)

	log, err := s.repo.Attendance.GetByUserAndDate(ctx, userID, day)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoCheckInFound
		}
		s.logger.Error("gagal mengambil absensi hari ini", zap.Error(err))
		return nil, err
	}
	if log.CheckInTime == nil {
		return nil, ErrNoCheckInFound
	}
	if log.CheckOutTime != nil {
		return nil, ErrAlreadyCheckedOut
	}

	// Check-in time and status stay untouched.
	log.CheckOutTime = &now
	if err := s.repo.Attendance.Update(ctx, log); err != nil {
		s.logger.Error("gagal memperbarui absensi", zap.Error(err))
		return nil, err
	}

	resp := toAttendanceResponse(log)
	return &resp, nil
}

// ────────────────────── Status ──────────────────────

func (s *attendanceService) Status(ctx context.Context, userID string) (*dto.AttendanceStatusResponse, error) {
	day := dateutil.DayStart(time.Now())

	log, err := s.repo.Attendance.GetByUserAndDate(ctx, userID, day)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &dto.AttendanceStatusResponse{CanCheckIn: true}, nil
		}
		s.logger.Error("gagal mengambil absensi hari ini", zap.Error(err))
		return nil, err
	}

	resp := toAttendanceResponse(log)
	return &dto.AttendanceStatusResponse{
		CanCheckIn:  log.CheckInTime == nil,
		CanCheckOut: log.CheckInTime != nil && log.CheckOutTime == nil,
		Attendance:  &resp,
	}, nil
}

// ────────────────────── ListByDate ──────────────────────

func (s *attendanceService) ListByDate(ctx context.Context, date string) ([]dto.AttendanceResponse, error) {
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return nil, ErrInvalidDate
	}

	logs, err := s.repo.Attendance.ListByDate(ctx, day)
	if err != nil {
		s.logger.Error("gagal mengambil daftar absensi", zap.Error(err))
		return nil, err
	}

	result := make([]dto.AttendanceResponse, 0, len(logs))
	for i := range logs {
		result = append(result, toAttendanceResponse(&logs[i]))
	}
	return result, nil
}

// ────────────────────── MonthlyRecap ──────────────────────

func (s *attendanceService) MonthlyRecap(ctx context.Context, month string) (*dto.MonthlyRecapResponse, error) {
	start, end, err := dateutil.MonthBounds(month, time.Local)
	if err != nil {
		return nil, ErrInvalidMonth
	}

	teachers, err := s.repo.User.ListActiveByRoles(ctx, []string{model.RoleGuru})
	if err != nil {
		s.logger.Error("gagal mengambil daftar guru", zap.Error(err))
		return nil, err
	}

	logs, err := s.repo.Attendance.ListByRange(ctx, start, end)
	if err != nil {
		s.logger.Error("gagal mengambil rekap absensi", zap.Error(err))
		return nil, err
	}

	resp := &dto.MonthlyRecapResponse{
		Month:    month,
		Teachers: make([]dto.UserResponse, 0, len(teachers)),
		Logs:     make([]dto.AttendanceResponse, 0, len(logs)),
	}
	for i := range teachers {
		resp.Teachers = append(resp.Teachers, toUserResponse(&teachers[i]))
	}
	for i := range logs {
		resp.Logs = append(resp.Logs, toAttendanceResponse(&logs[i]))
	}
	return resp, nil
}

// ────────────────────── Absence ledger ──────────────────────

func (s *attendanceService) SubmitAbsence(ctx context.Context, userID string, req *dto.SubmitAbsenceRequest) (*dto.AbsenceResponse, error) {
	day := dateutil.DayStart(time.Now())

	var reason *string
	if req.Reason != "" {
		reason = &req.Reason
	}

	absence, err := s.repo.Absence.GetByUserAndDate(ctx, userID, day)
	switch {
	case err == nil:
		absence.Status = req.Status
		absence.Reason = reason
		if err := s.repo.Absence.Update(ctx, absence); err != nil {
			s.logger.Error("gagal memperbarui kehadiran", zap.Error(err))
			return nil, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		absence = &model.Absence{
			UserID: userID,
			Date:   day,
			Status: req.Status,
			Reason: reason,
		}
		if err := s.repo.Absence.Create(ctx, absence); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// Raced with another submission; re-read and apply as update.
				return s.SubmitAbsence(ctx, userID, req)
			}
			s.logger.Error("gagal menyimpan kehadiran", zap.Error(err))
			return nil, err
		}
	default:
		s.logger.Error("gagal mengambil kehadiran", zap.Error(err))
		return nil, err
	}

	resp := toAbsenceResponse(absence)
	return &resp, nil
}

func (s *attendanceService) ListAbsencesByDate(ctx context.Context, date string) ([]dto.AbsenceResponse, error) {
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return nil, ErrInvalidDate
	}

	absences, err := s.repo.Absence.ListByDate(ctx, day)
	if err != nil {
		s.logger.Error("gagal mengambil daftar kehadiran", zap.Error(err))
		return nil, err
	}

	result := make([]dto.AbsenceResponse, 0, len(absences))
	for i := range absences {
		result = append(result, toAbsenceResponse(&absences[i]))
	}
	return result, nil
}

// ────────────────────── mapping ──────────────────────

func toAttendanceResponse(log *model.AttendanceLog) dto.AttendanceResponse {
	resp := dto.AttendanceResponse{
		ID:           log.AttendanceID,
		UserID:       log.UserID,
		Date:         log.Date.Format("2006-01-02"),
		CheckInTime:  log.CheckInTime,
		CheckOutTime: log.CheckOutTime,
		Status:       log.Status,
		IsScheduled:  log.IsScheduled,
		ScheduleID:   log.ScheduleID,
	}
	if log.User != nil {
		resp.UserName = log.User.Name
	}
	return resp
}

func toAbsenceResponse(absence *model.Absence) dto.AbsenceResponse {
	resp := dto.AbsenceResponse{
		ID:     absence.AbsenceID,
		UserID: absence.UserID,
		Date:   absence.Date.Format("2006-01-02"),
		Status: absence.Status,
		Reason: absence.Reason,
	}
	if absence.User != nil {
		resp.UserName = absence.User.Name
	}
	return resp
}

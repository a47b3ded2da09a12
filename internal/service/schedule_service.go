package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/MuefXyz/res-Smp-Ash-sub001/internal/dto"
	"github.com/MuefXyz/res-Smp-Ash-sub001/internal/model"
	"github.com/MuefXyz/res-Smp-Ash-sub001/internal/repository"
)

var (
	ErrScheduleNotFound = errors.New("jadwal tidak ditemukan")
	ErrScheduleConflict = errors.New("guru sudah memiliki jadwal aktif pada hari tersebut")
	ErrTeacherNotFound  = errors.New("guru tidak ditemukan")
)

// ScheduleService manages weekly teacher schedules. The write paths reject a
// second active slot for the same (teacher, weekday); the partial unique
// index backs this up under concurrency.
type ScheduleService interface {
	Create(ctx context.Context, req *dto.CreateScheduleRequest) (*dto.ScheduleResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateScheduleRequest) (*dto.ScheduleResponse, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, teacherID string) ([]dto.ScheduleResponse, error)
}

type scheduleService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewScheduleService creates the ScheduleService.
func NewScheduleService(repo *repository.Repository, logger *zap.Logger) ScheduleService {
	return &scheduleService{repo: repo, logger: logger}
}

func (s *scheduleService) Create(ctx context.Context, req *dto.CreateScheduleRequest) (*dto.ScheduleResponse, error) {
	teacher, err := s.repo.User.GetByID(ctx, req.TeacherID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeacherNotFound
		}
		s.logger.Error("gagal mengambil guru", zap.Error(err))
		return nil, err
	}
	if teacher.Role != model.RoleGuru {
		return nil, ErrTeacherNotFound
	}

	if _, err := s.repo.Schedule.GetActiveByTeacherAndDay(ctx, req.TeacherID, req.DayOfWeek); err == nil {
		return nil, ErrScheduleConflict
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("gagal memeriksa jadwal", zap.Error(err))
		return nil, err
	}

	schedule := &model.TeacherSchedule{
		TeacherID: req.TeacherID,
		DayOfWeek: req.DayOfWeek,
		SubjectID: req.SubjectID,
		Room:      req.Room,
		IsActive:  true,
	}
	if err := s.repo.Schedule.Create(ctx, schedule); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrScheduleConflict
		}
		s.logger.Error("gagal menyimpan jadwal", zap.Error(err))
		return nil, err
	}

	schedule.Teacher = teacher
	resp := toScheduleResponse(schedule)
	return &resp, nil
}

func (s *scheduleService) Update(ctx context.Context, id string, req *dto.UpdateScheduleRequest) (*dto.ScheduleResponse, error) {
	schedule, err := s.repo.Schedule.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("gagal mengambil jadwal", zap.Error(err))
		return nil, err
	}

	if req.DayOfWeek != nil {
		schedule.DayOfWeek = *req.DayOfWeek
	}
	if req.SubjectID != nil {
		schedule.SubjectID = req.SubjectID
	}
	if req.Room != nil {
		schedule.Room = *req.Room
	}
	if req.IsActive != nil {
		schedule.IsActive = *req.IsActive
	}

	// Moving or re-activating the slot must not collide with another active
	// slot of the same teacher on the same weekday.
	if schedule.IsActive {
		other, err := s.repo.Schedule.GetActiveByTeacherAndDay(ctx, schedule.TeacherID, schedule.DayOfWeek)
		if err == nil && other.ScheduleID != schedule.ScheduleID {
			return nil, ErrScheduleConflict
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("gagal memeriksa jadwal", zap.Error(err))
			return nil, err
		}
	}

	if err := s.repo.Schedule.Update(ctx, schedule); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrScheduleConflict
		}
		s.logger.Error("gagal memperbarui jadwal", zap.Error(err))
		return nil, err
	}

	resp := toScheduleResponse(schedule)
	return &resp, nil
}

func (s *scheduleService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Schedule.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrScheduleNotFound
		}
		s.logger.Error("gagal mengambil jadwal", zap.Error(err))
		return err
	}

	if err := s.repo.Schedule.Delete(ctx, id); err != nil {
		s.logger.Error("gagal menghapus jadwal", zap.Error(err))
		return err
	}
	return nil
}

func (s *scheduleService) List(ctx context.Context, teacherID string) ([]dto.ScheduleResponse, error) {
	schedules, err := s.repo.Schedule.List(ctx, teacherID)
	if err != nil {
		s.logger.Error("gagal mengambil daftar jadwal", zap.Error(err))
		return nil, err
	}

	result := make([]dto.ScheduleResponse, 0, len(schedules))
	for i := range schedules {
		result = append(result, toScheduleResponse(&schedules[i]))
	}
	return result, nil
}

func toScheduleResponse(schedule *model.TeacherSchedule) dto.ScheduleResponse {
	resp := dto.ScheduleResponse{
		ID:        schedule.ScheduleID,
		TeacherID: schedule.TeacherID,
		DayOfWeek: schedule.DayOfWeek,
		SubjectID: schedule.SubjectID,
		Room:      schedule.Room,
		IsActive:  schedule.IsActive,
	}
	if schedule.Teacher != nil {
		resp.TeacherName = schedule.Teacher.Name
	}
	if schedule.Subject != nil {
		resp.SubjectName = schedule.Subject.Name
	}
	return resp
}

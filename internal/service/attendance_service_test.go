package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/MuefXyz/res-Smp-Ash-sub001/internal/dto"
	"github.com/MuefXyz/res-Smp-Ash-sub001/internal/model"
	"github.com/MuefXyz/res-Smp-Ash-sub001/pkg/dateutil"
)

func newTestAttendanceService() (AttendanceService, *mockNotifier, *mockAttendanceRepo, *mockScheduleRepo, *mockUserRepo, *mockAbsenceRepo) {
	repo := newTestRepo()
	notifier := &mockNotifier{}
	svc := NewAttendanceService(repo, notifier, zap.NewNop())
	return svc,
		notifier,
		repo.Attendance.(*mockAttendanceRepo),
		repo.Schedule.(*mockScheduleRepo),
		repo.User.(*mockUserRepo),
		repo.Absence.(*mockAbsenceRepo)
}

func TestAttendanceService_CheckIn_StaffNeverScheduled(t *testing.T) {
	svc, notifier, _, schedules, _, _ := newTestAttendanceService()

	// Even with an active slot on today's weekday the staff check-in stays
	// unscheduled; the resolver only runs for teachers.
	schedules.Create(context.Background(), &model.TeacherSchedule{
		TeacherID: "staff-1",
		DayOfWeek: dateutil.IsoWeekday(time.Now()),
		IsActive:  true,
	})

	resp, err := svc.CheckIn(context.Background(), "staff-1", model.RoleStaff)
	if err != nil {
		t.Fatalf("CheckIn: %v", err)
	}
	if resp.IsScheduled {
		t.Error("staf seharusnya tidak pernah terjadwal")
	}
	if resp.CheckInTime == nil {
		t.Error("check_in_time seharusnya terisi")
	}
	if resp.Status != model.StatusPresent {
		t.Errorf("status = %s, ingin PRESENT", resp.Status)
	}
	if len(notifier.events) != 1 || notifier.events[0].Type != model.NotifAttendance {
		t.Errorf("ingin satu event ATTENDANCE, dapat %v", notifier.events)
	}
}

func TestAttendanceService_CheckIn_TeacherScheduleAnnotation(t *testing.T) {
	svc, _, _, schedules, _, _ := newTestAttendanceService()

	schedule := &model.TeacherSchedule{
		TeacherID: "guru-1",
		DayOfWeek: dateutil.IsoWeekday(time.Now()),
		IsActive:  true,
	}
	schedules.Create(context.Background(), schedule)

	resp, err := svc.CheckIn(context.Background(), "guru-1", model.RoleGuru)
	if err != nil {
		t.Fatalf("CheckIn: %v", err)
	}
	if !resp.IsScheduled {
		t.Error("check-in guru pada hari terjadwal seharusnya is_scheduled=true")
	}
	if resp.ScheduleID == nil || *resp.ScheduleID != schedule.ScheduleID {
		t.Errorf("schedule_id = %v, ingin %s", resp.ScheduleID, schedule.ScheduleID)
	}
}

func TestAttendanceService_CheckIn_TeacherWithoutSlot(t *testing.T) {
	svc, _, _, _, _, _ := newTestAttendanceService()

	resp, err := svc.CheckIn(context.Background(), "guru-1", model.RoleGuru)
	if err != nil {
		t.Fatalf("CheckIn: %v", err)
	}
	if resp.IsScheduled || resp.ScheduleID != nil {
		t.Error("tanpa slot aktif check-in seharusnya tidak terjadwal")
	}
}

func TestAttendanceService_CheckIn_Duplicate(t *testing.T) {
	svc, _, _, _, _, _ := newTestAttendanceService()

	if _, err := svc.CheckIn(context.Background(), "staff-1", model.RoleStaff); err != nil {
		t.Fatalf("check-in pertama: %v", err)
	}
	if _, err := svc.CheckIn(context.Background(), "staff-1", model.RoleStaff); !errors.Is(err, ErrAlreadyCheckedIn) {
		t.Errorf("check-in kedua: err = %v, ingin ErrAlreadyCheckedIn", err)
	}
}

// racedAttendanceRepo reproduces the losing side of a concurrent check-in:
// the read sees no row yet, but by the time the insert lands another request
// has claimed the unique (user_id, date) slot.
type racedAttendanceRepo struct {
	*mockAttendanceRepo
}

func (m *racedAttendanceRepo) GetByUserAndDate(_ context.Context, _ string, _ time.Time) (*model.AttendanceLog, error) {
	return nil, gorm.ErrRecordNotFound
}

func (m *racedAttendanceRepo) Create(_ context.Context, _ *model.AttendanceLog) error {
	return gorm.ErrDuplicatedKey
}

func TestAttendanceService_CheckIn_InsertRaceLost(t *testing.T) {
	repo := newTestRepo()
	repo.Attendance = &racedAttendanceRepo{newMockAttendanceRepo()}
	svc := NewAttendanceService(repo, &mockNotifier{}, zap.NewNop())

	if _, err := svc.CheckIn(context.Background(), "staff-1", model.RoleStaff); !errors.Is(err, ErrAlreadyCheckedIn) {
		t.Errorf("err = %v, ingin ErrAlreadyCheckedIn", err)
	}
}

func TestAttendanceService_CheckOut_BeforeCheckIn(t *testing.T) {
	svc, _, _, _, _, _ := newTestAttendanceService()

	if _, err := svc.CheckOut(context.Background(), "staff-1"); !errors.Is(err, ErrNoCheckInFound) {
		t.Errorf("err = %v, ingin ErrNoCheckInFound", err)
	}
}

func TestAttendanceService_FullDayCycle(t *testing.T) {
	svc, _, _, _, _, _ := newTestAttendanceService()
	ctx := context.Background()

	in, err := svc.CheckIn(ctx, "guru-1", model.RoleGuru)
	if err != nil {
		t.Fatalf("CheckIn: %v", err)
	}

	out, err := svc.CheckOut(ctx, "guru-1")
	if err != nil {
		t.Fatalf("CheckOut: %v", err)
	}
	if out.CheckOutTime == nil {
		t.Fatal("check_out_time seharusnya terisi")
	}
	if out.CheckInTime == nil || !out.CheckInTime.Equal(*in.CheckInTime) {
		t.Error("check-out tidak boleh mengubah check_in_time")
	}

	// The day is terminal: no further transition in either direction.
	if _, err := svc.CheckOut(ctx, "guru-1"); !errors.Is(err, ErrAlreadyCheckedOut) {
		t.Errorf("check-out kedua: err = %v, ingin ErrAlreadyCheckedOut", err)
	}
	if _, err := svc.CheckIn(ctx, "guru-1", model.RoleGuru); !errors.Is(err, ErrAlreadyCheckedIn) {
		t.Errorf("check-in setelah check-out: err = %v, ingin ErrAlreadyCheckedIn", err)
	}
}

func TestAttendanceService_Status_Transitions(t *testing.T) {
	svc, _, _, _, _, _ := newTestAttendanceService()
	ctx := context.Background()

	st, err := svc.Status(ctx, "staff-1")
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if !st.CanCheckIn || st.CanCheckOut || st.Attendance != nil {
		t.Errorf("status awal = %+v, ingin can_check_in saja", st)
	}

	svc.CheckIn(ctx, "staff-1", model.RoleStaff)
	st, _ = svc.Status(ctx, "staff-1")
	if st.CanCheckIn || !st.CanCheckOut {
		t.Errorf("setelah check-in = %+v, ingin can_check_out saja", st)
	}

	svc.CheckOut(ctx, "staff-1")
	st, _ = svc.Status(ctx, "staff-1")
	if st.CanCheckIn || st.CanCheckOut {
		t.Errorf("setelah check-out = %+v, ingin keduanya false", st)
	}
	if st.Attendance == nil || st.Attendance.CheckOutTime == nil {
		t.Error("status akhir seharusnya memuat baris absensi lengkap")
	}
}

func TestAttendanceService_ListByDate_InvalidFormat(t *testing.T) {
	svc, _, _, _, _, _ := newTestAttendanceService()

	if _, err := svc.ListByDate(context.Background(), "04-02-2024"); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("err = %v, ingin ErrInvalidDate", err)
	}
}

func TestAttendanceService_MonthlyRecap(t *testing.T) {
	repo := newTestRepo()
	svc := NewAttendanceService(repo, &mockNotifier{}, zap.NewNop())
	ctx := context.Background()

	seedUser(repo, "guru-1", "Guru Satu", model.RoleGuru, nil)
	seedUser(repo, "guru-2", "Guru Dua", model.RoleGuru, nil)
	inactive := seedUser(repo, "guru-3", "Guru Tiga", model.RoleGuru, nil)
	inactive.IsActive = false
	seedUser(repo, "staff-1", "Staf Satu", model.RoleStaff, nil)

	logs := repo.Attendance.(*mockAttendanceRepo)
	inMonth := time.Date(2024, 2, 10, 0, 0, 0, 0, time.Local)
	lastDay := time.Date(2024, 2, 29, 0, 0, 0, 0, time.Local)
	outside := time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local)
	logs.Create(ctx, &model.AttendanceLog{UserID: "guru-1", Date: inMonth, Status: model.StatusPresent})
	logs.Create(ctx, &model.AttendanceLog{UserID: "guru-2", Date: lastDay, Status: model.StatusPresent})
	logs.Create(ctx, &model.AttendanceLog{UserID: "guru-1", Date: outside, Status: model.StatusPresent})

	recap, err := svc.MonthlyRecap(ctx, "2024-02")
	if err != nil {
		t.Fatalf("MonthlyRecap: %v", err)
	}
	if len(recap.Teachers) != 2 {
		t.Errorf("teachers = %d, ingin 2 (hanya guru aktif)", len(recap.Teachers))
	}
	if len(recap.Logs) != 2 {
		t.Errorf("logs = %d, ingin 2 (29 Februari masuk, 1 Maret tidak)", len(recap.Logs))
	}

	if _, err := svc.MonthlyRecap(ctx, "Feb-2024"); !errors.Is(err, ErrInvalidMonth) {
		t.Errorf("bulan tidak valid: err = %v, ingin ErrInvalidMonth", err)
	}
}

func TestAttendanceService_SubmitAbsence_Upsert(t *testing.T) {
	svc, _, _, _, _, absences := newTestAttendanceService()
	ctx := context.Background()

	first, err := svc.SubmitAbsence(ctx, "siswa-1", &dto.SubmitAbsenceRequest{Status: model.StatusSick, Reason: "demam"})
	if err != nil {
		t.Fatalf("SubmitAbsence: %v", err)
	}
	if first.Status != model.StatusSick || first.Reason == nil || *first.Reason != "demam" {
		t.Errorf("baris pertama = %+v", first)
	}

	// Second submission the same day overwrites, never duplicates.
	second, err := svc.SubmitAbsence(ctx, "siswa-1", &dto.SubmitAbsenceRequest{Status: model.StatusExcused})
	if err != nil {
		t.Fatalf("SubmitAbsence kedua: %v", err)
	}
	if second.Status != model.StatusExcused {
		t.Errorf("status = %s, ingin EXCUSED", second.Status)
	}
	if second.Reason != nil {
		t.Error("alasan lama seharusnya terhapus")
	}
	if len(absences.absences) != 1 {
		t.Errorf("jumlah baris = %d, ingin 1", len(absences.absences))
	}
}

package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/MuefXyz/res-Smp-Ash-sub001/internal/dto"
	"github.com/MuefXyz/res-Smp-Ash-sub001/internal/model"
	"github.com/MuefXyz/res-Smp-Ash-sub001/internal/repository"
)

func newTestScheduleService() (ScheduleService, *repository.Repository) {
	repo := newTestRepo()
	svc := NewScheduleService(repo, zap.NewNop())
	return svc, repo
}

func TestScheduleService_Create_Success(t *testing.T) {
	svc, repo := newTestScheduleService()
	seedUser(repo, "guru-1", "Guru Satu", model.RoleGuru, nil)

	resp, err := svc.Create(context.Background(), &dto.CreateScheduleRequest{
		TeacherID: "guru-1",
		DayOfWeek: 1,
		Room:      "R-101",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !resp.IsActive {
		t.Error("jadwal baru seharusnya aktif")
	}
	if resp.TeacherName != "Guru Satu" {
		t.Errorf("teacher_name = %s", resp.TeacherName)
	}
}

func TestScheduleService_Create_TeacherNotFound(t *testing.T) {
	svc, repo := newTestScheduleService()
	seedUser(repo, "staff-1", "Staf Satu", model.RoleStaff, nil)

	// Unknown ID and non-teacher ID are indistinguishable to the caller.
	if _, err := svc.Create(context.Background(), &dto.CreateScheduleRequest{TeacherID: "hantu", DayOfWeek: 1}); !errors.Is(err, ErrTeacherNotFound) {
		t.Errorf("err = %v, ingin ErrTeacherNotFound", err)
	}
	if _, err := svc.Create(context.Background(), &dto.CreateScheduleRequest{TeacherID: "staff-1", DayOfWeek: 1}); !errors.Is(err, ErrTeacherNotFound) {
		t.Errorf("err = %v, ingin ErrTeacherNotFound untuk non-guru", err)
	}
}

func TestScheduleService_Create_Conflict(t *testing.T) {
	svc, repo := newTestScheduleService()
	seedUser(repo, "guru-1", "Guru Satu", model.RoleGuru, nil)
	ctx := context.Background()

	if _, err := svc.Create(ctx, &dto.CreateScheduleRequest{TeacherID: "guru-1", DayOfWeek: 2}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(ctx, &dto.CreateScheduleRequest{TeacherID: "guru-1", DayOfWeek: 2}); !errors.Is(err, ErrScheduleConflict) {
		t.Errorf("err = %v, ingin ErrScheduleConflict", err)
	}

	// A different weekday is fine.
	if _, err := svc.Create(ctx, &dto.CreateScheduleRequest{TeacherID: "guru-1", DayOfWeek: 3}); err != nil {
		t.Errorf("hari lain: %v", err)
	}
}

func TestScheduleService_Update_MoveIntoConflict(t *testing.T) {
	svc, repo := newTestScheduleService()
	seedUser(repo, "guru-1", "Guru Satu", model.RoleGuru, nil)
	ctx := context.Background()

	a, _ := svc.Create(ctx, &dto.CreateScheduleRequest{TeacherID: "guru-1", DayOfWeek: 1})
	b, _ := svc.Create(ctx, &dto.CreateScheduleRequest{TeacherID: "guru-1", DayOfWeek: 2})

	day := 1
	if _, err := svc.Update(ctx, b.ID, &dto.UpdateScheduleRequest{DayOfWeek: &day}); !errors.Is(err, ErrScheduleConflict) {
		t.Errorf("err = %v, ingin ErrScheduleConflict", err)
	}

	// Updating a slot in place must not conflict with itself.
	room := "R-202"
	if _, err := svc.Update(ctx, a.ID, &dto.UpdateScheduleRequest{Room: &room}); err != nil {
		t.Errorf("update in place: %v", err)
	}
}

func TestScheduleService_Update_DeactivateThenReuseDay(t *testing.T) {
	svc, repo := newTestScheduleService()
	seedUser(repo, "guru-1", "Guru Satu", model.RoleGuru, nil)
	ctx := context.Background()

	a, _ := svc.Create(ctx, &dto.CreateScheduleRequest{TeacherID: "guru-1", DayOfWeek: 1})

	inactive := false
	if _, err := svc.Update(ctx, a.ID, &dto.UpdateScheduleRequest{IsActive: &inactive}); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	// The uniqueness rule only covers active slots.
	if _, err := svc.Create(ctx, &dto.CreateScheduleRequest{TeacherID: "guru-1", DayOfWeek: 1}); err != nil {
		t.Errorf("slot baru pada hari bekas: %v", err)
	}
}

func TestScheduleService_Delete(t *testing.T) {
	svc, repo := newTestScheduleService()
	seedUser(repo, "guru-1", "Guru Satu", model.RoleGuru, nil)
	ctx := context.Background()

	a, _ := svc.Create(ctx, &dto.CreateScheduleRequest{TeacherID: "guru-1", DayOfWeek: 1})
	if err := svc.Delete(ctx, a.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := svc.Delete(ctx, a.ID); !errors.Is(err, ErrScheduleNotFound) {
		t.Errorf("err = %v, ingin ErrScheduleNotFound", err)
	}
}

func TestScheduleService_List_ByTeacher(t *testing.T) {
	svc, repo := newTestScheduleService()
	seedUser(repo, "guru-1", "Guru Satu", model.RoleGuru, nil)
	seedUser(repo, "guru-2", "Guru Dua", model.RoleGuru, nil)
	ctx := context.Background()

	svc.Create(ctx, &dto.CreateScheduleRequest{TeacherID: "guru-1", DayOfWeek: 1})
	svc.Create(ctx, &dto.CreateScheduleRequest{TeacherID: "guru-1", DayOfWeek: 2})
	svc.Create(ctx, &dto.CreateScheduleRequest{TeacherID: "guru-2", DayOfWeek: 1})

	mine, err := svc.List(ctx, "guru-1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(mine) != 2 {
		t.Errorf("len = %d, ingin 2", len(mine))
	}

	all, _ := svc.List(ctx, "")
	if len(all) != 3 {
		t.Errorf("len = %d, ingin 3", len(all))
	}
}

package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/MuefXyz/res-Smp-Ash-sub001/internal/model"
)

// ScheduleRepository is the weekly teacher-schedule data-access interface.
type ScheduleRepository interface {
	Create(ctx context.Context, schedule *model.TeacherSchedule) error
	GetByID(ctx context.Context, id string) (*model.TeacherSchedule, error)
	// GetActiveByTeacherAndDay returns the single active slot for
	// (teacher, ISO weekday), or gorm.ErrRecordNotFound.
	GetActiveByTeacherAndDay(ctx context.Context, teacherID string, dayOfWeek int) (*model.TeacherSchedule, error)
	Update(ctx context.Context, schedule *model.TeacherSchedule) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, teacherID string) ([]model.TeacherSchedule, error)
}

type scheduleRepo struct {
	db *gorm.DB
}

// NewScheduleRepo creates the GORM-backed ScheduleRepository.
func NewScheduleRepo(db *gorm.DB) ScheduleRepository {
	return &scheduleRepo{db: db}
}

func (r *scheduleRepo) Create(ctx context.Context, schedule *model.TeacherSchedule) error {
	return r.db.WithContext(ctx).Create(schedule).Error
}

func (r *scheduleRepo) GetByID(ctx context.Context, id string) (*model.TeacherSchedule, error) {
	var schedule model.TeacherSchedule
	err := r.db.WithContext(ctx).
		Preload("Teacher").
		Preload("Subject").
		Where("schedule_id = ?", id).
		First(&schedule).Error
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (r *scheduleRepo) GetActiveByTeacherAndDay(ctx context.Context, teacherID string, dayOfWeek int) (*model.TeacherSchedule, error) {
	var schedule model.TeacherSchedule
	err := r.db.WithContext(ctx).
		Where("teacher_id = ? AND day_of_week = ? AND is_active", teacherID, dayOfWeek).
		First(&schedule).Error
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (r *scheduleRepo) Update(ctx context.Context, schedule *model.TeacherSchedule) error {
	return r.db.WithContext(ctx).Save(schedule).Error
}

func (r *scheduleRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("schedule_id = ?", id).
		Delete(&model.TeacherSchedule{}).Error
}

func (r *scheduleRepo) List(ctx context.Context, teacherID string) ([]model.TeacherSchedule, error) {
	var schedules []model.TeacherSchedule
	db := r.db.WithContext(ctx).
		Preload("Teacher").
		Preload("Subject")
	if teacherID != "" {
		db = db.Where("teacher_id = ?", teacherID)
	}
	err := db.Order("day_of_week ASC").Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

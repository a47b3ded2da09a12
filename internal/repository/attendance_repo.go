package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/MuefXyz/res-Smp-Ash-sub001/internal/model"
)

// AttendanceRepository is the daily attendance-log data-access interface.
// Create is insert-or-fail: the (user_id, date) unique constraint makes a
// concurrent duplicate surface as gorm.ErrDuplicatedKey.
type AttendanceRepository interface {
	Create(ctx context.Context, log *model.AttendanceLog) error
	GetByUserAndDate(ctx context.Context, userID string, day time.Time) (*model.AttendanceLog, error)
	Update(ctx context.Context, log *model.AttendanceLog) error
	ListByDate(ctx context.Context, day time.Time) ([]model.AttendanceLog, error)
	// ListByRange returns rows with date in [start, end).
	ListByRange(ctx context.Context, start, end time.Time) ([]model.AttendanceLog, error)
}

type attendanceRepo struct {
	db *gorm.DB
}

// NewAttendanceRepo creates the GORM-backed AttendanceRepository.
func NewAttendanceRepo(db *gorm.DB) AttendanceRepository {
	return &attendanceRepo{db: db}
}

func (r *attendanceRepo) Create(ctx context.Context, log *model.AttendanceLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *attendanceRepo) GetByUserAndDate(ctx context.Context, userID string, day time.Time) (*model.AttendanceLog, error) {
	var log model.AttendanceLog
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, day.Format("2006-01-02")).
		First(&log).Error
	if err != nil {
		return nil, err
	}
	return &log, nil
}

func (r *attendanceRepo) Update(ctx context.Context, log *model.AttendanceLog) error {
	return r.db.WithContext(ctx).Save(log).Error
}

func (r *attendanceRepo) ListByDate(ctx context.Context, day time.Time) ([]model.AttendanceLog, error) {
	var logs []model.AttendanceLog
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("date = ?", day.Format("2006-01-02")).
		Order("check_in_time ASC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *attendanceRepo) ListByRange(ctx context.Context, start, end time.Time) ([]model.AttendanceLog, error) {
	var logs []model.AttendanceLog
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("date >= ? AND date < ?", start.Format("2006-01-02"), end.Format("2006-01-02")).
		Order("date ASC, check_in_time ASC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

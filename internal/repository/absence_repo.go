package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/MuefXyz/res-Smp-Ash-sub001/internal/model"
)

// AbsenceRepository is the daily absence-ledger data-access interface.
// Uniqueness on (user_id, date) is enforced by the store.
type AbsenceRepository interface {
	Create(ctx context.Context, absence *model.Absence) error
	GetByUserAndDate(ctx context.Context, userID string, day time.Time) (*model.Absence, error)
	Update(ctx context.Context, absence *model.Absence) error
	ListByDate(ctx context.Context, day time.Time) ([]model.Absence, error)
}

type absenceRepo struct {
	db *gorm.DB
}

// NewAbsenceRepo creates the GORM-backed AbsenceRepository.
func NewAbsenceRepo(db *gorm.DB) AbsenceRepository {
	return &absenceRepo{db: db}
}

func (r *absenceRepo) Create(ctx context.Context, absence *model.Absence) error {
	return r.db.WithContext(ctx).Create(absence).Error
}

func (r *absenceRepo) GetByUserAndDate(ctx context.Context, userID string, day time.Time) (*model.Absence, error) {
	var absence model.Absence
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, day.Format("2006-01-02")).
		First(&absence).Error
	if err != nil {
		return nil, err
	}
	return &absence, nil
}

func (r *absenceRepo) Update(ctx context.Context, absence *model.Absence) error {
	return r.db.WithContext(ctx).Save(absence).Error
}

func (r *absenceRepo) ListByDate(ctx context.Context, day time.Time) ([]model.Absence, error) {
	var absences []model.Absence
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("date = ?", day.Format("2006-01-02")).
		Order("created_at ASC").
		Find(&absences).Error
	if err != nil {
		return nil, err
	}
	return absences, nil
}

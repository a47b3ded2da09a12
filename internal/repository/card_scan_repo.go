package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/MuefXyz/res-Smp-Ash-sub001/internal/model"
)

// CardScanRepository is the append-only scan-event data-access interface.
// Scan rows are never updated or deleted.
type CardScanRepository interface {
	Create(ctx context.Context, scan *model.CardScan) error
	ListRecent(ctx context.Context, limit int) ([]model.CardScan, error)
}

type cardScanRepo struct {
	db *gorm.DB
}

// NewCardScanRepo creates the GORM-backed CardScanRepository.
func NewCardScanRepo(db *gorm.DB) CardScanRepository {
	return &cardScanRepo{db: db}
}

func (r *cardScanRepo) Create(ctx context.Context, scan *model.CardScan) error {
	return r.db.WithContext(ctx).Create(scan).Error
}

func (r *cardScanRepo) ListRecent(ctx context.Context, limit int) ([]model.CardScan, error) {
	var scans []model.CardScan
	err := r.db.WithContext(ctx).
		Preload("User").
		Order("scanned_at DESC").
		Limit(limit).
		Find(&scans).Error
	if err != nil {
		return nil, err
	}
	return scans, nil
}

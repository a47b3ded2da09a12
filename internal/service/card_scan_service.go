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
	"github.com/MuefXyz/res-Smp-Ash-sub001/internal/stream"
	"github.com/MuefXyz/res-Smp-Ash-sub001/pkg/dateutil"
)

var ErrCardNotFound = errors.New("kartu tidak terdaftar atau tidak aktif")

// CardScanService processes physical card taps. Every valid scan appends one
// event row (duplicates are legitimate re-taps) and reconciles today's
// absence-ledger row to PRESENT for both scan types.
type CardScanService interface {
	Scan(ctx context.Context, req *dto.CardScanRequest) (*dto.CardScanResponse, error)
	History(ctx context.Context, limit int) ([]dto.CardScanResponse, error)
}

type cardScanService struct {
	repo     *repository.Repository
	notifier notify.Notifier
	hub      *stream.Hub
	logger   *zap.Logger
}

// NewCardScanService creates the CardScanService.
func NewCardScanService(repo *repository.Repository, notifier notify.Notifier, hub *stream.Hub, logger *zap.Logger) CardScanService {
	return &cardScanService{repo: repo, notifier: notifier, hub: hub, logger: logger}
}

func (s *cardScanService) Scan(ctx context.Context, req *dto.CardScanRequest) (*dto.CardScanResponse, error) {
	// Unknown cards write nothing: no scan row, no absence change.
	user, err := s.repo.User.GetActiveByCardID(ctx, req.CardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		s.logger.Error("gagal mengambil pemilik kartu", zap.Error(err))
		return nil, err
	}

	now := time.Now()
	scan := &model.CardScan{
		CardID:     req.CardID,
		UserID:     user.UserID,
		ScanType:   req.ScanType,
		Location:   req.Location,
		DeviceInfo: req.DeviceInfo,
		IsValid:    true,
		ScannedAt:  now,
	}
	if err := s.repo.CardScan.Create(ctx, scan); err != nil {
		s.logger.Error("gagal menyimpan event scan", zap.Error(err))
		return nil, err
	}

	// Reconcile the day's ledger after the scan row is committed. This is
	// secondary: a failure here leaves the scan row in place.
	reconciled := true
	if err := s.reconcileAbsence(ctx, user.UserID, now); err != nil {
		reconciled = false
		s.logger.Warn("gagal merekonsiliasi kehadiran", zap.String("user_id", user.UserID), zap.Error(err))
	}

	scanLabel := "masuk"
	if req.ScanType == model.ScanCheckOut {
		scanLabel = "pulang"
	}
	message := fmt.Sprintf("%s tercatat %s pada %s", user.Name, scanLabel, now.Format("15:04"))

	// Best-effort side channel for subscribed admin sessions.
	s.hub.Publish(dto.ScanBroadcast{
		CardID:    req.CardID,
		UserID:    user.UserID,
		ScanType:  req.ScanType,
		UserName:  user.Name,
		Timestamp: now,
		Message:   message,
	})

	events := []notify.Event{{
		Type:     model.NotifCardScan,
		Title:    "Scan kartu",
		Message:  message,
		Audience: notify.Audience{Roles: []string{model.RoleAdmin}},
	}}
	if reconciled {
		events = append(events, notify.Event{
			Type:     model.NotifAttendance,
			Title:    "Status kehadiran diperbarui",
			Message:  fmt.Sprintf("Status kehadiran anda hari ini tercatat HADIR (%s)", now.Format("15:04")),
			Audience: notify.Audience{UserIDs: []string{user.UserID}},
		})
	}
	s.notifier.Dispatch(ctx, events)

	return &dto.CardScanResponse{
		ScanID:     scan.ScanID,
		CardID:     scan.CardID,
		UserID:     scan.UserID,
		UserName:   user.Name,
		ScanType:   scan.ScanType,
		Location:   scan.Location,
		DeviceInfo: scan.DeviceInfo,
		IsValid:    scan.IsValid,
		ScannedAt:  scan.ScannedAt,
	}, nil
}

// reconcileAbsence upserts the (user, today) ledger row to PRESENT and clears
// any stale reason. Both CHECK_IN and CHECK_OUT scans mark the day present.
func (s *cardScanService) reconcileAbsence(ctx context.Context, userID string, now time.Time) error {
	day := dateutil.DayStart(now)

	absence, err := s.repo.Absence.GetByUserAndDate(ctx, userID, day)
	switch {
	case err == nil:
		absence.Status = model.StatusPresent
		absence.Reason = nil
		return s.repo.Absence.Update(ctx, absence)
	case errors.Is(err, gorm.ErrRecordNotFound):
		createErr := s.repo.Absence.Create(ctx, &model.Absence{
			UserID: userID,
			Date:   day,
			Status: model.StatusPresent,
		})
		if errors.Is(createErr, gorm.ErrDuplicatedKey) {
			// Concurrent scan created the row first; it is already PRESENT.
			return nil
		}
		return createErr
	default:
		return err
	}
}

func (s *cardScanService) History(ctx context.Context, limit int) ([]dto.CardScanResponse, error) {
	if limit <= 0 {
		limit = 50
	}

	scans, err := s.repo.CardScan.ListRecent(ctx, limit)
	if err != nil {
		s.logger.Error("gagal mengambil riwayat scan", zap.Error(err))
		return nil, err
	}

	result := make([]dto.CardScanResponse, 0, len(scans))
	for i := range scans {
		sc := &scans[i]
		resp := dto.CardScanResponse{
			ScanID:     sc.ScanID,
			CardID:     sc.CardID,
			UserID:     sc.UserID,
			ScanType:   sc.ScanType,
			Location:   sc.Location,
			DeviceInfo: sc.DeviceInfo,
			IsValid:    sc.IsValid,
			ScannedAt:  sc.ScannedAt,
		}
		if sc.User != nil {
			resp.UserName = sc.User.Name
		}
		result = append(result, resp)
	}
	return result, nil
}

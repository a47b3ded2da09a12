package service

import (
	"go.uber.org/zap"

	"github.com/MuefXyz/res-Smp-Ash-sub001/config"
	"github.com/MuefXyz/res-Smp-Ash-sub001/internal/notify"
	"github.com/MuefXyz/res-Smp-Ash-sub001/internal/repository"
	"github.com/MuefXyz/res-Smp-Ash-sub001/internal/stream"
	"github.com/MuefXyz/res-Smp-Ash-sub001/pkg/jwt"
	"github.com/MuefXyz/res-Smp-Ash-sub001/pkg/redis"
)

// Service aggregates every business-logic interface.
type Service struct {
	Auth         AuthService
	Attendance   AttendanceService
	CardScan     CardScanService
	Schedule     ScheduleService
	Subject      SubjectService
	User         UserService
	Notification NotificationService
	Post         PostService
	Export       ExportService
}

// NewService wires the service implementations.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	notifier notify.Notifier,
	hub *stream.Hub,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:         NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		Attendance:   NewAttendanceService(repo, notifier, logger),
		CardScan:     NewCardScanService(repo, notifier, hub, logger),
		Schedule:     NewScheduleService(repo, logger),
		Subject:      NewSubjectService(repo, logger),
		User:         NewUserService(repo, notifier, logger),
		Notification: NewNotificationService(repo, logger),
		Post:         NewPostService(repo, notifier, logger),
		Export:       NewExportService(repo, logger),
	}
}

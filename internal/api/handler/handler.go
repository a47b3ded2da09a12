package handler

import (
	"github.com/MuefXyz/res-Smp-Ash-sub001/internal/service"
	"github.com/MuefXyz/res-Smp-Ash-sub001/internal/stream"
)

// Handler aggregates every HTTP handler.
type Handler struct {
	Auth         *AuthHandler
	Attendance   *AttendanceHandler
	CardScan     *CardScanHandler
	Schedule     *ScheduleHandler
	Subject      *SubjectHandler
	User         *UserHandler
	Notification *NotificationHandler
	Post         *PostHandler
	Export       *ExportHandler
	Stream       *StreamHandler
}

// NewHandler wires the handlers to their services.
func NewHandler(svc *service.Service, hub *stream.Hub) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(svc.Auth),
		Attendance:   NewAttendanceHandler(svc.Attendance),
		CardScan:     NewCardScanHandler(svc.CardScan),
		Schedule:     NewScheduleHandler(svc.Schedule),
		Subject:      NewSubjectHandler(svc.Subject),
		User:         NewUserHandler(svc.User),
		Notification: NewNotificationHandler(svc.Notification),
		Post:         NewPostHandler(svc.Post),
		Export:       NewExportHandler(svc.Export),
		Stream:       NewStreamHandler(hub),
	}
}

package repository

import "gorm.io/gorm"

// Repository aggregates every data-access interface.
type Repository struct {
	User         UserRepository
	Attendance   AttendanceRepository
	Absence      AbsenceRepository
	CardScan     CardScanRepository
	Schedule     ScheduleRepository
	Subject      SubjectRepository
	Notification NotificationRepository
	Post         PostRepository
}

// NewRepository wires the GORM implementations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:         NewUserRepo(db),
		Attendance:   NewAttendanceRepo(db),
		Absence:      NewAbsenceRepo(db),
		CardScan:     NewCardScanRepo(db),
		Schedule:     NewScheduleRepo(db),
		Subject:      NewSubjectRepo(db),
		Notification: NewNotificationRepo(db),
		Post:         NewPostRepo(db),
	}
}

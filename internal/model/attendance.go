package model

import "time"

// Daily attendance statuses.
const (
	StatusPresent = "PRESENT"
	StatusAbsent  = "ABSENT"
	StatusSick    = "SICK"
	StatusExcused = "EXCUSED"
)

// AttendanceLog — attendance_logs table. One row per (user, calendar day),
// enforced by a unique constraint on (user_id, date). Date is floored to
// local midnight. CheckOutTime is only ever set after CheckInTime.
type AttendanceLog struct {
	AttendanceID string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"attendance_id"`
	UserID       string     `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_logs_user_date" json:"user_id"`
	Date         time.Time  `gorm:"type:date;not null;uniqueIndex:uq_attendance_logs_user_date" json:"date"`
	CheckInTime  *time.Time `json:"check_in_time,omitempty"`
	CheckOutTime *time.Time `json:"check_out_time,omitempty"`
	Status       string     `gorm:"type:varchar(20);not null;default:'PRESENT'"    json:"status"`
	IsScheduled  bool       `gorm:"not null;default:false"                         json:"is_scheduled"`
	ScheduleID   *string    `gorm:"type:uuid"                                      json:"schedule_id,omitempty"`
	BaseModel

	User     *User            `gorm:"foreignKey:UserID;references:UserID"         json:"user,omitempty"`
	Schedule *TeacherSchedule `gorm:"foreignKey:ScheduleID;references:ScheduleID" json:"schedule,omitempty"`
}

func (AttendanceLog) TableName() string { return "attendance_logs" }

// Absence — absences table. The daily attendance-status ledger per user;
// despite the name it records presence status, not only absences. One row per
// (user, calendar day).
type Absence struct {
	AbsenceID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"absence_id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:uq_absences_user_date" json:"user_id"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:uq_absences_user_date" json:"date"`
	Status    string    `gorm:"type:varchar(20);not null"                      json:"status"`
	Reason    *string   `gorm:"type:text"                                      json:"reason,omitempty"`
	BaseModel

	User *User `gorm:"foreignKey:UserID;references:UserID" json:"user,omitempty"`
}

func (Absence) TableName() string { return "absences" }

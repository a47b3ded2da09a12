package model

// TeacherSchedule — teacher_schedules table. A recurring weekly slot;
// DayOfWeek uses ISO-like numbering (Monday=1 .. Sunday=7). A partial unique
// index keeps at most one active row per (teacher, weekday).
type TeacherSchedule struct {
	ScheduleID string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"schedule_id"`
	TeacherID  string  `gorm:"type:uuid;not null"                             json:"teacher_id"`
	DayOfWeek  int     `gorm:"type:smallint;not null"                         json:"day_of_week"`
	SubjectID  *string `gorm:"type:uuid"                                      json:"subject_id,omitempty"`
	Room       string  `gorm:"type:varchar(50);not null;default:''"           json:"room"`
	IsActive   bool    `gorm:"not null;default:true"                          json:"is_active"`
	BaseModel

	Teacher *User    `gorm:"foreignKey:TeacherID;references:UserID"       json:"teacher,omitempty"`
	Subject *Subject `gorm:"foreignKey:SubjectID;references:SubjectID"    json:"subject,omitempty"`
}

func (TeacherSchedule) TableName() string { return "teacher_schedules" }

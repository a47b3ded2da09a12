package model

// Notification types.
const (
	NotifCardScan     = "CARD_SCAN"
	NotifAttendance   = "ATTENDANCE"
	NotifRegistration = "REGISTRATION"
	NotifPost         = "LEARNING_POST"
)

// Notification — notifications table. Created by state-changing actions with
// interested parties; mutated only to flip IsRead.
type Notification struct {
	NotificationID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"notification_id"`
	UserID         string `gorm:"type:uuid;not null"                             json:"user_id"`
	Title          string `gorm:"type:varchar(200);not null"                     json:"title"`
	Message        string `gorm:"type:text;not null"                             json:"message"`
	Type           string `gorm:"type:varchar(50);not null"                      json:"type"`
	IsRead         bool   `gorm:"not null;default:false"                         json:"is_read"`
	BaseModel
}

func (Notification) TableName() string { return "notifications" }

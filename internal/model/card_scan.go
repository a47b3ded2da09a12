package model

import "time"

// Card scan types.
const (
	ScanCheckIn  = "CHECK_IN"
	ScanCheckOut = "CHECK_OUT"
)

// CardScan — card_scans table. Append-only event log; duplicate taps are
// valid, rows are never updated or deleted.
type CardScan struct {
	ScanID     string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"scan_id"`
	CardID     string    `gorm:"type:varchar(64);not null"                      json:"card_id"`
	UserID     string    `gorm:"type:uuid;not null"                             json:"user_id"`
	ScanType   string    `gorm:"type:varchar(10);not null"                      json:"scan_type"`
	Location   string    `gorm:"type:varchar(100);not null;default:''"          json:"location"`
	DeviceInfo string    `gorm:"type:varchar(255);not null;default:''"          json:"device_info"`
	IsValid    bool      `gorm:"not null;default:true"                          json:"is_valid"`
	ScannedAt  time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"scanned_at"`

	User *User `gorm:"foreignKey:UserID;references:UserID" json:"user,omitempty"`
}

func (CardScan) TableName() string { return "card_scans" }

package dto

import "time"

// CardScanRequest — POST /staff/card-scans
type CardScanRequest struct {
	CardID     string `json:"card_id"     binding:"required,max=64"`
	ScanType   string `json:"scan_type"   binding:"required,oneof=CHECK_IN CHECK_OUT"`
	Location   string `json:"location"    binding:"omitempty,max=100"`
	DeviceInfo string `json:"device_info" binding:"omitempty,max=255"`
}

// CardScanResponse is the public projection of a scan event.
type CardScanResponse struct {
	ScanID     string    `json:"scan_id"`
	CardID     string    `json:"card_id"`
	UserID     string    `json:"user_id"`
	UserName   string    `json:"user_name,omitempty"`
	ScanType   string    `json:"scan_type"`
	Location   string    `json:"location"`
	DeviceInfo string    `json:"device_info"`
	IsValid    bool      `json:"is_valid"`
	ScannedAt  time.Time `json:"scanned_at"`
}

// CardScanHistoryQuery — GET /staff/card-scans?limit=n
type CardScanHistoryQuery struct {
	Limit int `form:"limit,default=50" binding:"omitempty,min=1,max=500"`
}

// ScanBroadcast is the best-effort realtime payload pushed to subscribed
// admin sessions; not part of the authoritative record.
type ScanBroadcast struct {
	CardID    string    `json:"cardId"`
	UserID    string    `json:"userId"`
	ScanType  string    `json:"scanType"`
	UserName  string    `json:"userName"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
}

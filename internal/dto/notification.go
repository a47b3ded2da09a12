package dto

import "time"

// NotificationResponse is the public projection of a notification row.
type NotificationResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// NotificationListQuery — GET /notifications
type NotificationListQuery struct {
	PageQuery
	UnreadOnly bool `form:"unread_only"`
}

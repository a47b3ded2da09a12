package dto

import "time"

// AttendanceResponse is the public projection of one daily attendance row.
type AttendanceResponse struct {
	ID           string     `json:"id"`
	UserID       string     `json:"user_id"`
	UserName     string     `json:"user_name,omitempty"`
	Date         string     `json:"date"` // YYYY-MM-DD
	CheckInTime  *time.Time `json:"check_in_time"`
	CheckOutTime *time.Time `json:"check_out_time"`
	Status       string     `json:"status"`
	IsScheduled  bool       `json:"is_scheduled"`
	ScheduleID   *string    `json:"schedule_id"`
}

// AttendanceStatusResponse is the externally visible state-machine
// projection. CanCheckIn and CanCheckOut are never both true.
type AttendanceStatusResponse struct {
	CanCheckIn  bool                `json:"can_check_in"`
	CanCheckOut bool                `json:"can_check_out"`
	Attendance  *AttendanceResponse `json:"attendance"`
}

// AttendanceListQuery — GET /staff/attendance?date=YYYY-MM-DD
type AttendanceListQuery struct {
	Date string `form:"date" binding:"required,datetime=2006-01-02"`
}

// RecapQuery — GET /admin/attendance/recap?month=YYYY-MM
type RecapQuery struct {
	Month string `form:"month" binding:"required"`
}

// MonthlyRecapResponse lists every teacher plus all attendance rows whose
// date falls inside the month, first and last day inclusive.
type MonthlyRecapResponse struct {
	Month    string               `json:"month"`
	Teachers []UserResponse       `json:"teachers"`
	Logs     []AttendanceResponse `json:"logs"`
}

// SubmitAbsenceRequest — POST /absences
type SubmitAbsenceRequest struct {
	Status string `json:"status" binding:"required,oneof=PRESENT ABSENT SICK EXCUSED"`
	Reason string `json:"reason" binding:"omitempty,max=500"`
}

// AbsenceResponse is the public projection of a daily absence-ledger row.
type AbsenceResponse struct {
	ID       string  `json:"id"`
	UserID   string  `json:"user_id"`
	UserName string  `json:"user_name,omitempty"`
	Date     string  `json:"date"`
	Status   string  `json:"status"`
	Reason   *string `json:"reason"`
}

// AbsenceListQuery — GET /absences?date=YYYY-MM-DD
type AbsenceListQuery struct {
	Date string `form:"date" binding:"required,datetime=2006-01-02"`
}

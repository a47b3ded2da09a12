package dto

// CreateScheduleRequest — POST /admin/schedules
type CreateScheduleRequest struct {
	TeacherID string  `json:"teacher_id"  binding:"required,uuid"`
	DayOfWeek int     `json:"day_of_week" binding:"required,min=1,max=7"`
	SubjectID *string `json:"subject_id"  binding:"omitempty,uuid"`
	Room      string  `json:"room"        binding:"omitempty,max=50"`
}

// UpdateScheduleRequest — PUT /admin/schedules/:id
type UpdateScheduleRequest struct {
	DayOfWeek *int    `json:"day_of_week" binding:"omitempty,min=1,max=7"`
	SubjectID *string `json:"subject_id"  binding:"omitempty,uuid"`
	Room      *string `json:"room"        binding:"omitempty,max=50"`
	IsActive  *bool   `json:"is_active"`
}

// ScheduleResponse is the public projection of a weekly schedule slot.
type ScheduleResponse struct {
	ID          string  `json:"id"`
	TeacherID   string  `json:"teacher_id"`
	TeacherName string  `json:"teacher_name,omitempty"`
	DayOfWeek   int     `json:"day_of_week"`
	SubjectID   *string `json:"subject_id"`
	SubjectName string  `json:"subject_name,omitempty"`
	Room        string  `json:"room"`
	IsActive    bool    `json:"is_active"`
}

// ScheduleListQuery — GET /admin/schedules
type ScheduleListQuery struct {
	TeacherID string `form:"teacher_id" binding:"omitempty,uuid"`
}

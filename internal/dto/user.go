package dto

// UserResponse is the public projection of a user.
type UserResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Role     string  `json:"role"`
	CardID   *string `json:"card_id,omitempty"`
	IsActive bool    `json:"is_active"`
}

// CreateUserRequest — POST /admin/users (registration)
type CreateUserRequest struct {
	Name     string  `json:"name"     binding:"required,max=100"`
	Username string  `json:"username" binding:"required,max=50"`
	Email    string  `json:"email"    binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8"`
	Role     string  `json:"role"     binding:"required,oneof=ADMIN GURU STAFF SISWA TU"`
	CardID   *string `json:"card_id"  binding:"omitempty,max=64"`
}

// SetActiveRequest — PUT /admin/users/:id/active
type SetActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// AssignCardRequest — PUT /admin/users/:id/card
type AssignCardRequest struct {
	CardID string `json:"card_id" binding:"required,max=64"`
}

// UserListQuery — GET /admin/users
type UserListQuery struct {
	PageQuery
	Role string `form:"role" binding:"omitempty,oneof=ADMIN GURU STAFF SISWA TU"`
}

package dto

// CreateSubjectRequest — POST /subjects
type CreateSubjectRequest struct {
	Name        string `json:"name"        binding:"required,max=100"`
	Code        string `json:"code"        binding:"required,max=20"`
	Description string `json:"description" binding:"omitempty"`
}

// UpdateSubjectRequest — PUT /subjects/:id
type UpdateSubjectRequest struct {
	Name        *string `json:"name"        binding:"omitempty,max=100"`
	Code        *string `json:"code"        binding:"omitempty,max=20"`
	Description *string `json:"description"`
}

// SubjectResponse is the public projection of a subject.
type SubjectResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code"`
	Description string `json:"description"`
}

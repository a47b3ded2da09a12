package model

// Subject — subjects table.
type Subject struct {
	SubjectID   string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"subject_id"`
	Name        string `gorm:"type:varchar(100);not null"                     json:"name"`
	Code        string `gorm:"type:varchar(20);not null;uniqueIndex"          json:"code"`
	Description string `gorm:"type:text;not null;default:''"                  json:"description"`
	BaseModel
}

func (Subject) TableName() string { return "subjects" }

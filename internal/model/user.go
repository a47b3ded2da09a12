package model

// User roles. GURU is teaching staff, TU is the administrative office,
// STAFF is general school staff, SISWA is a student.
const (
	RoleAdmin = "ADMIN"
	RoleGuru  = "GURU"
	RoleStaff = "STAFF"
	RoleSiswa = "SISWA"
	RoleTU    = "TU"
)

// User — users table. CardID maps one-to-one to a physical access card when
// present.
type User struct {
	UserID       string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Name         string  `gorm:"type:varchar(100);not null"                     json:"name"`
	Username     string  `gorm:"type:varchar(50);not null;uniqueIndex"          json:"username"`
	Email        string  `gorm:"type:varchar(255);not null"                     json:"email"`
	PasswordHash string  `gorm:"type:varchar(255);not null"                     json:"-"`
	Role         string  `gorm:"type:varchar(10);not null"                      json:"role"`
	CardID       *string `gorm:"type:varchar(64)"                               json:"card_id,omitempty"`
	IsActive     bool    `gorm:"not null;default:true"                          json:"is_active"`
	BaseModel
}

func (User) TableName() string { return "users" }

package model

// LearningPost — learning_posts table. Announcement-style material written by
// a teacher; creation fans out a notification to every active student.
type LearningPost struct {
	PostID   string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"post_id"`
	AuthorID string `gorm:"type:uuid;not null"                             json:"author_id"`
	Title    string `gorm:"type:varchar(200);not null"                     json:"title"`
	Content  string `gorm:"type:text;not null"                             json:"content"`
	BaseModel

	Author *User `gorm:"foreignKey:AuthorID;references:UserID" json:"author,omitempty"`
}

func (LearningPost) TableName() string { return "learning_posts" }

package models

// Message is a one-way communication from a company to the student behind
// a post. Immutable after creation except for the viewed flag.
type Message struct {
	BaseModel
	Content       string `gorm:"type:text;not null" json:"content"`
	FromCompanyID string `gorm:"type:uuid;not null;index" json:"fromCompanyId"`
	ToStudentID   string `gorm:"type:uuid;not null;index" json:"toStudentId"`
	PostID        string `gorm:"type:uuid;not null;index" json:"postId"`
	Viewed        bool   `gorm:"default:false" json:"viewed"`

	// Relations
	Company *Company `gorm:"foreignKey:FromCompanyID" json:"company,omitempty"`
}

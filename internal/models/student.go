package models

// Student is referenced, not owned, by Posts.
type Student struct {
	BaseModel
	Firstname string  `gorm:"not null" json:"firstname"`
	Surname   string  `gorm:"not null" json:"surname"`
	Email     string  `gorm:"uniqueIndex;not null" json:"email"`
	Image     *string `json:"image"`
}

package models

// Company is the employer account. Created at registration, read during
// authentication and message attribution; no update or delete path exists.
type Company struct {
	BaseModel
	Email        string  `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string  `gorm:"not null" json:"-"`
	Name         string  `gorm:"not null" json:"name"`
	Image        *string `json:"image,omitempty"`

	// Relations
	Messages []Message `gorm:"foreignKey:FromCompanyID" json:"-"`
}

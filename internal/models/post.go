package models

// Post is a student's published listing. Education, work experience and
// skill records are owned by the post; their lifecycle is tied to it.
type Post struct {
	BaseModel
	Content   string `gorm:"type:text;not null" json:"content"`
	IsActive  bool   `gorm:"default:true;index" json:"isActive"`
	StudentID string `gorm:"type:uuid;not null;index" json:"studentId"`

	// Relations
	Student         Student          `gorm:"foreignKey:StudentID" json:"student"`
	Messages        []Message        `gorm:"foreignKey:PostID" json:"messages,omitempty"`
	Educations      []Education      `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"education,omitempty"`
	WorkExperiences []WorkExperience `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"workExperiences,omitempty"`
	Skills          []Skill          `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"skills,omitempty"`
}

type Education struct {
	BaseModel
	PostID           string `gorm:"type:uuid;not null;index" json:"-"`
	Degree           string `gorm:"not null" json:"degree"`
	Institution      string `gorm:"not null" json:"institution"`
	YearOfGraduation int    `gorm:"not null" json:"yearOfGraduation"`
}

type WorkExperience struct {
	BaseModel
	PostID    string `gorm:"type:uuid;not null;index" json:"-"`
	Company   string `gorm:"not null" json:"company"`
	Position  string `gorm:"not null" json:"position"`
	Location  string `gorm:"not null" json:"location"`
	StartDate string `gorm:"not null" json:"startDate"`
	EndDate   string `gorm:"not null" json:"endDate"`
}

type Skill struct {
	BaseModel
	PostID    string     `gorm:"type:uuid;not null;index" json:"-"`
	SkillName string     `gorm:"not null" json:"skillName"`
	Level     SkillLevel `gorm:"type:varchar(20);not null" json:"level"`
}

package models

type Subject struct {
	BaseModel

	UserID      uint   `gorm:"not null;index"`
	Name        string `gorm:"not null"`
	Description string

	// Relationships
	User          User           `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	StudySessions []StudySession `gorm:"foreignKey:SubjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

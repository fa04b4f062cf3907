package models

import "github.com/google/uuid"

// TeamMember is a photographer or assistant working for a studio
type TeamMember struct {
	BaseModel
	StudioID       uuid.UUID `json:"studio_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_members_studio_email,priority:1"`
	Name           string    `json:"name" gorm:"size:200;not null"`
	Email          string    `json:"email" gorm:"size:255;not null;uniqueIndex:idx_team_members_studio_email,priority:2"`
	Phone          string    `json:"phone,omitempty" gorm:"size:30"`
	Role           string    `json:"role,omitempty" gorm:"size:100"` // free-text profile label, e.g. "Lead Photographer"
	Specialization string    `json:"specialization,omitempty" gorm:"size:200"`
	AvatarURL      string    `json:"avatar_url,omitempty" gorm:"size:500"`
	IsActive       bool      `json:"is_active" gorm:"not null"`
}

// TableName returns the table name for TeamMember
func (TeamMember) TableName() string {
	return "team_members"
}

// EntityName returns the human readable kind name
func (TeamMember) EntityName() string {
	return "team member"
}

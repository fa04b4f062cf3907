package models

import "github.com/google/uuid"

// TeamAssignment places a team member on a whole event (CeremonyID nil) or on one ceremony
type TeamAssignment struct {
	BaseModel
	EventID      uuid.UUID  `json:"event_id" gorm:"type:uuid;not null;index"`
	CeremonyID   *uuid.UUID `json:"ceremony_id,omitempty" gorm:"type:uuid;index"`
	TeamMemberID uuid.UUID  `json:"team_member_id" gorm:"type:uuid;not null;index"`
	Role         *string    `json:"role,omitempty" gorm:"size:100"` // nil falls back to the member's profile role
}

// TableName returns the table name for TeamAssignment
func (TeamAssignment) TableName() string {
	return "team_assignments"
}

// EntityName returns the human readable kind name
func (TeamAssignment) EntityName() string {
	return "team assignment"
}

// IsWholeEvent reports whether the assignment covers every ceremony of its event
func (a *TeamAssignment) IsWholeEvent() bool {
	return a.CeremonyID == nil
}

// EffectiveRole resolves the display role against the member's profile
func (a *TeamAssignment) EffectiveRole(member *TeamMember) string {
	if a.Role != nil && *a.Role != "" {
		return *a.Role
	}
	if member == nil {
		return ""
	}
	return member.Role
}

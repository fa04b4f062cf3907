package auth

import (
	"context"
	"fmt"

	apperrors "photostudio-backend/internal/errors"

	"github.com/google/uuid"
)

// CallerKind tells a studio owner apart from one of its team members
type CallerKind string

const (
	KindStudio     CallerKind = "studio"
	KindTeamMember CallerKind = "team_member"
)

// IsValid checks if the CallerKind is valid
func (k CallerKind) IsValid() bool {
	return k == KindStudio || k == KindTeamMember
}

// Caller is an authenticated identity. A studio caller has full control over
// StudioID; a team member caller additionally carries MemberID and is limited
// to their own assignments.
type Caller struct {
	Kind     CallerKind `json:"kind" yaml:"kind"`
	StudioID uuid.UUID  `json:"studio_id" yaml:"studio_id"`
	MemberID uuid.UUID  `json:"member_id,omitempty" yaml:"member_id,omitempty"`
}

// StudioCaller builds the caller of a studio owner
func StudioCaller(studioID uuid.UUID) Caller {
	return Caller{Kind: KindStudio, StudioID: studioID}
}

// TeamMemberCaller builds the caller of a team member of studioID
func TeamMemberCaller(studioID, memberID uuid.UUID) Caller {
	return Caller{Kind: KindTeamMember, StudioID: studioID, MemberID: memberID}
}

// IsStudio reports whether the caller is the studio owner
func (c Caller) IsStudio() bool {
	return c.Kind == KindStudio
}

// IsTeamMember reports whether the caller is a team member
func (c Caller) IsTeamMember() bool {
	return c.Kind == KindTeamMember
}

// Validate checks that the caller is well formed
func (c Caller) Validate() error {
	switch {
	case !c.Kind.IsValid():
		return apperrors.ErrMissingCaller
	case c.StudioID == uuid.Nil:
		return apperrors.ErrMissingCaller
	case c.IsTeamMember() && c.MemberID == uuid.Nil:
		return apperrors.ErrMissingCaller
	}
	return nil
}

func (c Caller) String() string {
	if c.IsTeamMember() {
		return fmt.Sprintf("%s:%s/%s", c.Kind, c.StudioID, c.MemberID)
	}
	return fmt.Sprintf("%s:%s", c.Kind, c.StudioID)
}

// CanAccessStudio checks that the entity owned by studioID is inside the caller's studio
func (c Caller) CanAccessStudio(studioID uuid.UUID) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.StudioID != studioID {
		return apperrors.ErrForeignStudio
	}
	return nil
}

// RequireStudio checks that the caller owns studioID
func (c Caller) RequireStudio(studioID uuid.UUID) error {
	if err := c.CanAccessStudio(studioID); err != nil {
		return err
	}
	if !c.IsStudio() {
		return apperrors.ErrStudioOwnerOnly
	}
	return nil
}

// CanManageMember checks that the caller may write assignments of memberID.
// The studio owner may manage anyone; a team member only themselves.
func (c Caller) CanManageMember(memberID uuid.UUID) error {
	if c.IsStudio() {
		return nil
	}
	if c.MemberID != memberID {
		return apperrors.ErrNotOwnAssignment
	}
	return nil
}

type contextKey struct{}

// WithCaller returns a copy of ctx carrying caller
func WithCaller(ctx context.Context, caller Caller) context.Context {
	return context.WithValue(ctx, contextKey{}, caller)
}

// CallerFromContext extracts the caller stored by WithCaller
func CallerFromContext(ctx context.Context) (Caller, bool) {
	caller, ok := ctx.Value(contextKey{}).(Caller)
	return caller, ok
}

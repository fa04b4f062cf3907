package service

import (
	"fmt"

	"photostudio-backend/internal/auth"
	"photostudio-backend/internal/database/models"
	apperrors "photostudio-backend/internal/errors"
	"photostudio-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// AssignmentService places team members on whole events or single ceremonies
type AssignmentService struct {
	store     *repository.Store
	validator *validator.Validate
}

// NewAssignmentService creates a new assignment service
func NewAssignmentService(store *repository.Store, validator *validator.Validate) *AssignmentService {
	return &AssignmentService{
		store:     store,
		validator: validator,
	}
}

// AssignRequest represents the request to assign a team member. A nil
// CeremonyID covers the whole event; a nil Role falls back to the member's
// profile role when read.
type AssignRequest struct {
	TeamMemberID uuid.UUID  `json:"team_member_id" yaml:"team_member_id" validate:"required"`
	CeremonyID   *uuid.UUID `json:"ceremony_id,omitempty" yaml:"ceremony_id"`
	Role         *string    `json:"role,omitempty" yaml:"role" validate:"omitempty,max=100"`
}

// AssignmentResponse represents an assignment with its member resolved
type AssignmentResponse struct {
	ID            uuid.UUID  `json:"id"`
	EventID       uuid.UUID  `json:"event_id"`
	CeremonyID    *uuid.UUID `json:"ceremony_id,omitempty"`
	TeamMemberID  uuid.UUID  `json:"team_member_id"`
	MemberName    string     `json:"member_name"`
	Role          *string    `json:"role,omitempty"`
	EffectiveRole string     `json:"effective_role"`
	WholeEvent    bool       `json:"whole_event"`
	CreatedAt     string     `json:"created_at"`
	UpdatedAt     string     `json:"updated_at"`
}

// Assign creates an assignment. The member must be active and belong to the
// event's studio, the ceremony must belong to the event and the
// (event, ceremony, member) tuple must be new.
func (s *AssignmentService) Assign(caller auth.Caller, eventID uuid.UUID, req *AssignRequest) (*AssignmentResponse, error) {
	event, err := s.store.Events.GetByID(eventID)
	if err != nil {
		return nil, err
	}
	if err := caller.CanAccessStudio(event.StudioID); err != nil {
		return nil, err
	}
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	if err := caller.CanManageMember(req.TeamMemberID); err != nil {
		return nil, err
	}
	if err := requireSchedulable(event); err != nil {
		return nil, err
	}

	member, err := s.store.TeamMembers.GetByID(req.TeamMemberID)
	if err != nil {
		return nil, err
	}
	if member.StudioID != event.StudioID {
		return nil, apperrors.ErrTeamMemberNotFound
	}
	if !member.IsActive {
		return nil, apperrors.ErrInactiveTeamMember
	}

	if req.CeremonyID != nil {
		ceremony, err := s.store.Ceremonies.GetByID(*req.CeremonyID)
		if err != nil {
			if apperrors.IsNotFound(err) {
				return nil, apperrors.ErrCeremonyEventMismatch
			}
			return nil, err
		}
		if ceremony.EventID != eventID {
			return nil, apperrors.ErrCeremonyEventMismatch
		}
	}

	assignment := &models.TeamAssignment{
		EventID:      eventID,
		CeremonyID:   req.CeremonyID,
		TeamMemberID: req.TeamMemberID,
		Role:         optionalString(req.Role),
	}

	err = s.store.Transaction(func(tx *repository.Store) error {
		exists, err := tx.Assignments.Exists(
			repository.WhereEq("event_id", eventID),
			repository.WhereEq("ceremony_id", req.CeremonyID),
			repository.WhereEq("team_member_id", req.TeamMemberID),
		)
		if err != nil {
			return fmt.Errorf("failed to check existing assignment: %w", err)
		}
		if exists {
			return apperrors.ErrAssignmentExists
		}
		return tx.Assignments.Create(assignment)
	})
	if err != nil {
		return nil, err
	}
	return toAssignmentResponse(assignment, member), nil
}

// Unassign removes an assignment. Removing an absent assignment succeeds.
func (s *AssignmentService) Unassign(caller auth.Caller, id uuid.UUID) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	assignment, err := s.store.Assignments.GetByID(id)
	if apperrors.IsNotFound(err) {
		return nil
	}
	if err != nil {
		return err
	}

	event, err := s.store.Events.GetByID(assignment.EventID)
	if err != nil {
		return err
	}
	if err := caller.CanAccessStudio(event.StudioID); err != nil {
		return err
	}
	if err := caller.CanManageMember(assignment.TeamMemberID); err != nil {
		return err
	}
	return s.store.Assignments.Delete(id)
}

// ListForScope lists the assignments of an event. Without a ceremony every
// assignment of the event is returned; with one, the assignments scoped to it
// plus every whole-event assignment.
func (s *AssignmentService) ListForScope(caller auth.Caller, eventID uuid.UUID, ceremonyID *uuid.UUID) ([]AssignmentResponse, error) {
	if _, err := loadEvent(s.store, caller, eventID); err != nil {
		return nil, err
	}

	preds := []repository.Predicate{
		repository.WhereEq("event_id", eventID),
		repository.OrderBy("created_at ASC"),
	}
	if ceremonyID != nil {
		ceremony, err := s.store.Ceremonies.GetByID(*ceremonyID)
		if err != nil {
			return nil, err
		}
		if ceremony.EventID != eventID {
			return nil, apperrors.ErrCeremonyEventMismatch
		}
		preds = append(preds, repository.Where("(ceremony_id = ? OR ceremony_id IS NULL)", *ceremonyID))
	}

	assignments, err := s.store.Assignments.List(preds...)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	return s.withMembers(assignments)
}

// ListForMember lists a member's assignments across events. Team members may
// only list their own.
func (s *AssignmentService) ListForMember(caller auth.Caller, memberID uuid.UUID) ([]AssignmentResponse, error) {
	member, err := s.store.TeamMembers.GetByID(memberID)
	if err != nil {
		return nil, err
	}
	if err := caller.CanAccessStudio(member.StudioID); err != nil {
		return nil, err
	}
	if err := caller.CanManageMember(memberID); err != nil {
		return nil, err
	}

	assignments, err := s.store.Assignments.List(
		repository.WhereEq("team_member_id", memberID),
		repository.OrderBy("created_at ASC"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	return s.withMembers(assignments)
}

// withMembers resolves member names and effective roles at read time
func (s *AssignmentService) withMembers(assignments []models.TeamAssignment) ([]AssignmentResponse, error) {
	ids := make([]uuid.UUID, 0, len(assignments))
	for _, a := range assignments {
		ids = append(ids, a.TeamMemberID)
	}

	byID := make(map[uuid.UUID]*models.TeamMember, len(ids))
	if len(ids) > 0 {
		members, err := s.store.TeamMembers.List(repository.WhereIn("id", ids))
		if err != nil {
			return nil, fmt.Errorf("failed to load team members: %w", err)
		}
		for i := range members {
			byID[members[i].ID] = &members[i]
		}
	}

	responses := make([]AssignmentResponse, len(assignments))
	for i := range assignments {
		responses[i] = *toAssignmentResponse(&assignments[i], byID[assignments[i].TeamMemberID])
	}
	return responses, nil
}

func toAssignmentResponse(assignment *models.TeamAssignment, member *models.TeamMember) *AssignmentResponse {
	name := ""
	if member != nil {
		name = member.Name
	}
	return &AssignmentResponse{
		ID:            assignment.ID,
		EventID:       assignment.EventID,
		CeremonyID:    assignment.CeremonyID,
		TeamMemberID:  assignment.TeamMemberID,
		MemberName:    name,
		Role:          assignment.Role,
		EffectiveRole: assignment.EffectiveRole(member),
		WholeEvent:    assignment.IsWholeEvent(),
		CreatedAt:     formatTime(assignment.CreatedAt),
		UpdatedAt:     formatTime(assignment.UpdatedAt),
	}
}

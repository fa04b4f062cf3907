package service

import (
	"fmt"
	"strings"

	"photostudio-backend/internal/auth"
	"photostudio-backend/internal/database/models"
	apperrors "photostudio-backend/internal/errors"
	"photostudio-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// TeamMemberService handles business logic for team members
type TeamMemberService struct {
	store     *repository.Store
	validator *validator.Validate
}

// NewTeamMemberService creates a new team member service
func NewTeamMemberService(store *repository.Store, validator *validator.Validate) *TeamMemberService {
	return &TeamMemberService{
		store:     store,
		validator: validator,
	}
}

// CreateTeamMemberRequest represents the request to create a team member
type CreateTeamMemberRequest struct {
	Name           string `json:"name" yaml:"name" validate:"required,max=200"`
	Email          string `json:"email" yaml:"email" validate:"required,email,max=255"`
	Phone          string `json:"phone,omitempty" yaml:"phone" validate:"max=30"`
	Role           string `json:"role,omitempty" yaml:"role" validate:"max=100"`
	Specialization string `json:"specialization,omitempty" yaml:"specialization" validate:"max=200"`
	AvatarURL      string `json:"avatar_url,omitempty" yaml:"avatar_url" validate:"omitempty,url,max=500"`
	IsActive       *bool  `json:"is_active,omitempty" yaml:"is_active"`
}

// UpdateTeamMemberRequest represents the request to update a team member
type UpdateTeamMemberRequest struct {
	Name           *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Email          *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone          *string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Role           *string `json:"role,omitempty" validate:"omitempty,max=100"`
	Specialization *string `json:"specialization,omitempty" validate:"omitempty,max=200"`
	AvatarURL      *string `json:"avatar_url,omitempty" validate:"omitempty,url,max=500"`
	IsActive       *bool   `json:"is_active,omitempty"`
}

// TeamMemberResponse represents the response for team member operations
type TeamMemberResponse struct {
	ID             uuid.UUID `json:"id"`
	StudioID       uuid.UUID `json:"studio_id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone,omitempty"`
	Role           string    `json:"role,omitempty"`
	Specialization string    `json:"specialization,omitempty"`
	AvatarURL      string    `json:"avatar_url,omitempty"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      string    `json:"created_at"`
	UpdatedAt      string    `json:"updated_at"`
}

// CreateTeamMember adds a member to the caller's studio
func (s *TeamMemberService) CreateTeamMember(caller auth.Caller, req *CreateTeamMemberRequest) (*TeamMemberResponse, error) {
	if err := caller.RequireStudio(caller.StudioID); err != nil {
		return nil, err
	}
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if err := s.checkEmailFree(caller.StudioID, email, uuid.Nil); err != nil {
		return nil, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	member := &models.TeamMember{
		StudioID:       caller.StudioID,
		Name:           req.Name,
		Email:          email,
		Phone:          req.Phone,
		Role:           req.Role,
		Specialization: req.Specialization,
		AvatarURL:      req.AvatarURL,
		IsActive:       isActive,
	}
	if err := s.store.TeamMembers.Create(member); err != nil {
		if apperrors.IsConflict(err) {
			return nil, apperrors.ErrTeamMemberExists
		}
		return nil, fmt.Errorf("failed to create team member: %w", err)
	}
	return toTeamMemberResponse(member), nil
}

// GetTeamMember retrieves a team member of the caller's studio
func (s *TeamMemberService) GetTeamMember(caller auth.Caller, id uuid.UUID) (*TeamMemberResponse, error) {
	member, err := s.load(caller, id)
	if err != nil {
		return nil, err
	}
	return toTeamMemberResponse(member), nil
}

// ListTeamMembers lists the members of the caller's studio ordered by name
func (s *TeamMemberService) ListTeamMembers(caller auth.Caller, activeOnly bool) ([]TeamMemberResponse, error) {
	if err := caller.Validate(); err != nil {
		return nil, err
	}

	preds := []repository.Predicate{
		repository.WhereEq("studio_id", caller.StudioID),
		repository.OrderBy("name ASC, created_at ASC"),
	}
	if activeOnly {
		preds = append(preds, repository.WhereEq("is_active", true))
	}

	members, err := s.store.TeamMembers.List(preds...)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}

	responses := make([]TeamMemberResponse, len(members))
	for i := range members {
		responses[i] = *toTeamMemberResponse(&members[i])
	}
	return responses, nil
}

// UpdateTeamMember updates a member's profile. Deactivating a member blocks new
// assignments but keeps the existing ones.
func (s *TeamMemberService) UpdateTeamMember(caller auth.Caller, id uuid.UUID, req *UpdateTeamMemberRequest) (*TeamMemberResponse, error) {
	member, err := s.load(caller, id)
	if err != nil {
		return nil, err
	}
	if err := caller.RequireStudio(member.StudioID); err != nil {
		return nil, err
	}
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	patch := map[string]interface{}{}
	if req.Name != nil {
		patch["name"] = *req.Name
	}
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if email != member.Email {
			if err := s.checkEmailFree(member.StudioID, email, member.ID); err != nil {
				return nil, err
			}
		}
		patch["email"] = email
	}
	if req.Phone != nil {
		patch["phone"] = *req.Phone
	}
	if req.Role != nil {
		patch["role"] = *req.Role
	}
	if req.Specialization != nil {
		patch["specialization"] = *req.Specialization
	}
	if req.AvatarURL != nil {
		patch["avatar_url"] = *req.AvatarURL
	}
	if req.IsActive != nil {
		patch["is_active"] = *req.IsActive
	}

	updated, err := s.store.TeamMembers.Update(id, patch)
	if err != nil {
		if apperrors.IsConflict(err) {
			return nil, apperrors.ErrTeamMemberExists
		}
		return nil, err
	}
	return toTeamMemberResponse(updated), nil
}

// DeleteTeamMember removes a member and their assignments
func (s *TeamMemberService) DeleteTeamMember(caller auth.Caller, id uuid.UUID) error {
	member, err := s.load(caller, id)
	if err != nil {
		return err
	}
	if err := caller.RequireStudio(member.StudioID); err != nil {
		return err
	}
	return s.store.DeleteTeamMember(id)
}

func (s *TeamMemberService) load(caller auth.Caller, id uuid.UUID) (*models.TeamMember, error) {
	member, err := s.store.TeamMembers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := caller.CanAccessStudio(member.StudioID); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *TeamMemberService) checkEmailFree(studioID uuid.UUID, email string, except uuid.UUID) error {
	taken, err := s.store.TeamMembers.Exists(
		repository.WhereEq("studio_id", studioID),
		repository.WhereEq("email", email),
		repository.Where("id <> ?", except),
	)
	if err != nil {
		return fmt.Errorf("failed to check existing team member: %w", err)
	}
	if taken {
		return apperrors.ErrTeamMemberExists
	}
	return nil
}

func toTeamMemberResponse(member *models.TeamMember) *TeamMemberResponse {
	return &TeamMemberResponse{
		ID:             member.ID,
		StudioID:       member.StudioID,
		Name:           member.Name,
		Email:          member.Email,
		Phone:          member.Phone,
		Role:           member.Role,
		Specialization: member.Specialization,
		AvatarURL:      member.AvatarURL,
		IsActive:       member.IsActive,
		CreatedAt:      formatTime(member.CreatedAt),
		UpdatedAt:      formatTime(member.UpdatedAt),
	}
}

package service

import (
	"fmt"

	"photostudio-backend/internal/auth"
	"photostudio-backend/internal/database/models"
	"photostudio-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// StudioService handles business logic for studios
type StudioService struct {
	store     *repository.Store
	validator *validator.Validate
}

// NewStudioService creates a new studio service
func NewStudioService(store *repository.Store, validator *validator.Validate) *StudioService {
	return &StudioService{
		store:     store,
		validator: validator,
	}
}

// CreateStudioRequest represents the request to create a studio
type CreateStudioRequest struct {
	Name        string `json:"name" yaml:"name" validate:"required,max=200"`
	Email       string `json:"email" yaml:"email" validate:"required,email,max=255"`
	Phone       string `json:"phone,omitempty" yaml:"phone" validate:"max=30"`
	Address     string `json:"address,omitempty" yaml:"address" validate:"max=300"`
	Description string `json:"description,omitempty" yaml:"description"`
	LogoURL     string `json:"logo_url,omitempty" yaml:"logo_url" validate:"omitempty,url,max=500"`
}

// UpdateStudioRequest represents the request to update a studio
type UpdateStudioRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone       *string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Address     *string `json:"address,omitempty" validate:"omitempty,max=300"`
	Description *string `json:"description,omitempty"`
	LogoURL     *string `json:"logo_url,omitempty" validate:"omitempty,url,max=500"`
}

// StudioResponse represents the response for studio operations
type StudioResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	Address     string    `json:"address,omitempty"`
	Description string    `json:"description,omitempty"`
	LogoURL     string    `json:"logo_url,omitempty"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

// CreateStudio creates a new studio. Studios are provisioned by operators, so no caller is required.
func (s *StudioService) CreateStudio(req *CreateStudioRequest) (*StudioResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	studio := &models.Studio{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		Description: req.Description,
		LogoURL:     req.LogoURL,
	}
	if err := s.store.Studios.Create(studio); err != nil {
		return nil, fmt.Errorf("failed to create studio: %w", err)
	}
	return toStudioResponse(studio), nil
}

// GetStudio retrieves the caller's studio
func (s *StudioService) GetStudio(caller auth.Caller, id uuid.UUID) (*StudioResponse, error) {
	if err := caller.CanAccessStudio(id); err != nil {
		return nil, err
	}
	studio, err := s.store.Studios.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toStudioResponse(studio), nil
}

// UpdateStudio updates the contact details of the caller's studio
func (s *StudioService) UpdateStudio(caller auth.Caller, id uuid.UUID, req *UpdateStudioRequest) (*StudioResponse, error) {
	if err := caller.RequireStudio(id); err != nil {
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
		patch["email"] = *req.Email
	}
	if req.Phone != nil {
		patch["phone"] = *req.Phone
	}
	if req.Address != nil {
		patch["address"] = *req.Address
	}
	if req.Description != nil {
		patch["description"] = *req.Description
	}
	if req.LogoURL != nil {
		patch["logo_url"] = *req.LogoURL
	}

	studio, err := s.store.Studios.Update(id, patch)
	if err != nil {
		return nil, err
	}
	return toStudioResponse(studio), nil
}

// DeleteStudio removes the caller's studio and everything it owns
func (s *StudioService) DeleteStudio(caller auth.Caller, id uuid.UUID) error {
	if err := caller.RequireStudio(id); err != nil {
		return err
	}
	if _, err := s.store.Studios.GetByID(id); err != nil {
		return err
	}
	return s.store.DeleteStudio(id)
}

func toStudioResponse(studio *models.Studio) *StudioResponse {
	return &StudioResponse{
		ID:          studio.ID,
		Name:        studio.Name,
		Email:       studio.Email,
		Phone:       studio.Phone,
		Address:     studio.Address,
		Description: studio.Description,
		LogoURL:     studio.LogoURL,
		CreatedAt:   formatTime(studio.CreatedAt),
		UpdatedAt:   formatTime(studio.UpdatedAt),
	}
}

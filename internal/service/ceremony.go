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

// CeremonyService maintains the ordered ceremony sequence of each event.
// Order indexes of an event always form 1..N.
type CeremonyService struct {
	store     *repository.Store
	validator *validator.Validate
}

// NewCeremonyService creates a new ceremony service
func NewCeremonyService(store *repository.Store, validator *validator.Validate) *CeremonyService {
	return &CeremonyService{
		store:     store,
		validator: validator,
	}
}

// CreateCeremonyRequest represents the request to add a ceremony to an event
type CreateCeremonyRequest struct {
	Name        string  `json:"name" yaml:"name" validate:"required,max=200"`
	StartTime   *string `json:"start_time,omitempty" yaml:"start_time" validate:"omitempty,datetime=15:04" example:"16:00"`
	EndTime     *string `json:"end_time,omitempty" yaml:"end_time" validate:"omitempty,datetime=15:04" example:"17:30"`
	Description string  `json:"description,omitempty" yaml:"description"`
}

// UpdateCeremonyRequest represents the request to update a ceremony. An empty
// time clears it.
type UpdateCeremonyRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	StartTime   *string `json:"start_time,omitempty" validate:"omitempty,datetime=15:04"`
	EndTime     *string `json:"end_time,omitempty" validate:"omitempty,datetime=15:04"`
	Description *string `json:"description,omitempty"`
}

// ReorderCeremoniesRequest represents the full new order of an event's ceremonies
type ReorderCeremoniesRequest struct {
	CeremonyIDs []uuid.UUID `json:"ceremony_ids" validate:"required"`
}

// CeremonyResponse represents the response for ceremony operations
type CeremonyResponse struct {
	ID          uuid.UUID `json:"id"`
	EventID     uuid.UUID `json:"event_id"`
	Name        string    `json:"name"`
	StartTime   *string   `json:"start_time,omitempty"`
	EndTime     *string   `json:"end_time,omitempty"`
	Description string    `json:"description,omitempty"`
	OrderIndex  int       `json:"order_index"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

// AddCeremony appends a ceremony after the event's last one
func (s *CeremonyService) AddCeremony(caller auth.Caller, eventID uuid.UUID, req *CreateCeremonyRequest) (*CeremonyResponse, error) {
	event, err := loadOwnedEvent(s.store, caller, eventID)
	if err != nil {
		return nil, err
	}
	if err := requireSchedulable(event); err != nil {
		return nil, err
	}
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	if err := checkTimeWindow(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	ceremony := &models.Ceremony{
		EventID:     eventID,
		Name:        req.Name,
		StartTime:   optionalString(req.StartTime),
		EndTime:     optionalString(req.EndTime),
		Description: req.Description,
	}

	err = s.store.Transaction(func(tx *repository.Store) error {
		last, err := tx.Ceremonies.MaxInt("order_index", repository.WhereEq("event_id", eventID))
		if err != nil {
			return err
		}
		ceremony.OrderIndex = last + 1
		return tx.Ceremonies.Create(ceremony)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add ceremony: %w", err)
	}
	return toCeremonyResponse(ceremony), nil
}

// UpdateCeremony patches a ceremony, re-checking the time window against the merged values
func (s *CeremonyService) UpdateCeremony(caller auth.Caller, id uuid.UUID, req *UpdateCeremonyRequest) (*CeremonyResponse, error) {
	ceremony, err := s.store.Ceremonies.GetByID(id)
	if err != nil {
		return nil, err
	}
	event, err := loadOwnedEvent(s.store, caller, ceremony.EventID)
	if err != nil {
		return nil, err
	}
	if err := requireSchedulable(event); err != nil {
		return nil, err
	}
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	start, end := ceremony.StartTime, ceremony.EndTime
	patch := map[string]interface{}{}
	if req.Name != nil {
		patch["name"] = *req.Name
	}
	if req.Description != nil {
		patch["description"] = *req.Description
	}
	if req.StartTime != nil {
		start = optionalString(req.StartTime)
		patch["start_time"] = start
	}
	if req.EndTime != nil {
		end = optionalString(req.EndTime)
		patch["end_time"] = end
	}
	if err := checkTimeWindow(start, end); err != nil {
		return nil, err
	}

	updated, err := s.store.Ceremonies.Update(id, patch)
	if err != nil {
		return nil, err
	}
	return toCeremonyResponse(updated), nil
}

// Reorder assigns 1..N to the event's ceremonies in the given order. The ids
// must be exactly the event's ceremonies, each once.
func (s *CeremonyService) Reorder(caller auth.Caller, eventID uuid.UUID, orderedIDs []uuid.UUID) ([]CeremonyResponse, error) {
	event, err := loadOwnedEvent(s.store, caller, eventID)
	if err != nil {
		return nil, err
	}
	if err := requireSchedulable(event); err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]struct{}, len(orderedIDs))
	for _, id := range orderedIDs {
		if _, dup := seen[id]; dup {
			return nil, apperrors.ErrDuplicateCeremonyIDs
		}
		seen[id] = struct{}{}
	}

	err = s.store.Transaction(func(tx *repository.Store) error {
		existing, err := tx.Ceremonies.List(repository.WhereEq("event_id", eventID))
		if err != nil {
			return err
		}
		if len(existing) != len(orderedIDs) {
			return apperrors.ErrCeremonySetMismatch
		}
		for _, c := range existing {
			if _, ok := seen[c.ID]; !ok {
				return apperrors.ErrCeremonySetMismatch
			}
		}
		for i, id := range orderedIDs {
			if _, err := tx.Ceremonies.Update(id, map[string]interface{}{"order_index": i + 1}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.list(eventID)
}

// RemoveCeremony deletes a ceremony with its scoped assignments and closes the
// gap in the order. Allowed in any event state.
func (s *CeremonyService) RemoveCeremony(caller auth.Caller, id uuid.UUID) error {
	ceremony, err := s.store.Ceremonies.GetByID(id)
	if err != nil {
		return err
	}
	if _, err := loadOwnedEvent(s.store, caller, ceremony.EventID); err != nil {
		return err
	}
	return s.store.DeleteCeremony(id)
}

// ListCeremonies lists an event's ceremonies in order
func (s *CeremonyService) ListCeremonies(caller auth.Caller, eventID uuid.UUID) ([]CeremonyResponse, error) {
	if _, err := loadEvent(s.store, caller, eventID); err != nil {
		return nil, err
	}
	return s.list(eventID)
}

func (s *CeremonyService) list(eventID uuid.UUID) ([]CeremonyResponse, error) {
	ceremonies, err := s.store.Ceremonies.List(
		repository.WhereEq("event_id", eventID),
		repository.OrderBy("order_index ASC"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list ceremonies: %w", err)
	}

	responses := make([]CeremonyResponse, len(ceremonies))
	for i := range ceremonies {
		responses[i] = *toCeremonyResponse(&ceremonies[i])
	}
	return responses, nil
}

func toCeremonyResponse(ceremony *models.Ceremony) *CeremonyResponse {
	return &CeremonyResponse{
		ID:          ceremony.ID,
		EventID:     ceremony.EventID,
		Name:        ceremony.Name,
		StartTime:   ceremony.StartTime,
		EndTime:     ceremony.EndTime,
		Description: ceremony.Description,
		OrderIndex:  ceremony.OrderIndex,
		CreatedAt:   formatTime(ceremony.CreatedAt),
		UpdatedAt:   formatTime(ceremony.UpdatedAt),
	}
}

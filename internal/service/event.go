package service

import (
	"fmt"

	"photostudio-backend/internal/auth"
	"photostudio-backend/internal/database/models"
	apperrors "photostudio-backend/internal/errors"
	"photostudio-backend/internal/logger"
	"photostudio-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// EventService governs events and their status lifecycle
type EventService struct {
	store     *repository.Store
	validator *validator.Validate
}

// NewEventService creates a new event service
func NewEventService(store *repository.Store, validator *validator.Validate) *EventService {
	return &EventService{
		store:     store,
		validator: validator,
	}
}

// CreateEventRequest represents the request to create an event
type CreateEventRequest struct {
	Name        string `json:"name" yaml:"name" validate:"required,max=200"`
	Date        string `json:"date" yaml:"date" validate:"required,datetime=2006-01-02" example:"2024-06-15"`
	Time        string `json:"time" yaml:"time" validate:"required,datetime=15:04" example:"14:00"`
	Venue       string `json:"venue" yaml:"venue" validate:"required,max=300"`
	ClientName  string `json:"client_name" yaml:"client_name" validate:"required,max=200"`
	ClientEmail string `json:"client_email,omitempty" yaml:"client_email" validate:"omitempty,email,max=255"`
	ClientPhone string `json:"client_phone,omitempty" yaml:"client_phone" validate:"max=30"`
	Description string `json:"description,omitempty" yaml:"description"`
}

// UpdateEventRequest represents the request to update event details. Status is
// changed through Transition only.
type UpdateEventRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Date        *string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Time        *string `json:"time,omitempty" validate:"omitempty,datetime=15:04"`
	Venue       *string `json:"venue,omitempty" validate:"omitempty,min=1,max=300"`
	ClientName  *string `json:"client_name,omitempty" validate:"omitempty,min=1,max=200"`
	ClientEmail *string `json:"client_email,omitempty" validate:"omitempty,email,max=255"`
	ClientPhone *string `json:"client_phone,omitempty" validate:"omitempty,max=30"`
	Description *string `json:"description,omitempty"`
}

// TransitionRequest represents the request to change an event's status
type TransitionRequest struct {
	Status string `json:"status" validate:"required,oneof=upcoming ongoing completed cancelled" example:"ongoing"`
}

// EventFilter narrows ListEvents. Dates are inclusive YYYY-MM-DD bounds.
type EventFilter struct {
	Status *models.EventStatus
	From   string
	To     string
}

// EventResponse represents the response for event operations
type EventResponse struct {
	ID          uuid.UUID          `json:"id"`
	StudioID    uuid.UUID          `json:"studio_id"`
	Name        string             `json:"name"`
	Date        string             `json:"date"`
	Time        string             `json:"time"`
	Venue       string             `json:"venue"`
	ClientName  string             `json:"client_name"`
	ClientEmail string             `json:"client_email,omitempty"`
	ClientPhone string             `json:"client_phone,omitempty"`
	Description string             `json:"description,omitempty"`
	Status      models.EventStatus `json:"status"`
	CreatedAt   string             `json:"created_at"`
	UpdatedAt   string             `json:"updated_at"`
}

// CreateEvent books a new event in the upcoming state
func (s *EventService) CreateEvent(caller auth.Caller, req *CreateEventRequest) (*EventResponse, error) {
	if err := caller.RequireStudio(caller.StudioID); err != nil {
		return nil, err
	}
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	event := &models.Event{
		StudioID:    caller.StudioID,
		Name:        req.Name,
		Date:        req.Date,
		Time:        req.Time,
		Venue:       req.Venue,
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		ClientPhone: req.ClientPhone,
		Description: req.Description,
		Status:      models.EventStatusUpcoming,
	}
	if err := s.store.Events.Create(event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return toEventResponse(event), nil
}

// GetEvent retrieves an event
func (s *EventService) GetEvent(caller auth.Caller, id uuid.UUID) (*EventResponse, error) {
	event, err := loadEvent(s.store, caller, id)
	if err != nil {
		return nil, err
	}
	return toEventResponse(event), nil
}

// ListEvents lists the caller's events by date. Team members only see events
// they are assigned to.
func (s *EventService) ListEvents(caller auth.Caller, filter *EventFilter) ([]EventResponse, error) {
	if err := caller.Validate(); err != nil {
		return nil, err
	}
	if filter == nil {
		filter = &EventFilter{}
	}

	preds := []repository.Predicate{
		repository.WhereEq("studio_id", caller.StudioID),
		repository.OrderBy("date ASC, time ASC, created_at ASC"),
	}
	if filter.Status != nil {
		if !filter.Status.IsValid() {
			return nil, apperrors.NewValidationError("status", "must be one of: upcoming ongoing completed cancelled")
		}
		preds = append(preds, repository.WhereEq("status", *filter.Status))
	}
	if filter.From != "" {
		preds = append(preds, repository.Where("date >= ?", filter.From))
	}
	if filter.To != "" {
		preds = append(preds, repository.Where("date <= ?", filter.To))
	}
	if caller.IsTeamMember() {
		assigned := s.store.DB().Model(&models.TeamAssignment{}).
			Select("event_id").
			Where("team_member_id = ?", caller.MemberID)
		preds = append(preds, repository.Where("id IN (?)", assigned))
	}

	events, err := s.store.Events.List(preds...)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	responses := make([]EventResponse, len(events))
	for i := range events {
		responses[i] = *toEventResponse(&events[i])
	}
	return responses, nil
}

// UpdateEvent patches event details in any state
func (s *EventService) UpdateEvent(caller auth.Caller, id uuid.UUID, req *UpdateEventRequest) (*EventResponse, error) {
	if _, err := loadOwnedEvent(s.store, caller, id); err != nil {
		return nil, err
	}
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	patch := map[string]interface{}{}
	if req.Name != nil {
		patch["name"] = *req.Name
	}
	if req.Date != nil {
		patch["date"] = *req.Date
	}
	if req.Time != nil {
		patch["time"] = *req.Time
	}
	if req.Venue != nil {
		patch["venue"] = *req.Venue
	}
	if req.ClientName != nil {
		patch["client_name"] = *req.ClientName
	}
	if req.ClientEmail != nil {
		patch["client_email"] = *req.ClientEmail
	}
	if req.ClientPhone != nil {
		patch["client_phone"] = *req.ClientPhone
	}
	if req.Description != nil {
		patch["description"] = *req.Description
	}

	event, err := s.store.Events.Update(id, patch)
	if err != nil {
		return nil, err
	}
	return toEventResponse(event), nil
}

// Transition moves an event along upcoming -> ongoing -> completed, or to
// cancelled from upcoming or ongoing
func (s *EventService) Transition(caller auth.Caller, id uuid.UUID, status string) (*EventResponse, error) {
	event, err := loadOwnedEvent(s.store, caller, id)
	if err != nil {
		return nil, err
	}
	if err := validateStruct(s.validator, &TransitionRequest{Status: status}); err != nil {
		return nil, err
	}

	next := models.EventStatus(status)
	if !event.Status.CanTransitionTo(next) {
		return nil, apperrors.NewInvalidTransitionError(string(event.Status), status)
	}

	updated, err := s.store.Events.Update(id, map[string]interface{}{"status": next})
	if err != nil {
		return nil, err
	}

	logger.New().WithFields(map[string]interface{}{
		"caller":   caller.String(),
		"event_id": id,
		"from":     event.Status,
		"to":       next,
	}).Info("Event status changed")

	return toEventResponse(updated), nil
}

// DeleteEvent removes an event in any state with its ceremonies, assignments
// and photos. Its galleries are kept.
func (s *EventService) DeleteEvent(caller auth.Caller, id uuid.UUID) error {
	if _, err := loadOwnedEvent(s.store, caller, id); err != nil {
		return err
	}
	if err := s.store.DeleteEvent(id); err != nil {
		logger.New().WithError(err).WithField("event_id", id).Error("Event cascade failed")
		return err
	}
	return nil
}

func toEventResponse(event *models.Event) *EventResponse {
	return &EventResponse{
		ID:          event.ID,
		StudioID:    event.StudioID,
		Name:        event.Name,
		Date:        event.Date,
		Time:        event.Time,
		Venue:       event.Venue,
		ClientName:  event.ClientName,
		ClientEmail: event.ClientEmail,
		ClientPhone: event.ClientPhone,
		Description: event.Description,
		Status:      event.Status,
		CreatedAt:   formatTime(event.CreatedAt),
		UpdatedAt:   formatTime(event.UpdatedAt),
	}
}

package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"photostudio-backend/internal/auth"
	"photostudio-backend/internal/database/models"
	apperrors "photostudio-backend/internal/errors"
	"photostudio-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// NewValidator returns a validator that reports json field names
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	return v
}

// validateStruct runs the struct tags of req and reports the first failure as a ValidationError
func validateStruct(v *validator.Validate, req interface{}) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return fmt.Errorf("validation failed: %w", apperrors.NewValidationError(fe.Field(), describeTag(fe)))
	}
	return fmt.Errorf("validation failed: %w", apperrors.NewValidationError("", err.Error()))
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "datetime":
		return fmt.Sprintf("must match the layout %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "len":
		return fmt.Sprintf("must be exactly %s characters", fe.Param())
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "min", "gte", "lte":
		return fmt.Sprintf("failed the %s=%s constraint", fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("failed the %s constraint", fe.Tag())
}

// checkTimeWindow fails with ErrInvalidTimeRange unless end is after start.
// Either bound may be absent.
func checkTimeWindow(start, end *string) error {
	if start == nil || end == nil || *start == "" || *end == "" {
		return nil
	}
	s, err := time.Parse(models.ClockLayout, *start)
	if err != nil {
		return apperrors.NewValidationError("start_time", "must match the layout 15:04")
	}
	e, err := time.Parse(models.ClockLayout, *end)
	if err != nil {
		return apperrors.NewValidationError("end_time", "must match the layout 15:04")
	}
	if !e.After(s) {
		return apperrors.ErrInvalidTimeRange
	}
	return nil
}

// loadEvent fetches an event readable by caller. Team members may only read
// events they are assigned to.
func loadEvent(store *repository.Store, caller auth.Caller, eventID uuid.UUID) (*models.Event, error) {
	event, err := store.Events.GetByID(eventID)
	if err != nil {
		return nil, err
	}
	if err := caller.CanAccessStudio(event.StudioID); err != nil {
		return nil, err
	}
	if caller.IsTeamMember() {
		assigned, err := store.Assignments.Exists(
			repository.WhereEq("event_id", eventID),
			repository.WhereEq("team_member_id", caller.MemberID),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to check assignment: %w", err)
		}
		if !assigned {
			return nil, apperrors.ErrNotAssignedToEvent
		}
	}
	return event, nil
}

// loadOwnedEvent fetches an event for a write that only the studio owner may perform
func loadOwnedEvent(store *repository.Store, caller auth.Caller, eventID uuid.UUID) (*models.Event, error) {
	event, err := store.Events.GetByID(eventID)
	if err != nil {
		return nil, err
	}
	if err := caller.RequireStudio(event.StudioID); err != nil {
		return nil, err
	}
	return event, nil
}

// requireSchedulable fails unless the event still accepts scheduling changes
func requireSchedulable(event *models.Event) error {
	if !event.Status.AllowsScheduling() {
		return apperrors.ErrEventNotSchedulable
	}
	return nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// optionalString stores an empty string as NULL
func optionalString(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	return &v
}

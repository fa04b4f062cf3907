package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when a referenced entity is absent
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ConflictError represents a uniqueness violation
type ConflictError struct {
	Entity  string
	Context string // e.g. "in this studio"
}

func (e *ConflictError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for ConflictError
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents malformed input
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// InvalidTransitionError represents an illegal event status change
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %q to %q", e.From, e.To)
}

// StorageError represents a failed multi-record write that was rolled back
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("storage error: %s", e.Op)
	}
	return fmt.Sprintf("storage error: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// AccessDeniedError represents a failed gallery access resolution
type AccessDeniedError struct {
	Resource string
}

func (e *AccessDeniedError) Error() string {
	return fmt.Sprintf("access to %s denied", e.Resource)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrStudioNotFound         = &NotFoundError{Entity: "studio"}
	ErrTeamMemberNotFound     = &NotFoundError{Entity: "team member"}
	ErrEventNotFound          = &NotFoundError{Entity: "event"}
	ErrCeremonyNotFound       = &NotFoundError{Entity: "ceremony"}
	ErrTeamAssignmentNotFound = &NotFoundError{Entity: "team assignment"}
	ErrGalleryNotFound        = &NotFoundError{Entity: "gallery"}
	ErrPhotoNotFound          = &NotFoundError{Entity: "photo"}
	ErrGalleryPhotoNotFound   = &NotFoundError{Entity: "gallery photo"}
)

// Conflict Errors
var (
	ErrTeamMemberExists   = &ConflictError{Entity: "team member", Context: "with this email in the studio"}
	ErrAssignmentExists   = &ConflictError{Entity: "team assignment", Context: "for this member and scope"}
	ErrAccessCodeExists   = &ConflictError{Entity: "access code", Context: "in the studio"}
	ErrGalleryPhotoExists = &ConflictError{Entity: "gallery photo", Context: "in this gallery"}
)

// Business Logic Errors
var (
	ErrInvalidTimeRange      = &ValidationError{Field: "end_time", Message: "end time must be after start time"}
	ErrInactiveTeamMember    = &ValidationError{Field: "team_member_id", Message: "team member is not active"}
	ErrCeremonyEventMismatch = &ValidationError{Field: "ceremony_id", Message: "ceremony does not belong to this event"}
	ErrPhotoEventMismatch    = &ValidationError{Field: "photo_id", Message: "photo does not belong to this studio"}
	ErrDuplicateCeremonyIDs  = &ValidationError{Field: "ceremony_ids", Message: "ceremony ids must not repeat"}
	ErrCeremonySetMismatch   = &ValidationError{Field: "ceremony_ids", Message: "ceremony ids must match the event's ceremonies exactly"}
	ErrEventNotSchedulable   = &ValidationError{Field: "status", Message: "event no longer accepts scheduling changes"}
	ErrInvalidRating         = &ValidationError{Field: "rating", Message: "rating must be between 0 and 5"}
	ErrUnknownUploader       = &ValidationError{Field: "uploaded_by", Message: "uploader must be the studio or one of its team members"}
	ErrGalleryAccessDenied   = &AccessDeniedError{Resource: "gallery"}
)

// Authentication / Authorization Errors
var (
	ErrMissingCaller      = &AuthenticationError{Message: "caller identity missing"}
	ErrInvalidToken       = &AuthenticationError{Message: "invalid identity token"}
	ErrForeignStudio      = &AuthorizationError{Message: "entity belongs to another studio"}
	ErrStudioOwnerOnly    = &AuthorizationError{Message: "operation requires the studio owner"}
	ErrNotOwnAssignment   = &AuthorizationError{Message: "team members may only manage their own assignments"}
	ErrNotAssignedToEvent = &AuthorizationError{Message: "team member is not assigned to this event"}
)

// Configuration Errors
var (
	ErrJWTSecretMissing  = &ConfigurationError{Message: "JWT_SECRET must be set in production"}
	ErrUnknownDBDriver   = &ConfigurationError{Message: "DB_DRIVER must be one of: postgres, sqlite"}
	ErrSessionNotStarted = errors.New("no active session, run login first")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// ValidationField returns the offending field of a ValidationError in err's chain
func ValidationField(err error) string {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Field
	}
	return ""
}

// IsInvalidTransition checks if an error is an InvalidTransitionError
func IsInvalidTransition(err error) bool {
	var transitionErr *InvalidTransitionError
	return errors.As(err, &transitionErr)
}

// IsStorage checks if an error is a StorageError
func IsStorage(err error) bool {
	var storageErr *StorageError
	return errors.As(err, &storageErr)
}

// IsAccessDenied checks if an error is an AccessDeniedError
func IsAccessDenied(err error) bool {
	var deniedErr *AccessDeniedError
	return errors.As(err, &deniedErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewConflictError creates a new ConflictError for a custom entity
func NewConflictError(entity, context string) error {
	return &ConflictError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewInvalidTransitionError creates a new InvalidTransitionError
func NewInvalidTransitionError(from, to string) error {
	return &InvalidTransitionError{From: from, To: to}
}

// NewStorageError wraps a failed write in a StorageError
func NewStorageError(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}

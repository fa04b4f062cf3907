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

const (
	MinRating = 0
	MaxRating = 5
)

// PhotoService records uploaded photos and their curation state
type PhotoService struct {
	store     *repository.Store
	validator *validator.Validate
}

// NewPhotoService creates a new photo service
func NewPhotoService(store *repository.Store, validator *validator.Validate) *PhotoService {
	return &PhotoService{
		store:     store,
		validator: validator,
	}
}

// IngestPhotoRequest describes an uploaded file. The file itself lives in
// external storage; only its metadata is recorded.
type IngestPhotoRequest struct {
	EventID    uuid.UUID  `json:"event_id" yaml:"event_id" validate:"required"`
	CeremonyID *uuid.UUID `json:"ceremony_id,omitempty" yaml:"ceremony_id"`
	UploadedBy *uuid.UUID `json:"uploaded_by,omitempty" yaml:"uploaded_by"`
	FileURL    string     `json:"file_url" yaml:"file_url" validate:"required,url,max=1000"`
	FileName   string     `json:"file_name" yaml:"file_name" validate:"required,max=300"`
	FileSize   int64      `json:"file_size,omitempty" yaml:"file_size" validate:"gte=0"`
	MimeType   string     `json:"mime_type,omitempty" yaml:"mime_type" validate:"max=100"`
	Tags       string     `json:"tags,omitempty" yaml:"tags" validate:"max=500"`
}

// RatePhotoRequest represents the request to rate a photo
type RatePhotoRequest struct {
	Rating int `json:"rating" validate:"gte=0,lte=5" example:"4"`
}

// SelectPhotoRequest represents the request to mark a photo selected
type SelectPhotoRequest struct {
	Selected bool `json:"selected"`
}

// PhotoFilter narrows ListPhotos
type PhotoFilter struct {
	CeremonyID *uuid.UUID
	Selected   *bool
	MinRating  int
}

// PhotoResponse represents the response for photo operations
type PhotoResponse struct {
	ID         uuid.UUID  `json:"id"`
	EventID    uuid.UUID  `json:"event_id"`
	CeremonyID *uuid.UUID `json:"ceremony_id,omitempty"`
	UploadedBy uuid.UUID  `json:"uploaded_by"`
	FileURL    string     `json:"file_url"`
	FileName   string     `json:"file_name"`
	FileSize   int64      `json:"file_size,omitempty"`
	MimeType   string     `json:"mime_type,omitempty"`
	Tags       string     `json:"tags,omitempty"`
	Rating     int        `json:"rating"`
	IsSelected bool       `json:"is_selected"`
	CreatedAt  string     `json:"created_at"`
}

// Ingest records a photo for an event. New photos are unrated and unselected.
// Team members may only upload to events they are assigned to, as themselves.
func (s *PhotoService) Ingest(caller auth.Caller, req *IngestPhotoRequest) (*PhotoResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	event, err := loadEvent(s.store, caller, req.EventID)
	if err != nil {
		return nil, err
	}

	if req.CeremonyID != nil {
		ceremony, err := s.store.Ceremonies.GetByID(*req.CeremonyID)
		if err != nil {
			if apperrors.IsNotFound(err) {
				return nil, apperrors.ErrCeremonyEventMismatch
			}
			return nil, err
		}
		if ceremony.EventID != event.ID {
			return nil, apperrors.ErrCeremonyEventMismatch
		}
	}

	uploader, err := s.resolveUploader(caller, event.StudioID, req.UploadedBy)
	if err != nil {
		return nil, err
	}

	photo := &models.Photo{
		EventID:    event.ID,
		CeremonyID: req.CeremonyID,
		UploadedBy: uploader,
		FileURL:    req.FileURL,
		FileName:   req.FileName,
		FileSize:   req.FileSize,
		MimeType:   req.MimeType,
		Tags:       req.Tags,
	}
	if err := s.store.Photos.Create(photo); err != nil {
		return nil, fmt.Errorf("failed to record photo: %w", err)
	}
	return toPhotoResponse(photo), nil
}

// resolveUploader picks who a photo is credited to. Team members are always
// credited themselves; a studio may name itself or one of its members.
func (s *PhotoService) resolveUploader(caller auth.Caller, studioID uuid.UUID, requested *uuid.UUID) (uuid.UUID, error) {
	switch {
	case caller.IsTeamMember():
		return caller.MemberID, nil
	case requested == nil || *requested == studioID:
		return studioID, nil
	}

	member, err := s.store.TeamMembers.GetByID(*requested)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return uuid.Nil, apperrors.ErrUnknownUploader
		}
		return uuid.Nil, err
	}
	if member.StudioID != studioID {
		return uuid.Nil, apperrors.ErrUnknownUploader
	}
	return member.ID, nil
}

// GetPhoto retrieves a photo
func (s *PhotoService) GetPhoto(caller auth.Caller, id uuid.UUID) (*PhotoResponse, error) {
	photo, err := s.store.Photos.GetByID(id)
	if err != nil {
		return nil, err
	}
	if _, err := loadEvent(s.store, caller, photo.EventID); err != nil {
		return nil, err
	}
	return toPhotoResponse(photo), nil
}

// ListPhotos lists an event's photos in upload order
func (s *PhotoService) ListPhotos(caller auth.Caller, eventID uuid.UUID, filter *PhotoFilter) ([]PhotoResponse, error) {
	if _, err := loadEvent(s.store, caller, eventID); err != nil {
		return nil, err
	}
	if filter == nil {
		filter = &PhotoFilter{}
	}

	preds := []repository.Predicate{
		repository.WhereEq("event_id", eventID),
		repository.OrderBy("created_at ASC"),
	}
	if filter.CeremonyID != nil {
		preds = append(preds, repository.WhereEq("ceremony_id", *filter.CeremonyID))
	}
	if filter.Selected != nil {
		preds = append(preds, repository.WhereEq("is_selected", *filter.Selected))
	}
	if filter.MinRating > MinRating {
		preds = append(preds, repository.Where("rating >= ?", filter.MinRating))
	}

	photos, err := s.store.Photos.List(preds...)
	if err != nil {
		return nil, fmt.Errorf("failed to list photos: %w", err)
	}

	responses := make([]PhotoResponse, len(photos))
	for i := range photos {
		responses[i] = *toPhotoResponse(&photos[i])
	}
	return responses, nil
}

// Rate sets a photo's rating, 0 meaning unrated
func (s *PhotoService) Rate(caller auth.Caller, id uuid.UUID, rating int) (*PhotoResponse, error) {
	if rating < MinRating || rating > MaxRating {
		return nil, apperrors.ErrInvalidRating
	}
	if _, err := s.loadOwned(caller, id); err != nil {
		return nil, err
	}

	photo, err := s.store.Photos.Update(id, map[string]interface{}{"rating": rating})
	if err != nil {
		return nil, err
	}
	return toPhotoResponse(photo), nil
}

// SetSelected marks or unmarks a photo as picked for delivery
func (s *PhotoService) SetSelected(caller auth.Caller, id uuid.UUID, selected bool) (*PhotoResponse, error) {
	if _, err := s.loadOwned(caller, id); err != nil {
		return nil, err
	}

	photo, err := s.store.Photos.Update(id, map[string]interface{}{"is_selected": selected})
	if err != nil {
		return nil, err
	}
	return toPhotoResponse(photo), nil
}

// DeletePhoto removes a photo and unlinks it from every gallery
func (s *PhotoService) DeletePhoto(caller auth.Caller, id uuid.UUID) error {
	if _, err := s.loadOwned(caller, id); err != nil {
		return err
	}
	return s.store.DeletePhoto(id)
}

func (s *PhotoService) loadOwned(caller auth.Caller, id uuid.UUID) (*models.Photo, error) {
	photo, err := s.store.Photos.GetByID(id)
	if err != nil {
		return nil, err
	}
	if _, err := loadOwnedEvent(s.store, caller, photo.EventID); err != nil {
		return nil, err
	}
	return photo, nil
}

func toPhotoResponse(photo *models.Photo) *PhotoResponse {
	return &PhotoResponse{
		ID:         photo.ID,
		EventID:    photo.EventID,
		CeremonyID: photo.CeremonyID,
		UploadedBy: photo.UploadedBy,
		FileURL:    photo.FileURL,
		FileName:   photo.FileName,
		FileSize:   photo.FileSize,
		MimeType:   photo.MimeType,
		Tags:       photo.Tags,
		Rating:     photo.Rating,
		IsSelected: photo.IsSelected,
		CreatedAt:  formatTime(photo.CreatedAt),
	}
}

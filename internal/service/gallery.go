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

// maxCodeAttempts bounds the retries when a generated access code is already taken
const maxCodeAttempts = 5

// GalleryService governs gallery visibility, access codes and photo selection
type GalleryService struct {
	store     *repository.Store
	validator *validator.Validate
	baseURL   string
}

// NewGalleryService creates a new gallery service. baseURL prefixes share links.
func NewGalleryService(store *repository.Store, validator *validator.Validate, baseURL string) *GalleryService {
	return &GalleryService{
		store:     store,
		validator: validator,
		baseURL:   baseURL,
	}
}

// CreateGalleryRequest represents the request to create a gallery. A private
// gallery without a code is visible to the studio owner only. Owners may pick
// any code; GenerateCode draws a random one of AccessCodeLength characters.
type CreateGalleryRequest struct {
	Name         string  `json:"name" yaml:"name" validate:"required,max=200"`
	Description  string  `json:"description,omitempty" yaml:"description"`
	IsPublic     bool    `json:"is_public" yaml:"is_public"`
	AccessCode   *string `json:"access_code,omitempty" yaml:"access_code" validate:"omitempty,max=64" example:"WEDDING2024"`
	GenerateCode bool    `json:"generate_code,omitempty" yaml:"generate_code"`
}

// UpdateGalleryRequest represents the request to update a gallery. An empty
// access code clears it.
type UpdateGalleryRequest struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description  *string `json:"description,omitempty"`
	IsPublic     *bool   `json:"is_public,omitempty"`
	AccessCode   *string `json:"access_code,omitempty" validate:"omitempty,max=64"`
	GenerateCode bool    `json:"generate_code,omitempty"`
}

// AddGalleryPhotosRequest represents the photos to append to a gallery
type AddGalleryPhotosRequest struct {
	PhotoIDs []uuid.UUID `json:"photo_ids" validate:"required,min=1"`
}

// GalleryResponse represents the response for gallery operations
type GalleryResponse struct {
	ID            uuid.UUID `json:"id"`
	StudioID      uuid.UUID `json:"studio_id"`
	EventID       uuid.UUID `json:"event_id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	IsPublic      bool      `json:"is_public"`
	AccessCode    *string   `json:"access_code,omitempty"`
	HasViewerPath bool      `json:"has_viewer_path"`
	CreatedAt     string    `json:"created_at"`
	UpdatedAt     string    `json:"updated_at"`
}

// GuestGalleryResponse is what an external viewer sees
type GuestGalleryResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Photos      []PhotoResponse `json:"photos"`
}

// ShareLinkResponse represents a shareable gallery link
type ShareLinkResponse struct {
	GalleryID  uuid.UUID `json:"gallery_id"`
	URL        string    `json:"url"`
	AccessCode *string   `json:"access_code,omitempty"`
}

// CreateGallery creates a gallery for an event of the caller's studio
func (s *GalleryService) CreateGallery(caller auth.Caller, eventID uuid.UUID, req *CreateGalleryRequest) (*GalleryResponse, error) {
	event, err := loadOwnedEvent(s.store, caller, eventID)
	if err != nil {
		return nil, err
	}
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	gallery := &models.Gallery{
		StudioID:    event.StudioID,
		EventID:     event.ID,
		Name:        req.Name,
		Description: req.Description,
		IsPublic:    req.IsPublic,
		AccessCode:  optionalString(req.AccessCode),
	}

	err = s.store.Transaction(func(tx *repository.Store) error {
		if gallery.AccessCode == nil && req.GenerateCode {
			code, err := s.freeCode(tx, event.StudioID)
			if err != nil {
				return err
			}
			gallery.AccessCode = &code
		}
		if err := s.checkCodeFree(tx, event.StudioID, gallery.AccessCode, uuid.Nil); err != nil {
			return err
		}
		return tx.Galleries.Create(gallery)
	})
	if err != nil {
		return nil, conflictAsCodeTaken(err)
	}
	return toGalleryResponse(gallery), nil
}

// GetGallery retrieves a gallery
func (s *GalleryService) GetGallery(caller auth.Caller, id uuid.UUID) (*GalleryResponse, error) {
	gallery, err := s.load(caller, id)
	if err != nil {
		return nil, err
	}
	return toGalleryResponse(gallery), nil
}

// ListGalleries lists the galleries of one event, or every gallery of the
// studio (orphaned ones included) when eventID is nil
func (s *GalleryService) ListGalleries(caller auth.Caller, eventID *uuid.UUID) ([]GalleryResponse, error) {
	if err := caller.Validate(); err != nil {
		return nil, err
	}

	preds := []repository.Predicate{
		repository.WhereEq("studio_id", caller.StudioID),
		repository.OrderBy("created_at ASC"),
	}
	if eventID != nil {
		if _, err := loadEvent(s.store, caller, *eventID); err != nil {
			return nil, err
		}
		preds = append(preds, repository.WhereEq("event_id", *eventID))
	} else if !caller.IsStudio() {
		return nil, apperrors.ErrStudioOwnerOnly
	}

	galleries, err := s.store.Galleries.List(preds...)
	if err != nil {
		return nil, fmt.Errorf("failed to list galleries: %w", err)
	}

	responses := make([]GalleryResponse, len(galleries))
	for i := range galleries {
		responses[i] = *toGalleryResponse(&galleries[i])
	}
	return responses, nil
}

// UpdateGallery renames a gallery, toggles it public, or sets or clears its code
func (s *GalleryService) UpdateGallery(caller auth.Caller, id uuid.UUID, req *UpdateGalleryRequest) (*GalleryResponse, error) {
	gallery, err := s.loadOwned(caller, id)
	if err != nil {
		return nil, err
	}
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	patch := map[string]interface{}{}
	if req.Name != nil {
		patch["name"] = *req.Name
	}
	if req.Description != nil {
		patch["description"] = *req.Description
	}
	if req.IsPublic != nil {
		patch["is_public"] = *req.IsPublic
	}

	var updated *models.Gallery
	err = s.store.Transaction(func(tx *repository.Store) error {
		if req.AccessCode != nil {
			code := optionalString(req.AccessCode)
			if err := s.checkCodeFree(tx, gallery.StudioID, code, gallery.ID); err != nil {
				return err
			}
			patch["access_code"] = code
		} else if req.GenerateCode {
			code, err := s.freeCode(tx, gallery.StudioID)
			if err != nil {
				return err
			}
			patch["access_code"] = &code
		}

		var err error
		updated, err = tx.Galleries.Update(id, patch)
		return err
	})
	if err != nil {
		return nil, conflictAsCodeTaken(err)
	}
	return toGalleryResponse(updated), nil
}

// DeleteGallery removes a gallery and its photo links. Photos are kept.
func (s *GalleryService) DeleteGallery(caller auth.Caller, id uuid.UUID) error {
	if _, err := s.loadOwned(caller, id); err != nil {
		return err
	}
	return s.store.DeleteGallery(id)
}

// AddPhotos appends photos to the end of a gallery in the given order. Each
// photo must belong to an event of the gallery's studio and not be linked yet.
func (s *GalleryService) AddPhotos(caller auth.Caller, galleryID uuid.UUID, photoIDs []uuid.UUID) ([]PhotoResponse, error) {
	gallery, err := s.loadOwned(caller, galleryID)
	if err != nil {
		return nil, err
	}
	if err := validateStruct(s.validator, &AddGalleryPhotosRequest{PhotoIDs: photoIDs}); err != nil {
		return nil, err
	}

	err = s.store.Transaction(func(tx *repository.Store) error {
		next, err := tx.GalleryPhotos.MaxInt("order_index", repository.WhereEq("gallery_id", galleryID))
		if err != nil {
			return err
		}

		seen := make(map[uuid.UUID]struct{}, len(photoIDs))
		for _, photoID := range photoIDs {
			if _, dup := seen[photoID]; dup {
				return apperrors.ErrGalleryPhotoExists
			}
			seen[photoID] = struct{}{}

			photo, err := tx.Photos.GetByID(photoID)
			if err != nil {
				return err
			}
			event, err := tx.Events.GetByID(photo.EventID)
			if err != nil {
				return err
			}
			if event.StudioID != gallery.StudioID {
				return apperrors.ErrPhotoEventMismatch
			}

			linked, err := tx.GalleryPhotos.Exists(
				repository.WhereEq("gallery_id", galleryID),
				repository.WhereEq("photo_id", photoID),
			)
			if err != nil {
				return err
			}
			if linked {
				return apperrors.ErrGalleryPhotoExists
			}

			next++
			link := &models.GalleryPhoto{GalleryID: galleryID, PhotoID: photoID, OrderIndex: next}
			if err := tx.GalleryPhotos.Create(link); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.VisiblePhotos(galleryID)
}

// RemovePhoto unlinks a photo from a gallery and closes the gap in the order
func (s *GalleryService) RemovePhoto(caller auth.Caller, galleryID, photoID uuid.UUID) error {
	if _, err := s.loadOwned(caller, galleryID); err != nil {
		return err
	}

	return s.store.Transaction(func(tx *repository.Store) error {
		removed, err := tx.GalleryPhotos.DeleteWhere(
			repository.WhereEq("gallery_id", galleryID),
			repository.WhereEq("photo_id", photoID),
		)
		if err != nil {
			return err
		}
		if removed == 0 {
			return apperrors.ErrGalleryPhotoNotFound
		}
		return tx.RenumberGalleryPhotos(galleryID)
	})
}

// ShareLink builds the viewer link of a gallery
func (s *GalleryService) ShareLink(caller auth.Caller, galleryID uuid.UUID) (*ShareLinkResponse, error) {
	gallery, err := s.loadOwned(caller, galleryID)
	if err != nil {
		return nil, err
	}
	return &ShareLinkResponse{
		GalleryID:  gallery.ID,
		URL:        BuildShareLink(s.baseURL, gallery),
		AccessCode: gallery.AccessCode,
	}, nil
}

// GenerateAccessCode returns a fresh random access code
func (s *GalleryService) GenerateAccessCode() (string, error) {
	return GenerateAccessCode()
}

// ResolveAccess decides whether a viewer presenting suppliedCode may open the gallery
func (s *GalleryService) ResolveAccess(galleryID uuid.UUID, suppliedCode *string) (AccessDecision, error) {
	gallery, err := s.store.Galleries.GetByID(galleryID)
	if err != nil {
		return AccessDenied, err
	}
	return ResolveAccess(gallery, suppliedCode), nil
}

// VisiblePhotos lists the photos linked to a gallery in gallery order. It does
// not check access; call ResolveAccess first.
func (s *GalleryService) VisiblePhotos(galleryID uuid.UUID) ([]PhotoResponse, error) {
	if _, err := s.store.Galleries.GetByID(galleryID); err != nil {
		return nil, err
	}

	links, err := s.store.GalleryPhotos.List(
		repository.WhereEq("gallery_id", galleryID),
		repository.OrderBy("order_index ASC"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list gallery photos: %w", err)
	}
	if len(links) == 0 {
		return []PhotoResponse{}, nil
	}

	ids := make([]uuid.UUID, len(links))
	for i, link := range links {
		ids[i] = link.PhotoID
	}
	photos, err := s.store.Photos.List(repository.WhereIn("id", ids))
	if err != nil {
		return nil, fmt.Errorf("failed to load photos: %w", err)
	}
	byID := make(map[uuid.UUID]*models.Photo, len(photos))
	for i := range photos {
		byID[photos[i].ID] = &photos[i]
	}

	responses := make([]PhotoResponse, 0, len(links))
	for _, link := range links {
		if photo, ok := byID[link.PhotoID]; ok {
			responses = append(responses, *toPhotoResponse(photo))
		}
	}
	return responses, nil
}

// ViewAsGuest resolves access and, when granted, returns the visible photos
func (s *GalleryService) ViewAsGuest(galleryID uuid.UUID, suppliedCode *string) (*GuestGalleryResponse, error) {
	gallery, err := s.store.Galleries.GetByID(galleryID)
	if err != nil {
		return nil, err
	}
	if ResolveAccess(gallery, suppliedCode) != AccessGranted {
		return nil, apperrors.ErrGalleryAccessDenied
	}

	photos, err := s.VisiblePhotos(galleryID)
	if err != nil {
		return nil, err
	}
	return &GuestGalleryResponse{
		ID:          gallery.ID,
		Name:        gallery.Name,
		Description: gallery.Description,
		Photos:      photos,
	}, nil
}

// load fetches a gallery readable by caller. Team members may read galleries
// of events they are assigned to.
func (s *GalleryService) load(caller auth.Caller, id uuid.UUID) (*models.Gallery, error) {
	gallery, err := s.store.Galleries.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := caller.CanAccessStudio(gallery.StudioID); err != nil {
		return nil, err
	}
	if caller.IsTeamMember() {
		if _, err := loadEvent(s.store, caller, gallery.EventID); err != nil {
			if apperrors.IsNotFound(err) {
				return nil, apperrors.ErrStudioOwnerOnly
			}
			return nil, err
		}
	}
	return gallery, nil
}

func (s *GalleryService) loadOwned(caller auth.Caller, id uuid.UUID) (*models.Gallery, error) {
	gallery, err := s.store.Galleries.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := caller.RequireStudio(gallery.StudioID); err != nil {
		return nil, err
	}
	return gallery, nil
}

// checkCodeFree fails with ErrAccessCodeExists when another gallery of the studio uses code
func (s *GalleryService) checkCodeFree(tx *repository.Store, studioID uuid.UUID, code *string, except uuid.UUID) error {
	if code == nil {
		return nil
	}
	taken, err := tx.Galleries.Exists(
		repository.WhereEq("studio_id", studioID),
		repository.WhereEq("access_code", *code),
		repository.Where("id <> ?", except),
	)
	if err != nil {
		return fmt.Errorf("failed to check access code: %w", err)
	}
	if taken {
		return apperrors.ErrAccessCodeExists
	}
	return nil
}

// freeCode generates a code not yet used in the studio
func (s *GalleryService) freeCode(tx *repository.Store, studioID uuid.UUID) (string, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := GenerateAccessCode()
		if err != nil {
			return "", err
		}
		if err := s.checkCodeFree(tx, studioID, &code, uuid.Nil); err == nil {
			return code, nil
		} else if !apperrors.IsConflict(err) {
			return "", err
		}
	}
	return "", apperrors.ErrAccessCodeExists
}

// conflictAsCodeTaken reports a unique index violation on galleries as a taken access code
func conflictAsCodeTaken(err error) error {
	if apperrors.IsConflict(err) {
		return apperrors.ErrAccessCodeExists
	}
	return err
}

func toGalleryResponse(gallery *models.Gallery) *GalleryResponse {
	return &GalleryResponse{
		ID:            gallery.ID,
		StudioID:      gallery.StudioID,
		EventID:       gallery.EventID,
		Name:          gallery.Name,
		Description:   gallery.Description,
		IsPublic:      gallery.IsPublic,
		AccessCode:    gallery.AccessCode,
		HasViewerPath: gallery.HasViewerPath(),
		CreatedAt:     formatTime(gallery.CreatedAt),
		UpdatedAt:     formatTime(gallery.UpdatedAt),
	}
}

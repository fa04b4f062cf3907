package service

import (
	"photostudio-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// Services bundles every service over one store
type Services struct {
	Studios     StudioServiceInterface
	TeamMembers TeamMemberServiceInterface
	Events      EventServiceInterface
	Ceremonies  CeremonyServiceInterface
	Assignments AssignmentServiceInterface
	Galleries   GalleryServiceInterface
	Photos      PhotoServiceInterface
	Uploads     UploadTrackerInterface
}

// NewServices wires all services to store. Share links are built on galleryBaseURL.
func NewServices(store *repository.Store, validator *validator.Validate, galleryBaseURL string) *Services {
	photos := NewPhotoService(store, validator)
	return &Services{
		Studios:     NewStudioService(store, validator),
		TeamMembers: NewTeamMemberService(store, validator),
		Events:      NewEventService(store, validator),
		Ceremonies:  NewCeremonyService(store, validator),
		Assignments: NewAssignmentService(store, validator),
		Galleries:   NewGalleryService(store, validator, galleryBaseURL),
		Photos:      photos,
		Uploads:     NewUploadTracker(photos, 0),
	}
}

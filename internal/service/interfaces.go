package service

import (
	"context"

	"photostudio-backend/internal/auth"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// StudioServiceInterface defines the interface for studio service
type StudioServiceInterface interface {
	CreateStudio(req *CreateStudioRequest) (*StudioResponse, error)
	GetStudio(caller auth.Caller, id uuid.UUID) (*StudioResponse, error)
	UpdateStudio(caller auth.Caller, id uuid.UUID, req *UpdateStudioRequest) (*StudioResponse, error)
	DeleteStudio(caller auth.Caller, id uuid.UUID) error
}

// TeamMemberServiceInterface defines the interface for team member service
type TeamMemberServiceInterface interface {
	CreateTeamMember(caller auth.Caller, req *CreateTeamMemberRequest) (*TeamMemberResponse, error)
	GetTeamMember(caller auth.Caller, id uuid.UUID) (*TeamMemberResponse, error)
	ListTeamMembers(caller auth.Caller, activeOnly bool) ([]TeamMemberResponse, error)
	UpdateTeamMember(caller auth.Caller, id uuid.UUID, req *UpdateTeamMemberRequest) (*TeamMemberResponse, error)
	DeleteTeamMember(caller auth.Caller, id uuid.UUID) error
}

// EventServiceInterface defines the interface for the event lifecycle
type EventServiceInterface interface {
	CreateEvent(caller auth.Caller, req *CreateEventRequest) (*EventResponse, error)
	GetEvent(caller auth.Caller, id uuid.UUID) (*EventResponse, error)
	ListEvents(caller auth.Caller, filter *EventFilter) ([]EventResponse, error)
	UpdateEvent(caller auth.Caller, id uuid.UUID, req *UpdateEventRequest) (*EventResponse, error)
	Transition(caller auth.Caller, id uuid.UUID, status string) (*EventResponse, error)
	DeleteEvent(caller auth.Caller, id uuid.UUID) error
}

// CeremonyServiceInterface defines the interface for the ceremony scheduler
type CeremonyServiceInterface interface {
	AddCeremony(caller auth.Caller, eventID uuid.UUID, req *CreateCeremonyRequest) (*CeremonyResponse, error)
	UpdateCeremony(caller auth.Caller, id uuid.UUID, req *UpdateCeremonyRequest) (*CeremonyResponse, error)
	Reorder(caller auth.Caller, eventID uuid.UUID, orderedIDs []uuid.UUID) ([]CeremonyResponse, error)
	RemoveCeremony(caller auth.Caller, id uuid.UUID) error
	ListCeremonies(caller auth.Caller, eventID uuid.UUID) ([]CeremonyResponse, error)
}

// AssignmentServiceInterface defines the interface for the assignment manager
type AssignmentServiceInterface interface {
	Assign(caller auth.Caller, eventID uuid.UUID, req *AssignRequest) (*AssignmentResponse, error)
	Unassign(caller auth.Caller, id uuid.UUID) error
	ListForScope(caller auth.Caller, eventID uuid.UUID, ceremonyID *uuid.UUID) ([]AssignmentResponse, error)
	ListForMember(caller auth.Caller, memberID uuid.UUID) ([]AssignmentResponse, error)
}

// GalleryServiceInterface defines the interface for the gallery access controller
type GalleryServiceInterface interface {
	CreateGallery(caller auth.Caller, eventID uuid.UUID, req *CreateGalleryRequest) (*GalleryResponse, error)
	GetGallery(caller auth.Caller, id uuid.UUID) (*GalleryResponse, error)
	ListGalleries(caller auth.Caller, eventID *uuid.UUID) ([]GalleryResponse, error)
	UpdateGallery(caller auth.Caller, id uuid.UUID, req *UpdateGalleryRequest) (*GalleryResponse, error)
	DeleteGallery(caller auth.Caller, id uuid.UUID) error
	AddPhotos(caller auth.Caller, galleryID uuid.UUID, photoIDs []uuid.UUID) ([]PhotoResponse, error)
	RemovePhoto(caller auth.Caller, galleryID, photoID uuid.UUID) error
	ShareLink(caller auth.Caller, galleryID uuid.UUID) (*ShareLinkResponse, error)
	GenerateAccessCode() (string, error)
	ResolveAccess(galleryID uuid.UUID, suppliedCode *string) (AccessDecision, error)
	VisiblePhotos(galleryID uuid.UUID) ([]PhotoResponse, error)
	ViewAsGuest(galleryID uuid.UUID, suppliedCode *string) (*GuestGalleryResponse, error)
}

// PhotoServiceInterface defines the interface for photo service
type PhotoServiceInterface interface {
	Ingest(caller auth.Caller, req *IngestPhotoRequest) (*PhotoResponse, error)
	GetPhoto(caller auth.Caller, id uuid.UUID) (*PhotoResponse, error)
	ListPhotos(caller auth.Caller, eventID uuid.UUID, filter *PhotoFilter) ([]PhotoResponse, error)
	Rate(caller auth.Caller, id uuid.UUID, rating int) (*PhotoResponse, error)
	SetSelected(caller auth.Caller, id uuid.UUID, selected bool) (*PhotoResponse, error)
	DeletePhoto(caller auth.Caller, id uuid.UUID) error
}

// UploadTrackerInterface defines the interface for asynchronous photo ingest
type UploadTrackerInterface interface {
	Start(ctx context.Context, caller auth.Caller, req *IngestPhotoRequest) <-chan UploadEvent
}

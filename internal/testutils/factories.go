package testutils

import (
	"fmt"
	"time"

	"photostudio-backend/internal/database/models"

	"github.com/google/uuid"
)

func newBase() models.BaseModel {
	now := time.Now()
	return models.BaseModel{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// StudioFactory provides methods to create test Studio data
type StudioFactory struct{}

// NewStudioFactory creates a new StudioFactory
func NewStudioFactory() *StudioFactory {
	return &StudioFactory{}
}

// Create creates a test Studio with default values
func (f *StudioFactory) Create() *models.Studio {
	return &models.Studio{
		BaseModel:   newBase(),
		Name:        "Test Studio",
		Email:       "hello@teststudio.com",
		Phone:       "+1 555 0100",
		Address:     "1 Shutter Lane",
		Description: "A test studio for testing purposes",
	}
}

// WithName sets a custom name for the studio
func (f *StudioFactory) WithName(name string) *models.Studio {
	s := f.Create()
	s.Name = name
	return s
}

// TeamMemberFactory provides methods to create test TeamMember data
type TeamMemberFactory struct{}

// NewTeamMemberFactory creates a new TeamMemberFactory
func NewTeamMemberFactory() *TeamMemberFactory {
	return &TeamMemberFactory{}
}

// Create creates an active test TeamMember with a unique email
func (f *TeamMemberFactory) Create() *models.TeamMember {
	base := newBase()
	return &models.TeamMember{
		BaseModel:      base,
		StudioID:       uuid.New(),
		Name:           "Test Member",
		Email:          fmt.Sprintf("member-%s@teststudio.com", base.ID.String()[:8]),
		Role:           "Photographer",
		Specialization: "Weddings",
		IsActive:       true,
	}
}

// ForStudio creates a test TeamMember owned by studioID
func (f *TeamMemberFactory) ForStudio(studioID uuid.UUID) *models.TeamMember {
	m := f.Create()
	m.StudioID = studioID
	return m
}

// Inactive creates a deactivated test TeamMember owned by studioID
func (f *TeamMemberFactory) Inactive(studioID uuid.UUID) *models.TeamMember {
	m := f.ForStudio(studioID)
	m.IsActive = false
	return m
}

// EventFactory provides methods to create test Event data
type EventFactory struct{}

// NewEventFactory creates a new EventFactory
func NewEventFactory() *EventFactory {
	return &EventFactory{}
}

// Create creates an upcoming test Event
func (f *EventFactory) Create() *models.Event {
	return &models.Event{
		BaseModel:   newBase(),
		StudioID:    uuid.New(),
		Name:        "Test Wedding",
		Date:        "2024-06-15",
		Time:        "14:00",
		Venue:       "Grand Hall",
		ClientName:  "Jane Doe",
		ClientEmail: "jane@example.com",
		Status:      models.EventStatusUpcoming,
	}
}

// ForStudio creates a test Event owned by studioID
func (f *EventFactory) ForStudio(studioID uuid.UUID) *models.Event {
	e := f.Create()
	e.StudioID = studioID
	return e
}

// WithStatus creates a test Event owned by studioID in the given status
func (f *EventFactory) WithStatus(studioID uuid.UUID, status models.EventStatus) *models.Event {
	e := f.ForStudio(studioID)
	e.Status = status
	return e
}

// CeremonyFactory provides methods to create test Ceremony data
type CeremonyFactory struct{}

// NewCeremonyFactory creates a new CeremonyFactory
func NewCeremonyFactory() *CeremonyFactory {
	return &CeremonyFactory{}
}

// Create creates a test Ceremony of eventID at position orderIndex
func (f *CeremonyFactory) Create(eventID uuid.UUID, name string, orderIndex int) *models.Ceremony {
	return &models.Ceremony{
		BaseModel:  newBase(),
		EventID:    eventID,
		Name:       name,
		OrderIndex: orderIndex,
	}
}

// AssignmentFactory provides methods to create test TeamAssignment data
type AssignmentFactory struct{}

// NewAssignmentFactory creates a new AssignmentFactory
func NewAssignmentFactory() *AssignmentFactory {
	return &AssignmentFactory{}
}

// WholeEvent creates a test assignment of memberID to every ceremony of eventID
func (f *AssignmentFactory) WholeEvent(eventID, memberID uuid.UUID) *models.TeamAssignment {
	return &models.TeamAssignment{
		BaseModel:    newBase(),
		EventID:      eventID,
		TeamMemberID: memberID,
	}
}

// ForCeremony creates a test assignment of memberID scoped to ceremonyID
func (f *AssignmentFactory) ForCeremony(eventID, ceremonyID, memberID uuid.UUID) *models.TeamAssignment {
	a := f.WholeEvent(eventID, memberID)
	a.CeremonyID = &ceremonyID
	return a
}

// GalleryFactory provides methods to create test Gallery data
type GalleryFactory struct{}

// NewGalleryFactory creates a new GalleryFactory
func NewGalleryFactory() *GalleryFactory {
	return &GalleryFactory{}
}

// Create creates a private, code-less test Gallery for event
func (f *GalleryFactory) Create(event *models.Event) *models.Gallery {
	return &models.Gallery{
		BaseModel: newBase(),
		StudioID:  event.StudioID,
		EventID:   event.ID,
		Name:      "Highlights",
	}
}

// Public creates a public test Gallery for event
func (f *GalleryFactory) Public(event *models.Event) *models.Gallery {
	g := f.Create(event)
	g.IsPublic = true
	return g
}

// WithCode creates a private test Gallery for event protected by code
func (f *GalleryFactory) WithCode(event *models.Event, code string) *models.Gallery {
	g := f.Create(event)
	g.AccessCode = &code
	return g
}

// PhotoFactory provides methods to create test Photo data
type PhotoFactory struct{}

// NewPhotoFactory creates a new PhotoFactory
func NewPhotoFactory() *PhotoFactory {
	return &PhotoFactory{}
}

// Create creates a test Photo of eventID uploaded by uploaderID
func (f *PhotoFactory) Create(eventID, uploaderID uuid.UUID) *models.Photo {
	base := newBase()
	name := fmt.Sprintf("IMG_%s.jpg", base.ID.String()[:8])
	return &models.Photo{
		BaseModel:  base,
		EventID:    eventID,
		UploadedBy: uploaderID,
		FileURL:    "https://cdn.example.com/" + name,
		FileName:   name,
		FileSize:   2048000,
		MimeType:   "image/jpeg",
	}
}

// ForCeremony creates a test Photo tagged with ceremonyID
func (f *PhotoFactory) ForCeremony(eventID, ceremonyID, uploaderID uuid.UUID) *models.Photo {
	p := f.Create(eventID, uploaderID)
	p.CeremonyID = &ceremonyID
	return p
}

// Link creates a test GalleryPhoto placing photoID in galleryID at orderIndex
func (f *PhotoFactory) Link(galleryID, photoID uuid.UUID, orderIndex int) *models.GalleryPhoto {
	return &models.GalleryPhoto{
		BaseModel:  newBase(),
		GalleryID:  galleryID,
		PhotoID:    photoID,
		OrderIndex: orderIndex,
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	Studio     *StudioFactory
	TeamMember *TeamMemberFactory
	Event      *EventFactory
	Ceremony   *CeremonyFactory
	Assignment *AssignmentFactory
	Gallery    *GalleryFactory
	Photo      *PhotoFactory
}

// NewFactorySet creates a new FactorySet with all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Studio:     NewStudioFactory(),
		TeamMember: NewTeamMemberFactory(),
		Event:      NewEventFactory(),
		Ceremony:   NewCeremonyFactory(),
		Assignment: NewAssignmentFactory(),
		Gallery:    NewGalleryFactory(),
		Photo:      NewPhotoFactory(),
	}
}

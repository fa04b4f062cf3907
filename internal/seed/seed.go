package seed

import (
	"context"
	"fmt"
	"strings"

	"photostudio-backend/internal/auth"
	"photostudio-backend/internal/database/models"
	"photostudio-backend/internal/logger"
	"photostudio-backend/internal/service"

	"github.com/google/uuid"
)

// Result counts what a fixture produced
type Result struct {
	StudioID    uuid.UUID `json:"studio_id"`
	TeamMembers int       `json:"team_members"`
	Events      int       `json:"events"`
	Ceremonies  int       `json:"ceremonies"`
	Assignments int       `json:"assignments"`
	Photos      int       `json:"photos"`
	Galleries   int       `json:"galleries"`
}

// Seeder records fixtures through the services
type Seeder struct {
	services *service.Services
}

// NewSeeder creates a seeder over services
func NewSeeder(services *service.Services) *Seeder {
	return &Seeder{services: services}
}

// Seed creates the fixture's studio and everything below it. Each service call
// commits on its own, so a failure leaves the records created before it.
func (s *Seeder) Seed(ctx context.Context, fixture *StudioFixture) (*Result, error) {
	log := logger.WithContext(ctx).WithField("fixture", fixture.Source)

	studio, err := s.services.Studios.CreateStudio(&fixture.Studio)
	if err != nil {
		return nil, fmt.Errorf("studio %q: %w", fixture.Studio.Name, err)
	}
	owner := auth.StudioCaller(studio.ID)
	result := &Result{StudioID: studio.ID}

	members := make(map[string]uuid.UUID, len(fixture.TeamMembers))
	for i := range fixture.TeamMembers {
		member, err := s.services.TeamMembers.CreateTeamMember(owner, &fixture.TeamMembers[i])
		if err != nil {
			return result, fmt.Errorf("team member %q: %w", fixture.TeamMembers[i].Email, err)
		}
		members[member.Email] = member.ID
		result.TeamMembers++
	}

	for i := range fixture.Events {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		ev := &fixture.Events[i]
		if err := s.seedEvent(owner, ev, members, result); err != nil {
			return result, fmt.Errorf("event %q: %w", ev.Name, err)
		}
	}

	log.WithFields(map[string]interface{}{
		"studio_id": result.StudioID,
		"events":    result.Events,
		"photos":    result.Photos,
	}).Info("Fixture seeded")
	return result, nil
}

func (s *Seeder) seedEvent(owner auth.Caller, ev *EventFixture, members map[string]uuid.UUID, result *Result) error {
	event, err := s.services.Events.CreateEvent(owner, &ev.CreateEventRequest)
	if err != nil {
		return err
	}
	result.Events++

	ceremonies := make(map[string]uuid.UUID, len(ev.Ceremonies))
	for i := range ev.Ceremonies {
		ceremony, err := s.services.Ceremonies.AddCeremony(owner, event.ID, &ev.Ceremonies[i])
		if err != nil {
			return fmt.Errorf("ceremony %q: %w", ev.Ceremonies[i].Name, err)
		}
		ceremonies[ceremony.Name] = ceremony.ID
		result.Ceremonies++
	}

	for _, a := range ev.Assignments {
		memberID, err := lookupMember(members, a.MemberEmail)
		if err != nil {
			return err
		}
		ceremonyID, err := lookupCeremony(ceremonies, a.Ceremony)
		if err != nil {
			return err
		}
		req := &service.AssignRequest{TeamMemberID: memberID, CeremonyID: ceremonyID, Role: a.Role}
		if _, err := s.services.Assignments.Assign(owner, event.ID, req); err != nil {
			return fmt.Errorf("assignment of %q: %w", a.MemberEmail, err)
		}
		result.Assignments++
	}

	photos := make(map[string]uuid.UUID, len(ev.Photos))
	for _, p := range ev.Photos {
		photoID, err := s.seedPhoto(owner, event.ID, p, members, ceremonies)
		if err != nil {
			return fmt.Errorf("photo %q: %w", p.FileName, err)
		}
		photos[p.FileName] = photoID
		result.Photos++
	}

	for i := range ev.Galleries {
		g := &ev.Galleries[i]
		gallery, err := s.services.Galleries.CreateGallery(owner, event.ID, &g.CreateGalleryRequest)
		if err != nil {
			return fmt.Errorf("gallery %q: %w", g.Name, err)
		}
		if len(g.Photos) > 0 {
			ids := make([]uuid.UUID, 0, len(g.Photos))
			for _, name := range g.Photos {
				id, ok := photos[name]
				if !ok {
					return fmt.Errorf("gallery %q: unknown photo %q", g.Name, name)
				}
				ids = append(ids, id)
			}
			if _, err := s.services.Galleries.AddPhotos(owner, gallery.ID, ids); err != nil {
				return fmt.Errorf("gallery %q: %w", g.Name, err)
			}
		}
		result.Galleries++
	}

	for _, status := range transitionPath(ev.Status) {
		if _, err := s.services.Events.Transition(owner, event.ID, status); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedPhoto(owner auth.Caller, eventID uuid.UUID, p PhotoFixture, members, ceremonies map[string]uuid.UUID) (uuid.UUID, error) {
	ceremonyID, err := lookupCeremony(ceremonies, p.Ceremony)
	if err != nil {
		return uuid.Nil, err
	}
	req := &service.IngestPhotoRequest{
		EventID:    eventID,
		CeremonyID: ceremonyID,
		FileURL:    p.FileURL,
		FileName:   p.FileName,
		FileSize:   p.FileSize,
		MimeType:   p.MimeType,
		Tags:       p.Tags,
	}
	if p.UploadedBy != "" {
		memberID, err := lookupMember(members, p.UploadedBy)
		if err != nil {
			return uuid.Nil, err
		}
		req.UploadedBy = &memberID
	}

	photo, err := s.services.Photos.Ingest(owner, req)
	if err != nil {
		return uuid.Nil, err
	}
	if p.Rating != 0 {
		if _, err := s.services.Photos.Rate(owner, photo.ID, p.Rating); err != nil {
			return uuid.Nil, err
		}
	}
	if p.Selected {
		if _, err := s.services.Photos.SetSelected(owner, photo.ID, true); err != nil {
			return uuid.Nil, err
		}
	}
	return photo.ID, nil
}

func lookupMember(members map[string]uuid.UUID, email string) (uuid.UUID, error) {
	id, ok := members[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return uuid.Nil, fmt.Errorf("unknown team member %q", email)
	}
	return id, nil
}

func lookupCeremony(ceremonies map[string]uuid.UUID, name string) (*uuid.UUID, error) {
	if name == "" {
		return nil, nil
	}
	id, ok := ceremonies[name]
	if !ok {
		return nil, fmt.Errorf("unknown ceremony %q", name)
	}
	return &id, nil
}

// transitionPath lists the statuses a new event passes through to reach target
func transitionPath(target string) []string {
	switch models.EventStatus(target) {
	case "", models.EventStatusUpcoming:
		return nil
	case models.EventStatusOngoing:
		return []string{string(models.EventStatusOngoing)}
	case models.EventStatusCompleted:
		return []string{string(models.EventStatusOngoing), string(models.EventStatusCompleted)}
	default:
		return []string{target}
	}
}

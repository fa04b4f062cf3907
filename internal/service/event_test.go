package service_test

import (
	"testing"

	"photostudio-backend/internal/auth"
	"photostudio-backend/internal/database/models"
	apperrors "photostudio-backend/internal/errors"
	"photostudio-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type EventServiceTestSuite struct {
	storeSuite
}

func (suite *EventServiceTestSuite) TestCreateEvent() {
	resp, err := suite.events.CreateEvent(suite.owner, &service.CreateEventRequest{
		Name:        "Smith Wedding",
		Date:        "2024-06-15",
		Time:        "14:00",
		Venue:       "Rose Garden",
		ClientName:  "Anna Smith",
		ClientEmail: "anna@example.com",
	})
	suite.Require().NoError(err)
	suite.Equal(suite.studio.ID, resp.StudioID)
	suite.Equal(models.EventStatusUpcoming, resp.Status)
	suite.NotEmpty(resp.CreatedAt)

	_, err = suite.events.CreateEvent(suite.owner, &service.CreateEventRequest{
		Name:       "Bad Date",
		Date:       "15/06/2024",
		Time:       "14:00",
		Venue:      "Rose Garden",
		ClientName: "Anna Smith",
	})
	suite.True(apperrors.IsValidation(err))

	member := suite.createMember()
	_, err = suite.events.CreateEvent(auth.TeamMemberCaller(suite.studio.ID, member.ID), &service.CreateEventRequest{
		Name: "Crew Event", Date: "2024-06-15", Time: "14:00", Venue: "Hall", ClientName: "X",
	})
	suite.ErrorIs(err, apperrors.ErrStudioOwnerOnly)
}

func (suite *EventServiceTestSuite) TestTransitions() {
	tests := []struct {
		from  models.EventStatus
		to    models.EventStatus
		legal bool
	}{
		{models.EventStatusUpcoming, models.EventStatusOngoing, true},
		{models.EventStatusUpcoming, models.EventStatusCancelled, true},
		{models.EventStatusOngoing, models.EventStatusCompleted, true},
		{models.EventStatusOngoing, models.EventStatusCancelled, true},
		{models.EventStatusUpcoming, models.EventStatusCompleted, false},
		{models.EventStatusOngoing, models.EventStatusUpcoming, false},
		{models.EventStatusCompleted, models.EventStatusOngoing, false},
		{models.EventStatusCompleted, models.EventStatusCancelled, false},
		{models.EventStatusCancelled, models.EventStatusUpcoming, false},
		{models.EventStatusCancelled, models.EventStatusOngoing, false},
		{models.EventStatusUpcoming, models.EventStatusUpcoming, false},
	}
	for _, tt := range tests {
		suite.Run(string(tt.from)+"->"+string(tt.to), func() {
			event := suite.createEvent(tt.from)
			resp, err := suite.events.Transition(suite.owner, event.ID, string(tt.to))
			if tt.legal {
				suite.Require().NoError(err)
				suite.Equal(tt.to, resp.Status)
				return
			}
			suite.True(apperrors.IsInvalidTransition(err), "unexpected error: %v", err)

			stored, err := suite.store.Events.GetByID(event.ID)
			suite.Require().NoError(err)
			suite.Equal(tt.from, stored.Status)
		})
	}
}

func (suite *EventServiceTestSuite) TestTransitionRejectsUnknownStatus() {
	event := suite.createEvent(models.EventStatusUpcoming)
	_, err := suite.events.Transition(suite.owner, event.ID, "postponed")
	suite.True(apperrors.IsValidation(err))
}

func (suite *EventServiceTestSuite) TestUpdateEventInAnyState() {
	event := suite.createEvent(models.EventStatusCompleted)
	resp, err := suite.events.UpdateEvent(suite.owner, event.ID, &service.UpdateEventRequest{Venue: strPtr("Boathouse")})
	suite.Require().NoError(err)
	suite.Equal("Boathouse", resp.Venue)
	suite.Equal(models.EventStatusCompleted, resp.Status)

	_, err = suite.events.UpdateEvent(suite.owner, uuid.New(), &service.UpdateEventRequest{Venue: strPtr("Nowhere")})
	suite.ErrorIs(err, apperrors.ErrEventNotFound)
}

func (suite *EventServiceTestSuite) TestListEventsFilters() {
	early := suite.factories.Event.ForStudio(suite.studio.ID)
	early.Date = "2024-03-01"
	late := suite.factories.Event.WithStatus(suite.studio.ID, models.EventStatusCancelled)
	late.Date = "2024-09-01"
	suite.Require().NoError(suite.store.Events.Create(late))
	suite.Require().NoError(suite.store.Events.Create(early))

	rival := suite.factories.Event.ForStudio(suite.createStudio("Rival").ID)
	suite.Require().NoError(suite.store.Events.Create(rival))

	all, err := suite.events.ListEvents(suite.owner, nil)
	suite.Require().NoError(err)
	suite.Require().Len(all, 2)
	suite.Equal(early.ID, all[0].ID)
	suite.Equal(late.ID, all[1].ID)

	cancelled := models.EventStatusCancelled
	byStatus, err := suite.events.ListEvents(suite.owner, &service.EventFilter{Status: &cancelled})
	suite.Require().NoError(err)
	suite.Require().Len(byStatus, 1)
	suite.Equal(late.ID, byStatus[0].ID)

	byDate, err := suite.events.ListEvents(suite.owner, &service.EventFilter{From: "2024-06-01"})
	suite.Require().NoError(err)
	suite.Require().Len(byDate, 1)
	suite.Equal(late.ID, byDate[0].ID)
}

func (suite *EventServiceTestSuite) TestTeamMembersSeeAssignedEventsOnly() {
	assigned := suite.createEvent(models.EventStatusUpcoming)
	hidden := suite.createEvent(models.EventStatusUpcoming)
	member := suite.createMember()
	c := suite.addCeremony(assigned, "Ceremony")
	suite.Require().NoError(suite.store.Assignments.Create(suite.factories.Assignment.ForCeremony(assigned.ID, c.ID, member.ID)))

	crew := auth.TeamMemberCaller(suite.studio.ID, member.ID)
	list, err := suite.events.ListEvents(crew, nil)
	suite.Require().NoError(err)
	suite.Require().Len(list, 1)
	suite.Equal(assigned.ID, list[0].ID)

	_, err = suite.events.GetEvent(crew, hidden.ID)
	suite.ErrorIs(err, apperrors.ErrNotAssignedToEvent)

	_, err = suite.events.Transition(crew, assigned.ID, string(models.EventStatusOngoing))
	suite.ErrorIs(err, apperrors.ErrStudioOwnerOnly)
}

func (suite *EventServiceTestSuite) TestDeleteEventCascade() {
	event := suite.createEvent(models.EventStatusOngoing)
	member := suite.createMember()
	c := suite.addCeremony(event, "Ceremony")
	_, err := suite.assignments.Assign(suite.owner, event.ID, &service.AssignRequest{TeamMemberID: member.ID, CeremonyID: &c.ID})
	suite.Require().NoError(err)
	photo := suite.createPhoto(event)
	gallery, err := suite.galleries.CreateGallery(suite.owner, event.ID, &service.CreateGalleryRequest{Name: "Proofs", IsPublic: true})
	suite.Require().NoError(err)
	_, err = suite.galleries.AddPhotos(suite.owner, gallery.ID, []uuid.UUID{photo.ID})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.events.DeleteEvent(suite.owner, event.ID))

	for name, count := range map[string]func() (int64, error){
		"ceremonies":     func() (int64, error) { return suite.store.Ceremonies.Count() },
		"assignments":    func() (int64, error) { return suite.store.Assignments.Count() },
		"photos":         func() (int64, error) { return suite.store.Photos.Count() },
		"gallery photos": func() (int64, error) { return suite.store.GalleryPhotos.Count() },
	} {
		n, err := count()
		suite.Require().NoError(err)
		suite.Zero(n, "%s must be gone", name)
	}

	// galleries outlive their event
	kept, err := suite.galleries.GetGallery(suite.owner, gallery.ID)
	suite.Require().NoError(err)
	suite.Equal(event.ID, kept.EventID)

	_, err = suite.events.GetEvent(suite.owner, event.ID)
	suite.True(apperrors.IsNotFound(err))
}

func TestEventServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EventServiceTestSuite))
}

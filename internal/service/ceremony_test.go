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

type CeremonyServiceTestSuite struct {
	storeSuite
}

func (suite *CeremonyServiceTestSuite) TestGalaScenario() {
	event, err := suite.events.CreateEvent(suite.owner, &service.CreateEventRequest{
		Name:       "Gala",
		Date:       "2024-11-02",
		Time:       "19:00",
		Venue:      "Opera House",
		ClientName: "City Arts Council",
	})
	suite.Require().NoError(err)
	suite.Equal(models.EventStatusUpcoming, event.Status)

	dinner, err := suite.ceremonies.AddCeremony(suite.owner, event.ID, &service.CreateCeremonyRequest{Name: "Dinner"})
	suite.Require().NoError(err)
	suite.Equal(1, dinner.OrderIndex)

	awards, err := suite.ceremonies.AddCeremony(suite.owner, event.ID, &service.CreateCeremonyRequest{Name: "Awards"})
	suite.Require().NoError(err)
	suite.Equal(2, awards.OrderIndex)

	suite.Require().NoError(suite.ceremonies.RemoveCeremony(suite.owner, dinner.ID))

	list, err := suite.ceremonies.ListCeremonies(suite.owner, event.ID)
	suite.Require().NoError(err)
	suite.Require().Len(list, 1)
	suite.Equal(awards.ID, list[0].ID)
	suite.Equal(1, list[0].OrderIndex)
}

func (suite *CeremonyServiceTestSuite) TestOrderStaysContiguous() {
	event := suite.createEvent(models.EventStatusUpcoming)
	a := suite.addCeremony(event, "Getting Ready")
	b := suite.addCeremony(event, "Ceremony")
	c := suite.addCeremony(event, "Reception")
	d := suite.addCeremony(event, "Send Off")
	suite.Equal([]string{"Getting Ready", "Ceremony", "Reception", "Send Off"}, suite.ceremonyOrder(event))

	suite.Require().NoError(suite.ceremonies.RemoveCeremony(suite.owner, b.ID))
	suite.Equal([]string{"Getting Ready", "Reception", "Send Off"}, suite.ceremonyOrder(event))

	_, err := suite.ceremonies.Reorder(suite.owner, event.ID, []uuid.UUID{d.ID, a.ID, c.ID})
	suite.Require().NoError(err)
	suite.Equal([]string{"Send Off", "Getting Ready", "Reception"}, suite.ceremonyOrder(event))

	e := suite.addCeremony(event, "After Party")
	suite.Equal(4, e.OrderIndex)
	suite.Equal([]string{"Send Off", "Getting Ready", "Reception", "After Party"}, suite.ceremonyOrder(event))
}

func (suite *CeremonyServiceTestSuite) TestReorderRejectsBadSets() {
	event := suite.createEvent(models.EventStatusUpcoming)
	a := suite.addCeremony(event, "Ceremony")
	b := suite.addCeremony(event, "Reception")

	other := suite.createEvent(models.EventStatusUpcoming)
	foreign := suite.addCeremony(other, "Elsewhere")

	tests := []struct {
		name string
		ids  []uuid.UUID
		want error
	}{
		{name: "duplicate", ids: []uuid.UUID{a.ID, a.ID}, want: apperrors.ErrDuplicateCeremonyIDs},
		{name: "missing", ids: []uuid.UUID{a.ID}, want: apperrors.ErrCeremonySetMismatch},
		{name: "foreign", ids: []uuid.UUID{a.ID, foreign.ID}, want: apperrors.ErrCeremonySetMismatch},
		{name: "extra", ids: []uuid.UUID{a.ID, b.ID, foreign.ID}, want: apperrors.ErrCeremonySetMismatch},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.ceremonies.Reorder(suite.owner, event.ID, tt.ids)
			suite.ErrorIs(err, tt.want)
			suite.True(apperrors.IsValidation(err))
		})
	}

	suite.Equal([]string{"Ceremony", "Reception"}, suite.ceremonyOrder(event))
}

func (suite *CeremonyServiceTestSuite) TestTimeWindow() {
	event := suite.createEvent(models.EventStatusUpcoming)

	_, err := suite.ceremonies.AddCeremony(suite.owner, event.ID, &service.CreateCeremonyRequest{
		Name:      "Vows",
		StartTime: strPtr("16:00"),
		EndTime:   strPtr("15:30"),
	})
	suite.ErrorIs(err, apperrors.ErrInvalidTimeRange)

	_, err = suite.ceremonies.AddCeremony(suite.owner, event.ID, &service.CreateCeremonyRequest{
		Name:      "Vows",
		StartTime: strPtr("4pm"),
	})
	suite.True(apperrors.IsValidation(err))

	vows, err := suite.ceremonies.AddCeremony(suite.owner, event.ID, &service.CreateCeremonyRequest{
		Name:      "Vows",
		StartTime: strPtr("16:00"),
		EndTime:   strPtr("16:30"),
	})
	suite.Require().NoError(err)

	// merged with the stored start time
	_, err = suite.ceremonies.UpdateCeremony(suite.owner, vows.ID, &service.UpdateCeremonyRequest{EndTime: strPtr("15:00")})
	suite.ErrorIs(err, apperrors.ErrInvalidTimeRange)

	updated, err := suite.ceremonies.UpdateCeremony(suite.owner, vows.ID, &service.UpdateCeremonyRequest{EndTime: strPtr("")})
	suite.Require().NoError(err)
	suite.Nil(updated.EndTime)
	suite.Equal("16:00", *updated.StartTime)
}

func (suite *CeremonyServiceTestSuite) TestSchedulingClosedAfterCompletion() {
	for _, status := range []models.EventStatus{models.EventStatusCompleted, models.EventStatusCancelled} {
		event := suite.createEvent(status)
		c := suite.factories.Ceremony.Create(event.ID, "Ceremony", 1)
		suite.Require().NoError(suite.store.Ceremonies.Create(c))

		_, err := suite.ceremonies.AddCeremony(suite.owner, event.ID, &service.CreateCeremonyRequest{Name: "Late"})
		suite.ErrorIs(err, apperrors.ErrEventNotSchedulable)

		_, err = suite.ceremonies.UpdateCeremony(suite.owner, c.ID, &service.UpdateCeremonyRequest{Name: strPtr("Renamed")})
		suite.ErrorIs(err, apperrors.ErrEventNotSchedulable)

		suite.NoError(suite.ceremonies.RemoveCeremony(suite.owner, c.ID))
	}
}

func (suite *CeremonyServiceTestSuite) TestRemoveCeremonyCascades() {
	event := suite.createEvent(models.EventStatusUpcoming)
	member := suite.createMember()
	c := suite.addCeremony(event, "Ceremony")
	suite.addCeremony(event, "Reception")

	_, err := suite.assignments.Assign(suite.owner, event.ID, &service.AssignRequest{TeamMemberID: member.ID, CeremonyID: &c.ID})
	suite.Require().NoError(err)
	_, err = suite.assignments.Assign(suite.owner, event.ID, &service.AssignRequest{TeamMemberID: member.ID})
	suite.Require().NoError(err)

	photo := suite.factories.Photo.ForCeremony(event.ID, c.ID, member.ID)
	suite.Require().NoError(suite.store.Photos.Create(photo))

	suite.Require().NoError(suite.ceremonies.RemoveCeremony(suite.owner, c.ID))

	scoped, err := suite.store.Assignments.Count()
	suite.Require().NoError(err)
	suite.Equal(int64(1), scoped, "only the whole-event assignment survives")

	kept, err := suite.store.Photos.GetByID(photo.ID)
	suite.Require().NoError(err)
	suite.Nil(kept.CeremonyID)

	err = suite.ceremonies.RemoveCeremony(suite.owner, c.ID)
	suite.True(apperrors.IsNotFound(err))
}

func (suite *CeremonyServiceTestSuite) TestOwnerOnlyWrites() {
	event := suite.createEvent(models.EventStatusUpcoming)
	member := suite.createMember()
	c := suite.addCeremony(event, "Ceremony")
	suite.Require().NoError(suite.store.Assignments.Create(suite.factories.Assignment.WholeEvent(event.ID, member.ID)))

	crew := auth.TeamMemberCaller(suite.studio.ID, member.ID)
	_, err := suite.ceremonies.AddCeremony(crew, event.ID, &service.CreateCeremonyRequest{Name: "Sneaky"})
	suite.True(apperrors.IsAuthorization(err))
	suite.True(apperrors.IsAuthorization(suite.ceremonies.RemoveCeremony(crew, c.ID)))

	list, err := suite.ceremonies.ListCeremonies(crew, event.ID)
	suite.Require().NoError(err)
	suite.Len(list, 1)

	stranger := auth.StudioCaller(uuid.New())
	_, err = suite.ceremonies.ListCeremonies(stranger, event.ID)
	suite.ErrorIs(err, apperrors.ErrForeignStudio)
}

func TestCeremonyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CeremonyServiceTestSuite))
}

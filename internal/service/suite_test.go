package service_test

import (
	"photostudio-backend/internal/auth"
	"photostudio-backend/internal/database/models"
	"photostudio-backend/internal/repository"
	"photostudio-backend/internal/service"
	"photostudio-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

const testGalleryBaseURL = "https://photos.example.com/"

// storeSuite runs services against a real, migrated database
type storeSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	store         *repository.Store
	factories     *testutils.FactorySet

	studios     *service.StudioService
	members     *service.TeamMemberService
	events      *service.EventService
	ceremonies  *service.CeremonyService
	assignments *service.AssignmentService
	galleries   *service.GalleryService
	photos      *service.PhotoService

	studio *models.Studio
	owner  auth.Caller
}

func (s *storeSuite) SetupSuite() {
	s.baseTestSuite = testutils.SetupTestSuite(s.T())
	s.store = repository.NewStore(s.baseTestSuite.DB)
	s.factories = testutils.NewFactorySet()

	v := service.NewValidator()
	s.studios = service.NewStudioService(s.store, v)
	s.members = service.NewTeamMemberService(s.store, v)
	s.events = service.NewEventService(s.store, v)
	s.ceremonies = service.NewCeremonyService(s.store, v)
	s.assignments = service.NewAssignmentService(s.store, v)
	s.galleries = service.NewGalleryService(s.store, v, testGalleryBaseURL)
	s.photos = service.NewPhotoService(s.store, v)
}

func (s *storeSuite) TearDownSuite() {
	s.baseTestSuite.TeardownTestSuite()
}

func (s *storeSuite) SetupTest() {
	s.baseTestSuite.SetupTest()
	s.studio = s.createStudio("Lumen Studio")
	s.owner = auth.StudioCaller(s.studio.ID)
}

func (s *storeSuite) TearDownTest() {
	s.baseTestSuite.TearDownTest()
}

func (s *storeSuite) createStudio(name string) *models.Studio {
	studio := s.factories.Studio.WithName(name)
	s.Require().NoError(s.store.Studios.Create(studio))
	return studio
}

func (s *storeSuite) createMember() *models.TeamMember {
	member := s.factories.TeamMember.ForStudio(s.studio.ID)
	s.Require().NoError(s.store.TeamMembers.Create(member))
	return member
}

func (s *storeSuite) createEvent(status models.EventStatus) *models.Event {
	event := s.factories.Event.WithStatus(s.studio.ID, status)
	s.Require().NoError(s.store.Events.Create(event))
	return event
}

func (s *storeSuite) createPhoto(event *models.Event) *models.Photo {
	photo := s.factories.Photo.Create(event.ID, s.studio.ID)
	s.Require().NoError(s.store.Photos.Create(photo))
	return photo
}

func (s *storeSuite) addCeremony(event *models.Event, name string) *service.CeremonyResponse {
	resp, err := s.ceremonies.AddCeremony(s.owner, event.ID, &service.CreateCeremonyRequest{Name: name})
	s.Require().NoError(err)
	return resp
}

func (s *storeSuite) ceremonyOrder(event *models.Event) []string {
	list, err := s.ceremonies.ListCeremonies(s.owner, event.ID)
	s.Require().NoError(err)
	names := make([]string, len(list))
	for i, c := range list {
		s.Equal(i+1, c.OrderIndex, "order indexes must be contiguous")
		names[i] = c.Name
	}
	return names
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

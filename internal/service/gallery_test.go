package service_test

import (
	"strings"
	"testing"

	"photostudio-backend/internal/auth"
	"photostudio-backend/internal/database/models"
	apperrors "photostudio-backend/internal/errors"
	"photostudio-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type GalleryServiceTestSuite struct {
	storeSuite
}

func photoIDs(list []service.PhotoResponse) []uuid.UUID {
	ids := make([]uuid.UUID, len(list))
	for i, p := range list {
		ids[i] = p.ID
	}
	return ids
}

func (suite *GalleryServiceTestSuite) TestCreateGallery() {
	event := suite.createEvent(models.EventStatusCompleted)

	private, err := suite.galleries.CreateGallery(suite.owner, event.ID, &service.CreateGalleryRequest{Name: "Proofs"})
	suite.Require().NoError(err)
	suite.Equal(suite.studio.ID, private.StudioID)
	suite.False(private.IsPublic)
	suite.Nil(private.AccessCode)
	suite.False(private.HasViewerPath)

	coded, err := suite.galleries.CreateGallery(suite.owner, event.ID, &service.CreateGalleryRequest{Name: "Family", AccessCode: strPtr("ABC123")})
	suite.Require().NoError(err)
	suite.Equal("ABC123", *coded.AccessCode)
	suite.True(coded.HasViewerPath)

	generated, err := suite.galleries.CreateGallery(suite.owner, event.ID, &service.CreateGalleryRequest{Name: "Guests", GenerateCode: true})
	suite.Require().NoError(err)
	suite.Require().NotNil(generated.AccessCode)
	suite.Len(*generated.AccessCode, service.AccessCodeLength)
}

func (suite *GalleryServiceTestSuite) TestAccessCodeRules() {
	event := suite.createEvent(models.EventStatusCompleted)

	_, err := suite.galleries.CreateGallery(suite.owner, event.ID, &service.CreateGalleryRequest{Name: "Long", AccessCode: strPtr(strings.Repeat("A", 65))})
	suite.True(apperrors.IsValidation(err), "over-long code should be rejected, got %v", err)

	_, err = suite.galleries.CreateGallery(suite.owner, event.ID, &service.CreateGalleryRequest{Name: "One", AccessCode: strPtr("ABC123")})
	suite.Require().NoError(err)
	_, err = suite.galleries.CreateGallery(suite.owner, event.ID, &service.CreateGalleryRequest{Name: "Two", AccessCode: strPtr("ABC123")})
	suite.ErrorIs(err, apperrors.ErrAccessCodeExists)

	// codes are unique per studio only
	rival := suite.createStudio("Rival")
	rivalEvent := suite.factories.Event.ForStudio(rival.ID)
	suite.Require().NoError(suite.store.Events.Create(rivalEvent))
	_, err = suite.galleries.CreateGallery(auth.StudioCaller(rival.ID), rivalEvent.ID, &service.CreateGalleryRequest{Name: "Theirs", AccessCode: strPtr("ABC123")})
	suite.NoError(err)
}

func (suite *GalleryServiceTestSuite) TestOwnerChosenCodes() {
	event := suite.createEvent(models.EventStatusCompleted)

	for _, code := range []string{"WEDDING2024", "RECEPTION123", "Abc123", "ab-12"} {
		gallery, err := suite.galleries.CreateGallery(suite.owner, event.ID, &service.CreateGalleryRequest{Name: code, AccessCode: strPtr(code)})
		suite.Require().NoError(err, "code %q", code)
		suite.Equal(code, *gallery.AccessCode)
	}

	galleries, err := suite.galleries.ListGalleries(suite.owner, &event.ID)
	suite.Require().NoError(err)
	var mixed service.GalleryResponse
	for _, g := range galleries {
		if g.Name == "Abc123" {
			mixed = g
		}
	}
	suite.Require().NotEqual(uuid.Nil, mixed.ID)

	// matching is case-sensitive
	decision, err := suite.galleries.ResolveAccess(mixed.ID, strPtr("ABC123"))
	suite.Require().NoError(err)
	suite.Equal(service.AccessDenied, decision)
	decision, err = suite.galleries.ResolveAccess(mixed.ID, strPtr("Abc123"))
	suite.Require().NoError(err)
	suite.Equal(service.AccessGranted, decision)

	// an upper-case code is a different code, not a conflict
	_, err = suite.galleries.CreateGallery(suite.owner, event.ID, &service.CreateGalleryRequest{Name: "Upper", AccessCode: strPtr("ABC123")})
	suite.NoError(err)

	updated, err := suite.galleries.UpdateGallery(suite.owner, mixed.ID, &service.UpdateGalleryRequest{AccessCode: strPtr("Reception-Table-7")})
	suite.Require().NoError(err)
	suite.Equal("Reception-Table-7", *updated.AccessCode)
}

func (suite *GalleryServiceTestSuite) TestUpdateGalleryCode() {
	event := suite.createEvent(models.EventStatusCompleted)
	gallery, err := suite.galleries.CreateGallery(suite.owner, event.ID, &service.CreateGalleryRequest{Name: "Proofs", AccessCode: strPtr("ABC123")})
	suite.Require().NoError(err)

	updated, err := suite.galleries.UpdateGallery(suite.owner, gallery.ID, &service.UpdateGalleryRequest{AccessCode: strPtr("XYZ789")})
	suite.Require().NoError(err)
	suite.Equal("XYZ789", *updated.AccessCode)

	// keeping its own code is not a conflict
	_, err = suite.galleries.UpdateGallery(suite.owner, gallery.ID, &service.UpdateGalleryRequest{AccessCode: strPtr("XYZ789")})
	suite.NoError(err)

	cleared, err := suite.galleries.UpdateGallery(suite.owner, gallery.ID, &service.UpdateGalleryRequest{AccessCode: strPtr("")})
	suite.Require().NoError(err)
	suite.Nil(cleared.AccessCode)
	suite.False(cleared.HasViewerPath)

	public, err := suite.galleries.UpdateGallery(suite.owner, gallery.ID, &service.UpdateGalleryRequest{IsPublic: boolPtr(true), Name: strPtr("Finals")})
	suite.Require().NoError(err)
	suite.True(public.IsPublic)
	suite.Equal("Finals", public.Name)
}

func (suite *GalleryServiceTestSuite) TestPhotoOrdering() {
	event := suite.createEvent(models.EventStatusCompleted)
	p1, p2, p3 := suite.createPhoto(event), suite.createPhoto(event), suite.createPhoto(event)
	gallery, err := suite.galleries.CreateGallery(suite.owner, event.ID, &service.CreateGalleryRequest{Name: "Proofs"})
	suite.Require().NoError(err)

	visible, err := suite.galleries.AddPhotos(suite.owner, gallery.ID, []uuid.UUID{p3.ID, p1.ID})
	suite.Require().NoError(err)
	suite.Equal([]uuid.UUID{p3.ID, p1.ID}, photoIDs(visible))

	visible, err = suite.galleries.AddPhotos(suite.owner, gallery.ID, []uuid.UUID{p2.ID})
	suite.Require().NoError(err)
	suite.Equal([]uuid.UUID{p3.ID, p1.ID, p2.ID}, photoIDs(visible))

	suite.Require().NoError(suite.galleries.RemovePhoto(suite.owner, gallery.ID, p1.ID))
	visible, err = suite.galleries.VisiblePhotos(gallery.ID)
	suite.Require().NoError(err)
	suite.Equal([]uuid.UUID{p3.ID, p2.ID}, photoIDs(visible))

	links, err := suite.store.GalleryPhotos.List()
	suite.Require().NoError(err)
	indexes := map[int]bool{}
	for _, l := range links {
		indexes[l.OrderIndex] = true
	}
	suite.Equal(map[int]bool{1: true, 2: true}, indexes)

	err = suite.galleries.RemovePhoto(suite.owner, gallery.ID, p1.ID)
	suite.ErrorIs(err, apperrors.ErrGalleryPhotoNotFound)
}

func (suite *GalleryServiceTestSuite) TestAddPhotosRejects() {
	event := suite.createEvent(models.EventStatusCompleted)
	photo := suite.createPhoto(event)
	gallery, err := suite.galleries.CreateGallery(suite.owner, event.ID, &service.CreateGalleryRequest{Name: "Proofs"})
	suite.Require().NoError(err)

	rival := suite.createStudio("Rival")
	rivalEvent := suite.factories.Event.ForStudio(rival.ID)
	suite.Require().NoError(suite.store.Events.Create(rivalEvent))
	foreign := suite.factories.Photo.Create(rivalEvent.ID, rival.ID)
	suite.Require().NoError(suite.store.Photos.Create(foreign))

	_, err = suite.galleries.AddPhotos(suite.owner, gallery.ID, []uuid.UUID{photo.ID, foreign.ID})
	suite.ErrorIs(err, apperrors.ErrPhotoEventMismatch)

	_, err = suite.galleries.AddPhotos(suite.owner, gallery.ID, []uuid.UUID{photo.ID, photo.ID})
	suite.ErrorIs(err, apperrors.ErrGalleryPhotoExists)

	_, err = suite.galleries.AddPhotos(suite.owner, gallery.ID, []uuid.UUID{uuid.New()})
	suite.ErrorIs(err, apperrors.ErrPhotoNotFound)

	_, err = suite.galleries.AddPhotos(suite.owner, gallery.ID, nil)
	suite.True(apperrors.IsValidation(err))

	// failed batches leave nothing behind
	count, err := suite.store.GalleryPhotos.Count()
	suite.Require().NoError(err)
	suite.Zero(count)

	_, err = suite.galleries.AddPhotos(suite.owner, gallery.ID, []uuid.UUID{photo.ID})
	suite.Require().NoError(err)
	_, err = suite.galleries.AddPhotos(suite.owner, gallery.ID, []uuid.UUID{photo.ID})
	suite.True(apperrors.IsConflict(err))
}

func (suite *GalleryServiceTestSuite) TestGuestAccess() {
	event := suite.createEvent(models.EventStatusCompleted)
	photo := suite.createPhoto(event)

	public, err := suite.galleries.CreateGallery(suite.owner, event.ID, &service.CreateGalleryRequest{Name: "Open", IsPublic: true})
	suite.Require().NoError(err)
	coded, err := suite.galleries.CreateGallery(suite.owner, event.ID, &service.CreateGalleryRequest{Name: "Family", AccessCode: strPtr("ABC123")})
	suite.Require().NoError(err)
	closed, err := suite.galleries.CreateGallery(suite.owner, event.ID, &service.CreateGalleryRequest{Name: "Studio Only"})
	suite.Require().NoError(err)
	for _, g := range []*service.GalleryResponse{public, coded, closed} {
		_, err := suite.galleries.AddPhotos(suite.owner, g.ID, []uuid.UUID{photo.ID})
		suite.Require().NoError(err)
	}

	view, err := suite.galleries.ViewAsGuest(public.ID, nil)
	suite.Require().NoError(err)
	suite.Equal("Open", view.Name)
	suite.Equal([]uuid.UUID{photo.ID}, photoIDs(view.Photos))

	_, err = suite.galleries.ViewAsGuest(coded.ID, strPtr("WRONG1"))
	suite.True(apperrors.IsAccessDenied(err))
	view, err = suite.galleries.ViewAsGuest(coded.ID, strPtr("ABC123"))
	suite.Require().NoError(err)
	suite.Len(view.Photos, 1)

	decision, err := suite.galleries.ResolveAccess(closed.ID, strPtr("ABC123"))
	suite.Require().NoError(err)
	suite.Equal(service.AccessDenied, decision)

	_, err = suite.galleries.ViewAsGuest(uuid.New(), nil)
	suite.ErrorIs(err, apperrors.ErrGalleryNotFound)
}

func (suite *GalleryServiceTestSuite) TestShareLink() {
	event := suite.createEvent(models.EventStatusCompleted)
	gallery, err := suite.galleries.CreateGallery(suite.owner, event.ID, &service.CreateGalleryRequest{Name: "Family", AccessCode: strPtr("ABC123")})
	suite.Require().NoError(err)

	link, err := suite.galleries.ShareLink(suite.owner, gallery.ID)
	suite.Require().NoError(err)
	suite.Equal(strings.TrimSuffix(testGalleryBaseURL, "/")+"/gallery/"+gallery.ID.String()+"?code=ABC123", link.URL)
	suite.Equal("ABC123", *link.AccessCode)
}

func (suite *GalleryServiceTestSuite) TestTeamMemberAccess() {
	assigned := suite.createEvent(models.EventStatusCompleted)
	other := suite.createEvent(models.EventStatusCompleted)
	member := suite.createMember()
	suite.Require().NoError(suite.store.Assignments.Create(suite.factories.Assignment.WholeEvent(assigned.ID, member.ID)))
	crew := auth.TeamMemberCaller(suite.studio.ID, member.ID)

	mine, err := suite.galleries.CreateGallery(suite.owner, assigned.ID, &service.CreateGalleryRequest{Name: "Mine"})
	suite.Require().NoError(err)
	theirs, err := suite.galleries.CreateGallery(suite.owner, other.ID, &service.CreateGalleryRequest{Name: "Theirs"})
	suite.Require().NoError(err)

	_, err = suite.galleries.GetGallery(crew, mine.ID)
	suite.NoError(err)
	_, err = suite.galleries.GetGallery(crew, theirs.ID)
	suite.ErrorIs(err, apperrors.ErrNotAssignedToEvent)

	_, err = suite.galleries.CreateGallery(crew, assigned.ID, &service.CreateGalleryRequest{Name: "Crew"})
	suite.ErrorIs(err, apperrors.ErrStudioOwnerOnly)
	suite.ErrorIs(suite.galleries.DeleteGallery(crew, mine.ID), apperrors.ErrStudioOwnerOnly)

	list, err := suite.galleries.ListGalleries(crew, &assigned.ID)
	suite.Require().NoError(err)
	suite.Len(list, 1)

	_, err = suite.galleries.GetGallery(auth.StudioCaller(uuid.New()), mine.ID)
	suite.ErrorIs(err, apperrors.ErrForeignStudio)
}

func (suite *GalleryServiceTestSuite) TestDeleteGalleryKeepsPhotos() {
	event := suite.createEvent(models.EventStatusCompleted)
	photo := suite.createPhoto(event)
	gallery, err := suite.galleries.CreateGallery(suite.owner, event.ID, &service.CreateGalleryRequest{Name: "Proofs"})
	suite.Require().NoError(err)
	_, err = suite.galleries.AddPhotos(suite.owner, gallery.ID, []uuid.UUID{photo.ID})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.galleries.DeleteGallery(suite.owner, gallery.ID))

	_, err = suite.store.Photos.GetByID(photo.ID)
	suite.NoError(err)
	links, err := suite.store.GalleryPhotos.Count()
	suite.Require().NoError(err)
	suite.Zero(links)

	list, err := suite.galleries.ListGalleries(suite.owner, nil)
	suite.Require().NoError(err)
	suite.Empty(list)
}

func TestGalleryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GalleryServiceTestSuite))
}

package routes_test

import (
	"net/http"
	"testing"

	"photostudio-backend/internal/api/routes"
	"photostudio-backend/internal/auth"
	"photostudio-backend/internal/repository"
	"photostudio-backend/internal/service"
	"photostudio-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupRoutesGalleryFlow(t *testing.T) {
	gin.SetMode(gin.TestMode)
	base := testutils.SetupTestSuite(t)
	t.Cleanup(base.CleanTestDB)

	studios := service.NewStudioService(repository.NewStore(base.DB), service.NewValidator())
	studio, err := studios.CreateStudio(&service.CreateStudioRequest{Name: "Northlight", Email: "hello@northlight.example"})
	require.NoError(t, err)

	tokens := auth.NewTokenService(base.Config.JWTSecret, 0)
	ownerToken, err := tokens.Issue(auth.StudioCaller(studio.ID))
	require.NoError(t, err)
	memberToken, err := tokens.Issue(auth.TeamMemberCaller(studio.ID, uuid.New()))
	require.NoError(t, err)

	httpSuite := &testutils.HTTPTestSuite{Router: routes.SetupRoutes(base.DB, base.Config)}
	owner := testutils.BearerHeader(ownerToken)

	t.Run("RequiresToken", func(t *testing.T) {
		recorder := httpSuite.MakeRequest(http.MethodGet, "/api/v1/events", nil)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("TeamMemberCannotBookEvents", func(t *testing.T) {
		recorder := httpSuite.MakeRequestWithHeaders(http.MethodPost, "/api/v1/events", map[string]string{
			"name": "Party", "date": "2024-06-15", "time": "14:00", "venue": "Hall", "client_name": "Jo",
		}, testutils.BearerHeader(memberToken))
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	var event service.EventResponse
	recorder := httpSuite.MakeRequestWithHeaders(http.MethodPost, "/api/v1/events", map[string]string{
		"name": "Smith Wedding", "date": "2024-06-15", "time": "14:00", "venue": "Grand Hall", "client_name": "Jane Smith",
	}, owner)
	testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &event)

	var photo service.PhotoResponse
	recorder = httpSuite.MakeRequestWithHeaders(http.MethodPost, "/api/v1/events/"+event.ID.String()+"/photos", map[string]string{
		"file_url": "https://cdn.example.com/IMG_0001.jpg", "file_name": "IMG_0001.jpg",
	}, owner)
	testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &photo)

	var gallery service.GalleryResponse
	recorder = httpSuite.MakeRequestWithHeaders(http.MethodPost, "/api/v1/events/"+event.ID.String()+"/galleries", map[string]interface{}{
		"name": "Highlights", "is_public": false, "access_code": "ABC123",
	}, owner)
	testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &gallery)

	recorder = httpSuite.MakeRequestWithHeaders(http.MethodPost, "/api/v1/galleries/"+gallery.ID.String()+"/photos", map[string]interface{}{
		"photo_ids": []string{photo.ID.String()},
	}, owner)
	require.Equal(t, http.StatusOK, recorder.Code)

	t.Run("GuestWithoutCode", func(t *testing.T) {
		recorder := httpSuite.MakeRequest(http.MethodGet, "/gallery/"+gallery.ID.String(), nil)
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	t.Run("GuestWithCode", func(t *testing.T) {
		recorder := httpSuite.MakeRequest(http.MethodGet, "/gallery/"+gallery.ID.String()+"?code=ABC123", nil)

		var view service.GuestGalleryResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &view)
		require.Len(t, view.Photos, 1)
		assert.Equal(t, photo.ID, view.Photos[0].ID)
	})

	t.Run("Health", func(t *testing.T) {
		recorder := httpSuite.MakeRequest(http.MethodGet, "/health/live", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

package handlers_test

import (
	"net/http"
	"testing"

	"photostudio-backend/internal/api/handlers"
	"photostudio-backend/internal/auth"
	apperrors "photostudio-backend/internal/errors"
	"photostudio-backend/internal/mocks"
	"photostudio-backend/internal/service"
	"photostudio-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// GalleryHandlerTestSuite defines the test suite for GalleryHandler
type GalleryHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockGalleryServiceInterface
	handler     *handlers.GalleryHandler
	caller      *auth.Caller
	httpSuite   *testutils.HTTPTestSuite
	guestSuite  *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *GalleryHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockGalleryServiceInterface(suite.ctrl)
	suite.handler = handlers.NewGalleryHandler(suite.mockService)
	suite.caller = ownerCaller()

	suite.httpSuite = newTestRouter(suite.caller)
	v1 := suite.httpSuite.Router.Group("/api/v1")
	{
		v1.POST("/events/:id/galleries", suite.handler.CreateGallery)
		v1.GET("/events/:id/galleries", suite.handler.ListEventGalleries)
		v1.GET("/galleries", suite.handler.ListGalleries)
		v1.POST("/galleries/access-code", suite.handler.GenerateAccessCode)
		v1.GET("/galleries/:id", suite.handler.GetGallery)
		v1.PUT("/galleries/:id", suite.handler.UpdateGallery)
		v1.DELETE("/galleries/:id", suite.handler.DeleteGallery)
		v1.POST("/galleries/:id/photos", suite.handler.AddPhotos)
		v1.DELETE("/galleries/:id/photos/:photoId", suite.handler.RemovePhoto)
		v1.GET("/galleries/:id/share", suite.handler.ShareLink)
	}

	suite.guestSuite = newTestRouter(nil)
	suite.guestSuite.Router.GET("/gallery/:id", suite.handler.ViewGallery)
}

// TearDownTest cleans up after each test
func (suite *GalleryHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *GalleryHandlerTestSuite) TestCreateGallery() {
	eventID := uuid.New()
	code := "ABC123"

	suite.T().Run("Success", func(t *testing.T) {
		expected := &service.GalleryResponse{
			ID:            uuid.New(),
			StudioID:      suite.caller.StudioID,
			EventID:       eventID,
			Name:          "Highlights",
			AccessCode:    &code,
			HasViewerPath: true,
			CreatedAt:     testTimestamp,
			UpdatedAt:     testTimestamp,
		}
		suite.mockService.EXPECT().
			CreateGallery(*suite.caller, eventID, &service.CreateGalleryRequest{Name: "Highlights", AccessCode: &code}).
			Return(expected, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/events/"+eventID.String()+"/galleries",
			map[string]interface{}{"name": "Highlights", "access_code": code})

		var response service.GalleryResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &response)
		assert.Equal(t, expected.ID, response.ID)
		assert.True(t, response.HasViewerPath)
	})

	suite.T().Run("CodeTaken", func(t *testing.T) {
		suite.mockService.EXPECT().
			CreateGallery(gomock.Any(), eventID, gomock.Any()).
			Return(nil, apperrors.ErrAccessCodeExists).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/events/"+eventID.String()+"/galleries",
			map[string]interface{}{"name": "Second", "access_code": code})
		testutils.AssertErrorResponse(t, recorder, http.StatusConflict, "access code already exists")
	})
}

func (suite *GalleryHandlerTestSuite) TestListGalleries() {
	eventID := uuid.New()
	suite.mockService.EXPECT().
		ListGalleries(*suite.caller, &eventID).
		Return([]service.GalleryResponse{{ID: uuid.New(), EventID: eventID}}, nil).
		Times(1)
	suite.mockService.EXPECT().
		ListGalleries(*suite.caller, gomock.Nil()).
		Return([]service.GalleryResponse{}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/events/"+eventID.String()+"/galleries", nil)
	var response []service.GalleryResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Len(response, 1)

	recorder = suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/galleries", nil)
	suite.Equal(http.StatusOK, recorder.Code)
}

func (suite *GalleryHandlerTestSuite) TestAddAndRemovePhotos() {
	galleryID := uuid.New()
	photoID := uuid.New()

	suite.T().Run("Add", func(t *testing.T) {
		suite.mockService.EXPECT().
			AddPhotos(*suite.caller, galleryID, []uuid.UUID{photoID}).
			Return([]service.PhotoResponse{{ID: photoID}}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/galleries/"+galleryID.String()+"/photos",
			map[string]interface{}{"photo_ids": []string{photoID.String()}})

		var response []service.PhotoResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, photoID, response[0].ID)
	})

	suite.T().Run("AddForeignPhoto", func(t *testing.T) {
		suite.mockService.EXPECT().
			AddPhotos(gomock.Any(), galleryID, gomock.Any()).
			Return(nil, apperrors.ErrPhotoEventMismatch).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/galleries/"+galleryID.String()+"/photos",
			map[string]interface{}{"photo_ids": []string{uuid.NewString()}})

		var response handlers.ErrorResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusBadRequest, &response)
		assert.Equal(t, "photo_id", response.Field)
	})

	suite.T().Run("Remove", func(t *testing.T) {
		suite.mockService.EXPECT().
			RemovePhoto(*suite.caller, galleryID, photoID).
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/galleries/"+galleryID.String()+"/photos/"+photoID.String(), nil)
		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	suite.T().Run("RemoveMissing", func(t *testing.T) {
		suite.mockService.EXPECT().
			RemovePhoto(gomock.Any(), galleryID, photoID).
			Return(apperrors.ErrGalleryPhotoNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/galleries/"+galleryID.String()+"/photos/"+photoID.String(), nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "gallery photo not found")
	})
}

func (suite *GalleryHandlerTestSuite) TestShareLinkAndAccessCode() {
	galleryID := uuid.New()
	code := "K7Q2ZD"

	suite.mockService.EXPECT().
		ShareLink(*suite.caller, galleryID).
		Return(&service.ShareLinkResponse{
			GalleryID:  galleryID,
			URL:        "https://photos.example.com/gallery/" + galleryID.String() + "?code=" + code,
			AccessCode: &code,
		}, nil).
		Times(1)
	suite.mockService.EXPECT().
		GenerateAccessCode().
		Return(code, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/galleries/"+galleryID.String()+"/share", nil)
	var link service.ShareLinkResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &link)
	suite.Contains(link.URL, "?code="+code)

	recorder = suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/galleries/access-code", nil)
	var generated handlers.AccessCodeResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &generated)
	suite.Equal(code, generated.AccessCode)
}

func (suite *GalleryHandlerTestSuite) TestViewGallery() {
	galleryID := uuid.New()

	suite.T().Run("PublicWithoutCode", func(t *testing.T) {
		suite.mockService.EXPECT().
			ViewAsGuest(galleryID, gomock.Nil()).
			Return(&service.GuestGalleryResponse{ID: galleryID, Name: "Highlights", Photos: []service.PhotoResponse{}}, nil).
			Times(1)

		recorder := suite.guestSuite.MakeRequest(http.MethodGet, "/gallery/"+galleryID.String(), nil)

		var response service.GuestGalleryResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, "Highlights", response.Name)
	})

	suite.T().Run("WithCode", func(t *testing.T) {
		code := "ABC123"
		suite.mockService.EXPECT().
			ViewAsGuest(galleryID, &code).
			Return(&service.GuestGalleryResponse{ID: galleryID}, nil).
			Times(1)

		recorder := suite.guestSuite.MakeRequest(http.MethodGet, "/gallery/"+galleryID.String()+"?code=ABC123", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("EmptyCodeIsStillSupplied", func(t *testing.T) {
		empty := ""
		suite.mockService.EXPECT().
			ViewAsGuest(galleryID, &empty).
			Return(nil, apperrors.ErrGalleryAccessDenied).
			Times(1)

		recorder := suite.guestSuite.MakeRequest(http.MethodGet, "/gallery/"+galleryID.String()+"?code=", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusForbidden, "access to gallery denied")
	})

	suite.T().Run("UnknownGallery", func(t *testing.T) {
		suite.mockService.EXPECT().
			ViewAsGuest(galleryID, gomock.Any()).
			Return(nil, apperrors.ErrGalleryNotFound).
			Times(1)

		recorder := suite.guestSuite.MakeRequest(http.MethodGet, "/gallery/"+galleryID.String()+"?code=ZZZ999", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "gallery not found")
	})
}

// TestGalleryHandlerTestSuite runs the test suite
func TestGalleryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GalleryHandlerTestSuite))
}

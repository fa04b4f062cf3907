package handlers_test

import (
	"context"
	"net/http"
	"strings"
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

// PhotoHandlerTestSuite defines the test suite for PhotoHandler
type PhotoHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockPhotoServiceInterface
	mockUploads *mocks.MockUploadTrackerInterface
	handler     *handlers.PhotoHandler
	caller      *auth.Caller
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *PhotoHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockPhotoServiceInterface(suite.ctrl)
	suite.mockUploads = mocks.NewMockUploadTrackerInterface(suite.ctrl)
	suite.handler = handlers.NewPhotoHandler(suite.mockService, suite.mockUploads)
	suite.caller = ownerCaller()
	suite.httpSuite = newTestRouter(suite.caller)

	v1 := suite.httpSuite.Router.Group("/api/v1")
	{
		v1.GET("/events/:id/photos", suite.handler.ListPhotos)
		v1.POST("/events/:id/photos", suite.handler.IngestPhoto)
		v1.POST("/events/:id/photos/upload", suite.handler.UploadPhoto)
		v1.GET("/photos/:id", suite.handler.GetPhoto)
		v1.PUT("/photos/:id/rating", suite.handler.RatePhoto)
		v1.PUT("/photos/:id/selection", suite.handler.SelectPhoto)
		v1.DELETE("/photos/:id", suite.handler.DeletePhoto)
	}
}

// TearDownTest cleans up after each test
func (suite *PhotoHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PhotoHandlerTestSuite) TestIngestPhoto() {
	eventID := uuid.New()

	suite.mockService.EXPECT().
		Ingest(*suite.caller, gomock.Any()).
		DoAndReturn(func(_ auth.Caller, req *service.IngestPhotoRequest) (*service.PhotoResponse, error) {
			suite.Equal(eventID, req.EventID)
			suite.Equal("IMG_0001.jpg", req.FileName)
			return &service.PhotoResponse{ID: uuid.New(), EventID: req.EventID, FileName: req.FileName, CreatedAt: testTimestamp}, nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/events/"+eventID.String()+"/photos", map[string]interface{}{
		"event_id":  uuid.NewString(),
		"file_url":  "https://cdn.example.com/IMG_0001.jpg",
		"file_name": "IMG_0001.jpg",
	})

	var response service.PhotoResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	suite.Equal(eventID, response.EventID)
	suite.Equal(0, response.Rating)
}

func (suite *PhotoHandlerTestSuite) TestUploadPhotoStreamsEvents() {
	eventID := uuid.New()
	photoID := uuid.New()

	suite.mockUploads.EXPECT().
		Start(gomock.Any(), *suite.caller, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ auth.Caller, req *service.IngestPhotoRequest) <-chan service.UploadEvent {
			suite.Equal(eventID, req.EventID)
			events := make(chan service.UploadEvent, 3)
			events <- service.UploadEvent{Status: service.UploadProgress, Progress: 0}
			events <- service.UploadEvent{Status: service.UploadProgress, Progress: 100}
			events <- service.UploadEvent{Status: service.UploadCompleted, Progress: 100, Photo: &service.PhotoResponse{ID: photoID}}
			close(events)
			return events
		}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/events/"+eventID.String()+"/photos/upload", map[string]interface{}{
		"file_url":  "https://cdn.example.com/IMG_0002.jpg",
		"file_name": "IMG_0002.jpg",
	})

	suite.Equal(http.StatusOK, recorder.Code)
	suite.Equal("text/event-stream", recorder.Header().Get("Content-Type"))

	body := recorder.Body.String()
	suite.Equal(3, strings.Count(body, "data: "))
	suite.Contains(body, `"status":"completed"`)
	suite.Contains(body, photoID.String())
}

func (suite *PhotoHandlerTestSuite) TestListPhotos() {
	eventID := uuid.New()
	ceremonyID := uuid.New()

	suite.T().Run("Filters", func(t *testing.T) {
		selected := true
		suite.mockService.EXPECT().
			ListPhotos(*suite.caller, eventID, &service.PhotoFilter{CeremonyID: &ceremonyID, Selected: &selected, MinRating: 4}).
			Return([]service.PhotoResponse{{ID: uuid.New(), Rating: 5, IsSelected: true}}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet,
			"/api/v1/events/"+eventID.String()+"/photos?ceremony_id="+ceremonyID.String()+"&selected=true&min_rating=4", nil)

		var response []service.PhotoResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Len(t, response, 1)
	})

	suite.T().Run("RatingOutOfRange", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/events/"+eventID.String()+"/photos?min_rating=9", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Invalid min_rating")
	})

	suite.T().Run("BadSelected", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/events/"+eventID.String()+"/photos?selected=maybe", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Invalid selected")
	})
}

func (suite *PhotoHandlerTestSuite) TestRateAndSelect() {
	photoID := uuid.New()

	suite.T().Run("Rate", func(t *testing.T) {
		suite.mockService.EXPECT().
			Rate(*suite.caller, photoID, 4).
			Return(&service.PhotoResponse{ID: photoID, Rating: 4}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/photos/"+photoID.String()+"/rating", map[string]int{"rating": 4})

		var response service.PhotoResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, 4, response.Rating)
	})

	suite.T().Run("RateOutOfRange", func(t *testing.T) {
		suite.mockService.EXPECT().
			Rate(gomock.Any(), photoID, 6).
			Return(nil, apperrors.ErrInvalidRating).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/photos/"+photoID.String()+"/rating", map[string]int{"rating": 6})

		var response handlers.ErrorResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusBadRequest, &response)
		assert.Equal(t, "rating", response.Field)
	})

	suite.T().Run("Select", func(t *testing.T) {
		suite.mockService.EXPECT().
			SetSelected(*suite.caller, photoID, true).
			Return(&service.PhotoResponse{ID: photoID, IsSelected: true}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/photos/"+photoID.String()+"/selection", map[string]bool{"selected": true})

		var response service.PhotoResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.True(t, response.IsSelected)
	})
}

func (suite *PhotoHandlerTestSuite) TestGetAndDeletePhoto() {
	photoID := uuid.New()

	suite.mockService.EXPECT().
		GetPhoto(*suite.caller, photoID).
		Return(nil, apperrors.ErrPhotoNotFound).
		Times(1)
	suite.mockService.EXPECT().
		DeletePhoto(*suite.caller, photoID).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/photos/"+photoID.String(), nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "photo not found")

	recorder = suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/photos/"+photoID.String(), nil)
	suite.Equal(http.StatusNoContent, recorder.Code)
}

// TestPhotoHandlerTestSuite runs the test suite
func TestPhotoHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PhotoHandlerTestSuite))
}

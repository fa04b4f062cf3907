package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"photostudio-backend/internal/auth"
	"photostudio-backend/internal/mocks"
	"photostudio-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UploadTrackerTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockPhotos *mocks.MockPhotoServiceInterface
	tracker    *service.UploadTracker
	caller     auth.Caller
	req        *service.IngestPhotoRequest
}

func (suite *UploadTrackerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockPhotos = mocks.NewMockPhotoServiceInterface(suite.ctrl)
	suite.tracker = service.NewUploadTracker(suite.mockPhotos, time.Millisecond)
	suite.caller = auth.StudioCaller(uuid.New())
	suite.req = &service.IngestPhotoRequest{
		EventID:  uuid.New(),
		FileURL:  "https://cdn.example.com/IMG_0042.jpg",
		FileName: "IMG_0042.jpg",
	}
}

func (suite *UploadTrackerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *UploadTrackerTestSuite) drain(events <-chan service.UploadEvent) []service.UploadEvent {
	var out []service.UploadEvent
	timeout := time.After(5 * time.Second)
	for {
		select {
		case e, ok := <-events:
			if !ok {
				return out
			}
			out = append(out, e)
		case <-timeout:
			suite.FailNow("upload stream did not close")
			return out
		}
	}
}

func (suite *UploadTrackerTestSuite) TestCompletedUpload() {
	photo := &service.PhotoResponse{ID: uuid.New(), FileName: suite.req.FileName}
	suite.mockPhotos.EXPECT().Ingest(suite.caller, suite.req).Return(photo, nil)

	events := suite.drain(suite.tracker.Start(context.Background(), suite.caller, suite.req))

	suite.Require().Len(events, 7)
	for i, e := range events[:6] {
		suite.Equal(service.UploadProgress, e.Status)
		suite.Equal(i*20, e.Progress)
	}
	last := events[6]
	suite.Equal(service.UploadCompleted, last.Status)
	suite.Equal(100, last.Progress)
	suite.Equal(photo.ID, last.Photo.ID)
	suite.Empty(last.Error)
}

func (suite *UploadTrackerTestSuite) TestIngestFailure() {
	suite.mockPhotos.EXPECT().Ingest(gomock.Any(), gomock.Any()).Return(nil, errors.New("event not found"))

	events := suite.drain(suite.tracker.Start(context.Background(), suite.caller, suite.req))

	suite.Require().NotEmpty(events)
	last := events[len(events)-1]
	suite.Equal(service.UploadFailed, last.Status)
	suite.Equal("event not found", last.Error)
	suite.Nil(last.Photo)
}

func (suite *UploadTrackerTestSuite) TestCancelledUploadRecordsNothing() {
	slow := service.NewUploadTracker(suite.mockPhotos, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())

	stream := slow.Start(ctx, suite.caller, suite.req)
	first := <-stream
	suite.Equal(service.UploadProgress, first.Status)
	suite.Equal(0, first.Progress)
	cancel()

	events := suite.drain(stream)
	suite.Require().Len(events, 1)
	suite.Equal(service.UploadFailed, events[0].Status)
	suite.Equal(context.Canceled.Error(), events[0].Error)
}

func TestUploadTrackerTestSuite(t *testing.T) {
	suite.Run(t, new(UploadTrackerTestSuite))
}

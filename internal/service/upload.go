package service

import (
	"context"
	"time"

	"photostudio-backend/internal/auth"
	"photostudio-backend/internal/logger"
)

// UploadStatus is the state reported by an upload event
type UploadStatus string

const (
	UploadProgress  UploadStatus = "progress"
	UploadCompleted UploadStatus = "completed"
	UploadFailed    UploadStatus = "failed"
)

const (
	defaultUploadInterval = 100 * time.Millisecond
	uploadProgressStep    = 20
)

// UploadEvent reports the progress of one photo upload. Photo is set on
// completion, Error on failure.
type UploadEvent struct {
	Status   UploadStatus   `json:"status"`
	Progress int            `json:"progress"`
	Photo    *PhotoResponse `json:"photo,omitempty"`
	Error    string         `json:"error,omitempty"`
}

// UploadTracker runs photo ingests in the background and streams their progress
type UploadTracker struct {
	photos   PhotoServiceInterface
	interval time.Duration
}

// NewUploadTracker creates a tracker that reports progress every interval
func NewUploadTracker(photos PhotoServiceInterface, interval time.Duration) *UploadTracker {
	if interval <= 0 {
		interval = defaultUploadInterval
	}
	return &UploadTracker{
		photos:   photos,
		interval: interval,
	}
}

// Start begins an upload and returns its event stream. Progress runs 0..100,
// followed by exactly one completed or failed event, then the channel closes.
// Cancelling ctx aborts the upload before the photo is recorded.
func (t *UploadTracker) Start(ctx context.Context, caller auth.Caller, req *IngestPhotoRequest) <-chan UploadEvent {
	events := make(chan UploadEvent, 100/uploadProgressStep+2)

	go func() {
		defer close(events)
		log := logger.WithContext(ctx).WithField("file_name", req.FileName)

		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()

		for progress := 0; progress <= 100; progress += uploadProgressStep {
			events <- UploadEvent{Status: UploadProgress, Progress: progress}
			if progress == 100 {
				break
			}
			select {
			case <-ctx.Done():
				log.WithError(ctx.Err()).Warn("Upload cancelled")
				events <- UploadEvent{Status: UploadFailed, Progress: progress, Error: ctx.Err().Error()}
				return
			case <-ticker.C:
			}
		}

		photo, err := t.photos.Ingest(caller, req)
		if err != nil {
			log.WithError(err).Error("Upload failed")
			events <- UploadEvent{Status: UploadFailed, Progress: 100, Error: err.Error()}
			return
		}
		log.WithField("photo_id", photo.ID).Info("Upload completed")
		events <- UploadEvent{Status: UploadCompleted, Progress: 100, Photo: photo}
	}()

	return events
}

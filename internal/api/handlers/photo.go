package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"photostudio-backend/internal/logger"
	"photostudio-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PhotoHandler handles HTTP requests for event photos
type PhotoHandler struct {
	service service.PhotoServiceInterface
	uploads service.UploadTrackerInterface
}

// NewPhotoHandler creates a new photo handler
func NewPhotoHandler(service service.PhotoServiceInterface, uploads service.UploadTrackerInterface) *PhotoHandler {
	return &PhotoHandler{
		service: service,
		uploads: uploads,
	}
}

// IngestPhoto handles POST /api/v1/events/:id/photos
// @Summary Record an uploaded photo
// @Description The file itself lives in external storage; the event in the path wins over event_id in the body
// @Tags photos
// @Accept json
// @Produce json
// @Param id path string true "Event ID (UUID)"
// @Param photo body service.IngestPhotoRequest true "Photo metadata"
// @Success 201 {object} service.PhotoResponse "Successfully recorded photo"
// @Failure 400 {object} ErrorResponse "Invalid request body or ceremony of another event"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Security BearerAuth
// @Router /events/{id}/photos [post]
func (h *PhotoHandler) IngestPhoto(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	eventID, ok := parseUUIDParam(c, "id", "event")
	if !ok {
		return
	}

	var req service.IngestPhotoRequest
	if !bindJSON(c, &req) {
		return
	}
	req.EventID = eventID

	photo, err := h.service.Ingest(caller, &req)
	if err != nil {
		respondError(c, err, "Failed to record photo")
		return
	}
	c.JSON(http.StatusCreated, photo)
}

// UploadPhoto handles POST /api/v1/events/:id/photos/upload
// @Summary Record an uploaded photo and stream progress
// @Description Responds with Server-Sent Events carrying service.UploadEvent payloads until the upload completes or fails
// @Tags photos
// @Accept json
// @Produce text/event-stream
// @Param id path string true "Event ID (UUID)"
// @Param photo body service.IngestPhotoRequest true "Photo metadata"
// @Success 200 {object} service.UploadEvent "Stream of upload events"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Security BearerAuth
// @Router /events/{id}/photos/upload [post]
func (h *PhotoHandler) UploadPhoto(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	eventID, ok := parseUUIDParam(c, "id", "event")
	if !ok {
		return
	}

	var req service.IngestPhotoRequest
	if !bindJSON(c, &req) {
		return
	}
	req.EventID = eventID

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Streaming not supported"})
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)

	log := logger.FromGinContext(c)
	for event := range h.uploads.Start(c.Request.Context(), caller, &req) {
		data, err := json.Marshal(event)
		if err != nil {
			log.WithError(err).Warn("Failed to encode upload event")
			continue
		}
		fmt.Fprintf(c.Writer, "data: %s\n\n", data)
		flusher.Flush()
	}
}

// ListPhotos handles GET /api/v1/events/:id/photos
// @Summary List an event's photos
// @Tags photos
// @Produce json
// @Param id path string true "Event ID (UUID)"
// @Param ceremony_id query string false "Only photos of this ceremony"
// @Param selected query bool false "Filter by selection"
// @Param min_rating query int false "Minimum rating (0-5)"
// @Success 200 {array} service.PhotoResponse "Successfully retrieved photos"
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Security BearerAuth
// @Router /events/{id}/photos [get]
func (h *PhotoHandler) ListPhotos(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	eventID, ok := parseUUIDParam(c, "id", "event")
	if !ok {
		return
	}
	ceremonyID, ok := parseOptionalUUIDQuery(c, "ceremony_id")
	if !ok {
		return
	}

	filter := &service.PhotoFilter{CeremonyID: ceremonyID}
	if raw := c.Query("selected"); raw != "" {
		selected, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid selected: expected true or false"})
			return
		}
		filter.Selected = &selected
	}
	if raw := c.Query("min_rating"); raw != "" {
		rating, err := strconv.Atoi(raw)
		if err != nil || rating < service.MinRating || rating > service.MaxRating {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid min_rating: expected an integer from 0 to 5"})
			return
		}
		filter.MinRating = rating
	}

	photos, err := h.service.ListPhotos(caller, eventID, filter)
	if err != nil {
		respondError(c, err, "Failed to list photos")
		return
	}
	c.JSON(http.StatusOK, photos)
}

// GetPhoto handles GET /api/v1/photos/:id
// @Summary Get a photo
// @Tags photos
// @Produce json
// @Param id path string true "Photo ID (UUID)"
// @Success 200 {object} service.PhotoResponse "Successfully retrieved photo"
// @Failure 404 {object} ErrorResponse "Photo not found"
// @Security BearerAuth
// @Router /photos/{id} [get]
func (h *PhotoHandler) GetPhoto(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "photo")
	if !ok {
		return
	}

	photo, err := h.service.GetPhoto(caller, id)
	if err != nil {
		respondError(c, err, "Failed to get photo")
		return
	}
	c.JSON(http.StatusOK, photo)
}

// RatePhoto handles PUT /api/v1/photos/:id/rating
// @Summary Rate a photo
// @Tags photos
// @Accept json
// @Produce json
// @Param id path string true "Photo ID (UUID)"
// @Param rating body service.RatePhotoRequest true "Rating from 0 to 5"
// @Success 200 {object} service.PhotoResponse "Successfully rated photo"
// @Failure 400 {object} ErrorResponse "Rating out of range"
// @Failure 404 {object} ErrorResponse "Photo not found"
// @Security BearerAuth
// @Router /photos/{id}/rating [put]
func (h *PhotoHandler) RatePhoto(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "photo")
	if !ok {
		return
	}

	var req service.RatePhotoRequest
	if !bindJSON(c, &req) {
		return
	}

	photo, err := h.service.Rate(caller, id, req.Rating)
	if err != nil {
		respondError(c, err, "Failed to rate photo")
		return
	}
	c.JSON(http.StatusOK, photo)
}

// SelectPhoto handles PUT /api/v1/photos/:id/selection
// @Summary Mark a photo selected or unselected
// @Tags photos
// @Accept json
// @Produce json
// @Param id path string true "Photo ID (UUID)"
// @Param selection body service.SelectPhotoRequest true "Selection flag"
// @Success 200 {object} service.PhotoResponse "Successfully updated selection"
// @Failure 404 {object} ErrorResponse "Photo not found"
// @Security BearerAuth
// @Router /photos/{id}/selection [put]
func (h *PhotoHandler) SelectPhoto(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "photo")
	if !ok {
		return
	}

	var req service.SelectPhotoRequest
	if !bindJSON(c, &req) {
		return
	}

	photo, err := h.service.SetSelected(caller, id, req.Selected)
	if err != nil {
		respondError(c, err, "Failed to update photo selection")
		return
	}
	c.JSON(http.StatusOK, photo)
}

// DeletePhoto handles DELETE /api/v1/photos/:id
// @Summary Delete a photo
// @Description Also removes the photo from every gallery
// @Tags photos
// @Param id path string true "Photo ID (UUID)"
// @Success 204 "Photo deleted"
// @Failure 404 {object} ErrorResponse "Photo not found"
// @Security BearerAuth
// @Router /photos/{id} [delete]
func (h *PhotoHandler) DeletePhoto(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "photo")
	if !ok {
		return
	}

	if err := h.service.DeletePhoto(caller, id); err != nil {
		respondError(c, err, "Failed to delete photo")
		return
	}
	c.Status(http.StatusNoContent)
}

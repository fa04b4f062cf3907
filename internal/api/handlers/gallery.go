package handlers

import (
	"net/http"

	"photostudio-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// GalleryHandler handles HTTP requests for galleries, both for the studio and
// for guests opening a shared link
type GalleryHandler struct {
	service service.GalleryServiceInterface
}

// NewGalleryHandler creates a new gallery handler
func NewGalleryHandler(service service.GalleryServiceInterface) *GalleryHandler {
	return &GalleryHandler{service: service}
}

// AccessCodeResponse carries a freshly generated access code
type AccessCodeResponse struct {
	AccessCode string `json:"access_code" example:"K7Q2ZD"`
}

// CreateGallery handles POST /api/v1/events/:id/galleries
// @Summary Create a gallery for an event
// @Description Set generate_code to have a unique six character code assigned
// @Tags galleries
// @Accept json
// @Produce json
// @Param id path string true "Event ID (UUID)"
// @Param gallery body service.CreateGalleryRequest true "Gallery data"
// @Success 201 {object} service.GalleryResponse "Successfully created gallery"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Failure 409 {object} ErrorResponse "Access code already used in the studio"
// @Security BearerAuth
// @Router /events/{id}/galleries [post]
func (h *GalleryHandler) CreateGallery(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	eventID, ok := parseUUIDParam(c, "id", "event")
	if !ok {
		return
	}

	var req service.CreateGalleryRequest
	if !bindJSON(c, &req) {
		return
	}

	gallery, err := h.service.CreateGallery(caller, eventID, &req)
	if err != nil {
		respondError(c, err, "Failed to create gallery")
		return
	}
	c.JSON(http.StatusCreated, gallery)
}

// ListEventGalleries handles GET /api/v1/events/:id/galleries
// @Summary List an event's galleries
// @Tags galleries
// @Produce json
// @Param id path string true "Event ID (UUID)"
// @Success 200 {array} service.GalleryResponse "Successfully retrieved galleries"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Security BearerAuth
// @Router /events/{id}/galleries [get]
func (h *GalleryHandler) ListEventGalleries(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	eventID, ok := parseUUIDParam(c, "id", "event")
	if !ok {
		return
	}

	galleries, err := h.service.ListGalleries(caller, &eventID)
	if err != nil {
		respondError(c, err, "Failed to list galleries")
		return
	}
	c.JSON(http.StatusOK, galleries)
}

// ListGalleries handles GET /api/v1/galleries
// @Summary List every gallery of the studio
// @Tags galleries
// @Produce json
// @Success 200 {array} service.GalleryResponse "Successfully retrieved galleries"
// @Failure 403 {object} ErrorResponse "Studio owner only"
// @Security BearerAuth
// @Router /galleries [get]
func (h *GalleryHandler) ListGalleries(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	galleries, err := h.service.ListGalleries(caller, nil)
	if err != nil {
		respondError(c, err, "Failed to list galleries")
		return
	}
	c.JSON(http.StatusOK, galleries)
}

// GetGallery handles GET /api/v1/galleries/:id
// @Summary Get a gallery
// @Tags galleries
// @Produce json
// @Param id path string true "Gallery ID (UUID)"
// @Success 200 {object} service.GalleryResponse "Successfully retrieved gallery"
// @Failure 404 {object} ErrorResponse "Gallery not found"
// @Security BearerAuth
// @Router /galleries/{id} [get]
func (h *GalleryHandler) GetGallery(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "gallery")
	if !ok {
		return
	}

	gallery, err := h.service.GetGallery(caller, id)
	if err != nil {
		respondError(c, err, "Failed to get gallery")
		return
	}
	c.JSON(http.StatusOK, gallery)
}

// UpdateGallery handles PUT /api/v1/galleries/:id
// @Summary Update a gallery
// @Description An empty access_code removes the code
// @Tags galleries
// @Accept json
// @Produce json
// @Param id path string true "Gallery ID (UUID)"
// @Param gallery body service.UpdateGalleryRequest true "Fields to change"
// @Success 200 {object} service.GalleryResponse "Successfully updated gallery"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Gallery not found"
// @Failure 409 {object} ErrorResponse "Access code already used in the studio"
// @Security BearerAuth
// @Router /galleries/{id} [put]
func (h *GalleryHandler) UpdateGallery(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "gallery")
	if !ok {
		return
	}

	var req service.UpdateGalleryRequest
	if !bindJSON(c, &req) {
		return
	}

	gallery, err := h.service.UpdateGallery(caller, id, &req)
	if err != nil {
		respondError(c, err, "Failed to update gallery")
		return
	}
	c.JSON(http.StatusOK, gallery)
}

// DeleteGallery handles DELETE /api/v1/galleries/:id
// @Summary Delete a gallery
// @Description Photos stay with their event
// @Tags galleries
// @Param id path string true "Gallery ID (UUID)"
// @Success 204 "Gallery deleted"
// @Failure 404 {object} ErrorResponse "Gallery not found"
// @Security BearerAuth
// @Router /galleries/{id} [delete]
func (h *GalleryHandler) DeleteGallery(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "gallery")
	if !ok {
		return
	}

	if err := h.service.DeleteGallery(caller, id); err != nil {
		respondError(c, err, "Failed to delete gallery")
		return
	}
	c.Status(http.StatusNoContent)
}

// AddPhotos handles POST /api/v1/galleries/:id/photos
// @Summary Append photos to a gallery
// @Description Photos must come from the gallery's studio and not already be in it
// @Tags galleries
// @Accept json
// @Produce json
// @Param id path string true "Gallery ID (UUID)"
// @Param photos body service.AddGalleryPhotosRequest true "Photo IDs in display order"
// @Success 200 {array} service.PhotoResponse "Gallery photos in display order"
// @Failure 400 {object} ErrorResponse "Photo from another studio"
// @Failure 404 {object} ErrorResponse "Gallery or photo not found"
// @Failure 409 {object} ErrorResponse "Photo already in gallery"
// @Security BearerAuth
// @Router /galleries/{id}/photos [post]
func (h *GalleryHandler) AddPhotos(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "gallery")
	if !ok {
		return
	}

	var req service.AddGalleryPhotosRequest
	if !bindJSON(c, &req) {
		return
	}

	photos, err := h.service.AddPhotos(caller, id, req.PhotoIDs)
	if err != nil {
		respondError(c, err, "Failed to add photos to gallery")
		return
	}
	c.JSON(http.StatusOK, photos)
}

// RemovePhoto handles DELETE /api/v1/galleries/:id/photos/:photoId
// @Summary Remove a photo from a gallery
// @Tags galleries
// @Param id path string true "Gallery ID (UUID)"
// @Param photoId path string true "Photo ID (UUID)"
// @Success 204 "Photo removed from gallery"
// @Failure 404 {object} ErrorResponse "Photo not in gallery"
// @Security BearerAuth
// @Router /galleries/{id}/photos/{photoId} [delete]
func (h *GalleryHandler) RemovePhoto(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "gallery")
	if !ok {
		return
	}
	photoID, ok := parseUUIDParam(c, "photoId", "photo")
	if !ok {
		return
	}

	if err := h.service.RemovePhoto(caller, id, photoID); err != nil {
		respondError(c, err, "Failed to remove photo from gallery")
		return
	}
	c.Status(http.StatusNoContent)
}

// ShareLink handles GET /api/v1/galleries/:id/share
// @Summary Get the shareable link of a gallery
// @Tags galleries
// @Produce json
// @Param id path string true "Gallery ID (UUID)"
// @Success 200 {object} service.ShareLinkResponse "Share link"
// @Failure 404 {object} ErrorResponse "Gallery not found"
// @Security BearerAuth
// @Router /galleries/{id}/share [get]
func (h *GalleryHandler) ShareLink(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "gallery")
	if !ok {
		return
	}

	link, err := h.service.ShareLink(caller, id)
	if err != nil {
		respondError(c, err, "Failed to build share link")
		return
	}
	c.JSON(http.StatusOK, link)
}

// GenerateAccessCode handles POST /api/v1/galleries/access-code
// @Summary Generate a random access code
// @Description The code is not reserved. Uniqueness is checked when it is saved on a gallery.
// @Tags galleries
// @Produce json
// @Success 200 {object} AccessCodeResponse "Generated code"
// @Security BearerAuth
// @Router /galleries/access-code [post]
func (h *GalleryHandler) GenerateAccessCode(c *gin.Context) {
	if _, ok := requireCaller(c); !ok {
		return
	}

	code, err := h.service.GenerateAccessCode()
	if err != nil {
		respondError(c, err, "Failed to generate access code")
		return
	}
	c.JSON(http.StatusOK, AccessCodeResponse{AccessCode: code})
}

// ViewGallery handles GET /gallery/:id
// @Summary Open a shared gallery
// @Description Public galleries open without a code. Private galleries need their access code.
// @Tags guest
// @Produce json
// @Param id path string true "Gallery ID (UUID)"
// @Param code query string false "Access code"
// @Success 200 {object} service.GuestGalleryResponse "Gallery and its photos in order"
// @Failure 403 {object} ErrorResponse "Access denied"
// @Failure 404 {object} ErrorResponse "Gallery not found"
// @Router /gallery/{id} [get]
func (h *GalleryHandler) ViewGallery(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "gallery")
	if !ok {
		return
	}

	var code *string
	if supplied, present := c.GetQuery("code"); present {
		code = &supplied
	}

	gallery, err := h.service.ViewAsGuest(id, code)
	if err != nil {
		respondError(c, err, "Failed to open gallery")
		return
	}
	c.JSON(http.StatusOK, gallery)
}

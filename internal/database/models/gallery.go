package models

import "github.com/google/uuid"

// Gallery is a client-facing selection of photos
type Gallery struct {
	BaseModel
	StudioID    uuid.UUID `json:"studio_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_galleries_studio_code,priority:1"`
	EventID     uuid.UUID `json:"event_id" gorm:"type:uuid;not null;index"`
	Name        string    `json:"name" gorm:"size:200;not null"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	IsPublic    bool      `json:"is_public" gorm:"not null;default:false"`
	AccessCode  *string   `json:"access_code,omitempty" gorm:"size:64;uniqueIndex:idx_galleries_studio_code,priority:2"`
}

// TableName returns the table name for Gallery
func (Gallery) TableName() string {
	return "galleries"
}

// EntityName returns the human readable kind name
func (Gallery) EntityName() string {
	return "gallery"
}

// HasViewerPath reports whether anyone but the owner can ever open the gallery
func (g *Gallery) HasViewerPath() bool {
	return g.IsPublic || (g.AccessCode != nil && *g.AccessCode != "")
}

// GalleryPhoto links a photo into a gallery at a position
type GalleryPhoto struct {
	BaseModel
	GalleryID  uuid.UUID `json:"gallery_id" gorm:"type:uuid;not null;uniqueIndex:idx_gallery_photos_pair,priority:1"`
	PhotoID    uuid.UUID `json:"photo_id" gorm:"type:uuid;not null;uniqueIndex:idx_gallery_photos_pair,priority:2;index"`
	OrderIndex int       `json:"order_index" gorm:"not null"`
}

// TableName returns the table name for GalleryPhoto
func (GalleryPhoto) TableName() string {
	return "gallery_photos"
}

// EntityName returns the human readable kind name
func (GalleryPhoto) EntityName() string {
	return "gallery photo"
}

package models

import "github.com/google/uuid"

// Photo is an uploaded image belonging to an event
type Photo struct {
	BaseModel
	EventID    uuid.UUID  `json:"event_id" gorm:"type:uuid;not null;index"`
	CeremonyID *uuid.UUID `json:"ceremony_id,omitempty" gorm:"type:uuid;index"`
	UploadedBy uuid.UUID  `json:"uploaded_by" gorm:"type:uuid;not null"`
	FileURL    string     `json:"file_url" gorm:"size:1000;not null"`
	FileName   string     `json:"file_name" gorm:"size:300;not null"`
	FileSize   int64      `json:"file_size,omitempty"`
	MimeType   string     `json:"mime_type,omitempty" gorm:"size:100"`
	Tags       string     `json:"tags,omitempty" gorm:"size:500"`
	Rating     int        `json:"rating" gorm:"not null;default:0"`
	IsSelected bool       `json:"is_selected" gorm:"not null;default:false"`
}

// TableName returns the table name for Photo
func (Photo) TableName() string {
	return "photos"
}

// EntityName returns the human readable kind name
func (Photo) EntityName() string {
	return "photo"
}

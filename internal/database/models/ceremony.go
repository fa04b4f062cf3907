package models

import "github.com/google/uuid"

// Ceremony is a named session within an event, e.g. "Reception"
type Ceremony struct {
	BaseModel
	EventID     uuid.UUID `json:"event_id" gorm:"type:uuid;not null;index"`
	Name        string    `json:"name" gorm:"size:200;not null"`
	StartTime   *string   `json:"start_time,omitempty" gorm:"size:5"`
	EndTime     *string   `json:"end_time,omitempty" gorm:"size:5"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	OrderIndex  int       `json:"order_index" gorm:"not null"`
}

// TableName returns the table name for Ceremony
func (Ceremony) TableName() string {
	return "ceremonies"
}

// EntityName returns the human readable kind name
func (Ceremony) EntityName() string {
	return "ceremony"
}

package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	// DateLayout is the wire and storage layout of Event.Date
	DateLayout = "2006-01-02"
	// ClockLayout is the wire and storage layout of event and ceremony times
	ClockLayout = "15:04"
)

// Event is a booked shoot, e.g. a wedding, owned by a studio
type Event struct {
	BaseModel
	StudioID    uuid.UUID   `json:"studio_id" gorm:"type:uuid;not null;index"`
	Name        string      `json:"name" gorm:"size:200;not null"`
	Date        string      `json:"date" gorm:"size:10;not null;index"`
	Time        string      `json:"time" gorm:"size:5;not null"`
	Venue       string      `json:"venue" gorm:"size:300;not null"`
	ClientName  string      `json:"client_name" gorm:"size:200;not null"`
	ClientEmail string      `json:"client_email,omitempty" gorm:"size:255"`
	ClientPhone string      `json:"client_phone,omitempty" gorm:"size:30"`
	Description string      `json:"description,omitempty" gorm:"type:text"`
	Status      EventStatus `json:"status" gorm:"type:varchar(20);not null;default:'upcoming';index"`
}

// TableName returns the table name for Event
func (Event) TableName() string {
	return "events"
}

// EntityName returns the human readable kind name
func (Event) EntityName() string {
	return "event"
}

// ScheduledAt parses Date and Time into a point in time in loc
func (e *Event) ScheduledAt(loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(DateLayout+" "+ClockLayout, e.Date+" "+e.Time, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse event schedule: %w", err)
	}
	return t, nil
}

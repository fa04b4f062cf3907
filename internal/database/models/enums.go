package models

// EventStatus is the lifecycle state of an event
type EventStatus string

const (
	EventStatusUpcoming  EventStatus = "upcoming"
	EventStatusOngoing   EventStatus = "ongoing"
	EventStatusCompleted EventStatus = "completed"
	EventStatusCancelled EventStatus = "cancelled"
)

// IsValid checks if the EventStatus is valid
func (s EventStatus) IsValid() bool {
	switch s {
	case EventStatusUpcoming, EventStatusOngoing, EventStatusCompleted, EventStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether moving from s to next is a legal lifecycle step.
// upcoming -> ongoing -> completed, and cancelled from upcoming or ongoing.
func (s EventStatus) CanTransitionTo(next EventStatus) bool {
	switch s {
	case EventStatusUpcoming:
		return next == EventStatusOngoing || next == EventStatusCancelled
	case EventStatusOngoing:
		return next == EventStatusCompleted || next == EventStatusCancelled
	}
	return false
}

// AllowsScheduling reports whether ceremonies and new assignments may still change
func (s EventStatus) AllowsScheduling() bool {
	return s == EventStatusUpcoming || s == EventStatusOngoing
}

// IsTerminal reports whether no further transition is possible
func (s EventStatus) IsTerminal() bool {
	return s == EventStatusCompleted || s == EventStatusCancelled
}

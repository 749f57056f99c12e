package shared

import "time"

type EventType string

const (
	EventReservationCreated   EventType = "reservation.created"
	EventReservationCancelled EventType = "reservation.cancelled"
)

type ReservationEvent struct {
	Type       EventType `json:"type"`
	ID         int64     `json:"id,omitempty"`
	UID        string    `json:"uid"`
	Attendee   string    `json:"attendee,omitempty"`
	VisitDate  string    `json:"visitDate,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// EventPublisher must not block the caller; delivery is best effort.
type EventPublisher interface {
	Publish(event ReservationEvent)
}

type NopPublisher struct{}

func (NopPublisher) Publish(ReservationEvent) {}

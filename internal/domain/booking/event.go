package booking

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventCreated  EventType = "booking.created"
	EventUpdated  EventType = "booking.updated"
	EventCanceled EventType = "booking.canceled"
)

func (t EventType) String() string {
	return string(t)
}

// Event is the payload appended to the outbox in the same unit of work as the change.
type Event struct {
	Type       EventType `json:"type"`
	BookingID  uuid.UUID `json:"booking_id"`
	RoomID     uuid.UUID `json:"room_id"`
	UserID     uuid.UUID `json:"user_id"`
	StartAt    time.Time `json:"start_at"`
	EndAt      time.Time `json:"end_at"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewEvent(t EventType, b *Booking, now time.Time) Event {
	return Event{
		Type:       t,
		BookingID:  b.ID(),
		RoomID:     b.RoomID(),
		UserID:     b.UserID(),
		StartAt:    b.StartAt(),
		EndAt:      b.EndAt(),
		OccurredAt: now.UTC(),
	}
}

package shared

import (
	"time"

	"github.com/google/uuid"
)

// OutboxEvent is a booking event row waiting to be relayed.
type OutboxEvent struct {
	ID        int64
	BookingID uuid.UUID
	Type      string
	Payload   []byte
	CreatedAt time.Time
}

package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingRoom = errors.New("room id is required")
	ErrMissingUser = errors.New("user id is required")
	ErrNotOwner    = errors.New("booking is owned by another user")
)

// Booking is a committed (or about to be committed) reservation of one room.
// The id is uuid.Nil until the store assigns one on insert.
type Booking struct {
	id        uuid.UUID
	roomID    uuid.UUID
	userID    uuid.UUID
	timeRange TimeRange
	createdAt time.Time
	updatedAt time.Time
}

func NewBooking(userID, roomID uuid.UUID, r TimeRange) (*Booking, error) {
	if roomID == uuid.Nil {
		return nil, ErrMissingRoom
	}
	if userID == uuid.Nil {
		return nil, ErrMissingUser
	}
	if r.IsZero() {
		return nil, ErrInvalidRange
	}

	return &Booking{
		roomID:    roomID,
		userID:    userID,
		timeRange: r,
	}, nil
}

func ReconstructBooking(
	id, roomID, userID uuid.UUID,
	startAt, endAt time.Time,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:     id,
		roomID: roomID,
		userID: userID,
		timeRange: TimeRange{
			start: normalize(startAt),
			end:   normalize(endAt),
		},
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (b *Booking) Candidate() Candidate {
	return Candidate{RoomID: b.roomID, Range: b.timeRange}
}

// Reschedule moves the booking to r. Conflict checking is the caller's job since it
// needs the locked set of the room's bookings.
func (b *Booking) Reschedule(r TimeRange) error {
	if r.IsZero() {
		return ErrInvalidRange
	}
	b.timeRange = r
	return nil
}

func (b *Booking) EnsureOwnedBy(userID uuid.UUID) error {
	if b.userID != userID {
		return ErrNotOwner
	}
	return nil
}

// Committed stamps the values assigned by the store.
func (b *Booking) Committed(id uuid.UUID, createdAt, updatedAt time.Time) {
	b.id = id
	b.createdAt = createdAt
	b.updatedAt = updatedAt
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) RoomID() uuid.UUID    { return b.roomID }
func (b *Booking) UserID() uuid.UUID    { return b.userID }
func (b *Booking) Range() TimeRange     { return b.timeRange }
func (b *Booking) StartAt() time.Time   { return b.timeRange.Start() }
func (b *Booking) EndAt() time.Time     { return b.timeRange.End() }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }

//go:build unit || e2e

package builder

import (
	"time"

	"hotel-booking/internal/domain/booking"
	reqdto "hotel-booking/internal/handler/dto/request"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingBuilder struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	RoomID     uuid.UUID
	RoomNumber string
	HotelID    uuid.UUID
	HotelName  string
	StartAt    time.Time
	EndAt      time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewBookingBuilder starts from a one-night stay a week from now.
func NewBookingBuilder() *BookingBuilder {
	now := time.Now().UTC().Truncate(time.Microsecond)
	start := now.Add(7 * 24 * time.Hour).Truncate(time.Hour)
	return &BookingBuilder{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		RoomID:     uuid.New(),
		RoomNumber: "101",
		HotelID:    uuid.New(),
		HotelName:  "Test Hotel",
		StartAt:    start,
		EndAt:      start.Add(24 * time.Hour),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods

// BuildDomain returns a committed booking, as loaded from the store.
func (b *BookingBuilder) BuildDomain() *booking.Booking {
	return booking.ReconstructBooking(b.ID, b.RoomID, b.UserID, b.StartAt, b.EndAt, b.CreatedAt, b.UpdatedAt)
}

// BuildNew returns a booking that has not been inserted yet.
func (b *BookingBuilder) BuildNew() (*booking.Booking, error) {
	r, err := booking.NewTimeRange(b.StartAt, b.EndAt)
	if err != nil {
		return nil, err
	}
	return booking.NewBooking(b.UserID, b.RoomID, r)
}

func (b *BookingBuilder) BuildInfra() sqlc.Bookings {
	return sqlc.Bookings{
		ID:        b.ID,
		RoomID:    b.RoomID,
		UserID:    b.UserID,
		StartAt:   pgtype.Timestamptz{Time: b.StartAt, Valid: true},
		EndAt:     pgtype.Timestamptz{Time: b.EndAt, Valid: true},
		CreatedAt: pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt: pgtype.Timestamptz{Time: b.UpdatedAt, Valid: true},
	}
}

func (b *BookingBuilder) BuildViewRow() sqlc.GetBookingViewRow {
	return sqlc.GetBookingViewRow{
		ID:         b.ID,
		RoomID:     b.RoomID,
		RoomNumber: b.RoomNumber,
		HotelID:    b.HotelID,
		HotelName:  b.HotelName,
		UserID:     b.UserID,
		StartAt:    pgtype.Timestamptz{Time: b.StartAt, Valid: true},
		EndAt:      pgtype.Timestamptz{Time: b.EndAt, Valid: true},
		CreatedAt:  pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:  pgtype.Timestamptz{Time: b.UpdatedAt, Valid: true},
	}
}

func (b *BookingBuilder) BuildViewQuery() *queries.BookingView {
	return &queries.BookingView{
		ID:         b.ID,
		RoomID:     b.RoomID,
		RoomNumber: b.RoomNumber,
		HotelID:    b.HotelID,
		HotelName:  b.HotelName,
		UserID:     b.UserID,
		StartAt:    b.StartAt,
		EndAt:      b.EndAt,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		RoomID:  b.RoomID,
		StartAt: b.StartAt,
		EndAt:   b.EndAt,
	}
}

func (b *BookingBuilder) BuildUpdateRequestDTO() reqdto.UpdateBookingRequest {
	start := b.StartAt
	end := b.EndAt
	return reqdto.UpdateBookingRequest{
		StartAt: &start,
		EndAt:   &end,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithID(id uuid.UUID) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithUserID(userID uuid.UUID) *BookingBuilder {
	b.UserID = userID
	return b
}

func (b *BookingBuilder) WithRoomID(roomID uuid.UUID) *BookingBuilder {
	b.RoomID = roomID
	return b
}

func (b *BookingBuilder) WithRange(start, end time.Time) *BookingBuilder {
	b.StartAt = start
	b.EndAt = end
	return b
}

// StartingAt places a booking of the given length at start.
func (b *BookingBuilder) StartingAt(start time.Time, d time.Duration) *BookingBuilder {
	b.StartAt = start
	b.EndAt = start.Add(d)
	return b
}

package queries

import (
	"time"

	"github.com/google/uuid"
)

// BookingView represents read-optimized booking data joined with its room and hotel
type BookingView struct {
	ID         uuid.UUID `json:"id"`
	RoomID     uuid.UUID `json:"room_id"`
	RoomNumber string    `json:"room_number"`
	HotelID    uuid.UUID `json:"hotel_id"`
	HotelName  string    `json:"hotel_name"`
	UserID     uuid.UUID `json:"user_id"`
	StartAt    time.Time `json:"start_at"`
	EndAt      time.Time `json:"end_at"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ScheduleWindow bounds a room schedule listing. Bookings overlapping [From, To) are returned.
type ScheduleWindow struct {
	From time.Time
	To   time.Time
}

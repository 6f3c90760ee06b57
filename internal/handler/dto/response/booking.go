package response

import (
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID        uuid.UUID `json:"id"`
	RoomID    uuid.UUID `json:"room_id"`
	UserID    uuid.UUID `json:"user_id"`
	StartAt   time.Time `json:"start_at"`
	EndAt     time.Time `json:"end_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateBookingResponse struct {
	Message   string           `json:"message"`
	BookingID uuid.UUID        `json:"booking_id"`
	Booking   *BookingResponse `json:"booking"`
}

type BookingViewResponse struct {
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

// RoomSlotResponse is a room schedule entry; it does not reveal who booked.
type RoomSlotResponse struct {
	ID      uuid.UUID `json:"id"`
	StartAt time.Time `json:"start_at"`
	EndAt   time.Time `json:"end_at"`
}

func FromBooking(b *booking.Booking) *BookingResponse {
	return &BookingResponse{
		ID:        b.ID(),
		RoomID:    b.RoomID(),
		UserID:    b.UserID(),
		StartAt:   b.StartAt(),
		EndAt:     b.EndAt(),
		CreatedAt: b.CreatedAt(),
		UpdatedAt: b.UpdatedAt(),
	}
}

func NewCreateBookingResponse(b *booking.Booking) *CreateBookingResponse {
	return &CreateBookingResponse{
		Message:   "Booking successful!",
		BookingID: b.ID(),
		Booking:   FromBooking(b),
	}
}

func FromBookingView(v *queries.BookingView) (*BookingViewResponse, error) {
	var res BookingViewResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromBookingViews(views []*queries.BookingView) ([]*BookingViewResponse, error) {
	res := make([]*BookingViewResponse, 0, len(views))
	if err := copier.Copy(&res, &views); err != nil {
		return nil, err
	}
	return res, nil
}

func FromRoomSchedule(views []*queries.BookingView) ([]*RoomSlotResponse, error) {
	res := make([]*RoomSlotResponse, 0, len(views))
	if err := copier.Copy(&res, &views); err != nil {
		return nil, err
	}
	return res, nil
}

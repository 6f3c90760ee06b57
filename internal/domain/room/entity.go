package room

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyRoomNumber   = errors.New("room number cannot be empty")
	ErrRoomNumberTooLong = errors.New("room number is too long (max 10 characters)")
	ErrMissingHotel      = errors.New("room must belong to a hotel")
)

const (
	MaxRoomNumberLength = 10
)

// Room is read-only for the booking core; the catalog service owns it.
type Room struct {
	id        uuid.UUID
	hotelID   uuid.UUID
	hotelName string
	number    string
}

func NewRoom(id, hotelID uuid.UUID, hotelName, number string) (*Room, error) {
	if hotelID == uuid.Nil {
		return nil, ErrMissingHotel
	}
	if err := validateRoomNumber(number); err != nil {
		return nil, err
	}

	return &Room{
		id:        id,
		hotelID:   hotelID,
		hotelName: strings.TrimSpace(hotelName),
		number:    strings.TrimSpace(number),
	}, nil
}

func validateRoomNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return ErrEmptyRoomNumber
	}
	if len(number) > MaxRoomNumberLength {
		return ErrRoomNumberTooLong
	}
	return nil
}

func (r *Room) String() string {
	return "Room " + r.number + " - " + r.hotelName
}

func (r *Room) ID() uuid.UUID      { return r.id }
func (r *Room) HotelID() uuid.UUID { return r.hotelID }
func (r *Room) HotelName() string  { return r.hotelName }
func (r *Room) Number() string     { return r.number }

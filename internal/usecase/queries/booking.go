package queries

import (
	"context"
	"time"

	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrInvalidWindow   = errs.New("schedule window start must be before its end")
)

// DefaultScheduleSpan is the room schedule window used when the caller gives no end.
const DefaultScheduleSpan = 30 * 24 * time.Hour

type BookingQueries interface {
	GetBooking(ctx context.Context, actorID, id uuid.UUID) (*BookingView, error)
	ListUserBookings(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
	ListRoomBookings(ctx context.Context, roomID uuid.UUID, window ScheduleWindow) ([]*BookingView, error)
}

type BookingViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
	FindByRoomInWindow(ctx context.Context, roomID uuid.UUID, window ScheduleWindow) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	repo BookingViewRepo
}

func NewBookingQueries(repo BookingViewRepo) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

// GetBooking hides bookings of other users behind ErrBookingNotFound.
func (q *bookingQueriesImpl) GetBooking(ctx context.Context, actorID, id uuid.UUID) (*BookingView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if view.UserID != actorID {
		return nil, ErrBookingNotFound
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListUserBookings(ctx context.Context, userID uuid.UUID) ([]*BookingView, error) {
	return q.repo.FindByUserID(ctx, userID)
}

func (q *bookingQueriesImpl) ListRoomBookings(ctx context.Context, roomID uuid.UUID, window ScheduleWindow) ([]*BookingView, error) {
	if window.To.IsZero() {
		window.To = window.From.Add(DefaultScheduleSpan)
	}
	if !window.From.Before(window.To) {
		return nil, ErrInvalidWindow
	}
	return q.repo.FindByRoomInWindow(ctx, roomID, window)
}

package usecase

import (
	"context"
	"errors"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// ErrorCode is the externally visible outcome of a booking request.
type ErrorCode string

const (
	CodeInvalidRange    ErrorCode = "invalid_range"
	CodePastStart       ErrorCode = "past_start"
	CodeConflict        ErrorCode = "conflict"
	CodeStoreFailure    ErrorCode = "store_failure"
	CodeRoomNotFound    ErrorCode = "room_not_found"
	CodeUserNotFound    ErrorCode = "user_not_found"
	CodeBookingNotFound ErrorCode = "booking_not_found"
	CodeNotOwner        ErrorCode = "not_owner"
)

// Retryable reports whether the same request may succeed if sent again unchanged.
func (c ErrorCode) Retryable() bool {
	return c == CodeStoreFailure
}

var ErrUserNotFound = errs.New("user not found")

// BookingError carries the classified outcome; Err keeps the cause for logs only.
type BookingError struct {
	Code ErrorCode
	Err  error
}

func (e *BookingError) Error() string {
	return string(e.Code) + ": " + e.Err.Error()
}

func (e *BookingError) Unwrap() error {
	return e.Err
}

// CodeOf returns the classification of err, or "" for nil.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return ""
	}
	var be *BookingError
	if errors.As(err, &be) {
		return be.Code
	}
	return classify(err)
}

type CreateBookingRequest struct {
	RoomID  uuid.UUID
	StartAt time.Time
	EndAt   time.Time
}

type UpdateBookingRequest struct {
	StartAt *time.Time
	EndAt   *time.Time
}

// BookingService is the entry point of the booking core. Every error it returns
// is a *BookingError.
type BookingService interface {
	CreateBooking(ctx context.Context, userID uuid.UUID, req CreateBookingRequest) (*booking.Booking, error)
	UpdateBooking(ctx context.Context, actorID, bookingID uuid.UUID, req UpdateBookingRequest) (*booking.Booking, error)
	CancelBooking(ctx context.Context, actorID, bookingID uuid.UUID) error
}

type bookingServiceImpl struct {
	uow      shared.UnitOfWork
	commands commands.BookingCommands
}

func NewBookingService(uow shared.UnitOfWork, cmds commands.BookingCommands) BookingService {
	return &bookingServiceImpl{
		uow:      uow,
		commands: cmds,
	}
}

func (s *bookingServiceImpl) CreateBooking(ctx context.Context, userID uuid.UUID, req CreateBookingRequest) (*booking.Booking, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.ensureRoom(ctx, req.RoomID); err != nil {
		return nil, err
	}

	b, err := s.commands.CreateBooking(ctx, commands.CreateBookingParams{
		UserID:  userID,
		RoomID:  req.RoomID,
		StartAt: req.StartAt,
		EndAt:   req.EndAt,
	})
	if err != nil {
		return nil, wrap(err)
	}
	return b, nil
}

func (s *bookingServiceImpl) UpdateBooking(ctx context.Context, actorID, bookingID uuid.UUID, req UpdateBookingRequest) (*booking.Booking, error) {
	b, err := s.commands.UpdateBooking(ctx, commands.UpdateBookingParams{
		BookingID: bookingID,
		ActorID:   actorID,
		StartAt:   req.StartAt,
		EndAt:     req.EndAt,
	})
	if err != nil {
		return nil, wrap(err)
	}
	return b, nil
}

func (s *bookingServiceImpl) CancelBooking(ctx context.Context, actorID, bookingID uuid.UUID) error {
	if err := s.commands.CancelBooking(ctx, bookingID, actorID); err != nil {
		return wrap(err)
	}
	return nil
}

func (s *bookingServiceImpl) ensureUser(ctx context.Context, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return &BookingError{Code: CodeUserNotFound, Err: ErrUserNotFound}
	}
	exists, err := s.uow.CommandReads().UserExists(ctx, userID)
	if err != nil {
		return &BookingError{Code: CodeStoreFailure, Err: errs.Mark(err, commands.ErrStoreFailure)}
	}
	if !exists {
		return &BookingError{Code: CodeUserNotFound, Err: ErrUserNotFound}
	}
	return nil
}

// ensureRoom is a fast path only; the room lock re-checks existence inside the transaction.
func (s *bookingServiceImpl) ensureRoom(ctx context.Context, roomID uuid.UUID) error {
	if roomID == uuid.Nil {
		return &BookingError{Code: CodeRoomNotFound, Err: commands.ErrRoomNotFound}
	}
	if _, err := s.uow.CommandReads().RoomByID(ctx, roomID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return &BookingError{Code: CodeRoomNotFound, Err: commands.ErrRoomNotFound}
		}
		return &BookingError{Code: CodeStoreFailure, Err: errs.Mark(err, commands.ErrStoreFailure)}
	}
	return nil
}

func wrap(err error) error {
	return &BookingError{Code: classify(err), Err: err}
}

func classify(err error) ErrorCode {
	switch {
	case errs.Is(err, booking.ErrPastStart):
		return CodePastStart
	case errs.Is(err, booking.ErrInvalidRange), errs.Is(err, commands.ErrValidationFailed):
		return CodeInvalidRange
	case errs.Is(err, commands.ErrConflict):
		return CodeConflict
	case errs.Is(err, commands.ErrRoomNotFound):
		return CodeRoomNotFound
	case errs.Is(err, commands.ErrBookingNotFound):
		return CodeBookingNotFound
	case errs.Is(err, commands.ErrNotOwner):
		return CodeNotOwner
	case errs.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	default:
		return CodeStoreFailure
	}
}

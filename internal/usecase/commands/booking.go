package commands

import (
	"context"
	"log/slog"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/patch"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrValidationFailed = errs.New("booking validation failed")
	ErrConflict         = errs.New("room is already booked for the requested time")
	ErrStoreFailure     = errs.New("booking store failure")
	ErrBookingNotFound  = errs.New("booking not found")
	ErrRoomNotFound     = errs.New("room not found")
	ErrNotOwner         = errs.New("booking not owned by user")
)

type CreateBookingParams struct {
	UserID  uuid.UUID
	RoomID  uuid.UUID
	StartAt time.Time
	EndAt   time.Time
}

// UpdateBookingParams reschedules a booking. A nil bound keeps the stored value.
type UpdateBookingParams struct {
	BookingID uuid.UUID
	ActorID   uuid.UUID
	StartAt   *time.Time
	EndAt     *time.Time
}

// BookingCommands admits, reschedules and cancels bookings. Every write runs
// validate, lock room, detect conflicts, commit in one unit of work.
type BookingCommands interface {
	CreateBooking(ctx context.Context, p CreateBookingParams) (*booking.Booking, error)
	UpdateBooking(ctx context.Context, p UpdateBookingParams) (*booking.Booking, error)
	CancelBooking(ctx context.Context, bookingID, actorID uuid.UUID) error
}

type bookingUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBookingUseCase(uow shared.UnitOfWork, clk clock.Clock) BookingCommands {
	return &bookingUseCaseImpl{uow: uow, clock: clk}
}

func (uc *bookingUseCaseImpl) CreateBooking(ctx context.Context, p CreateBookingParams) (*booking.Booking, error) {
	r, err := booking.NewValidatedRange(p.StartAt, p.EndAt, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrValidationFailed)
	}
	b, err := booking.NewBooking(p.UserID, p.RoomID, r)
	if err != nil {
		return nil, errs.Mark(err, ErrValidationFailed)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, derr := uc.lockRoomBookings(ctx, tx, b.RoomID())
		if derr != nil {
			return derr
		}

		if derr = uc.detect(b, existing, nil); derr != nil {
			return derr
		}

		if derr = tx.Bookings().Create(ctx, tx.DB(), b); derr != nil {
			return derr
		}
		return tx.Events().Append(ctx, tx.DB(), booking.NewEvent(booking.EventCreated, b, uc.clock.Now()))
	})
	if err != nil {
		return nil, uc.classify(err, "create", p.RoomID)
	}

	slog.Info("booking created",
		"booking_id", b.ID().String(),
		"room_id", b.RoomID().String(),
		"range", b.Range().String())
	return b, nil
}

func (uc *bookingUseCaseImpl) UpdateBooking(ctx context.Context, p UpdateBookingParams) (*booking.Booking, error) {
	// Reject an obviously bad range before taking any lock.
	if p.StartAt != nil && p.EndAt != nil {
		if err := booking.Validate(*p.StartAt, *p.EndAt, uc.clock.Now()); err != nil {
			return nil, errs.Mark(err, ErrValidationFailed)
		}
	}

	var updated *booking.Booking
	var roomID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		updated = nil

		current, derr := tx.Bookings().FindByID(ctx, tx.DB(), p.BookingID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return derr
		}
		roomID = current.RoomID()

		existing, derr := uc.lockRoomBookings(ctx, tx, roomID)
		if derr != nil {
			return derr
		}

		// Re-read under the lock; the booking may have been canceled meanwhile.
		target := findByID(existing, p.BookingID)
		if target == nil {
			return ErrBookingNotFound
		}
		if derr = target.EnsureOwnedBy(p.ActorID); derr != nil {
			return errs.Mark(derr, ErrNotOwner)
		}

		start := patch.Coalesce(p.StartAt, target.StartAt())
		end := patch.Coalesce(p.EndAt, target.EndAt())
		r, derr := booking.NewValidatedRange(start, end, uc.clock.Now())
		if derr != nil {
			return errs.Mark(derr, ErrValidationFailed)
		}
		if derr = target.Reschedule(r); derr != nil {
			return errs.Mark(derr, ErrValidationFailed)
		}

		bookingID := target.ID()
		if derr = uc.detect(target, existing, &bookingID); derr != nil {
			return derr
		}

		if derr = tx.Bookings().UpdateRange(ctx, tx.DB(), target); derr != nil {
			return derr
		}
		if derr = tx.Events().Append(ctx, tx.DB(), booking.NewEvent(booking.EventUpdated, target, uc.clock.Now())); derr != nil {
			return derr
		}

		updated = target
		return nil
	})
	if err != nil {
		return nil, uc.classify(err, "update", roomID)
	}

	slog.Info("booking updated",
		"booking_id", updated.ID().String(),
		"room_id", updated.RoomID().String(),
		"range", updated.Range().String())
	return updated, nil
}

func (uc *bookingUseCaseImpl) CancelBooking(ctx context.Context, bookingID, actorID uuid.UUID) error {
	var roomID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, derr := tx.Bookings().FindByID(ctx, tx.DB(), bookingID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return derr
		}
		roomID = current.RoomID()

		existing, derr := uc.lockRoomBookings(ctx, tx, roomID)
		if derr != nil {
			return derr
		}

		target := findByID(existing, bookingID)
		if target == nil {
			return ErrBookingNotFound
		}
		if derr = target.EnsureOwnedBy(actorID); derr != nil {
			return errs.Mark(derr, ErrNotOwner)
		}

		if derr = tx.Bookings().Delete(ctx, tx.DB(), bookingID); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return derr
		}
		return tx.Events().Append(ctx, tx.DB(), booking.NewEvent(booking.EventCanceled, target, uc.clock.Now()))
	})
	if err != nil {
		return uc.classify(err, "cancel", roomID)
	}

	slog.Info("booking canceled", "booking_id", bookingID.String(), "room_id", roomID.String())
	return nil
}

// lockRoomBookings takes the room lock and then loads the room's bookings.
// Admissions on other rooms never wait on this lock.
func (uc *bookingUseCaseImpl) lockRoomBookings(ctx context.Context, tx shared.Tx, roomID uuid.UUID) ([]*booking.Booking, error) {
	if err := tx.Bookings().LockRoom(ctx, tx.DB(), roomID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	return tx.Bookings().ListByRoomForUpdate(ctx, tx.DB(), roomID)
}

func (uc *bookingUseCaseImpl) detect(b *booking.Booking, existing []*booking.Booking, excludeID *uuid.UUID) error {
	clash := booking.FirstConflict(b.Candidate(), existing, excludeID)
	if clash == nil {
		return nil
	}

	slog.Debug("booking overlaps existing booking",
		"room_id", b.RoomID().String(),
		"requested", b.Range().String(),
		"existing_id", clash.ID().String(),
		"existing", clash.Range().String())
	return ErrConflict
}

// classify maps every failure onto the command error set. Anything not already
// a domain outcome is a store failure, lock timeouts and unique violations included.
func (uc *bookingUseCaseImpl) classify(err error, op string, roomID uuid.UUID) error {
	switch {
	case errs.Is(err, ErrValidationFailed),
		errs.Is(err, ErrConflict),
		errs.Is(err, ErrBookingNotFound),
		errs.Is(err, ErrRoomNotFound),
		errs.Is(err, ErrNotOwner):
		slog.Info("booking "+op+" rejected", "room_id", roomID.String(), "reason", err.Error())
		return err
	}

	attrs := []any{"room_id", roomID.String(), "error", err.Error()}
	if infra.IsKind(err, infra.KindLockTimeout) {
		attrs = append(attrs, "lock_timeout", true)
	}
	slog.Error("booking "+op+" failed", attrs...)
	return errs.Mark(err, ErrStoreFailure)
}

func findByID(bookings []*booking.Booking, id uuid.UUID) *booking.Booking {
	for _, b := range bookings {
		if b != nil && b.ID() == id {
			return b
		}
	}
	return nil
}

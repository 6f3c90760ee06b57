//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/infra"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/shared"
	"hotel-booking/tests/common/builder"
	sharedmock "hotel-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2030, 3, 1, 9, 0, 0, 0, time.UTC)

func hoursFromNow(h int) time.Time {
	return now.Add(time.Duration(h) * time.Hour)
}

type fixture struct {
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	bookings *sharedmock.MockBookingRepository
	events   *sharedmock.MockBookingEventRepository
	uc       commands.BookingCommands
}

// newFixture runs every Within callback once against the mocked transaction.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		uow:      sharedmock.NewMockUnitOfWork(ctrl),
		tx:       sharedmock.NewMockTx(ctrl),
		bookings: sharedmock.NewMockBookingRepository(ctrl),
		events:   sharedmock.NewMockBookingEventRepository(ctrl),
	}
	f.tx.EXPECT().Bookings().Return(f.bookings).AnyTimes()
	f.tx.EXPECT().Events().Return(f.events).AnyTimes()
	f.tx.EXPECT().DB().Return(nil).AnyTimes()
	f.uc = commands.NewBookingUseCase(f.uow, clock.NewMockClock(now))
	return f
}

func (f *fixture) expectTx() {
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).Times(1)
}

func (f *fixture) expectLockedRoom(roomID uuid.UUID, existing ...*booking.Booking) {
	gomock.InOrder(
		f.bookings.EXPECT().LockRoom(gomock.Any(), gomock.Any(), roomID).Return(nil),
		f.bookings.EXPECT().ListByRoomForUpdate(gomock.Any(), gomock.Any(), roomID).Return(existing, nil),
	)
}

func lockTimeout() error {
	return infra.WrapRepoErr("failed to lock room", &pgconn.PgError{Code: infra.PgCodeLockNotAvailable})
}

// =============================================================================
// CreateBooking
// =============================================================================

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()
	roomID := uuid.New()
	userID := uuid.New()

	params := commands.CreateBookingParams{
		UserID:  userID,
		RoomID:  roomID,
		StartAt: hoursFromNow(24),
		EndAt:   hoursFromNow(48),
	}

	t.Run("success: admits a booking next to existing ones", func(t *testing.T) {
		f := newFixture(t)
		assignedID := uuid.New()
		before := builder.NewBookingBuilder().WithRoomID(roomID).WithRange(hoursFromNow(12), hoursFromNow(24)).BuildDomain()
		after := builder.NewBookingBuilder().WithRoomID(roomID).WithRange(hoursFromNow(48), hoursFromNow(60)).BuildDomain()

		f.expectTx()
		f.expectLockedRoom(roomID, before, after)
		f.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, b *booking.Booking) error {
				b.Committed(assignedID, now, now)
				return nil
			})
		f.events.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, evt booking.Event) error {
				assert.Equal(t, booking.EventCreated, evt.Type)
				assert.Equal(t, assignedID, evt.BookingID)
				return nil
			})

		got, err := f.uc.CreateBooking(ctx, params)

		require.NoError(t, err)
		assert.Equal(t, assignedID, got.ID())
		assert.Equal(t, roomID, got.RoomID())
		assert.Equal(t, userID, got.UserID())
		assert.True(t, got.StartAt().Equal(params.StartAt))
		assert.True(t, got.EndAt().Equal(params.EndAt))
	})

	t.Run("error: invalid range is rejected before any transaction", func(t *testing.T) {
		testCases := []struct {
			name      string
			start     time.Time
			end       time.Time
			expectErr error
		}{
			{name: "start equals end", start: hoursFromNow(24), end: hoursFromNow(24), expectErr: booking.ErrInvalidRange},
			{name: "start after end", start: hoursFromNow(48), end: hoursFromNow(24), expectErr: booking.ErrInvalidRange},
			{name: "start in the past", start: hoursFromNow(-1), end: hoursFromNow(24), expectErr: booking.ErrPastStart},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				f := newFixture(t)
				p := params
				p.StartAt, p.EndAt = tc.start, tc.end

				got, err := f.uc.CreateBooking(ctx, p)

				require.Error(t, err)
				assert.Nil(t, got)
				assert.True(t, errs.Is(err, commands.ErrValidationFailed))
				assert.True(t, errs.Is(err, tc.expectErr))
			})
		}
	})

	t.Run("error: overlapping booking yields conflict and nothing is written", func(t *testing.T) {
		f := newFixture(t)
		existing := builder.NewBookingBuilder().WithRoomID(roomID).WithRange(hoursFromNow(30), hoursFromNow(36)).BuildDomain()

		f.expectTx()
		f.expectLockedRoom(roomID, existing)

		got, err := f.uc.CreateBooking(ctx, params)

		require.Error(t, err)
		assert.Nil(t, got)
		assert.True(t, errs.Is(err, commands.ErrConflict))
		assert.False(t, errs.Is(err, commands.ErrStoreFailure))
	})

	t.Run("error: identical interval on same room conflicts", func(t *testing.T) {
		f := newFixture(t)
		existing := builder.NewBookingBuilder().WithRoomID(roomID).WithRange(params.StartAt, params.EndAt).BuildDomain()

		f.expectTx()
		f.expectLockedRoom(roomID, existing)

		_, err := f.uc.CreateBooking(ctx, params)

		assert.True(t, errs.Is(err, commands.ErrConflict))
	})

	t.Run("error: missing room", func(t *testing.T) {
		f := newFixture(t)

		f.expectTx()
		f.bookings.EXPECT().LockRoom(gomock.Any(), gomock.Any(), roomID).
			Return(infra.WrapRepoErr("room not found", nil, infra.KindNotFound))

		_, err := f.uc.CreateBooking(ctx, params)

		assert.True(t, errs.Is(err, commands.ErrRoomNotFound))
	})

	t.Run("error: store faults become store failures", func(t *testing.T) {
		testCases := []struct {
			name  string
			setup func(f *fixture)
		}{
			{
				name: "lock timeout",
				setup: func(f *fixture) {
					f.bookings.EXPECT().LockRoom(gomock.Any(), gomock.Any(), roomID).Return(lockTimeout())
				},
			},
			{
				name: "unique violation on insert",
				setup: func(f *fixture) {
					f.expectLockedRoom(roomID)
					f.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
						Return(infra.WrapRepoErr("failed to create booking", &pgconn.PgError{Code: infra.PgCodeUniqueViolation}))
				},
			},
			{
				name: "outbox append fails",
				setup: func(f *fixture) {
					f.expectLockedRoom(roomID)
					f.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
					f.events.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).
						Return(infra.WrapRepoErr("failed to append booking event", errors.New("connection reset")))
				},
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				f := newFixture(t)
				f.expectTx()
				tc.setup(f)

				got, err := f.uc.CreateBooking(ctx, params)

				require.Error(t, err)
				assert.Nil(t, got)
				assert.True(t, errs.Is(err, commands.ErrStoreFailure))
				assert.False(t, errs.Is(err, commands.ErrConflict))
			})
		}
	})

	t.Run("error: commit failure surfaces as store failure", func(t *testing.T) {
		f := newFixture(t)
		f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).Return(errors.New("commit failed"))

		_, err := f.uc.CreateBooking(ctx, params)

		assert.True(t, errs.Is(err, commands.ErrStoreFailure))
	})
}

// =============================================================================
// UpdateBooking
// =============================================================================

func TestUpdateBooking(t *testing.T) {
	ctx := context.Background()
	roomID := uuid.New()
	ownerID := uuid.New()

	current := func() *booking.Booking {
		return builder.NewBookingBuilder().
			WithRoomID(roomID).
			WithUserID(ownerID).
			WithRange(hoursFromNow(24), hoursFromNow(48)).
			BuildDomain()
	}

	t.Run("success: overlapping only itself is allowed", func(t *testing.T) {
		f := newFixture(t)
		target := current()
		start, end := hoursFromNow(36), hoursFromNow(60)

		f.expectTx()
		f.bookings.EXPECT().FindByID(gomock.Any(), gomock.Any(), target.ID()).Return(target, nil)
		f.expectLockedRoom(roomID, target)
		f.bookings.EXPECT().UpdateRange(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.events.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, evt booking.Event) error {
				assert.Equal(t, booking.EventUpdated, evt.Type)
				return nil
			})

		got, err := f.uc.UpdateBooking(ctx, commands.UpdateBookingParams{
			BookingID: target.ID(),
			ActorID:   ownerID,
			StartAt:   &start,
			EndAt:     &end,
		})

		require.NoError(t, err)
		assert.True(t, got.StartAt().Equal(start))
		assert.True(t, got.EndAt().Equal(end))
	})

	t.Run("success: omitted bound keeps stored value", func(t *testing.T) {
		f := newFixture(t)
		target := current()
		end := hoursFromNow(72)

		f.expectTx()
		f.bookings.EXPECT().FindByID(gomock.Any(), gomock.Any(), target.ID()).Return(target, nil)
		f.expectLockedRoom(roomID, target)
		f.bookings.EXPECT().UpdateRange(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.events.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		got, err := f.uc.UpdateBooking(ctx, commands.UpdateBookingParams{
			BookingID: target.ID(),
			ActorID:   ownerID,
			EndAt:     &end,
		})

		require.NoError(t, err)
		assert.True(t, got.StartAt().Equal(hoursFromNow(24)))
		assert.True(t, got.EndAt().Equal(end))
	})

	t.Run("error: overlapping another booking conflicts", func(t *testing.T) {
		f := newFixture(t)
		target := current()
		other := builder.NewBookingBuilder().WithRoomID(roomID).WithRange(hoursFromNow(50), hoursFromNow(70)).BuildDomain()
		end := hoursFromNow(55)

		f.expectTx()
		f.bookings.EXPECT().FindByID(gomock.Any(), gomock.Any(), target.ID()).Return(target, nil)
		f.expectLockedRoom(roomID, target, other)

		_, err := f.uc.UpdateBooking(ctx, commands.UpdateBookingParams{
			BookingID: target.ID(),
			ActorID:   ownerID,
			EndAt:     &end,
		})

		assert.True(t, errs.Is(err, commands.ErrConflict))
	})

	t.Run("error: only the owner may reschedule", func(t *testing.T) {
		f := newFixture(t)
		target := current()
		end := hoursFromNow(72)

		f.expectTx()
		f.bookings.EXPECT().FindByID(gomock.Any(), gomock.Any(), target.ID()).Return(target, nil)
		f.expectLockedRoom(roomID, target)

		_, err := f.uc.UpdateBooking(ctx, commands.UpdateBookingParams{
			BookingID: target.ID(),
			ActorID:   uuid.New(),
			EndAt:     &end,
		})

		assert.True(t, errs.Is(err, commands.ErrNotOwner))
	})

	t.Run("error: unknown booking", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.New()
		end := hoursFromNow(72)

		f.expectTx()
		f.bookings.EXPECT().FindByID(gomock.Any(), gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound))

		_, err := f.uc.UpdateBooking(ctx, commands.UpdateBookingParams{BookingID: id, ActorID: ownerID, EndAt: &end})

		assert.True(t, errs.Is(err, commands.ErrBookingNotFound))
	})

	t.Run("error: booking canceled while waiting for the lock", func(t *testing.T) {
		f := newFixture(t)
		target := current()
		end := hoursFromNow(72)

		f.expectTx()
		f.bookings.EXPECT().FindByID(gomock.Any(), gomock.Any(), target.ID()).Return(target, nil)
		f.expectLockedRoom(roomID)

		_, err := f.uc.UpdateBooking(ctx, commands.UpdateBookingParams{BookingID: target.ID(), ActorID: ownerID, EndAt: &end})

		assert.True(t, errs.Is(err, commands.ErrBookingNotFound))
	})

	t.Run("error: coalesced range is validated", func(t *testing.T) {
		f := newFixture(t)
		target := current()
		end := hoursFromNow(12)

		f.expectTx()
		f.bookings.EXPECT().FindByID(gomock.Any(), gomock.Any(), target.ID()).Return(target, nil)
		f.expectLockedRoom(roomID, target)

		_, err := f.uc.UpdateBooking(ctx, commands.UpdateBookingParams{BookingID: target.ID(), ActorID: ownerID, EndAt: &end})

		assert.True(t, errs.Is(err, commands.ErrValidationFailed))
		assert.True(t, errs.Is(err, booking.ErrInvalidRange))
	})

	t.Run("error: full range is validated before locking", func(t *testing.T) {
		f := newFixture(t)
		start, end := hoursFromNow(-2), hoursFromNow(10)

		_, err := f.uc.UpdateBooking(ctx, commands.UpdateBookingParams{
			BookingID: uuid.New(),
			ActorID:   ownerID,
			StartAt:   &start,
			EndAt:     &end,
		})

		assert.True(t, errs.Is(err, booking.ErrPastStart))
	})
}

// =============================================================================
// CancelBooking
// =============================================================================

func TestCancelBooking(t *testing.T) {
	ctx := context.Background()
	roomID := uuid.New()
	ownerID := uuid.New()

	t.Run("success: owner cancels and a canceled event is recorded", func(t *testing.T) {
		f := newFixture(t)
		target := builder.NewBookingBuilder().WithRoomID(roomID).WithUserID(ownerID).BuildDomain()

		f.expectTx()
		f.bookings.EXPECT().FindByID(gomock.Any(), gomock.Any(), target.ID()).Return(target, nil)
		f.expectLockedRoom(roomID, target)
		f.bookings.EXPECT().Delete(gomock.Any(), gomock.Any(), target.ID()).Return(nil)
		f.events.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, evt booking.Event) error {
				assert.Equal(t, booking.EventCanceled, evt.Type)
				assert.Equal(t, target.ID(), evt.BookingID)
				return nil
			})

		err := f.uc.CancelBooking(ctx, target.ID(), ownerID)

		require.NoError(t, err)
	})

	t.Run("error: other user cannot cancel", func(t *testing.T) {
		f := newFixture(t)
		target := builder.NewBookingBuilder().WithRoomID(roomID).WithUserID(ownerID).BuildDomain()

		f.expectTx()
		f.bookings.EXPECT().FindByID(gomock.Any(), gomock.Any(), target.ID()).Return(target, nil)
		f.expectLockedRoom(roomID, target)

		err := f.uc.CancelBooking(ctx, target.ID(), uuid.New())

		assert.True(t, errs.Is(err, commands.ErrNotOwner))
	})

	t.Run("error: unknown booking", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.New()

		f.expectTx()
		f.bookings.EXPECT().FindByID(gomock.Any(), gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound))

		err := f.uc.CancelBooking(ctx, id, ownerID)

		assert.True(t, errs.Is(err, commands.ErrBookingNotFound))
	})

	t.Run("error: lock timeout is a store failure", func(t *testing.T) {
		f := newFixture(t)
		target := builder.NewBookingBuilder().WithRoomID(roomID).WithUserID(ownerID).BuildDomain()

		f.expectTx()
		f.bookings.EXPECT().FindByID(gomock.Any(), gomock.Any(), target.ID()).Return(target, nil)
		f.bookings.EXPECT().LockRoom(gomock.Any(), gomock.Any(), roomID).Return(lockTimeout())

		err := f.uc.CancelBooking(ctx, target.ID(), ownerID)

		assert.True(t, errs.Is(err, commands.ErrStoreFailure))
		assert.True(t, infra.IsKind(err, infra.KindLockTimeout))
	})
}

//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/tests/common/builder"
	commandsmock "hotel-booking/tests/mock/commands"
	sharedmock "hotel-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingServiceTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockUoW      *sharedmock.MockUnitOfWork
	mockReads    *sharedmock.MockCommandReads
	mockCommands *commandsmock.MockBookingCommands
	svc          usecase.BookingService

	userID uuid.UUID
	roomID uuid.UUID
	req    usecase.CreateBookingRequest
}

func (s *BookingServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUoW = sharedmock.NewMockUnitOfWork(s.mockCtrl)
	s.mockReads = sharedmock.NewMockCommandReads(s.mockCtrl)
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockUoW.EXPECT().CommandReads().Return(s.mockReads).AnyTimes()
	s.svc = usecase.NewBookingService(s.mockUoW, s.mockCommands)

	s.userID = uuid.New()
	s.roomID = uuid.New()
	start := time.Now().Add(24 * time.Hour)
	s.req = usecase.CreateBookingRequest{RoomID: s.roomID, StartAt: start, EndAt: start.Add(24 * time.Hour)}
}

func (s *BookingServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingServiceSuite(t *testing.T) {
	suite.Run(t, new(BookingServiceTestSuite))
}

func (s *BookingServiceTestSuite) existingRoom() *room.Room {
	rm, err := room.NewRoom(s.roomID, uuid.New(), "Test Hotel", "101")
	s.Require().NoError(err)
	return rm
}

// =============================================================================
// CreateBooking
// =============================================================================

func (s *BookingServiceTestSuite) TestCreateBooking() {
	ctx := context.Background()

	s.Run("success: delegates to the transaction manager", func() {
		created := builder.NewBookingBuilder().WithUserID(s.userID).WithRoomID(s.roomID).BuildDomain()

		s.mockReads.EXPECT().UserExists(gomock.Any(), s.userID).Return(true, nil)
		s.mockReads.EXPECT().RoomByID(gomock.Any(), s.roomID).Return(s.existingRoom(), nil)
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), commands.CreateBookingParams{
			UserID:  s.userID,
			RoomID:  s.roomID,
			StartAt: s.req.StartAt,
			EndAt:   s.req.EndAt,
		}).Return(created, nil)

		got, err := s.svc.CreateBooking(ctx, s.userID, s.req)

		s.Require().NoError(err)
		s.Equal(created.ID(), got.ID())
	})

	s.Run("error: unknown user", func() {
		s.mockReads.EXPECT().UserExists(gomock.Any(), s.userID).Return(false, nil)

		_, err := s.svc.CreateBooking(ctx, s.userID, s.req)

		s.Equal(usecase.CodeUserNotFound, usecase.CodeOf(err))
	})

	s.Run("error: nil user never reaches the store", func() {
		_, err := s.svc.CreateBooking(ctx, uuid.Nil, s.req)

		s.Equal(usecase.CodeUserNotFound, usecase.CodeOf(err))
	})

	s.Run("error: unknown room", func() {
		s.mockReads.EXPECT().UserExists(gomock.Any(), s.userID).Return(true, nil)
		s.mockReads.EXPECT().RoomByID(gomock.Any(), s.roomID).
			Return(nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound))

		_, err := s.svc.CreateBooking(ctx, s.userID, s.req)

		s.Equal(usecase.CodeRoomNotFound, usecase.CodeOf(err))
	})

	s.Run("error: catalog read failure is retryable", func() {
		s.mockReads.EXPECT().UserExists(gomock.Any(), s.userID).Return(false, errors.New("connection refused"))

		_, err := s.svc.CreateBooking(ctx, s.userID, s.req)

		code := usecase.CodeOf(err)
		s.Equal(usecase.CodeStoreFailure, code)
		s.True(code.Retryable())
	})

	s.Run("error: transaction manager outcomes are classified", func() {
		testCases := []struct {
			name       string
			err        error
			expectCode usecase.ErrorCode
			retryable  bool
		}{
			{name: "invalid range", err: errs.Mark(booking.ErrInvalidRange, commands.ErrValidationFailed), expectCode: usecase.CodeInvalidRange},
			{name: "past start", err: errs.Mark(booking.ErrPastStart, commands.ErrValidationFailed), expectCode: usecase.CodePastStart},
			{name: "conflict", err: commands.ErrConflict, expectCode: usecase.CodeConflict},
			{name: "room vanished under lock", err: commands.ErrRoomNotFound, expectCode: usecase.CodeRoomNotFound},
			{name: "store failure", err: errs.Mark(errors.New("lock timeout"), commands.ErrStoreFailure), expectCode: usecase.CodeStoreFailure, retryable: true},
			{name: "unclassified error", err: errors.New("boom"), expectCode: usecase.CodeStoreFailure, retryable: true},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockReads.EXPECT().UserExists(gomock.Any(), s.userID).Return(true, nil)
				s.mockReads.EXPECT().RoomByID(gomock.Any(), s.roomID).Return(s.existingRoom(), nil)
				s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(nil, tc.err)

				got, err := s.svc.CreateBooking(ctx, s.userID, s.req)

				s.Nil(got)
				var be *usecase.BookingError
				s.Require().ErrorAs(err, &be)
				s.Equal(tc.expectCode, be.Code)
				s.Equal(tc.retryable, be.Code.Retryable())
				s.ErrorIs(err, tc.err)
			})
		}
	})
}

// =============================================================================
// UpdateBooking / CancelBooking
// =============================================================================

func (s *BookingServiceTestSuite) TestUpdateBooking() {
	ctx := context.Background()
	bookingID := uuid.New()
	end := time.Now().Add(72 * time.Hour)

	s.Run("success: passes the partial update through", func() {
		updated := builder.NewBookingBuilder().WithID(bookingID).WithUserID(s.userID).BuildDomain()
		s.mockCommands.EXPECT().UpdateBooking(gomock.Any(), commands.UpdateBookingParams{
			BookingID: bookingID,
			ActorID:   s.userID,
			EndAt:     &end,
		}).Return(updated, nil)

		got, err := s.svc.UpdateBooking(ctx, s.userID, bookingID, usecase.UpdateBookingRequest{EndAt: &end})

		s.Require().NoError(err)
		s.Equal(bookingID, got.ID())
	})

	s.Run("error: outcomes are classified", func() {
		testCases := []struct {
			name       string
			err        error
			expectCode usecase.ErrorCode
		}{
			{name: "not owner", err: errs.Mark(booking.ErrNotOwner, commands.ErrNotOwner), expectCode: usecase.CodeNotOwner},
			{name: "booking not found", err: commands.ErrBookingNotFound, expectCode: usecase.CodeBookingNotFound},
			{name: "conflict with another booking", err: commands.ErrConflict, expectCode: usecase.CodeConflict},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().UpdateBooking(gomock.Any(), gomock.Any()).Return(nil, tc.err)

				_, err := s.svc.UpdateBooking(ctx, s.userID, bookingID, usecase.UpdateBookingRequest{EndAt: &end})

				s.Equal(tc.expectCode, usecase.CodeOf(err))
			})
		}
	})
}

func (s *BookingServiceTestSuite) TestCancelBooking() {
	ctx := context.Background()
	bookingID := uuid.New()

	s.Run("success", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), bookingID, s.userID).Return(nil)

		s.NoError(s.svc.CancelBooking(ctx, s.userID, bookingID))
	})

	s.Run("error: not owner", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), bookingID, s.userID).
			Return(errs.Mark(booking.ErrNotOwner, commands.ErrNotOwner))

		err := s.svc.CancelBooking(ctx, s.userID, bookingID)

		s.Equal(usecase.CodeNotOwner, usecase.CodeOf(err))
	})
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, usecase.ErrorCode(""), usecase.CodeOf(nil))
	assert.Equal(t, usecase.CodeConflict, usecase.CodeOf(commands.ErrConflict))

	wrapped := &usecase.BookingError{Code: usecase.CodePastStart, Err: booking.ErrPastStart}
	require.Equal(t, usecase.CodePastStart, usecase.CodeOf(errs.Wrap(wrapped, "create booking")))
	assert.Contains(t, wrapped.Error(), "past_start")
}

//go:build e2e

package booking_test

import (
	"net/http"
	"sync"
	"testing"
	"time"

	"hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/tests/common/authtest"
	"hotel-booking/tests/common/dbtest"
	"hotel-booking/tests/common/httptest"
	"hotel-booking/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type BookingE2ETestSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper

	userID  uuid.UUID
	otherID uuid.UUID
	roomID  uuid.UUID
	room2ID uuid.UUID
	day     time.Time
}

func TestBookingE2ESuite(t *testing.T) {
	suite.Run(t, new(BookingE2ETestSuite))
}

func (s *BookingE2ETestSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *BookingE2ETestSuite) SetupTest() {
	s.SharedSuite.SetupTest()
	s.seed()
}

func (s *BookingE2ETestSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	s.seed()
}

func (s *BookingE2ETestSuite) seed() {
	t := s.T()
	s.userID = dbtest.CreateTestUser(t, s.DB, "alice")
	s.otherID = dbtest.CreateTestUser(t, s.DB, "bob")
	hotelID := dbtest.CreateTestHotel(t, s.DB, "Seaside")
	s.roomID = dbtest.CreateTestRoom(t, s.DB, hotelID, "101")
	s.room2ID = dbtest.CreateTestRoom(t, s.DB, hotelID, "102")
	s.day = time.Now().UTC().Truncate(24*time.Hour).Add(30 * 24 * time.Hour)
}

func (s *BookingE2ETestSuite) create(userID, roomID uuid.UUID, start, end time.Time) (int, resdto.CreateBookingResponse) {
	body := request.CreateBookingRequest{RoomID: roomID, StartAt: start, EndAt: end}
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings", body, s.jwt.GenerateToken(s.T(), userID))

	var resp resdto.CreateBookingResponse
	if rec.Code == http.StatusCreated {
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
	}
	return rec.Code, resp
}

func (s *BookingE2ETestSuite) TestCreateBooking() {
	s.Run("success: booking is stored with an outbox event", func() {
		code, resp := s.create(s.userID, s.roomID, s.day, s.day.Add(24*time.Hour))

		s.Equal(http.StatusCreated, code)
		s.Require().NotNil(resp.Booking)
		s.Equal(s.roomID, resp.Booking.RoomID)
		s.Equal(1, dbtest.CountBookings(s.T(), s.DB, s.roomID))
		s.Equal(1, dbtest.CountBookingEvents(s.T(), s.DB, resp.BookingID, "booking.created"))
	})

	s.Run("success: back-to-back stays do not conflict", func() {
		first, _ := s.create(s.userID, s.roomID, s.day, s.day.Add(24*time.Hour))
		second, _ := s.create(s.otherID, s.roomID, s.day.Add(24*time.Hour), s.day.Add(48*time.Hour))

		s.Equal(http.StatusCreated, first)
		s.Equal(http.StatusCreated, second)
		s.Equal(2, dbtest.CountBookings(s.T(), s.DB, s.roomID))
	})

	s.Run("error: 409 Conflict for overlapping stay", func() {
		dbtest.CreateTestBooking(s.T(), s.DB, s.roomID, s.otherID, s.day, s.day.Add(48*time.Hour))

		body := request.CreateBookingRequest{RoomID: s.roomID, StartAt: s.day.Add(24 * time.Hour), EndAt: s.day.Add(72 * time.Hour)}
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings", body, s.jwt.GenerateToken(s.T(), s.userID))

		httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, "conflict")
		s.Equal(1, dbtest.CountBookings(s.T(), s.DB, s.roomID))
	})

	s.Run("error: 400 Bad Request for empty range and past start", func() {
		token := s.jwt.GenerateToken(s.T(), s.userID)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings",
			request.CreateBookingRequest{RoomID: s.roomID, StartAt: s.day, EndAt: s.day}, token)
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "invalid_range")

		past := time.Now().Add(-48 * time.Hour)
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings",
			request.CreateBookingRequest{RoomID: s.roomID, StartAt: past, EndAt: past.Add(24 * time.Hour)}, token)
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "past_start")

		s.Equal(0, dbtest.CountBookings(s.T(), s.DB, s.roomID))
	})

	s.Run("error: 404 Not Found for unknown room", func() {
		body := request.CreateBookingRequest{RoomID: uuid.New(), StartAt: s.day, EndAt: s.day.Add(24 * time.Hour)}
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings", body, s.jwt.GenerateToken(s.T(), s.userID))

		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, "room_not_found")
	})

	s.Run("error: 401 Unauthorized with expired token", func() {
		body := request.CreateBookingRequest{RoomID: s.roomID, StartAt: s.day, EndAt: s.day.Add(24 * time.Hour)}
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings", body, s.jwt.CreateExpiredToken(s.T(), s.userID))

		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *BookingE2ETestSuite) TestConcurrentAdmission() {
	s.Run("identical stays on one room: exactly one wins", func() {
		start, end := s.day, s.day.Add(24*time.Hour)
		users := []uuid.UUID{s.userID, s.otherID}
		codes := make([]int, len(users))

		var wg sync.WaitGroup
		ready := make(chan struct{})
		for i, u := range users {
			wg.Add(1)
			go func(i int, u uuid.UUID) {
				defer wg.Done()
				<-ready
				codes[i], _ = s.create(u, s.roomID, start, end)
			}(i, u)
		}
		close(ready)
		wg.Wait()

		s.ElementsMatch([]int{http.StatusCreated, http.StatusConflict}, codes)
		s.Equal(1, dbtest.CountBookings(s.T(), s.DB, s.roomID))
	})

	s.Run("overlapping stays on different rooms both succeed", func() {
		start, end := s.day, s.day.Add(48*time.Hour)
		rooms := []uuid.UUID{s.roomID, s.room2ID}
		codes := make([]int, len(rooms))

		var wg sync.WaitGroup
		for i, r := range rooms {
			wg.Add(1)
			go func(i int, r uuid.UUID) {
				defer wg.Done()
				codes[i], _ = s.create(s.userID, r, start, end)
			}(i, r)
		}
		wg.Wait()

		s.Equal([]int{http.StatusCreated, http.StatusCreated}, codes)
	})

	s.Run("many overlapping requests leave no overlap behind", func() {
		const n = 8
		codes := make([]int, n)

		var wg sync.WaitGroup
		for i := range n {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				start := s.day.Add(time.Duration(i) * 12 * time.Hour)
				codes[i], _ = s.create(s.userID, s.roomID, start, start.Add(24*time.Hour))
			}(i)
		}
		wg.Wait()

		created := 0
		for _, c := range codes {
			s.Contains([]int{http.StatusCreated, http.StatusConflict}, c)
			if c == http.StatusCreated {
				created++
			}
		}
		s.GreaterOrEqual(created, 1)
		s.Equal(created, dbtest.CountBookings(s.T(), s.DB, s.roomID))

		var overlaps int
		err := s.DB.QueryRow(s.T().Context(), `
			SELECT count(*) FROM bookings a JOIN bookings b
			  ON a.room_id = b.room_id AND a.id < b.id
			 AND a.start_at < b.end_at AND b.start_at < a.end_at`).Scan(&overlaps)
		s.Require().NoError(err)
		s.Zero(overlaps)
	})
}

func (s *BookingE2ETestSuite) TestUpdateAndCancel() {
	s.Run("success: extending over its own stay is allowed", func() {
		id := dbtest.CreateTestBooking(s.T(), s.DB, s.roomID, s.userID, s.day, s.day.Add(24*time.Hour))
		end := s.day.Add(48 * time.Hour)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, "/api/bookings/"+id.String(),
			request.UpdateBookingRequest{EndAt: &end}, s.jwt.GenerateToken(s.T(), s.userID))

		var resp resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.True(resp.EndAt.Equal(end))
		s.Equal(1, dbtest.CountBookingEvents(s.T(), s.DB, id, "booking.updated"))
	})

	s.Run("error: 409 Conflict when moved onto another booking", func() {
		id := dbtest.CreateTestBooking(s.T(), s.DB, s.roomID, s.userID, s.day, s.day.Add(24*time.Hour))
		dbtest.CreateTestBooking(s.T(), s.DB, s.roomID, s.otherID, s.day.Add(48*time.Hour), s.day.Add(72*time.Hour))
		end := s.day.Add(60 * time.Hour)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, "/api/bookings/"+id.String(),
			request.UpdateBookingRequest{EndAt: &end}, s.jwt.GenerateToken(s.T(), s.userID))

		httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, "conflict")
	})

	s.Run("error: 403 Forbidden for another user's booking", func() {
		id := dbtest.CreateTestBooking(s.T(), s.DB, s.roomID, s.otherID, s.day, s.day.Add(24*time.Hour))
		end := s.day.Add(48 * time.Hour)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, "/api/bookings/"+id.String(),
			request.UpdateBookingRequest{EndAt: &end}, s.jwt.GenerateToken(s.T(), s.userID))

		httptest.AssertErrorCode(s.T(), rec, http.StatusForbidden, "not_owner")
	})

	s.Run("success: cancel frees the slot", func() {
		id := dbtest.CreateTestBooking(s.T(), s.DB, s.roomID, s.userID, s.day, s.day.Add(24*time.Hour))

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, "/api/bookings/"+id.String(), nil, s.jwt.GenerateToken(s.T(), s.userID))

		s.Equal(http.StatusNoContent, rec.Code)
		s.Equal(0, dbtest.CountBookings(s.T(), s.DB, s.roomID))
		s.Equal(1, dbtest.CountBookingEvents(s.T(), s.DB, id, "booking.canceled"))

		code, _ := s.create(s.otherID, s.roomID, s.day, s.day.Add(24*time.Hour))
		s.Equal(http.StatusCreated, code)
	})
}

func (s *BookingE2ETestSuite) TestReadSide() {
	s.Run("success: owner reads booking, others get not found", func() {
		id := dbtest.CreateTestBooking(s.T(), s.DB, s.roomID, s.userID, s.day, s.day.Add(24*time.Hour))

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/bookings/"+id.String(), nil, s.jwt.GenerateToken(s.T(), s.userID))
		var view resdto.BookingViewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &view)
		s.Equal("Seaside", view.HotelName)
		s.Equal("101", view.RoomNumber)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/bookings/"+id.String(), nil, s.jwt.GenerateToken(s.T(), s.otherID))
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, "booking_not_found")
	})

	s.Run("success: room schedule lists the window", func() {
		dbtest.CreateTestBooking(s.T(), s.DB, s.roomID, s.userID, s.day, s.day.Add(24*time.Hour))
		dbtest.CreateTestBooking(s.T(), s.DB, s.roomID, s.otherID, s.day.Add(10*24*time.Hour), s.day.Add(11*24*time.Hour))

		from := s.day.Add(-time.Hour).Format(time.RFC3339)
		to := s.day.Add(2 * 24 * time.Hour).Format(time.RFC3339)
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			"/api/rooms/"+s.roomID.String()+"/bookings?from="+from+"&to="+to, nil, s.jwt.GenerateToken(s.T(), s.otherID))

		var slots []resdto.RoomSlotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &slots)
		s.Len(slots, 1)
	})
}

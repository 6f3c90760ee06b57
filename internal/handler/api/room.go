package api

import (
	"errors"
	"net/http"

	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RoomHandler struct {
	q     queries.BookingQueries
	clock clock.Clock
}

func NewRoomHandler(q queries.BookingQueries, clk clock.Clock) *RoomHandler {
	return &RoomHandler{q: q, clock: clk}
}

// @Summary Room schedule
// @Description List booked intervals of a room overlapping [from, to). from defaults to now, to to 30 days later.
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param from query string false "Window start (RFC3339)"
// @Param to query string false "Window end (RFC3339)"
// @Success 200 {array} resdto.RoomSlotResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /rooms/{id}/bookings [get]
func (h *RoomHandler) Schedule(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid room ID format", nil)
		return
	}

	var q reqdto.RoomScheduleQuery
	if bindErr := c.ShouldBindQuery(&q); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid schedule window", nil)
		return
	}

	views, err := h.q.ListRoomBookings(c.Request.Context(), roomID, q.ToWindow(h.clock.Now()))
	if err != nil {
		if errors.Is(err, queries.ErrInvalidWindow) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	res, err := resdto.FromRoomSchedule(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

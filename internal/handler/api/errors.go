package api

import (
	"net/http"

	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	status  int
	message string
}

var bookingErrors = map[usecase.ErrorCode]errorMapping{
	usecase.CodeInvalidRange:    {http.StatusBadRequest, "start_at must be before end_at"},
	usecase.CodePastStart:       {http.StatusBadRequest, "start_at must not be in the past"},
	usecase.CodeConflict:        {http.StatusConflict, "Room is already booked for the given dates."},
	usecase.CodeRoomNotFound:    {http.StatusNotFound, "Room not found"},
	usecase.CodeUserNotFound:    {http.StatusNotFound, "User not found"},
	usecase.CodeBookingNotFound: {http.StatusNotFound, "Booking not found"},
	usecase.CodeNotOwner:        {http.StatusForbidden, "Booking belongs to another user"},
	usecase.CodeStoreFailure:    {http.StatusInternalServerError, "Internal server error"},
}

// abortWithBookingError never exposes the cause; it is kept on the gin context for logging.
func abortWithBookingError(c *gin.Context, err error) {
	code := usecase.CodeOf(err)
	m, ok := bookingErrors[code]
	if !ok {
		code = usecase.CodeStoreFailure
		m = bookingErrors[code]
	}

	var detail any
	if code.Retryable() {
		detail = gin.H{"retryable": true}
	}
	httperr.AbortWithCode(c, m.status, err, string(code), m.message, detail)
}

package request

import (
	"time"

	"hotel-booking/internal/usecase"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	RoomID  uuid.UUID `json:"room_id" binding:"required"`
	StartAt time.Time `json:"start_at" binding:"required"`
	EndAt   time.Time `json:"end_at" binding:"required"`
}

func (r *CreateBookingRequest) ToUsecase() usecase.CreateBookingRequest {
	return usecase.CreateBookingRequest{
		RoomID:  r.RoomID,
		StartAt: r.StartAt,
		EndAt:   r.EndAt,
	}
}

// UpdateBookingRequest reschedules a booking; an omitted bound keeps its current value.
type UpdateBookingRequest struct {
	StartAt *time.Time `json:"start_at"`
	EndAt   *time.Time `json:"end_at"`
}

func (r *UpdateBookingRequest) Empty() bool {
	return r.StartAt == nil && r.EndAt == nil
}

func (r *UpdateBookingRequest) ToUsecase() usecase.UpdateBookingRequest {
	return usecase.UpdateBookingRequest{
		StartAt: r.StartAt,
		EndAt:   r.EndAt,
	}
}

type RoomScheduleQuery struct {
	From *time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To   *time.Time `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
}

// ToWindow defaults From to now and leaves To open for the query layer to bound.
func (q *RoomScheduleQuery) ToWindow(now time.Time) queries.ScheduleWindow {
	w := queries.ScheduleWindow{From: now}
	if q.From != nil {
		w.From = *q.From
	}
	if q.To != nil {
		w.To = *q.To
	}
	return w
}

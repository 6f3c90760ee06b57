package converter

import (
	"hotel-booking/internal/domain/booking"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	return sqlc.CreateBookingParams{
		RoomID:  b.RoomID(),
		UserID:  b.UserID(),
		StartAt: pgconv.TimeToPgtype(b.StartAt()),
		EndAt:   pgconv.TimeToPgtype(b.EndAt()),
	}
}

func BookingToUpdateRangeParams(b *booking.Booking) sqlc.UpdateBookingRangeParams {
	return sqlc.UpdateBookingRangeParams{
		ID:      b.ID(),
		StartAt: pgconv.TimeToPgtype(b.StartAt()),
		EndAt:   pgconv.TimeToPgtype(b.EndAt()),
	}
}

func BookingFromRow(row sqlc.Bookings) *booking.Booking {
	return booking.ReconstructBooking(
		row.ID,
		row.RoomID,
		row.UserID,
		pgconv.TimeFromPgtype(row.StartAt),
		pgconv.TimeFromPgtype(row.EndAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func BookingsFromRows(rows []sqlc.Bookings) []*booking.Booking {
	result := make([]*booking.Booking, len(rows))
	for i, row := range rows {
		result[i] = BookingFromRow(row)
	}
	return result
}

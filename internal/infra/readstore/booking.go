package readstore

import (
	"context"

	"hotel-booking/internal/infra"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingViewQueries interface {
	GetBookingView(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetBookingViewRow, error)
	ListBookingViewsByUserID(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.ListBookingViewsByUserIDRow, error)
	ListBookingViewsByRoomInWindow(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingViewsByRoomInWindowParams) ([]sqlc.ListBookingViewsByRoomInWindowRow, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return toBookingView(sqlc.ListBookingViewsByUserIDRow(row)), nil
}

func (r *BookingReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingViewsByUserID(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by user", err)
	}

	result := make([]*queries.BookingView, len(rows))
	for i, row := range rows {
		result[i] = toBookingView(row)
	}
	return result, nil
}

func (r *BookingReadStore) FindByRoomInWindow(ctx context.Context, roomID uuid.UUID, window queries.ScheduleWindow) ([]*queries.BookingView, error) {
	params := sqlc.ListBookingViewsByRoomInWindowParams{
		RoomID:      roomID,
		WindowEnd:   pgconv.TimeToPgtype(window.To),
		WindowStart: pgconv.TimeToPgtype(window.From),
	}

	rows, err := r.queries.ListBookingViewsByRoomInWindow(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room schedule", err)
	}

	result := make([]*queries.BookingView, len(rows))
	for i, row := range rows {
		result[i] = toBookingView(sqlc.ListBookingViewsByUserIDRow(row))
	}
	return result, nil
}

// The three view queries select identical columns, so their rows convert into one another.
func toBookingView(row sqlc.ListBookingViewsByUserIDRow) *queries.BookingView {
	return &queries.BookingView{
		ID:         row.ID,
		RoomID:     row.RoomID,
		RoomNumber: row.RoomNumber,
		HotelID:    row.HotelID,
		HotelName:  row.HotelName,
		UserID:     row.UserID,
		StartAt:    pgconv.TimeFromPgtype(row.StartAt),
		EndAt:      pgconv.TimeFromPgtype(row.EndAt),
		CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:  pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

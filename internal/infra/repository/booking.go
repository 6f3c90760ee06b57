package repository

import (
	"context"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/repository/converter"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingWriteQueries interface {
	LockRoom(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.LockRoomRow, error)
	ListBookingsByRoomForUpdate(ctx context.Context, db sqlc.DBTX, roomID uuid.UUID) ([]sqlc.Bookings, error)
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (sqlc.CreateBookingRow, error)
	UpdateBookingRange(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingRangeParams) (pgtype.Timestamptz, error)
	DeleteBooking(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

// BookingRepository is the interval store. Every method takes the transaction it must
// run in; the room lock only means something inside one.
type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

// LockRoom takes a row lock on the room, serializing admissions for that room until tx ends.
// Bookings of other rooms are unaffected.
func (r *BookingRepository) LockRoom(ctx context.Context, tx sqlc.DBTX, roomID uuid.UUID) error {
	if _, err := r.queries.LockRoom(ctx, tx, roomID); err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to lock room", err)
	}
	return nil
}

func (r *BookingRepository) ListByRoomForUpdate(ctx context.Context, tx sqlc.DBTX, roomID uuid.UUID) ([]*booking.Booking, error) {
	rows, err := r.queries.ListBookingsByRoomForUpdate(ctx, tx, roomID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room bookings", err)
	}
	return converter.BookingsFromRows(rows), nil
}

func (r *BookingRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return converter.BookingFromRow(row), nil
}

// Create inserts b and stamps the id and timestamps assigned by the database.
func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	row, err := r.queries.CreateBooking(ctx, tx, converter.BookingToCreateParams(b))
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}

	b.Committed(row.ID, pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt))
	return nil
}

func (r *BookingRepository) UpdateRange(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	updatedAt, err := r.queries.UpdateBookingRange(ctx, tx, converter.BookingToUpdateRangeParams(b))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to update booking", err)
	}

	b.Committed(b.ID(), b.CreatedAt(), pgconv.TimeFromPgtype(updatedAt))
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	affected, err := r.queries.DeleteBooking(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

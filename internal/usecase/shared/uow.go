package shared

import (
	"context"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/room"
	sqlc "hotel-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with lock timeout and retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Events() BookingEventRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	RoomByID(ctx context.Context, id uuid.UUID) (*room.Room, error)
	UserExists(ctx context.Context, id uuid.UUID) (bool, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
}

// BookingRepository is the interval store. LockRoom must precede any read that
// feeds an admission decision for the same room.
type BookingRepository interface {
	LockRoom(ctx context.Context, tx sqlc.DBTX, roomID uuid.UUID) error
	ListByRoomForUpdate(ctx context.Context, tx sqlc.DBTX, roomID uuid.UUID) ([]*booking.Booking, error)
	FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*booking.Booking, error)
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	UpdateRange(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type BookingEventRepository interface {
	Append(ctx context.Context, tx sqlc.DBTX, evt booking.Event) error
	ClaimUnpublished(ctx context.Context, tx sqlc.DBTX, limit int) ([]OutboxEvent, error)
	MarkPublished(ctx context.Context, tx sqlc.DBTX, ids []int64) error
}

package repository

import (
	"context"
	"encoding/json"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/infra"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/pgconv"
	"hotel-booking/internal/usecase/shared"
)

type BookingEventWriteQueries interface {
	InsertBookingEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertBookingEventParams) error
	ClaimUnpublishedBookingEvents(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.ClaimUnpublishedBookingEventsRow, error)
	MarkBookingEventsPublished(ctx context.Context, db sqlc.DBTX, ids []int64) (int64, error)
}

type BookingEventRepository struct {
	queries BookingEventWriteQueries
	db      sqlc.DBTX
}

func NewBookingEventRepository(queries BookingEventWriteQueries, db sqlc.DBTX) *BookingEventRepository {
	return &BookingEventRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingEventRepository) Append(ctx context.Context, tx sqlc.DBTX, evt booking.Event) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return errs.Wrap(err, "failed to encode booking event")
	}

	params := sqlc.InsertBookingEventParams{
		BookingID: evt.BookingID,
		EventType: evt.Type.String(),
		Payload:   payload,
	}

	if err := r.queries.InsertBookingEvent(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to append booking event", err)
	}

	return nil
}

// ClaimUnpublished locks up to limit pending events; concurrent relays skip each other's rows.
func (r *BookingEventRepository) ClaimUnpublished(ctx context.Context, tx sqlc.DBTX, limit int) ([]shared.OutboxEvent, error) {
	// #nosec G115 -- batch size comes from config and is small
	rows, err := r.queries.ClaimUnpublishedBookingEvents(ctx, tx, int32(limit))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim booking events", err)
	}

	result := make([]shared.OutboxEvent, len(rows))
	for i, row := range rows {
		result[i] = shared.OutboxEvent{
			ID:        row.ID,
			BookingID: row.BookingID,
			Type:      row.EventType,
			Payload:   row.Payload,
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}

	return result, nil
}

func (r *BookingEventRepository) MarkPublished(ctx context.Context, tx sqlc.DBTX, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	if _, err := r.queries.MarkBookingEventsPublished(ctx, tx, ids); err != nil {
		return infra.WrapRepoErr("failed to mark booking events published", err)
	}

	return nil
}

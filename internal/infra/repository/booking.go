package repository

import (
	"context"
	"log/slog"

	"hotel-reservation/internal/domain/booking"
	"hotel-reservation/internal/infra"
	"hotel-reservation/internal/infra/repository/converter"
	sqlc "hotel-reservation/internal/infra/sqlc/generated"
	"hotel-reservation/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingWriteQueries interface {
	LockRoom(ctx context.Context, db sqlc.DBTX, roomID pgtype.UUID) error
	FindBookingsByRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.FindBookingsByRoomParams) ([]*sqlc.Booking, error)
	GetBookingByIDForUpdate(ctx context.Context, db sqlc.DBTX, id pgtype.UUID) (*sqlc.Booking, error)
	InsertBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertBookingParams) error
	UpdateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingParams) (int64, error)
}

// BookingRepository is bound to one transaction; db is the pgx.Tx it runs on.
type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
	logger  *slog.Logger
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX, logger *slog.Logger) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (r *BookingRepository) LockRoom(ctx context.Context, roomID uuid.UUID) error {
	if err := r.queries.LockRoom(ctx, r.db, pgconv.UUIDToPgtype(roomID)); err != nil {
		return infra.Classify(r.logger, "failed to lock room", err)
	}
	return nil
}

func (r *BookingRepository) FindByRoom(ctx context.Context, roomID uuid.UUID, statuses []booking.Status, window booking.Stay) ([]*booking.Booking, error) {
	rows, err := r.queries.FindBookingsByRoom(ctx, r.db, sqlc.FindBookingsByRoomParams{
		RoomID:     pgconv.UUIDToPgtype(roomID),
		Statuses:   converter.StatusesToStrings(statuses),
		StayWindow: pgconv.RangeToPgtype(window.CheckIn(), window.CheckOut()),
	})
	if err != nil {
		return nil, infra.Classify(r.logger, "failed to find bookings by room", err)
	}

	bookings, err := converter.BookingsFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to decode bookings", err)
	}
	return bookings, nil
}

func (r *BookingRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByIDForUpdate(ctx, r.db, pgconv.UUIDToPgtype(id))
	if err != nil {
		return nil, infra.Classify(r.logger, "failed to get booking", err)
	}

	b, err := converter.BookingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to decode booking", err)
	}
	return b, nil
}

func (r *BookingRepository) Insert(ctx context.Context, b *booking.Booking) error {
	if err := r.queries.InsertBooking(ctx, r.db, converter.BookingToInsertParams(b)); err != nil {
		return infra.Classify(r.logger, "failed to insert booking", err)
	}
	return nil
}

func (r *BookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	rows, err := r.queries.UpdateBooking(ctx, r.db, converter.BookingToUpdateParams(b))
	if err != nil {
		return infra.Classify(r.logger, "failed to update booking", err)
	}
	if rows == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "booking not found", nil)
	}
	return nil
}

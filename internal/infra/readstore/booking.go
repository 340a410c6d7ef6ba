package readstore

import (
	"context"
	"log/slog"
	"time"

	"hotel-reservation/internal/domain/booking"
	"hotel-reservation/internal/infra"
	"hotel-reservation/internal/infra/repository/converter"
	sqlc "hotel-reservation/internal/infra/sqlc/generated"
	"hotel-reservation/internal/pkg/pgconv"
	"hotel-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingViewQueries interface {
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id pgtype.UUID) (*sqlc.Booking, error)
	ExistsActiveOverlap(ctx context.Context, db sqlc.DBTX, arg sqlc.ExistsActiveOverlapParams) (bool, error)
	FindBookingsByRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.FindBookingsByRoomParams) ([]*sqlc.Booking, error)
	ListBookingsByUserFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByUserFirstPageParams) ([]*sqlc.Booking, error)
	ListBookingsByUserKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByUserKeysetParams) ([]*sqlc.Booking, error)
	ListBookingsFirstPage(ctx context.Context, db sqlc.DBTX, rowLimit int32) ([]*sqlc.Booking, error)
	ListBookingsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsKeysetParams) ([]*sqlc.Booking, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      sqlc.DBTX
	logger  *slog.Logger
}

func NewBookingReadStore(queries BookingViewQueries, db sqlc.DBTX, logger *slog.Logger) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, pgconv.UUIDToPgtype(id))
	if err != nil {
		return nil, infra.Classify(r.logger, "failed to get booking view by id", err)
	}
	b, err := converter.BookingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to decode booking", err)
	}
	return queries.NewBookingView(b), nil
}

func (r *BookingReadStore) HasActiveOverlap(ctx context.Context, roomID uuid.UUID, stay booking.Stay) (bool, error) {
	exists, err := r.queries.ExistsActiveOverlap(ctx, r.db, sqlc.ExistsActiveOverlapParams{
		RoomID: pgconv.UUIDToPgtype(roomID),
		Stay:   pgconv.RangeToPgtype(stay.CheckIn(), stay.CheckOut()),
	})
	if err != nil {
		return false, infra.Classify(r.logger, "failed to check room overlap", err)
	}
	return exists, nil
}

func (r *BookingReadStore) FindActiveByRoom(ctx context.Context, roomID uuid.UUID, window booking.Stay) ([]*queries.BookingView, error) {
	rows, err := r.queries.FindBookingsByRoom(ctx, r.db, sqlc.FindBookingsByRoomParams{
		RoomID:     pgconv.UUIDToPgtype(roomID),
		Statuses:   converter.StatusesToStrings(booking.ActiveStatuses()),
		StayWindow: pgconv.RangeToPgtype(window.CheckIn(), window.CheckOut()),
	})
	if err != nil {
		return nil, infra.Classify(r.logger, "failed to list room bookings", err)
	}
	return r.toViews(rows)
}

func (r *BookingReadStore) FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingsByUserFirstPage(ctx, r.db, sqlc.ListBookingsByUserFirstPageParams{
		UserID:   pgconv.UUIDToPgtype(userID),
		RowLimit: limit,
	})
	if err != nil {
		return nil, infra.Classify(r.logger, "failed to list user bookings", err)
	}
	return r.toViews(rows)
}

func (r *BookingReadStore) FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingsByUserKeyset(ctx, r.db, sqlc.ListBookingsByUserKeysetParams{
		UserID:        pgconv.UUIDToPgtype(userID),
		LastCreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		LastID:        pgconv.UUIDToPgtype(lastID),
		RowLimit:      limit,
	})
	if err != nil {
		return nil, infra.Classify(r.logger, "failed to list user bookings with keyset", err)
	}
	return r.toViews(rows)
}

func (r *BookingReadStore) FindAllFirstPage(ctx context.Context, limit int32) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingsFirstPage(ctx, r.db, limit)
	if err != nil {
		return nil, infra.Classify(r.logger, "failed to list bookings", err)
	}
	return r.toViews(rows)
}

func (r *BookingReadStore) FindAllKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingsKeyset(ctx, r.db, sqlc.ListBookingsKeysetParams{
		LastCreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		LastID:        pgconv.UUIDToPgtype(lastID),
		RowLimit:      limit,
	})
	if err != nil {
		return nil, infra.Classify(r.logger, "failed to list bookings with keyset", err)
	}
	return r.toViews(rows)
}

func (r *BookingReadStore) toViews(rows []*sqlc.Booking) ([]*queries.BookingView, error) {
	bookings, err := converter.BookingsFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to decode bookings", err)
	}
	views := make([]*queries.BookingView, len(bookings))
	for i, b := range bookings {
		views[i] = queries.NewBookingView(b)
	}
	return views, nil
}

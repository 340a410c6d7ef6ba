package queries

import (
	"context"
	"time"

	"hotel-reservation/internal/domain/booking"
	"hotel-reservation/internal/infra"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingView struct {
	ID                  uuid.UUID  `json:"id"`
	RoomID              uuid.UUID  `json:"room_id"`
	UserID              uuid.UUID  `json:"user_id"`
	CheckIn             time.Time  `json:"check_in"`
	CheckOut            time.Time  `json:"check_out"`
	Nights              int        `json:"nights"`
	Status              string     `json:"status"`
	CouponID            *uuid.UUID `json:"coupon_id,omitempty"`
	TotalAmountCents    int64      `json:"total_amount_cents"`
	DiscountAmountCents int64      `json:"discount_amount_cents"`
	SpecialRequests     string     `json:"special_requests"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

func NewBookingView(b *booking.Booking) *BookingView {
	return &BookingView{
		ID:                  b.ID(),
		RoomID:              b.RoomID(),
		UserID:              b.UserID(),
		CheckIn:             b.Stay().CheckIn(),
		CheckOut:            b.Stay().CheckOut(),
		Nights:              b.Stay().Nights(),
		Status:              b.Status().String(),
		CouponID:            b.CouponID(),
		TotalAmountCents:    b.TotalAmount().Cents(),
		DiscountAmountCents: b.DiscountAmount().Cents(),
		SpecialRequests:     b.SpecialRequests().String(),
		CreatedAt:           b.CreatedAt(),
		UpdatedAt:           b.UpdatedAt(),
	}
}

type BookingPage struct {
	Items []*BookingView
	Next  *Cursor
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	// HasActiveOverlap reports whether a pending or confirmed booking of
	// roomID intersects stay.
	HasActiveOverlap(ctx context.Context, roomID uuid.UUID, stay booking.Stay) (bool, error)
	FindActiveByRoom(ctx context.Context, roomID uuid.UUID, window booking.Stay) ([]*BookingView, error)
	FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*BookingView, error)
	FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*BookingView, error)
	FindAllFirstPage(ctx context.Context, limit int32) ([]*BookingView, error)
	FindAllKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*BookingView, error)
}

type BookingQueries interface {
	// CheckAvailability is a hint; only CreateBooking guarantees admission.
	CheckAvailability(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (bool, error)
	GetBooking(ctx context.Context, bookingID uuid.UUID) (*BookingView, error)
	ListUserBookings(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) (*BookingPage, error)
	ListRoomBookings(ctx context.Context, roomID uuid.UUID, from, to time.Time) ([]*BookingView, error)
	// ListBookings pages over every booking, newest first.
	ListBookings(ctx context.Context, cursor *Cursor, limit int) (*BookingPage, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) CheckAvailability(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (bool, error) {
	stay, err := booking.NewStay(checkIn, checkOut)
	if err != nil {
		return false, err
	}
	taken, err := q.store.HasActiveOverlap(ctx, roomID, stay)
	if err != nil {
		return false, shared.StoreError(err)
	}
	return !taken, nil
}

func (q *bookingQueriesImpl) GetBooking(ctx context.Context, bookingID uuid.UUID) (*BookingView, error) {
	v, err := q.store.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Wrapf(errs.ErrNotFound, "booking %s", bookingID)
		}
		return nil, shared.StoreError(err)
	}
	return v, nil
}

func (q *bookingQueriesImpl) ListUserBookings(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) (*BookingPage, error) {
	return pageBookings(cursor, limit,
		func(n int32) ([]*BookingView, error) {
			return q.store.FindByUserFirstPage(ctx, userID, n)
		},
		func(lastCreatedAt time.Time, lastID uuid.UUID, n int32) ([]*BookingView, error) {
			return q.store.FindByUserKeyset(ctx, userID, lastCreatedAt, lastID, n)
		})
}

func (q *bookingQueriesImpl) ListBookings(ctx context.Context, cursor *Cursor, limit int) (*BookingPage, error) {
	return pageBookings(cursor, limit,
		func(n int32) ([]*BookingView, error) {
			return q.store.FindAllFirstPage(ctx, n)
		},
		func(lastCreatedAt time.Time, lastID uuid.UUID, n int32) ([]*BookingView, error) {
			return q.store.FindAllKeyset(ctx, lastCreatedAt, lastID, n)
		})
}

// pageBookings fetches one row past limit to learn whether a next page exists.
func pageBookings(
	cursor *Cursor,
	limit int,
	first func(n int32) ([]*BookingView, error),
	after func(lastCreatedAt time.Time, lastID uuid.UUID, n int32) ([]*BookingView, error),
) (*BookingPage, error) {
	limit = ValidateLimit(limit)

	var (
		rows []*BookingView
		err  error
	)
	if cursor.IsZero() {
		rows, err = first(int32(limit + 1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, ErrInvalidCursor
		}
		rows, err = after(lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, shared.StoreError(err)
	}

	page := &BookingPage{Items: rows}
	if len(rows) > limit {
		last := rows[limit-1]
		page.Next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		page.Items = rows[:limit]
	}
	return page, nil
}

func (q *bookingQueriesImpl) ListRoomBookings(ctx context.Context, roomID uuid.UUID, from, to time.Time) ([]*BookingView, error) {
	window, err := booking.NewStay(from, to)
	if err != nil {
		return nil, err
	}
	rows, err := q.store.FindActiveByRoom(ctx, roomID, window)
	if err != nil {
		return nil, shared.StoreError(err)
	}
	return rows, nil
}

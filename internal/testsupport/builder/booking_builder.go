//go:build unit || e2e

package builder

import (
	"time"

	"hotel-reservation/internal/domain/booking"
	reqdto "hotel-reservation/internal/handler/dto/request"
	sqlc "hotel-reservation/internal/infra/sqlc/generated"
	"hotel-reservation/internal/pkg/pgconv"
	"hotel-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID                  uuid.UUID
	UserID              uuid.UUID
	RoomID              uuid.UUID
	CheckIn             time.Time
	CheckOut            time.Time
	Status              booking.Status
	CouponID            *uuid.UUID
	TotalAmountCents    int64
	DiscountAmountCents int64
	SpecialRequests     string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Date(2030, 3, 1, 9, 0, 0, 0, time.UTC)
	checkIn := time.Date(2030, 4, 1, 15, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		ID:               uuid.New(),
		UserID:           uuid.New(),
		RoomID:           uuid.New(),
		CheckIn:          checkIn,
		CheckOut:         checkIn.Add(2 * 24 * time.Hour),
		Status:           booking.StatusPending,
		TotalAmountCents: 100000,
		SpecialRequests:  "late arrival",
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() *booking.Booking {
	stay, err := booking.NewStay(b.CheckIn, b.CheckOut)
	if err != nil {
		panic(err)
	}
	total, _ := booking.NewMoney(b.TotalAmountCents)
	discount, _ := booking.NewMoney(b.DiscountAmountCents)
	return booking.ReconstructBooking(
		b.ID, b.RoomID, b.UserID, stay, b.Status, b.CouponID,
		total, discount, booking.RestoreSpecialRequests(b.SpecialRequests),
		b.CreatedAt, b.UpdatedAt,
	)
}

func (b *BookingBuilder) BuildRow() sqlc.Booking {
	return sqlc.Booking{
		ID:                  pgconv.UUIDToPgtype(b.ID),
		RoomID:              pgconv.UUIDToPgtype(b.RoomID),
		UserID:              pgconv.UUIDToPgtype(b.UserID),
		Stay:                pgconv.RangeToPgtype(b.CheckIn, b.CheckOut),
		Status:              b.Status.String(),
		CouponID:            pgconv.UUIDPtrToPgtype(b.CouponID),
		TotalAmountCents:    b.TotalAmountCents,
		DiscountAmountCents: b.DiscountAmountCents,
		SpecialRequests:     b.SpecialRequests,
		CreatedAt:           pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:           pgconv.TimeToPgtype(b.UpdatedAt),
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return queries.NewBookingView(b.BuildDomain())
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		RoomID:          b.RoomID,
		CheckIn:         b.CheckIn,
		CheckOut:        b.CheckOut,
		SpecialRequests: b.SpecialRequests,
	}
}

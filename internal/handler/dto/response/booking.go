package response

import (
	"time"

	"hotel-reservation/internal/domain/booking"
	"hotel-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
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

type BookingListResponse struct {
	Items      []*BookingResponse `json:"items"`
	NextCursor string             `json:"next_cursor,omitempty"`
}

type AvailabilityResponse struct {
	RoomID    uuid.UUID `json:"room_id"`
	CheckIn   time.Time `json:"check_in"`
	CheckOut  time.Time `json:"check_out"`
	Available bool      `json:"available"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	var res BookingResponse
	if err := copier.Copy(&res, v); err != nil {
		panic(err)
	}
	return &res
}

func FromBooking(b *booking.Booking) *BookingResponse {
	return FromBookingView(queries.NewBookingView(b))
}

func FromBookingViews(views []*queries.BookingView) []*BookingResponse {
	res := make([]*BookingResponse, len(views))
	for i, v := range views {
		res[i] = FromBookingView(v)
	}
	return res
}

func FromBookingPage(page *queries.BookingPage) *BookingListResponse {
	res := &BookingListResponse{Items: FromBookingViews(page.Items)}
	if page.Next != nil {
		res.NextCursor = page.Next.After
	}
	return res
}

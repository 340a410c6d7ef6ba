package request

import (
	"time"

	"hotel-reservation/internal/domain/booking"
	"hotel-reservation/internal/usecase/commands"
	"hotel-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	RoomID          uuid.UUID `json:"room_id" binding:"required"`
	CheckIn         time.Time `json:"check_in" binding:"required"`
	CheckOut        time.Time `json:"check_out" binding:"required"`
	SpecialRequests string    `json:"special_requests"`
}

func (r *CreateBookingRequest) ToInput(userID uuid.UUID) commands.CreateBookingInput {
	return commands.CreateBookingInput{
		UserID:          userID,
		RoomID:          r.RoomID,
		CheckIn:         r.CheckIn,
		CheckOut:        r.CheckOut,
		SpecialRequests: r.SpecialRequests,
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r *UpdateStatusRequest) ToDomain() (booking.Status, error) {
	return booking.ParseStatus(r.Status)
}

// Times are RFC 3339.
type AvailabilityQuery struct {
	CheckIn  time.Time `form:"checkIn" binding:"required"`
	CheckOut time.Time `form:"checkOut" binding:"required"`
}

type RoomBookingsQuery struct {
	From time.Time `form:"from" binding:"required"`
	To   time.Time `form:"to" binding:"required"`
}

type ListBookingsQuery struct {
	Cursor string `form:"cursor"`
	Limit  int    `form:"limit" binding:"omitempty,min=1"`
}

func (q *ListBookingsQuery) ToCursor() *queries.Cursor {
	if q.Cursor == "" {
		return nil
	}
	return &queries.Cursor{After: q.Cursor}
}

package converter

import (
	"hotel-reservation/internal/domain/booking"
	sqlc "hotel-reservation/internal/infra/sqlc/generated"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/pkg/pgconv"
)

func BookingToInsertParams(b *booking.Booking) sqlc.InsertBookingParams {
	stay := b.Stay()
	return sqlc.InsertBookingParams{
		ID:                  pgconv.UUIDToPgtype(b.ID()),
		RoomID:              pgconv.UUIDToPgtype(b.RoomID()),
		UserID:              pgconv.UUIDToPgtype(b.UserID()),
		Stay:                pgconv.RangeToPgtype(stay.CheckIn(), stay.CheckOut()),
		Status:              b.Status().String(),
		CouponID:            pgconv.UUIDPtrToPgtype(b.CouponID()),
		TotalAmountCents:    b.TotalAmount().Cents(),
		DiscountAmountCents: b.DiscountAmount().Cents(),
		SpecialRequests:     b.SpecialRequests().String(),
		CreatedAt:           pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:           pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func BookingToUpdateParams(b *booking.Booking) sqlc.UpdateBookingParams {
	return sqlc.UpdateBookingParams{
		ID:                  pgconv.UUIDToPgtype(b.ID()),
		Status:              b.Status().String(),
		CouponID:            pgconv.UUIDPtrToPgtype(b.CouponID()),
		TotalAmountCents:    b.TotalAmount().Cents(),
		DiscountAmountCents: b.DiscountAmount().Cents(),
		UpdatedAt:           pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

// BookingFromRow rebuilds a domain booking; rows that violate domain rules are
// reported as errors instead of being silently coerced.
func BookingFromRow(row *sqlc.Booking) (*booking.Booking, error) {
	checkIn, checkOut, err := pgconv.RangeFromPgtype(row.Stay)
	if err != nil {
		return nil, errs.Wrap(err, "decode stay")
	}
	stay, err := booking.NewStay(checkIn, checkOut)
	if err != nil {
		return nil, errs.Wrap(err, "decode stay")
	}
	status, err := booking.ParseStatus(row.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "decode status %q", row.Status)
	}
	total, err := booking.NewMoney(row.TotalAmountCents)
	if err != nil {
		return nil, errs.Wrap(err, "decode total amount")
	}
	discount, err := booking.NewMoney(row.DiscountAmountCents)
	if err != nil {
		return nil, errs.Wrap(err, "decode discount amount")
	}

	return booking.ReconstructBooking(
		pgconv.UUIDFromPgtype(row.ID),
		pgconv.UUIDFromPgtype(row.RoomID),
		pgconv.UUIDFromPgtype(row.UserID),
		stay,
		status,
		pgconv.UUIDPtrFromPgtype(row.CouponID),
		total,
		discount,
		booking.RestoreSpecialRequests(row.SpecialRequests),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func BookingsFromRows(rows []*sqlc.Booking) ([]*booking.Booking, error) {
	out := make([]*booking.Booking, 0, len(rows))
	for _, row := range rows {
		b, err := BookingFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

func StatusesToStrings(statuses []booking.Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = s.String()
	}
	return out
}

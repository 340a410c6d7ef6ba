package commands

import (
	"context"
	"log/slog"
	"time"

	"hotel-reservation/internal/domain/booking"
	"hotel-reservation/internal/infra"
	"hotel-reservation/internal/pkg/clock"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBookingInput struct {
	UserID          uuid.UUID
	RoomID          uuid.UUID
	CheckIn         time.Time
	CheckOut        time.Time
	SpecialRequests string
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, in CreateBookingInput) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, status booking.Status) (*booking.Booking, error)
	CancelBooking(ctx context.Context, bookingID uuid.UUID) (*booking.Booking, error)
}

type BookingPolicy struct {
	// MaxStayNights <= 0 disables the limit.
	MaxStayNights int
}

type bookingUseCaseImpl struct {
	uow     shared.UnitOfWork
	pricing booking.PriceCalculator
	policy  BookingPolicy
	clock   clock.Clock
	logger  *slog.Logger
}

func NewBookingUseCase(
	uow shared.UnitOfWork,
	pricing booking.PriceCalculator,
	policy BookingPolicy,
	clk clock.Clock,
	logger *slog.Logger,
) BookingCommands {
	return &bookingUseCaseImpl{
		uow:     uow,
		pricing: pricing,
		policy:  policy,
		clock:   clk,
		logger:  logger,
	}
}

// CreateBooking admits a pending booking. The overlap check and the insert run
// under a per-room lock in one transaction, so concurrent requests for the
// same room are serialized and at most one of any overlapping set succeeds.
func (uc *bookingUseCaseImpl) CreateBooking(ctx context.Context, in CreateBookingInput) (*booking.Booking, error) {
	stay, err := booking.NewStay(in.CheckIn, in.CheckOut)
	if err != nil {
		return nil, err
	}
	if uc.policy.MaxStayNights > 0 && stay.Nights() > uc.policy.MaxStayNights {
		return nil, errs.Wrapf(errs.ErrInvalidRange, "stay of %d nights exceeds the limit of %d", stay.Nights(), uc.policy.MaxStayNights)
	}
	if in.UserID == uuid.Nil || in.RoomID == uuid.Nil {
		return nil, errs.Wrap(errs.ErrValidation, "user and room are required")
	}
	requests, err := booking.NewSpecialRequests(in.SpecialRequests)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	b := booking.NewBooking(in.UserID, in.RoomID, stay, requests, uc.pricing.CalculateTotal(in.RoomID, stay), uc.clock.Now())

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		repo := tx.Bookings()
		if err := repo.LockRoom(ctx, in.RoomID); err != nil {
			return err
		}

		active, err := repo.FindByRoom(ctx, in.RoomID, booking.ActiveStatuses(), stay)
		if err != nil {
			return err
		}
		for _, other := range active {
			if other.Stay().Overlaps(stay) {
				return errs.Wrapf(errs.ErrRoomConflict, "overlaps booking %s", other.ID())
			}
		}

		return repo.Insert(ctx, b)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			err = errs.Mark(err, errs.ErrRoomConflict)
		}
		if errs.Is(err, errs.ErrRoomConflict) {
			uc.logger.WarnContext(ctx, "booking rejected: room conflict",
				"room_id", in.RoomID, "user_id", in.UserID, "stay", stay.ToTstzrange())
		}
		return nil, shared.StoreError(err)
	}

	uc.logger.InfoContext(ctx, "booking admitted",
		"booking_id", b.ID(), "room_id", b.RoomID(), "user_id", b.UserID(),
		"stay", stay.ToTstzrange(), "total_cents", b.TotalAmount().Cents())
	return b, nil
}

func (uc *bookingUseCaseImpl) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status booking.Status) (*booking.Booking, error) {
	if !status.IsValid() {
		return nil, errs.Mark(booking.ErrInvalidStatus, errs.ErrValidation)
	}

	var (
		updated *booking.Booking
		changed bool
		from    booking.Status
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByIDForUpdate(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Wrapf(errs.ErrNotFound, "booking %s", bookingID)
			}
			return err
		}

		from = b.Status()
		changed, err = b.ChangeStatus(status, uc.clock.Now())
		if err != nil {
			return errs.Wrapf(err, "%s -> %s", from, status)
		}
		if changed {
			if err := tx.Bookings().Update(ctx, b); err != nil {
				return err
			}
		}
		updated = b
		return nil
	})
	if err != nil {
		return nil, shared.StoreError(err)
	}

	if changed {
		uc.logger.InfoContext(ctx, "booking status changed",
			"booking_id", bookingID, "from", from, "to", status)
	}
	return updated, nil
}

// CancelBooking releases the room immediately. Cancelling a cancelled booking
// succeeds without changes.
func (uc *bookingUseCaseImpl) CancelBooking(ctx context.Context, bookingID uuid.UUID) (*booking.Booking, error) {
	return uc.UpdateStatus(ctx, bookingID, booking.StatusCancelled)
}

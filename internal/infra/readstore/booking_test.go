//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel-reservation/internal/domain/booking"
	"hotel-reservation/internal/infra"
	"hotel-reservation/internal/infra/readstore"
	sqlc "hotel-reservation/internal/infra/sqlc/generated"
	"hotel-reservation/internal/pkg/pgconv"
	"hotel-reservation/internal/testsupport/builder"
	readstoremock "hotel-reservation/internal/testsupport/mock/readstore"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newBookingStore(t *testing.T) (*readstore.BookingReadStore, *readstoremock.MockBookingViewQueries, sqlc.DBTX) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
	mockDB := &mockDBTX{}
	return readstore.NewBookingReadStore(mockQueries, mockDB, discardLogger()), mockQueries, mockDB
}

func TestBookingReadStore_FindByID(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		row        *sqlc.Booking
		err        error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: view built from row", row: ptr(builder.NewBookingBuilder().BuildRow())},
		{name: "error: missing row", err: pgx.ErrNoRows, expectKind: infra.KindNotFound},
		{name: "error: driver failure", err: errors.New("connection reset"), expectKind: infra.KindDBFailure},
		{name: "error: context cancelled", err: context.Canceled, expectKind: infra.KindUnavailable},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store, mockQueries, mockDB := newBookingStore(t)
			id := builder.NewBookingBuilder().ID
			mockQueries.EXPECT().GetBookingByID(ctx, mockDB, pgconv.UUIDToPgtype(id)).Return(tc.row, tc.err)

			view, err := store.FindByID(ctx, id)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, pgconv.UUIDFromPgtype(tc.row.ID), view.ID)
			assert.Equal(t, 2, view.Nights)
			assert.Equal(t, "pending", view.Status)
		})
	}
}

func TestBookingReadStore_HasActiveOverlap(t *testing.T) {
	ctx := context.Background()
	store, mockQueries, mockDB := newBookingStore(t)

	bb := builder.NewBookingBuilder()
	stay, err := booking.NewStay(bb.CheckIn, bb.CheckOut)
	require.NoError(t, err)

	mockQueries.EXPECT().ExistsActiveOverlap(ctx, mockDB, sqlc.ExistsActiveOverlapParams{
		RoomID: pgconv.UUIDToPgtype(bb.RoomID),
		Stay:   pgconv.RangeToPgtype(bb.CheckIn, bb.CheckOut),
	}).Return(true, nil)

	overlap, err := store.HasActiveOverlap(ctx, bb.RoomID, stay)

	require.NoError(t, err)
	assert.True(t, overlap)
}

func TestBookingReadStore_UserPages(t *testing.T) {
	ctx := context.Background()
	store, mockQueries, mockDB := newBookingStore(t)

	bb := builder.NewBookingBuilder()
	row := bb.BuildRow()
	lastCreated := time.Date(2030, 3, 1, 9, 0, 0, 0, time.UTC)

	gomock.InOrder(
		mockQueries.EXPECT().ListBookingsByUserFirstPage(ctx, mockDB, sqlc.ListBookingsByUserFirstPageParams{
			UserID:   pgconv.UUIDToPgtype(bb.UserID),
			RowLimit: 21,
		}).Return([]*sqlc.Booking{&row}, nil),
		mockQueries.EXPECT().ListBookingsByUserKeyset(ctx, mockDB, sqlc.ListBookingsByUserKeysetParams{
			UserID:        pgconv.UUIDToPgtype(bb.UserID),
			LastCreatedAt: pgconv.TimeToPgtype(lastCreated),
			LastID:        pgconv.UUIDToPgtype(bb.ID),
			RowLimit:      21,
		}).Return([]*sqlc.Booking{}, nil),
	)

	first, err := store.FindByUserFirstPage(ctx, bb.UserID, 21)
	require.NoError(t, err)
	assert.Len(t, first, 1)

	next, err := store.FindByUserKeyset(ctx, bb.UserID, lastCreated, bb.ID, 21)
	require.NoError(t, err)
	assert.Empty(t, next)
}

func TestBookingReadStore_AllPages(t *testing.T) {
	ctx := context.Background()
	store, mockQueries, mockDB := newBookingStore(t)

	bb := builder.NewBookingBuilder()
	row := bb.BuildRow()
	lastCreated := time.Date(2030, 3, 1, 9, 0, 0, 0, time.UTC)

	gomock.InOrder(
		mockQueries.EXPECT().ListBookingsFirstPage(ctx, mockDB, int32(11)).Return([]*sqlc.Booking{&row}, nil),
		mockQueries.EXPECT().ListBookingsKeyset(ctx, mockDB, sqlc.ListBookingsKeysetParams{
			LastCreatedAt: pgconv.TimeToPgtype(lastCreated),
			LastID:        pgconv.UUIDToPgtype(bb.ID),
			RowLimit:      11,
		}).Return(nil, errors.New("connection reset")),
	)

	first, err := store.FindAllFirstPage(ctx, 11)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, bb.ID, first[0].ID)

	_, err = store.FindAllKeyset(ctx, lastCreated, bb.ID, 11)
	require.Error(t, err)
	assert.False(t, infra.IsKind(err, infra.KindNotFound))
}

func TestBookingReadStore_FindActiveByRoom_DecodeFailure(t *testing.T) {
	ctx := context.Background()
	store, mockQueries, mockDB := newBookingStore(t)

	bb := builder.NewBookingBuilder()
	row := bb.BuildRow()
	row.TotalAmountCents = -1
	stay, err := booking.NewStay(bb.CheckIn, bb.CheckOut)
	require.NoError(t, err)

	mockQueries.EXPECT().FindBookingsByRoom(ctx, mockDB, gomock.Any()).Return([]*sqlc.Booking{&row}, nil)

	_, err = store.FindActiveByRoom(ctx, bb.RoomID, stay)

	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}

func ptr[T any](v T) *T { return &v }

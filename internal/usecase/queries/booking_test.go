//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingQueries_CheckAvailability(t *testing.T) {
	ctx := context.Background()
	roomID := uuid.New()

	s := newStore()
	seedBooking(t, s, uuid.New(), roomID, 2, 5, now)
	cancelled := seedBooking(t, s, uuid.New(), roomID, 10, 12, now)
	cancelBooking(t, s, cancelled.ID())
	q := queries.NewBookingQueries(s.BookingReads())

	testCases := []struct {
		name      string
		roomID    uuid.UUID
		from, to  int
		expected  bool
		expectErr error
	}{
		{name: "success: free before the booking", roomID: roomID, from: 0, to: 2, expected: true},
		{name: "success: free after the booking", roomID: roomID, from: 5, to: 7, expected: true},
		{name: "success: overlapping stay is unavailable", roomID: roomID, from: 4, to: 6, expected: false},
		{name: "success: enclosing stay is unavailable", roomID: roomID, from: 1, to: 9, expected: false},
		{name: "success: cancelled booking does not block", roomID: roomID, from: 10, to: 12, expected: true},
		{name: "success: other room is free", roomID: uuid.New(), from: 2, to: 5, expected: true},
		{name: "error: reversed range", roomID: roomID, from: 3, to: 1, expectErr: errs.ErrInvalidRange},
		{name: "error: empty range", roomID: roomID, from: 3, to: 3, expectErr: errs.ErrInvalidRange},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			available, err := q.CheckAvailability(ctx, tc.roomID, day(tc.from), day(tc.to))
			if tc.expectErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.expectErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, available)
		})
	}
}

func TestBookingQueries_GetBooking(t *testing.T) {
	ctx := context.Background()
	s := newStore()
	b := seedBooking(t, s, uuid.New(), uuid.New(), 0, 3, now)
	q := queries.NewBookingQueries(s.BookingReads())

	t.Run("success: returns the booking view", func(t *testing.T) {
		view, err := q.GetBooking(ctx, b.ID())
		require.NoError(t, err)
		assert.Equal(t, b.ID(), view.ID)
		assert.Equal(t, 3, view.Nights)
		assert.Equal(t, int64(30000), view.TotalAmountCents)
		assert.Equal(t, "pending", view.Status)
	})

	t.Run("error: unknown booking", func(t *testing.T) {
		_, err := q.GetBooking(ctx, uuid.New())
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})

	t.Run("error: cancelled context is store unavailable", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := q.GetBooking(cctx, b.ID())
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrStoreUnavailable))
	})
}

func TestBookingQueries_ListUserBookings(t *testing.T) {
	ctx := context.Background()
	s := newStore()
	userID := uuid.New()

	var created []uuid.UUID
	for i := 0; i < 5; i++ {
		b := seedBooking(t, s, userID, uuid.New(), 0, 1, now.Add(time.Duration(i)*time.Minute))
		created = append(created, b.ID())
	}
	seedBooking(t, s, uuid.New(), uuid.New(), 0, 1, now)
	q := queries.NewBookingQueries(s.BookingReads())

	page, err := q.ListUserBookings(ctx, userID, nil, 2)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	require.NotNil(t, page.Next)
	assert.Equal(t, created[4], page.Items[0].ID)
	assert.Equal(t, created[3], page.Items[1].ID)

	page, err = q.ListUserBookings(ctx, userID, page.Next, 2)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	require.NotNil(t, page.Next)
	assert.Equal(t, created[2], page.Items[0].ID)

	page, err = q.ListUserBookings(ctx, userID, page.Next, 2)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Nil(t, page.Next)
	assert.Equal(t, created[0], page.Items[0].ID)

	t.Run("error: malformed cursor", func(t *testing.T) {
		_, err := q.ListUserBookings(ctx, userID, &queries.Cursor{After: "not-a-cursor"}, 2)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})
}

func TestBookingQueries_ListBookings(t *testing.T) {
	ctx := context.Background()
	s := newStore()

	var created []uuid.UUID
	for i := 0; i < 3; i++ {
		b := seedBooking(t, s, uuid.New(), uuid.New(), 0, 1, now.Add(time.Duration(i)*time.Minute))
		created = append(created, b.ID())
	}
	cancelled := seedBooking(t, s, uuid.New(), uuid.New(), 0, 1, now.Add(10*time.Minute))
	cancelBooking(t, s, cancelled.ID())
	q := queries.NewBookingQueries(s.BookingReads())

	page, err := q.ListBookings(ctx, nil, 3)
	require.NoError(t, err)
	require.Len(t, page.Items, 3)
	require.NotNil(t, page.Next)
	assert.Equal(t, cancelled.ID(), page.Items[0].ID)
	assert.Equal(t, "cancelled", page.Items[0].Status)
	assert.Equal(t, created[2], page.Items[1].ID)

	page, err = q.ListBookings(ctx, page.Next, 3)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Nil(t, page.Next)
	assert.Equal(t, created[0], page.Items[0].ID)

	t.Run("success: zero limit falls back to the default", func(t *testing.T) {
		page, err := q.ListBookings(ctx, nil, 0)
		require.NoError(t, err)
		assert.Len(t, page.Items, 4)
		assert.Nil(t, page.Next)
	})

	t.Run("error: malformed cursor", func(t *testing.T) {
		_, err := q.ListBookings(ctx, &queries.Cursor{After: "bad"}, 2)
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})
}

func TestBookingQueries_ListRoomBookings(t *testing.T) {
	ctx := context.Background()
	s := newStore()
	roomID := uuid.New()
	first := seedBooking(t, s, uuid.New(), roomID, 0, 2, now)
	second := seedBooking(t, s, uuid.New(), roomID, 4, 6, now)
	cancelled := seedBooking(t, s, uuid.New(), roomID, 2, 4, now)
	cancelBooking(t, s, cancelled.ID())
	seedBooking(t, s, uuid.New(), roomID, 20, 22, now)
	q := queries.NewBookingQueries(s.BookingReads())

	views, err := q.ListRoomBookings(ctx, roomID, day(1), day(5))
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, first.ID(), views[0].ID)
	assert.Equal(t, second.ID(), views[1].ID)

	_, err = q.ListRoomBookings(ctx, roomID, day(5), day(1))
	assert.True(t, errs.Is(err, errs.ErrInvalidRange))
}

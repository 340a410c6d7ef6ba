//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"hotel-reservation/internal/domain/booking"
	"hotel-reservation/internal/handler/api"
	resdto "hotel-reservation/internal/handler/dto/response"
	"hotel-reservation/internal/handler/middleware"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/testsupport/builder"
	"hotel-reservation/internal/testsupport/httptest"
	"hotel-reservation/internal/testsupport/testutil"
	commandsmock "hotel-reservation/internal/testsupport/mock/commands"
	queriesmock "hotel-reservation/internal/testsupport/mock/queries"
	"hotel-reservation/internal/usecase/commands"
	"hotel-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	guestID      uuid.UUID
	staffID      uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.guestID = uuid.New()
	s.staffID = uuid.New()

	h := api.NewBookingHandler(s.mockCommands, s.mockQueries)
	auth := fakeAuth(s.guestID, s.staffID)

	s.router.GET("/rooms/:roomId/availability", auth, h.CheckAvailability)
	s.router.GET("/rooms/:roomId/bookings", auth, h.ListRoomBookings)
	s.router.POST("/bookings", auth, h.Create)
	s.router.GET("/bookings", auth, h.ListMine)
	s.router.GET("/bookings/all", auth, h.ListAll)
	s.router.GET("/bookings/:id", auth, h.Get)
	s.router.POST("/bookings/:id/cancel", auth, h.Cancel)
	s.router.PUT("/bookings/:id/status", auth, h.UpdateStatus)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"
	b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.UserID = s.guestID })
	reqBody := b.BuildCreateRequestDTO()

	s.Run("success: returns 201 with the pending booking", func() {
		s.mockCommands.EXPECT().
			CreateBooking(gomock.Any(), commands.CreateBookingInput{
				UserID:          s.guestID,
				RoomID:          b.RoomID,
				CheckIn:         b.CheckIn,
				CheckOut:        b.CheckOut,
				SpecialRequests: b.SpecialRequests,
			}).
			Return(b.BuildDomain(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, guestToken)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(b.ID, body.ID)
		s.Equal("pending", body.Status)
		s.Equal(int64(100000), body.TotalAmountCents)
	})

	s.Run("error: 400 on missing fields", func() {
		for _, field := range []string{"room_id", "check_in", "check_out"} {
			s.Run(field, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field(field, nil))
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, guestToken)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	errorCases := []struct {
		name       string
		err        error
		expectCode int
	}{
		{name: "invalid range", err: errs.ErrInvalidRange, expectCode: http.StatusBadRequest},
		{name: "validation", err: errs.Wrap(errs.ErrValidation, "special requests too long"), expectCode: http.StatusBadRequest},
		{name: "room conflict", err: errs.Wrap(errs.ErrRoomConflict, "room taken"), expectCode: http.StatusConflict},
		{name: "store unavailable", err: errs.Mark(errs.New("timeout"), errs.ErrStoreUnavailable), expectCode: http.StatusServiceUnavailable},
		{name: "unclassified", err: errs.New("boom"), expectCode: http.StatusInternalServerError},
	}
	for _, tc := range errorCases {
		s.Run("error: "+tc.name, func() {
			s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(nil, tc.err)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, guestToken)

			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
		})
	}
}

// ================================================================================
// TestGet
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	own := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.UserID = s.guestID }).BuildView()
	foreign := builder.NewBookingBuilder().BuildView()

	s.Run("success: owner sees the booking", func() {
		s.mockQueries.EXPECT().GetBooking(gomock.Any(), own.ID).Return(own, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+own.ID.String(), nil, guestToken)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(own.ID, body.ID)
	})

	s.Run("success: staff sees any booking", func() {
		s.mockQueries.EXPECT().GetBooking(gomock.Any(), foreign.ID).Return(foreign, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+foreign.ID.String(), nil, staffToken)

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 404 for another guest's booking", func() {
		s.mockQueries.EXPECT().GetBooking(gomock.Any(), foreign.ID).Return(foreign, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+foreign.ID.String(), nil, guestToken)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 404 for unknown booking", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetBooking(gomock.Any(), id).Return(nil, errs.Wrapf(errs.ErrNotFound, "booking %s", id))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil, guestToken)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 400 for malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, guestToken)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *BookingHandlerTestSuite) TestCancel() {
	b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.UserID = s.guestID })
	cancelled := builder.NewBookingBuilder().With(func(c *builder.BookingBuilder) {
		*c = *b
		c.Status = booking.StatusCancelled
	})

	s.Run("success: owner cancels", func() {
		gomock.InOrder(
			s.mockQueries.EXPECT().GetBooking(gomock.Any(), b.ID).Return(b.BuildView(), nil),
			s.mockCommands.EXPECT().CancelBooking(gomock.Any(), b.ID).Return(cancelled.BuildDomain(), nil),
		)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+b.ID.String()+"/cancel", nil, guestToken)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("cancelled", body.Status)
	})

	s.Run("error: another guest cannot cancel", func() {
		foreign := builder.NewBookingBuilder().BuildView()
		s.mockQueries.EXPECT().GetBooking(gomock.Any(), foreign.ID).Return(foreign, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+foreign.ID.String()+"/cancel", nil, guestToken)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

// ================================================================================
// TestUpdateStatus
// ================================================================================

func (s *BookingHandlerTestSuite) TestUpdateStatus() {
	b := builder.NewBookingBuilder()
	url := "/bookings/" + b.ID.String() + "/status"

	s.Run("success: confirms a pending booking", func() {
		confirmed := b.With(func(b *builder.BookingBuilder) { b.Status = booking.StatusConfirmed }).BuildDomain()
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), b.ID, booking.StatusConfirmed).Return(confirmed, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"status": "confirmed"}, staffToken)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("confirmed", body.Status)
	})

	s.Run("error: 400 for unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"status": "checked_in"}, staffToken)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 409 for forbidden transition", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), b.ID, booking.StatusPending).
			Return(nil, errs.Wrap(errs.ErrInvalidTransition, "confirmed -> pending"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"status": "pending"}, staffToken)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Status transition not allowed")
	})
}

// ================================================================================
// TestQueries
// ================================================================================

func (s *BookingHandlerTestSuite) TestCheckAvailability() {
	roomID := uuid.New()
	checkIn := time.Date(2030, 4, 1, 15, 0, 0, 0, time.UTC)
	checkOut := checkIn.Add(48 * time.Hour)

	s.Run("success: reports availability", func() {
		s.mockQueries.EXPECT().CheckAvailability(gomock.Any(), roomID, checkIn, checkOut).Return(true, nil)

		url := "/rooms/" + roomID.String() + "/availability?checkIn=" + checkIn.Format(time.RFC3339) + "&checkOut=" + checkOut.Format(time.RFC3339)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, guestToken)

		var body resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Available)
	})

	s.Run("error: 400 when checkOut missing", func() {
		url := "/rooms/" + roomID.String() + "/availability?checkIn=" + checkIn.Format(time.RFC3339)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, guestToken)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})

	s.Run("error: 400 for inverted range", func() {
		s.mockQueries.EXPECT().CheckAvailability(gomock.Any(), roomID, checkOut, checkIn).Return(false, errs.ErrInvalidRange)

		url := "/rooms/" + roomID.String() + "/availability?checkIn=" + checkOut.Format(time.RFC3339) + "&checkOut=" + checkIn.Format(time.RFC3339)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, guestToken)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *BookingHandlerTestSuite) TestListMine() {
	views := []*queries.BookingView{builder.NewBookingBuilder().BuildView()}

	s.Run("success: passes cursor and clamps limit", func() {
		s.mockQueries.EXPECT().
			ListUserBookings(gomock.Any(), s.guestID, &queries.Cursor{After: "abc"}, queries.MaxListLimit).
			Return(&queries.BookingPage{Items: views, Next: &queries.Cursor{After: "def"}}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?cursor=abc&limit=1000", nil, guestToken)

		var body resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Items, 1)
		s.Equal("def", body.NextCursor)
	})

	s.Run("error: 400 for malformed cursor", func() {
		s.mockQueries.EXPECT().ListUserBookings(gomock.Any(), s.guestID, gomock.Any(), queries.DefaultListLimit).
			Return(nil, queries.ErrInvalidCursor)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?cursor=garbage", nil, guestToken)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *BookingHandlerTestSuite) TestListAll() {
	views := []*queries.BookingView{
		builder.NewBookingBuilder().BuildView(),
		builder.NewBookingBuilder().BuildView(),
	}

	s.Run("success: first page across users", func() {
		s.mockQueries.EXPECT().ListBookings(gomock.Any(), (*queries.Cursor)(nil), queries.DefaultListLimit).
			Return(&queries.BookingPage{Items: views}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/all", nil, staffToken)

		var body resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Items, 2)
		s.Empty(body.NextCursor)
	})

	s.Run("success: next page follows the cursor", func() {
		s.mockQueries.EXPECT().ListBookings(gomock.Any(), &queries.Cursor{After: "abc"}, 5).
			Return(&queries.BookingPage{Items: views[:1], Next: &queries.Cursor{After: "def"}}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/all?cursor=abc&limit=5", nil, staffToken)

		var body resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Items, 1)
		s.Equal("def", body.NextCursor)
	})

	s.Run("error: 400 for negative limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/all?limit=-1", nil, staffToken)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})
}

func (s *BookingHandlerTestSuite) TestListRoomBookings() {
	roomID := uuid.New()
	from := time.Date(2030, 4, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(7 * 24 * time.Hour)

	s.mockQueries.EXPECT().ListRoomBookings(gomock.Any(), roomID, from, to).
		Return([]*queries.BookingView{builder.NewBookingBuilder().BuildView()}, nil)

	url := "/rooms/" + roomID.String() + "/bookings?from=" + from.Format(time.RFC3339) + "&to=" + to.Format(time.RFC3339)
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, staffToken)

	var body []resdto.BookingResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Len(body, 1)
}

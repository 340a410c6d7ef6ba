package api

import (
	"errors"
	"net/http"

	reqdto "hotel-reservation/internal/handler/dto/request"
	resdto "hotel-reservation/internal/handler/dto/response"
	"hotel-reservation/internal/handler/httperr"
	"hotel-reservation/internal/handler/middleware"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/commands"
	"hotel-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errUnauthenticated = errors.New("no authenticated user in context")

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Check room availability
// @Description Advisory check; only booking creation guarantees the room
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param roomId path string true "Room ID"
// @Param checkIn query string true "Check-in (RFC 3339)"
// @Param checkOut query string true "Check-out (RFC 3339)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /rooms/{roomId}/availability [get]
func (h *BookingHandler) CheckAvailability(c *gin.Context) {
	roomID, ok := pathUUID(c, "roomId")
	if !ok {
		return
	}
	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortBadRequest(c, err, "Invalid query")
		return
	}

	available, err := h.q.CheckAvailability(c.Request.Context(), roomID, q.CheckIn, q.CheckOut)
	if err != nil {
		abortWithCoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.AvailabilityResponse{
		RoomID:    roomID,
		CheckIn:   q.CheckIn,
		CheckOut:  q.CheckOut,
		Available: available,
	})
}

// @Summary List room bookings
// @Description Active bookings of a room intersecting [from, to)
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param roomId path string true "Room ID"
// @Param from query string true "Window start (RFC 3339)"
// @Param to query string true "Window end (RFC 3339)"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /rooms/{roomId}/bookings [get]
func (h *BookingHandler) ListRoomBookings(c *gin.Context) {
	roomID, ok := pathUUID(c, "roomId")
	if !ok {
		return
	}
	var q reqdto.RoomBookingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortBadRequest(c, err, "Invalid query")
		return
	}

	views, err := h.q.ListRoomBookings(c.Request.Context(), roomID, q.From, q.To)
	if err != nil {
		abortWithCoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Create booking
// @Description Admit a pending booking if no active booking of the room overlaps the stay
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBadRequest(c, err, "Invalid request")
		return
	}

	b, err := h.cmds.CreateBooking(c.Request.Context(), req.ToInput(userID))
	if err != nil {
		abortWithCoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBooking(b))
}

// @Summary List my bookings
// @Description Newest first, keyset paginated
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param cursor query string false "Cursor from a previous page"
// @Param limit query int false "Max items (default 20, max 200)"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) ListMine(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var q reqdto.ListBookingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortBadRequest(c, err, "Invalid query")
		return
	}

	page, err := h.q.ListUserBookings(c.Request.Context(), userID, q.ToCursor(), queries.ValidateLimit(q.Limit))
	if err != nil {
		abortWithCoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingPage(page))
}

// @Summary List all bookings
// @Description Every booking across users, newest first, keyset paginated
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param cursor query string false "Cursor from a previous page"
// @Param limit query int false "Max items (default 20, max 200)"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /bookings/all [get]
func (h *BookingHandler) ListAll(c *gin.Context) {
	var q reqdto.ListBookingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortBadRequest(c, err, "Invalid query")
		return
	}

	page, err := h.q.ListBookings(c.Request.Context(), q.ToCursor(), queries.ValidateLimit(q.Limit))
	if err != nil {
		abortWithCoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingPage(page))
}

// @Summary Get booking
// @Description Visible to its owner and to staff
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	view, ok := h.loadVisible(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Cancel booking
// @Description Owner or staff; cancelling twice is a no-op
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	view, ok := h.loadVisible(c)
	if !ok {
		return
	}

	b, err := h.cmds.CancelBooking(c.Request.Context(), view.ID)
	if err != nil {
		abortWithCoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBooking(b))
}

// @Summary Update booking status
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateStatusRequest true "Target status"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/status [put]
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBadRequest(c, err, "Invalid request")
		return
	}
	status, err := req.ToDomain()
	if err != nil {
		abortWithCoreError(c, errs.Mark(err, errs.ErrValidation))
		return
	}

	b, err := h.cmds.UpdateStatus(c.Request.Context(), id, status)
	if err != nil {
		abortWithCoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBooking(b))
}

// loadVisible hides bookings of other users from non-staff callers.
func (h *BookingHandler) loadVisible(c *gin.Context) (*queries.BookingView, bool) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return nil, false
	}
	userID, ok := requireUserID(c)
	if !ok {
		return nil, false
	}

	view, err := h.q.GetBooking(c.Request.Context(), id)
	if err != nil {
		abortWithCoreError(c, err)
		return nil, false
	}
	role, _ := middleware.GetUserRole(c)
	if view.UserID != userID && !role.IsStaff() {
		abortWithCoreError(c, errs.Wrapf(errs.ErrNotFound, "booking %s", id))
		return nil, false
	}
	return view, true
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortBadRequest(c, err, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

func requireUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return uuid.Nil, false
	}
	return userID, true
}

package api

import (
	"net/http"

	reqdto "hotel-reservation/internal/handler/dto/request"
	resdto "hotel-reservation/internal/handler/dto/response"
	"hotel-reservation/internal/handler/httperr"
	"hotel-reservation/internal/usecase/commands"
	"hotel-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CouponHandler struct {
	cmds commands.CouponCommands
	q    queries.CouponQueries
}

func NewCouponHandler(cmds commands.CouponCommands, q queries.CouponQueries) *CouponHandler {
	return &CouponHandler{cmds: cmds, q: q}
}

// @Summary Redeem coupon
// @Description Apply a coupon to one of the caller's bookings and consume it
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.RedeemCouponRequest true "Coupon code"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /bookings/{id}/coupon [post]
func (h *CouponHandler) Redeem(c *gin.Context) {
	bookingID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req reqdto.RedeemCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBadRequest(c, err, "Invalid request")
		return
	}

	b, err := h.cmds.RedeemCoupon(c.Request.Context(), commands.RedeemCouponInput{
		Code:      req.Code,
		UserID:    userID,
		BookingID: bookingID,
	})
	if err != nil {
		abortWithCoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBooking(b))
}

// @Summary Validate coupon
// @Description Side-effect free; a refusal is a 200 with valid=false and a reason
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ValidateCouponRequest true "Coupon code"
// @Success 200 {object} resdto.CouponValidationResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /coupons/validate [post]
func (h *CouponHandler) Validate(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req reqdto.ValidateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBadRequest(c, err, "Invalid request")
		return
	}

	result, err := h.q.ValidateCoupon(c.Request.Context(), req.Code, userID)
	if err != nil {
		abortWithCoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCouponValidation(result))
}

// @Summary Create coupon
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCouponRequest true "Coupon"
// @Success 201 {object} resdto.CouponResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /coupons [post]
func (h *CouponHandler) Create(c *gin.Context) {
	var req reqdto.CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBadRequest(c, err, "Invalid request")
		return
	}

	cp, err := h.cmds.CreateCoupon(c.Request.Context(), req.ToInput())
	if err != nil {
		abortWithCoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCoupon(cp))
}

// @Summary Get coupon
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Success 200 {object} resdto.CouponResponse
// @Failure 404 {object} httperr.Response
// @Router /coupons/{id} [get]
func (h *CouponHandler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	view, err := h.q.GetCoupon(c.Request.Context(), id)
	if err != nil {
		abortWithCoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCouponView(view))
}

// @Summary List coupons
// @Description Every coupon in any state, newest first
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CouponResponse
// @Failure 403 {object} httperr.Response
// @Router /coupons [get]
func (h *CouponHandler) List(c *gin.Context) {
	views, err := h.q.ListCoupons(c.Request.Context())
	if err != nil {
		abortWithCoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCouponViews(views))
}

// @Summary List active coupons
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CouponResponse
// @Router /coupons/active [get]
func (h *CouponHandler) ListActive(c *gin.Context) {
	views, err := h.q.ListActiveCoupons(c.Request.Context())
	if err != nil {
		abortWithCoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCouponViews(views))
}

// @Summary List expired coupons
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CouponResponse
// @Router /coupons/expired [get]
func (h *CouponHandler) ListExpired(c *gin.Context) {
	views, err := h.q.ListExpiredCoupons(c.Request.Context())
	if err != nil {
		abortWithCoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCouponViews(views))
}

// @Summary Deactivate coupon
// @Description Idempotent
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Success 200 {object} resdto.CouponResponse
// @Failure 404 {object} httperr.Response
// @Router /coupons/{id}/deactivate [post]
func (h *CouponHandler) Deactivate(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	cp, err := h.cmds.DeactivateCoupon(c.Request.Context(), id)
	if err != nil {
		abortWithCoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCoupon(cp))
}

// @Summary Update coupon terms
// @Description Replaces discount and expiry of a coupon that has not been redeemed
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Param request body reqdto.UpdateCouponRequest true "New terms"
// @Success 200 {object} resdto.CouponResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /coupons/{id} [put]
func (h *CouponHandler) Update(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBadRequest(c, err, "Invalid request")
		return
	}

	cp, err := h.cmds.UpdateCoupon(c.Request.Context(), id, req.ToInput())
	if err != nil {
		abortWithCoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCoupon(cp))
}

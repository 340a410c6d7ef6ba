package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotel-reservation/internal/domain/user"
	"hotel-reservation/internal/handler/api"
	"hotel-reservation/internal/handler/middleware"
	"hotel-reservation/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Booking *api.BookingHandler
	Coupon  *api.CouponHandler
}

// limiter may be nil, which disables rate limiting.
func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter middleware.RateLimiter) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware, limiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter middleware.RateLimiter) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	limited := []gin.HandlerFunc{middleware.RateLimit(limiter)}
	staff := authMiddleware.RequireRoleAtLeast(user.RoleStaff)
	admin := authMiddleware.RequireRoleAtLeast(user.RoleAdmin)

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		rooms := apiGroup.Group("/rooms")
		addRoutes(rooms, []route{
			{Method: http.MethodGet, Path: "/:roomId/availability", Handler: h.Booking.CheckAvailability},
			{Method: http.MethodGet, Path: "/:roomId/bookings", Handler: h.Booking.ListRoomBookings, Mw: []gin.HandlerFunc{staff}},
		})

		bookings := apiGroup.Group("/bookings")
		addRoutes(bookings, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Booking.Create, Mw: limited},
			{Method: http.MethodGet, Path: "", Handler: h.Booking.ListMine},
			{Method: http.MethodGet, Path: "/all", Handler: h.Booking.ListAll, Mw: []gin.HandlerFunc{staff}},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Booking.Cancel, Mw: limited},
			{Method: http.MethodPut, Path: "/:id/status", Handler: h.Booking.UpdateStatus, Mw: []gin.HandlerFunc{staff}},
			{Method: http.MethodPost, Path: "/:id/coupon", Handler: h.Coupon.Redeem, Mw: limited},
		})

		coupons := apiGroup.Group("/coupons")
		addRoutes(coupons, []route{
			{Method: http.MethodPost, Path: "/validate", Handler: h.Coupon.Validate, Mw: limited},
			{Method: http.MethodPost, Path: "", Handler: h.Coupon.Create, Mw: []gin.HandlerFunc{admin}},
			{Method: http.MethodGet, Path: "", Handler: h.Coupon.List, Mw: []gin.HandlerFunc{staff}},
			{Method: http.MethodGet, Path: "/active", Handler: h.Coupon.ListActive, Mw: []gin.HandlerFunc{staff}},
			{Method: http.MethodGet, Path: "/expired", Handler: h.Coupon.ListExpired, Mw: []gin.HandlerFunc{staff}},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Coupon.Get, Mw: []gin.HandlerFunc{staff}},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Coupon.Update, Mw: []gin.HandlerFunc{admin}},
			{Method: http.MethodPost, Path: "/:id/deactivate", Handler: h.Coupon.Deactivate, Mw: []gin.HandlerFunc{admin}},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(append([]gin.HandlerFunc{}, r.Mw...), r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}

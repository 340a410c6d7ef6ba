//go:build e2e

package bootstrap_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"hotel-reservation/cmd/bootstrap"
	"hotel-reservation/cmd/bootstrap/components"
	"hotel-reservation/internal/domain/user"
	reqdto "hotel-reservation/internal/handler/dto/request"
	resdto "hotel-reservation/internal/handler/dto/response"
	"hotel-reservation/internal/pkg/clock"
	"hotel-reservation/internal/pkg/config"
	"hotel-reservation/internal/pkg/jwt"
	"hotel-reservation/internal/testsupport/builder"
	"hotel-reservation/internal/testsupport/httptest"
	"hotel-reservation/internal/testsupport/pgtest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

type AppSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
}

func TestAppSuite(t *testing.T) {
	suite.Run(t, new(AppSuite))
}

func (s *AppSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	pool, dbCfg := pgtest.NewDatabase(s.T())

	cfg := config.NewTestConfig()
	cfg.DB = dbCfg
	cfg.Store.Driver = config.StoreDriverPostgres

	app := fx.New(
		fx.Provide(
			func() config.Config { return cfg },
			func() *pgxpool.Pool { return pool },
			func() *redis.Client { return nil },
			func() *gin.Engine { return gin.New() },
		),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&s.Router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	s.Require().NoError(app.Start(ctx))
	s.T().Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = app.Stop(ctx)
	})

	s.DB = pool
	s.Config = cfg
}

func (s *AppSuite) SetupSubTest() {
	pgtest.Truncate(s.T(), s.DB)
}

func (s *AppSuite) token(userID uuid.UUID, role user.Role) string {
	svc := jwt.NewService(s.Config.JWT.Secret, time.Hour, clock.NewRealClock())
	token, err := svc.GenerateToken(userID, role)
	s.Require().NoError(err)
	return token
}

func (s *AppSuite) TestBookingLifecycle() {
	s.Run("success: book, discount, cancel and rebook", func() {
		t := s.T()
		guestID := uuid.New()
		guest := s.token(guestID, user.RoleGuest)
		admin := s.token(uuid.New(), user.RoleAdmin)

		reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/bookings", reqBody, guest)
		s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

		var created resdto.BookingResponse
		httptest.DecodeResponseBody(t, w.Body, &created)
		s.Equal("pending", created.Status)
		s.Equal(guestID, created.UserID)
		s.Equal(2, created.Nights)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/bookings", reqBody, s.token(uuid.New(), user.RoleGuest))
		s.Equal(http.StatusConflict, w.Code, w.Body.String())

		couponReq := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) {
			b.ExpiresAt = time.Now().Add(24 * time.Hour)
		}).BuildCreateRequestDTO()
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/coupons", couponReq, admin)
		s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("/api/bookings/%s/coupon", created.ID), reqdto.RedeemCouponRequest{Code: "save5"}, guest)
		s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

		var discounted resdto.BookingResponse
		httptest.DecodeResponseBody(t, w.Body, &discounted)
		s.Equal(created.TotalAmountCents-discounted.DiscountAmountCents, discounted.TotalAmountCents)
		s.NotNil(discounted.CouponID)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			"/api/coupons/validate", reqdto.ValidateCouponRequest{Code: "SAVE5"}, guest)
		s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
		var validation resdto.CouponValidationResponse
		httptest.DecodeResponseBody(t, w.Body, &validation)
		s.False(validation.Valid)
		s.Equal("ALREADY_USED", validation.Reason)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("/api/bookings/%s/cancel", created.ID), nil, guest)
		s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/bookings", reqBody, s.token(uuid.New(), user.RoleGuest))
		s.Equal(http.StatusCreated, w.Code, w.Body.String())
	})

	s.Run("error: guests cannot reach staff routes", func() {
		t := s.T()
		guest := s.token(uuid.New(), user.RoleGuest)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/coupons/active", nil, guest)
		s.Equal(http.StatusForbidden, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/bookings", nil, "")
		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("success: staff list and admins edit coupons", func() {
		t := s.T()
		staff := s.token(uuid.New(), user.RoleStaff)
		admin := s.token(uuid.New(), user.RoleAdmin)

		couponReq := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) {
			b.ExpiresAt = time.Now().Add(24 * time.Hour)
		}).BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/coupons", couponReq, admin)
		s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
		var created resdto.CouponResponse
		httptest.DecodeResponseBody(t, w.Body, &created)

		pct := 30.0
		update := reqdto.UpdateCouponRequest{DiscountPercentage: &pct, ExpiresAt: time.Now().Add(48 * time.Hour)}
		w = httptest.PerformRequest(t, s.Router, http.MethodPut, "/api/coupons/"+created.ID.String(), update, staff)
		s.Equal(http.StatusForbidden, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, "/api/coupons/"+created.ID.String(), update, admin)
		s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/coupons", nil, staff)
		s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
		var all []resdto.CouponResponse
		httptest.DecodeResponseBody(t, w.Body, &all)
		s.Require().Len(all, 1)
		s.InDelta(30.0, all[0].DiscountPercentage, 0.001)
	})

	s.Run("success: staff page through every booking", func() {
		t := s.T()
		staff := s.token(uuid.New(), user.RoleStaff)
		for range 3 {
			reqBody := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.RoomID = uuid.New() }).BuildCreateRequestDTO()
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/bookings", reqBody, s.token(uuid.New(), user.RoleGuest))
			s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/bookings/all?limit=2", nil, staff)
		s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
		var page resdto.BookingListResponse
		httptest.DecodeResponseBody(t, w.Body, &page)
		s.Len(page.Items, 2)
		s.Require().NotEmpty(page.NextCursor)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/bookings/all?limit=2&cursor="+page.NextCursor, nil, staff)
		s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
		httptest.DecodeResponseBody(t, w.Body, &page)
		s.Len(page.Items, 1)
		s.Empty(page.NextCursor)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/bookings/all", nil, s.token(uuid.New(), user.RoleGuest))
		s.Equal(http.StatusForbidden, w.Code)
	})

	s.Run("success: availability reflects admitted bookings", func() {
		t := s.T()
		guest := s.token(uuid.New(), user.RoleGuest)
		reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()

		url := fmt.Sprintf("/api/rooms/%s/availability?checkIn=%s&checkOut=%s", reqBody.RoomID,
			reqBody.CheckIn.Format(time.RFC3339), reqBody.CheckOut.Format(time.RFC3339))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, guest)
		s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
		var before resdto.AvailabilityResponse
		httptest.DecodeResponseBody(t, w.Body, &before)
		s.True(before.Available)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/bookings", reqBody, guest)
		s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, guest)
		s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
		var after resdto.AvailabilityResponse
		httptest.DecodeResponseBody(t, w.Body, &after)
		s.False(after.Available)
	})
}

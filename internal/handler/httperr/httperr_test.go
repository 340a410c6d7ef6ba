//go:build unit

package httperr_test

import (
	"errors"
	"net/http"
	"testing"

	"hotel-reservation/internal/handler/httperr"
	"hotel-reservation/internal/testsupport/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roomQuery struct {
	Nights int    `json:"nights" binding:"required,min=1"`
	Room   string `json:"room" binding:"required"`
}

func newRouter(h gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/check", h)
	return router
}

func TestAbortBadRequest(t *testing.T) {
	router := newRouter(func(c *gin.Context) {
		var q roomQuery
		if err := c.ShouldBindJSON(&q); err != nil {
			httperr.AbortBadRequest(c, err, "Invalid request")
			return
		}
		c.Status(http.StatusNoContent)
	})

	t.Run("error: validator failures listed by field", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodPost, "/check", map[string]any{"nights": 0}, "")

		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "Invalid request")
		httptest.AssertErrorDetail(t, rec, "fields", map[string]any{
			"nights": "required",
			"room":   "required",
		})
	})

	t.Run("error: malformed body has no field detail", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodPost, "/check", "not an object", "")

		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "Invalid request")
		assert.NotContains(t, rec.Body.String(), `"detail"`)
	})

	t.Run("success: valid body passes", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodPost, "/check", map[string]any{"nights": 2, "room": "101"}, "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestAbortWithError(t *testing.T) {
	t.Run("success: cause recorded on the context", func(t *testing.T) {
		cause := errors.New("store offline")
		var recorded []*gin.Error
		router := newRouter(func(c *gin.Context) {
			httperr.AbortWithError(c, http.StatusServiceUnavailable, cause, "Service temporarily unavailable", nil)
			recorded = c.Errors
		})

		rec := httptest.PerformRequest(t, router, http.MethodPost, "/check", nil, "")

		httptest.AssertErrorResponse(t, rec, http.StatusServiceUnavailable, "Service temporarily unavailable")
		require.Len(t, recorded, 1)
		assert.ErrorIs(t, recorded[0].Err, cause)
		resp, ok := recorded[0].Meta.(httperr.Response)
		require.True(t, ok)
		assert.Equal(t, http.StatusServiceUnavailable, resp.Status)
	})

	t.Run("success: nil cause falls back to the message", func(t *testing.T) {
		var recorded []*gin.Error
		router := newRouter(func(c *gin.Context) {
			httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
			recorded = c.Errors
		})

		rec := httptest.PerformRequest(t, router, http.MethodPost, "/check", nil, "")

		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Unauthorized")
		require.Len(t, recorded, 1)
		assert.EqualError(t, recorded[0].Err, "Unauthorized")
	})

	t.Run("success: reason carried in detail", func(t *testing.T) {
		router := newRouter(func(c *gin.Context) {
			httperr.AbortWithReason(c, http.StatusUnprocessableEntity, errors.New("expired"), "Coupon cannot be applied", "EXPIRED")
		})

		rec := httptest.PerformRequest(t, router, http.MethodPost, "/check", nil, "")

		httptest.AssertErrorResponse(t, rec, http.StatusUnprocessableEntity, "Coupon cannot be applied")
		httptest.AssertErrorDetail(t, rec, "reason", "EXPIRED")
	})
}

//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertHeaders compares response headers. An empty expected value means the
// header must not be set at all.
func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		if v == "" {
			assert.Empty(t, w.Header().Values(k), "header %s should be absent", k)
			continue
		}
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}

var rateLimitHeaders = []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "Retry-After"}

// AssertNoRateLimitHeaders checks a response that bypassed the limiter.
func AssertNoRateLimitHeaders(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	absent := make(map[string]string, len(rateLimitHeaders))
	for _, h := range rateLimitHeaders {
		absent[h] = ""
	}
	AssertHeaders(t, w, absent)
}

//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"testing"

	"service-desk/internal/handler/middleware"

	"github.com/stretchr/testify/assert"
)

// AssertHeaders checks response headers. An empty expected value means the
// header must be absent.
func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		if v == "" {
			assert.Empty(t, w.Header().Get(k), "header %s should be absent", k)
			continue
		}
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}

// AssertRequestID checks that sent is echoed back, or that an id was
// generated when the request carried none.
func AssertRequestID(t *testing.T, w *httptest.ResponseRecorder, sent string) {
	t.Helper()
	got := w.Header().Get(middleware.RequestIDHeader)
	if sent == "" {
		assert.NotEmpty(t, got, "request id should be generated")
		return
	}
	assert.Equal(t, sent, got)
}

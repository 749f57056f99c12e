//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertHeaders checks each wanted header. An empty value asserts the header is absent.
func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, want map[string]string) {
	t.Helper()
	for name, value := range want {
		if value == "" {
			assert.NotContainsf(t, w.Header(), name, "unexpected header %s", name)
			continue
		}
		assert.Equalf(t, value, w.Header().Get(name), "header %s", name)
	}
}

//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"visit-booking/internal/handler/httperr"

	"github.com/stretchr/testify/assert"
)

// AssertSuccessResponse checks the status and decodes a 2xx body into target when given.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, wantStatus int, target any) {
	t.Helper()

	if !assert.Equalf(t, wantStatus, w.Code, "body: %s", w.Body.String()) {
		return
	}
	if target == nil || w.Code < 200 || w.Code >= 300 {
		return
	}
	assert.NoErrorf(t, json.Unmarshal(w.Body.Bytes(), target), "body: %s", w.Body.String())
}

// AssertErrorResponse checks the status and that the error envelope message
// contains wantMsg. The decoded envelope is returned for detail checks.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, wantStatus int, wantMsg string) httperr.Response {
	t.Helper()

	assert.Equalf(t, wantStatus, w.Code, "body: %s", w.Body.String())

	var resp httperr.Response
	if !assert.NoErrorf(t, json.Unmarshal(w.Body.Bytes(), &resp), "error envelope expected, got: %s", w.Body.String()) {
		return resp
	}
	resp.Status = w.Code
	if wantMsg != "" {
		assert.Contains(t, resp.Error.Message, wantMsg)
	}
	return resp
}

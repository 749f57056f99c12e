package middleware

import (
	"log/slog"
	"net/http"

	"visit-booking/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

const internalErrorMessage = "Internal server error"

// ErrorHandler renders the envelope for errors recorded by httperr.AbortWithError.
// A handler that already wrote its response is left alone.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}

		resp, ok := httperr.FromContext(c)
		if !ok {
			resp = httperr.Response{Status: http.StatusInternalServerError}
			resp.Error.Message = internalErrorMessage
		}
		if resp.Status >= http.StatusInternalServerError {
			slog.Error("request failed",
				"error", c.Errors.Last().Err,
				"status", resp.Status,
				"path", c.Request.URL.Path,
				"request_id", GetRequestID(c),
			)
		}
		c.JSON(resp.Status, resp)
	}
}

// CustomRecovery turns a panic into a 500 envelope.
func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("recovered from panic", "error", rec, "path", c.Request.URL.Path, "request_id", GetRequestID(c))

				resp := httperr.Response{Status: http.StatusInternalServerError}
				resp.Error.Message = internalErrorMessage
				c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
			}
		}()
		c.Next()
	}
}

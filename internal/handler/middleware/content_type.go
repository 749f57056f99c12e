package middleware

import (
	"errors"
	"mime"
	"net/http"

	"visit-booking/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

var errUnsupportedMediaType = errors.New("unsupported media type")

// RequireJSON rejects requests whose Content-Type is not application/json.
// It is chained per route, so it aborts instead of calling c.Next.
func RequireJSON() gin.HandlerFunc {
	return func(c *gin.Context) {
		mediaType, _, err := mime.ParseMediaType(c.GetHeader("Content-Type"))
		if err != nil || mediaType != gin.MIMEJSON {
			httperr.AbortWithError(c, http.StatusUnsupportedMediaType, errUnsupportedMediaType, "Unsupported Media Type", nil)
		}
	}
}

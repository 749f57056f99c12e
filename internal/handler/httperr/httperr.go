package httperr

import (
	"net/http"

	"visit-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// AbortWithError records err on the context and stops the chain. The body is
// written once by middleware.ErrorHandler from the recorded Response.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.Status(status)
	c.Abort()
}

// FromContext returns the most recently recorded Response, if any.
func FromContext(c *gin.Context) (Response, bool) {
	for i := len(c.Errors) - 1; i >= 0; i-- {
		ge := c.Errors[i]
		if !ge.IsType(gin.ErrorTypePublic) {
			continue
		}
		if resp, ok := ge.Meta.(Response); ok {
			return resp, true
		}
	}
	return Response{}, false
}

// StatusFor maps an error category to its HTTP status.
func StatusFor(err error) int {
	switch {
	case errs.IsValidation(err):
		return http.StatusBadRequest
	case errs.IsNotFound(err):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

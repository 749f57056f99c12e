package middleware

import (
	"log/slog"
	"net/http"
	"slices"

	"visit-booking/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	if slices.Contains(cfg.AllowOrigins, "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowOrigins
	}
	slog.Info("CORS middleware initialized", "AllowOrigins", cfg.AllowOrigins)
	return cors.New(corsCfg)
}

// Preflight answers every OPTIONS request with 204, including requests without
// an Origin header that the CORS middleware lets through.
func Preflight(cfg config.CORSConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodOptions {
			c.Next()
			return
		}
		h := c.Writer.Header()
		if h.Get("Access-Control-Allow-Origin") == "" && slices.Contains(cfg.AllowOrigins, "*") {
			h.Set("Access-Control-Allow-Origin", "*")
		}
		h.Set("Allow", "OPTIONS, GET, POST")
		c.AbortWithStatus(http.StatusNoContent)
	}
}

package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"visit-booking/internal/handler/api"
	"visit-booking/internal/handler/httperr"
	"visit-booking/internal/handler/middleware"
	"visit-booking/internal/pkg/config"
)

var errMethodNotAllowed = errors.New("method not allowed")

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, reservationHandler *api.ReservationHandler) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, reservationHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.Preflight(cfg.CORS))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, reservationHandler *api.ReservationHandler) {
	// Unknown paths and known paths with the wrong method both answer 405.
	engine.HandleMethodNotAllowed = true
	engine.NoRoute(methodNotAllowed)
	engine.NoMethod(methodNotAllowed)

	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addRoutes(&engine.RouterGroup, []route{
		{Method: http.MethodPost, Path: "/add-reservation", Handler: reservationHandler.AddReservation, Mw: []gin.HandlerFunc{middleware.RequireJSON()}},
		{Method: http.MethodPost, Path: "/cancel-reservation", Handler: reservationHandler.CancelReservation},
		{Method: http.MethodGet, Path: "/lookup-reservations", Handler: reservationHandler.LookupReservations},
		{Method: http.MethodGet, Path: "/check-availability", Handler: reservationHandler.CheckAvailability},
	})
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func methodNotAllowed(c *gin.Context) {
	httperr.AbortWithError(c, http.StatusMethodNotAllowed, errMethodNotAllowed, "Method Not Allowed", nil)
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}

package handler

import (
	"net/http"

	"campus-booking/internal/handler/api"
	"campus-booking/internal/handler/middleware"
	"campus-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	authMiddleware *middleware.AuthMiddleware,
	authHandler *api.AuthHandler,
	reservationHandler *api.ReservationHandler,
	seatHandler *api.SeatHandler,
	availabilityHandler *api.AvailabilityHandler,
) {
	setupMiddleware(engine, cfg, logger, authMiddleware)
	setupRoutes(engine, authMiddleware, authHandler, reservationHandler, seatHandler, availabilityHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, authMiddleware *middleware.AuthMiddleware) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
	engine.Use(authMiddleware.Authenticate())
}

func setupRoutes(
	engine *gin.Engine,
	authMiddleware *middleware.AuthMiddleware,
	authHandler *api.AuthHandler,
	reservationHandler *api.ReservationHandler,
	seatHandler *api.SeatHandler,
	availabilityHandler *api.AvailabilityHandler,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireSession := authMiddleware.RequireSession()

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/auth"), []route{
			{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			{Method: http.MethodGet, Path: "/session", Handler: authHandler.Session},
			{Method: http.MethodPost, Path: "/extend", Handler: authHandler.Extend},
			{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/availability", Handler: availabilityHandler.Availability},
			{Method: http.MethodGet, Path: "/resources", Handler: availabilityHandler.Resources},
			{Method: http.MethodGet, Path: "/schedules", Handler: availabilityHandler.Schedule},
		})

		addRoutes(apiGroup.Group("/reservations"), []route{
			{Method: http.MethodGet, Path: "", Handler: reservationHandler.ByDate},
			{Method: http.MethodPost, Path: "", Handler: reservationHandler.Create, Mw: []gin.HandlerFunc{requireSession}},
			{Method: http.MethodGet, Path: "/mine", Handler: reservationHandler.Mine, Mw: []gin.HandlerFunc{requireSession}},
			{Method: http.MethodDelete, Path: "/:id", Handler: reservationHandler.Cancel, Mw: []gin.HandlerFunc{requireSession}},
			{Method: http.MethodPost, Path: "/:id/decision", Handler: reservationHandler.Decide, Mw: []gin.HandlerFunc{requireSession}},
		})

		addRoutes(apiGroup.Group("/seats"), []route{
			{Method: http.MethodGet, Path: "", Handler: seatHandler.Board},
			{Method: http.MethodPost, Path: "/:number/check-in", Handler: seatHandler.CheckIn, Mw: []gin.HandlerFunc{requireSession}},
			{Method: http.MethodPost, Path: "/:number/check-out", Handler: seatHandler.CheckOut, Mw: []gin.HandlerFunc{requireSession}},
		})
	}
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

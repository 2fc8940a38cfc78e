package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"booking-calendar/internal/handler/api"
	"booking-calendar/internal/handler/middleware"
	"booking-calendar/internal/pkg/config"
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
	authHandler *api.AuthHandler,
	reservationHandler *api.ReservationHandler,
	calendarHandler *api.CalendarHandler,
	statsHandler *api.StatsHandler,
	transferHandler *api.TransferHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, reservationHandler, calendarHandler, statsHandler, transferHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	reservationHandler *api.ReservationHandler,
	calendarHandler *api.CalendarHandler,
	statsHandler *api.StatsHandler,
	transferHandler *api.TransferHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})
		}

		reservations := apiGroup.Group("/reservations")
		{
			viewing := reservations.Group("")
			viewing.Use(authMiddleware.OptionalEditor())
			addRoutes(viewing, []route{
				{Method: http.MethodGet, Path: "", Handler: reservationHandler.ListReservations},
				{Method: http.MethodGet, Path: "/export", Handler: transferHandler.Export},
				{Method: http.MethodGet, Path: "/:id", Handler: reservationHandler.GetReservation},
			})

			editing := reservations.Group("")
			editing.Use(authMiddleware.RequireEditor())
			addRoutes(editing, []route{
				{Method: http.MethodPost, Path: "", Handler: reservationHandler.CreateReservation},
				{Method: http.MethodPut, Path: "/:id", Handler: reservationHandler.UpdateReservation},
				{Method: http.MethodDelete, Path: "/:id", Handler: reservationHandler.DeleteReservation},
				{Method: http.MethodPost, Path: "/bulk-delete", Handler: reservationHandler.BulkDeleteReservations},
				{Method: http.MethodDelete, Path: "", Handler: reservationHandler.ClearReservations},
				{Method: http.MethodPost, Path: "/import", Handler: transferHandler.Import},
			})
		}

		calendar := apiGroup.Group("/calendar")
		calendar.Use(authMiddleware.OptionalEditor())
		{
			addRoutes(calendar, []route{
				{Method: http.MethodGet, Path: "/grid", Handler: calendarHandler.GetGrid},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/stats", Handler: statsHandler.GetStats},
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

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"range-booking/internal/handler/api"
	"range-booking/internal/handler/middleware"
	"range-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Booking  *api.BookingHandler
	Audit    *api.AuditHandler
	Resource *api.ResourceHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	actor := []gin.HandlerFunc{middleware.RequireActor()}

	apiGroup := engine.Group("/api")
	{
		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Create, Mw: actor},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
				{Method: http.MethodPost, Path: "/:id/approve", Handler: h.Booking.Approve, Mw: actor},
				{Method: http.MethodPost, Path: "/:id/deny", Handler: h.Booking.Deny, Mw: actor},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Booking.Cancel, Mw: actor},
				{Method: http.MethodPost, Path: "/:id/override-approve", Handler: h.Booking.OverrideApprove, Mw: actor},
				{Method: http.MethodPost, Path: "/:id/override-bump", Handler: h.Booking.OverrideBump, Mw: actor},
				{Method: http.MethodPost, Path: "/:id/reschedule", Handler: h.Booking.Reschedule, Mw: actor},
				{Method: http.MethodGet, Path: "/:id/suggestions", Handler: h.Booking.Suggestions},
				{Method: http.MethodGet, Path: "/:id/audit", Handler: h.Audit.Trail},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/conflicts", Handler: h.Booking.CheckConflicts},
			{Method: http.MethodGet, Path: "/audit", Handler: h.Audit.Search},
			{Method: http.MethodGet, Path: "/resources/:id/bookings", Handler: h.Resource.ListBookings},
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

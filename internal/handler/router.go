package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"slotbook/internal/domain/user"
	"slotbook/internal/handler/api"
	"slotbook/internal/handler/middleware"
	"slotbook/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth          *api.AuthHandler
	Availability  *api.AvailabilityHandler
	Appointment   *api.AppointmentHandler
	Service       *api.ServiceHandler
	TimeOff       *api.TimeOffHandler
	BusinessHours *api.BusinessHoursHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		// Guest-facing routes: no authentication so visitors can browse and book
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/availability", Handler: h.Availability.GetDayAvailability},
			{Method: http.MethodGet, Path: "/services", Handler: h.Service.List},
			{Method: http.MethodGet, Path: "/services/:id", Handler: h.Service.Get},
			{Method: http.MethodPost, Path: "/appointments", Handler: h.Appointment.Book},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth())
		{
			staff := authMiddleware.RequireRoleAtLeast(user.RoleStaff)
			adminOnly := authMiddleware.RequireRoleAtLeast(user.RoleAdmin)

			appointments := admin.Group("/appointments")
			{
				addRoutes(appointments, []route{
					{Method: http.MethodGet, Path: "", Handler: h.Appointment.List, Mw: []gin.HandlerFunc{staff}},
					{Method: http.MethodGet, Path: "/:id", Handler: h.Appointment.Get, Mw: []gin.HandlerFunc{staff}},
					{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Appointment.Cancel, Mw: []gin.HandlerFunc{staff}},
					{Method: http.MethodPost, Path: "/:id/complete", Handler: h.Appointment.Complete, Mw: []gin.HandlerFunc{staff}},
					{Method: http.MethodPost, Path: "/:id/no-show", Handler: h.Appointment.MarkNoShow, Mw: []gin.HandlerFunc{staff}},
				})
			}

			timeOff := admin.Group("/time-off")
			{
				addRoutes(timeOff, []route{
					{Method: http.MethodGet, Path: "", Handler: h.TimeOff.List, Mw: []gin.HandlerFunc{staff}},
					{Method: http.MethodPost, Path: "", Handler: h.TimeOff.Create, Mw: []gin.HandlerFunc{adminOnly}},
					{Method: http.MethodPatch, Path: "/:id", Handler: h.TimeOff.Update, Mw: []gin.HandlerFunc{adminOnly}},
					{Method: http.MethodDelete, Path: "/:id", Handler: h.TimeOff.Delete, Mw: []gin.HandlerFunc{adminOnly}},
				})
			}

			hours := admin.Group("/business-hours")
			{
				addRoutes(hours, []route{
					{Method: http.MethodGet, Path: "", Handler: h.BusinessHours.GetWeek, Mw: []gin.HandlerFunc{staff}},
					{Method: http.MethodPut, Path: "", Handler: h.BusinessHours.ReplaceWeek, Mw: []gin.HandlerFunc{adminOnly}},
				})
			}
		}
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

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"beautypro/internal/handler/api"
	"beautypro/internal/handler/middleware"
	"beautypro/internal/pkg/config"
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
	catalogHandler *api.CatalogHandler,
	masterHandler *api.MasterHandler,
	appointmentHandler *api.AppointmentHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, catalogHandler, masterHandler, appointmentHandler, authMiddleware)
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
	catalogHandler *api.CatalogHandler,
	masterHandler *api.MasterHandler,
	appointmentHandler *api.AppointmentHandler,
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
				{Method: http.MethodPost, Path: "/register", Handler: authHandler.Register},
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/professions", Handler: catalogHandler.ListProfessions},
			{Method: http.MethodGet, Path: "/services", Handler: catalogHandler.ListServices},
			{Method: http.MethodGet, Path: "/services/:id", Handler: catalogHandler.GetService},
			{Method: http.MethodGet, Path: "/services/:id/masters", Handler: catalogHandler.ListServiceMasters},
			{Method: http.MethodGet, Path: "/masters", Handler: masterHandler.ListMasters},
			{Method: http.MethodGet, Path: "/masters/:id", Handler: masterHandler.GetMaster},
		})

		admin := []gin.HandlerFunc{authMiddleware.RequireAuth(), authMiddleware.RequireAdmin()}
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/services", Handler: catalogHandler.CreateService, Mw: admin},
			{Method: http.MethodPatch, Path: "/services/:id", Handler: catalogHandler.UpdateService, Mw: admin},
			{Method: http.MethodDelete, Path: "/services/:id", Handler: catalogHandler.DeleteService, Mw: admin},
			{Method: http.MethodPost, Path: "/masters", Handler: masterHandler.CreateMaster, Mw: admin},
			{Method: http.MethodPatch, Path: "/masters/:id", Handler: masterHandler.UpdateMaster, Mw: admin},
			{Method: http.MethodPut, Path: "/masters/:id/services", Handler: masterHandler.AssignServices, Mw: admin},
			{Method: http.MethodDelete, Path: "/masters/:id", Handler: masterHandler.DeactivateMaster, Mw: admin},
			{Method: http.MethodPost, Path: "/appointments/:id/complete", Handler: appointmentHandler.CompleteAppointment, Mw: admin},
		})

		authed := apiGroup.Group("")
		authed.Use(authMiddleware.RequireAuth())
		addRoutes(authed, []route{
			{Method: http.MethodGet, Path: "/availability", Handler: appointmentHandler.GetAvailability},
			{Method: http.MethodPost, Path: "/appointments", Handler: appointmentHandler.CreateAppointment},
			{Method: http.MethodGet, Path: "/appointments", Handler: appointmentHandler.ListAppointments},
			{Method: http.MethodDelete, Path: "/appointments/:id", Handler: appointmentHandler.CancelAppointment},
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

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"booking-wizard/internal/handler/api"
	"booking-wizard/internal/handler/middleware"
	"booking-wizard/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, wizardHandler *api.WizardHandler, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, wizardHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, wizardHandler *api.WizardHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		sessions := apiGroup.Group("/sessions")
		// Identity is resolved but never required: anonymous callers run
		// the wizard as guests, staff tokens unlock the confirm-only path.
		sessions.Use(authMiddleware.ResolvePrincipal())
		{
			addRoutes(sessions, []route{
				{Method: http.MethodPost, Path: "", Handler: wizardHandler.CreateSession},
				{Method: http.MethodGet, Path: "/:id", Handler: wizardHandler.GetSession},
				{Method: http.MethodPost, Path: "/:id/category", Handler: wizardHandler.SelectCategory},
				{Method: http.MethodPost, Path: "/:id/room", Handler: wizardHandler.SelectRoom},
				{Method: http.MethodPost, Path: "/:id/service", Handler: wizardHandler.SelectService},
				{Method: http.MethodPost, Path: "/:id/date", Handler: wizardHandler.SelectDate},
				{Method: http.MethodGet, Path: "/:id/slots", Handler: wizardHandler.GetSlots},
				{Method: http.MethodPost, Path: "/:id/slots/refresh", Handler: wizardHandler.RefreshSlots},
				{Method: http.MethodPost, Path: "/:id/slots/toggle", Handler: wizardHandler.ToggleSlot},
				{Method: http.MethodPost, Path: "/:id/people", Handler: wizardHandler.SetPeople},
				{Method: http.MethodPost, Path: "/:id/promo", Handler: wizardHandler.SetPromoCode},
				{Method: http.MethodGet, Path: "/:id/quote", Handler: wizardHandler.GetQuote},
				{Method: http.MethodPost, Path: "/:id/step", Handler: wizardHandler.Navigate},
				{Method: http.MethodPost, Path: "/:id/submit", Handler: wizardHandler.Submit},
			})
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

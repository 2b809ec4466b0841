package routes

import (
	"net/http"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"sourcing-system/internal/controllers"
	"sourcing-system/internal/listeners"
	"sourcing-system/internal/repositories"
	"sourcing-system/internal/services"
	"sourcing-system/internal/upstream"
	"sourcing-system/pkg/config"
	"sourcing-system/pkg/eventbus"
	"sourcing-system/pkg/middleware"
	"sourcing-system/pkg/service"
	"sourcing-system/pkg/websocket"
)

// Loggers groups the named sub-loggers the routers hand to their components.
type Loggers struct {
	Main     *zap.Logger
	Auth     *zap.Logger
	Workflow *zap.Logger
}

// InitRouter wires repositories, services and controllers and mounts every
// route. It returns the workflow service so main can hand it to the poller.
func InitRouter(
	e *echo.Echo,
	redisClient *redis.Client,
	provider upstream.Provider,
	jwtSvc service.JWTService,
	loggers *Loggers,
	bus *eventbus.Bus,
	hub *websocket.Hub,
	cfg *config.Config,
) *services.WorkflowService {
	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, loggers.Auth)

	// Repositories.
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	// Services.
	workflowService := services.NewWorkflowService(provider, cacheRepo, bus, loggers.Workflow, cfg.StatusCacheTTL)
	onboardingService := services.NewOnboardingService(cacheRepo, loggers.Main, cfg.OnboardingTTL)

	// Listeners.
	statusListener := listeners.NewStatusListener(hub, loggers.Main)
	statusListener.Register(bus)

	// Controllers.
	workflowController := controllers.NewWorkflowController(workflowService, loggers.Workflow)
	onboardingController := controllers.NewOnboardingController(onboardingService, loggers.Main)
	websocketController := controllers.NewWebsocketController(hub, loggers.Main)

	// Routers.
	secureGroup := api.Group("", authMW.Auth)
	runWorkflowRouter(secureGroup, workflowController, authMW)
	runOnboardingRouter(secureGroup, onboardingController)

	e.GET("/ws", websocketController.Serve, authMW.Auth)
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	loggers.Main.Info("routes mounted")
	return workflowService
}

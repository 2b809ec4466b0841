package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"sourcing-system/internal/poller"
	"sourcing-system/internal/routes"
	"sourcing-system/internal/upstream"
	"sourcing-system/pkg/config"
	apperrors "sourcing-system/pkg/errors"
	"sourcing-system/pkg/eventbus"
	applogger "sourcing-system/pkg/logger"
	"sourcing-system/pkg/service"
	"sourcing-system/pkg/utils"
	"sourcing-system/pkg/websocket"
)

func main() {
	e := echo.New()
	logger := applogger.NewLogger()
	defer logger.Sync()

	cfg := config.New()

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("panic recovered",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "internal server error", err, nil)
				_ = utils.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	e.Validator = utils.NewValidator(validator.New())

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logger.Fatal("failed to connect to Redis",
			zap.Error(err), zap.String("address", cfg.Redis.Address))
	}

	jwtSvc := service.NewJWTService(cfg.JWT.SecretKey, logger.Named("jwt"))
	provider := upstream.New(cfg.Upstream.BaseURL, cfg.Upstream.ServiceToken, cfg.Upstream.Timeout, logger)
	bus := eventbus.New(logger.Named("eventbus"))

	hub := websocket.NewHub(logger.Named("websocket"))
	go hub.Run()

	loggers := &routes.Loggers{
		Main:     logger,
		Auth:     logger.Named("auth"),
		Workflow: logger.Named("workflow"),
	}
	workflowService := routes.InitRouter(e, redisClient, provider, jwtSvc, loggers, bus, hub, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	statusPoller := poller.New(workflowService, cfg.Upstream.PollInterval, logger)
	go statusPoller.Run(ctx)

	logger.Info("server listening", zap.String("port", cfg.Server.Port))
	if err := e.Start(":" + cfg.Server.Port); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server failed to start", zap.Error(err))
	}
}

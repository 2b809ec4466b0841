package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"sourcing-system/internal/dto"
	"sourcing-system/internal/services"
	apperrors "sourcing-system/pkg/errors"
	"sourcing-system/pkg/utils"
)

type OnboardingController struct {
	onboardingService services.OnboardingServiceInterface
	logger            *zap.Logger
}

func NewOnboardingController(onboardingService services.OnboardingServiceInterface, logger *zap.Logger) *OnboardingController {
	return &OnboardingController{onboardingService: onboardingService, logger: logger}
}

func (c *OnboardingController) GetFlags(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	userID, err := utils.UserIDFromContext(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	flags, err := c.onboardingService.GetFlags(reqCtx, userID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, flags, "onboarding flags retrieved", http.StatusOK)
}

func (c *OnboardingController) UpdateFlags(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	userID, err := utils.UserIDFromContext(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var update dto.UpdateOnboardingFlagsDTO
	if err := ctx.Bind(&update); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&update); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	flags, err := c.onboardingService.UpdateFlags(reqCtx, userID, update)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, flags, "onboarding flags updated", http.StatusOK)
}

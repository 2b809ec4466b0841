package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"sourcing-system/internal/services"
	apperrors "sourcing-system/pkg/errors"
	"sourcing-system/pkg/utils"
)

type WorkflowController struct {
	workflowService services.WorkflowServiceInterface
	logger          *zap.Logger
}

func NewWorkflowController(workflowService services.WorkflowServiceInterface, logger *zap.Logger) *WorkflowController {
	return &WorkflowController{workflowService: workflowService, logger: logger}
}

// GetMyRequests returns the authenticated buyer's requests with their
// canonical workflow statuses.
func (c *WorkflowController) GetMyRequests(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	buyerID, err := utils.UserIDFromContext(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.workflowService.ListBuyerRequests(reqCtx, buyerID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "requests retrieved", http.StatusOK)
}

// GetRequestStatus returns the tracker projection of a single request.
func (c *WorkflowController) GetRequestStatus(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	cartID := ctx.Param("id")
	if cartID == "" {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "request id is required", apperrors.ErrBadRequest, nil),
			c.logger,
		)
	}

	res, err := c.workflowService.RequestStatus(reqCtx, cartID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "request status retrieved", http.StatusOK)
}

// GetSalesPipeline returns the sales-scoped projection of every request.
func (c *WorkflowController) GetSalesPipeline(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	res, err := c.workflowService.ListSalesPipeline(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "sales pipeline retrieved", http.StatusOK)
}

// GetOpsQueue returns the fulfillment queue for operations.
func (c *WorkflowController) GetOpsQueue(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	res, err := c.workflowService.ListOpsQueue(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "operations queue retrieved", http.StatusOK)
}

// GetOrderTransitions returns the allowed next fulfillment statuses of an
// order, for rendering action buttons.
func (c *WorkflowController) GetOrderTransitions(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	orderID := ctx.Param("id")
	if orderID == "" {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "order id is required", apperrors.ErrBadRequest, nil),
			c.logger,
		)
	}

	res, err := c.workflowService.OrderTransitions(reqCtx, orderID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "order transitions retrieved", http.StatusOK)
}

package routes

import (
	"github.com/labstack/echo/v4"

	"sourcing-system/internal/controllers"
	"sourcing-system/pkg/middleware"
	"sourcing-system/pkg/service"
)

func runWorkflowRouter(g *echo.Group, ctrl *controllers.WorkflowController, authMW *middleware.AuthMiddleware) {
	g.GET("/workflow/requests", ctrl.GetMyRequests)
	g.GET("/workflow/requests/:id", ctrl.GetRequestStatus)

	g.GET("/workflow/sales/pipeline", ctrl.GetSalesPipeline,
		authMW.RequireRole(service.RoleSales))
	g.GET("/workflow/ops/queue", ctrl.GetOpsQueue,
		authMW.RequireRole(service.RoleOperations))
	g.GET("/orders/:id/transitions", ctrl.GetOrderTransitions,
		authMW.RequireRole(service.RoleOperations, service.RoleSales))
}

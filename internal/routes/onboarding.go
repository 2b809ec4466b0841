package routes

import (
	"github.com/labstack/echo/v4"

	"sourcing-system/internal/controllers"
)

func runOnboardingRouter(g *echo.Group, ctrl *controllers.OnboardingController) {
	g.GET("/onboarding", ctrl.GetFlags)
	g.PUT("/onboarding", ctrl.UpdateFlags)
}

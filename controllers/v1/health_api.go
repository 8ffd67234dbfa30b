package apiv1

import (
	"onboarding-backend/controllers"
	apimodels "onboarding-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

type healthApiController struct {
	controllers.BaseAPIController
	ping func() error
}

// InitHealthRouters registers GET /health; ping checks the database.
func InitHealthRouters(app *fiber.App, ping func() error) {
	controller := healthApiController{ping: ping}
	app.Get("health", controller.health)
}

// @Summary Health check
// @Tags Health
// @Success 200 {object} apimodels.HealthResponse
// @Failure 500 {object} apimodels.Response
// @router /health [get]
func (c *healthApiController) health(ctx *fiber.Ctx) error {
	if err := c.ping(); err != nil {
		c.GetLogger(ctx).WithError(err).Error("database ping failed")
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("Database unavailable."))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.HealthResponse{Status: "ok"})
}

package apiv1

import (
	"onboarding-backend/controllers"
	candidateauthhandler "onboarding-backend/lib/candidate-auth"
	staffauthhandler "onboarding-backend/lib/staff/auth"
	apimodels "onboarding-backend/models/api"
	authapimodels "onboarding-backend/models/api/auth"

	"github.com/gofiber/fiber/v2"
)

type authApiController struct {
	controllers.BaseAPIController
}

func InitAuthApiRouters(app *fiber.App) {
	controller := authApiController{}
	app.Route("auth", func(router fiber.Router) {
		router.Post("login", controller.login)
		router.Post("candidate", controller.candidateLogin)
	})
}

// @Summary Staff login
// @Tags Authentication
// @Description Login for hr, it, finance and admin users
// @Param	body				body		authapimodels.LoginRequest	true	"request body"
// @Success 200 {object} authapimodels.StaffLoginResponse
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/auth/login [post]
func (c *authApiController) login(ctx *fiber.Ctx) error {
	var payload authapimodels.LoginRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := staffauthhandler.Instance.Login(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Login failed.")
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// @Summary Candidate sign-in
// @Tags Authentication
// @Description Signs a candidate in, creating the account on first use
// @Param	body				body		authapimodels.LoginRequest	true	"request body"
// @Success 200 {object} authapimodels.CandidateLoginResponse
// @Success 201 {object} authapimodels.CandidateLoginResponse
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/auth/candidate [post]
func (c *authApiController) candidateLogin(ctx *fiber.Ctx) error {
	var payload authapimodels.LoginRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, created, err := candidateauthhandler.Instance.Login(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Candidate login failed.")
	}
	if created {
		return ctx.Status(fiber.StatusCreated).JSON(resp)
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

package middleware

import (
	"onboarding-backend/models"
	apimodels "onboarding-backend/models/api"
	candidateapimodels "onboarding-backend/models/api/candidate"

	"github.com/gofiber/fiber/v2"
)

func GetActor(ctx *fiber.Ctx) candidateapimodels.Actor {
	if actor, ok := ctx.Locals(actorKey).(candidateapimodels.Actor); ok {
		return actor
	}
	return candidateapimodels.Actor{Role: models.CandidateRole}
}

func AdminRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if !GetActor(ctx).Role.IsAdmin() {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("Admin role required."))
		}
		return ctx.Next()
	}
}

package middleware

import (
	authutils "onboarding-backend/lib/utils/auth-utils"
	"onboarding-backend/models"
	apimodels "onboarding-backend/models/api"
	candidateapimodels "onboarding-backend/models/api/candidate"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const actorKey = "actor"

// ResolveRole sets the request actor. A bearer token is verified and wins; without one
// the role comes from ?role= or x-role when trustClientRole is on, candidate otherwise.
func ResolveRole(jwtSecret string, trustClientRole bool) fiber.Handler {
	verify := jwtware.New(jwtware.Config{
		Claims: jwt.MapClaims{},
		SigningKey: jwtware.SigningKey{
			JWTAlg: "HS256",
			Key:    []byte(jwtSecret),
		},
		SuccessHandler: func(ctx *fiber.Ctx) error {
			ctx.Locals(actorKey, candidateapimodels.Actor{
				Role:      models.ParseUserRole(string(authutils.GetRole(ctx))),
				SubjectID: authutils.GetSubject(ctx),
			})
			return ctx.Next()
		},
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("Invalid or expired token."))
		},
	})
	return func(ctx *fiber.Ctx) error {
		if ctx.Get(fiber.HeaderAuthorization) != "" {
			return verify(ctx)
		}
		actor := candidateapimodels.Actor{Role: models.CandidateRole}
		if trustClientRole {
			role := ctx.Query("role")
			if role == "" {
				role = ctx.Get("x-role")
			}
			actor.Role = models.ParseUserRole(role)
		}
		ctx.Locals(actorKey, actor)
		return ctx.Next()
	}
}

package apiv1

import (
	authutils "onboarding-backend/lib/utils/auth-utils"
	"onboarding-backend/models"
	authapimodels "onboarding-backend/models/api/auth"
	dbmodels "onboarding-backend/models/db"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestStaffLoginApi(t *testing.T) {
	env := newTestEnv(t, false)
	passwordHash, err := authutils.HashPassword("demo123!")
	require.Nil(t, err)
	_, err = env.staff.Create(dbmodels.StaffUser{Name: "HR User", Email: "hr@eq.kz", Role: models.HrRole, PasswordHash: passwordHash})
	require.Nil(t, err)

	t.Run(`missing fields check`, func(t *testing.T) {
		resp, body := env.do(t, request{
			method: fiber.MethodPost,
			target: "/api/auth/login",
			body:   authapimodels.LoginRequest{Email: "hr@eq.kz"},
		})
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		var fail failBody
		decode(t, body, &fail)
		require.Equal(t, "Email and password are required.", fail.Message)
	})

	t.Run(`wrong password check`, func(t *testing.T) {
		resp, body := env.do(t, request{
			method: fiber.MethodPost,
			target: "/api/auth/login",
			body:   authapimodels.LoginRequest{Email: "hr@eq.kz", Password: "nope"},
		})
		require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		var fail failBody
		decode(t, body, &fail)
		require.Equal(t, "Invalid credentials.", fail.Message)
	})

	t.Run(`token grants staff role check`, func(t *testing.T) {
		resp, body := env.do(t, request{
			method: fiber.MethodPost,
			target: "/api/auth/login",
			body:   authapimodels.LoginRequest{Email: "HR@eq.kz", Password: "demo123!"},
		})
		require.Equal(t, fiber.StatusOK, resp.StatusCode, string(body))
		var login authapimodels.StaffLoginResponse
		decode(t, body, &login)
		require.Equal(t, models.HrRole, login.Role)
		require.NotEmpty(t, login.Token)

		id := submitted(t, env, "lee@example.com")
		resp, body = env.do(t, request{
			method: fiber.MethodPatch,
			target: "/api/candidates/" + id + "/approve",
			body:   map[string]interface{}{"hrApproval": map[string]interface{}{"approved": true}},
			token:  login.Token,
		})
		require.Equal(t, fiber.StatusOK, resp.StatusCode, string(body))
	})
}

package authutils

import (
	"onboarding-backend/models"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// TokenIssuer signs access tokens carrying the caller role.
type TokenIssuer struct {
	Secret   []byte
	ExpireIn time.Duration
}

func NewTokenIssuer(secret string, expireInSec int) TokenIssuer {
	return TokenIssuer{
		Secret:   []byte(secret),
		ExpireIn: time.Second * time.Duration(expireInSec),
	}
}

func (t TokenIssuer) GetToken(subjectID, name string, role models.UserRole) (tokenString string, err error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"name": name,
		"sub":  subjectID,
		"role": string(role),
		"exp":  now.Add(t.ExpireIn).Unix(),
		"iat":  now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.Secret)
}

func GetClaims(ctx *fiber.Ctx) jwt.MapClaims {
	token, ok := ctx.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return jwt.MapClaims{}
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return jwt.MapClaims{}
	}
	return claims
}

func GetSubject(ctx *fiber.Ctx) string {
	if sub, ok := GetClaims(ctx)["sub"].(string); ok {
		return sub
	}
	return ""
}

func GetRole(ctx *fiber.Ctx) models.UserRole {
	if role, ok := GetClaims(ctx)["role"].(string); ok && role != "" {
		return models.UserRole(role)
	}
	return ""
}

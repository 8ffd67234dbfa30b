package authapimodels

import (
	"net/mail"
	"onboarding-backend/lib/apperr"
	"onboarding-backend/models"
	"strings"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" || r.Password == "" {
		return apperr.NewValidation("Email and password are required.")
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return apperr.NewValidation("Email has invalid format.")
	}
	return nil
}

func (r LoginRequest) NormalizedEmail() string {
	return NormalizeEmail(r.Email)
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// StaffLoginResponse is returned by /auth/login.
type StaffLoginResponse struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Email string          `json:"email"`
	Role  models.UserRole `json:"role"`
	Token string          `json:"token"`
}

// CandidateLoginResponse is returned by /auth/candidate.
type CandidateLoginResponse struct {
	ID       string                 `json:"id"`
	Email    string                 `json:"email"`
	FullName string                 `json:"fullName"`
	Status   models.CandidateStatus `json:"status"`
	Token    string                 `json:"token"`
}

package dbmodels

import (
	"onboarding-backend/models"
	"time"

	"github.com/pkg/errors"
)

type StaffUser struct {
	BaseModel
	Name         string          `gorm:"type:varchar(255)"`
	Email        string          `gorm:"type:varchar(255);uniqueIndex"`
	Role         models.UserRole `gorm:"type:varchar(20)"`
	PasswordHash string          `gorm:"type:varchar(128)"`
	LastLogin    *time.Time
}

func (u StaffUser) Validate() error {
	if u.Email == "" {
		return errors.New("email is not set")
	}
	if !u.Role.IsStaff() {
		return errors.Errorf("role %q is not an internal role", u.Role)
	}
	return nil
}

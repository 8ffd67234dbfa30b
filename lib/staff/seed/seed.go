// Package staffseed creates the fixed internal accounts of a fresh installation.
// Development convenience only: every account gets the same configured password.
package staffseed

import (
	"onboarding-backend/lib/apperr"
	staffstore "onboarding-backend/lib/staff/store"
	authutils "onboarding-backend/lib/utils/auth-utils"
	"onboarding-backend/models"
	dbmodels "onboarding-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var DefaultUsers = []dbmodels.StaffUser{
	{Name: "HR User", Email: "hr@eq.kz", Role: models.HrRole},
	{Name: "IT User", Email: "it@eq.kz", Role: models.ItRole},
	{Name: "Finance User", Email: "finance@eq.kz", Role: models.FinanceRole},
	{Name: "Admin User", Email: "admin@eq.kz", Role: models.AdminRole},
}

// EnsureUsers seeds DefaultUsers when the directory is empty. Returns the number created.
func EnsureUsers(store staffstore.Provider, defaultPassword string) (int, error) {
	count, err := store.Count()
	if err != nil {
		return 0, errors.Wrap(err, "count staff users")
	}
	if count > 0 {
		return 0, nil
	}
	if defaultPassword == "" {
		return 0, apperr.NewValidation("default password is not set")
	}
	passwordHash, err := authutils.HashPassword(defaultPassword)
	if err != nil {
		return 0, err
	}
	created := 0
	for _, user := range DefaultUsers {
		user.PasswordHash = passwordHash
		if _, err = store.Create(user); err != nil {
			return created, errors.Wrapf(err, "create staff user %s", user.Email)
		}
		created++
	}
	log.WithField("count", created).Info("default staff users created")
	return created, nil
}

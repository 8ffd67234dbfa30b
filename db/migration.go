package db

import (
	dbmodels "onboarding-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func AutoMigrateDB() error {
	log.Info("running migrations")
	if err := DB.AutoMigrate(&dbmodels.Candidate{}); err != nil {
		return errors.Wrap(err, "error migrating Candidate")
	}
	if err := DB.AutoMigrate(&dbmodels.StaffUser{}); err != nil {
		return errors.Wrap(err, "error migrating StaffUser")
	}
	log.Info("migrations finished")
	return nil
}

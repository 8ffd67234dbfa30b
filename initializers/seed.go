package initializers

import (
	"onboarding-backend/config"
	"onboarding-backend/db"
	staffseed "onboarding-backend/lib/staff/seed"
	staffstore "onboarding-backend/lib/staff/store"

	log "github.com/sirupsen/logrus"
)

func InitSeed() {
	if !*config.Conf.Seed.Enabled {
		return
	}
	created, err := staffseed.EnsureUsers(staffstore.NewInstance(db.DB), config.Conf.Seed.DefaultPassword)
	if err != nil {
		log.WithError(err).Error("error seeding staff users")
		return
	}
	if created > 0 {
		log.WithField("count", created).Info("staff users seeded")
	}
}

package initializers

import (
	"onboarding-backend/config"
	"onboarding-backend/fiberlog"

	log "github.com/sirupsen/logrus"
)

func newJSONFormatter() *log.JSONFormatter {
	return &log.JSONFormatter{
		FieldMap: log.FieldMap{
			log.FieldKeyTime: "@timestamp",
			log.FieldKeyMsg:  "message",
		},
	}
}

func InitLogger() *fiberlog.Config {
	level, err := log.ParseLevel(config.Conf.Log.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetFormatter(newJSONFormatter())
	log.SetLevel(level)

	logger := log.New()
	logger.SetFormatter(newJSONFormatter())
	logger.SetLevel(level)
	return &fiberlog.Config{
		Logger: logger,
		Tags: []string{
			fiberlog.TagBody,
			fiberlog.TagResBody,
			fiberlog.TagMethod,
			fiberlog.TagPath,
			fiberlog.TagStatus,
			fiberlog.TagLatency,
			fiberlog.TagRole,
			fiberlog.RequestID,
		},
		SkipPaths: []string{"/health"},
	}
}

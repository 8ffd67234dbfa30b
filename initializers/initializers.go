package initializers

import (
	"context"
	"onboarding-backend/config"
	"onboarding-backend/fiberlog"
	"onboarding-backend/lib/candidate"
	candidateauthhandler "onboarding-backend/lib/candidate-auth"
	xlsexport "onboarding-backend/lib/export/xls"
	staffauthhandler "onboarding-backend/lib/staff/auth"
	authutils "onboarding-backend/lib/utils/auth-utils"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	config.InitConfig()
	LoggerConfig = InitLogger()
	InitDBConnection()
	InitSeed()
	InitS3(ctx)

	tokens := authutils.NewTokenIssuer(config.Conf.Auth.JWTSecret, config.Conf.Auth.JWTExpireInSec)
	staffauthhandler.NewHandler(tokens)
	candidateauthhandler.NewHandler(tokens)
	candidate.NewHandler()
	xlsexport.NewHandler()
}

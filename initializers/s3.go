package initializers

import (
	"context"
	"onboarding-backend/config"
	filestorage "onboarding-backend/lib/file-storage"
	s3client "onboarding-backend/s3"
	"time"

	log "github.com/sirupsen/logrus"
)

// InitS3 enables document storage; without an endpoint the document routes answer 503.
func InitS3(ctx context.Context) {
	if config.Conf.S3.Endpoint == "" {
		log.Warn("S3 endpoint is not configured, document storage disabled")
		return
	}
	client, err := s3client.NewClient(config.Conf.S3.Endpoint, config.Conf.S3.AccessKeyID,
		config.Conf.S3.SecretAccessKey, *config.Conf.S3.UseSSL)
	if err != nil {
		log.WithError(err).Error("error creating S3 client")
		return
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err = s3client.MakeBucket(ctx, client, config.Conf.S3.BucketName); err != nil {
		log.
			WithField("bucket", config.Conf.S3.BucketName).
			WithError(err).
			Error("error preparing S3 bucket, document storage disabled")
		return
	}
	filestorage.NewHandler(client, config.Conf.S3.BucketName)
	log.Info("S3 document storage initialized")
}

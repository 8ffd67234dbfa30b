package filestorage

import (
	"context"
	"io"
	"onboarding-backend/lib/apperr"
	"path"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
)

type Provider interface {
	UploadDocument(ctx context.Context, candidateID, fileName string, fileReader io.Reader, fileSize int64, contentType string) error
	GetDocument(ctx context.Context, candidateID, fileName string) ([]byte, error)
}

// Instance stays nil while S3 is not configured.
var Instance Provider

func NewHandler(s3client *minio.Client, bucketName string) {
	Instance = &impl{
		s3client:   s3client,
		bucketName: bucketName,
	}
}

type impl struct {
	s3client   *minio.Client
	bucketName string
}

func (i impl) UploadDocument(ctx context.Context, candidateID, fileName string, fileReader io.Reader, fileSize int64, contentType string) error {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := i.s3client.PutObject(ctx, i.bucketName, ObjectKey(candidateID, fileName), fileReader, fileSize,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return errors.Wrap(err, "s3 put object")
	}
	return nil
}

func (i impl) GetDocument(ctx context.Context, candidateID, fileName string) ([]byte, error) {
	object, err := i.s3client.GetObject(ctx, i.bucketName, ObjectKey(candidateID, fileName), minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "s3 get object")
	}
	defer object.Close()
	body, err := io.ReadAll(object)
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, apperr.NewNotFound("Document not found.")
		}
		return nil, errors.Wrap(err, "s3 read object")
	}
	return body, nil
}

func ObjectKey(candidateID, fileName string) string {
	return path.Join("candidates", candidateID, fileName)
}

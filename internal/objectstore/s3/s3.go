package s3

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/snapfeed-app/snapfeed-backend/domain"
)

type objectStore struct {
	client    *s3.Client
	presigner *s3.PresignClient
	urlTTL    time.Duration
}

var _ domain.ObjectStore = (*objectStore)(nil)

// NewObjectStore creates an S3-backed object store. urlTTL bounds the
// lifetime of the presigned retrieval URLs.
func NewObjectStore(ctx context.Context, urlTTL time.Duration) (*objectStore, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return &objectStore{
		client:    client,
		presigner: s3.NewPresignClient(client),
		urlTTL:    urlTTL,
	}, nil
}

// Save rejects non-image extensions before touching the network, then
// uploads under a freshly generated key: <kind>-<uuid><ext>.
func (o *objectStore) Save(ctx context.Context, bucket, kind string, file domain.FileUpload) (string, error) {
	ext := domain.ImageExtension(file.Name)
	if ext == "" {
		return "", domain.ErrBadParamInput
	}

	key := fmt.Sprintf("%s-%s%s", kind, uuid.NewString(), ext)
	_, err := o.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(file.Content),
	})
	if err != nil {
		logrus.Errorf("failed to upload object %s to bucket %s: %v", key, bucket, err)
		return "", err
	}

	return key, nil
}

func (o *objectStore) ResolveURL(ctx context.Context, bucket, key string) (string, error) {
	req, err := o.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(o.urlTTL))
	if err != nil {
		logrus.Errorf("failed to presign object %s in bucket %s: %v", key, bucket, err)
		return "", err
	}

	return req.URL, nil
}

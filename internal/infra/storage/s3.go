// Package storage provides the S3-backed implementation of media storage.
package storage

import (
	"context"
	"io"
	"strings"

	"vidtube/config"
	"vidtube/internal/domain/service"
	"vidtube/internal/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// s3Storage implements service.AssetStorage backed by an S3-compatible service.
type s3Storage struct {
	uploader *manager.Uploader
	bucket   string
	baseURL  string
}

// NewS3Storage configures an uploader targeting the configured object store.
// A custom endpoint with path-style addressing supports MinIO-compatible stores.
func NewS3Storage(ctx context.Context, cfg *config.Config) (service.AssetStorage, error) {
	if cfg.ObjectStore == nil || strings.TrimSpace(cfg.ObjectStore.Bucket) == "" {
		return nil, errors.New("object store bucket is required")
	}
	store := cfg.ObjectStore

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(store.Region),
	}

	if strings.TrimSpace(store.Endpoint) != "" {
		resolver := aws.EndpointResolverWithOptionsFunc(func(svc, region string, _ ...interface{}) (aws.Endpoint, error) {
			if svc == s3.ServiceID {
				return aws.Endpoint{
					URL:           store.Endpoint,
					SigningRegion: store.Region,
				}, nil
			}

			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		})
		loadOpts = append(loadOpts, awsconfig.WithEndpointResolverWithOptions(resolver))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load aws config")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = true
	})

	uploader := manager.NewUploader(client, func(u *manager.Uploader) {
		u.PartSize = 5 * 1024 * 1024
		u.LeavePartsOnError = false
	})

	return &s3Storage{
		uploader: uploader,
		bucket:   store.Bucket,
		baseURL:  strings.TrimSuffix(store.PublicBaseURL, "/"),
	}, nil
}

// Save uploads the provided content to the configured bucket and returns a public location.
func (s *s3Storage) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	key := strings.TrimLeft(name, "/")
	if key == "" {
		return "", errors.New("empty object key")
	}

	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   manager.ReadSeekCloser(r),
		ACL:    s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to upload %s", key)
	}

	if s.baseURL == "" {
		return key, nil
	}

	return s.baseURL + "/" + key, nil
}

package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jrmeyers92/client-portals/internal/config"
	apperrors "github.com/jrmeyers92/client-portals/internal/errors"
	"github.com/jrmeyers92/client-portals/internal/logger"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// objectAPI is the subset of *minio.Client used by MinioStore
type objectAPI interface {
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	SetBucketPolicy(ctx context.Context, bucketName, policy string) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
}

// MinioStore is an AssetStore backed by any S3 compatible object store
type MinioStore struct {
	client    objectAPI
	bucket    string
	region    string
	publicURL string
}

// NewMinioStore connects to the configured endpoint
func NewMinioStore(cfg *config.Config) (*MinioStore, error) {
	if cfg.StorageEndpoint == "" || cfg.StorageBucket == "" {
		return nil, fmt.Errorf("%w: endpoint and bucket are required", apperrors.ErrStorageNotConfigured)
	}

	client, err := minio.New(cfg.StorageEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.StorageAccessKey, cfg.StorageSecretKey, ""),
		Secure: cfg.StorageUseSSL,
		Region: cfg.StorageRegion,
	})
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}

	publicURL := cfg.StoragePublicURL
	if publicURL == "" {
		publicURL = client.EndpointURL().String()
	}

	return newMinioStore(client, cfg.StorageBucket, cfg.StorageRegion, publicURL), nil
}

func newMinioStore(client objectAPI, bucket, region, publicURL string) *MinioStore {
	return &MinioStore{
		client:    client,
		bucket:    bucket,
		region:    region,
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

// EnsureBucket creates the bucket if needed and makes the given prefix publicly readable
func (s *MinioStore) EnsureBucket(ctx context.Context, publicPrefix string) error {
	log := logger.WithContext(ctx).WithField("bucket", s.bucket)

	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: s.region}); err != nil {
		exists, errBucketExists := s.client.BucketExists(ctx, s.bucket)
		if errBucketExists != nil || !exists {
			return fmt.Errorf("make bucket %s: %w", s.bucket, err)
		}
		log.Debug("bucket already exists")
	} else {
		log.Info("created bucket")
	}

	if publicPrefix == "" {
		return nil
	}
	if err := s.client.SetBucketPolicy(ctx, s.bucket, publicReadPolicy(s.bucket, publicPrefix)); err != nil {
		return fmt.Errorf("set bucket policy: %w", err)
	}
	return nil
}

// Put uploads the asset and returns its public reference
func (s *MinioStore) Put(ctx context.Context, asset Asset, folder, ownerID string) (AssetRef, error) {
	key := ObjectKey(folder, ownerID, asset)

	info, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(asset.Data), int64(len(asset.Data)), minio.PutObjectOptions{
		ContentType:  asset.ContentType,
		CacheControl: "public, max-age=3600",
	})
	if err != nil {
		return AssetRef{}, fmt.Errorf("put object %s: %w", key, err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"key":  info.Key,
		"size": info.Size,
	}).Debug("asset stored")

	return AssetRef{Key: key, URL: s.URL(key)}, nil
}

// Delete removes every referenced object, continuing past failures
func (s *MinioStore) Delete(ctx context.Context, refs []AssetRef) error {
	var errs []error
	for _, ref := range refs {
		if err := s.client.RemoveObject(ctx, s.bucket, ref.Key, minio.RemoveObjectOptions{}); err != nil {
			logger.WithContext(ctx).WithError(err).WithField("key", ref.Key).Warn("failed to delete asset")
			errs = append(errs, fmt.Errorf("remove %s: %w", ref.Key, err))
		}
	}
	return errors.Join(errs...)
}

// Ping checks the bucket exists
func (s *MinioStore) Ping(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("bucket %s does not exist", s.bucket)
	}
	return nil
}

// URL returns the public URL of an object key
func (s *MinioStore) URL(key string) string {
	return s.publicURL + "/" + s.bucket + "/" + key
}

func publicReadPolicy(bucket, prefix string) string {
	return fmt.Sprintf(`{"Version":"2012-10-17","Statement":[{"Effect":"Allow","Principal":{"AWS":["*"]},"Action":["s3:GetObject"],"Resource":["arn:aws:s3:::%s/%s/*"]}]}`,
		bucket, strings.Trim(prefix, "/"))
}

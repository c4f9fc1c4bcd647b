package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"path"
	"strings"

	"bonehealth-backend/internal/config"
	"bonehealth-backend/internal/i18n"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

// MinIOService publishes rendered catalogs to an S3-compatible bucket so the
// frontend can fetch {prefix}/{lang}.json directly.
type MinIOService struct {
	client    *minio.Client
	bucket    string
	region    string
	prefix    string
	publicURL string
	logger    *logrus.Logger
}

var _ CatalogPublisher = (*MinIOService)(nil)

func NewMinIOService(cfg *config.MinIOConfig, logger *logrus.Logger) (*MinIOService, error) {
	endpoint := strings.TrimPrefix(strings.TrimPrefix(cfg.Endpoint, "https://"), "http://")

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"bucket":   cfg.BucketName,
		"useSSL":   cfg.UseSSL,
	}).Info("Catalog publisher initialized")

	publicURL := cfg.PublicURL
	if publicURL == "" {
		publicURL = minioClient.EndpointURL().String()
	}

	service := &MinIOService{
		client:    minioClient,
		bucket:    cfg.BucketName,
		region:    cfg.Region,
		prefix:    strings.Trim(cfg.CatalogPrefix, "/"),
		publicURL: publicURL,
		logger:    logger,
	}

	if err := service.ensureBucket(context.Background()); err != nil {
		logger.WithError(err).Warn("Catalog bucket not configured; publishing may fail")
	}

	return service, nil
}

func (s *MinIOService) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: s.region}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		s.logger.WithField("bucket", s.bucket).Info("Bucket created successfully")
	}

	// Catalogs are public; everything else in the bucket stays private.
	policy := fmt.Sprintf(`{
		"Version": "2012-10-17",
		"Statement": [
			{
				"Effect": "Allow",
				"Principal": {"AWS": ["*"]},
				"Action": ["s3:GetObject"],
				"Resource": ["arn:aws:s3:::%s/%s"]
			}
		]
	}`, s.bucket, catalogObjectPattern(s.prefix))

	if err := s.client.SetBucketPolicy(ctx, s.bucket, policy); err != nil {
		return fmt.Errorf("failed to set bucket policy: %w", err)
	}

	s.logger.WithField("bucket", s.bucket).Info("Catalog prefix set to public read")
	return nil
}

func (s *MinIOService) PublishCatalog(ctx context.Context, lang string, catalog *i18n.Tree) (string, error) {
	body, err := json.Marshal(catalog)
	if err != nil {
		return "", fmt.Errorf("failed to encode catalog: %w", err)
	}

	objectPath := catalogObjectName(s.prefix, lang)
	_, err = s.client.PutObject(ctx, s.bucket, objectPath, bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{
		ContentType:  "application/json; charset=utf-8",
		CacheControl: "no-cache",
	})
	if err != nil {
		s.logger.WithError(err).WithField("objectPath", objectPath).Error("Failed to upload catalog")
		return "", fmt.Errorf("failed to upload catalog: %w", err)
	}

	objectURL := publicObjectURL(s.publicURL, s.bucket, objectPath)
	s.logger.WithFields(logrus.Fields{
		"language":   lang,
		"objectPath": objectPath,
		"bytes":      len(body),
	}).Info("Catalog published")
	return objectURL, nil
}

func catalogObjectName(prefix, lang string) string {
	if prefix == "" {
		return lang + ".json"
	}
	return path.Join(prefix, lang+".json")
}

func catalogObjectPattern(prefix string) string {
	if prefix == "" {
		return "*.json"
	}
	return prefix + "/*"
}

// publicObjectURL joins bucket and object path onto the scheme and host of
// base. Any path already on base is dropped.
func publicObjectURL(base, bucket, objectPath string) string {
	if !strings.Contains(base, "://") {
		base = "http://" + base
	}
	u, err := url.Parse(base)
	if err != nil || u.Host == "" {
		return path.Join(bucket, objectPath)
	}
	return (&url.URL{Scheme: u.Scheme, Host: u.Host, Path: "/" + path.Join(bucket, objectPath)}).String()
}

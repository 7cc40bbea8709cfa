package services

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/avigneron/boutique/internal/common"
	"github.com/avigneron/boutique/internal/logging"
	sc "github.com/avigneron/boutique/internal/server/config"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// UploadService issues presigned URLs against the configured S3-compatible
// media storage. The browser uploads directly to storage; the server never
// proxies file bytes.
type UploadService struct {
	config *sc.Config
	logger logging.Logger
}

func NewUploadService(cfg *sc.Config, logger logging.Logger) *UploadService {
	return &UploadService{config: cfg, logger: logger}
}

// randomStorageKey partitions uploads by date so buckets stay browsable.
func randomStorageKey() string {
	d := time.Now()
	return fmt.Sprintf("media/%d/%d/%d/%v", d.Year(), d.Month(), d.Day(), uuid.New())
}

func (s *UploadService) getPresignClient() (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(context.Background(),
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
	})

	return newS3PresignClient(client), nil
}

// GetPresignedPutURL returns a storage key and a URL the client can PUT the
// media file to within 15 minutes.
func (s *UploadService) GetPresignedPutURL(ctx context.Context) (string, string, error) {
	if s.config.S3BaseEndpoint == "" {
		return "", "", fmt.Errorf("%w: media storage is not configured", common.ErrorValidation)
	}

	presignClient, err := s.getPresignClient()
	if err != nil {
		s.logger.Error(ctx, "presign client setup failed", "error", err)
		return "", "", common.ErrorBackend
	}

	bucket := s.config.S3Bucket
	key := randomStorageKey()

	req, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		s.logger.Error(ctx, "presign put failed", "error", err)
		return "", "", common.ErrorBackend
	}

	return key, req.URL, nil
}

// GetPresignedGetURL returns a time-limited download URL for a stored object.
func (s *UploadService) GetPresignedGetURL(ctx context.Context, key string) (string, error) {
	if s.config.S3BaseEndpoint == "" {
		return "", fmt.Errorf("%w: media storage is not configured", common.ErrorValidation)
	}

	presignClient, err := s.getPresignClient()
	if err != nil {
		s.logger.Error(ctx, "presign client setup failed", "error", err)
		return "", common.ErrorBackend
	}

	bucket := s.config.S3Bucket

	req, err := presignGetObject(presignClient, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		s.logger.Error(ctx, "presign get failed", "error", err)
		return "", common.ErrorBackend
	}

	return req.URL, nil
}

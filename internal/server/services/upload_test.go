package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/avigneron/boutique/internal/common"
	sc "github.com/avigneron/boutique/internal/server/config"
)

func newUploadService(endpoint string) *UploadService {
	cfg := &sc.Config{
		S3Region:       "us-east-1",
		S3RootUser:     "u",
		S3RootPassword: "p",
		S3Bucket:       "media",
		S3BaseEndpoint: endpoint,
	}
	return NewUploadService(cfg, discardLogger())
}

func TestUploadUnconfigured(t *testing.T) {
	s := newUploadService("")

	_, _, err := s.GetPresignedPutURL(context.Background())
	if !errors.Is(err, common.ErrorValidation) {
		t.Fatalf("want ErrorValidation, got %v", err)
	}

	_, err = s.GetPresignedGetURL(context.Background(), "media/x")
	if !errors.Is(err, common.ErrorValidation) {
		t.Fatalf("want ErrorValidation, got %v", err)
	}
}

func TestUploadPresignedPutURL(t *testing.T) {
	orig := presignPutObject
	t.Cleanup(func() { presignPutObject = orig })

	var gotBucket, gotKey string
	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		gotBucket = *in.Bucket
		gotKey = *in.Key
		return &v4.PresignedHTTPRequest{URL: "http://minio/put"}, nil
	}

	s := newUploadService("http://127.0.0.1:9000")

	key, url, err := s.GetPresignedPutURL(context.Background())
	if err != nil {
		t.Fatalf("GetPresignedPutURL error: %v", err)
	}
	if url != "http://minio/put" {
		t.Fatalf("unexpected url: %s", url)
	}
	if key != gotKey || !strings.HasPrefix(key, "media/") {
		t.Fatalf("unexpected key: %q (presigned for %q)", key, gotKey)
	}
	if gotBucket != "media" {
		t.Fatalf("unexpected bucket: %s", gotBucket)
	}
}

func TestUploadPresignedGetURL(t *testing.T) {
	orig := presignGetObject
	t.Cleanup(func() { presignGetObject = orig })

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return &v4.PresignedHTTPRequest{URL: "http://minio/get/" + *in.Key}, nil
	}

	s := newUploadService("http://127.0.0.1:9000")

	url, err := s.GetPresignedGetURL(context.Background(), "media/2024/1/1/abc")
	if err != nil {
		t.Fatalf("GetPresignedGetURL error: %v", err)
	}
	if url != "http://minio/get/media/2024/1/1/abc" {
		t.Fatalf("unexpected url: %s", url)
	}
}

func TestUploadPresignError(t *testing.T) {
	orig := presignPutObject
	t.Cleanup(func() { presignPutObject = orig })

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return nil, errBoom{}
	}

	s := newUploadService("http://127.0.0.1:9000")

	_, _, err := s.GetPresignedPutURL(context.Background())
	if !errors.Is(err, common.ErrorBackend) {
		t.Fatalf("want ErrorBackend, got %v", err)
	}
}

package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/teampulse/teampulse-backend/internal/apperr"
	"github.com/teampulse/teampulse-backend/internal/config"
	"github.com/teampulse/teampulse-backend/internal/dto"
)

// UploadService hands out short-lived pre-signed S3 PUT URLs so clients
// upload attachments directly to the bucket. Only image uploads are
// accepted; object keys are prefixed with the org id so tenants never
// share key space.
type UploadService struct {
	cfg     *config.Config
	presign *s3.PresignClient
}

func NewUploadService(cfg *config.Config) (*UploadService, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithCredentialsProvider(credentials.StaticCredentialsProvider{
			Value: aws.Credentials{
				AccessKeyID:     cfg.AWSAccessKey,
				SecretAccessKey: cfg.AWSSecretKey,
			},
		}),
		awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg)
	return &UploadService{
		cfg:     cfg,
		presign: s3.NewPresignClient(client),
	}, nil
}

func (s *UploadService) PresignUpload(ctx context.Context, orgID uuid.UUID, req *dto.PresignUploadRequest) (*dto.PresignUploadResponse, error) {
	var violations []string
	if req.Filename == "" {
		violations = append(violations, "Filename is required")
	}
	if !strings.HasPrefix(req.Filetype, "image/") {
		violations = append(violations, "Only image files are allowed")
	}
	if err := apperr.Validation(violations); err != nil {
		return nil, err
	}

	key := orgID.String() + "/" + uuid.NewString() + "-" + req.Filename

	result, err := s.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.S3Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(req.Filetype),
	}, s3.WithPresignExpires(s.cfg.PresignExpiry))
	if err != nil {
		return nil, fmt.Errorf("failed to presign upload: %w", err)
	}

	return &dto.PresignUploadResponse{URL: result.URL, Key: key}, nil
}

package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jawhara/restaurant-backend/config"
)

var ErrUnsupportedImageType = errors.New("only jpeg, jpg, png and gif images are allowed")

// MaxImageSize caps image uploads at 2MB.
const MaxImageSize = 2 << 20

var allowedImageExtensions = map[string]string{
	".jpeg": "image/jpeg",
	".jpg":  "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
}

// ImageService stores uploaded images in S3 under random keys.
type ImageService struct {
	s3     *config.S3Config
	logger *zap.Logger
}

func NewImageService(s3cfg *config.S3Config, logger *zap.Logger) *ImageService {
	return &ImageService{s3: s3cfg, logger: logger}
}

// UploadImage validates the file extension, uploads the bytes under
// prefix/<uuid><ext> and returns the public URL.
func (s *ImageService) UploadImage(ctx context.Context, data []byte, filename, prefix string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	contentType, ok := allowedImageExtensions[ext]
	if !ok {
		return "", ErrUnsupportedImageType
	}

	key := fmt.Sprintf("%s/%s%s", prefix, uuid.New().String(), ext)

	_, err := s.s3.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	url := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3.BucketName, key)
	s.logger.Info("uploaded image",
		zap.String("key", key),
		zap.Int("bytes", len(data)))
	return url, nil
}

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestUploadImageRejectsUnsupportedExtension(t *testing.T) {
	// Extension validation runs before any storage call, so no S3 client
	// is needed for the rejection path.
	svc := NewImageService(nil, zap.NewNop())

	for _, filename := range []string{"doc.pdf", "script.sh", "noext", "archive.tar.gz"} {
		_, err := svc.UploadImage(context.Background(), []byte("data"), filename, "meals")
		assert.ErrorIs(t, err, ErrUnsupportedImageType, filename)
	}
}

package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jawhara/restaurant-backend/internal/service"
)

// ImageUploader stores an image and returns its public URL. Implemented by
// service.ImageService; kept as an interface so handlers work without an
// S3 configuration and tests can swap in a fake.
type ImageUploader interface {
	UploadImage(ctx context.Context, data []byte, filename, prefix string) (string, error)
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}

// readFormImage pulls the optional image file out of a multipart form and
// uploads it. Returns the stored URL ("" when no file was sent) and false
// when a response was already written.
func readFormImage(c *gin.Context, images ImageUploader, prefix string) (string, bool) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", true
	}

	if images == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image storage is not configured"})
		return "", false
	}
	if file.Size > service.MaxImageSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image exceeds the 2MB limit"})
		return "", false
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image"})
		return "", false
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image"})
		return "", false
	}

	url, err := images.UploadImage(c.Request.Context(), data, file.Filename, prefix)
	if err != nil {
		if errors.Is(err, service.ErrUnsupportedImageType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload image"})
		}
		return "", false
	}
	return url, true
}

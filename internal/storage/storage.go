// Package storage keeps uploaded product images on local disk or in S3.
package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fekuna/omnipos-invoice-service/config"
	"github.com/google/uuid"
)

const (
	DriverLocal = "local"
	DriverS3    = "s3"
)

// ImageStore saves an image and returns the path clients use to fetch it. Delete
// accepts that same path.
type ImageStore interface {
	Save(ctx context.Context, originalName, contentType string, r io.Reader) (string, error)
	Delete(ctx context.Context, path string) error
}

func New(cfg *config.StorageConfig) (ImageStore, error) {
	switch cfg.Driver {
	case DriverLocal:
		return NewLocalStore(cfg.UploadDir, cfg.URLPrefix), nil
	case DriverS3:
		return NewS3Store(cfg.S3Region, cfg.S3Bucket)
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Driver)
	}
}

// objectName returns a collision free name that keeps the upload's extension.
func objectName(originalName string) string {
	return "product-" + uuid.NewString() + strings.ToLower(filepath.Ext(originalName))
}

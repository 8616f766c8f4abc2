package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fekuna/omnipos-invoice-service/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStoreSaveAndDelete(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s := NewLocalStore(dir, "uploads/")

	p, err := s.Save(ctx, "Photo.PNG", "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(p, "/uploads/product-"), p)
	assert.True(t, strings.HasSuffix(p, ".png"), p)

	data, err := os.ReadFile(filepath.Join(dir, filepath.Base(p)))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	require.NoError(t, s.Delete(ctx, p))
	_, err = os.Stat(filepath.Join(dir, filepath.Base(p)))
	assert.True(t, os.IsNotExist(err))

	// Already gone and foreign paths are not errors.
	assert.NoError(t, s.Delete(ctx, p))
	assert.NoError(t, s.Delete(ctx, "https://cdn.example.com/x.png"))
}

func TestS3KeyOf(t *testing.T) {
	s := &S3Store{bucket: "shop"}

	key, ok := s.keyOf("https://shop.s3.amazonaws.com/products/product-1.png")
	assert.True(t, ok)
	assert.Equal(t, "products/product-1.png", key)

	key, ok = s.keyOf("https://s3.eu-west-1.amazonaws.com/shop/products/product-2.jpg")
	assert.True(t, ok)
	assert.Equal(t, "products/product-2.jpg", key)

	_, ok = s.keyOf("/uploads/product-3.png")
	assert.False(t, ok)
}

func TestNewRejectsUnknownDriver(t *testing.T) {
	_, err := New(&config.StorageConfig{Driver: "ftp"})
	assert.Error(t, err)

	st, err := New(&config.StorageConfig{Driver: DriverLocal, UploadDir: t.TempDir(), URLPrefix: "/uploads"})
	require.NoError(t, err)
	assert.IsType(t, &LocalStore{}, st)
}

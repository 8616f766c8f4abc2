package setting

import (
	"context"

	"github.com/fekuna/omnipos-invoice-service/internal/model"
)

type Repository interface {
	Get(ctx context.Context) (*model.Setting, error)
	Update(ctx context.Context, s *model.Setting) error
	SetProductImagesEnabled(ctx context.Context, enabled bool) error
}

package setting

import (
	"context"

	"github.com/fekuna/omnipos-invoice-service/internal/model"
	"github.com/fekuna/omnipos-invoice-service/internal/setting/dto"
)

type UseCase interface {
	GetSettings(ctx context.Context) (*model.Setting, error)
	UpdateSettings(ctx context.Context, input *dto.UpdateSettingsInput) (*model.Setting, error)
	SetProductImagesEnabled(ctx context.Context, enabled bool) error
	Options() dto.Options
}

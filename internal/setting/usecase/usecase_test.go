package usecase_test

import (
	"context"
	"testing"

	"github.com/fekuna/omnipos-invoice-service/internal/apperr"
	"github.com/fekuna/omnipos-invoice-service/internal/database/dbtest"
	"github.com/fekuna/omnipos-invoice-service/internal/logger"
	"github.com/fekuna/omnipos-invoice-service/internal/model"
	"github.com/fekuna/omnipos-invoice-service/internal/setting"
	"github.com/fekuna/omnipos-invoice-service/internal/setting/dto"
	"github.com/fekuna/omnipos-invoice-service/internal/setting/repository"
	"github.com/fekuna/omnipos-invoice-service/internal/setting/usecase"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUseCase(t *testing.T) setting.UseCase {
	db := dbtest.New(t)
	return usecase.NewSettingUseCase(repository.NewSQLRepository(db), logger.NewNop())
}

func TestGetSettingsReturnsSeededDefaults(t *testing.T) {
	uc := newUseCase(t)

	s, err := uc.GetSettings(context.Background())
	require.NoError(t, err)

	def := model.DefaultSetting()
	assert.Equal(t, def.CurrencyCode, s.CurrencyCode)
	assert.Equal(t, def.CurrencySymbol, s.CurrencySymbol)
	assert.True(t, def.TaxRate.Equal(s.TaxRate))
	assert.True(t, s.TaxEnabled)
	assert.True(t, s.ProductImagesEnabled)
	assert.Equal(t, "INV-", s.InvoicePrefix)
	assert.Equal(t, int64(1000), s.InvoiceStartingNumber)
	assert.Equal(t, "DD/MM/YYYY", s.DateFormat)
}

func TestUpdateSettings(t *testing.T) {
	ctx := context.Background()

	t.Run("applies defaults for blank numbering fields", func(t *testing.T) {
		uc := newUseCase(t)
		s, err := uc.UpdateSettings(ctx, &dto.UpdateSettingsInput{
			CurrencyCode:   "USD",
			CurrencySymbol: "$",
			TaxRate:        decimal.RequireFromString("7.5"),
			TaxName:        "Sales Tax",
			TaxEnabled:     true,
			CompanyName:    "Acme",
		})
		require.NoError(t, err)
		assert.Equal(t, "INV-", s.InvoicePrefix)
		assert.Equal(t, int64(1000), s.InvoiceStartingNumber)
		assert.Equal(t, "DD/MM/YYYY", s.DateFormat)
		assert.False(t, s.ProductImagesEnabled)

		stored, err := uc.GetSettings(ctx)
		require.NoError(t, err)
		assert.Equal(t, "USD", stored.CurrencyCode)
		assert.Equal(t, "Acme", stored.CompanyName)
		assert.True(t, decimal.RequireFromString("7.5").Equal(stored.TaxRate))
		assert.Equal(t, int64(model.SettingID), stored.ID)
	})

	t.Run("requires currency code and symbol", func(t *testing.T) {
		uc := newUseCase(t)
		_, err := uc.UpdateSettings(ctx, &dto.UpdateSettingsInput{CurrencyCode: "USD"})
		assert.True(t, apperr.IsValidation(err))

		stored, err := uc.GetSettings(ctx)
		require.NoError(t, err)
		assert.Equal(t, "INR", stored.CurrencyCode)
	})
}

func TestSetProductImagesEnabled(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(t)

	require.NoError(t, uc.SetProductImagesEnabled(ctx, false))
	s, err := uc.GetSettings(ctx)
	require.NoError(t, err)
	assert.False(t, s.ProductImagesEnabled)
}

func TestOptions(t *testing.T) {
	opts := newUseCase(t).Options()
	assert.Len(t, opts.Currencies, 10)
	assert.Len(t, opts.DateFormats, 3)
	assert.Equal(t, "GST", opts.Taxes[0].Name)
}

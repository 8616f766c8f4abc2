package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/fekuna/omnipos-invoice-service/internal/apperr"
	"github.com/fekuna/omnipos-invoice-service/internal/logger"
	"github.com/fekuna/omnipos-invoice-service/internal/model"
	"github.com/fekuna/omnipos-invoice-service/internal/setting"
	"github.com/fekuna/omnipos-invoice-service/internal/setting/dto"
	"go.uber.org/zap"
)

var errSettingsMissing = errors.New("settings row is missing")

type settingUseCase struct {
	repo   setting.Repository
	logger logger.ZapLogger
}

func NewSettingUseCase(repo setting.Repository, log logger.ZapLogger) setting.UseCase {
	return &settingUseCase{
		repo:   repo,
		logger: log,
	}
}

// GetSettings never returns nil on success. A missing row means the store was not
// migrated, which is a store fault rather than an empty result.
func (uc *settingUseCase) GetSettings(ctx context.Context) (*model.Setting, error) {
	s, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, errSettingsMissing
	}
	return s, nil
}

func (uc *settingUseCase) UpdateSettings(ctx context.Context, input *dto.UpdateSettingsInput) (*model.Setting, error) {
	var details []string
	if strings.TrimSpace(input.CurrencyCode) == "" || strings.TrimSpace(input.CurrencySymbol) == "" {
		details = append(details, "Currency code and symbol are required")
	}
	if input.TaxRate.IsNegative() {
		details = append(details, "Tax rate cannot be negative")
	}
	if len(details) > 0 {
		return nil, apperr.Validation(details...)
	}

	s, err := uc.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	s.CurrencyCode = strings.TrimSpace(input.CurrencyCode)
	s.CurrencySymbol = strings.TrimSpace(input.CurrencySymbol)
	s.TaxRate = input.TaxRate
	s.TaxName = input.TaxName
	s.TaxEnabled = input.TaxEnabled
	s.CompanyName = input.CompanyName
	s.CompanyAddress = input.CompanyAddress
	s.CompanyPhone = input.CompanyPhone
	s.CompanyEmail = input.CompanyEmail
	s.InvoicePrefix = input.InvoicePrefix
	if s.InvoicePrefix == "" {
		s.InvoicePrefix = model.DefaultInvoicePrefix
	}
	s.InvoiceStartingNumber = input.InvoiceStartingNumber
	if s.InvoiceStartingNumber <= 0 {
		s.InvoiceStartingNumber = model.DefaultStartingNumber
	}
	s.DateFormat = input.DateFormat
	if s.DateFormat == "" {
		s.DateFormat = model.DefaultDateFormat
	}
	s.ProductImagesEnabled = input.ProductImagesEnabled

	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}

	uc.logger.Info("settings updated",
		zap.String("currency_code", s.CurrencyCode),
		zap.String("invoice_prefix", s.InvoicePrefix),
		zap.Int64("invoice_starting_number", s.InvoiceStartingNumber),
	)
	return s, nil
}

func (uc *settingUseCase) SetProductImagesEnabled(ctx context.Context, enabled bool) error {
	if err := uc.repo.SetProductImagesEnabled(ctx, enabled); err != nil {
		return err
	}
	uc.logger.Info("product images toggled", zap.Bool("enabled", enabled))
	return nil
}

func (uc *settingUseCase) Options() dto.Options {
	return dto.Options{
		Currencies: []dto.CurrencyOption{
			{Code: "INR", Symbol: "₹", Name: "Indian Rupee"},
			{Code: "USD", Symbol: "$", Name: "US Dollar"},
			{Code: "EUR", Symbol: "€", Name: "Euro"},
			{Code: "GBP", Symbol: "£", Name: "British Pound"},
			{Code: "JPY", Symbol: "¥", Name: "Japanese Yen"},
			{Code: "AUD", Symbol: "A$", Name: "Australian Dollar"},
			{Code: "CAD", Symbol: "C$", Name: "Canadian Dollar"},
			{Code: "CHF", Symbol: "CHF", Name: "Swiss Franc"},
			{Code: "CNY", Symbol: "¥", Name: "Chinese Yuan"},
			{Code: "SGD", Symbol: "S$", Name: "Singapore Dollar"},
		},
		Taxes: []dto.TaxOption{
			{Name: "GST", Description: "Goods and Services Tax (India)"},
			{Name: "VAT", Description: "Value Added Tax"},
			{Name: "Sales Tax", Description: "General Sales Tax"},
			{Name: "No Tax", Description: "No Tax Applied"},
		},
		DateFormats: []dto.DateFormatOption{
			{Format: "DD/MM/YYYY", Description: "Day/Month/Year (31/12/2023)"},
			{Format: "MM/DD/YYYY", Description: "Month/Day/Year (12/31/2023)"},
			{Format: "YYYY-MM-DD", Description: "Year-Month-Day (2023-12-31)"},
		},
	}
}

package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/fekuna/omnipos-invoice-service/internal/apperr"
	"github.com/fekuna/omnipos-invoice-service/internal/logger"
	"github.com/fekuna/omnipos-invoice-service/internal/model"
	"github.com/fekuna/omnipos-invoice-service/internal/product"
	"github.com/fekuna/omnipos-invoice-service/internal/product/dto"
	"github.com/fekuna/omnipos-invoice-service/internal/setting"
	"github.com/fekuna/omnipos-invoice-service/internal/storage"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	MaxNameLength  = 100
	MaxImageSize   = 5 << 20
	priceDecimals  = 2
	maxPriceString = "9999999.99"
)

var (
	maxPrice          = decimal.RequireFromString(maxPriceString)
	allowedImageTypes = map[string]bool{
		"image/jpeg": true,
		"image/jpg":  true,
		"image/png":  true,
		"image/gif":  true,
	}
)

type productUseCase struct {
	repo     product.Repository
	settings setting.UseCase
	images   storage.ImageStore
	logger   logger.ZapLogger
}

func NewProductUseCase(repo product.Repository, settings setting.UseCase, images storage.ImageStore, log logger.ZapLogger) product.UseCase {
	return &productUseCase{
		repo:     repo,
		settings: settings,
		images:   images,
		logger:   log,
	}
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	name, price, err := validateProduct(input.Name, input.Price)
	if err != nil {
		return nil, err
	}
	if err := uc.checkImage(ctx, input.Image); err != nil {
		return nil, err
	}

	p := &model.Product{
		Name:  name,
		Price: price,
	}

	if input.Image != nil {
		path, err := uc.images.Save(ctx, input.Image.Filename, input.Image.ContentType, input.Image.Body)
		if err != nil {
			return nil, err
		}
		p.ImagePath = &path
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		if p.ImagePath != nil {
			uc.removeImage(ctx, *p.ImagePath)
		}
		return nil, err
	}

	uc.logger.Info("product created", zap.Int64("product_id", p.ID), zap.String("name", p.Name))
	return p, nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.NotFound("Product")
	}
	return p, nil
}

func (uc *productUseCase) ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error) {
	filters.SearchQuery = strings.TrimSpace(filters.SearchQuery)
	return uc.repo.FindAll(ctx, filters)
}

// UpdateProduct never touches invoice items; they keep the name and price captured
// at sale time.
func (uc *productUseCase) UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error) {
	name, price, err := validateProduct(input.Name, input.Price)
	if err != nil {
		return nil, err
	}
	if err := uc.checkImage(ctx, input.Image); err != nil {
		return nil, err
	}

	p, err := uc.GetProduct(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	oldImage := p.ImagePath
	p.Name = name
	p.Price = price
	if input.RemoveImage {
		p.ImagePath = nil
	}
	if input.Image != nil {
		path, err := uc.images.Save(ctx, input.Image.Filename, input.Image.ContentType, input.Image.Body)
		if err != nil {
			return nil, err
		}
		p.ImagePath = &path
	}

	if err := uc.repo.Update(ctx, p); err != nil {
		if input.Image != nil {
			uc.removeImage(ctx, *p.ImagePath)
		}
		return nil, err
	}

	if oldImage != nil && (p.ImagePath == nil || *p.ImagePath != *oldImage) {
		uc.removeImage(ctx, *oldImage)
	}

	uc.logger.Info("product updated", zap.Int64("product_id", p.ID))
	return p, nil
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, id int64) error {
	p, err := uc.GetProduct(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	if p.ImagePath != nil {
		uc.removeImage(ctx, *p.ImagePath)
	}

	uc.logger.Info("product deleted", zap.Int64("product_id", id))
	return nil
}

func (uc *productUseCase) checkImage(ctx context.Context, img *dto.ImageUpload) error {
	if img == nil {
		return nil
	}

	s, err := uc.settings.GetSettings(ctx)
	if err != nil {
		return err
	}
	if !s.ProductImagesEnabled {
		return apperr.Validation("Product images are disabled")
	}

	var details []string
	if !allowedImageTypes[strings.ToLower(img.ContentType)] {
		details = append(details, "Only JPEG, PNG and GIF images are allowed")
	}
	if img.Size > MaxImageSize {
		details = append(details, "Image must be 5MB or smaller")
	}
	if len(details) > 0 {
		return apperr.Validation(details...)
	}
	return nil
}

// removeImage is best effort: a leftover file is logged, never returned.
func (uc *productUseCase) removeImage(ctx context.Context, path string) {
	if err := uc.images.Delete(ctx, path); err != nil {
		uc.logger.Warn("failed to delete product image", zap.String("path", path), zap.Error(err))
	}
}

func validateProduct(rawName string, rawPrice *decimal.Decimal) (string, decimal.Decimal, error) {
	var details []string

	name := strings.TrimSpace(rawName)
	switch {
	case name == "":
		details = append(details, "Product name is required")
	case utf8.RuneCountInString(name) > MaxNameLength:
		details = append(details, "Product name must be 100 characters or fewer")
	case strings.ContainsAny(name, "<>"):
		details = append(details, "Product name contains invalid characters")
	}

	var price decimal.Decimal
	switch {
	case rawPrice == nil:
		details = append(details, "Price is required")
	case rawPrice.IsNegative():
		details = append(details, "Price cannot be negative")
	case rawPrice.GreaterThan(maxPrice):
		details = append(details, "Price cannot exceed "+maxPriceString)
	default:
		price = rawPrice.Round(priceDecimals)
	}

	if len(details) > 0 {
		return "", decimal.Decimal{}, apperr.Validation(details...)
	}
	return name, price, nil
}

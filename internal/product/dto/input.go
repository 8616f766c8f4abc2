package dto

import (
	"io"

	"github.com/shopspring/decimal"
)

type CreateProductInput struct {
	Name  string
	Price *decimal.Decimal
	Image *ImageUpload
}

type UpdateProductInput struct {
	ID          int64
	Name        string
	Price       *decimal.Decimal
	Image       *ImageUpload
	RemoveImage bool
}

type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

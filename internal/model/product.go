package model

import "github.com/shopspring/decimal"

type Product struct {
	ID        int64           `db:"id" json:"id"`
	Name      string          `db:"name" json:"name"`
	Price     decimal.Decimal `db:"price" json:"price"`
	ImagePath *string         `db:"image_path" json:"image_path"` // Nullable
}

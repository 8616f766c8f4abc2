package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fekuna/omnipos-invoice-service/internal/model"
	"github.com/jmoiron/sqlx"
)

type SQLRepository struct {
	DB *sqlx.DB
}

func NewSQLRepository(db *sqlx.DB) *SQLRepository {
	return &SQLRepository{DB: db}
}

func (r *SQLRepository) Get(ctx context.Context) (*model.Setting, error) {
	var s model.Setting
	query := r.DB.Rebind(`SELECT * FROM settings WHERE id = ?`)
	err := r.DB.GetContext(ctx, &s, query, model.SettingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *SQLRepository) Update(ctx context.Context, s *model.Setting) error {
	query := `
        UPDATE settings
        SET currency_code = :currency_code,
            currency_symbol = :currency_symbol,
            tax_rate = :tax_rate,
            tax_name = :tax_name,
            tax_enabled = :tax_enabled,
            company_name = :company_name,
            company_address = :company_address,
            company_phone = :company_phone,
            company_email = :company_email,
            invoice_prefix = :invoice_prefix,
            invoice_starting_number = :invoice_starting_number,
            date_format = :date_format,
            product_images_enabled = :product_images_enabled
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, s)
	return err
}

func (r *SQLRepository) SetProductImagesEnabled(ctx context.Context, enabled bool) error {
	query := r.DB.Rebind(`UPDATE settings SET product_images_enabled = ? WHERE id = ?`)
	_, err := r.DB.ExecContext(ctx, query, enabled, model.SettingID)
	return err
}

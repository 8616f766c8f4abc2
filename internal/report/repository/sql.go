package repository

import (
	"context"
	"fmt"

	"github.com/fekuna/omnipos-invoice-service/internal/model"
	"github.com/fekuna/omnipos-invoice-service/internal/numbering"
	"github.com/fekuna/omnipos-invoice-service/internal/report/dto"
	"github.com/jmoiron/sqlx"
)

type SQLRepository struct {
	DB *sqlx.DB
}

func NewSQLRepository(db *sqlx.DB) *SQLRepository {
	return &SQLRepository{DB: db}
}

func (r *SQLRepository) AllInvoices(ctx context.Context) ([]model.Invoice, error) {
	invoices := []model.Invoice{}
	query := `
        SELECT id, customer_name, invoice_date, invoice_date_iso, invoice_number,
            tax_rate, subtotal, tax_amount, grand_total, currency_symbol
        FROM invoices ORDER BY id
    `
	if err := r.DB.SelectContext(ctx, &invoices, query); err != nil {
		return nil, fmt.Errorf("failed to load invoices: %w", err)
	}
	return invoices, nil
}

// MostOrdered groups line items by the product id and the name captured at sale
// time, so a renamed product yields one row per name.
func (r *SQLRepository) MostOrdered(ctx context.Context, search string, limit, offset int) ([]dto.ProductRanking, int, error) {
	rankings := []dto.ProductRanking{}
	var count int

	whereClause := ""
	args := []interface{}{}
	if search != "" {
		whereClause = ` WHERE LOWER(ii.product_name) LIKE LOWER(?) ESCAPE '\'`
		args = append(args, "%"+numbering.LikePattern(search))
	}

	// Count
	countQuery := r.DB.Rebind(`
        SELECT count(*) FROM (
            SELECT ii.product_id FROM invoice_items ii` + whereClause + `
            GROUP BY ii.product_id, ii.product_name
        ) grouped
    `)
	if err := r.DB.GetContext(ctx, &count, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count ranked products: %w", err)
	}

	// List
	query := r.DB.Rebind(`
        SELECT ii.product_id,
            ii.product_name,
            SUM(ii.quantity) AS total_quantity,
            COUNT(DISTINCT ii.invoice_id) AS invoice_count,
            SUM(ii.total) AS total_revenue,
            MAX(i.invoice_date_iso) AS last_ordered
        FROM invoice_items ii
        JOIN invoices i ON i.id = ii.invoice_id` + whereClause + `
        GROUP BY ii.product_id, ii.product_name
        ORDER BY total_quantity DESC, ii.product_name, ii.product_id
        LIMIT ? OFFSET ?
    `)
	args = append(args, limit, offset)
	if err := r.DB.SelectContext(ctx, &rankings, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to rank products: %w", err)
	}

	return rankings, count, nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/fekuna/omnipos-invoice-service/internal/invoice/dto"
	"github.com/fekuna/omnipos-invoice-service/internal/model"
	"github.com/fekuna/omnipos-invoice-service/internal/numbering"
	"github.com/jmoiron/sqlx"
)

const invoiceColumns = `id, customer_name, invoice_date, invoice_date_iso, invoice_number,
        tax_rate, subtotal, tax_amount, grand_total, currency_symbol`

type SQLRepository struct {
	DB *sqlx.DB
}

func NewSQLRepository(db *sqlx.DB) *SQLRepository {
	return &SQLRepository{DB: db}
}

func (r *SQLRepository) ListNumbersWithPrefix(ctx context.Context, prefix string) ([]string, error) {
	numbers := []string{}
	query := r.DB.Rebind(`
        SELECT invoice_number FROM invoices
        WHERE invoice_number LIKE ? ESCAPE '\'
        ORDER BY LENGTH(invoice_number) DESC, invoice_number DESC
    `)
	if err := r.DB.SelectContext(ctx, &numbers, query, numbering.LikePattern(prefix)); err != nil {
		return nil, fmt.Errorf("failed to list invoice numbers: %w", err)
	}
	return numbers, nil
}

// Create inserts the invoice and all of its items in one transaction and fills in
// the generated ids.
func (r *SQLRepository) Create(ctx context.Context, inv *model.Invoice) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	invoiceQuery := tx.Rebind(`
        INSERT INTO invoices (
            customer_name, invoice_date, invoice_date_iso, invoice_number,
            tax_rate, subtotal, tax_amount, grand_total, currency_symbol
        )
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
        RETURNING id
    `)
	err = tx.QueryRowxContext(ctx, invoiceQuery,
		inv.CustomerName, inv.InvoiceDate, inv.InvoiceDateISO, inv.InvoiceNumber,
		inv.TaxRate, inv.Subtotal, inv.TaxAmount, inv.GrandTotal, inv.CurrencySymbol,
	).Scan(&inv.ID)
	if err != nil {
		return fmt.Errorf("failed to insert invoice: %w", err)
	}

	itemQuery := tx.Rebind(`
        INSERT INTO invoice_items (invoice_id, product_id, product_name, price, quantity, total)
        VALUES (?, ?, ?, ?, ?, ?)
        RETURNING id
    `)
	for i := range inv.Items {
		item := &inv.Items[i]
		item.InvoiceID = inv.ID
		err := tx.QueryRowxContext(ctx, itemQuery,
			item.InvoiceID, item.ProductID, item.ProductName, item.Price, item.Quantity, item.Total,
		).Scan(&item.ID)
		if err != nil {
			return fmt.Errorf("failed to insert invoice item %d: %w", i+1, err)
		}
	}

	return tx.Commit()
}

func (r *SQLRepository) FindByID(ctx context.Context, id int64) (*model.Invoice, error) {
	var inv model.Invoice
	query := r.DB.Rebind(`SELECT ` + invoiceColumns + ` FROM invoices WHERE id = ? LIMIT 1`)
	err := r.DB.GetContext(ctx, &inv, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	inv.Items = []model.InvoiceItem{}
	itemsQuery := r.DB.Rebind(`
        SELECT id, invoice_id, product_id, product_name, price, quantity, total
        FROM invoice_items WHERE invoice_id = ? ORDER BY id
    `)
	if err := r.DB.SelectContext(ctx, &inv.Items, itemsQuery, id); err != nil {
		return nil, err
	}
	return &inv, nil
}

// FindAll returns invoices without items, most recent first. StartDate and EndDate
// must already be in YYYY-MM-DD form.
func (r *SQLRepository) FindAll(ctx context.Context, f *dto.InvoiceFilters) ([]model.Invoice, int, error) {
	invoices := []model.Invoice{}
	var count int

	conditions := []string{}
	args := map[string]interface{}{}

	if f.Search != "" {
		conditions = append(conditions, `(LOWER(customer_name) LIKE LOWER(:search) ESCAPE '\' OR LOWER(invoice_number) LIKE LOWER(:search) ESCAPE '\')`)
		args["search"] = containsPattern(f.Search)
	}
	if f.Customer != "" {
		conditions = append(conditions, `LOWER(customer_name) LIKE LOWER(:customer) ESCAPE '\'`)
		args["customer"] = containsPattern(f.Customer)
	}
	if f.Product != "" {
		conditions = append(conditions, `EXISTS (
            SELECT 1 FROM invoice_items ii
            WHERE ii.invoice_id = invoices.id AND LOWER(ii.product_name) LIKE LOWER(:product) ESCAPE '\'
        )`)
		args["product"] = containsPattern(f.Product)
	}
	if f.StartDate != "" {
		conditions = append(conditions, "invoice_date_iso >= :start_date")
		args["start_date"] = f.StartDate
	}
	if f.EndDate != "" {
		conditions = append(conditions, "invoice_date_iso <= :end_date")
		args["end_date"] = f.EndDate
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	// Count
	countQuery := "SELECT count(*) FROM invoices" + whereClause
	rows, err := r.DB.NamedQueryContext(ctx, countQuery, args)
	if err != nil {
		return nil, 0, err
	}
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			rows.Close()
			return nil, 0, err
		}
	}
	rows.Close()

	// List
	query := "SELECT " + invoiceColumns + " FROM invoices" + whereClause +
		" ORDER BY COALESCE(invoice_date_iso, '') DESC, id DESC"
	if f.Limit > 0 {
		page := f.Page
		if page < 1 {
			page = 1
		}
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.Limit, (page-1)*f.Limit)
	}

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	defer nstmt.Close()

	if err := nstmt.SelectContext(ctx, &invoices, args); err != nil {
		return nil, 0, err
	}

	return invoices, count, nil
}

// Delete removes the invoice and its items in one transaction. It reports whether
// an invoice was found.
func (r *SQLRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, tx.Rebind("DELETE FROM invoice_items WHERE invoice_id = ?"), id); err != nil {
		return false, fmt.Errorf("failed to delete invoice items: %w", err)
	}

	res, err := tx.ExecContext(ctx, tx.Rebind("DELETE FROM invoices WHERE id = ?"), id)
	if err != nil {
		return false, fmt.Errorf("failed to delete invoice: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if affected == 0 {
		return false, nil
	}

	return true, tx.Commit()
}

func containsPattern(s string) string {
	return "%" + numbering.LikePattern(s)
}

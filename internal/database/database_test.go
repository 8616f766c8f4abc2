package database_test

import (
	"context"
	"testing"

	"github.com/fekuna/omnipos-invoice-service/internal/database"
	"github.com/fekuna/omnipos-invoice-service/internal/database/dbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateSeedsSingleSettingsRow(t *testing.T) {
	db := dbtest.New(t)
	ctx := context.Background()

	// Running again must not duplicate the row.
	require.NoError(t, database.Migrate(ctx, db))
	require.NoError(t, database.Migrate(ctx, db))

	var count int
	require.NoError(t, db.GetContext(ctx, &count, `SELECT count(*) FROM settings`))
	assert.Equal(t, 1, count)

	var prefix string
	var start int64
	require.NoError(t, db.QueryRowxContext(ctx, `SELECT invoice_prefix, invoice_starting_number FROM settings`).Scan(&prefix, &start))
	assert.Equal(t, "INV-", prefix)
	assert.Equal(t, int64(1000), start)
}

func TestMigrateEnablesCascadeDelete(t *testing.T) {
	db := dbtest.New(t)
	ctx := context.Background()

	var id int64
	require.NoError(t, db.QueryRowxContext(ctx,
		`INSERT INTO invoices (invoice_date, invoice_number, subtotal, tax_amount, grand_total) VALUES ('2024-01-01', 'INV-1', 1, 0, 1) RETURNING id`,
	).Scan(&id))
	_, err := db.ExecContext(ctx,
		`INSERT INTO invoice_items (invoice_id, product_id, product_name, price, quantity, total) VALUES (?, 1, 'Pen', 1, 1, 1)`, id)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, `DELETE FROM invoices WHERE id = ?`, id)
	require.NoError(t, err)

	var count int
	require.NoError(t, db.GetContext(ctx, &count, `SELECT count(*) FROM invoice_items`))
	assert.Zero(t, count)
}

func TestSQLiteDSN(t *testing.T) {
	dsn := database.SQLiteDSN("data/invoice.db")
	assert.Contains(t, dsn, "file:data/invoice.db?")
	assert.Contains(t, dsn, "_pragma=foreign_keys(1)")
}

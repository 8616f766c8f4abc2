package database

// invoice_items.product_id has no foreign key so line items survive product deletion.

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS products (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        name TEXT NOT NULL,
        price REAL NOT NULL,
        image_path TEXT
    )`,
	`CREATE TABLE IF NOT EXISTS invoices (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        customer_name TEXT NOT NULL DEFAULT 'N/A',
        invoice_date TEXT NOT NULL,
        invoice_date_iso TEXT,
        invoice_number TEXT NOT NULL,
        tax_rate REAL NOT NULL DEFAULT 10,
        subtotal REAL NOT NULL,
        tax_amount REAL NOT NULL,
        grand_total REAL NOT NULL,
        currency_symbol TEXT NOT NULL DEFAULT '₹'
    )`,
	`CREATE INDEX IF NOT EXISTS idx_invoices_number ON invoices (invoice_number)`,
	`CREATE INDEX IF NOT EXISTS idx_invoices_date_iso ON invoices (invoice_date_iso)`,
	`CREATE TABLE IF NOT EXISTS invoice_items (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        invoice_id INTEGER NOT NULL,
        product_id INTEGER NOT NULL,
        product_name TEXT NOT NULL,
        price REAL NOT NULL,
        quantity INTEGER NOT NULL,
        total REAL NOT NULL,
        FOREIGN KEY (invoice_id) REFERENCES invoices (id) ON DELETE CASCADE
    )`,
	`CREATE INDEX IF NOT EXISTS idx_invoice_items_invoice ON invoice_items (invoice_id)`,
	`CREATE TABLE IF NOT EXISTS settings (
        id INTEGER PRIMARY KEY,
        currency_code TEXT NOT NULL DEFAULT 'INR',
        currency_symbol TEXT NOT NULL DEFAULT '₹',
        tax_rate REAL NOT NULL DEFAULT 18.0,
        tax_name TEXT NOT NULL DEFAULT 'GST',
        tax_enabled INTEGER NOT NULL DEFAULT 1,
        company_name TEXT NOT NULL DEFAULT '',
        company_address TEXT NOT NULL DEFAULT '',
        company_phone TEXT NOT NULL DEFAULT '',
        company_email TEXT NOT NULL DEFAULT '',
        invoice_prefix TEXT NOT NULL DEFAULT 'INV-',
        invoice_starting_number INTEGER NOT NULL DEFAULT 1000,
        date_format TEXT NOT NULL DEFAULT 'DD/MM/YYYY',
        product_images_enabled INTEGER NOT NULL DEFAULT 1
    )`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS products (
        id BIGSERIAL PRIMARY KEY,
        name TEXT NOT NULL,
        price NUMERIC(12, 2) NOT NULL,
        image_path TEXT
    )`,
	`CREATE TABLE IF NOT EXISTS invoices (
        id BIGSERIAL PRIMARY KEY,
        customer_name TEXT NOT NULL DEFAULT 'N/A',
        invoice_date TEXT NOT NULL,
        invoice_date_iso TEXT,
        invoice_number TEXT NOT NULL,
        tax_rate NUMERIC(6, 2) NOT NULL DEFAULT 10,
        subtotal NUMERIC(14, 2) NOT NULL,
        tax_amount NUMERIC(14, 2) NOT NULL,
        grand_total NUMERIC(14, 2) NOT NULL,
        currency_symbol TEXT NOT NULL DEFAULT '₹'
    )`,
	`CREATE INDEX IF NOT EXISTS idx_invoices_number ON invoices (invoice_number)`,
	`CREATE INDEX IF NOT EXISTS idx_invoices_date_iso ON invoices (invoice_date_iso)`,
	`CREATE TABLE IF NOT EXISTS invoice_items (
        id BIGSERIAL PRIMARY KEY,
        invoice_id BIGINT NOT NULL REFERENCES invoices (id) ON DELETE CASCADE,
        product_id BIGINT NOT NULL,
        product_name TEXT NOT NULL,
        price NUMERIC(12, 2) NOT NULL,
        quantity INTEGER NOT NULL CHECK (quantity > 0),
        total NUMERIC(14, 2) NOT NULL
    )`,
	`CREATE INDEX IF NOT EXISTS idx_invoice_items_invoice ON invoice_items (invoice_id)`,
	`CREATE TABLE IF NOT EXISTS settings (
        id INTEGER PRIMARY KEY,
        currency_code TEXT NOT NULL DEFAULT 'INR',
        currency_symbol TEXT NOT NULL DEFAULT '₹',
        tax_rate NUMERIC(6, 2) NOT NULL DEFAULT 18.0,
        tax_name TEXT NOT NULL DEFAULT 'GST',
        tax_enabled BOOLEAN NOT NULL DEFAULT TRUE,
        company_name TEXT NOT NULL DEFAULT '',
        company_address TEXT NOT NULL DEFAULT '',
        company_phone TEXT NOT NULL DEFAULT '',
        company_email TEXT NOT NULL DEFAULT '',
        invoice_prefix TEXT NOT NULL DEFAULT 'INV-',
        invoice_starting_number BIGINT NOT NULL DEFAULT 1000,
        date_format TEXT NOT NULL DEFAULT 'DD/MM/YYYY',
        product_images_enabled BOOLEAN NOT NULL DEFAULT TRUE
    )`,
}

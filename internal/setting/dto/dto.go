package dto

type CurrencyOption struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

type TaxOption struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type DateFormatOption struct {
	Format      string `json:"format"`
	Description string `json:"description"`
}

type Options struct {
	Currencies  []CurrencyOption   `json:"currencies"`
	Taxes       []TaxOption        `json:"taxes"`
	DateFormats []DateFormatOption `json:"date_formats"`
}

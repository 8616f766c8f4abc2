package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/fekuna/omnipos-invoice-service/internal/export"
	invdto "github.com/fekuna/omnipos-invoice-service/internal/invoice/dto"
	reportdto "github.com/fekuna/omnipos-invoice-service/internal/report/dto"
	"github.com/urfave/cli/v2"
)

func nextNumberCommand() *cli.Command {
	return &cli.Command{
		Name:  "next-number",
		Usage: "print the invoice number the next invoice would get",
		Action: withApp(func(c *cli.Context, a *app) error {
			next, err := a.invoices.NextInvoiceNumber(c.Context)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, next.InvoiceNumber)
			return nil
		}),
	}
}

func historyCommand() *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "invoice count and revenue per period",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "period", Aliases: []string{"p"}, Value: "month", Usage: "year, month, week or day"},
		},
		Action: withApp(func(c *cli.Context, a *app) error {
			summaries, err := a.reports.History(c.Context, c.String("period"))
			if err != nil {
				return err
			}
			return writeHistory(c.App.Writer, summaries)
		}),
	}
}

func topProductsCommand() *cli.Command {
	return &cli.Command{
		Name:  "top-products",
		Usage: "rank products by quantity sold",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "page", Value: 1},
			&cli.IntFlag{Name: "limit", Value: 10},
			&cli.StringFlag{Name: "search", Usage: "case-insensitive product name filter"},
		},
		Action: withApp(func(c *cli.Context, a *app) error {
			page, err := a.reports.MostOrderedProducts(c.Context, &reportdto.RankingFilters{
				Search: c.String("search"),
				Page:   c.Int("page"),
				Limit:  c.Int("limit"),
			})
			if err != nil {
				return err
			}
			return writeRanking(c.App.Writer, page)
		}),
	}
}

func exportCommand() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "export the filtered invoice list",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "format", Value: "csv", Usage: "csv or excel"},
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output file, stdout when empty"},
			&cli.StringFlag{Name: "search"},
			&cli.StringFlag{Name: "customer"},
			&cli.StringFlag{Name: "product"},
			&cli.StringFlag{Name: "start-date"},
			&cli.StringFlag{Name: "end-date"},
		},
		Action: withApp(func(c *cli.Context, a *app) error {
			format := c.String("format")
			if format != "csv" && format != "excel" {
				return cli.Exit("format must be csv or excel", 2)
			}

			invoices, err := a.invoices.ExportInvoices(c.Context, &invdto.InvoiceFilters{
				Search:    c.String("search"),
				Customer:  c.String("customer"),
				Product:   c.String("product"),
				StartDate: c.String("start-date"),
				EndDate:   c.String("end-date"),
			})
			if err != nil {
				return err
			}

			w := c.App.Writer
			if out := c.String("out"); out != "" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}

			if format == "excel" {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(export.NewSheet("invoices", invoices))
			}
			return export.WriteCSV(w, export.Headers, export.InvoiceRows(invoices))
		}),
	}
}

func writeHistory(w io.Writer, summaries []reportdto.PeriodSummary) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PERIOD\tCOUNT\tREVENUE")
	for _, s := range summaries {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", s.Period, s.Count, s.TotalRevenue.StringFixed(2))
	}
	return tw.Flush()
}

func writeRanking(w io.Writer, page *reportdto.RankingPage) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PRODUCT\tQUANTITY\tINVOICES\tREVENUE\tLAST ORDERED")
	for _, r := range page.Products {
		last := "-"
		if r.LastOrdered != nil {
			last = *r.LastOrdered
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%s\n", r.ProductName, r.TotalQuantity, r.InvoiceCount, r.TotalRevenue.StringFixed(2), last)
	}
	fmt.Fprintf(tw, "\npage %d of %d (%d products)\n", page.Pagination.CurrentPage, page.Pagination.TotalPages, page.Pagination.Total)
	return tw.Flush()
}

// Command invoicectl runs reporting and numbering queries against the invoice store.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fekuna/omnipos-invoice-service/config"
	"github.com/fekuna/omnipos-invoice-service/internal/database"
	"github.com/fekuna/omnipos-invoice-service/internal/invoice"
	invRepoPkg "github.com/fekuna/omnipos-invoice-service/internal/invoice/repository"
	invUCPkg "github.com/fekuna/omnipos-invoice-service/internal/invoice/usecase"
	"github.com/fekuna/omnipos-invoice-service/internal/logger"
	prodRepoPkg "github.com/fekuna/omnipos-invoice-service/internal/product/repository"
	"github.com/fekuna/omnipos-invoice-service/internal/report"
	reportRepoPkg "github.com/fekuna/omnipos-invoice-service/internal/report/repository"
	reportUCPkg "github.com/fekuna/omnipos-invoice-service/internal/report/usecase"
	settingRepoPkg "github.com/fekuna/omnipos-invoice-service/internal/setting/repository"
	settingUCPkg "github.com/fekuna/omnipos-invoice-service/internal/setting/usecase"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

type app struct {
	db       *sqlx.DB
	invoices invoice.UseCase
	reports  report.UseCase
	logger   logger.ZapLogger
}

func (a *app) Close() {
	a.db.Close()
	a.logger.Sync()
}

func openApp(ctx context.Context) (*app, error) {
	cfg := config.LoadEnv()

	appLogger := logger.NewZapLogger(&logger.ZapLoggerConfig{
		Encoding:          "console",
		Level:             "warn",
		DisableStacktrace: true,
	})

	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	db, err := database.New(ctx, cfg)
	if err != nil {
		return nil, err
	}

	settingUC := settingUCPkg.NewSettingUseCase(settingRepoPkg.NewSQLRepository(db), appLogger)
	return &app{
		db:       db,
		invoices: invUCPkg.NewInvoiceUseCase(invRepoPkg.NewSQLRepository(db), prodRepoPkg.NewSQLRepository(db), settingUC, cfg.Export.MaxRows, appLogger),
		reports:  reportUCPkg.NewReportUseCase(reportRepoPkg.NewSQLRepository(db), appLogger),
		logger:   appLogger,
	}, nil
}

// withApp opens the store for the duration of one command.
func withApp(fn func(c *cli.Context, a *app) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		a, err := openApp(c.Context)
		if err != nil {
			return cli.Exit(fmt.Sprintf("failed to open database: %v", err), 1)
		}
		defer a.Close()
		return fn(c, a)
	}
}

func newCLI() *cli.App {
	return &cli.App{
		Name:  "invoicectl",
		Usage: "query invoices, history and rankings from the command line",
		Commands: []*cli.Command{
			nextNumberCommand(),
			historyCommand(),
			topProductsCommand(),
			exportCommand(),
		},
	}
}

func main() {
	_ = godotenv.Load() // Load .env file if it exists

	if err := newCLI().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	catalogapp "github.com/retail/retailctl/internal/application/catalog"
	financeapp "github.com/retail/retailctl/internal/application/finance"
	partnerapp "github.com/retail/retailctl/internal/application/partner"
	reportapp "github.com/retail/retailctl/internal/application/report"
	tradeapp "github.com/retail/retailctl/internal/application/trade"
	"github.com/retail/retailctl/internal/infrastructure/cache"
	"github.com/retail/retailctl/internal/infrastructure/config"
	"github.com/retail/retailctl/internal/infrastructure/logger"
	"github.com/retail/retailctl/internal/infrastructure/persistence"
	"github.com/retail/retailctl/internal/interfaces/cli"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	productRepo := persistence.NewGormProductRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	paymentRepo := persistence.NewGormPaymentRepository(db.DB)
	orderArchive := persistence.NewGormOrderArchive(db.DB)
	reportRepo := persistence.NewGormReportRepository(db.DB)

	// the report cache is optional; without Redis reports hit the database
	var reportCache reportapp.Cache
	if cfg.Cache.Enabled {
		redisCache, err := cache.NewRedisReportCache(&cfg.Redis, cfg.Cache.TTL, log)
		if err != nil {
			log.Warn("Report cache disabled", zap.Error(err))
		} else {
			reportCache = redisCache
			defer func() {
				_ = redisCache.Close()
			}()
		}
	}

	app := &cli.App{
		Config:    cfg,
		Logger:    log,
		Products:  catalogapp.NewProductService(productRepo),
		Customers: partnerapp.NewCustomerService(customerRepo),
		Orders: tradeapp.NewOrderService(
			tradeapp.RepositoryCatalog{Products: productRepo},
			tradeapp.RepositoryDirectory{Customers: customerRepo},
			orderArchive,
			log,
		),
		Payments: financeapp.NewPaymentService(paymentRepo),
		Reports:  reportapp.NewReportService(reportRepo, reportCache, log),
	}

	rootCmd := cli.NewRootCmd(app)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		os.Exit(1)
	}
}

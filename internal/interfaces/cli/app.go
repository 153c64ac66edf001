package cli

import (
	catalogapp "github.com/retail/retailctl/internal/application/catalog"
	financeapp "github.com/retail/retailctl/internal/application/finance"
	partnerapp "github.com/retail/retailctl/internal/application/partner"
	reportapp "github.com/retail/retailctl/internal/application/report"
	tradeapp "github.com/retail/retailctl/internal/application/trade"
	"github.com/retail/retailctl/internal/infrastructure/config"
	"go.uber.org/zap"
)

// App bundles the wired application services for the CLI commands.
// It is assembled once in the composition root and shared by every
// command, including all iterations of the interactive shell.
type App struct {
	Config    *config.Config
	Logger    *zap.Logger
	Products  *catalogapp.ProductService
	Customers *partnerapp.CustomerService
	Orders    *tradeapp.OrderService
	Payments  *financeapp.PaymentService
	Reports   *reportapp.ReportService
}

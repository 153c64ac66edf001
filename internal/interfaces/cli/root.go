package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds the retailctl command tree. A fresh tree is built
// per invocation so flag state never leaks between shell iterations.
func NewRootCmd(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "retailctl",
		Short: "Retail management CLI",
		Long: `retailctl manages a product catalog, customer directory, order ledger,
payments and reports.

Orders live in an in-memory ledger scoped to the process; use the
interactive shell to create and settle orders in one session. Catalog,
customers, payments and report data are persisted.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newProductCmd(app),
		newCustomerCmd(app),
		newOrderCmd(app),
		newPaymentCmd(app),
		newReportCmd(app),
		newShellCmd(app),
	)

	return rootCmd
}

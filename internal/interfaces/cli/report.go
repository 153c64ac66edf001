package cli

import (
	"github.com/spf13/cobra"
)

func newReportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Run reports over archived orders and payments",
	}

	cmd.AddCommand(
		newReportTopProductsCmd(app),
		newReportRevenueCmd(app),
		newReportOrdersPerCustomerCmd(app),
		newReportFrequentCustomersCmd(app),
	)

	return cmd
}

func newReportTopProductsCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "top-products",
		Short: "Products with the highest sold quantities",
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit <= 0 {
				limit = app.Config.Report.TopProductsLimit
			}
			result, err := app.Reports.TopSellingProducts(cmd.Context(), limit)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "number of products to show")

	return cmd
}

func newReportRevenueCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "revenue",
		Short: "Total paid revenue for the previous calendar month",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Reports.TotalRevenueLastMonth(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}
}

func newReportOrdersPerCustomerCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "orders-per-customer",
		Short: "Order counts per customer",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Reports.OrdersPerCustomer(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}
}

func newReportFrequentCustomersCmd(app *App) *cobra.Command {
	var minOrders int64

	cmd := &cobra.Command{
		Use:   "frequent-customers",
		Short: "Customers with at least a minimum number of orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			if minOrders <= 0 {
				minOrders = app.Config.Report.FrequentMinOrders
			}
			result, err := app.Reports.FrequentCustomers(cmd.Context(), minOrders)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().Int64Var(&minOrders, "min-orders", 0, "minimum order count")

	return cmd
}

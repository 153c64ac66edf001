package cli

import (
	"github.com/spf13/cobra"

	catalogapp "github.com/retail/retailctl/internal/application/catalog"
)

func newProductCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "product",
		Short: "Manage the product catalog",
	}

	cmd.AddCommand(
		newProductAddCmd(app),
		newProductGetCmd(app),
		newProductListCmd(app),
		newProductRestockCmd(app),
		newProductLowStockCmd(app),
		newProductDeleteCmd(app),
	)

	return cmd
}

func newProductAddCmd(app *App) *cobra.Command {
	var req catalogapp.AddProductRequest

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a product to the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			product, err := app.Products.Add(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), product)
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "product name")
	cmd.Flags().StringVar(&req.SKU, "sku", "", "stock keeping unit, unique")
	cmd.Flags().Float64Var(&req.Price, "price", 0, "unit price")
	cmd.Flags().Int64Var(&req.Stock, "stock", 0, "initial stock level")
	cmd.Flags().StringVar(&req.Category, "category", "", "product category")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("sku")
	_ = cmd.MarkFlagRequired("price")

	return cmd
}

func newProductGetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id|sku>",
		Short: "Show a product by id or SKU",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if id, err := parseID(args[0]); err == nil {
				product, err := app.Products.GetByID(cmd.Context(), id)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), product)
			}
			product, err := app.Products.GetBySKU(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), product)
		},
	}
}

func newProductListCmd(app *App) *cobra.Command {
	var (
		category string
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products, optionally filtered by category",
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := app.Products.List(cmd.Context(), category, limit)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), products)
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "filter by category")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of rows")

	return cmd
}

func newProductRestockCmd(app *App) *cobra.Command {
	var delta int64

	cmd := &cobra.Command{
		Use:   "restock <id>",
		Short: "Increase a product's stock",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			product, err := app.Products.Restock(cmd.Context(), catalogapp.RestockRequest{
				ProductID: id,
				Delta:     delta,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), product)
		},
	}

	cmd.Flags().Int64Var(&delta, "delta", 0, "amount to add, must be positive")
	_ = cmd.MarkFlagRequired("delta")

	return cmd
}

func newProductLowStockCmd(app *App) *cobra.Command {
	var threshold int64

	cmd := &cobra.Command{
		Use:   "low-stock",
		Short: "List products at or below a stock threshold",
		RunE: func(cmd *cobra.Command, args []string) error {
			if threshold <= 0 {
				threshold = app.Config.Report.LowStockThreshold
			}
			products, err := app.Products.LowStock(cmd.Context(), threshold)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), products)
		},
	}

	cmd.Flags().Int64Var(&threshold, "threshold", 0, "stock threshold")

	return cmd
}

func newProductDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a product from the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			product, err := app.Products.Delete(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), product)
		},
	}
}

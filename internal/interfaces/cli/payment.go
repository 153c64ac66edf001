package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/retail/retailctl/internal/domain/finance"
)

func newPaymentCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payment",
		Short: "Track payments per order",
	}

	cmd.AddCommand(
		newPaymentProcessCmd(app),
		newPaymentRefundCmd(app),
		newPaymentStatusCmd(app),
	)

	return cmd
}

func newPaymentProcessCmd(app *App) *cobra.Command {
	var method string

	cmd := &cobra.Command{
		Use:     "process <order-id>",
		Aliases: []string{"pay"},
		Short:   "Mark an order's payment as paid",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			orderID, err := parseOrderID(args[0])
			if err != nil {
				return err
			}
			payment, err := app.Payments.Process(cmd.Context(), orderID, method)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), payment)
		},
	}

	cmd.Flags().StringVar(&method, "method", "",
		fmt.Sprintf("payment method (%s)", strings.Join(finance.ValidMethods, ", ")))
	_ = cmd.MarkFlagRequired("method")

	return cmd
}

func newPaymentRefundCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "refund <order-id>",
		Short: "Refund a paid order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			orderID, err := parseOrderID(args[0])
			if err != nil {
				return err
			}
			payment, err := app.Payments.Refund(cmd.Context(), orderID)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), payment)
		},
	}
}

func newPaymentStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status <order-id>",
		Short: "Show the payment for an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			orderID, err := parseOrderID(args[0])
			if err != nil {
				return err
			}
			payment, err := app.Payments.GetStatus(cmd.Context(), orderID)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), payment)
		},
	}
}

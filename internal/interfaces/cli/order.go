package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	tradeapp "github.com/retail/retailctl/internal/application/trade"
	"github.com/retail/retailctl/internal/domain/shared"
)

func newOrderCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Manage the order ledger",
		Long: `Manage the order ledger.

The ledger is in-memory and scoped to the process: orders created here
are gone when the process exits. Run these commands inside 'retailctl
shell' to create, inspect and settle orders in one session.`,
	}

	cmd.AddCommand(
		newOrderCreateCmd(app),
		newOrderCancelCmd(app),
		newOrderCompleteCmd(app),
		newOrderGetCmd(app),
		newOrderListCmd(app),
	)

	return cmd
}

// parseItemSpec parses an "<product-id>:<quantity>" order line argument
func parseItemSpec(spec string) (tradeapp.OrderItemRequest, error) {
	parts := strings.Split(spec, ":")
	if len(parts) != 2 {
		return tradeapp.OrderItemRequest{}, shared.NewDomainError("INVALID_INPUT",
			fmt.Sprintf("'%s' is not a valid item, expected <product-id>:<quantity>", spec))
	}
	productID, err := parseID(parts[0])
	if err != nil {
		return tradeapp.OrderItemRequest{}, err
	}
	quantity, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return tradeapp.OrderItemRequest{}, shared.NewDomainError("INVALID_INPUT",
			fmt.Sprintf("'%s' is not a valid quantity", parts[1]))
	}
	return tradeapp.OrderItemRequest{ProductID: productID, Quantity: quantity}, nil
}

func newOrderCreateCmd(app *App) *cobra.Command {
	var (
		customerArg string
		itemSpecs   []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an order, deducting stock atomically",
		RunE: func(cmd *cobra.Command, args []string) error {
			customerID, err := parseID(customerArg)
			if err != nil {
				return err
			}

			items := make([]tradeapp.OrderItemRequest, 0, len(itemSpecs))
			for _, spec := range itemSpecs {
				item, err := parseItemSpec(spec)
				if err != nil {
					return err
				}
				items = append(items, item)
			}

			order, err := app.Orders.CreateOrder(cmd.Context(), tradeapp.CreateOrderRequest{
				CustomerID: customerID,
				Items:      items,
			})
			if err != nil {
				return err
			}

			// every order starts with a pending payment
			if _, err := app.Payments.Create(cmd.Context(), order.ID, order.TotalAmountMoney()); err != nil {
				app.Logger.Warn("failed to create pending payment",
					zap.Int64("order_id", order.ID),
					zap.Error(err))
			}

			return printJSON(cmd.OutOrStdout(), order)
		},
	}

	cmd.Flags().StringVar(&customerArg, "customer", "", "customer id")
	cmd.Flags().StringArrayVar(&itemSpecs, "item", nil, "order line as <product-id>:<quantity>, repeatable")
	_ = cmd.MarkFlagRequired("customer")
	_ = cmd.MarkFlagRequired("item")

	return cmd
}

func newOrderCancelCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <order-id>",
		Short: "Cancel a placed order, restoring stock",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			orderID, err := parseOrderID(args[0])
			if err != nil {
				return err
			}
			order, err := app.Orders.CancelOrder(cmd.Context(), orderID)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), order)
		},
	}
}

func newOrderCompleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "complete <order-id>",
		Short: "Complete a placed order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			orderID, err := parseOrderID(args[0])
			if err != nil {
				return err
			}
			order, err := app.Orders.CompleteOrder(cmd.Context(), orderID)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), order)
		},
	}
}

func newOrderGetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "get <order-id>",
		Aliases: []string{"show"},
		Short:   "Show an order with its customer details",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			orderID, err := parseOrderID(args[0])
			if err != nil {
				return err
			}
			details, err := app.Orders.GetOrderDetails(cmd.Context(), orderID)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), details)
		},
	}
}

func newOrderListCmd(app *App) *cobra.Command {
	var customerArg string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a customer's orders in creation order",
		RunE: func(cmd *cobra.Command, args []string) error {
			customerID, err := parseID(customerArg)
			if err != nil {
				return err
			}
			orders := app.Orders.ListOrdersOfCustomer(cmd.Context(), customerID)
			return printJSON(cmd.OutOrStdout(), orders)
		},
	}

	cmd.Flags().StringVar(&customerArg, "customer", "", "customer id")
	_ = cmd.MarkFlagRequired("customer")

	return cmd
}

package cli

import (
	"github.com/spf13/cobra"

	partnerapp "github.com/retail/retailctl/internal/application/partner"
)

func newCustomerCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "customer",
		Short: "Manage the customer directory",
	}

	cmd.AddCommand(
		newCustomerRegisterCmd(app),
		newCustomerUpdateCmd(app),
		newCustomerDeleteCmd(app),
		newCustomerListCmd(app),
		newCustomerSearchCmd(app),
	)

	return cmd
}

func newCustomerRegisterCmd(app *App) *cobra.Command {
	var req partnerapp.RegisterCustomerRequest

	cmd := &cobra.Command{
		Use:     "register",
		Aliases: []string{"add"},
		Short:   "Register a new customer",
		RunE: func(cmd *cobra.Command, args []string) error {
			customer, err := app.Customers.Register(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), customer)
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "customer name")
	cmd.Flags().StringVar(&req.Email, "email", "", "email address, unique")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&req.City, "city", "", "city")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("phone")

	return cmd
}

func newCustomerUpdateCmd(app *App) *cobra.Command {
	var req partnerapp.UpdateCustomerRequest

	cmd := &cobra.Command{
		Use:   "update <email>",
		Short: "Update a customer's phone and/or city",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Email = args[0]
			customer, err := app.Customers.Update(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), customer)
		},
	}

	cmd.Flags().StringVar(&req.Phone, "phone", "", "new phone number")
	cmd.Flags().StringVar(&req.City, "city", "", "new city")

	return cmd
}

func newCustomerDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <email>",
		Short: "Remove a customer from the directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			customer, err := app.Customers.Delete(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), customer)
		},
	}
}

func newCustomerListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all customers",
		RunE: func(cmd *cobra.Command, args []string) error {
			customers, err := app.Customers.List(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), customers)
		},
	}
}

func newCustomerSearchCmd(app *App) *cobra.Command {
	var email, city string

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search customers by email and/or city",
		RunE: func(cmd *cobra.Command, args []string) error {
			customers, err := app.Customers.Search(cmd.Context(), email, city)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), customers)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "filter by email")
	cmd.Flags().StringVar(&city, "city", "", "filter by city")

	return cmd
}

package main

import (
	"fmt"
	"time"

	"golden-thread/internal/apitypes"
	"golden-thread/internal/domain"

	"github.com/spf13/cobra"
)

func (s *shop) checkoutCmd() *cobra.Command {
	var address domain.Address
	var payment string

	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Place an order for the cart and empty it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.requireSession(); err != nil {
				return err
			}

			c, err := s.store.LoadCart()
			if err != nil {
				return err
			}

			totals := c.Totals()
			created, err := s.api.PlaceOrder(cmd.Context(), apitypes.PlaceOrderRequest{
				Items:   c.Lines,
				Address: &address,
				Totals: &apitypes.OrderTotals{
					Subtotal: &totals.Subtotal,
					Shipping: &totals.Shipping,
					Total:    &totals.Total,
				},
				PaymentMethod: payment,
			})
			if err != nil {
				return err
			}

			c.Clear()
			if err := s.store.SaveCart(c); err != nil {
				return err
			}

			fmt.Fprintf(s.out, "Order %s placed (%s), total %s\n", created.ID, created.Status, money(totals.Total))
			return nil
		},
	}

	cmd.Flags().StringVar(&address.Name, "name", "", "recipient name")
	cmd.Flags().StringVar(&address.Phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&address.Line, "line", "", "street address")
	cmd.Flags().StringVar(&address.City, "city", "", "city")
	cmd.Flags().StringVar(&payment, "payment", "Card", "payment method label")
	return cmd
}

func (s *shop) ordersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "orders",
		Short: "List your orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.requireSession(); err != nil {
				return err
			}
			orders, err := s.api.MyOrders(cmd.Context())
			if err != nil {
				return err
			}

			tw := s.table()
			fmt.Fprintln(tw, "ID\tSTATUS\tTOTAL\tPLACED")
			for _, o := range orders {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", o.ID, o.Status, money(o.Total), o.CreatedAt.Time().Local().Format(time.DateTime))
			}
			return tw.Flush()
		},
	}
}

func (s *shop) trackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "track <order-id>",
		Short: "Track an order by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := s.api.Order(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			s.printOrder(o.ID, o.Status, "", o.CreatedAt.Time(), o.Totals, o.Address, o.Items)
			return nil
		},
	}
}

// printOrder renders an order with a progress line over the lifecycle
func (s *shop) printOrder(id string, status, raw domain.OrderStatus, createdAt time.Time, totals domain.Totals, address domain.Address, items []domain.LineItem) {
	fmt.Fprintf(s.out, "Order %s  placed %s\n", id, createdAt.Local().Format(time.DateTime))
	if raw != "" {
		fmt.Fprintf(s.out, "Stored status: %s\n", raw)
	}

	for i, st := range domain.OrderStatuses {
		mark := "[ ]"
		if domain.StatusRank(st) <= domain.StatusRank(status) {
			mark = "[x]"
		}
		if i > 0 {
			fmt.Fprint(s.out, " -> ")
		}
		fmt.Fprintf(s.out, "%s %s", mark, st)
	}
	fmt.Fprintln(s.out)

	fmt.Fprintf(s.out, "Ship to: %s, %s, %s (%s)\n", address.Name, address.Line, address.City, address.Phone)

	tw := s.table()
	for _, l := range items {
		fmt.Fprintf(tw, "  %s\t%s\tx%d\t%s\n", l.Name, l.Size, l.Qty, money(l.Price))
	}
	fmt.Fprintf(tw, "  Subtotal %s\tShipping %s\tTotal %s\t\n", money(totals.Subtotal), money(totals.Shipping), money(totals.Total))
	tw.Flush()
}

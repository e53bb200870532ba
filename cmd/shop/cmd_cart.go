package main

import (
	"fmt"
	"strconv"

	"golden-thread/internal/cart"

	"github.com/spf13/cobra"
)

func (s *shop) cartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage the local cart",
	}
	cmd.AddCommand(
		s.cartAddCmd(),
		s.cartListCmd(),
		s.cartQtyCmd(),
		s.cartRemoveCmd(),
		s.cartClearCmd(),
	)
	return cmd
}

// updateCart loads the cart, applies fn and saves the result
func (s *shop) updateCart(fn func(c *cart.Cart) error) (*cart.Cart, error) {
	c, err := s.store.LoadCart()
	if err != nil {
		return nil, err
	}
	if err := fn(c); err != nil {
		return nil, err
	}
	if err := s.store.SaveCart(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *shop) cartAddCmd() *cobra.Command {
	var size string
	var qty int

	cmd := &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a product; size defaults to its first size",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}
			product, err := s.api.Product(cmd.Context(), id)
			if err != nil {
				return err
			}

			c, err := s.updateCart(func(c *cart.Cart) error {
				line := c.Add(product, size, qty)
				fmt.Fprintf(s.out, "Added %s (%s) x%d\n", line.Name, line.Size, qty)
				return nil
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(s.out, "Cart: %d item(s)\n", c.Count())
			return nil
		},
	}

	cmd.Flags().StringVar(&size, "size", "", "size to add")
	cmd.Flags().IntVar(&qty, "qty", 1, "quantity")
	return cmd
}

func (s *shop) cartListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the cart with totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := s.store.LoadCart()
			if err != nil {
				return err
			}
			return s.printCart(c)
		},
	}
}

func (s *shop) cartQtyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "qty <key> <delta>",
		Short: "Change a line's quantity by delta (never below 1)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			delta, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid delta %q", args[1])
			}
			c, err := s.updateCart(func(c *cart.Cart) error {
				if !c.ChangeQty(args[0], delta) {
					return fmt.Errorf("no cart line %q", args[0])
				}
				return nil
			})
			if err != nil {
				return err
			}
			return s.printCart(c)
		},
	}
}

func (s *shop) cartRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <key>",
		Short: "Remove a cart line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := s.updateCart(func(c *cart.Cart) error {
				if !c.Remove(args[0]) {
					return fmt.Errorf("no cart line %q", args[0])
				}
				return nil
			})
			if err != nil {
				return err
			}
			return s.printCart(c)
		},
	}
}

func (s *shop) cartClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := s.updateCart(func(c *cart.Cart) error {
				c.Clear()
				return nil
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(s.out, "Cart cleared")
			return nil
		},
	}
}

func (s *shop) printCart(c *cart.Cart) error {
	if c.Empty() {
		fmt.Fprintln(s.out, "Cart is empty")
		return nil
	}

	tw := s.table()
	fmt.Fprintln(tw, "KEY\tNAME\tSIZE\tQTY\tPRICE")
	for _, l := range c.Lines {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", l.Key, l.Name, l.Size, l.Qty, money(l.Price))
	}
	totals := c.Totals()
	fmt.Fprintf(tw, "\t\t\tSubtotal\t%s\n", money(totals.Subtotal))
	fmt.Fprintf(tw, "\t\t\tShipping\t%s\n", money(totals.Shipping))
	fmt.Fprintf(tw, "\t\t\tTotal\t%s\n", money(totals.Total))
	return tw.Flush()
}

package main

import (
	"fmt"
	"strconv"
	"strings"

	"golden-thread/internal/client"
	"golden-thread/internal/domain"

	"github.com/spf13/cobra"
)

func (s *shop) productsCmd() *cobra.Command {
	var q client.ProductQuery

	cmd := &cobra.Command{
		Use:   "products",
		Short: "List products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := s.api.Products(cmd.Context(), q)
			if err != nil {
				return err
			}
			s.printProducts(products)
			return nil
		},
	}

	cmd.Flags().StringVar(&q.Category, "category", "", "exact category name, or All")
	cmd.Flags().StringVarP(&q.Query, "query", "q", "", "search name, description and category")
	cmd.Flags().StringVar(&q.Sort, "sort", "", `"Price: Low", "Price: High" or "Top Rated"`)
	return cmd
}

func (s *shop) productCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "product <id>",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}
			p, err := s.api.Product(cmd.Context(), id)
			if err != nil {
				return err
			}

			fmt.Fprintf(s.out, "%s  (#%d)\n", p.Name, p.ID)
			fmt.Fprintf(s.out, "%s  %s  rating %.1f\n", p.Category, money(p.Price), p.Rating)
			fmt.Fprintf(s.out, "sizes: %s\n\n%s\n", strings.Join(p.Sizes, ", "), p.Description)
			return nil
		},
	}
}

func (s *shop) categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			categories, err := s.api.Categories(cmd.Context())
			if err != nil {
				return err
			}

			tw := s.table()
			fmt.Fprintln(tw, "SLUG\tNAME")
			for _, c := range categories {
				fmt.Fprintf(tw, "%s\t%s\n", c.Slug, c.Name)
			}
			return tw.Flush()
		},
	}
}

func (s *shop) categoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "category <slug>",
		Short: "List the products of a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := s.api.CategoryProducts(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(s.out, "%s\n\n", result.Category.Name)
			products := make([]domain.Product, 0, len(result.Products))
			for _, p := range result.Products {
				products = append(products, *p)
			}
			s.printProducts(products)
			return nil
		},
	}
}

func (s *shop) printProducts(products []domain.Product) {
	tw := s.table()
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tPRICE\tRATING\tSIZES")
	for _, p := range products {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%.1f\t%s\n", p.ID, p.Name, p.Category, money(p.Price), p.Rating, strings.Join(p.Sizes, ","))
	}
	tw.Flush()
}

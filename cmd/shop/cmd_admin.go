package main

import (
	"fmt"
	"time"

	"golden-thread/internal/apitypes"
	"golden-thread/internal/domain"

	"github.com/spf13/cobra"
)

func (s *shop) adminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Admin panel (requires an admin account)",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := s.open(); err != nil {
				return err
			}
			if s.session.User != nil && s.session.User.Role != domain.RoleAdmin {
				return fmt.Errorf("signed in as %s, which is not an admin", s.session.User.Email)
			}
			return s.requireSession()
		},
	}

	cmd.AddCommand(
		s.adminOrdersCmd(),
		s.adminOrderCmd(),
		s.adminStatusCmd(),
		s.adminContactCmd(),
		s.adminCategoryCmd(),
		s.adminProductCmd(),
		s.adminBlogCmd(),
		s.adminReviewCmd(),
	)
	return cmd
}

func (s *shop) adminOrdersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "orders",
		Short: "List every order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			orders, err := s.api.AdminOrders(cmd.Context())
			if err != nil {
				return err
			}

			tw := s.table()
			fmt.Fprintln(tw, "ID\tSTATUS\tSTORED\tTOTAL\tCUSTOMER\tCITY\tPLACED")
			for _, o := range orders {
				email := "-"
				if o.Customer.Email != nil {
					email = *o.Customer.Email
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					o.ID, o.Status, o.RawStatus, money(o.Total), email, o.Customer.City,
					o.CreatedAt.Time().Local().Format(time.DateTime))
			}
			return tw.Flush()
		},
	}
}

func (s *shop) adminOrderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "order <order-id>",
		Short: "Show an order with its stored status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := s.api.AdminOrder(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			s.printOrder(o.ID, o.Status, o.RawStatus, o.CreatedAt.Time(), o.Totals, o.Address, o.Items)
			return nil
		},
	}
}

func (s *shop) adminStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <order-id> <Placed|Packed|Shipped|Delivered>",
		Short: "Set the stored status of an order",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			updated, err := s.api.UpdateOrderStatus(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(s.out, "Order %s is now %s\n", updated.ID, updated.Status)
			return nil
		},
	}
}

func (s *shop) adminContactCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contact",
		Short: "Read contact messages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			messages, err := s.api.AdminContact(cmd.Context())
			if err != nil {
				return err
			}
			for _, m := range messages {
				fmt.Fprintf(s.out, "%s  %s <%s>\n  %s\n  %s\n\n",
					m.CreatedAt.Local().Format(time.DateTime), m.Name, m.Email, m.Subject, m.Message)
			}
			return nil
		},
	}
}

func (s *shop) adminCategoryCmd() *cobra.Command {
	var req apitypes.CreateCategoryRequest
	var image string

	cmd := &cobra.Command{
		Use:   "category",
		Short: "Create a category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if image != "" {
				req.Image = &image
			}
			if err := s.api.CreateCategory(cmd.Context(), req); err != nil {
				return err
			}
			fmt.Fprintf(s.out, "Category %s created\n", req.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "category name; products join it by this name")
	cmd.Flags().StringVar(&req.Slug, "slug", "", "URL slug")
	cmd.Flags().StringVar(&image, "image", "", "image URL")
	return cmd
}

func (s *shop) adminProductCmd() *cobra.Command {
	var req apitypes.CreateProductRequest
	var rating float64

	cmd := &cobra.Command{
		Use:   "product",
		Short: "Create a product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("rating") {
				req.Rating = &rating
			}
			p, err := s.api.CreateProduct(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(s.out, "Product #%d %s created\n", p.ID, p.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "product name")
	cmd.Flags().StringVar(&req.Category, "category", "", "category name")
	cmd.Flags().Float64Var(&req.Price, "price", 0, "price")
	cmd.Flags().Float64Var(&rating, "rating", domain.DefaultRating, "rating 0-5")
	cmd.Flags().StringVar(&req.Image, "image", "", "image URL")
	cmd.Flags().StringVar(&req.Description, "description", "", "description")
	cmd.Flags().StringSliceVar(&req.Sizes, "sizes", nil, "sizes, e.g. S,M,L")
	return cmd
}

func (s *shop) adminBlogCmd() *cobra.Command {
	var req apitypes.CreateBlogRequest
	var image string

	cmd := &cobra.Command{
		Use:   "blog",
		Short: "Publish a blog post",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if image != "" {
				req.Image = &image
			}
			b, err := s.api.CreateBlog(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(s.out, "Blog %s published\n", b.Slug)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Title, "title", "", "title")
	cmd.Flags().StringVar(&req.Slug, "slug", "", "URL slug")
	cmd.Flags().StringVar(&req.Excerpt, "excerpt", "", "short summary")
	cmd.Flags().StringVar(&req.Content, "content", "", "post body")
	cmd.Flags().StringVar(&image, "image", "", "image URL")
	return cmd
}

func (s *shop) adminReviewCmd() *cobra.Command {
	var req apitypes.CreateReviewRequest

	cmd := &cobra.Command{
		Use:   "review",
		Short: "Add a customer review",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := s.api.CreateReview(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(s.out, "Review #%d added\n", r.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "reviewer name")
	cmd.Flags().IntVar(&req.Rating, "rating", 5, "rating 1-5")
	cmd.Flags().StringVar(&req.Comment, "comment", "", "review text")
	return cmd
}

package main

import (
	"fmt"
	"strings"

	"golden-thread/internal/apitypes"

	"github.com/spf13/cobra"
)

func (s *shop) blogsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "blogs",
		Short: "List blog posts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			blogs, err := s.api.Blogs(cmd.Context())
			if err != nil {
				return err
			}

			tw := s.table()
			fmt.Fprintln(tw, "SLUG\tTITLE\tEXCERPT")
			for _, b := range blogs {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", b.Slug, b.Title, b.Excerpt)
			}
			return tw.Flush()
		},
	}
}

func (s *shop) blogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "blog <slug>",
		Short: "Read a blog post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := s.api.Blog(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(s.out, "%s\n%s\n\n%s\n", b.Title, strings.Repeat("=", len(b.Title)), b.Content)
			return nil
		},
	}
}

func (s *shop) reviewsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reviews",
		Short: "Show recent customer reviews",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reviews, err := s.api.Reviews(cmd.Context())
			if err != nil {
				return err
			}
			for _, r := range reviews {
				fmt.Fprintf(s.out, "%-5s %s: %s\n", strings.Repeat("*", r.Rating), r.Name, r.Comment)
			}
			return nil
		},
	}
}

func (s *shop) contactCmd() *cobra.Command {
	var req apitypes.ContactRequest

	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Send a message to the shop",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.api.Contact(cmd.Context(), req); err != nil {
				return err
			}
			fmt.Fprintln(s.out, "Message sent")
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "your name")
	cmd.Flags().StringVar(&req.Email, "email", "", "your email")
	cmd.Flags().StringVar(&req.Subject, "subject", "", "subject")
	cmd.Flags().StringVar(&req.Message, "message", "", "message")
	return cmd
}

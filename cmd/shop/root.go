package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"golden-thread/internal/cart"
	"golden-thread/internal/client"

	"github.com/spf13/cobra"
)

// shop is the state shared by every command: the API client, the local
// state file and the signed-in session.
type shop struct {
	apiURL    string
	statePath string

	api     *client.Client
	store   cart.Store
	session cart.Session
	out     io.Writer
}

func defaultStatePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".golden-thread.db"
	}
	return filepath.Join(home, ".golden-thread.db")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// run executes the CLI with args and releases the state file afterwards,
// whether or not the command failed.
func run(out io.Writer, args []string) error {
	s := &shop{out: out}
	defer s.close()

	root := s.rootCmd()
	root.SetArgs(args)
	return root.Execute()
}

func (s *shop) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "shop",
		Short:         "Golden Thread storefront from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.open()
		},
	}
	root.SetOut(s.out)

	root.PersistentFlags().StringVar(&s.apiURL, "api", envOr("GT_API_URL", client.DefaultBaseURL), "storefront API base URL")
	root.PersistentFlags().StringVar(&s.statePath, "state", envOr("GT_STATE", defaultStatePath()), "local cart and session file")

	root.AddCommand(
		s.productsCmd(),
		s.productCmd(),
		s.categoriesCmd(),
		s.categoryCmd(),
		s.registerCmd(),
		s.loginCmd(),
		s.logoutCmd(),
		s.cartCmd(),
		s.checkoutCmd(),
		s.ordersCmd(),
		s.trackCmd(),
		s.blogsCmd(),
		s.blogCmd(),
		s.reviewsCmd(),
		s.contactCmd(),
		s.adminCmd(),
	)

	return root
}

func (s *shop) open() error {
	store, err := cart.OpenBoltStore(s.statePath)
	if err != nil {
		return err
	}
	session, err := store.LoadSession()
	if err != nil {
		store.Close()
		return err
	}

	s.store = store
	s.session = session
	s.api = client.New(s.apiURL).SetToken(session.Token)
	return nil
}

func (s *shop) close() error {
	if s.store == nil {
		return nil
	}
	err := s.store.Close()
	s.store = nil
	return err
}

func (s *shop) requireSession() error {
	if !s.session.SignedIn() {
		return fmt.Errorf("not signed in: run `shop login` first")
	}
	return nil
}

func (s *shop) table() *tabwriter.Writer {
	return tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

package main

import (
	"fmt"

	"golden-thread/internal/apitypes"
	"golden-thread/internal/cart"

	"github.com/spf13/cobra"
)

func (s *shop) registerCmd() *cobra.Command {
	var name, email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := s.api.Register(cmd.Context(), name, email, password)
			if err != nil {
				return err
			}
			return s.signIn(resp)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&password, "password", "", "password")
	return cmd
}

func (s *shop) loginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := s.api.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			return s.signIn(resp)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&password, "password", "", "password")
	return cmd
}

func (s *shop) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the saved token; the cart is kept",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.store.ClearSession(); err != nil {
				return err
			}
			s.session = cart.Session{}
			fmt.Fprintln(s.out, "Signed out")
			return nil
		},
	}
}

func (s *shop) signIn(resp *apitypes.AuthResponse) error {
	user := resp.User
	s.session = cart.Session{Token: resp.Token, User: &user}
	if err := s.store.SaveSession(s.session); err != nil {
		return err
	}
	s.api.SetToken(resp.Token)

	fmt.Fprintf(s.out, "Signed in as %s <%s> (%s)\n", user.Name, user.Email, user.Role)
	return nil
}

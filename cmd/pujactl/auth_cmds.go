package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/pujadesk/pujadesk/auth"
	"github.com/pujadesk/pujadesk/client"
	"github.com/pujadesk/pujadesk/keystore"
)

func newLoginCmd() *cobra.Command {
	var email, password string
	var demo, remember bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and persist the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, ks, err := newSDK()
			if err != nil {
				return err
			}

			if email == "" {
				if saved, ok := ks.Get(keystore.KeyRememberedEmail); ok {
					email = saved
					log.Debug().Str("email", email).Msg("using remembered email")
				}
			}
			if email == "" {
				return fmt.Errorf("--email is required (no remembered email found)")
			}

			var res auth.Result
			if demo {
				res = store.DemoLogin(email)
			} else {
				if password == "" {
					return fmt.Errorf("--password is required unless --demo is set")
				}
				ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
				defer cancel()
				res = store.Login(ctx, client.Credentials{Email: email, Password: password})
			}

			if !res.Success {
				return fmt.Errorf("login failed: %s", res.Err)
			}

			if remember {
				if err := ks.Set(keystore.KeyRememberedEmail, email); err != nil {
					log.Warn().Err(err).Msg("failed to remember email")
				}
			}

			dbg(res.User)
			fmt.Printf("Signed in as %s (%s)\n", res.User.FullName, res.User.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email (falls back to remembered email)")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	cmd.Flags().BoolVar(&demo, "demo", false, "Mint a local demo session instead of calling the backend")
	cmd.Flags().BoolVar(&remember, "remember", false, "Remember the email for the next login")

	return cmd
}

func newLogoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Sign out and drop the persisted token",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, _, err := newSDK()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			store.Logout(ctx)
			fmt.Println("Signed out")
			return nil
		},
	}
	return cmd
}

func newWhoamiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, _, err := newSDK()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			state := store.CheckAuthStatus(ctx)
			sess := store.Session()
			if sess == nil {
				fmt.Println("Not signed in")
				return nil
			}

			dbg(sess)
			fmt.Printf("%s <%s>\trole=%s\tstate=%s\n", sess.FullName, sess.Email, sess.Role, state)
			if sess.Offline {
				fmt.Println("(offline session from stored token; backend unreachable)")
			}
			return nil
		},
	}
	return cmd
}

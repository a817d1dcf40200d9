package main

import (
	"fmt"
	"time"

	"tempo/config"
	"tempo/internal/infra/auth"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const defaultTokenTTL = 24 * time.Hour

func newTokenCommand() *cobra.Command {
	var (
		userID string
		ttl    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an access token for local testing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id := uuid.New()
			if userID != "" {
				parsed, err := uuid.Parse(userID)
				if err != nil {
					return errors.Wrap(err, "--user must be a UUID")
				}
				id = parsed
			}

			cfg, err := config.New()
			if err != nil {
				return err
			}
			tokens, err := auth.NewJWTService(cfg)
			if err != nil {
				return err
			}

			token, err := tokens.GenerateAccessToken(id, ttl)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "user %s, expires in %s\n", id, ttl)
			fmt.Fprintln(cmd.OutOrStdout(), token)

			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "user id to issue the token for (random when empty)")
	cmd.Flags().DurationVar(&ttl, "ttl", defaultTokenTTL, "token lifetime")

	return cmd
}

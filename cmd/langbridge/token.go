package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/SakithLiyanage/LangBridge-Language-Guider-sub000/internal/app"
)

func newTokenCmd(opts *rootOptions) *cobra.Command {
	var (
		owner string
		ttl   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for an owner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}

			ownerID := uuid.New()
			if owner != "" {
				ownerID, err = uuid.Parse(owner)
				if err != nil {
					return fmt.Errorf("parse --owner: %w", err)
				}
			}

			tok, err := app.IssueToken(cfg, ownerID, ttl)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "owner:   %s\n", ownerID)
			fmt.Fprintf(out, "expires: %s\n", tok.ExpiresAt.Format(time.RFC3339))
			fmt.Fprintf(out, "token:   %s\n", tok.Token)
			return nil
		},
	}
	cmd.Flags().StringVar(&owner, "owner", "", "owner id (random when empty)")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (defaults to auth.access_token_ttl)")
	return cmd
}

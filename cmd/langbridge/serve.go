package main

import (
	"github.com/spf13/cobra"

	"github.com/SakithLiyanage/LangBridge-Language-Guider-sub000/internal/app"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}

			ctx, stop := signalContext(cmd.Context())
			defer stop()

			return app.Run(ctx, cfg)
		},
	}
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chzzmarket/market-api/internal/catalog"
	"github.com/chzzmarket/market-api/internal/imagestore"
)

func sweepCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Run one pass of the image deletion queue and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			st, err := openStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			images, err := imagestore.New(imagestore.Config{
				Endpoint:   cfg.Storage.Endpoint,
				AccessKey:  cfg.Storage.AccessKey,
				SecretKey:  cfg.Storage.SecretKey,
				Bucket:     cfg.Storage.Bucket,
				Region:     cfg.Storage.Region,
				UseSSL:     cfg.Storage.UseSSL,
				CDNBaseURL: cfg.Storage.CDNBaseURL,
			}, imagestore.WithLogger(log))
			if err != nil {
				return fmt.Errorf("creating image store: %w", err)
			}

			cat := catalog.New(st, images, catalogOptions(cfg, log)...)
			res, err := cat.SweepImageDeletions(ctx)
			if err != nil {
				return fmt.Errorf("sweeping image deletions: %w", err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "recovered=%d claimed=%d deleted=%d failed=%d\n",
				res.Recovered, res.Claimed, res.Deleted, res.Failed)
			return err
		},
	}
}

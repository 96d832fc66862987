package cmd

import (
	"github.com/spf13/cobra"

	"github.com/chzzmarket/market-api/api/openapi"
	"github.com/chzzmarket/market-api/internal/api"
)

func openapiCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "openapi",
		Short: "Print the OpenAPI document without starting the server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, humaAPI := api.NewRouter(api.Deps{Version: Version})
			return openapi.Write(cmd.OutOrStdout(), humaAPI, format)
		},
	}
	cmd.Flags().StringVar(&format, "format", "json", "document format (json, yaml)")
	return cmd
}

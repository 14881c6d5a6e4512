package cmd

import (
	"context"
	"fmt"

	"github.com/kerbaras/faceswap/pkg/swapper"
	"github.com/spf13/cobra"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check that the face-swap server is reachable",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		client := swapper.NewClient(cfg.Endpoint, swapper.WithTimeout(cfg.Timeout))
		if err := client.Ping(context.Background()); err != nil {
			cobra.CheckErr(err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✅ %s is ready\n", client.Endpoint())
	},
}

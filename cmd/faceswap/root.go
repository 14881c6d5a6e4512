package cmd

import (
	"os"

	"github.com/kerbaras/faceswap/pkg/app"
	"github.com/kerbaras/faceswap/pkg/config"
	"github.com/spf13/cobra"
)

var flags config.Config

// cfg is the resolved configuration, set before any command runs.
var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "faceswap",
	Short: "Swap faces between two images using a face-swap server",
	Long: `Pick a source image (the face) and a target image (the scene), preview both,
and send them to a face-swap server. Without a subcommand an interactive UI is started.

The server address comes from --endpoint, then $FACESWAP_ENDPOINT (a .env file in the
working directory is read too), then http://localhost:8000.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadDotEnv(); err != nil {
			return err
		}
		resolved, err := flags.Resolve()
		if err != nil {
			return err
		}
		cfg = resolved
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		// Launch TUI by default
		a := app.NewApp(cfg)
		if err := a.Run(); err != nil {
			cobra.CheckErr(err)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flags.Endpoint, "endpoint", "e", "", "Face-swap server base URL")
	rootCmd.PersistentFlags().DurationVar(&flags.Timeout, "timeout", 0, "Request timeout (e.g. 90s); 0 waits indefinitely")
	rootCmd.PersistentFlags().StringVar(&flags.LogFile, "log-file", "", "Write diagnostic logs to this file")
	rootCmd.Flags().StringVarP(&flags.OutputDir, "output", "o", "", "Keep swapped images in this directory")

	rootCmd.AddCommand(swapCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(pingCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

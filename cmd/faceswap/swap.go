package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/kerbaras/faceswap/pkg/app/components"
	"github.com/kerbaras/faceswap/pkg/app/console"
	"github.com/kerbaras/faceswap/pkg/data"
	"github.com/kerbaras/faceswap/pkg/integrations"
	"github.com/kerbaras/faceswap/pkg/services"
	"github.com/kerbaras/faceswap/pkg/swapper"
	"github.com/spf13/cobra"
)

var swapCmd = &cobra.Command{
	Use:   "swap [source-image] [target-image]",
	Short: "Swap the face from one image into another",
	Long: `Send a source image (the face) and a target image (the scene) to the server and
save the result.

Examples:
  faceswap swap me.jpg poster.png
  faceswap swap me.jpg poster.png -o ~/Pictures/swaps --preview`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		outputDir, _ := cmd.Flags().GetString("output")
		showPreview, _ := cmd.Flags().GetBool("preview")
		verbose, _ := cmd.Flags().GetBool("verbose")

		source, err := data.LoadFile(args[0])
		if err != nil {
			cobra.CheckErr(err)
		}
		target, err := data.LoadFile(args[1])
		if err != nil {
			cobra.CheckErr(err)
		}

		logger, closeLog, err := newLogger(cfg.LogFile, verbose)
		if err != nil {
			cobra.CheckErr(err)
		}
		defer closeLog()

		store, err := integrations.NewResultStore(outputDir, true)
		if err != nil {
			cobra.CheckErr(fmt.Errorf("failed to prepare output: %w", err))
		}

		out := cmd.OutOrStdout()
		sourcePreview := console.NewElement("source", out, false)
		targetPreview := console.NewElement("target", out, false)
		resultSection := console.NewElement("result", out, false)
		resultImage := console.NewElement("result", out, false)
		notifier := console.NewNotifier(cmd.ErrOrStderr())

		client := swapper.NewClient(cfg.Endpoint, swapper.WithTimeout(cfg.Timeout))
		controller, err := services.NewUploadController(services.Handles{
			SourceInput:   console.NewFile(source),
			TargetInput:   console.NewFile(target),
			SourcePreview: sourcePreview,
			TargetPreview: targetPreview,
			SwapButton:    console.NewElement("swap", out, true),
			ResultSection: resultSection,
			ResultImage:   resultImage,
			Notifier:      notifier,
		}, client,
			services.WithResultStore(store),
			services.WithLogger(logger),
		)
		if err != nil {
			cobra.CheckErr(err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		if showPreview {
			for _, p := range []struct {
				preview func(context.Context) error
				element *console.Element
				file    *data.SelectedFile
			}{
				{controller.PreviewSource, sourcePreview, source},
				{controller.PreviewTarget, targetPreview, target},
			} {
				if err := p.preview(ctx); err != nil {
					cobra.CheckErr(err)
				}
				printPreview(cmd, p.file.Name, p.element.Source())
			}
		}

		fmt.Fprintf(out, "🔁 Swapping %s → %s via %s\n", source.Name, target.Name, client.Endpoint())
		if err := controller.SubmitSwap(ctx); err != nil {
			// the notifier already told the user what went wrong
			os.Exit(1)
		}

		path, err := integrations.PathFromURL(resultImage.Source())
		if err != nil {
			cobra.CheckErr(err)
		}
		fmt.Fprintf(out, "✅ Swapped image saved: %s\n", path)
	},
}

func init() {
	swapCmd.Flags().StringP("output", "o", ".", "Directory for the swapped image")
	swapCmd.Flags().BoolP("preview", "p", false, "Render both inputs in the terminal before sending")
	swapCmd.Flags().BoolP("verbose", "v", false, "Log request details to stderr")
}

func printPreview(cmd *cobra.Command, name, src string) {
	img, err := integrations.DecodeDataURL(src)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "⚠️  cannot render %s: %v\n", name, err)
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n\n", name, components.RenderThumbnail(img, 40, 16))
}

func newLogger(path string, verbose bool) (*slog.Logger, func(), error) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	if path == "" {
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { f.Close() }, nil
}

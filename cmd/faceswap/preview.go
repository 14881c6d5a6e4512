package cmd

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/kerbaras/faceswap/pkg/data"
	"github.com/kerbaras/faceswap/pkg/integrations"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview [image]",
	Short: "Show how an image will be previewed before sending",
	Long:  "Print the MIME type, size and data URL of an image, or render it in the terminal with --render",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		render, _ := cmd.Flags().GetBool("render")
		full, _ := cmd.Flags().GetBool("full")

		file, err := data.LoadFile(args[0])
		if err != nil {
			cobra.CheckErr(err)
		}

		src, err := integrations.NewDataURLReader().ReadAsDataURL(context.Background(), file)
		if err != nil {
			cobra.CheckErr(err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "📄 %s\n", file.Name)
		fmt.Fprintf(out, "   type: %s\n", file.MimeType)
		fmt.Fprintf(out, "   size: %s\n", humanize.Bytes(uint64(len(file.Content))))

		if render {
			fmt.Fprintln(out)
			printPreview(cmd, file.Name, src)
			return
		}

		if !full && len(src) > 96 {
			src = src[:96] + "…"
		}
		fmt.Fprintf(out, "   url:  %s\n", src)
	},
}

func init() {
	previewCmd.Flags().BoolP("render", "r", false, "Render the image with terminal block characters")
	previewCmd.Flags().Bool("full", false, "Print the whole data URL")
}

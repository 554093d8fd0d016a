package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	previewWidth  int
	previewHeight int
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Write and print the preview stylesheet",
	Long: `Compose the preview from the VIEW group, write the stylesheet to the
configured path and print it with the overlay geometry.

Examples:
  poricom preview                         # Use the configured live view size
  poricom preview --width 1920 --height 1080`,
	Args: cobra.NoArgs,
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().IntVar(&previewWidth, "width", 0, "live view width in pixels")
	previewCmd.Flags().IntVar(&previewHeight, "height", 0, "live view height in pixels")
}

func runPreview(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	view := a.Menu.View()
	if previewWidth > 0 || previewHeight > 0 {
		width, height := previewWidth, previewHeight
		if width <= 0 {
			width = a.Config.Preview.Width
		}
		if height <= 0 {
			height = a.Config.Preview.Height
		}
		if err := view.Resize(a.Ctx(), float64(width), float64(height)); err != nil {
			return err
		}
	}

	frame, ok := a.Preview.Last()
	if !ok {
		frame = view.LastFrame()
	}
	fmt.Fprint(cmd.OutOrStdout(), a.Renderer.RenderPreview(frame, a.Config.Preview.CSSPath))
	return nil
}

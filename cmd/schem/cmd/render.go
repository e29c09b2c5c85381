package cmd

import (
	"fmt"
	"image/color"
	"image/png"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/schem"
	"github.com/gogpu/schem/render"
)

var (
	renderOutput string
	renderWidth  int
	renderHeight int
	renderFit    bool
	renderMargin int
)

var renderCmd = &cobra.Command{
	Use:   "render <scene-file>",
	Short: "Render an object to PNG",
	Long: `Render an object and everything it instances to a PNG image with the
software rasterizer. By default the view is scaled to fit the object.

Examples:
  schem render sheet.sch -o sheet.png
  schem render --object amp --width 320 --height 240 sheet.sch -o amp.png
  SCHEM_SCALE=4 schem render --fit=false sheet.sch -o zoomed.png`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "out.png", "output PNG file")
	renderCmd.Flags().IntVar(&renderWidth, "width", 0, "image width (default: SCHEM_WIDTH)")
	renderCmd.Flags().IntVar(&renderHeight, "height", 0, "image height (default: SCHEM_HEIGHT)")
	renderCmd.Flags().BoolVar(&renderFit, "fit", true, "scale and pan the view to fit the object")
	renderCmd.Flags().IntVar(&renderMargin, "margin", 8, "fit margin in pixels")
}

func runRender(cmd *cobra.Command, args []string) error {
	_, obj, err := loadObject(args[0])
	if err != nil {
		return err
	}

	view := cfg.View()
	if renderWidth > 0 {
		view.Width = renderWidth
	}
	if renderHeight > 0 {
		view.Height = renderHeight
	}
	if renderFit {
		fitView(view, obj.ViewBBox(true), renderMargin)
	}

	img, err := render.Object(obj, view, color.White)
	if err != nil {
		return fmt.Errorf("error rendering %s: %w", obj.Name, err)
	}

	f, err := os.Create(renderOutput)
	if err != nil {
		return fmt.Errorf("error creating output: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("error encoding PNG: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%dx%d)\n", renderOutput, view.Width, view.Height)
	return nil
}

// fitView sets the scale and pan so that box fills the window less margin
// pixels on every side. Rotation is left to the configuration.
func fitView(view *schem.ViewContext, box schem.BBox, margin int) {
	w := float64(view.Width - 2*margin)
	h := float64(view.Height - 2*margin)
	if w <= 0 || h <= 0 {
		return
	}
	scale := math.Min(w/math.Max(float64(box.Width), 1), h/math.Max(float64(box.Height), 1))
	view.Scale = scale
	off := int(math.Ceil(float64(margin) / scale))
	view.Pan = box.LowerLeft.Sub(schem.Pt(off, off))
}

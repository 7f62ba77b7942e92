// Command kestrel renders a JSON scene description to a PNG through the
// layer tree.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"kestrel/pkg/layout"
	"kestrel/pkg/paint"
	"kestrel/pkg/scene"
)

var (
	flagWidth   float64
	flagHeight  float64
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "kestrel",
	Short: "kestrel composites styled box trees into images",
}

var renderCmd = &cobra.Command{
	Use:   "render <scene.json> <out.png>",
	Short: "Render a scene file to a PNG",
	Args:  cobra.ExactArgs(2),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().Float64Var(&flagWidth, "width", 0, "viewport width (overrides the scene's)")
	renderCmd.Flags().Float64Var(&flagHeight, "height", 0, "viewport height (overrides the scene's)")
	renderCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "log compositor activity")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	logger := zap.NewNop()
	if flagVerbose {
		dev, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("building logger: %w", err)
		}
		defer dev.Sync()
		logger = dev
	}

	doc, err := scene.Load(args[0])
	if err != nil {
		return err
	}
	w, h := doc.Viewport.Width, doc.Viewport.Height
	if flagWidth > 0 {
		w = flagWidth
	}
	if flagHeight > 0 {
		h = flagHeight
	}

	root, err := scene.Build(doc)
	if err != nil {
		return err
	}

	tree := layout.NewLayerTree(root, paint.RasterFactory{}, layout.WithLogger(logger))
	tree.Render(w, h)

	surface, ok := tree.Surface().(*paint.Raster)
	if !ok {
		return fmt.Errorf("root layer has no raster surface")
	}
	if err := surface.SavePNG(args[1]); err != nil {
		return fmt.Errorf("writing %s: %w", args[1], err)
	}

	logger.Info("rendered scene",
		zap.String("scene", args[0]),
		zap.String("out", args[1]),
		zap.Float64("width", w),
		zap.Float64("height", h))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

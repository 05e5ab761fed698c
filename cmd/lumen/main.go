// Command lumen converts a photograph into a 3D-printable lithophane:
// a solid STL whose local thickness encodes pixel brightness.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/unixpickle/essentials"
	"go.uber.org/zap"

	"github.com/chazu/lumen/pkg/config"
	"github.com/chazu/lumen/pkg/heightmap"
	"github.com/chazu/lumen/pkg/inspect"
	"github.com/chazu/lumen/pkg/kernel/sdfx"
	"github.com/chazu/lumen/pkg/litho"
	"github.com/chazu/lumen/pkg/logger"
	"github.com/chazu/lumen/pkg/stl"
)

// stlHeader identifies files produced by this tool.
const stlHeader = "lumen lithophane"

func main() {
	config.ParseFlags()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: lumen [flags] <input image>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}
	inputPath := args[0]

	cfg, err := config.Load()
	essentials.Must(err)

	essentials.Must(logger.Init(cfg.Logging.Level, cfg.Logging.LogFile))
	defer logger.Sync()

	img, err := loadImage(inputPath)
	if err != nil {
		essentials.Die("read image:", err)
	}

	logger.Log.Info("sampling heightmap",
		zap.String("input", inputPath),
		zap.Float64("width_mm", cfg.Model.Width))
	hm, err := heightmap.FromImage(img, heightmap.SampleOptions{
		MaxThickness: cfg.Model.MaxThickness,
		MinThickness: cfg.Model.MinThickness,
		WidthMM:      cfg.Model.Width,
		Invert:       cfg.Model.Invert,
		Smoothing:    cfg.Model.Smoothing,
	})
	if err != nil {
		essentials.Die("sample:", err)
	}

	opts := litho.Options{
		Border:       cfg.Border.Enabled,
		BorderWidth:  cfg.Border.Width,
		BorderHeight: cfg.Border.Height,
		BorderStyle:  litho.BorderStyle(cfg.Border.Style),
		Progress: func(p litho.Phase) {
			logger.Log.Debug("building", zap.Stringer("phase", p))
		},
	}
	if opts.Border && opts.BorderStyle == litho.BorderRounded {
		opts.Kernel = sdfx.New()
	}

	buf, err := litho.Build(hm, opts)
	if err != nil {
		essentials.Die("build:", err)
	}

	logger.Log.Debug("serializing", zap.String("output", cfg.Output.Path))
	if err := stl.WriteFile(cfg.Output.Path, stlHeader, buf); err != nil {
		essentials.Die("write:", err)
	}

	logger.Log.Info("created lithophane",
		zap.String("output", cfg.Output.Path),
		zap.Float64("width_mm", hm.ModelWidth()),
		zap.Float64("height_mm", hm.ModelHeight()),
		zap.Float64("min_thickness_mm", cfg.Model.MinThickness),
		zap.Float64("max_thickness_mm", cfg.Model.MaxThickness),
		zap.Int("triangles", buf.TriangleCount()))

	if cfg.Output.Verify {
		report, err := inspect.File(cfg.Output.Path)
		if err != nil {
			essentials.Die("verify:", err)
		}
		logger.Log.Info("verified mesh",
			zap.Int("triangles", report.Triangles),
			zap.Bool("watertight", report.Watertight),
			zap.Float64("volume_mm3", report.Volume))
		if !report.Watertight {
			essentials.Die("verify: mesh is not watertight")
		}
	}
}

// loadImage decodes an image file of any registered format.
func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	return img, err
}

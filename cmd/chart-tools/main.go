package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/chart-tools/internal/imaging"
	"github.com/ironsheep/chart-tools/internal/pipeline"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

var log = logrus.New()

func main() {
	// Handle --version and -v before flag parsing, like the help text
	// promises.
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("chart-tools %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		}
	}

	var (
		mode          = flag.String("mode", "split", "operation: split, cleanup or ellipse")
		outDir        = flag.String("out", "out", "output directory")
		ext           = flag.String("ext", "png", "output format: png|jpg|webp")
		quality       = flag.Int("quality", 90, "JPEG quality (1-100)")
		padding       = flag.Int("padding", 20, "crop padding around each disc (px)")
		bias          = flag.Int("bias", 0, "threshold bias, 0 = automatic")
		trim          = flag.Int("trim", 0, "edge trim on all sides (px)")
		trimLeft      = flag.Int("trim-left", -1, "left edge trim (px), overrides -trim")
		trimRight     = flag.Int("trim-right", -1, "right edge trim (px), overrides -trim")
		trimTop       = flag.Int("trim-top", -1, "top edge trim (px), overrides -trim")
		trimBottom    = flag.Int("trim-bottom", -1, "bottom edge trim (px), overrides -trim")
		minAreaFrac   = flag.Float64("min-area-frac", 0.001, "minimum component area as a fraction of the analysis area")
		radius        = flag.Int("radius", 10, "fragment removal radius for cleanup (px)")
		minKept       = flag.Int("min-kept", 64, "minimum kept island area for cleanup (px)")
		despeckle     = flag.Int("despeckle", 2, "median despeckle radius, 0 = off")
		ellipsePad    = flag.Int("ellipse-padding", 20, "ellipse inset for ellipse mode (px)")
		strictPadding = flag.Bool("strict-padding", false, "fail on oversized padding instead of clamping")
		overlay       = flag.Bool("overlay", false, "also write a debug overlay of detected regions (split mode)")
		jsonOut       = flag.Bool("json", false, "print results as JSON on stdout")
		verbose       = flag.Bool("verbose", false, "debug logging")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] scan.png [scan2.tif ...]\n\nOptions:\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}

	opts := pipeline.DefaultOptions()
	opts.SplitPaddingPx = *padding
	opts.ThresholdBias = *bias
	opts.MinComponentAreaFraction = *minAreaFrac
	opts.EllipsePaddingPx = *ellipsePad
	opts.FragmentRemovalRadiusPx = *radius
	opts.MinKeptAreaPx = *minKept
	opts.DespeckleRadius = *despeckle
	opts.StrictPadding = *strictPadding
	opts.SetEdgeTrim(*trim)
	if *trimLeft >= 0 {
		opts.EdgeTrimLeft = *trimLeft
	}
	if *trimRight >= 0 {
		opts.EdgeTrimRight = *trimRight
	}
	if *trimTop >= 0 {
		opts.EdgeTrimTop = *trimTop
	}
	if *trimBottom >= 0 {
		opts.EdgeTrimBottom = *trimBottom
	}

	cache := imaging.NewImageCache()
	failures := 0
	for _, path := range flag.Args() {
		if log.IsLevelEnabled(logrus.DebugLevel) {
			// Decodes through the cache, so the mode handler below
			// reuses the image rather than reading the file again.
			if info, err := imaging.LoadImageInfo(cache, path); err == nil {
				log.WithFields(logrus.Fields{
					"input":  path,
					"size":   fmt.Sprintf("%dx%d", info.Width, info.Height),
					"format": info.Format,
					"bytes":  info.FileSizeBytes,
				}).Debug("loaded scan")
			}
		}

		var err error
		switch *mode {
		case "split":
			err = runSplit(cache, path, *outDir, *ext, *quality, *overlay, *jsonOut, opts)
		case "cleanup":
			err = runCleanup(cache, path, *outDir, *jsonOut, opts)
		case "ellipse":
			err = runEllipse(cache, path, *outDir, *jsonOut, opts)
		default:
			log.Fatalf("unknown mode %q (use split, cleanup or ellipse)", *mode)
		}
		if err != nil {
			// A per-image failure skips the image, not the batch.
			log.WithField("input", path).Warnf("skipped: %v", err)
			failures++
		}
		cache.Evict(path)
	}

	if failures > 0 {
		log.Warnf("%d of %d inputs failed", failures, flag.NArg())
		os.Exit(1)
	}
}

func runSplit(cache *imaging.ImageCache, path, outDir, ext string, quality int, overlay, jsonOut bool, opts pipeline.Options) error {
	img, err := cache.Load(path)
	if err != nil {
		return err
	}
	buf, err := imaging.FromImage(img)
	if err != nil {
		return err
	}

	result, err := pipeline.Split(buf, opts)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"input":     path,
		"discs":     len(result.Rects),
		"threshold": result.Threshold,
		"scale":     fmt.Sprintf("%.3f", result.Scale),
	}).Info("split complete")

	now := time.Now()
	for i, r := range result.Rects {
		out := filepath.Join(outDir, imaging.ChartFilename(now, i+1, ext))
		if err := imaging.Save(imaging.ApplyCrop(img, r), out, quality); err != nil {
			return err
		}
		log.WithField("rect", r.String()).Debugf("wrote %s", out)
	}

	if overlay {
		out := filepath.Join(outDir, strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))+"_overlay.png")
		if err := imaging.Save(imaging.OverlayRects(img, result.Rects), out, quality); err != nil {
			return err
		}
		log.Debugf("wrote %s", out)
	}

	if jsonOut {
		return json.NewEncoder(os.Stdout).Encode(result)
	}
	return nil
}

func runCleanup(cache *imaging.ImageCache, path, outDir string, jsonOut bool, opts pipeline.Options) error {
	img, err := cache.Load(path)
	if err != nil {
		return err
	}
	buf, err := imaging.FromImage(img)
	if err != nil {
		return err
	}

	result, err := pipeline.Cleanup(buf, opts)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"input":    path,
		"area":     result.Island.Area,
		"centroid": fmt.Sprintf("(%.1f, %.1f)", result.CentroidX, result.CentroidY),
		"guides":   fmt.Sprintf("(%d, %d)", result.GuideX, result.GuideY),
	}).Info("cleanup complete")

	// Cleaned discs carry alpha; keep them in PNG regardless of -ext.
	out := filepath.Join(outDir, strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))+"_clean.png")
	if err := imaging.Save(imaging.ApplyMask(img, result.Mask), out, 0); err != nil {
		return err
	}

	if jsonOut {
		return json.NewEncoder(os.Stdout).Encode(result)
	}
	return nil
}

func runEllipse(cache *imaging.ImageCache, path, outDir string, jsonOut bool, opts pipeline.Options) error {
	img, err := cache.Load(path)
	if err != nil {
		return err
	}
	b := img.Bounds()

	mask, err := pipeline.CleanupEllipse(b.Dx(), b.Dy(), opts)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"input":   path,
		"padding": opts.EllipsePaddingPx,
	}).Info("ellipse cleanup complete")

	out := filepath.Join(outDir, strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))+"_clean.png")
	if err := imaging.Save(imaging.ApplyMask(img, mask), out, 0); err != nil {
		return err
	}

	if jsonOut {
		return json.NewEncoder(os.Stdout).Encode(map[string]int{
			"width":   b.Dx(),
			"height":  b.Dy(),
			"guide_x": b.Dx() / 2,
			"guide_y": b.Dy() / 2,
		})
	}
	return nil
}

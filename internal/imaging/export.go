package imaging

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chai2010/webp"
)

// DefaultJPEGQuality is used when a caller passes a quality outside
// [1, 100].
const DefaultJPEGQuality = 90

// Save encodes an image to path, choosing the codec from the file
// extension: .png, .jpg/.jpeg or .webp. PNG keeps the alpha channel
// produced by ApplyMask; JPEG flattens it, so cleaned discs should go to
// PNG or lossless WebP.
func Save(img image.Image, path string, quality int) error {
	if quality < 1 || quality > 100 {
		quality = DefaultJPEGQuality
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		err = png.Encode(f, img)
	case ".jpg", ".jpeg":
		err = jpeg.Encode(f, img, &jpeg.Options{Quality: quality})
	case ".webp":
		err = webp.Encode(f, img, &webp.Options{Lossless: true})
	default:
		err = fmt.Errorf("unsupported output format %q", filepath.Ext(path))
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}

// ChartFilename builds the export name for the index-th disc of a scan:
// chart_YYYY-MM-DD_NN.ext. Index is 1-based.
func ChartFilename(date time.Time, index int, ext string) string {
	ext = strings.TrimPrefix(ext, ".")
	return fmt.Sprintf("chart_%s_%02d.%s", date.Format("2006-01-02"), index, ext)
}

package oxide

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/image/bmp"
)

// Screenshot formats accepted by SaveScreenshot.
const (
	FormatPNG = "png"
	FormatBMP = "bmp"
)

// SaveScreenshot writes the current contents of buf to dir as a PNG or BMP
// file named <timestamp>_<label>.<format> and returns its path. An empty
// format means PNG. The directory is created if needed.
func SaveScreenshot(dir, label, format string, buf *OffscreenBuffer) (string, error) {
	if format == "" {
		format = FormatPNG
	}
	if format != FormatPNG && format != FormatBMP {
		return "", fmt.Errorf("screenshot: unknown format %q", format)
	}
	if err := buf.Validate(); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: mkdir %s: %w", dir, err)
	}

	path := screenshotPath(dir, label, format, time.Now())
	if err := writeImage(path, format, buf.RGBA()); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

func screenshotPath(dir, label, format string, stamp time.Time) string {
	name := fmt.Sprintf("%s_%s.%s", stamp.Format("20060102_150405.000"), sanitizeLabel(label), format)
	return filepath.Join(dir, name)
}

// writeImage encodes an image to a file at the given path.
func writeImage(path, format string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	encode := png.Encode
	if format == FormatBMP {
		encode = bmp.Encode
	}
	if err := encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

package upload

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"regexp"
	"strings"

	_ "image/gif"
	_ "image/png"

	"golang.org/x/image/draw"
)

const (
	// MaxImageDimension bounds the longest side of uploaded images.
	MaxImageDimension = 1600
	jpegQuality       = 85
)

// CompressImage re-encodes an image as JPEG, scaling it down so the longest
// side is at most MaxImageDimension. Callers should fall back to the original
// bytes on error rather than failing the upload.
func CompressImage(data []byte) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image (format: %s): %w", format, err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	newWidth, newHeight := width, height
	if width >= height && width > MaxImageDimension {
		newWidth = MaxImageDimension
		newHeight = int(float64(height) * float64(MaxImageDimension) / float64(width))
	} else if height > width && height > MaxImageDimension {
		newHeight = MaxImageDimension
		newWidth = int(float64(width) * float64(MaxImageDimension) / float64(height))
	}

	resized := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(resized, resized.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}

var unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// SanitizeFilename replaces everything outside [a-zA-Z0-9.-] with underscores.
// Storage keys must be ASCII-safe.
func SanitizeFilename(filename string) string {
	safe := unsafeNameChars.ReplaceAllString(filename, "_")
	if strings.Trim(safe, "_.") == "" {
		return "file"
	}
	return safe
}

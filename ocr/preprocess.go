package ocr

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
)

// minWidth is the smallest image width Tesseract handles reliably for
// manifest tables. Narrower scans are upscaled before recognition.
const minWidth = 1500

// Preprocess prepares a scanned page for recognition. It decodes PNG,
// JPEG or TIFF data, converts to grayscale, upscales small scans and
// re-encodes as PNG.
func Preprocess(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("empty image %dx%d", width, height)
	}

	if width < minWidth {
		scale := float64(minWidth) / float64(width)
		width = minWidth
		height = int(float64(height)*scale + 0.5)
	}

	gray := image.NewGray(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(gray, gray.Bounds(), src, bounds, draw.Src, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, gray); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

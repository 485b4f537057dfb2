//go:build ocr

// Package ocr recognizes text in scanned manifest pages.
//
// This package wraps the Tesseract OCR engine via gosseract. It requires
// Tesseract with the Spanish language pack installed. On macOS:
//
//	brew install tesseract tesseract-lang
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr tesseract-ocr-spa
package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Client wraps Tesseract for OCR operations.
type Client struct {
	client *gosseract.Client
}

// New creates a new OCR client configured for the given languages.
// With no arguments it recognizes Spanish and English, which covers the
// manifests this module reads. The client must be closed when no longer
// needed to release Tesseract resources.
func New(languages ...string) (*Client, error) {
	if len(languages) == 0 {
		languages = []string{"spa", "eng"}
	}
	client := gosseract.NewClient()
	if err := client.SetLanguage(languages...); err != nil {
		client.Close()
		return nil, fmt.Errorf("set languages %v: %w", languages, err)
	}
	return &Client{client: client}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// Recognize performs OCR on image data (PNG, TIFF or JPEG) and returns
// the recognized text along with per-word positions. Positions are in
// image pixels with the origin at the top-left corner.
func (c *Client) Recognize(imageData []byte) (*Result, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return nil, fmt.Errorf("set image: %w", err)
	}

	text, err := c.client.Text()
	if err != nil {
		return nil, fmt.Errorf("recognize text: %w", err)
	}

	boxes, err := c.client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("word boxes: %w", err)
	}

	result := &Result{Text: strings.TrimSpace(text)}
	for _, b := range boxes {
		word := strings.TrimSpace(b.Word)
		if word == "" {
			continue
		}
		result.Words = append(result.Words, Word{
			Text: word,
			X:    float64(b.Box.Min.X),
			Y:    float64(b.Box.Min.Y),
		})
	}
	return result, nil
}

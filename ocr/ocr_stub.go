//go:build !ocr

// Package ocr recognizes text in scanned manifest pages.
//
// This is the stub implementation used when the "ocr" build tag is not
// set. All operations return ErrOCRNotEnabled.
//
// To enable OCR, rebuild with the "ocr" build tag:
//
//	go build -tags ocr
//
// This requires Tesseract with the Spanish language pack installed.
package ocr

// Client is a stub OCR client that returns errors for all operations.
type Client struct{}

// New returns ErrOCRNotEnabled.
func New(languages ...string) (*Client, error) {
	return nil, ErrOCRNotEnabled
}

// Close is a no-op for the stub client. Safe to call on a nil client.
func (c *Client) Close() error {
	return nil
}

// Recognize returns ErrOCRNotEnabled.
func (c *Client) Recognize(imageData []byte) (*Result, error) {
	return nil, ErrOCRNotEnabled
}

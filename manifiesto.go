// Package manifiesto extracts arrival dates and line items from
// shipment manifest PDFs.
//
// Basic usage:
//
//	shipment, err := manifiesto.Open("manifest.pdf").Parse()
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(shipment.Date, len(shipment.Items))
//
// With options:
//
//	shipment, err := manifiesto.Open("manifest.pdf").
//	    Pages(1, 2).
//	    Tolerance(4.0).
//	    Parse()
//
// Scanned manifests (PNG, JPEG or TIFF) go through OCR when the binary
// is built with the "ocr" tag:
//
//	shipment, err := manifiesto.OpenImage("manifest.png").Parse()
//
// For advanced use cases, the lower-level reader and extract packages
// are also available.
package manifiesto

import (
	"errors"

	"github.com/ebarrera/manifiesto/model"
)

// ErrDateNotFound is returned by Parse when no arrival date could be
// located anywhere in the document.
var ErrDateNotFound = errors.New("arrival date not found")

// ErrNoItems is returned by Parse when no extraction strategy produced
// any line items.
var ErrNoItems = errors.New("no line items found")

// Document is a source of manifest pages. reader.File and reader.Image
// implement it; tests supply fakes.
type Document interface {
	// PageCount returns the number of pages.
	PageCount() int
	// Page returns page number (1-based).
	Page(number int) (*model.Page, error)
	// Close releases any resources held by the document.
	Close() error
}

// Open prepares a parser for the PDF at filename. The file is opened
// lazily by the terminal operations (Parse, Text), which also close it.
func Open(filename string) *Parser {
	return &Parser{filename: filename, options: defaultOptions()}
}

// OpenImage prepares a parser for a scanned single-page manifest image.
// Requires a binary built with the "ocr" tag; otherwise the terminal
// operations fail with ocr.ErrOCRNotEnabled.
func OpenImage(filename string) *Parser {
	return &Parser{filename: filename, image: true, options: defaultOptions()}
}

// FromDocument creates a parser over an already-open Document. The
// caller keeps ownership and must close the document itself.
func FromDocument(doc Document) *Parser {
	return &Parser{doc: doc, options: defaultOptions()}
}

// Must wraps a call returning (T, error) and panics on error. Intended
// for scripts and tests.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

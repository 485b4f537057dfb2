// Package format detects manifest input formats so callers can route
// native PDFs to the text reader and scanned images to OCR.
package format

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Format represents a supported manifest input format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// PDF indicates a PDF document.
	PDF
	// PNG indicates a PNG scan.
	PNG
	// JPEG indicates a JPEG scan.
	JPEG
	// TIFF indicates a TIFF scan.
	TIFF
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case PDF:
		return "PDF"
	case PNG:
		return "PNG"
	case JPEG:
		return "JPEG"
	case TIFF:
		return "TIFF"
	default:
		return "Unknown"
	}
}

// IsImage reports whether the format is a scanned image that needs OCR.
func (f Format) IsImage() bool {
	return f == PNG || f == JPEG || f == TIFF
}

// Detect determines the format from the filename extension.
func Detect(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return PDF
	case ".png":
		return PNG
	case ".jpg", ".jpeg":
		return JPEG
	case ".tif", ".tiff":
		return TIFF
	default:
		return Unknown
	}
}

// Magic numbers for content sniffing.
var (
	pdfMagic    = []byte("%PDF-")
	pngMagic    = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	jpegMagic   = []byte{0xFF, 0xD8, 0xFF}
	tiffLEMagic = []byte{'I', 'I', 0x2A, 0x00}
	tiffBEMagic = []byte{'M', 'M', 0x00, 0x2A}
)

// DetectReader sniffs the format from the first bytes of r. The reader
// is consumed; callers needing the content afterwards should buffer it.
func DetectReader(r io.Reader) (Format, error) {
	head := make([]byte, 8)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.ErrUnexpectedEOF {
		return Unknown, err
	}
	head = head[:n]

	switch {
	case bytes.HasPrefix(head, pdfMagic):
		return PDF, nil
	case bytes.HasPrefix(head, pngMagic):
		return PNG, nil
	case bytes.HasPrefix(head, jpegMagic):
		return JPEG, nil
	case bytes.HasPrefix(head, tiffLEMagic), bytes.HasPrefix(head, tiffBEMagic):
		return TIFF, nil
	}
	return Unknown, nil
}

// DetectFile sniffs the format from the file's content, falling back to
// the extension when the content is inconclusive.
func DetectFile(path string) (Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return Unknown, err
	}
	defer f.Close()

	detected, err := DetectReader(f)
	if err != nil {
		return Unknown, err
	}
	if detected != Unknown {
		return detected, nil
	}
	return Detect(path), nil
}

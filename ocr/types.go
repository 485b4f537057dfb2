package ocr

import "errors"

// ErrOCRNotEnabled is returned when OCR functions are called but OCR
// support was not compiled in. Rebuild with -tags ocr to enable it.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// Word is a single recognized word with its top-left position in image
// pixels. The origin is the top-left corner of the image, so the
// coordinates can feed the layout grouping directly.
type Word struct {
	Text string
	X    float64
	Y    float64
}

// Result holds the outcome of recognizing one image.
type Result struct {
	Text  string
	Words []Word
}

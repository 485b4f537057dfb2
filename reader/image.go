package reader

import (
	"fmt"
	"os"

	"github.com/ebarrera/manifiesto/model"
	"github.com/ebarrera/manifiesto/ocr"
)

// Image is a single scanned manifest page loaded from a PNG, JPEG or
// TIFF file. The image is preprocessed and recognized once at open
// time; recognized word positions become the page's tokens, so the same
// extraction strategies run on scans as on native PDFs.
type Image struct {
	page *model.Page
}

// OpenImage loads and recognizes the scanned page at path using the
// given Tesseract languages (the ocr package default when none are
// given). It fails with ocr.ErrOCRNotEnabled when the binary was built
// without the ocr tag.
func OpenImage(path string, languages ...string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	prepared, err := ocr.Preprocess(data)
	if err != nil {
		return nil, fmt.Errorf("prepare %s: %w", path, err)
	}

	client, err := ocr.New(languages...)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	result, err := client.Recognize(prepared)
	if err != nil {
		return nil, fmt.Errorf("recognize %s: %w", path, err)
	}

	page := &model.Page{Number: 1, Text: result.Text}
	for _, w := range result.Words {
		page.Tokens = append(page.Tokens, model.Token{Text: w.Text, X: w.X, Y: w.Y})
	}
	return &Image{page: page}, nil
}

// PageCount returns 1; a scanned image is always a single page.
func (d *Image) PageCount() int {
	return 1
}

// Page returns the recognized page. Only page 1 exists.
func (d *Image) Page(number int) (*model.Page, error) {
	if number != 1 {
		return nil, fmt.Errorf("page %d out of range for single-page image", number)
	}
	return d.page, nil
}

// Close is a no-op; the image file is fully consumed at open time.
func (d *Image) Close() error {
	return nil
}

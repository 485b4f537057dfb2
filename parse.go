package manifiesto

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/ebarrera/manifiesto/extract"
	"github.com/ebarrera/manifiesto/model"
	"github.com/ebarrera/manifiesto/numeric"
	"github.com/ebarrera/manifiesto/reader"
)

// Parser accumulates configuration for a parse via fluent calls.
// Terminal operations (Parse, Text, PageCount) open the document, do
// the work and close it again, unless the document was supplied with
// FromDocument.
type Parser struct {
	filename string
	image    bool
	doc      Document
	options  parseOptions
}

// The arrival date is announced in a phrase like "fecha de llegada de
// la mercancía a bodega: 04/07/2024", with wording that varies between
// agencies. The window regex tolerates up to 120 characters of filler
// on either side of "a bodega"; the fallback accepts any date that
// closely follows the word "bodega".
var (
	arrivalWindowRE = regexp.MustCompile(`(?is)fecha\s*de\s*llegada.{0,120}?a\s*bodega.{0,120}`)
	bodegaDateRE    = regexp.MustCompile(`(?i)bodega[^0-9]{0,40}(\d{1,2}[/\-.]\d{1,2}[/\-.]\d{2,4})`)
	anyDateRE       = regexp.MustCompile(`\d{1,2}[/\-.]\d{1,2}[/\-.]\d{2,4}`)
	wsRunRE         = regexp.MustCompile(`\s+`)
)

// Parse extracts the arrival date and the ordered line items from the
// document. It fails with ErrDateNotFound and/or ErrNoItems when either
// half is missing; both are detectable with errors.Is on the returned
// error.
func (p *Parser) Parse() (*model.Shipment, error) {
	pages, cleanup, err := p.load()
	if err != nil {
		return nil, err
	}
	defer cleanup()

	cfg := extract.Config{
		Prefixes:     p.options.prefixes,
		RowTolerance: p.options.tolerance,
	}

	date, dateFound := findDate(pages)
	items := extractItems(pages, cfg)

	switch {
	case !dateFound && len(items) == 0:
		return nil, errors.Join(ErrDateNotFound, ErrNoItems)
	case !dateFound:
		return nil, ErrDateNotFound
	case len(items) == 0:
		return nil, ErrNoItems
	}

	return &model.Shipment{Date: date, Items: items}, nil
}

// Text returns the document's raw text, pages joined with newlines.
func (p *Parser) Text() (string, error) {
	pages, cleanup, err := p.load()
	if err != nil {
		return "", err
	}
	defer cleanup()
	return joinText(pages), nil
}

// PageCount returns the number of pages in the document.
func (p *Parser) PageCount() (int, error) {
	doc, owned, err := p.open()
	if err != nil {
		return 0, err
	}
	if owned {
		defer doc.Close()
	}
	return doc.PageCount(), nil
}

// open returns the document to parse and whether this parser owns it.
func (p *Parser) open() (Document, bool, error) {
	if p.doc != nil {
		return p.doc, false, nil
	}
	if p.image {
		doc, err := reader.OpenImage(p.filename, p.options.languages...)
		if err != nil {
			return nil, false, err
		}
		return doc, true, nil
	}
	doc, err := reader.Open(p.filename)
	if err != nil {
		return nil, false, err
	}
	return doc, true, nil
}

// load opens the document and materializes the selected pages. The
// returned cleanup must be called once the pages are no longer needed.
func (p *Parser) load() ([]*model.Page, func(), error) {
	doc, owned, err := p.open()
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {}
	if owned {
		cleanup = func() { doc.Close() }
	}

	numbers := p.options.pages
	if numbers == nil {
		for i := 1; i <= doc.PageCount(); i++ {
			numbers = append(numbers, i)
		}
	}

	pages := make([]*model.Page, 0, len(numbers))
	for _, n := range numbers {
		page, err := doc.Page(n)
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("load page %d: %w", n, err)
		}
		pages = append(pages, page)
	}
	return pages, cleanup, nil
}

// extractItems runs the strategy cascade. Each strategy is tried across
// the whole document; the first one to produce any items wins and the
// rest are skipped.
func extractItems(pages []*model.Page, cfg extract.Config) []model.LineItem {
	for _, strategy := range extract.Default(cfg) {
		var items []model.LineItem
		for _, page := range pages {
			items = append(items, strategy.Extract(page)...)
		}
		if len(items) > 0 {
			return items
		}
	}
	return nil
}

// findDate searches the whole document's text for the arrival date and
// returns it in ISO form.
func findDate(pages []*model.Page) (string, bool) {
	text := joinText(pages)

	if window := arrivalWindowRE.FindString(text); window != "" {
		if raw := anyDateRE.FindString(window); raw != "" {
			if iso, ok := numeric.ToISO(raw); ok {
				return iso, true
			}
		}
	}

	// The fallback scans whitespace-collapsed text so a layout gap of
	// spaces or newlines between "bodega" and the date counts as a
	// single character against the 40-character budget.
	oneLine := wsRunRE.ReplaceAllString(text, " ")
	if m := bodegaDateRE.FindStringSubmatch(oneLine); m != nil {
		if iso, ok := numeric.ToISO(m[1]); ok {
			return iso, true
		}
	}

	return "", false
}

func joinText(pages []*model.Page) string {
	parts := make([]string, 0, len(pages))
	for _, page := range pages {
		parts = append(parts, page.Text)
	}
	return strings.Join(parts, "\n")
}

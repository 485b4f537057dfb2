package manifiesto

import "github.com/ebarrera/manifiesto/extract"

// parseOptions holds configuration for a single parse.
type parseOptions struct {
	// Page selection, 1-indexed. nil means all pages.
	pages []int

	// Code prefixes accepted by the strategies. nil means the default
	// set.
	prefixes []string

	// Vertical tolerance for grouping tokens into rows.
	tolerance float64

	// Tesseract language codes for scanned inputs. nil means the OCR
	// package default.
	languages []string
}

func defaultOptions() parseOptions {
	return parseOptions{
		pages:     nil,
		prefixes:  nil,
		tolerance: extract.DefaultConfig().RowTolerance,
	}
}

// Pages restricts parsing to the given 1-indexed pages. The default is
// all pages.
func (p *Parser) Pages(pages ...int) *Parser {
	p.options.pages = append([]int(nil), pages...)
	return p
}

// Prefixes replaces the set of item-code prefixes the strategies
// accept. The default set covers the known product families.
func (p *Parser) Prefixes(prefixes ...string) *Parser {
	p.options.prefixes = append([]string(nil), prefixes...)
	return p
}

// Tolerance sets the vertical distance, in PDF points, within which two
// tokens are considered part of the same row.
func (p *Parser) Tolerance(tolerance float64) *Parser {
	p.options.tolerance = tolerance
	return p
}

// Languages sets the Tesseract language codes used for scanned inputs.
// Only meaningful with OpenImage; ignored for native PDFs.
func (p *Parser) Languages(languages ...string) *Parser {
	p.options.languages = append([]string(nil), languages...)
	return p
}

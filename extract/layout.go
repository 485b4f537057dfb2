package extract

import (
	"strings"

	"github.com/ebarrera/manifiesto/codes"
	"github.com/ebarrera/manifiesto/model"
	"github.com/ebarrera/manifiesto/numeric"
	"github.com/ebarrera/manifiesto/rows"
)

// LayoutStrategy parses visual rows rebuilt from positioned tokens. It is
// the most structured strategy and runs first.
type LayoutStrategy struct {
	classifier *codes.Classifier
	builder    *rows.Builder
}

// NewLayoutStrategy creates a layout strategy using the given classifier
// and row tolerance.
func NewLayoutStrategy(classifier *codes.Classifier, tolerance float64) *LayoutStrategy {
	return &LayoutStrategy{
		classifier: classifier,
		builder:    rows.New(tolerance),
	}
}

// Name returns "layout".
func (s *LayoutStrategy) Name() string {
	return "layout"
}

// Extract rebuilds rows from the page's positioned tokens and parses each
// row independently. Rows failing any gate are skipped.
func (s *LayoutStrategy) Extract(page *model.Page) []model.LineItem {
	var items []model.LineItem
	for _, row := range s.builder.Group(page.Tokens) {
		if item, ok := s.parseRow(row.Texts()); ok {
			items = append(items, item)
		}
	}
	return items
}

// parseRow applies the full gate sequence to one row's token texts.
func (s *LayoutStrategy) parseRow(toks []string) (model.LineItem, bool) {
	if len(toks) == 0 {
		return model.LineItem{}, false
	}
	if strings.Contains(strings.ToUpper(strings.Join(toks, " ")), subtotalMarker) {
		return model.LineItem{}, false
	}
	// An item row must carry at least one alphabetic-looking token, which
	// is expected to be the code prefix.
	if !codes.HasAlphabeticToken(toks) {
		return model.LineItem{}, false
	}

	metersIdx, rollsIdx, ok := pickMetersRolls(toks)
	if !ok {
		return model.LineItem{}, false
	}

	left := toks[:metersIdx]
	code, used := s.classifier.Consume(left)
	if code == "" {
		return model.LineItem{}, false
	}

	item := model.LineItem{
		Code:        code,
		Description: strings.TrimSpace(strings.Join(left[used:], " ")),
		Meters:      numeric.Normalize(toks[metersIdx]),
		Rolls:       numeric.ParseRolls(toks[rollsIdx]),
	}
	if !item.Valid() {
		return model.LineItem{}, false
	}
	return item, true
}

// Package extract recovers merchandise line items from manifest pages.
//
// Three strategies of decreasing structure and increasing leniency are
// provided, all sharing the [Strategy] interface:
//
//   - [LayoutStrategy] - parses visual rows rebuilt from positioned tokens
//   - [TableStrategy] - parses detected tabular structures
//   - [LineStrategy] - regex fallback over raw line text
//
// The document driver tries them in that order and keeps the first
// strategy that yields any items for the whole document. Rows failing any
// gate are dropped silently; that is routine filtering of noisy input, not
// an error condition.
package extract

import (
	"github.com/ebarrera/manifiesto/codes"
	"github.com/ebarrera/manifiesto/model"
	"github.com/ebarrera/manifiesto/numeric"
	"github.com/ebarrera/manifiesto/rows"
)

// subtotalMarker rejects summary rows anywhere they appear.
const subtotalMarker = "SUB-TOTAL"

// Strategy is one self-contained extraction algorithm. Extract returns the
// qualifying items of a single page, in top-to-bottom order; an empty slice
// means the page yielded nothing under this strategy.
type Strategy interface {
	// Name returns the strategy identifier.
	Name() string

	// Extract parses one page into line items.
	Extract(page *model.Page) []model.LineItem
}

// Config carries the shared knobs injected into every strategy at
// construction time.
type Config struct {
	// Prefixes is the accepted merchandise-category prefix set. Empty
	// falls back to codes.DefaultPrefixes.
	Prefixes []string

	// RowTolerance is the vertical band for row reconstruction.
	RowTolerance float64
}

// DefaultConfig returns the configuration used when callers pass the zero
// value.
func DefaultConfig() Config {
	return Config{
		Prefixes:     codes.DefaultPrefixes,
		RowTolerance: rows.DefaultTolerance,
	}
}

// Default returns the standard strategy cascade for the given
// configuration, in trial order.
func Default(cfg Config) []Strategy {
	cls := codes.NewClassifier(cfg.Prefixes)
	return []Strategy{
		NewLayoutStrategy(cls, cfg.RowTolerance),
		NewTableStrategy(cls, nil),
		NewLineStrategy(cls),
	}
}

// pickMetersRolls scans tokens right-to-left: rolls is the first pure
// integer from the right, meters the first numeric token strictly left of
// it. The found flag is false when either is missing.
//
// Known limitation: this assumes roll count follows meters in reading
// order. A manifest with the columns swapped would misassign the pair
// rather than fail.
func pickMetersRolls(toks []string) (metersIdx, rollsIdx int, found bool) {
	rollsIdx = -1
	for i := len(toks) - 1; i >= 0; i-- {
		if numeric.IsInteger(toks[i]) {
			rollsIdx = i
			break
		}
	}
	if rollsIdx < 0 {
		return 0, 0, false
	}
	for i := rollsIdx - 1; i >= 0; i-- {
		if numeric.LooksNumeric(toks[i]) {
			return i, rollsIdx, true
		}
	}
	return 0, 0, false
}

// Package rows reconstructs visual lines from positioned page tokens.
//
// Tokens are grouped by vertical proximity to a running average rather than
// by the document's internal line breaks, since renderers split and reorder
// text freely. This is a streaming single-pass heuristic, not a clustering
// algorithm: it assumes tokens sort cleanly and rows do not interleave
// vertically. Scanned or re-exported documents may need a different
// tolerance band.
package rows

import (
	"math"
	"sort"

	"github.com/ebarrera/manifiesto/model"
)

// DefaultTolerance is the vertical band, in page units, within which tokens
// are considered to lie on the same visual line.
const DefaultTolerance = 3.0

// Builder groups positioned tokens into rows. The zero value is not ready
// for use; construct with New.
type Builder struct {
	tolerance float64
}

// New returns a Builder with the given vertical tolerance. A non-positive
// tolerance falls back to DefaultTolerance.
func New(tolerance float64) *Builder {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	return &Builder{tolerance: tolerance}
}

// Group sorts tokens by (rounded Y, X) and walks them in order, assigning
// each token to the current row while its Y stays within the tolerance of
// the row's running average, and starting a new row otherwise.
//
// Row order is top-to-bottom by first-seen Y; token order within a row is
// strictly left-to-right.
func (b *Builder) Group(tokens []model.Token) []model.Row {
	if len(tokens) == 0 {
		return nil
	}

	sorted := make([]model.Token, len(tokens))
	copy(sorted, tokens)
	sort.SliceStable(sorted, func(i, j int) bool {
		yi := math.Round(sorted[i].Y*10) / 10
		yj := math.Round(sorted[j].Y*10) / 10
		if yi != yj {
			return yi < yj
		}
		return sorted[i].X < sorted[j].X
	})

	var out []model.Row
	var current []model.Token
	lastY := math.NaN()

	for _, tok := range sorted {
		if math.IsNaN(lastY) || math.Abs(tok.Y-lastY) <= b.tolerance {
			current = append(current, tok)
			if math.IsNaN(lastY) {
				lastY = tok.Y
			} else {
				lastY = (lastY + tok.Y) / 2
			}
			continue
		}
		out = append(out, newRow(current))
		current = []model.Token{tok}
		lastY = tok.Y
	}
	if len(current) > 0 {
		out = append(out, newRow(current))
	}
	return out
}

// newRow orders a row's tokens left-to-right. The vertical sort above does
// not guarantee X order across the whole tolerance band.
func newRow(tokens []model.Token) model.Row {
	sort.SliceStable(tokens, func(i, j int) bool {
		return tokens[i].X < tokens[j].X
	})
	return model.Row{Tokens: tokens}
}

package model

import "strings"

// Token is a positioned unit of text on a page. Position may be absent
// (zero) for sources that only expose raw text.
type Token struct {
	Text string
	X    float64
	Y    float64
}

// Row is an ordered sequence of tokens believed to lie on the same visual
// line, ordered left-to-right by X. Rows are reconstructed from token
// positions, not from the document's internal line breaks.
type Row struct {
	Tokens []Token
}

// Texts returns the row's token texts in left-to-right order.
func (r Row) Texts() []string {
	out := make([]string, len(r.Tokens))
	for i, t := range r.Tokens {
		out[i] = t.Text
	}
	return out
}

// Joined returns the row's token texts joined with single spaces.
func (r Row) Joined() string {
	return strings.Join(r.Texts(), " ")
}

// Page holds everything a single document page exposes to the extraction
// strategies: positioned tokens and fallback raw text.
type Page struct {
	Number int     // 1-indexed page number
	Tokens []Token // positioned text tokens, unordered
	Text   string  // raw extracted text, line-structured
}

// Table is a detected tabular structure: rows of cell texts. Cells are
// trimmed but otherwise untouched; empty cells are kept so column positions
// stay aligned across rows.
type Table struct {
	Rows       [][]string
	Confidence float64 // detection confidence (0-1)
}

// RowCount returns the number of rows in the table.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColCount returns the number of columns in the widest row.
func (t *Table) ColCount() int {
	max := 0
	for _, row := range t.Rows {
		if len(row) > max {
			max = len(row)
		}
	}
	return max
}

// LineItem is one merchandise line recovered from a manifest: a dot-joined
// code, a free-text description, length in meters and a roll count.
type LineItem struct {
	Code        string  `json:"code"`
	Description string  `json:"description"`
	Meters      float64 `json:"meters"`
	Rolls       int     `json:"rolls"`
}

// Valid reports whether the item passes the acceptance invariant: a
// non-empty description and at least one positive quantity. Items failing
// this are dropped silently; it is a filter against malformed rows, not a
// validation error.
func (it LineItem) Valid() bool {
	if strings.TrimSpace(it.Description) == "" {
		return false
	}
	return it.Meters > 0 || it.Rolls > 0
}

// Shipment is the record handed back to the caller: the delivery date in
// canonical YYYY-MM-DD form (empty when none was recoverable) and the line
// items in document order. Ownership transfers to the caller; the engine
// retains nothing between invocations.
type Shipment struct {
	Date  string     `json:"date,omitempty"`
	Items []LineItem `json:"items"`
}

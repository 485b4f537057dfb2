package extract

import (
	"strings"

	"github.com/ebarrera/manifiesto/codes"
	"github.com/ebarrera/manifiesto/internal/fold"
	"github.com/ebarrera/manifiesto/model"
	"github.com/ebarrera/manifiesto/numeric"
	"github.com/ebarrera/manifiesto/tables"
)

// headerKeywords identify a table's header row. Diacritics are folded, so
// CÓDIGO and Codigo both match.
var headerKeywords = []string{"codigo", "descripcion"}

// TableStrategy parses detected tabular structures. It only applies when
// the table detector reports structure on the page; pages without it yield
// nothing and the driver falls through to the line fallback.
type TableStrategy struct {
	classifier *codes.Classifier
	detector   tables.Detector
}

// NewTableStrategy creates a table strategy. A nil detector selects the
// globally registered alignment detector.
func NewTableStrategy(classifier *codes.Classifier, detector tables.Detector) *TableStrategy {
	if detector == nil {
		detector = tables.GetDetector("alignment")
	}
	return &TableStrategy{classifier: classifier, detector: detector}
}

// Name returns "table".
func (s *TableStrategy) Name() string {
	return "table"
}

// Extract runs table detection on the page and parses every detected
// table's data rows.
func (s *TableStrategy) Extract(page *model.Page) []model.LineItem {
	tbls, err := s.detector.Detect(page)
	if err != nil {
		return nil
	}

	var items []model.LineItem
	for _, table := range tbls {
		items = append(items, s.parseTable(table)...)
	}
	return items
}

// parseTable skips the header, then parses each remaining row.
func (s *TableStrategy) parseTable(table *model.Table) []model.LineItem {
	if table.RowCount() < 2 {
		return nil
	}

	// Locate the header row among the first three rows and skip through it.
	start := 0
	limit := 3
	if len(table.Rows) < limit {
		limit = len(table.Rows)
	}
	for i := 0; i < limit; i++ {
		joined := strings.Join(table.Rows[i], " ")
		for _, kw := range headerKeywords {
			if fold.Contains(joined, kw) {
				start = i + 1
				break
			}
		}
	}

	var items []model.LineItem
	for _, row := range table.Rows[start:] {
		if item, ok := s.parseCells(row); ok {
			items = append(items, item)
		}
	}
	return items
}

// parseCells applies the cell-level gates to one table row.
func (s *TableStrategy) parseCells(row []string) (model.LineItem, bool) {
	cells := make([]string, len(row))
	nonEmpty := false
	for i, c := range row {
		cells[i] = strings.TrimSpace(c)
		if cells[i] != "" {
			nonEmpty = true
		}
	}
	if !nonEmpty {
		return model.LineItem{}, false
	}
	if strings.Contains(strings.ToUpper(strings.Join(cells, " ")), subtotalMarker) {
		return model.LineItem{}, false
	}

	var code string
	for _, c := range cells {
		if code = s.classifier.CellCode(c); code != "" {
			break
		}
	}
	if code == "" {
		return model.LineItem{}, false
	}

	// Rolls then meters, right-to-left, skipping intervening non-numeric
	// cells (a price column often sits between them).
	rollsIdx := -1
	metersIdx := -1
	for i := len(cells) - 1; i >= 0; i-- {
		if numeric.IsInteger(cells[i]) {
			rollsIdx = i
			for j := i - 1; j >= 0; j-- {
				if numeric.LooksNumeric(cells[j]) {
					metersIdx = j
					break
				}
			}
			break
		}
	}
	if rollsIdx < 0 || metersIdx < 0 {
		return model.LineItem{}, false
	}

	// Description: first cell that is neither the code, numeric, nor
	// prefix-shaped.
	desc := ""
	for _, c := range cells {
		if c == "" || c == code || numeric.LooksNumeric(c) || s.classifier.PrefixShaped(c) {
			continue
		}
		desc = c
		break
	}

	item := model.LineItem{
		Code:        code,
		Description: desc,
		Meters:      numeric.Normalize(cells[metersIdx]),
		Rolls:       numeric.ParseRolls(cells[rollsIdx]),
	}
	if !item.Valid() {
		return model.LineItem{}, false
	}
	return item, true
}

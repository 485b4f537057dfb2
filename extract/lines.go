package extract

import (
	"regexp"
	"strings"

	"github.com/ebarrera/manifiesto/codes"
	"github.com/ebarrera/manifiesto/model"
	"github.com/ebarrera/manifiesto/numeric"
)

var hspaceRE = regexp.MustCompile(`[ \t]+`)

// LineStrategy is the raw-text regex fallback. It is the most lenient
// strategy and the most prone to false positives, so it runs last.
type LineStrategy struct {
	classifier *codes.Classifier
	lineRE     *regexp.Regexp
}

// NewLineStrategy creates a line strategy for the classifier's prefix set.
func NewLineStrategy(classifier *codes.Classifier) *LineStrategy {
	prefix := classifier.PrefixPattern()
	// code, description (lazy), meters, then a 1-6 digit integer that is
	// the last numeric group on the line (no non-space may follow it).
	re := regexp.MustCompile(`(?i)(` + prefix + `[\s.\d]+?)\s+(.+?)\s+(\d[\d.,]*)\s+(\d{1,6})(?:\s|$)`)
	return &LineStrategy{classifier: classifier, lineRE: re}
}

// Name returns "lines".
func (s *LineStrategy) Name() string {
	return "lines"
}

// Extract parses the page's raw text one line at a time, normalizing runs
// of horizontal whitespace to single spaces first.
func (s *LineStrategy) Extract(page *model.Page) []model.LineItem {
	text := hspaceRE.ReplaceAllString(page.Text, " ")

	var items []model.LineItem
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.Contains(strings.ToUpper(line), subtotalMarker) {
			continue
		}

		m := s.lineRE.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		code := s.classifier.CellCode(m[1])
		if code == "" {
			continue
		}

		item := model.LineItem{
			Code:        code,
			Description: strings.TrimSpace(m[2]),
			Meters:      numeric.Normalize(m[3]),
			Rolls:       numeric.ParseRolls(m[4]),
		}
		if !item.Valid() {
			continue
		}
		items = append(items, item)
	}
	return items
}

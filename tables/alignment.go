package tables

import (
	"math"
	"sort"
	"strings"

	"github.com/ebarrera/manifiesto/model"
	"github.com/ebarrera/manifiesto/rows"
)

// AlignmentDetector implements table detection from token alignment alone.
// It groups tokens into visual rows, splits the page into blocks at large
// vertical gaps, and clusters token X positions into column starts. Blocks
// whose tokens line up on enough shared columns are reported as tables.
type AlignmentDetector struct {
	config Config
}

// NewAlignmentDetector creates an alignment detector with default
// configuration.
func NewAlignmentDetector() *AlignmentDetector {
	return &AlignmentDetector{config: DefaultConfig()}
}

// Name returns the detector's identifier ("alignment").
func (d *AlignmentDetector) Name() string {
	return "alignment"
}

// Configure sets the detector configuration.
func (d *AlignmentDetector) Configure(config Config) error {
	d.config = config
	return nil
}

// Detect finds tables on a page. Pages without positioned tokens expose no
// tabular structure and yield nil.
func (d *AlignmentDetector) Detect(page *model.Page) ([]*model.Table, error) {
	if page == nil || len(page.Tokens) == 0 {
		return nil, nil
	}

	grouped := rows.New(d.config.RowTolerance).Group(page.Tokens)

	var tables []*model.Table
	for _, block := range d.splitBlocks(grouped) {
		if table := d.detectInBlock(block); table != nil {
			tables = append(tables, table)
		}
	}
	return tables, nil
}

// splitBlocks cuts the row sequence wherever the vertical gap between
// consecutive rows exceeds BlockGap. Separate blocks are candidate tables.
func (d *AlignmentDetector) splitBlocks(all []model.Row) [][]model.Row {
	if len(all) == 0 {
		return nil
	}

	var blocks [][]model.Row
	current := []model.Row{all[0]}

	for i := 1; i < len(all); i++ {
		gap := rowY(all[i]) - rowY(all[i-1])
		if gap > d.config.BlockGap {
			blocks = append(blocks, current)
			current = nil
		}
		current = append(current, all[i])
	}
	blocks = append(blocks, current)
	return blocks
}

// detectInBlock builds a cell grid for one block, or returns nil when the
// block does not look tabular.
func (d *AlignmentDetector) detectInBlock(block []model.Row) *model.Table {
	if len(block) < d.config.MinRows {
		return nil
	}

	cols := d.columnStarts(block)
	if len(cols) < d.config.MinCols {
		return nil
	}

	confidence := d.confidence(block, cols)
	if confidence < d.config.MinConfidence {
		return nil
	}

	table := &model.Table{Confidence: confidence}
	for _, row := range block {
		cells := make([]string, len(cols))
		for _, tok := range row.Tokens {
			ci := d.columnIndex(cols, tok.X)
			if cells[ci] == "" {
				cells[ci] = tok.Text
			} else {
				cells[ci] += " " + tok.Text
			}
		}
		for i, c := range cells {
			cells[i] = strings.TrimSpace(c)
		}
		table.Rows = append(table.Rows, cells)
	}
	return table
}

// columnStarts clusters token X positions across the block and keeps the
// clusters supported by at least MinRows distinct rows. The survivors,
// sorted ascending, are the column start positions.
func (d *AlignmentDetector) columnStarts(block []model.Row) []float64 {
	xs := make([]float64, 0, len(block)*4)
	for _, row := range block {
		for _, tok := range row.Tokens {
			xs = append(xs, tok.X)
		}
	}
	sort.Float64s(xs)
	clustered := clusterValues(xs, d.config.AlignmentTolerance)

	var cols []float64
	for _, center := range clustered {
		support := 0
		for _, row := range block {
			for _, tok := range row.Tokens {
				if math.Abs(tok.X-center) <= d.config.AlignmentTolerance {
					support++
					break
				}
			}
		}
		if support >= d.config.MinRows {
			cols = append(cols, center)
		}
	}
	return cols
}

// columnIndex returns the column a token at x belongs to: the rightmost
// column start not past x (within tolerance). Tokens left of every column
// start land in column 0.
func (d *AlignmentDetector) columnIndex(cols []float64, x float64) int {
	idx := 0
	for i, c := range cols {
		if c <= x+d.config.AlignmentTolerance {
			idx = i
		}
	}
	return idx
}

// confidence scores how many tokens sit on a detected column start. Rows of
// free-flowing text score low and keep prose blocks from being reported as
// tables.
func (d *AlignmentDetector) confidence(block []model.Row, cols []float64) float64 {
	total, aligned := 0, 0
	for _, row := range block {
		for _, tok := range row.Tokens {
			total++
			for _, c := range cols {
				if math.Abs(tok.X-c) <= d.config.AlignmentTolerance {
					aligned++
					break
				}
			}
		}
	}
	if total == 0 {
		return 0
	}
	return float64(aligned) / float64(total)
}

// clusterValues clusters nearby sorted values within the given tolerance,
// averaging values that fall within the tolerance of the cluster center.
func clusterValues(values []float64, tolerance float64) []float64 {
	if len(values) == 0 {
		return nil
	}

	clustered := []float64{values[0]}
	for i := 1; i < len(values); i++ {
		diff := values[i] - clustered[len(clustered)-1]
		if diff > tolerance {
			clustered = append(clustered, values[i])
		} else {
			clustered[len(clustered)-1] = (clustered[len(clustered)-1] + values[i]) / 2
		}
	}
	return clustered
}

// rowY is the row's vertical position: the Y of its first token.
func rowY(r model.Row) float64 {
	if len(r.Tokens) == 0 {
		return 0
	}
	return r.Tokens[0].Y
}

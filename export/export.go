// Package export produces XLSX workbooks from stored arrivals, one row
// per line item, for hand-off to warehouse and sales staff.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/ebarrera/manifiesto/store"
)

// Service turns stored arrivals into XLSX bytes.
type Service struct {
	store  *store.Store
	logger *slog.Logger
}

// NewService creates an export service. A nil logger falls back to the
// default logger.
func NewService(s *store.Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: s, logger: logger}
}

// ArrivalsXLSX returns an XLSX workbook covering arrivals in the
// inclusive date window. Empty bounds are open ended. Each line item
// becomes one row, repeated with its arrival's BL and date.
func (s *Service) ArrivalsXLSX(ctx context.Context, from, to string) ([]byte, error) {
	start := time.Now()

	arrivals, err := s.store.Arrivals(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("query arrivals: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Llegadas"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	headers := []string{"BL", "Fecha", "Puerto", "Código", "Descripción", "Metros", "Rollos"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	items := 0
	for _, a := range arrivals {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		if len(a.Items) == 0 {
			// Keep headerless arrivals visible in the export.
			write(1, a.BL)
			write(2, a.Date)
			write(3, a.Port)
			row++
			continue
		}

		for _, item := range a.Items {
			write(1, a.BL)
			write(2, a.Date)
			write(3, a.Port)
			write(4, item.Code)
			write(5, item.Description)
			write(6, item.Meters)
			write(7, item.Rolls)
			row++
			items++
		}
	}

	_ = f.SetColWidth(sheet, "A", "A", 18) // BL
	_ = f.SetColWidth(sheet, "B", "B", 12) // date
	_ = f.SetColWidth(sheet, "C", "C", 16) // port
	_ = f.SetColWidth(sheet, "D", "D", 20) // code
	_ = f.SetColWidth(sheet, "E", "E", 40) // description
	_ = f.SetColWidth(sheet, "F", "G", 10) // quantities

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export ok",
		"arrivals", len(arrivals),
		"items", items,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

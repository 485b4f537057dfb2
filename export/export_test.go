package export

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/ebarrera/manifiesto/model"
	"github.com/ebarrera/manifiesto/store"
)

func testService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	s, err := store.Open(context.Background(), filepath.Join(t.TempDir(), "test.db"), nil)
	if err != nil {
		t.Fatalf("store.Open() error: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return NewService(s, nil), s
}

func TestArrivalsXLSX(t *testing.T) {
	svc, st := testService(t)
	ctx := context.Background()

	arrival := store.Arrival{
		BL:   "BL-001",
		Date: "2024-07-04",
		Port: "Buenaventura",
		Items: []model.LineItem{
			{Code: "TX.860.01.0004", Description: "Tela azul", Meters: 120.50, Rolls: 10},
			{Code: "DC.200.96.0003", Description: "Tela cruda", Meters: 80, Rolls: 4},
		},
	}
	if err := st.UpsertArrival(ctx, arrival); err != nil {
		t.Fatalf("UpsertArrival() error: %v", err)
	}

	data, err := svc.ArrivalsXLSX(ctx, "", "")
	if err != nil {
		t.Fatalf("ArrivalsXLSX() error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Llegadas")
	if err != nil {
		t.Fatalf("GetRows() error: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("workbook has %d rows, want 3 (header + 2 items)", len(rows))
	}
	if rows[0][0] != "BL" || rows[0][3] != "Código" {
		t.Errorf("header row = %v", rows[0])
	}
	if rows[1][0] != "BL-001" || rows[1][3] != "TX.860.01.0004" {
		t.Errorf("first item row = %v", rows[1])
	}
	if rows[2][4] != "Tela cruda" {
		t.Errorf("second item row = %v", rows[2])
	}
}

func TestArrivalsXLSX_DateWindow(t *testing.T) {
	svc, st := testService(t)
	ctx := context.Background()

	for _, a := range []store.Arrival{
		{BL: "BL-JUN", Date: "2024-06-15"},
		{BL: "BL-JUL", Date: "2024-07-04"},
	} {
		if err := st.UpsertArrival(ctx, a); err != nil {
			t.Fatalf("UpsertArrival(%s) error: %v", a.BL, err)
		}
	}

	data, err := svc.ArrivalsXLSX(ctx, "2024-07-01", "2024-07-31")
	if err != nil {
		t.Fatalf("ArrivalsXLSX() error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Llegadas")
	if err != nil {
		t.Fatalf("GetRows() error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("workbook has %d rows, want 2 (header + BL-JUL)", len(rows))
	}
	if rows[1][0] != "BL-JUL" {
		t.Errorf("row = %v, want BL-JUL", rows[1])
	}
}

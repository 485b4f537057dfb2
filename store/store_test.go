package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/ebarrera/manifiesto/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "test.db"), nil)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleArrival() Arrival {
	return Arrival{
		BL:   "BL-001",
		Date: "2024-07-04",
		Port: "Buenaventura",
		Items: []model.LineItem{
			{Code: "TX.860.01.0004", Description: "Tela azul", Meters: 120.50, Rolls: 10},
			{Code: "DC.200.96.0003", Description: "Tela cruda", Meters: 80, Rolls: 4},
		},
	}
}

func TestUpsertAndLoadArrival(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.UpsertArrival(ctx, sampleArrival()); err != nil {
		t.Fatalf("UpsertArrival() error: %v", err)
	}

	got, err := s.Arrival(ctx, "BL-001")
	if err != nil {
		t.Fatalf("Arrival() error: %v", err)
	}
	if got.Date != "2024-07-04" || got.Port != "Buenaventura" {
		t.Errorf("header = %+v", got)
	}
	if len(got.Items) != 2 {
		t.Fatalf("Arrival() = %d items, want 2", len(got.Items))
	}
	if got.Items[0].Code != "TX.860.01.0004" || got.Items[0].Meters != 120.50 {
		t.Errorf("first item = %+v", got.Items[0])
	}
}

func TestUpsertReplacesItems(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.UpsertArrival(ctx, sampleArrival()); err != nil {
		t.Fatalf("UpsertArrival() error: %v", err)
	}

	// Re-upload with a corrected single item.
	corrected := Arrival{
		BL:   "BL-001",
		Date: "2024-07-05",
		Items: []model.LineItem{
			{Code: "TX.860.01.0004", Description: "Tela azul", Meters: 125, Rolls: 11},
		},
	}
	if err := s.UpsertArrival(ctx, corrected); err != nil {
		t.Fatalf("UpsertArrival() re-upload error: %v", err)
	}

	got, err := s.Arrival(ctx, "BL-001")
	if err != nil {
		t.Fatalf("Arrival() error: %v", err)
	}
	if got.Date != "2024-07-05" {
		t.Errorf("Date = %q, want updated 2024-07-05", got.Date)
	}
	if len(got.Items) != 1 {
		t.Fatalf("Arrival() = %d items, want 1 (old items rewritten)", len(got.Items))
	}
	if got.Items[0].Rolls != 11 {
		t.Errorf("Rolls = %d, want 11", got.Items[0].Rolls)
	}
}

func TestUpsertEmptyBL(t *testing.T) {
	s := openTestStore(t)
	if err := s.UpsertArrival(context.Background(), Arrival{}); err == nil {
		t.Error("UpsertArrival() with empty BL: want error, got nil")
	}
}

func TestEventsOrderedByDate(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for _, a := range []Arrival{
		{BL: "BL-B", Date: "2024-08-01"},
		{BL: "BL-A", Date: "2024-07-04"},
	} {
		if err := s.UpsertArrival(ctx, a); err != nil {
			t.Fatalf("UpsertArrival(%s) error: %v", a.BL, err)
		}
	}

	events, err := s.Events(ctx)
	if err != nil {
		t.Fatalf("Events() error: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("Events() = %d, want 2", len(events))
	}
	if events[0].ID != "BL-A" || events[1].ID != "BL-B" {
		t.Errorf("order = %s, %s; want BL-A, BL-B", events[0].ID, events[1].ID)
	}
	if events[0].Title != "Llegada: BL-A" {
		t.Errorf("Title = %q, want 'Llegada: BL-A'", events[0].Title)
	}
	if !events[0].AllDay {
		t.Error("AllDay = false, want true")
	}
	if events[0].Start != "2024-07-04" {
		t.Errorf("Start = %q, want 2024-07-04", events[0].Start)
	}
}

func TestArrivalNotFound(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.Arrival(context.Background(), "NOPE"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Arrival() = %v, want ErrNotFound", err)
	}
}

func TestArrivalsDateRange(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for _, a := range []Arrival{
		{BL: "BL-JUN", Date: "2024-06-15"},
		{BL: "BL-JUL", Date: "2024-07-04", Items: []model.LineItem{{Code: "TX.1.2.3", Description: "Tela", Meters: 10, Rolls: 1}}},
		{BL: "BL-AUG", Date: "2024-08-20"},
	} {
		if err := s.UpsertArrival(ctx, a); err != nil {
			t.Fatalf("UpsertArrival(%s) error: %v", a.BL, err)
		}
	}

	got, err := s.Arrivals(ctx, "2024-07-01", "2024-07-31")
	if err != nil {
		t.Fatalf("Arrivals() error: %v", err)
	}
	if len(got) != 1 || got[0].BL != "BL-JUL" {
		t.Fatalf("Arrivals() = %+v, want only BL-JUL", got)
	}
	if len(got[0].Items) != 1 {
		t.Errorf("items = %d, want 1", len(got[0].Items))
	}

	all, err := s.Arrivals(ctx, "", "")
	if err != nil {
		t.Fatalf("Arrivals() unbounded error: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Arrivals() unbounded = %d, want 3", len(all))
	}
}

func TestDeleteArrival(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.UpsertArrival(ctx, sampleArrival()); err != nil {
		t.Fatalf("UpsertArrival() error: %v", err)
	}
	if err := s.DeleteArrival(ctx, "BL-001"); err != nil {
		t.Fatalf("DeleteArrival() error: %v", err)
	}
	if _, err := s.Arrival(ctx, "BL-001"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Arrival() after delete = %v, want ErrNotFound", err)
	}
	if err := s.DeleteArrival(ctx, "BL-001"); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteArrival() twice = %v, want ErrNotFound", err)
	}
}

package rows

import (
	"testing"

	"github.com/ebarrera/manifiesto/model"
)

func TestBuilder_Group_Empty(t *testing.T) {
	b := New(0)
	if got := b.Group(nil); got != nil {
		t.Errorf("Group(nil) = %v, want nil", got)
	}
}

func TestBuilder_Group_SingleRow(t *testing.T) {
	b := New(3.0)
	tokens := []model.Token{
		{Text: "Tela", X: 60, Y: 100.4},
		{Text: "TX", X: 10, Y: 100},
		{Text: "860", X: 30, Y: 99.8},
	}

	rows := b.Group(tokens)
	if len(rows) != 1 {
		t.Fatalf("Group() produced %d rows, want 1", len(rows))
	}
	if got := rows[0].Joined(); got != "TX 860 Tela" {
		t.Errorf("row = %q, want %q (left-to-right order)", got, "TX 860 Tela")
	}
}

func TestBuilder_Group_SplitsDistantRows(t *testing.T) {
	b := New(3.0)
	tokens := []model.Token{
		{Text: "first", X: 10, Y: 100},
		{Text: "second", X: 10, Y: 112},
		{Text: "third", X: 10, Y: 124},
	}

	rows := b.Group(tokens)
	if len(rows) != 3 {
		t.Fatalf("Group() produced %d rows, want 3", len(rows))
	}
	for i, want := range []string{"first", "second", "third"} {
		if got := rows[i].Joined(); got != want {
			t.Errorf("row %d = %q, want %q (top-to-bottom order)", i, got, want)
		}
	}
}

func TestBuilder_Group_RunningAverage(t *testing.T) {
	// Tokens drift slightly downward but stay within tolerance of the
	// running average, so they form a single row.
	b := New(3.0)
	tokens := []model.Token{
		{Text: "a", X: 10, Y: 100},
		{Text: "b", X: 20, Y: 102},
		{Text: "c", X: 30, Y: 103.5},
	}

	rows := b.Group(tokens)
	if len(rows) != 1 {
		t.Fatalf("Group() produced %d rows, want 1", len(rows))
	}
}

func TestBuilder_Group_CustomTolerance(t *testing.T) {
	tokens := []model.Token{
		{Text: "a", X: 10, Y: 100},
		{Text: "b", X: 20, Y: 105},
	}

	if rows := New(3.0).Group(tokens); len(rows) != 2 {
		t.Errorf("tolerance 3.0: got %d rows, want 2", len(rows))
	}
	if rows := New(6.0).Group(tokens); len(rows) != 1 {
		t.Errorf("tolerance 6.0: got %d rows, want 1", len(rows))
	}
}

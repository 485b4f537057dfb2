package extract

import (
	"testing"

	"github.com/ebarrera/manifiesto/codes"
	"github.com/ebarrera/manifiesto/model"
)

// tokenRow lays texts out left-to-right on a single visual line.
func tokenRow(y float64, texts ...string) []model.Token {
	toks := make([]model.Token, len(texts))
	for i, s := range texts {
		toks[i] = model.Token{Text: s, X: float64(10 + i*30), Y: y}
	}
	return toks
}

func newLayout() *LayoutStrategy {
	return NewLayoutStrategy(codes.NewClassifier(nil), 3.0)
}

func TestLayoutStrategy_Extract_SplitCode(t *testing.T) {
	s := newLayout()
	page := &model.Page{
		Tokens: tokenRow(100, "TX", ".", "860", ".", "01", ".", "0004", "Tela", "azul", "120,50", "10"),
	}

	items := s.Extract(page)
	if len(items) != 1 {
		t.Fatalf("Extract() = %d items, want 1", len(items))
	}
	item := items[0]
	if item.Code != "TX.860.01.0004" {
		t.Errorf("Code = %q, want TX.860.01.0004", item.Code)
	}
	if item.Description != "Tela azul" {
		t.Errorf("Description = %q, want 'Tela azul'", item.Description)
	}
	if item.Meters != 120.50 {
		t.Errorf("Meters = %v, want 120.50", item.Meters)
	}
	if item.Rolls != 10 {
		t.Errorf("Rolls = %d, want 10", item.Rolls)
	}
}

func TestLayoutStrategy_Extract_SubtotalExcluded(t *testing.T) {
	s := newLayout()
	page := &model.Page{
		Tokens: tokenRow(100, "SUB-TOTAL", "TX", ".", "860", "Tela", "120,50", "10"),
	}
	if items := s.Extract(page); len(items) != 0 {
		t.Errorf("Extract() on SUB-TOTAL row = %d items, want 0", len(items))
	}

	// Case-insensitive.
	page = &model.Page{
		Tokens: tokenRow(100, "sub-total", "TX", ".", "860", "Tela", "120,50", "10"),
	}
	if items := s.Extract(page); len(items) != 0 {
		t.Errorf("Extract() on lowercase sub-total row = %d items, want 0", len(items))
	}
}

func TestLayoutStrategy_Extract_NoAlphabeticToken(t *testing.T) {
	s := newLayout()
	page := &model.Page{
		Tokens: tokenRow(100, "1234", "120,50", "10"),
	}
	if items := s.Extract(page); len(items) != 0 {
		t.Errorf("Extract() on all-numeric row = %d items, want 0", len(items))
	}
}

func TestLayoutStrategy_Extract_MissingNumericPair(t *testing.T) {
	s := newLayout()

	// No pure integer anywhere.
	page := &model.Page{Tokens: tokenRow(100, "TX", ".", "860", "Tela", "120,50")}
	if items := s.Extract(page); len(items) != 0 {
		t.Errorf("Extract() without rolls = %d items, want 0", len(items))
	}

	// Integer but nothing numeric to its left besides the code itself is
	// fine; nothing at all is not.
	page = &model.Page{Tokens: tokenRow(100, "Tela", "10")}
	if items := s.Extract(page); len(items) != 0 {
		t.Errorf("Extract() without meters = %d items, want 0", len(items))
	}
}

func TestLayoutStrategy_Extract_ZeroQuantities(t *testing.T) {
	s := newLayout()

	// meters=0 and rolls=0: dropped despite code and description.
	page := &model.Page{Tokens: tokenRow(100, "TX", ".", "860", "Tela", "0,00", "0")}
	if items := s.Extract(page); len(items) != 0 {
		t.Errorf("Extract() with zero quantities = %d items, want 0", len(items))
	}

	// rolls=5, meters=0: kept.
	page = &model.Page{Tokens: tokenRow(100, "TX", ".", "860", "Tela", "0,00", "5")}
	items := s.Extract(page)
	if len(items) != 1 {
		t.Fatalf("Extract() with rolls only = %d items, want 1", len(items))
	}
	if items[0].Rolls != 5 || items[0].Meters != 0 {
		t.Errorf("item = %+v, want rolls=5 meters=0", items[0])
	}
}

func TestLayoutStrategy_Extract_NoCodeTokens(t *testing.T) {
	s := newLayout()
	page := &model.Page{Tokens: tokenRow(100, "Tela", "azul", "120,50", "10")}
	if items := s.Extract(page); len(items) != 0 {
		t.Errorf("Extract() without code = %d items, want 0", len(items))
	}
}

func TestLayoutStrategy_Extract_MultipleRows(t *testing.T) {
	s := newLayout()
	page := &model.Page{}
	page.Tokens = append(page.Tokens, tokenRow(100, "TX", ".", "860", ".", "01", "Tela", "azul", "120,50", "10")...)
	page.Tokens = append(page.Tokens, tokenRow(120, "DC", ".", "200", ".", "96", "Tela", "cruda", "80,00", "4")...)
	page.Tokens = append(page.Tokens, tokenRow(140, "SUB-TOTAL", "200,50", "14")...)

	items := s.Extract(page)
	if len(items) != 2 {
		t.Fatalf("Extract() = %d items, want 2", len(items))
	}
	if items[0].Code != "TX.860.01" || items[1].Code != "DC.200.96" {
		t.Errorf("items out of order: %q, %q", items[0].Code, items[1].Code)
	}
}

package model

import (
	"reflect"
	"testing"
)

func TestTableProjectIntersectionKeepsOrder(t *testing.T) {
	tbl := &Table{
		Columns: []string{"Symbol", "Last", "Extra", "Date"},
		Rows: []Row{
			{"Symbol": "SPY", "Last": 95.0, "Extra": "x", "Date": "2024-01-30"},
		},
	}

	out := tbl.Project([]string{"Date", "Missing", "Symbol", "Last"})

	wantCols := []string{"Date", "Symbol", "Last"}
	if !reflect.DeepEqual(out.Columns, wantCols) {
		t.Fatalf("expected columns %v, got %v", wantCols, out.Columns)
	}

	row := out.Rows[0]
	if len(row) != 3 {
		t.Fatalf("expected 3 cells, got %d: %v", len(row), row)
	}
	if _, exists := row["Extra"]; exists {
		t.Error("unselected column leaked through projection")
	}
	if _, exists := row["Missing"]; exists {
		t.Error("projection synthesized a column the source does not have")
	}
}

func TestTableAddColumnDeduplicates(t *testing.T) {
	tbl := &Table{Columns: []string{"A"}}
	tbl.AddColumn("B")
	tbl.AddColumn("A")
	if !reflect.DeepEqual(tbl.Columns, []string{"A", "B"}) {
		t.Fatalf("unexpected columns: %v", tbl.Columns)
	}
}

func TestVariantStrikeColumn(t *testing.T) {
	if got := VariantETF.StrikeColumn(); got != "H_Strike" {
		t.Errorf("ETF strike column: %s", got)
	}
	if got := VariantStock.StrikeColumn(); got != "Strike" {
		t.Errorf("stock strike column: %s", got)
	}
}

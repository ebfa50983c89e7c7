package table

import (
	"reflect"
	"testing"
)

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("%s: expected panic", name)
		}
	}()
	fn()
}

func rowOf(raws ...string) Row {
	cells := make([]Cell, len(raws))
	for i, r := range raws {
		cells[i] = NewCell(r)
	}
	return NewRow(cells, "")
}

func TestNewTableInvariants(t *testing.T) {
	h := rowOf(" a ", " b ")
	mustPanic(t, "zero columns", func() {
		NewTable(&h, nil, nil)
	})
	mustPanic(t, "header width mismatch", func() {
		NewTable(&h, nil, []Alignment{AlignNone})
	})
	mustPanic(t, "ragged body", func() {
		NewTable(&h, []Row{rowOf(" 1 ")}, []Alignment{AlignNone, AlignNone})
	})
	mustPanic(t, "no header and no body", func() {
		NewTable(nil, nil, []Alignment{AlignNone})
	})
	// Valid shapes do not panic.
	NewTable(&h, []Row{rowOf(" 1 ", " 2 ")}, []Alignment{AlignNone, AlignNone})
	NewTable(nil, []Row{rowOf(" 1 ")}, []Alignment{AlignNone})
}

func TestTableLinesSynthesizesDelimiter(t *testing.T) {
	h := rowOf(" a ", " b ")
	tbl := NewTable(&h, []Row{rowOf(" 1 ", " 2 ")}, []Alignment{AlignRight, AlignNone})
	want := []string{
		"| a | b |",
		"| --: | --- |",
		"| 1 | 2 |",
	}
	if got := tbl.Lines(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Lines = %q, want %q", got, want)
	}
}

func TestTableLinesWithoutHeader(t *testing.T) {
	tbl := NewTable(nil, []Row{rowOf(" 1 ")}, []Alignment{AlignNone})
	want := []string{"| 1 |"}
	if got := tbl.Lines(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Lines = %q, want %q", got, want)
	}
}

func TestFocusedCell(t *testing.T) {
	h := rowOf(" a ", " b ")
	tbl := NewTable(&h, []Row{rowOf(" 1 ", " 2 ")}, []Alignment{AlignNone, AlignNone})

	cell, ok := tbl.FocusedCell(NewFocus(0, 1, 0))
	if !ok || cell.Content() != "b" {
		t.Fatalf("header cell = %q ok=%v, want b true", cell.Content(), ok)
	}
	cell, ok = tbl.FocusedCell(NewFocus(2, 0, 0))
	if !ok || cell.Content() != "1" {
		t.Fatalf("body cell = %q ok=%v, want 1 true", cell.Content(), ok)
	}
	if cell, ok = tbl.FocusedCell(NewFocus(1, 0, 0)); !ok || cell.Content() != "---" {
		t.Fatalf("delimiter cell = %q ok=%v, want --- true", cell.Content(), ok)
	}
	if _, ok = tbl.FocusedCell(NewFocus(-1, 0, 0)); ok {
		t.Fatalf("row -1: ok = true, want false")
	}
	if _, ok = tbl.FocusedCell(NewFocus(0, -1, 0)); ok {
		t.Fatalf("margin column: ok = true, want false")
	}
	if _, ok = tbl.FocusedCell(NewFocus(0, 2, 0)); ok {
		t.Fatalf("right margin column: ok = true, want false")
	}
	if _, ok = tbl.FocusedCell(NewFocus(9, 0, 0)); ok {
		t.Fatalf("row beyond table: ok = true, want false")
	}
}

func TestPositionOfFocus(t *testing.T) {
	h := rowOf(" a ", " b ")
	tbl := NewTable(&h, []Row{rowOf(" 1 ", " 2 ")}, []Alignment{AlignNone, AlignNone})

	cases := []struct {
		focus Focus
		want  Point
	}{
		{NewFocus(0, 0, 1), NewPoint(10, 2)},
		{NewFocus(0, 1, 0), NewPoint(10, 5)},
		{NewFocus(2, 0, 2), NewPoint(12, 3)},
		{NewFocus(0, -1, 0), NewPoint(10, 0)},
		{NewFocus(0, 5, 1), NewPoint(10, 10)},
	}
	for _, tc := range cases {
		got, ok := tbl.PositionOfFocus(tc.focus, 10)
		if !ok || got != tc.want {
			t.Fatalf("PositionOfFocus(%+v) = %+v ok=%v, want %+v", tc.focus, got, ok, tc.want)
		}
	}
	if _, ok := tbl.PositionOfFocus(NewFocus(7, 0, 0), 10); ok {
		t.Fatalf("row beyond table: ok = true, want false")
	}
}

func TestSelectionRangeOfFocus(t *testing.T) {
	h := rowOf(" ab ", "  ")
	tbl := NewTable(&h, []Row{rowOf(" 1 ", " 2 ")}, []Alignment{AlignNone, AlignNone})

	r, ok := tbl.SelectionRangeOfFocus(NewFocus(0, 0, 0), 4)
	if !ok {
		t.Fatalf("selection not available for non-empty cell")
	}
	want := NewRange(NewPoint(4, 2), NewPoint(4, 4))
	if r != want {
		t.Fatalf("selection = %+v, want %+v", r, want)
	}
	if _, ok := tbl.SelectionRangeOfFocus(NewFocus(0, 1, 0), 4); ok {
		t.Fatalf("empty cell: ok = true, want false")
	}
	if _, ok := tbl.SelectionRangeOfFocus(NewFocus(0, -1, 0), 4); ok {
		t.Fatalf("margin: ok = true, want false")
	}
}

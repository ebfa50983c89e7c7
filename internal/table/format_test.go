package table

import (
	"reflect"
	"testing"
)

func TestCompleteInsertsMissingDelimiter(t *testing.T) {
	raw := ReadTable([]string{"| a | b |", "| 1 | 2 |"})
	res := Complete(raw)
	if !res.DelimiterInserted {
		t.Fatalf("DelimiterInserted = false, want true")
	}
	tbl := res.Table
	if _, ok := tbl.Header(); !ok {
		t.Fatalf("completed table has no header")
	}
	if tbl.BodyLen() != 1 {
		t.Fatalf("body rows = %d, want 1", tbl.BodyLen())
	}
	if tbl.Width() != 2 {
		t.Fatalf("width = %d, want 2", tbl.Width())
	}
}

func TestCompleteRepairsRaggedRows(t *testing.T) {
	raw := ReadTable([]string{
		"| a | b | c |",
		"|---|",
		"| 1 |",
	})
	res := Complete(raw)
	if res.DelimiterInserted {
		t.Fatalf("DelimiterInserted = true, want false")
	}
	tbl := res.Table
	if tbl.Width() != 3 {
		t.Fatalf("width = %d, want 3", tbl.Width())
	}
	for _, r := range tbl.Body() {
		if r.Len() != 3 {
			t.Fatalf("body row cells = %d, want 3", r.Len())
		}
	}
	aligns := tbl.Alignments()
	if len(aligns) != 3 || aligns[1] != AlignNone || aligns[2] != AlignNone {
		t.Fatalf("alignments = %v, want padding with AlignNone", aligns)
	}
}

func TestCompleteWidthFromAlignments(t *testing.T) {
	raw := ReadTable([]string{"| a |", "|---|---|---|"})
	tbl := Complete(raw).Table
	if tbl.Width() != 3 {
		t.Fatalf("width = %d, want 3", tbl.Width())
	}
}

func TestCompleteIdempotent(t *testing.T) {
	raw := ReadTable([]string{"| a | b |", "| 1 | 2 |"})
	first := Complete(raw)
	lines := first.Table.Lines()
	second := Complete(ReadTable(lines))
	if second.DelimiterInserted {
		t.Fatalf("second complete inserted a delimiter")
	}
	if got := second.Table.Lines(); !reflect.DeepEqual(got, lines) {
		t.Fatalf("second complete changed table: %q -> %q", lines, got)
	}
}

func TestFormatDefaults(t *testing.T) {
	raw := ReadTable([]string{"| a | b |", "| 1 | 2 |"})
	res := Format(Complete(raw).Table, DefaultOptions())
	want := []string{
		"| a   | b   |",
		"| --- | --- |",
		"| 1   | 2   |",
	}
	if got := res.Table.Lines(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Lines = %q, want %q", got, want)
	}
	if res.MarginLeft != "" {
		t.Fatalf("MarginLeft = %q, want empty", res.MarginLeft)
	}
}

func TestFormatIdempotent(t *testing.T) {
	raw := ReadTable([]string{
		"| name | n |",
		"|:--|--:|",
		"| foo | 10 |",
		"| barbaz | 2 |",
	})
	opts := DefaultOptions()
	once := Format(Complete(raw).Table, opts)
	twice := Format(once.Table, opts)
	if !reflect.DeepEqual(once.Table.Lines(), twice.Table.Lines()) {
		t.Fatalf("format not idempotent: %q -> %q", once.Table.Lines(), twice.Table.Lines())
	}
}

func TestFormatAlignments(t *testing.T) {
	raw := ReadTable([]string{
		"| head | head | head | head |",
		"|:--|--:|:-:|---|",
		"| a | b | c | d |",
	})
	res := Format(Complete(raw).Table, DefaultOptions())
	want := []string{
		"| head | head | head | head |",
		"| :--- | ---: | :--: | ---- |",
		"| a    |    b |  c   | d    |",
	}
	if got := res.Table.Lines(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Lines = %q, want %q", got, want)
	}
}

func TestFormatWideCharacters(t *testing.T) {
	raw := ReadTable([]string{
		"| lang | word |",
		"|---|---|",
		"| jp | 日本語 |",
	})
	res := Format(Complete(raw).Table, DefaultOptions())
	want := []string{
		"| lang | word   |",
		"| ---- | ------ |",
		"| jp   | 日本語 |",
	}
	if got := res.Table.Lines(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Lines = %q, want %q", got, want)
	}
}

func TestFormatMargin(t *testing.T) {
	raw := ReadTable([]string{"| a |", "|---|"})
	opts := DefaultOptions()
	opts.Margin = "  "
	res := Format(Complete(raw).Table, opts)
	want := []string{
		"  | a   |",
		"  | --- |",
	}
	if got := res.Table.Lines(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Lines = %q, want %q", got, want)
	}
	if res.MarginLeft != "  " {
		t.Fatalf("MarginLeft = %q, want two spaces", res.MarginLeft)
	}
}

func TestFormatMinDelimiterWidth(t *testing.T) {
	raw := ReadTable([]string{"| a |", "|---|"})
	opts := DefaultOptions()
	opts.MinDelimiterWidth = 5
	res := Format(Complete(raw).Table, opts)
	want := []string{
		"| a     |",
		"| ----- |",
	}
	if got := res.Table.Lines(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Lines = %q, want %q", got, want)
	}
}

func TestFormatWidthInvariant(t *testing.T) {
	raw := ReadTable([]string{"| a | b | c |", "| 1 |"})
	tbl := Complete(raw).Table
	formatted := Format(tbl, DefaultOptions()).Table
	if formatted.Width() != tbl.Width() {
		t.Fatalf("format changed width: %d -> %d", tbl.Width(), formatted.Width())
	}
	if h, ok := formatted.Header(); !ok || h.Len() != formatted.Width() {
		t.Fatalf("header cells = %d, want %d", h.Len(), formatted.Width())
	}
}

func TestRoundTripRenderParse(t *testing.T) {
	raw := ReadTable([]string{
		"| x | y |",
		"|--:|:-:|",
		"| 10 | 2 |",
		"| 3 | 456 |",
	})
	tbl := Complete(raw).Table
	again := Complete(ReadTable(Format(tbl, DefaultOptions()).Table.Lines())).Table

	if !reflect.DeepEqual(again.Alignments(), tbl.Alignments()) {
		t.Fatalf("alignments changed: %v -> %v", tbl.Alignments(), again.Alignments())
	}
	h1, _ := tbl.Header()
	h2, _ := again.Header()
	for i := 0; i < tbl.Width(); i++ {
		if h1.Cell(i).Content() != h2.Cell(i).Content() {
			t.Fatalf("header cell %d changed: %q -> %q", i, h1.Cell(i).Content(), h2.Cell(i).Content())
		}
	}
	b1, b2 := tbl.Body(), again.Body()
	if len(b1) != len(b2) {
		t.Fatalf("body rows changed: %d -> %d", len(b1), len(b2))
	}
	for r := range b1 {
		for c := 0; c < tbl.Width(); c++ {
			if b1[r].Cell(c).Content() != b2[r].Cell(c).Content() {
				t.Fatalf("cell %d,%d changed: %q -> %q", r, c, b1[r].Cell(c).Content(), b2[r].Cell(c).Content())
			}
		}
	}
}

func TestAlterAlignment(t *testing.T) {
	raw := ReadTable([]string{"| a | b |", "| 1 | 2 |"})
	tbl := Complete(raw).Table
	altered, err := AlterAlignment(tbl, 0, AlignRight)
	if err != nil {
		t.Fatalf("AlterAlignment error: %v", err)
	}
	want := []string{
		"|   a | b   |",
		"| --: | --- |",
		"|   1 | 2   |",
	}
	if got := Format(altered, DefaultOptions()).Table.Lines(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Lines = %q, want %q", got, want)
	}
	if _, err := AlterAlignment(tbl, 2, AlignLeft); err == nil {
		t.Fatalf("out of range column: error = nil")
	}
	if _, err := AlterAlignment(tbl, -1, AlignLeft); err == nil {
		t.Fatalf("negative column: error = nil")
	}
}

func TestTranslateFocusStableOffsets(t *testing.T) {
	raw := ReadTable([]string{"| abc | d |", "| 1 | 22 |"})
	completed := Complete(raw).Table
	res := Format(completed, DefaultOptions())

	// Cursor on "b" in the unformatted source: cell 0, raw offset 2.
	focus := NewFocus(0, 0, 2)
	oldCell, _ := completed.FocusedCell(focus)
	moved := TranslateFocus(completed, res.Table, focus, res.MarginLeft)
	newCell, _ := res.Table.FocusedCell(moved)
	if oldCell.ComputeContentOffset(focus.Offset) != newCell.ComputeContentOffset(moved.Offset) {
		t.Fatalf("content offset drifted: %d -> %d",
			oldCell.ComputeContentOffset(focus.Offset), newCell.ComputeContentOffset(moved.Offset))
	}

	// Formatting an already formatted table must not move anything.
	again := Format(res.Table, DefaultOptions())
	same := TranslateFocus(res.Table, again.Table, moved, again.MarginLeft)
	if same != moved {
		t.Fatalf("reformat moved focus: %+v -> %+v", moved, same)
	}
}

func TestTranslateFocusMarginFallback(t *testing.T) {
	raw := ReadTable([]string{"| a |", "|---|"})
	completed := Complete(raw).Table
	opts := DefaultOptions()
	opts.Margin = "    "
	res := Format(completed, opts)

	got := TranslateFocus(completed, res.Table, NewFocus(0, -1, 0), res.MarginLeft)
	if got.Offset != 4 {
		t.Fatalf("margin fallback offset = %d, want 4", got.Offset)
	}
	got = TranslateFocus(completed, res.Table, NewFocus(0, 9, 3), res.MarginLeft)
	if got.Offset != 0 {
		t.Fatalf("right margin fallback offset = %d, want 0", got.Offset)
	}
}

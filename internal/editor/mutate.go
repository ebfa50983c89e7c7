package editor

import "github.com/kobzarvs/tedit/internal/table"

// Structural table edits used by the row and column commands. All of them
// return a fresh normalized table; the input is never mutated.

func emptyRow(width int) table.Row {
	cells := make([]table.Cell, width)
	for i := range cells {
		cells[i] = table.NewCell("")
	}
	return table.NewRow(cells, "")
}

func headerPtr(t table.Table) *table.Row {
	if h, ok := t.Header(); ok {
		return &h
	}
	return nil
}

func appendBodyRow(t table.Table) table.Table {
	return insertBodyRowAt(t, t.BodyLen())
}

func insertBodyRowAt(t table.Table, idx int) table.Table {
	body := t.Body()
	body = append(body, table.Row{})
	copy(body[idx+1:], body[idx:])
	body[idx] = emptyRow(t.Width())
	return table.NewTable(headerPtr(t), body, t.Alignments())
}

func deleteBodyRowAt(t table.Table, idx int) table.Table {
	body := t.Body()
	body = append(body[:idx], body[idx+1:]...)
	return table.NewTable(headerPtr(t), body, t.Alignments())
}

func replaceBodyRow(t table.Table, idx int, row table.Row) table.Table {
	body := t.Body()
	body[idx] = row
	return table.NewTable(headerPtr(t), body, t.Alignments())
}

func moveBodyRow(t table.Table, from, to int) table.Table {
	body := t.Body()
	row := body[from]
	body = append(body[:from], body[from+1:]...)
	body = append(body, table.Row{})
	copy(body[to+1:], body[to:])
	body[to] = row
	return table.NewTable(headerPtr(t), body, t.Alignments())
}

// insertCellAt returns a copy of r with an empty cell inserted at idx.
func insertCellAt(r table.Row, idx int) table.Row {
	cells := make([]table.Cell, 0, r.Len()+1)
	cells = append(cells, r.Cells()[:idx]...)
	cells = append(cells, table.NewCell(""))
	cells = append(cells, r.Cells()[idx:]...)
	return table.NewRow(cells, r.MarginLeft())
}

func deleteCellAt(r table.Row, idx int) table.Row {
	cells := make([]table.Cell, 0, r.Len()-1)
	cells = append(cells, r.Cells()[:idx]...)
	cells = append(cells, r.Cells()[idx+1:]...)
	return table.NewRow(cells, r.MarginLeft())
}

func moveCell(r table.Row, from, to int) table.Row {
	cells := make([]table.Cell, r.Len())
	copy(cells, r.Cells())
	c := cells[from]
	cells = append(cells[:from], cells[from+1:]...)
	cells = append(cells, table.Cell{})
	copy(cells[to+1:], cells[to:])
	cells[to] = c
	return table.NewRow(cells, r.MarginLeft())
}

// mapRows applies fn to the header and every body row.
func mapRows(t table.Table, aligns []table.Alignment, fn func(table.Row) table.Row) table.Table {
	var header *table.Row
	if h, ok := t.Header(); ok {
		mapped := fn(h)
		header = &mapped
	}
	body := t.Body()
	for i, r := range body {
		body[i] = fn(r)
	}
	return table.NewTable(header, body, aligns)
}

func insertColumnAt(t table.Table, idx int) table.Table {
	aligns := t.Alignments()
	aligns = append(aligns, table.AlignNone)
	copy(aligns[idx+1:], aligns[idx:])
	aligns[idx] = table.AlignNone
	return mapRows(t, aligns, func(r table.Row) table.Row {
		return insertCellAt(r, idx)
	})
}

func deleteColumnAt(t table.Table, idx int) table.Table {
	aligns := t.Alignments()
	aligns = append(aligns[:idx], aligns[idx+1:]...)
	return mapRows(t, aligns, func(r table.Row) table.Row {
		return deleteCellAt(r, idx)
	})
}

func clearColumn(t table.Table, idx int) table.Table {
	return mapRows(t, t.Alignments(), func(r table.Row) table.Row {
		cells := make([]table.Cell, r.Len())
		copy(cells, r.Cells())
		cells[idx] = table.NewCell("")
		return table.NewRow(cells, r.MarginLeft())
	})
}

func moveColumnTo(t table.Table, from, to int) table.Table {
	aligns := t.Alignments()
	a := aligns[from]
	aligns = append(aligns[:from], aligns[from+1:]...)
	aligns = append(aligns, table.AlignNone)
	copy(aligns[to+1:], aligns[to:])
	aligns[to] = a
	return mapRows(t, aligns, func(r table.Row) table.Row {
		return moveCell(r, from, to)
	})
}

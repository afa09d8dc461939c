// Package qcflag splits leading quality-flag sigils off data cells.
//
// Flags are kept in a separate numeric table that is row-aligned with
// the data matrix. The table can be merged back into the matrix under
// suffixed column names.
package qcflag

import (
	"math"
	"regexp"

	"github.com/gnames/pandata/pkg/frame"
	"github.com/gnames/pandata/pkg/model"
)

// Quality codes stored in the QC table.
const (
	CodeOK           = 0
	CodeQuestionable = 1
	CodeNotValid     = 2
	CodeUnknown      = 3
)

// IDOffset is added to a parameter ID to get the ID of its QC column.
const IDOffset = 1_000_000_000

var (
	flagRe  = regexp.MustCompile(`^([\*/\?])?(.+)`)
	sigilRe = regexp.MustCompile(`^[\?/\*#<>]`)
)

var codes = map[string]int{
	"?": CodeQuestionable,
	"/": CodeNotValid,
	"*": CodeUnknown,
}

// Code returns the quality code of a raw cell. The second value is
// false when the cell carries no recognized flag.
func Code(cell string) (int, bool) {
	m := flagRe.FindStringSubmatch(cell)
	if m == nil || m[1] == "" {
		return 0, false
	}
	return codes[m[1]], true
}

// Strip removes one leading sigil: a quality flag, '#' or a comparison
// marker.
func Strip(cell string) string {
	return sigilRe.ReplaceAllLiteralString(cell, "")
}

// Table holds quality codes of numeric and date-time columns. Only rows
// with at least one flag are kept. Rows maps table rows to data rows.
type Table struct {
	Rows  []int
	Frame *frame.Frame
	pos   map[int]int
}

// Derive builds the QC table from raw text cells of data. Columns are
// considered when their parameter type is numeric or datetime. Within
// a kept row, cells without a flag get CodeOK.
func Derive(data *frame.Frame, params *model.Params) *Table {
	var cols []*frame.Column
	for _, c := range data.Columns() {
		par, ok := params.Get(c.Name)
		if !ok || !par.Type.IsQualified() || c.Kind != frame.KindText {
			continue
		}
		cols = append(cols, c)
	}

	var rows []int
	flagged := make([][]float64, len(cols))
	for i := range data.Rows() {
		row := make([]float64, len(cols))
		var hasFlag bool
		for j, c := range cols {
			if code, ok := Code(c.Text[i]); ok {
				row[j] = float64(code)
				hasFlag = true
			}
		}
		if !hasFlag {
			continue
		}
		rows = append(rows, i)
		for j := range cols {
			flagged[j] = append(flagged[j], row[j])
		}
	}

	res := &Table{Rows: rows, Frame: frame.New(len(rows))}
	for j, c := range cols {
		vals := flagged[j]
		if vals == nil {
			vals = []float64{}
		}
		_ = res.Frame.Add(frame.NewNumber(c.Name, vals))
	}
	res.index()
	return res
}

// Empty is true when no data cell carries a flag.
func (t *Table) Empty() bool {
	return t == nil || len(t.Rows) == 0
}

// Lookup returns the code of a data cell. Cells of rows without flags
// are CodeOK. The second value is false for unknown columns.
func (t *Table) Lookup(row int, col string) (float64, bool) {
	if t == nil {
		return 0, false
	}
	c, ok := t.Frame.Column(col)
	if !ok {
		return 0, false
	}
	i, ok := t.pos[row]
	if !ok {
		return CodeOK, true
	}
	return c.Num[i], true
}

// Rename renames a QC column.
func (t *Table) Rename(oldName, newName string) bool {
	if t == nil {
		return false
	}
	return t.Frame.Rename(oldName, newName)
}

// Drop removes a QC column.
func (t *Table) Drop(name string) bool {
	if t == nil {
		return false
	}
	return t.Frame.Drop(name)
}

func (t *Table) index() {
	t.pos = make(map[int]int, len(t.Rows))
	for i, r := range t.Rows {
		t.pos[r] = i
	}
}

// column expands a QC column to the full height of the data matrix.
func (t *Table) column(name, newName string, rows int) *frame.Column {
	vals := make([]float64, rows)
	for i := range vals {
		code, ok := t.Lookup(i, name)
		if !ok {
			code = math.NaN()
		}
		vals[i] = code
	}
	return frame.NewNumber(newName, vals)
}

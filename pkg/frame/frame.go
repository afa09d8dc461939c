// Package frame provides a small column-oriented table of typed cells.
// It keeps column order stable and is owned by one goroutine at a time.
package frame

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/gnames/pandata/pkg/tsv"
)

// ErrRowCount is returned when a column does not fit the frame height.
var ErrRowCount = errors.New("wrong number of rows")

// Frame is an ordered set of equally long columns.
type Frame struct {
	rows  int
	cols  []*Column
	index map[string]int
}

// New creates an empty frame of the given height.
func New(rows int) *Frame {
	return &Frame{rows: rows, index: make(map[string]int)}
}

// FromRecords builds a frame of text columns. Every record must have
// len(names) fields.
func FromRecords(names []string, records [][]string) (*Frame, error) {
	res := New(len(records))
	for j, name := range names {
		vals := make([]string, len(records))
		for i, rec := range records {
			if len(rec) != len(names) {
				return nil, fmt.Errorf("%w: record %d has %d fields, want %d",
					ErrRowCount, i, len(rec), len(names))
			}
			vals[i] = rec[j]
		}
		if err := res.Add(NewText(name, vals)); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Rows returns the number of rows.
func (f *Frame) Rows() int {
	return f.rows
}

// Width returns the number of columns.
func (f *Frame) Width() int {
	return len(f.cols)
}

// Empty is true for frames without rows or columns.
func (f *Frame) Empty() bool {
	return f.rows == 0 || len(f.cols) == 0
}

// Names returns column names in order.
func (f *Frame) Names() []string {
	res := make([]string, len(f.cols))
	for i, c := range f.cols {
		res[i] = c.Name
	}
	return res
}

// Has is true if the column exists.
func (f *Frame) Has(name string) bool {
	_, ok := f.index[name]
	return ok
}

// Column returns a column by name.
func (f *Frame) Column(name string) (*Column, bool) {
	i, ok := f.index[name]
	if !ok {
		return nil, false
	}
	return f.cols[i], true
}

// Columns returns columns in order. The slice is a copy, the columns are
// not.
func (f *Frame) Columns() []*Column {
	return slices.Clone(f.cols)
}

// Add appends a column or replaces a column of the same name in place.
func (f *Frame) Add(c *Column) error {
	if c.Len() != f.rows {
		return fmt.Errorf("%w: column %q has %d rows, want %d",
			ErrRowCount, c.Name, c.Len(), f.rows)
	}
	if i, ok := f.index[c.Name]; ok {
		f.cols[i] = c
		return nil
	}
	f.index[c.Name] = len(f.cols)
	f.cols = append(f.cols, c)
	return nil
}

// Drop removes a column. It returns false if there was no such column.
func (f *Frame) Drop(name string) bool {
	i, ok := f.index[name]
	if !ok {
		return false
	}
	f.cols = slices.Delete(f.cols, i, i+1)
	f.reindex()
	return true
}

// Rename changes a column name keeping its position. It returns false if
// the old name is absent or the new name is taken.
func (f *Frame) Rename(oldName, newName string) bool {
	i, ok := f.index[oldName]
	if !ok || f.Has(newName) {
		return false
	}
	f.cols[i].Name = newName
	delete(f.index, oldName)
	f.index[newName] = i
	return true
}

// DropEmpty removes columns without values and returns their names.
func (f *Frame) DropEmpty() []string {
	var res []string
	for _, c := range f.Columns() {
		if c.AllMissing() {
			f.Drop(c.Name)
			res = append(res, c.Name)
		}
	}
	return res
}

// Record returns rendered cells of row i.
func (f *Frame) Record(i int) []string {
	res := make([]string, len(f.cols))
	for j, c := range f.cols {
		res[j] = c.String(i)
	}
	return res
}

// WriteTSV writes a header and at most limit rows, all rows when limit
// is negative.
func (f *Frame) WriteTSV(w io.Writer, limit int) error {
	tw := tsv.NewWriter(w)
	if err := tw.Write(f.Names()); err != nil {
		return err
	}
	n := f.rows
	if limit >= 0 && limit < n {
		n = limit
	}
	for i := range n {
		if err := tw.Write(f.Record(i)); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func (f *Frame) reindex() {
	clear(f.index)
	for i, c := range f.cols {
		f.index[c.Name] = i
	}
}

// Distinct counts unique combinations of values in the named columns.
// Rows with a missing value in any of the columns are not counted.
// Unknown names make the count 0.
func (f *Frame) Distinct(names ...string) int {
	cols := make([]*Column, 0, len(names))
	for _, n := range names {
		c, ok := f.Column(n)
		if !ok {
			return 0
		}
		cols = append(cols, c)
	}

	seen := make(map[string]struct{})
	key := make([]byte, 0, 64)
	for i := range f.rows {
		key = key[:0]
		missing := false
		for _, c := range cols {
			if c.IsMissing(i) {
				missing = true
				break
			}
			key = append(key, c.String(i)...)
			key = append(key, 0)
		}
		if !missing {
			seen[string(key)] = struct{}{}
		}
	}
	return len(seen)
}

package frame

import (
	"math"
	"strconv"
	"time"
)

// Kind is the storage type of a column.
type Kind int

const (
	KindText Kind = iota
	KindNumber
	KindTime
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindTime:
		return "time"
	default:
		return "text"
	}
}

// TimeLayout is used to render time cells.
const TimeLayout = "2006-01-02T15:04:05"

// Column is a named vector of cells. Only the slice matching Kind is
// used. Missing cells are "" for text, NaN for numbers and the zero
// time for time columns.
type Column struct {
	Name string
	Kind Kind
	Text []string
	Num  []float64
	Time []time.Time
}

// NewText creates a text column.
func NewText(name string, vals []string) *Column {
	return &Column{Name: name, Kind: KindText, Text: vals}
}

// NewNumber creates a numeric column.
func NewNumber(name string, vals []float64) *Column {
	return &Column{Name: name, Kind: KindNumber, Num: vals}
}

// NewTime creates a date-time column.
func NewTime(name string, vals []time.Time) *Column {
	return &Column{Name: name, Kind: KindTime, Time: vals}
}

// Repeat creates a text column with n copies of s.
func Repeat(name, s string, n int) *Column {
	vals := make([]string, n)
	for i := range vals {
		vals[i] = s
	}
	return NewText(name, vals)
}

// Len returns the number of cells.
func (c *Column) Len() int {
	switch c.Kind {
	case KindNumber:
		return len(c.Num)
	case KindTime:
		return len(c.Time)
	default:
		return len(c.Text)
	}
}

// IsMissing is true if the cell i has no value.
func (c *Column) IsMissing(i int) bool {
	switch c.Kind {
	case KindNumber:
		return math.IsNaN(c.Num[i])
	case KindTime:
		return c.Time[i].IsZero()
	default:
		return c.Text[i] == ""
	}
}

// AllMissing is true if no cell has a value.
func (c *Column) AllMissing() bool {
	for i := range c.Len() {
		if !c.IsMissing(i) {
			return false
		}
	}
	return true
}

// String renders the cell i, missing cells become "".
func (c *Column) String(i int) string {
	if c.IsMissing(i) {
		return ""
	}
	switch c.Kind {
	case KindNumber:
		return strconv.FormatFloat(c.Num[i], 'f', -1, 64)
	case KindTime:
		return c.Time[i].Format(TimeLayout)
	default:
		return c.Text[i]
	}
}

// Value returns the cell i as string, float64 or time.Time, nil when
// missing.
func (c *Column) Value(i int) any {
	if c.IsMissing(i) {
		return nil
	}
	switch c.Kind {
	case KindNumber:
		return c.Num[i]
	case KindTime:
		return c.Time[i]
	default:
		return c.Text[i]
	}
}

// Clone returns a deep copy of the column under a new name.
func (c *Column) Clone(name string) *Column {
	res := &Column{Name: name, Kind: c.Kind}
	switch c.Kind {
	case KindNumber:
		res.Num = append([]float64(nil), c.Num...)
	case KindTime:
		res.Time = append([]time.Time(nil), c.Time...)
	default:
		res.Text = append([]string(nil), c.Text...)
	}
	return res
}

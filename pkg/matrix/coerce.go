package matrix

import (
	"log/slog"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gnames/pandata/pkg/frame"
	"github.com/gnames/pandata/pkg/model"
)

var yearRe = regexp.MustCompile(`^.*([0-9]{4}){1}.*$`)

// timeLayouts are ISO 8601 forms found in data matrices.
var timeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15",
	"2006-01",
	"2006",
}

// coerce converts columns to numbers or date-times. Text and string
// columns stay as they are, and so do numeric columns with cells that
// are not numbers.
func (l *Loader) coerce(data *frame.Frame) error {
	for _, c := range data.Columns() {
		if c.Kind != frame.KindText {
			continue
		}
		par, _ := l.params.Get(c.Name)
		var typ model.ParamType
		if par != nil {
			typ = par.Type
		}

		var col *frame.Column
		switch {
		case c.Name == KeyDateTime || typ == model.TypeDateTime:
			col = l.toTime(c)
		case typ == model.TypeString:
			continue
		default:
			col = toNumber(c)
		}
		if col == nil {
			continue
		}
		if err := data.Add(col); err != nil {
			return DataReadError(0, err)
		}
	}
	return nil
}

// toNumber returns nil if any non-empty cell is not a number.
func toNumber(c *frame.Column) *frame.Column {
	vals := make([]float64, len(c.Text))
	for i, v := range c.Text {
		v = strings.TrimSpace(v)
		if v == "" {
			vals[i] = math.NaN()
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil
		}
		vals[i] = f
	}
	return frame.NewNumber(c.Name, vals)
}

// toTime parses ISO 8601 cells. Cells that fail fall back to the last
// four-digit year they contain, and become missing without one.
func (l *Loader) toTime(c *frame.Column) *frame.Column {
	vals := make([]time.Time, len(c.Text))
	var fallback, lost int
	var sample string
	for i, v := range c.Text {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if t, ok := parseTime(v); ok {
			vals[i] = t
			continue
		}
		if sample == "" {
			sample = v
		}
		fallback++
		if t, ok := parseYear(v); ok {
			vals[i] = t
		} else {
			lost++
		}
	}

	if fallback > 0 {
		l.note(model.NewDiagnostic(slog.LevelWarn, model.CatDateTime,
			"%s: %d cells are not ISO 8601 (e.g. %q), kept year only, %d lost",
			c.Name, fallback, sample, lost))
	}
	return frame.NewTime(c.Name, vals)
}

func parseTime(s string) (time.Time, bool) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func parseYear(s string) (time.Time, bool) {
	m := yearRe.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}
	t, err := time.Parse("2006", m[1])
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

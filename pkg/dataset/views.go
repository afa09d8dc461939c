package dataset

import (
	"math"
	"strconv"

	"github.com/gnames/pandata/pkg/frame"
	"github.com/gnames/pandata/pkg/model"
	"github.com/gnames/pandata/pkg/qcflag"
)

// AddQCParamsAndColumns joins quality codes to Data as "<key><suffix>"
// columns with generated qc or gqc parameters. It fails without changes
// if a target column exists, so calling it twice with the same suffix
// is an error.
func (d *Dataset) AddQCParamsAndColumns(suffix string, exclude ...string) ([]string, error) {
	return qcflag.Merge(d.Data, d.Params, d.QC, suffix, exclude)
}

// RenameColumn renames a parameter together with its data and QC
// columns. Name and ShortName of the parameter become the new name.
func (d *Dataset) RenameColumn(oldName, newName string) bool {
	par, ok := d.Params.Get(oldName)
	if !ok || !d.Params.Rename(oldName, newName) {
		return false
	}
	par.Name = newName
	par.ShortName = newName
	d.Data.Rename(oldName, newName)
	d.QC.Rename(oldName, newName)
	return true
}

// ParamDict returns a table of parameters with shortName, name, unit,
// type and format columns. The shortName column holds index keys.
func (d *Dataset) ParamDict() *frame.Frame {
	n := d.Params.Len()
	short := make([]string, 0, n)
	name := make([]string, 0, n)
	unit := make([]string, 0, n)
	typ := make([]string, 0, n)
	format := make([]string, 0, n)
	d.Params.Each(func(k string, p *model.Parameter) bool {
		short = append(short, k)
		name = append(name, p.Name)
		unit = append(unit, p.Unit)
		typ = append(typ, p.Type.String())
		format = append(format, p.Format)
		return true
	})

	res := frame.New(n)
	_ = res.Add(frame.NewText("shortName", short))
	_ = res.Add(frame.NewText("name", name))
	_ = res.Add(frame.NewText("unit", unit))
	_ = res.Add(frame.NewText("type", typ))
	_ = res.Add(frame.NewText("format", format))
	return res
}

// EventsTable returns one row per event. Campaign and basis are
// represented by their names only.
func (d *Dataset) EventsTable() *frame.Frame {
	n := len(d.Events)
	text := func(name string, fn func(model.Event) string) *frame.Column {
		vals := make([]string, n)
		for i, ev := range d.Events {
			vals[i] = fn(ev)
		}
		return frame.NewText(name, vals)
	}
	num := func(name string, fn func(model.Event) *float64) *frame.Column {
		vals := make([]float64, n)
		for i, ev := range d.Events {
			vals[i] = math.NaN()
			if f := fn(ev); f != nil {
				vals[i] = *f
			}
		}
		return frame.NewNumber(name, vals)
	}

	cols := []*frame.Column{
		text("label", func(e model.Event) string { return e.Label }),
		text("id", func(e model.Event) string {
			if e.ID == nil {
				return ""
			}
			return strconv.Itoa(*e.ID)
		}),
		num("latitude", func(e model.Event) *float64 { return e.Latitude }),
		num("longitude", func(e model.Event) *float64 { return e.Longitude }),
		num("latitude2", func(e model.Event) *float64 { return e.Latitude2 }),
		num("longitude2", func(e model.Event) *float64 { return e.Longitude2 }),
		num("elevation", func(e model.Event) *float64 { return e.Elevation }),
		text("datetime", func(e model.Event) string { return e.DateTime }),
		text("datetime2", func(e model.Event) string { return e.DateTime2 }),
		text("location", func(e model.Event) string { return e.Location }),
		text("basis", func(e model.Event) string {
			if e.Basis == nil {
				return ""
			}
			return e.Basis.Name
		}),
		text("campaign", func(e model.Event) string {
			if e.Campaign == nil {
				return ""
			}
			return e.Campaign.Name
		}),
		text("device", model.Event.Device),
	}

	res := frame.New(n)
	for _, c := range cols {
		_ = res.Add(c)
	}
	return res
}

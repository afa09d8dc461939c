package matrix

import (
	"strconv"

	"github.com/gnames/pandata/pkg/frame"
	"github.com/gnames/pandata/pkg/model"
)

// geoFill describes a geocode column that can be taken from events.
type geoFill struct {
	key  string
	par  model.Parameter
	from func(model.Event) (string, bool)
}

var geoFills = []geoFill{
	{
		key: KeyLatitude,
		par: model.Parameter{
			ID: model.Ptr(1600), Name: KeyLatitude, ShortName: KeyLatitude,
			Type: model.TypeNumeric, Source: model.SourceEvent, Unit: "deg",
		},
		from: func(e model.Event) (string, bool) { return floatCell(e.Latitude) },
	},
	{
		key: KeyLongitude,
		par: model.Parameter{
			ID: model.Ptr(1601), Name: KeyLongitude, ShortName: KeyLongitude,
			Type: model.TypeNumeric, Source: model.SourceEvent, Unit: "deg",
		},
		from: func(e model.Event) (string, bool) { return floatCell(e.Longitude) },
	},
	{
		key: KeyElevation,
		par: model.Parameter{
			ID: model.Ptr(8128), Name: KeyElevation, ShortName: KeyElevation,
			Type: model.TypeNumeric, Source: model.SourceEvent, Unit: "m",
		},
		from: func(e model.Event) (string, bool) { return floatCell(e.Elevation) },
	},
	{
		key: KeyDateTime,
		par: model.Parameter{
			ID: model.Ptr(1599), Name: KeyDateTime, ShortName: KeyDateTime,
			Type: model.TypeDateTime, Source: model.SourceEvent,
		},
		from: func(e model.Event) (string, bool) { return e.DateTime, e.DateTime != "" },
	},
}

// backfill creates the Event column for single-event datasets and then
// geocode columns that are absent from the matrix. Cells are taken
// from the event named in the row.
func (l *Loader) backfill(data *frame.Frame) error {
	if len(l.events) == 0 {
		return nil
	}

	if len(l.events) == 1 && !data.Has(KeyEvent) {
		col := frame.Repeat(KeyEvent, l.events[0].Label, data.Rows())
		if err := data.Add(col); err != nil {
			return DataReadError(0, err)
		}
		l.params.Set(KeyEvent, &model.Parameter{
			ID:        model.Ptr(0),
			Name:      KeyEvent,
			ShortName: KeyEvent,
			Type:      model.TypeString,
			Source:    model.SourceData,
		})
	}

	evCol, ok := data.Column(KeyEvent)
	if !ok {
		return nil
	}

	for _, gf := range geoFills {
		if data.Has(gf.key) {
			continue
		}
		col := frame.Repeat(gf.key, "", data.Rows())
		for _, ev := range l.events {
			val, ok := gf.from(ev)
			if !ok {
				continue
			}
			for i, label := range evCol.Text {
				if label == ev.Label && col.Text[i] == "" {
					col.Text[i] = val
				}
			}
		}
		if err := data.Add(col); err != nil {
			return DataReadError(0, err)
		}
		par := gf.par
		l.params.Set(gf.key, &par)
	}
	return nil
}

func floatCell(f *float64) (string, bool) {
	if f == nil {
		return "", false
	}
	return strconv.FormatFloat(*f, 'f', -1, 64), true
}

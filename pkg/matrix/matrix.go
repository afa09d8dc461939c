// Package matrix loads the tab-separated data matrix of a dataset and
// reconciles it with the parameters and events from metadata.
//
// Loading runs in fixed stages: read, event backfill, flag deletion,
// pruning, QC derivation, sigil stripping, pruning, type coercion. The
// parameter mapping is mutated in place so that its keys always stay a
// superset of the matrix columns.
package matrix

import (
	"github.com/gnames/pandata/pkg/frame"
	"github.com/gnames/pandata/pkg/model"
	"github.com/gnames/pandata/pkg/qcflag"
)

// Keys of geocode columns that can be created from events.
const (
	KeyEvent     = "Event"
	KeyLatitude  = "Latitude"
	KeyLongitude = "Longitude"
	KeyElevation = "Elevation"
	KeyDateTime  = "Date/Time"
)

// DefaultParams are always loaded together with a column selection.
var DefaultParams = []string{
	KeyLatitude, KeyLongitude, KeyEvent, KeyElevation, KeyDateTime,
}

// DeleteFlags are sigils accepted for flag-prefixed deletion.
var DeleteFlags = []string{"?", "/", "*", "#", "<", ">"}

// Options modify loading.
type Options struct {
	// DeleteFlag empties every cell that starts with this sigil.
	DeleteFlag string

	// AddEventColumns creates missing geocode columns from events.
	AddEventColumns bool

	// ParamList restricts loading to these keys and DefaultParams.
	ParamList []string
}

// Result of loading.
type Result struct {
	// Data has one column per surviving parameter key.
	Data *frame.Frame

	// QC holds quality codes of flagged rows.
	QC *qcflag.Table

	// Diagnostics are recoverable conditions met during loading.
	Diagnostics []model.Diagnostic
}

// Loader converts a data payload into a Result.
type Loader struct {
	opts   Options
	params *model.Params
	events []model.Event
	res    *Result
}

// New creates a Loader for a dataset. The params are modified by Load.
func New(params *model.Params, events []model.Event, opts Options) *Loader {
	return &Loader{
		opts:   opts,
		params: params,
		events: events,
	}
}

// Load runs all stages on the payload. On error the returned Result
// holds whatever was built before the failure.
func (l *Loader) Load(payload []byte) (*Result, error) {
	l.res = &Result{Data: frame.New(0)}

	data, err := l.read(payload)
	if err != nil {
		return l.res, err
	}
	l.res.Data = data

	if l.opts.AddEventColumns {
		if err = l.backfill(data); err != nil {
			return l.res, err
		}
	}

	l.deleteFlagged(data)
	l.prune(data)
	l.res.QC = qcflag.Derive(data, l.params)
	l.stripSigils(data)
	for _, name := range l.prune(data) {
		l.res.QC.Drop(name)
	}

	if err = l.coerce(data); err != nil {
		return l.res, err
	}
	return l.res, nil
}

func (l *Loader) note(d model.Diagnostic) {
	l.res.Diagnostics = append(l.res.Diagnostics, d)
}

// Package dataset is the facade of a repository dataset. It fetches
// and parses metadata, loads the data matrix and exposes parameters,
// events, data and quality codes to exporters.
//
// A Dataset is not safe for concurrent use. Every load runs sequentially:
// metadata first, then data.
package dataset

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/gnames/pandata/pkg/config"
	"github.com/gnames/pandata/pkg/frame"
	"github.com/gnames/pandata/pkg/metadata"
	"github.com/gnames/pandata/pkg/model"
	"github.com/gnames/pandata/pkg/pandata"
	"github.com/gnames/pandata/pkg/qcflag"
)

// Dataset holds the state and results of a dataset load.
type Dataset struct {
	// ID is the numeric dataset identifier, 0 until Load parses it.
	ID int

	// Meta contains dataset-level scalars from metadata.
	Meta *metadata.Metadata

	// Params are keyed by unique index keys in column order. They are a
	// superset of Data columns.
	Params *model.Params

	Events []model.Event

	// Data is the data matrix. It is empty when data were not loaded.
	Data *frame.Frame

	// QC holds quality-flag codes aligned with Data rows.
	QC *qcflag.Table

	// CollectionMembers are URIs of member datasets of a collection.
	CollectionMembers []string

	// Citation is composed from authors, year, title and URI.
	Citation string

	cfg     config.Config
	fetcher pandata.Fetcher
	terms   pandata.TermResolver
	state   State
	diags   []model.Diagnostic
}

// New creates a Dataset in the uninitialized state. The terms resolver
// may be nil, then term classification is not expanded.
func New(
	cfg config.Config,
	fetcher pandata.Fetcher,
	terms pandata.TermResolver,
) *Dataset {
	return &Dataset{
		cfg:     cfg,
		fetcher: fetcher,
		terms:   terms,
		Params:  model.NewParams(),
		Data:    frame.New(0),
	}
}

// Load creates a Dataset and loads it. The returned Dataset is never
// nil. The error is not nil only for invalid identifiers and broken
// metadata documents, every other problem is a diagnostic.
func Load(
	ctx context.Context,
	cfg config.Config,
	fetcher pandata.Fetcher,
	terms pandata.TermResolver,
	id string,
) (*Dataset, error) {
	res := New(cfg, fetcher, terms)
	err := res.Load(ctx, id)
	return res, err
}

// State returns the current load state.
func (d *Dataset) State() State {
	return d.state
}

// Diagnostics returns recorded conditions in the order they happened.
func (d *Dataset) Diagnostics() []model.Diagnostic {
	return append([]model.Diagnostic(nil), d.diags...)
}

// HasDiagnostic is true if a diagnostic of the category was recorded.
func (d *Dataset) HasDiagnostic(cat model.Category) bool {
	for _, v := range d.diags {
		if v.Category == cat {
			return true
		}
	}
	return false
}

// Load fetches metadata and, when allowed, the data matrix.
func (d *Dataset) Load(ctx context.Context, id string) error {
	var err error
	d.ID, err = ParseID(id)
	if err != nil {
		d.record(ctx, model.NewDiagnostic(slog.LevelError, model.CatInvalidID,
			"invalid dataset identifier %q", id))
		d.state = StateInvalid
		return err
	}

	if err = d.loadMetadata(ctx); err != nil {
		return err
	}
	if d.state == StateInvalid {
		return nil
	}

	if d.Meta.IsCollection {
		d.record(ctx, model.NewDiagnostic(slog.LevelWarn, model.CatCollection,
			"dataset is a collection, select one of its members"))
		d.setCollectionMembers(ctx)
		d.state = StateRestrictedOrCollection
		return nil
	}

	if d.Meta.IsRestricted() {
		if d.cfg.Pangaea.AuthToken == "" {
			d.record(ctx, model.NewDiagnostic(slog.LevelWarn, model.CatRestricted,
				"dataset is protected (%s), an auth token is required",
				d.Meta.LoginOption))
			d.state = StateRestrictedOrCollection
			return nil
		}
		slog.InfoContext(ctx, "Loading protected dataset with the given auth token",
			"dataset", d.ID)
	}

	if !d.cfg.Dataset.IncludeData {
		return nil
	}
	d.loadData(ctx)
	return nil
}

func (d *Dataset) resourceURL() string {
	return d.cfg.Pangaea.BaseURL + strconv.Itoa(d.ID)
}

func (d *Dataset) request(url, accept string) pandata.Request {
	return pandata.Request{
		URL:       url,
		Accept:    accept,
		AuthToken: d.cfg.Pangaea.AuthToken,
	}
}

// record stores a diagnostic and writes it to the log.
func (d *Dataset) record(ctx context.Context, diag model.Diagnostic) {
	d.diags = append(d.diags, diag)
	slog.Log(ctx, diag.Severity, diag.Message,
		"dataset", d.ID,
		"category", string(diag.Category),
	)
}

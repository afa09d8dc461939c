package dataset

import (
	"context"
	"log/slog"
	"slices"

	"github.com/gnames/pandata/pkg/model"
)

// expandTerms resolves classification of terms that belong to the
// configured terminologies. Each term ID is resolved once per load.
func (d *Dataset) expandTerms(ctx context.Context) {
	if d.terms == nil || len(d.cfg.Dataset.ExpandTerms) == 0 {
		return
	}

	resolved := make(map[int][]string)
	failed := make(map[int]struct{})
	expand := func(ts []model.Term) {
		for i := range ts {
			t := &ts[i]
			if t.ID <= 0 || !slices.Contains(d.cfg.Dataset.ExpandTerms, t.OntologyID) {
				continue
			}
			if _, ok := failed[t.ID]; ok {
				continue
			}
			cls, ok := resolved[t.ID]
			if !ok {
				var err error
				cls, err = d.terms.Classification(ctx, t.ID)
				if err != nil {
					failed[t.ID] = struct{}{}
					d.record(ctx, model.NewDiagnostic(slog.LevelWarn, model.CatTerm,
						"failed to expand term %d: %v", t.ID, err))
					continue
				}
				resolved[t.ID] = cls
			}
			t.Classification = cls
		}
	}

	d.Params.Each(func(_ string, p *model.Parameter) bool {
		expand(p.Terms)
		if p.Method != nil {
			expand(p.Method.Terms)
		}
		return true
	})
	for i := range d.Events {
		if m := d.Events[i].Method; m != nil {
			expand(m.Terms)
		}
	}
}

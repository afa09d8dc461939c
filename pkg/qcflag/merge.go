package qcflag

import (
	"slices"

	"github.com/gnames/pandata/pkg/frame"
	"github.com/gnames/pandata/pkg/model"
)

// Merge joins QC columns onto data as "<key><suffix>" and registers a
// generated parameter for each of them. Only columns present in both
// tables and not in exclude are joined. If any target name exists
// already, Merge returns ColumnExistsError and changes nothing.
//
// The parameter type of a merged column is qc for data parameters and
// gqc for the rest.
func Merge(
	data *frame.Frame,
	params *model.Params,
	qc *Table,
	suffix string,
	exclude []string,
) ([]string, error) {
	if qc == nil {
		return nil, nil
	}

	var keys []string
	for _, name := range qc.Frame.Names() {
		if !data.Has(name) || slices.Contains(exclude, name) {
			continue
		}
		if _, ok := params.Get(name); !ok {
			continue
		}
		target := name + suffix
		if data.Has(target) || params.Has(target) {
			return nil, ColumnExistsError(target)
		}
		keys = append(keys, name)
	}

	res := make([]string, 0, len(keys))
	for _, name := range keys {
		target := name + suffix
		if err := data.Add(qc.column(name, target, data.Rows())); err != nil {
			return res, err
		}

		src, _ := params.Get(name)
		par := &model.Parameter{
			Name:      src.Name + suffix,
			ShortName: src.ShortName + suffix,
			Type:      model.TypeGQC,
			Source:    model.SourceGenerated,
		}
		if src.Source == model.SourceData {
			par.Type = model.TypeQC
		}
		if src.ID != nil {
			par.ID = model.Ptr(*src.ID + IDOffset)
		}
		params.Set(target, par)
		res = append(res, target)
	}
	return res, nil
}

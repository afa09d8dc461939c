package dataset

import (
	"github.com/gnames/pandata/pkg/metadata"
	"github.com/gnames/pandata/pkg/model"
)

// Summary is a serializable overview of a loaded dataset.
type Summary struct {
	ID                int                `json:"id" yaml:"id"`
	State             State              `json:"state" yaml:"state"`
	Title             string             `json:"title,omitempty" yaml:"title,omitempty"`
	Citation          string             `json:"citation,omitempty" yaml:"citation,omitempty"`
	URI               string             `json:"uri,omitempty" yaml:"uri,omitempty"`
	Status            string             `json:"status,omitempty" yaml:"status,omitempty"`
	LoginOption       string             `json:"loginOption,omitempty" yaml:"login_option,omitempty"`
	LastModified      string             `json:"lastModified,omitempty" yaml:"last_modified,omitempty"`
	TopoType          string             `json:"topoType,omitempty" yaml:"topo_type,omitempty"`
	Geometry          string             `json:"geometry,omitempty" yaml:"geometry,omitempty"`
	Extent            *metadata.Extent   `json:"extent,omitempty" yaml:"extent,omitempty"`
	Licence           *model.Licence     `json:"licence,omitempty" yaml:"licence,omitempty"`
	Keywords          []string           `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	Authors           []model.Author     `json:"authors,omitempty" yaml:"authors,omitempty"`
	Params            []string           `json:"params,omitempty" yaml:"params,omitempty"`
	Events            int                `json:"events" yaml:"events"`
	Rows              int                `json:"rows" yaml:"rows"`
	Columns           int                `json:"columns" yaml:"columns"`
	CollectionMembers []string           `json:"collectionMembers,omitempty" yaml:"collection_members,omitempty"`
	AllowArrayExport  bool               `json:"allowArrayExport" yaml:"allow_array_export"`
	Diagnostics       []model.Diagnostic `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}

// Summary returns an overview of the dataset.
func (d *Dataset) Summary() Summary {
	res := Summary{
		ID:                d.ID,
		State:             d.state,
		Citation:          d.Citation,
		Params:            d.Params.Keys(),
		Events:            len(d.Events),
		Rows:              d.Data.Rows(),
		Columns:           d.Data.Width(),
		CollectionMembers: d.CollectionMembers,
		Geometry:          d.Geometry(),
		Diagnostics:       d.Diagnostics(),
	}
	if md := d.Meta; md != nil {
		res.Title = md.Title
		res.URI = md.URI
		res.Status = md.Status
		res.LoginOption = md.LoginOption
		res.LastModified = md.LastModified
		res.TopoType = md.TopoType
		res.Licence = md.Licence
		res.Keywords = md.Keywords
		res.Authors = md.Authors
		res.AllowArrayExport = md.AllowArrayExport
		if md.IsValid() {
			res.Extent = &md.Extent
		}
	}
	return res
}

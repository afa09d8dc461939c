// Package metadata converts the repository's metadata XML into dataset
// scalars, an ordered parameter mapping and a list of events.
//
// Parsing is pure, no network is involved. Controlled-vocabulary terms
// are recorded as references and expanded later by the caller.
package metadata

import "github.com/gnames/pandata/pkg/model"

// Status values of a dataset.
const (
	StatusDeleted = "deleted"

	// LoginUnrestricted is the login option of public datasets.
	LoginUnrestricted = "unrestricted"
)

// EventKey is the short name of the inline event column.
const EventKey = "Event"

// GeoExtent is the bounding box of a dataset. Absent values are nil.
type GeoExtent struct {
	West    *float64 `json:"westBoundLongitude,omitempty" yaml:"west,omitempty"`
	East    *float64 `json:"eastBoundLongitude,omitempty" yaml:"east,omitempty"`
	South   *float64 `json:"southBoundLatitude,omitempty" yaml:"south,omitempty"`
	North   *float64 `json:"northBoundLatitude,omitempty" yaml:"north,omitempty"`
	MeanLon *float64 `json:"meanLongitude,omitempty" yaml:"mean_lon,omitempty"`
	MeanLat *float64 `json:"meanLatitude,omitempty" yaml:"mean_lat,omitempty"`
}

// Extent is the spatial and temporal coverage of a dataset.
type Extent struct {
	Geographic  GeoExtent `json:"geographic" yaml:"geographic"`
	MinDateTime string    `json:"minDateTime,omitempty" yaml:"min_date_time,omitempty"`
	MaxDateTime string    `json:"maxDateTime,omitempty" yaml:"max_date_time,omitempty"`
}

// Metadata is the result of parsing a metadata document.
type Metadata struct {
	// Status is the technical status, for example "published".
	// Empty if the document does not state it.
	Status string

	// LoginOption is "unrestricted" unless the dataset is protected.
	LoginOption string

	LastModified      string
	DOIRegistryStatus string
	MoratoriumUntil   string

	// CollectionType is set for aggregate datasets that do not hold
	// tabular data of their own.
	CollectionType string
	IsCollection   bool

	Title           string
	Abstract        string
	Year            string
	Date            string
	URI             string
	CurationLevel   string
	ProcessingLevel string
	Comment         string

	// TopoType is the declared topology, for example "time series".
	TopoType string

	Extent       Extent
	Authors      []model.Author
	Projects     []model.Project
	Licence      *model.Licence
	Keywords     []string
	References   []model.Reference
	SupplementTo *model.SupplementTo

	// Params are keyed by deduplicated short names in column order.
	Params *model.Params
	Events []model.Event

	// EventInMatrix is true when the data matrix has its own Event
	// column.
	EventInMatrix bool

	// AllowArrayExport turns false when geocode columns repeat.
	AllowArrayExport bool

	// DuplicateGeocodes lists short names of repeated geocode columns.
	DuplicateGeocodes []string
}

// IsValid is false for deleted datasets and datasets without status.
// Only technical entries are populated for invalid datasets.
func (m *Metadata) IsValid() bool {
	return m.Status != "" && m.Status != StatusDeleted
}

// IsRestricted is true when data requires an authorization token.
func (m *Metadata) IsRestricted() bool {
	return m.LoginOption != LoginUnrestricted
}

// ShortNames returns the parameter keys in column order.
func (m *Metadata) ShortNames() []string {
	if m.Params == nil {
		return nil
	}
	return m.Params.Keys()
}

package model

import "strings"

// ParamType is a closed set of parameter type tags.
type ParamType int

const (
	TypeUnknown ParamType = iota
	TypeNumeric
	TypeString
	TypeDateTime
	TypeGeocode
	// TypeQC marks generated quality columns of data parameters.
	TypeQC
	// TypeGQC marks generated quality columns of geocode parameters.
	TypeGQC
)

var paramTypeNames = map[ParamType]string{
	TypeUnknown:  "unknown",
	TypeNumeric:  "numeric",
	TypeString:   "string",
	TypeDateTime: "datetime",
	TypeGeocode:  "geocode",
	TypeQC:       "qc",
	TypeGQC:      "gqc",
}

// NewParamType converts a type tag to ParamType.
func NewParamType(s string) ParamType {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, v := range paramTypeNames {
		if v == s {
			return k
		}
	}
	return TypeUnknown
}

func (t ParamType) String() string {
	return paramTypeNames[t]
}

// MarshalText implements encoding.TextMarshaler.
func (t ParamType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// IsQualified is true for types that may carry leading quality flags.
func (t ParamType) IsQualified() bool {
	return t == TypeNumeric || t == TypeDateTime
}

// Source is the provenance category of a parameter.
type Source int

const (
	SourceUnknown Source = iota
	SourceData
	SourceGeocode
	SourceEvent
	// SourceGenerated marks parameters created during data loading.
	SourceGenerated
)

var sourceNames = map[Source]string{
	SourceUnknown:   "unknown",
	SourceData:      "data",
	SourceGeocode:   "geocode",
	SourceEvent:     "event",
	SourceGenerated: "generated",
}

// NewSource converts a provenance tag to Source.
func NewSource(s string) Source {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, v := range sourceNames {
		if v == s {
			return k
		}
	}
	return SourceUnknown
}

func (s Source) String() string {
	return sourceNames[s]
}

// MarshalText implements encoding.TextMarshaler.
func (s Source) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Namespace of a parameter synonym.
type Namespace int

const (
	// NsCF is Climate and Forecast convention.
	NsCF Namespace = iota
	// NsOS is OceanSITES.
	NsOS
	// NsSD is SeaDataNet.
	NsSD
)

func (n Namespace) String() string {
	switch n {
	case NsCF:
		return "CF"
	case NsOS:
		return "OS"
	case NsSD:
		return "SD"
	}
	return ""
}

// SynonymEntry describes a parameter in another community vocabulary.
type SynonymEntry struct {
	Name   string `json:"name" yaml:"name"`
	ID     string `json:"id,omitempty" yaml:"id,omitempty"`
	URI    string `json:"uri,omitempty" yaml:"uri,omitempty"`
	Unit   string `json:"unit,omitempty" yaml:"unit,omitempty"`
	UnitID string `json:"unitId,omitempty" yaml:"unit_id,omitempty"`
}

// Synonyms has one optional slot per supported namespace.
type Synonyms struct {
	CF *SynonymEntry `json:"CF,omitempty" yaml:"cf,omitempty"`
	OS *SynonymEntry `json:"OS,omitempty" yaml:"os,omitempty"`
	SD *SynonymEntry `json:"SD,omitempty" yaml:"sd,omitempty"`
}

// Get returns the synonym of the namespace or nil.
func (s *Synonyms) Get(ns Namespace) *SynonymEntry {
	switch ns {
	case NsCF:
		return s.CF
	case NsOS:
		return s.OS
	case NsSD:
		return s.SD
	}
	return nil
}

// Set replaces the synonym of the namespace.
func (s *Synonyms) Set(ns Namespace, e SynonymEntry) {
	switch ns {
	case NsCF:
		s.CF = &e
	case NsOS:
		s.OS = &e
	case NsSD:
		s.SD = &e
	}
}

// PI is the principal investigator responsible for a parameter.
type PI struct {
	ID        *int   `json:"id,omitempty" yaml:"id,omitempty"`
	FullName  string `json:"name" yaml:"name"`
	LastName  string `json:"lastName,omitempty" yaml:"last_name,omitempty"`
	FirstName string `json:"firstName,omitempty" yaml:"first_name,omitempty"`
}

// Parameter is one measured or derived variable of a dataset.
type Parameter struct {
	// ID of the parameter (or geocode), nil when unknown.
	ID *int `json:"id,omitempty" yaml:"id,omitempty"`

	// Name is a long display name.
	Name string `json:"name" yaml:"name"`

	// ShortName is the raw short code as declared in metadata. It keeps
	// duplicates: disambiguation happens only in the storage key.
	ShortName string `json:"shortName" yaml:"short_name"`

	Type   ParamType `json:"type" yaml:"type"`
	Source Source    `json:"source" yaml:"source"`
	Unit   string    `json:"unit,omitempty" yaml:"unit,omitempty"`

	// Format is a display precision string, for example "##0.000".
	Format string `json:"format,omitempty" yaml:"format,omitempty"`

	Synonym Synonyms `json:"synonym" yaml:"synonym"`
	Terms   []Term   `json:"terms,omitempty" yaml:"terms,omitempty"`
	Comment string   `json:"comment,omitempty" yaml:"comment,omitempty"`
	PI      *PI      `json:"pi,omitempty" yaml:"pi,omitempty"`

	// DataSeries is the ID of the data series (column) in the repository.
	DataSeries *int `json:"dataseries,omitempty" yaml:"dataseries,omitempty"`

	// ColNo is a 1-based column position in the source matrix, 0 for
	// generated parameters.
	ColNo int `json:"colno,omitempty" yaml:"colno,omitempty"`

	Method *Method `json:"method,omitempty" yaml:"method,omitempty"`
}

// AddSynonym registers a synonym valid within the namespace.
func (p *Parameter) AddSynonym(ns Namespace, e SynonymEntry) {
	p.Synonym.Set(ns, e)
}

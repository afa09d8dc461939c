// Package model contains value objects that describe a dataset:
// parameters (measured variables), events (sampling occasions), methods,
// authors, projects and licences.
//
// The package is pure. Objects are created by the metadata parser and
// supplemented by the data matrix loader.
package model

// Ptr returns a pointer to a copy of v. It is a shortcut for optional
// fields.
func Ptr[T any](v T) *T {
	return &v
}

// Method is a device or method used to obtain a parameter or to perform
// an event.
type Method struct {
	// ID is the internal method ID, nil if unknown.
	ID *int `json:"id,omitempty" yaml:"id,omitempty"`

	// Name is the full name of the method.
	Name string `json:"name" yaml:"name"`

	// Terms are controlled vocabulary references attached to the method.
	Terms []Term `json:"terms,omitempty" yaml:"terms,omitempty"`
}

// Term is a reference to a controlled vocabulary entry.
type Term struct {
	// ID of the term, 0 if unknown.
	ID int `json:"id" yaml:"id"`

	Name string `json:"name" yaml:"name"`

	// SemanticURI is an optional URI of the term in external ontology.
	SemanticURI string `json:"semanticUri,omitempty" yaml:"semantic_uri,omitempty"`

	// OntologyID is the ID of terminology the term belongs to.
	OntologyID int `json:"ontology" yaml:"ontology"`

	// Classification contains topics of the term. It is resolved only for
	// terminologies that were requested for expansion.
	Classification []string `json:"classification,omitempty" yaml:"classification,omitempty"`
}

// Author of a dataset.
type Author struct {
	// LastName might be empty for institutional authors.
	LastName  string `json:"lastName,omitempty" yaml:"last_name,omitempty"`
	FirstName string `json:"firstName,omitempty" yaml:"first_name,omitempty"`
	ORCID     string `json:"orcid,omitempty" yaml:"orcid,omitempty"`

	// ID is the internal numeric ID, nil if absent.
	ID *int `json:"id,omitempty" yaml:"id,omitempty"`

	// Affiliations are internal institution IDs.
	Affiliations []int `json:"affiliations,omitempty" yaml:"affiliations,omitempty"`
}

// FullName returns "last, first" or only the last name.
func (a Author) FullName() string {
	if a.FirstName == "" {
		return a.LastName
	}
	if a.LastName == "" {
		return a.FirstName
	}
	return a.LastName + ", " + a.FirstName
}

// Project that funded or hosted a dataset.
type Project struct {
	Label    string `json:"label,omitempty" yaml:"label,omitempty"`
	Name     string `json:"name,omitempty" yaml:"name,omitempty"`
	URL      string `json:"url,omitempty" yaml:"url,omitempty"`
	AwardURI string `json:"awardUri,omitempty" yaml:"award_uri,omitempty"`
	ID       *int   `json:"id,omitempty" yaml:"id,omitempty"`
}

// Licence of a dataset, usually one of Creative Commons licences.
type Licence struct {
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
	Name  string `json:"name,omitempty" yaml:"name,omitempty"`
	URI   string `json:"uri,omitempty" yaml:"uri,omitempty"`
}

// Reference is a cross-reference to a related publication.
type Reference struct {
	ID           string `json:"id,omitempty" yaml:"id,omitempty"`
	Title        string `json:"title,omitempty" yaml:"title,omitempty"`
	URI          string `json:"uri,omitempty" yaml:"uri,omitempty"`
	RelationType string `json:"type,omitempty" yaml:"type,omitempty"`
}

// SupplementTo is a publication the dataset is a supplement to.
type SupplementTo struct {
	ID    string `json:"id,omitempty" yaml:"id,omitempty"`
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
	URI   string `json:"uri,omitempty" yaml:"uri,omitempty"`
	Year  string `json:"year,omitempty" yaml:"year,omitempty"`
}

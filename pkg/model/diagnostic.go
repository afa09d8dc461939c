package model

import (
	"fmt"
	"log/slog"
)

// Category groups diagnostics by their cause.
type Category string

const (
	CatNotFound        Category = "not-found"
	CatDeleted         Category = "deleted"
	CatParse           Category = "parse"
	CatMissingField    Category = "missing-field"
	CatInvalidID       Category = "invalid-id"
	CatHTTP            Category = "http"
	CatRestricted      Category = "restricted"
	CatCollection      Category = "collection"
	CatBinary          Category = "binary"
	CatUnauthorized    Category = "unauthorized"
	CatNoTabular       Category = "no-tabular"
	CatDuplicateGeo    Category = "duplicate-geocode"
	CatTerm            Category = "term"
	CatMalformedRow    Category = "malformed-row"
	CatDateTime        Category = "date-time"
	CatParamList       Category = "param-list"
	CatQC              Category = "qc"
	CatLoad            Category = "load"
	CatCollectionQuery Category = "collection-query"
)

// Diagnostic is a recorded condition of a dataset load. Severity uses
// slog levels.
type Diagnostic struct {
	Severity slog.Level `json:"severity" yaml:"severity"`
	Category Category   `json:"category" yaml:"category"`
	Message  string     `json:"message" yaml:"message"`
}

// NewDiagnostic formats a diagnostic message.
func NewDiagnostic(
	sev slog.Level,
	cat Category,
	format string,
	args ...any,
) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Category: cat,
		Message:  fmt.Sprintf(format, args...),
	}
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s [%s] %s", d.Severity, d.Category, d.Message)
}

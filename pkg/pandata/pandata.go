// Package pandata declares collaborators the dataset loader depends on.
// Implementations live in internal packages, tests use stubs.
package pandata

import (
	"context"
	"net/http"
)

// Accept header values understood by the repository.
const (
	AcceptMetadata = "application/vnd.pangaea.metadata+xml"
	AcceptData     = "text/tab-separated-values"
	AcceptJSON     = "application/json"
)

// Request describes one GET call to the repository.
type Request struct {
	// URL is the full address of the resource.
	URL string

	// Accept is the requested content type.
	Accept string

	// AuthToken is sent as a bearer token when not empty.
	AuthToken string
}

// Response is what the transport surfaces to the loader. Non-200
// statuses are not errors, the loader branches on StatusCode itself.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// ContentType returns the Content-Type header of the response.
func (r *Response) ContentType() string {
	if r.Header == nil {
		return ""
	}
	return r.Header.Get("Content-Type")
}

// Fetcher is the HTTP request function. It handles timeouts and
// rate-limit retries. It returns an error only when no response was
// received at all.
type Fetcher interface {
	Get(ctx context.Context, req Request) (*Response, error)
}

// TermResolver finds classification topics of a controlled-vocabulary
// term.
type TermResolver interface {
	// Classification returns main topics followed by topics of the term.
	Classification(ctx context.Context, termID int) ([]string, error)
}

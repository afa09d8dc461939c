package dataset

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/pandata/pkg/errcode"
)

// InvalidIDError is returned for identifiers that are neither a
// positive number nor a repository DOI.
func InvalidIDError(id string) error {
	msg := "Invalid dataset identifier <em>%s</em>"
	vars := []any{id}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.InvalidIDError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: invalid id %q", fn.Name(), id),
	}
}

// decodeError is returned when a JSON response cannot be decoded.
func decodeError(url string, err error) error {
	msg := "Cannot decode response from <em>%s</em>"
	vars := []any{url}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.HTTPReadBodyError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: decode %s: %w", fn.Name(), url, err),
	}
}

// errStatus is wrapped into decodeError for non-200 search responses.
var errStatus = errors.New("unexpected status")

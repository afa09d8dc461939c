package metadata

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/pandata/pkg/errcode"
)

// ParseError is returned when the metadata document is not valid XML.
func ParseError(err error) error {
	msg := "Cannot parse metadata XML"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.MetadataParseError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: cannot parse metadata: %w", fn.Name(), err),
	}
}

// MissingFieldError is returned when a mandatory node is absent.
func MissingFieldError(field string) error {
	msg := "Metadata misses mandatory field <em>%s</em>"
	vars := []any{field}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.MetadataMissingFieldError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: missing field %s", fn.Name(), field),
	}
}

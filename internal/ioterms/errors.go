package ioterms

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/pandata/pkg/errcode"
)

func CacheOpenError(path string, err error) error {
	msg := "Cannot open term cache <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.TermCacheOpenError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot open %s: %w", fn.Name(), path, err),
	}
}

func CacheQueryError(termID int, err error) error {
	msg := "Cannot query term cache for term %d"
	vars := []any{termID}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.TermCacheQueryError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: query term %d: %w", fn.Name(), termID, err),
	}
}

func CacheInsertError(termID int, err error) error {
	msg := "Cannot save term %d to cache"
	vars := []any{termID}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.TermCacheInsertError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: insert term %d: %w", fn.Name(), termID, err),
	}
}

func LookupError(termID int, err error) error {
	msg := "Cannot download term %d"
	vars := []any{termID}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.TermLookupError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: lookup term %d: %w", fn.Name(), termID, err),
	}
}

func DecodeError(termID int, err error) error {
	msg := "Cannot decode term %d"
	vars := []any{termID}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.TermDecodeError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: decode term %d: %w", fn.Name(), termID, err),
	}
}

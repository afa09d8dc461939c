package iohttp

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/pandata/pkg/errcode"
)

func RequestError(url string, err error) error {
	msg := "Request to <em>%s</em> failed"
	vars := []any{url}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.HTTPRequestError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot get %s: %w", fn.Name(), url, err),
	}
}

func ReadBodyError(url string, err error) error {
	msg := "Cannot read response from <em>%s</em>"
	vars := []any{url}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.HTTPReadBodyError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot read body of %s: %w", fn.Name(), url, err),
	}
}

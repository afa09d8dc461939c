package matrix

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/pandata/pkg/errcode"
)

// DataReadError is returned when the data payload cannot be turned
// into a table.
func DataReadError(line int, err error) error {
	msg := "Cannot read data matrix at line %d"
	vars := []any{line}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DataReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: line %d: %w", fn.Name(), line, err),
	}
}

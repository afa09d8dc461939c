package qcflag

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/pandata/pkg/errcode"
)

// ColumnExistsError is returned when a QC column would overwrite an
// existing column.
func ColumnExistsError(name string) error {
	msg := "Column <em>%s</em> already exists"
	vars := []any{name}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.QCColumnExistsError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: column %s exists", fn.Name(), name),
	}
}

package matrix

import (
	"strings"

	"github.com/gnames/pandata/pkg/frame"
	"github.com/gnames/pandata/pkg/qcflag"
)

// deleteFlagged empties cells that start with the configured flag.
func (l *Loader) deleteFlagged(data *frame.Frame) {
	flag := l.opts.DeleteFlag
	if flag == "" {
		return
	}
	for _, c := range data.Columns() {
		if c.Kind != frame.KindText {
			continue
		}
		for i, v := range c.Text {
			if strings.HasPrefix(v, flag) {
				c.Text[i] = ""
			}
		}
	}
}

// prune drops empty columns and every parameter without a column. It
// returns names of dropped columns.
func (l *Loader) prune(data *frame.Frame) []string {
	res := data.DropEmpty()
	for _, key := range l.params.Keys() {
		if !data.Has(key) {
			l.params.Delete(key)
		}
	}
	return res
}

// stripSigils removes one leading flag or marker from every text cell.
func (l *Loader) stripSigils(data *frame.Frame) {
	for _, c := range data.Columns() {
		if c.Kind != frame.KindText {
			continue
		}
		for i, v := range c.Text {
			c.Text[i] = qcflag.Strip(v)
		}
	}
}

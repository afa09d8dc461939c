package matrix

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/gnames/pandata/pkg/frame"
	"github.com/gnames/pandata/pkg/model"
	"github.com/gnames/pandata/pkg/tsv"
)

// maxLinesReported limits line numbers listed in a malformed-row
// diagnostic.
const maxLinesReported = 10

// read parses the payload into text columns named by parameter keys.
// The first line repeats the header and is skipped.
func (l *Loader) read(payload []byte) (*frame.Frame, error) {
	keys := l.params.Keys()
	r := tsv.NewReader(bytes.NewReader(tsv.StripComment(payload)))
	r.FieldsPerRecord = len(keys)

	var records [][]string
	var badLines []int
	var header bool
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil && !errors.Is(err, tsv.ErrFieldCount) {
			return nil, DataReadError(r.Line(), err)
		}
		if !header {
			header = true
			continue
		}
		if err != nil {
			badLines = append(badLines, r.Line())
			continue
		}
		records = append(records, rec)
	}

	if len(badLines) > 0 {
		lines := badLines
		if len(lines) > maxLinesReported {
			lines = lines[:maxLinesReported]
		}
		l.note(model.NewDiagnostic(slog.LevelWarn, model.CatMalformedRow,
			"skipped %d malformed rows, lines %s", len(badLines), joinInts(lines)))
	}

	data, err := frame.FromRecords(keys, records)
	if err != nil {
		return nil, DataReadError(0, err)
	}
	l.selectColumns(data)
	return data, nil
}

// selectColumns keeps only columns of ParamList and DefaultParams.
func (l *Loader) selectColumns(data *frame.Frame) {
	if len(l.opts.ParamList) == 0 {
		return
	}

	var found, missing []string
	for _, name := range l.opts.ParamList {
		if data.Has(name) {
			found = append(found, name)
		} else {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		l.note(model.NewDiagnostic(slog.LevelWarn, model.CatParamList,
			"requested %d parameters, found %d, unknown: %s",
			len(l.opts.ParamList), len(found), strings.Join(missing, ", ")))
	}

	for _, name := range data.Names() {
		if slices.Contains(l.opts.ParamList, name) ||
			slices.Contains(DefaultParams, name) {
			continue
		}
		data.Drop(name)
		l.params.Delete(name)
	}
}

func joinInts(ns []int) string {
	strs := make([]string, len(ns))
	for i, n := range ns {
		strs[i] = fmt.Sprint(n)
	}
	return strings.Join(strs, ", ")
}

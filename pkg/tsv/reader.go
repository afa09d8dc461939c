// Package tsv reads tab-separated data matrices.
//
// Cells are never quoted or escaped, which makes the standard library
// csv package unsuitable: it treats quotes in cell values as syntax.
//
// Input is read as UTF-8. Invalid bytes are replaced with U+FFFD, so
// such cells do not round-trip.
package tsv

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

// ErrFieldCount is returned for records that have more fields than
// expected.
var ErrFieldCount = errors.New("wrong number of fields")

// Reader reads records from a TSV stream. It converts \r\n sequences to
// \n and skips blank lines.
type Reader struct {
	// FieldsPerRecord is the expected number of fields. If it is 0, it
	// is set from the first record. Shorter records are padded with
	// empty fields, longer ones cause ErrFieldCount.
	FieldsPerRecord int

	r     *bufio.Reader
	line  int
	col   int
	field bytes.Buffer
}

// NewReader returns a new Reader that reads from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// Line returns the line number of the record most recently read.
func (r *Reader) Line() int {
	return r.line
}

// Read reads one record. If the record is too long, Read returns the
// record along with ErrFieldCount, and the next call continues from the
// following line. When no data is left, Read returns nil, io.EOF.
func (r *Reader) Read() (record []string, err error) {
	for {
		record, err = r.parseRecord()
		if err != nil {
			return nil, err
		}
		if len(record) > 0 {
			break
		}
	}
	if r.FieldsPerRecord == 0 {
		r.FieldsPerRecord = len(record)
	}
	if len(record) > r.FieldsPerRecord {
		return record, fmt.Errorf("%w: line %d has %d fields, want %d",
			ErrFieldCount, r.line, len(record), r.FieldsPerRecord)
	}
	for len(record) < r.FieldsPerRecord {
		record = append(record, "")
	}
	return record, nil
}

func (r *Reader) parseRecord() (fields []string, err error) {
	if _, _, err := r.r.ReadRune(); err != nil {
		return nil, err
	}
	_ = r.r.UnreadRune()
	r.line++
	r.col = 0

	for {
		delim, err := r.parseField()
		if err != nil {
			return nil, err
		}
		if delim == '\n' {
			f := r.field.String()
			if len(fields) > 0 || len(f) > 0 {
				fields = append(fields, f)
			}
			return fields, nil
		}
		fields = append(fields, r.field.String())
	}
}

func (r *Reader) parseField() (delim rune, err error) {
	r.field.Reset()
	for {
		r1, err := r.readRune()
		if errors.Is(err, io.EOF) && r.col > 0 {
			return '\n', nil
		}
		if err != nil {
			return 0, err
		}
		if r1 == '\t' || r1 == '\n' {
			return r1, nil
		}
		r.field.WriteRune(r1)
	}
}

func (r *Reader) readRune() (r1 rune, err error) {
	r1, _, err = r.r.ReadRune()
	if err != nil {
		return 0, err
	}

	if r1 == '\r' {
		r1, _, err = r.r.ReadRune()
		if errors.Is(err, io.EOF) {
			r.col++
			return '\r', nil
		}
		if err != nil {
			return 0, err
		}
		if r1 != '\n' {
			_ = r.r.UnreadRune()
			r1 = '\r'
		}
	}
	if r1 != '\n' {
		r.col++
	}
	return r1, nil
}

// StripComment removes a leading /* ... */ block and surrounding
// whitespace. Data without a leading comment is only trimmed.
func StripComment(data []byte) []byte {
	data = bytes.TrimSpace(data)
	if !bytes.HasPrefix(data, []byte("/*")) {
		return data
	}
	end := bytes.Index(data[2:], []byte("*/"))
	if end < 0 {
		return data
	}
	return bytes.TrimSpace(data[end+4:])
}

package tsv_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/gnames/pandata/pkg/tsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, r *tsv.Reader) ([][]string, int) {
	var res [][]string
	var bad int
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if errors.Is(err, tsv.ErrFieldCount) {
			bad++
			continue
		}
		require.Nil(t, err)
		res = append(res, rec)
	}
	return res, bad
}

func TestRead(t *testing.T) {
	tests := map[string]struct {
		input  string
		output [][]string
		bad    int
	}{
		"simple": {
			input:  "a\tb\tc\n",
			output: [][]string{{"a", "b", "c"}},
		},
		"CrLn": {
			input:  "a\tb\r\nc\td\r\n",
			output: [][]string{{"a", "b"}, {"c", "d"}},
		},
		"no EOL": {
			input:  "a\tb\tc",
			output: [][]string{{"a", "b", "c"}},
		},
		"blank line": {
			input:  "a\tb\tc\n\nd\te\tf\n\n",
			output: [][]string{{"a", "b", "c"}, {"d", "e", "f"}},
		},
		"quotes are data": {
			input:  `a "word"	"1"2"` + "\n",
			output: [][]string{{`a "word"`, `"1"2"`}},
		},
		"backslash is data": {
			input:  `abc\tdef` + "\n",
			output: [][]string{{`abc\tdef`}},
		},
		"empty fields": {
			input:  "\t\t\n",
			output: [][]string{{"", "", ""}},
		},
		"short row padded": {
			input:  "a\tb\tc\nd\n",
			output: [][]string{{"a", "b", "c"}, {"d", "", ""}},
		},
		"invalid UTF-8 replaced": {
			input:  "a\xffb\tc\n",
			output: [][]string{{"a\uFFFDb", "c"}},
		},
		"long row skipped": {
			input:  "a\tb\nc\td\te\nf\tg\n",
			output: [][]string{{"a", "b"}, {"f", "g"}},
			bad:    1,
		},
	}

	for name, v := range tests {
		t.Run(name, func(t *testing.T) {
			res, bad := readAll(t, tsv.NewReader(strings.NewReader(v.input)))
			assert.Equal(t, v.output, res)
			assert.Equal(t, v.bad, bad)
		})
	}
}

func TestFieldsPerRecord(t *testing.T) {
	r := tsv.NewReader(strings.NewReader("1\n2\t3\t4\n5\t6\n"))
	r.FieldsPerRecord = 2
	res, bad := readAll(t, r)
	assert.Equal(t, [][]string{{"1", ""}, {"5", "6"}}, res)
	assert.Equal(t, 1, bad)
	assert.Equal(t, 3, r.Line())
}

func TestStripComment(t *testing.T) {
	tests := []struct {
		msg, input, output string
	}{
		{
			msg:    "block",
			input:  "/* DATA DESCRIPTION:\nCitation:\tX\n*/\nA\tB\n1\t2\n",
			output: "A\tB\n1\t2",
		},
		{msg: "no comment", input: "\nA\tB\n", output: "A\tB"},
		{msg: "unclosed", input: "/* A\tB", output: "/* A\tB"},
		{msg: "only comment", input: "/* x */", output: ""},
	}
	for _, v := range tests {
		assert.Equal(t, v.output, string(tsv.StripComment([]byte(v.input))), v.msg)
	}
}

/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/gnames/gnfmt"
	"github.com/gnames/pandata/internal/iohttp"
	"github.com/gnames/pandata/internal/ioterms"
	"github.com/gnames/pandata/pkg/config"
	"github.com/gnames/pandata/pkg/frame"
	"github.com/gnames/pandata/pkg/pandata"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// newFetcher is replaced in tests.
var newFetcher = func(cfg config.PangaeaConfig) pandata.Fetcher {
	return iohttp.New(cfg)
}

// services holds collaborators shared by dataset loads of a command.
type services struct {
	fetcher pandata.Fetcher
	terms   *ioterms.Resolver
}

// newServices opens the term cache only when term expansion is
// requested.
func newServices(cfg *config.Config, withTerms bool) (*services, error) {
	res := &services{fetcher: newFetcher(cfg.Pangaea)}
	if !withTerms {
		return res, nil
	}
	var err error
	res.terms, err = ioterms.Open(
		config.TermsDBPath(cfg.HomeDir), cfg.Pangaea.TermsURL, res.fetcher,
	)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// resolver returns nil interface when the cache is not open.
func (s *services) resolver() pandata.TermResolver {
	if s.terms == nil {
		return nil
	}
	return s.terms
}

func (s *services) Close() error {
	if s.terms == nil {
		return nil
	}
	return s.terms.Close()
}

// format of command output.
type format string

const (
	formatJSON format = "json"
	formatYAML format = "yaml"
	formatTSV  format = "tsv"
)

func newFormat(s string) (format, error) {
	switch f := format(strings.ToLower(s)); f {
	case formatJSON, formatYAML, formatTSV:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q, use json, yaml or tsv", s)
	}
}

// encode writes v as JSON or YAML.
func encode(w io.Writer, f format, v any) error {
	var bs []byte
	var err error
	switch f {
	case formatYAML:
		bs, err = yaml.Marshal(v)
	default:
		bs, err = gnfmt.GNjson{Pretty: true}.Encode(v)
		bs = append(bs, '\n')
	}
	if err != nil {
		return err
	}
	_, err = w.Write(bs)
	return err
}

// writeFrame writes a table as TSV, or as a list of records for JSON
// and YAML. A negative limit writes all rows.
func writeFrame(w io.Writer, f format, fr *frame.Frame, limit int) error {
	if f == formatTSV {
		return fr.WriteTSV(w, limit)
	}

	n := fr.Rows()
	if limit >= 0 && limit < n {
		n = limit
	}
	names := fr.Names()
	recs := make([]map[string]any, n)
	for i := range n {
		rec := make(map[string]any, len(names))
		for _, c := range fr.Columns() {
			rec[c.Name] = c.Value(i)
		}
		recs[i] = rec
	}
	return encode(w, f, recs)
}

func formatFlag(cmd *cobra.Command, def string) {
	cmd.Flags().StringP("format", "f", def, "output format: json, yaml or tsv")
}

func getFormat(cmd *cobra.Command) (format, error) {
	s, _ := cmd.Flags().GetString("format")
	return newFormat(s)
}

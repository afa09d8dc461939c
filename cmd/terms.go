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
	"strconv"

	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// termClass is the output of the terms command.
type termClass struct {
	ID             int      `json:"id" yaml:"id"`
	Classification []string `json:"classification" yaml:"classification"`
}

// getTermsCmd returns the terms command.
func getTermsCmd() *cobra.Command {
	termsCmd := &cobra.Command{
		Use:   "terms <term-id>...",
		Short: "Print classification of terms",
		Long: `Print classification (main topics and topics) of terms from
the term service. Results are cached in ~/.cache/pandata/terms.db.

Examples:
  pandata terms 43972
  pandata terms 43972 1234 -f json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runTerms(cmd, args)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}
	formatFlag(termsCmd, "yaml")
	return termsCmd
}

func runTerms(cmd *cobra.Command, args []string) error {
	f, err := getFormat(cmd)
	if err != nil {
		return err
	}
	ids := make([]int, len(args))
	for i, v := range args {
		if ids[i], err = strconv.Atoi(v); err != nil || ids[i] <= 0 {
			return fmt.Errorf("term ID must be a positive number: %q", v)
		}
	}

	srv, err := newServices(cfg, true)
	if err != nil {
		return err
	}
	defer srv.Close()

	res := make([]termClass, 0, len(ids))
	for _, id := range ids {
		cls, err := srv.terms.Classification(cmd.Context(), id)
		if err != nil {
			return err
		}
		res = append(res, termClass{ID: id, Classification: cls})
	}

	out := cmd.OutOrStdout()
	if f == formatTSV {
		for _, v := range res {
			for _, c := range v.Classification {
				if _, err = fmt.Fprintf(out, "%d\t%s\n", v.ID, c); err != nil {
					return err
				}
			}
		}
		return nil
	}
	return encode(out, f, res)
}

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
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/pandata/pkg/config"
	"github.com/gnames/pandata/pkg/dataset"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// qcSuffix is appended to names of merged quality-code columns.
const qcSuffix = "_QC"

// getGetCmd returns the get command.
func getGetCmd() *cobra.Command {
	var (
		metadataOnly bool
		noEvents     bool
		withQC       bool
		deleteFlag   string
		paramList    []string
		expandTerms  []int
		limit        int
	)

	getCmd := &cobra.Command{
		Use:   "get <dataset-id>...",
		Short: "Load datasets and print their summary or data",
		Long: `Load one or more datasets by numeric ID or DOI.

This command:
  1. Downloads and parses metadata of every dataset
  2. Skips data of deleted, protected and collection datasets
  3. Loads the data matrix, fills missing geocode columns from
     events and separates quality flags from values
  4. Prints a summary (json, yaml) or the data matrix (tsv)

Several datasets are loaded concurrently (see jobs_number in the
config file). The tsv format accepts only one dataset.

Examples:
  pandata get 867404
  pandata get 10.1594/PANGAEA.867404 -f tsv --qc
  pandata get 867404 867405 -p "Depth water,Temp" -f json
  pandata get 867404 -m -e 1,2`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var getOpts []config.Option
			if cmd.Flags().Changed("metadata-only") {
				getOpts = append(getOpts, config.OptDatasetIncludeData(!metadataOnly))
			}
			if cmd.Flags().Changed("no-events") {
				getOpts = append(getOpts, config.OptDatasetAddEventColumns(!noEvents))
			}
			if cmd.Flags().Changed("delete-flag") {
				getOpts = append(getOpts, config.OptDatasetDeleteFlag(deleteFlag))
			}
			if cmd.Flags().Changed("params") {
				getOpts = append(getOpts, config.OptDatasetParamList(paramList))
			}
			if cmd.Flags().Changed("expand-terms") {
				getOpts = append(getOpts, config.OptDatasetExpandTerms(expandTerms))
			}
			cfg.Update(getOpts)

			err := runGet(cmd, args, withQC, limit)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	formatFlag(getCmd, "yaml")
	getCmd.Flags().BoolVarP(
		&metadataOnly, "metadata-only", "m", false,
		"load metadata only",
	)
	getCmd.Flags().BoolVar(
		&noEvents, "no-events", false,
		"do not create geocode columns from events",
	)
	getCmd.Flags().BoolVarP(
		&withQC, "qc", "q", false,
		"add quality-code columns with '"+qcSuffix+"' suffix (tsv)",
	)
	getCmd.Flags().StringVarP(
		&deleteFlag, "delete-flag", "d", "",
		"empty cells starting with this flag (? / * # < >)",
	)
	getCmd.Flags().StringSliceVarP(
		&paramList, "params", "p", nil,
		"load only these columns (geocodes are always loaded)",
	)
	getCmd.Flags().IntSliceVarP(
		&expandTerms, "expand-terms", "e", nil,
		"terminology IDs of terms to classify",
	)
	getCmd.Flags().IntVarP(
		&limit, "limit", "l", 0,
		"maximum number of data rows in tsv output (0 = all)",
	)

	return getCmd
}

func runGet(cmd *cobra.Command, ids []string, withQC bool, limit int) error {
	f, err := getFormat(cmd)
	if err != nil {
		return err
	}
	if f == formatTSV && len(ids) > 1 {
		return errors.New("tsv output accepts only one dataset")
	}

	srv, err := newServices(cfg, len(cfg.Dataset.ExpandTerms) > 0)
	if err != nil {
		return err
	}
	defer srv.Close()

	start := time.Now()
	dss, err := loadDatasets(cmd.Context(), srv, ids)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if f == formatTSV {
		return writeData(out, dss[0], withQC, limit)
	}

	summaries := make([]dataset.Summary, len(dss))
	for i, ds := range dss {
		summaries[i] = ds.Summary()
	}
	if len(summaries) == 1 {
		err = encode(out, f, summaries[0])
	} else {
		err = encode(out, f, summaries)
	}
	if err != nil {
		return err
	}

	if len(dss) > 1 {
		gn.Info("Loaded <em>%s</em> datasets in %s",
			humanize.Comma(int64(len(dss))),
			gnfmt.TimeString(time.Since(start).Seconds()),
		)
	}
	return nil
}

// loadDatasets loads datasets concurrently. Results keep the order of
// ids. Failures of a single dataset are kept on its diagnostics, only
// identifier errors stop the whole run.
func loadDatasets(
	ctx context.Context,
	srv *services,
	ids []string,
) ([]*dataset.Dataset, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	for _, id := range ids {
		if _, err := dataset.ParseID(id); err != nil {
			return nil, err
		}
	}

	var bar *pb.ProgressBar
	if len(ids) > 1 {
		bar = pb.Full.Start(len(ids))
		bar.Set("prefix", "datasets ")
		bar.Set(pb.CleanOnFinish, true)
		defer bar.Finish()
	}

	res := make([]*dataset.Dataset, len(ids))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.JobsNumber)
	for i, id := range ids {
		g.Go(func() error {
			// metadata errors are kept as diagnostics of the dataset
			ds, _ := dataset.Load(gCtx, *cfg, srv.fetcher, srv.resolver(), id)
			res[i] = ds
			if bar != nil {
				bar.Increment()
			}
			return gCtx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

// writeData prints the data matrix of a dataset. Without data it
// prints the diagnostics instead.
func writeData(w io.Writer, ds *dataset.Dataset, withQC bool, limit int) error {
	if ds.Data.Empty() {
		for _, d := range ds.Diagnostics() {
			gn.Warn("%s", d.String())
		}
		return fmt.Errorf("dataset %d has no data, state %s", ds.ID, ds.State())
	}

	if withQC {
		if _, err := ds.AddQCParamsAndColumns(qcSuffix); err != nil {
			return err
		}
	}

	if limit <= 0 {
		limit = -1
	}
	if err := ds.Data.WriteTSV(w, limit); err != nil {
		return err
	}
	gn.Info("Dataset <em>%d</em>: %s rows, %s columns",
		ds.ID,
		humanize.Comma(int64(ds.Data.Rows())),
		humanize.Comma(int64(ds.Data.Width())),
	)
	return nil
}

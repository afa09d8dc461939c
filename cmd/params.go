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
	"github.com/gnames/gn"
	"github.com/gnames/pandata/pkg/config"
	"github.com/gnames/pandata/pkg/dataset"
	"github.com/gnames/pandata/pkg/frame"
	"github.com/spf13/cobra"
)

// getParamsCmd returns the params command.
func getParamsCmd() *cobra.Command {
	paramsCmd := &cobra.Command{
		Use:   "params <dataset-id>",
		Short: "Print parameters of a dataset",
		Long: `Print the parameter dictionary of a dataset: index key
(shortName), name, unit, type and format of every column.

Only metadata is downloaded.

Examples:
  pandata params 867404
  pandata params 867404 -f json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runTable(cmd, args[0], (*dataset.Dataset).ParamDict)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}
	formatFlag(paramsCmd, "tsv")
	return paramsCmd
}

// getEventsCmd returns the events command.
func getEventsCmd() *cobra.Command {
	eventsCmd := &cobra.Command{
		Use:   "events <dataset-id>",
		Short: "Print events of a dataset",
		Long: `Print sampling events of a dataset with their coordinates,
times, location, basis, campaign and device.

Only metadata is downloaded.

Examples:
  pandata events 867404
  pandata events 867404 -f yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runTable(cmd, args[0], (*dataset.Dataset).EventsTable)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}
	formatFlag(eventsCmd, "tsv")
	return eventsCmd
}

// runTable loads metadata of a dataset and prints one of its tables.
func runTable(
	cmd *cobra.Command,
	id string,
	table func(*dataset.Dataset) *frame.Frame,
) error {
	f, err := getFormat(cmd)
	if err != nil {
		return err
	}
	cfg.Update([]config.Option{config.OptDatasetIncludeData(false)})

	srv, err := newServices(cfg, false)
	if err != nil {
		return err
	}
	defer srv.Close()

	ds, err := dataset.Load(cmd.Context(), *cfg, srv.fetcher, nil, id)
	if err != nil {
		return err
	}
	if ds.State() != dataset.StateMetadataLoaded &&
		ds.State() != dataset.StateRestrictedOrCollection {
		for _, d := range ds.Diagnostics() {
			gn.Warn("%s", d.String())
		}
		return nil
	}
	return writeFrame(cmd.OutOrStdout(), f, table(ds), -1)
}

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
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/pandata/internal/iofs"
	"github.com/gnames/pandata/internal/iologger"
	app "github.com/gnames/pandata/pkg"
	"github.com/gnames/pandata/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir  string
	opts     []config.Option
	cfg      *config.Config
	closeLog = func() error { return nil }
)

// getRootCmd creates the base command with all subcommands attached.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "pandata",
		Short:   "Pandata loads PANGAEA datasets",
		Long: `Pandata downloads metadata and data matrices of PANGAEA
datasets, reconciles data columns with parameter descriptions and
separates quality flags from values.

Datasets are given by a numeric ID or by a DOI (10.1594/PANGAEA.<n>).

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (PANDATA_*)
  3. Config file (~/.config/pandata/config.yaml)
  4. Built-in defaults

Environment Variables:
  Nested fields use underscores (pangaea.auth_token → PANDATA_PANGAEA_AUTH_TOKEN).

  Examples:
    PANDATA_PANGAEA_AUTH_TOKEN      Bearer token for protected datasets
    PANDATA_PANGAEA_TIMEOUT_SEC     HTTP timeout in seconds
    PANDATA_DATASET_DELETE_FLAG     Empty cells with this quality flag
    PANDATA_LOG_LEVEL               Log level (debug/info/warn/error)
    PANDATA_JOBS_NUMBER             Datasets loaded concurrently`,
		PersistentPreRunE: bootstrap,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return closeLog()
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// Remove the automatic "pandata version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for pandata")

	rootCmd.AddCommand(
		getGetCmd(),
		getParamsCmd(),
		getEventsCmd(),
		getTermsCmd(),
	)
	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if closeLog, err = iologger.Init(config.LogDir(homeDir), defaultLog, false); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// Reopen the log in append mode with user's settings
	if err = closeLog(); err != nil {
		return err
	}
	if closeLog, err = iologger.Init(config.LogDir(homeDir), cfg.Log, true); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded", "config_file", config.ConfigFilePath(homeDir))
	return nil
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	err := getRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Environment variables are bound one by one to keep the allowed
	// set visible. They match the fields of config.ToOptions().
	v.SetEnvPrefix("PANDATA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Pangaea web services
	v.BindEnv("pangaea.base_url", "PANDATA_PANGAEA_BASE_URL")
	v.BindEnv("pangaea.terms_url", "PANDATA_PANGAEA_TERMS_URL")
	v.BindEnv("pangaea.search_url", "PANDATA_PANGAEA_SEARCH_URL")
	v.BindEnv("pangaea.timeout_sec", "PANDATA_PANGAEA_TIMEOUT_SEC")
	v.BindEnv("pangaea.retries", "PANDATA_PANGAEA_RETRIES")
	v.BindEnv("pangaea.auth_token", "PANDATA_PANGAEA_AUTH_TOKEN")

	// Dataset loading
	v.BindEnv("dataset.delete_flag", "PANDATA_DATASET_DELETE_FLAG")
	v.BindEnv("dataset.include_data", "PANDATA_DATASET_INCLUDE_DATA")
	v.BindEnv("dataset.add_event_columns", "PANDATA_DATASET_ADD_EVENT_COLUMNS")
	v.BindEnv("dataset.expand_terms", "PANDATA_DATASET_EXPAND_TERMS")

	// Log configuration
	v.BindEnv("log.level", "PANDATA_LOG_LEVEL")
	v.BindEnv("log.format", "PANDATA_LOG_FORMAT")
	v.BindEnv("log.destination", "PANDATA_LOG_DESTINATION")

	// General configuration
	v.BindEnv("jobs_number", "PANDATA_JOBS_NUMBER")

	v.AutomaticEnv()
}

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gnames/pandata/pkg/config"
	"github.com/gnames/pandata/pkg/pandata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	responses map[string]*pandata.Response
}

func (s *stubFetcher) Get(_ context.Context, req pandata.Request) (*pandata.Response, error) {
	if r, ok := s.responses[req.Accept+" "+req.URL]; ok {
		return r, nil
	}
	return &pandata.Response{StatusCode: http.StatusNotFound}, nil
}

func readTestdata(t *testing.T, name string) []byte {
	res, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return res
}

// setupCLI points HOME to a temporary directory and replaces the
// fetcher with canned responses.
func setupCLI(t *testing.T) *stubFetcher {
	t.Setenv("HOME", t.TempDir())
	def := config.New().Pangaea
	url := def.BaseURL + "100"
	tsvHeader := http.Header{}
	tsvHeader.Set("Content-Type", "text/tab-separated-values; charset=UTF-8")

	f := &stubFetcher{responses: map[string]*pandata.Response{
		pandata.AcceptMetadata + " " + url: {
			StatusCode: http.StatusOK,
			Body:       readTestdata(t, "stat1.xml"),
		},
		pandata.AcceptData + " " + url: {
			StatusCode: http.StatusOK,
			Header:     tsvHeader,
			Body:       readTestdata(t, "stat1.tsv"),
		},
		pandata.AcceptJSON + " " + def.TermsURL + "43972": {
			StatusCode: http.StatusOK,
			Body: []byte(`{"_source":{"name":"temperature",
				"main_topics":["Physics"],"topics":"Temperature"}}`),
		},
	}}

	orig := newFetcher
	newFetcher = func(config.PangaeaConfig) pandata.Fetcher { return f }
	t.Cleanup(func() { newFetcher = orig })
	return f
}

func run(t *testing.T, args ...string) (string, error) {
	cmd := getRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// TestGet_Summary verifies JSON summary of a loaded dataset.
func TestGet_Summary(t *testing.T) {
	setupCLI(t)
	out, err := run(t, "get", "10.1594/PANGAEA.100", "-f", "json")
	require.NoError(t, err)

	var s map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	assert.Equal(t, 100.0, s["id"])
	assert.Equal(t, "data-loaded", s["state"])
	assert.Equal(t, "Temperature at Stat1", s["title"])
	assert.Equal(t, "profile", s["geometry"])
	assert.Equal(t, 3.0, s["rows"])

	home, _ := os.UserHomeDir()
	_, err = os.Stat(filepath.Join(home, ".config", "pandata", "config.yaml"))
	assert.NoError(t, err, "bootstrap should write config.yaml")
}

// TestGet_Many verifies that summaries keep the order of arguments.
func TestGet_Many(t *testing.T) {
	setupCLI(t)
	out, err := run(t, "get", "100", "200", "-f", "json")
	require.NoError(t, err)

	var ss []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &ss))
	require.Len(t, ss, 2)
	assert.Equal(t, 100.0, ss[0]["id"])
	assert.Equal(t, "data-loaded", ss[0]["state"])
	assert.Equal(t, 200.0, ss[1]["id"])
	assert.Equal(t, "invalid", ss[1]["state"])
}

// TestGet_TSV verifies data output with merged quality codes.
func TestGet_TSV(t *testing.T) {
	setupCLI(t)
	out, err := run(t, "get", "100", "-f", "tsv", "--qc", "-l", "1")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	header := strings.Split(lines[0], "\t")
	assert.Equal(t, "Depth water", header[0])
	assert.Contains(t, header, "TEMP_QC")
	assert.Equal(t, []string{"1", "3.5", "3.6", "Stat1", "10", "20", "1", "0", "0", "0"},
		strings.Split(lines[1], "\t"))
}

// TestGet_Errors verifies rejected invocations.
func TestGet_Errors(t *testing.T) {
	setupCLI(t)
	_, err := run(t, "get", "100", "200", "-f", "tsv")
	assert.Error(t, err)

	_, err = run(t, "get", "not-an-id")
	assert.Error(t, err)

	_, err = run(t, "get", "100", "-f", "xml")
	assert.Error(t, err)
}

// TestGet_MetadataOnly verifies that no data is loaded with -m.
func TestGet_MetadataOnly(t *testing.T) {
	setupCLI(t)
	out, err := run(t, "get", "100", "-m", "-f", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "state: metadata-loaded")
	assert.Contains(t, out, "rows: 0")
}

// TestParams verifies the parameter table.
func TestParams(t *testing.T) {
	setupCLI(t)
	out, err := run(t, "params", "100")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "shortName\tname\tunit\ttype\tformat", lines[0])
	assert.True(t, strings.HasPrefix(lines[3], "TEMP_2\tTemperature, water"))
}

// TestEvents verifies the events table.
func TestEvents(t *testing.T) {
	setupCLI(t)
	out, err := run(t, "events", "100", "-f", "json")
	require.NoError(t, err)

	var evs []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &evs))
	require.Len(t, evs, 1)
	assert.Equal(t, "Stat1", evs[0]["label"])
	assert.Equal(t, 10.0, evs[0]["latitude"])
	assert.Equal(t, "PS121", evs[0]["campaign"])
}

// TestTerms verifies term classification through the cache.
func TestTerms(t *testing.T) {
	setupCLI(t)
	out, err := run(t, "terms", "43972", "-f", "tsv")
	require.NoError(t, err)
	assert.Equal(t, "43972\tPhysics\n43972\tTemperature\n", out)

	home, _ := os.UserHomeDir()
	_, err = os.Stat(filepath.Join(home, ".cache", "pandata", "terms.db"))
	assert.NoError(t, err)

	_, err = run(t, "terms", "0")
	assert.Error(t, err)
}

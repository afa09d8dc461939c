package dataset

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gnames/gnfmt"
	"github.com/gnames/pandata/pkg/matrix"
	"github.com/gnames/pandata/pkg/metadata"
	"github.com/gnames/pandata/pkg/model"
	"github.com/gnames/pandata/pkg/pandata"
)

// maxCollectionMembers is the page size of the collection query.
const maxCollectionMembers = 1000

func (d *Dataset) loadMetadata(ctx context.Context) error {
	resp, err := d.fetcher.Get(ctx, d.request(d.resourceURL(), pandata.AcceptMetadata))
	if err != nil {
		d.record(ctx, model.NewDiagnostic(slog.LevelError, model.CatHTTP,
			"metadata request failed: %v", err))
		d.state = StateInvalid
		return nil
	}

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		d.record(ctx, model.NewDiagnostic(slog.LevelError, model.CatNotFound,
			"dataset does not exist, 404: %d", d.ID))
		d.state = StateInvalid
		return nil
	default:
		d.record(ctx, model.NewDiagnostic(slog.LevelError, model.CatHTTP,
			"failed to retrieve metadata, response code %d", resp.StatusCode))
		d.state = StateInvalid
		return nil
	}

	md, err := metadata.Parse(resp.Body)
	if err != nil {
		cat := model.CatParse
		if md != nil {
			cat = model.CatMissingField
		}
		d.record(ctx, model.NewDiagnostic(slog.LevelError, cat,
			"failed to parse metadata: %v", err))
		d.state = StateInvalid
		return err
	}

	d.Meta = md
	if !md.IsValid() {
		status := md.Status
		if status == "" {
			status = "unknown"
		}
		d.record(ctx, model.NewDiagnostic(slog.LevelError, model.CatDeleted,
			"dataset is deleted or of unknown status: %s", status))
		d.state = StateInvalid
		return nil
	}

	d.Params = md.Params
	d.Events = md.Events
	for _, v := range md.DuplicateGeocodes {
		d.record(ctx, model.NewDiagnostic(slog.LevelWarn, model.CatDuplicateGeo,
			"dataset contains duplicate geocode %q, array export disabled", v))
	}
	d.expandTerms(ctx)
	d.Citation = citation(md)
	d.state = StateMetadataLoaded
	return nil
}

func (d *Dataset) loadData(ctx context.Context) {
	resp, err := d.fetcher.Get(ctx, d.request(d.resourceURL(), pandata.AcceptData))
	if err != nil {
		d.record(ctx, model.NewDiagnostic(slog.LevelError, model.CatHTTP,
			"data request failed: %v", err))
		return
	}

	switch resp.StatusCode {
	case http.StatusOK:
		if !strings.Contains(resp.ContentType(), "text") {
			d.record(ctx, model.NewDiagnostic(slog.LevelWarn, model.CatBinary,
				"dataset seems to be a binary file of type %q", resp.ContentType()))
			return
		}
	case http.StatusUnauthorized:
		msg := "data access failed, authorization failed"
		if d.cfg.Pangaea.AuthToken != "" {
			msg = "data access failed, invalid auth token"
		}
		d.record(ctx, model.NewDiagnostic(slog.LevelWarn, model.CatUnauthorized, "%s", msg))
		return
	case http.StatusNotAcceptable:
		d.record(ctx, model.NewDiagnostic(slog.LevelWarn, model.CatNoTabular,
			"data access failed, no tabular data available"))
		return
	case http.StatusNotFound:
		d.record(ctx, model.NewDiagnostic(slog.LevelWarn, model.CatNotFound,
			"data access failed, 404"))
		return
	default:
		d.record(ctx, model.NewDiagnostic(slog.LevelWarn, model.CatHTTP,
			"data access failed, response code %d", resp.StatusCode))
		return
	}

	opts := matrix.Options{
		DeleteFlag:      d.cfg.Dataset.DeleteFlag,
		AddEventColumns: d.cfg.Dataset.AddEventColumns,
		ParamList:       d.cfg.Dataset.ParamList,
	}
	res, err := matrix.New(d.Params, d.Events, opts).Load(resp.Body)
	for _, v := range res.Diagnostics {
		d.record(ctx, v)
	}
	d.Data = res.Data
	d.QC = res.QC
	if err != nil {
		d.record(ctx, model.NewDiagnostic(slog.LevelError, model.CatLoad,
			"loading data failed, reason: %v", err))
		return
	}
	d.state = StateDataLoaded
}

type searchResult struct {
	Results []struct {
		URI string `json:"URI"`
	} `json:"results"`
}

// setCollectionMembers asks the search service for member DOIs.
func (d *Dataset) setCollectionMembers(ctx context.Context) {
	q := url.Values{}
	q.Set("q", "incollection:"+strconv.Itoa(d.ID))
	q.Set("count", strconv.Itoa(maxCollectionMembers))
	u := d.cfg.Pangaea.SearchURL + "?" + q.Encode()

	resp, err := d.fetcher.Get(ctx, d.request(u, pandata.AcceptJSON))
	if err == nil && resp.StatusCode != http.StatusOK {
		err = decodeError(u, fmt.Errorf("%w %d", errStatus, resp.StatusCode))
	}
	var sr searchResult
	if err == nil {
		if derr := (gnfmt.GNjson{}).Decode(resp.Body, &sr); derr != nil {
			err = decodeError(u, derr)
		}
	}
	if err != nil {
		d.record(ctx, model.NewDiagnostic(slog.LevelWarn, model.CatCollectionQuery,
			"cannot list collection members: %v", err))
		return
	}

	for _, v := range sr.Results {
		if v.URI != "" {
			d.CollectionMembers = append(d.CollectionMembers, v.URI)
		}
	}
}

// citation composes "Authors (year): title. PANGAEA, URI".
func citation(md *metadata.Metadata) string {
	names := make([]string, 0, len(md.Authors))
	for _, a := range md.Authors {
		if n := a.FullName(); n != "" {
			names = append(names, n)
		}
	}
	prefix := strings.Join(names, "; ")
	if md.Year != "" {
		prefix = strings.TrimSpace(prefix + " (" + md.Year + ")")
	}

	var sb strings.Builder
	if prefix != "" {
		sb.WriteString(prefix + ": ")
	}
	sb.WriteString(md.Title)
	if !strings.HasSuffix(md.Title, ".") {
		sb.WriteString(".")
	}
	sb.WriteString(" PANGAEA")
	if md.URI != "" {
		sb.WriteString(", " + md.URI)
	}
	return sb.String()
}

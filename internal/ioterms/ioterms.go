// Package ioterms resolves term classification through the term web
// service. Responses are cached in a SQLite database, so every term is
// downloaded only once per cache.
package ioterms

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gnames/gnfmt"
	"github.com/gnames/gnsys"
	"github.com/gnames/pandata/pkg/pandata"
	_ "modernc.org/sqlite"
)

const createTerms = `CREATE TABLE IF NOT EXISTS terms (
	term_id integer PRIMARY KEY,
	term_name text,
	term_json text,
	entry_date datetime default current_timestamp
)`

// Resolver implements pandata.TermResolver.
type Resolver struct {
	db      *sql.DB
	url     string
	fetcher pandata.Fetcher
}

// Open opens or creates the cache at path. Terms that are not cached
// are requested from termsURL followed by the term ID.
func Open(path, termsURL string, fetcher pandata.Fetcher) (*Resolver, error) {
	if err := gnsys.MakeDir(filepath.Dir(path)); err != nil {
		return nil, CacheOpenError(path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, CacheOpenError(path, err)
	}
	// one writer, concurrent dataset loads share the cache
	db.SetMaxOpenConns(1)
	if _, err = db.Exec(createTerms); err != nil {
		db.Close()
		return nil, CacheOpenError(path, err)
	}

	res := Resolver{db: db, url: termsURL, fetcher: fetcher}
	return &res, nil
}

// Close closes the cache.
func (r *Resolver) Close() error {
	return r.db.Close()
}

// Classification returns main topics followed by topics of a term.
func (r *Resolver) Classification(ctx context.Context, termID int) ([]string, error) {
	body, err := r.cached(ctx, termID)
	if err != nil {
		return nil, err
	}
	if body != nil {
		src, err := decode(termID, body)
		if err != nil {
			return nil, err
		}
		return src.classification(), nil
	}

	src, err := r.download(ctx, termID)
	if err != nil {
		return nil, err
	}
	return src.classification(), nil
}

func (r *Resolver) cached(ctx context.Context, termID int) ([]byte, error) {
	var js string
	q := "SELECT term_json FROM terms WHERE term_id = ?"
	err := r.db.QueryRowContext(ctx, q, termID).Scan(&js)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, CacheQueryError(termID, err)
	}
	return []byte(js), nil
}

func (r *Resolver) download(ctx context.Context, termID int) (*termSource, error) {
	url := r.url + strconv.Itoa(termID)
	resp, err := r.fetcher.Get(ctx, pandata.Request{
		URL:    url,
		Accept: pandata.AcceptJSON,
	})
	if err != nil {
		return nil, LookupError(termID, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, LookupError(termID,
			fmt.Errorf("%s returned status %d", url, resp.StatusCode))
	}

	src, err := decode(termID, resp.Body)
	if err != nil {
		return nil, err
	}

	q := "INSERT OR REPLACE INTO terms (term_id, term_name, term_json) VALUES (?, ?, ?)"
	if _, err = r.db.ExecContext(ctx, q, termID, src.Name, string(resp.Body)); err != nil {
		return nil, CacheInsertError(termID, err)
	}
	slog.Debug("Cached term", "term_id", termID, "name", src.Name)
	return src, nil
}

func decode(termID int, body []byte) (*termSource, error) {
	var doc termDoc
	if err := (gnfmt.GNjson{}).Decode(body, &doc); err != nil {
		return nil, DecodeError(termID, err)
	}
	if doc.Source == nil {
		return nil, DecodeError(termID, errNoSource)
	}
	return doc.Source, nil
}

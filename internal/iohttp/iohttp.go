// Package iohttp implements pandata.Fetcher over net/http.
package iohttp

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	app "github.com/gnames/pandata/pkg"
	"github.com/gnames/pandata/pkg/config"
	"github.com/gnames/pandata/pkg/pandata"
)

// defaultRetryAfter is used when a 429 response has no usable
// Retry-After header.
const defaultRetryAfter = 30 * time.Second

type fetcher struct {
	client  *http.Client
	retries int
	agent   string
	sleep   func(context.Context, time.Duration) error
}

// New creates a Fetcher with the timeout and retries of the config.
func New(cfg config.PangaeaConfig) pandata.Fetcher {
	return &fetcher{
		client:  &http.Client{Timeout: time.Duration(cfg.TimeoutSec) * time.Second},
		retries: cfg.Retries,
		agent:   "pandata/" + app.Version,
		sleep:   sleep,
	}
}

// Get sends a GET request. A 429 response is repeated up to the
// configured number of retries after waiting for Retry-After seconds.
// Any other status is returned to the caller as is.
func (f *fetcher) Get(
	ctx context.Context,
	req pandata.Request,
) (*pandata.Response, error) {
	resp, err := f.get(ctx, req)
	for i := 0; err == nil && resp.StatusCode == http.StatusTooManyRequests &&
		i < f.retries; i++ {
		wait := retryAfter(resp.Header.Get("Retry-After"))
		slog.Warn("Received too many requests, waiting",
			"url", req.URL, "wait", wait.String())
		if err = f.sleep(ctx, wait); err != nil {
			return nil, RequestError(req.URL, err)
		}
		resp, err = f.get(ctx, req)
		if err == nil {
			slog.Info("Repeated request", "url", req.URL, "status", resp.StatusCode)
		}
	}
	return resp, err
}

func (f *fetcher) get(
	ctx context.Context,
	req pandata.Request,
) (*pandata.Response, error) {
	hreq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, nil)
	if err != nil {
		return nil, RequestError(req.URL, err)
	}
	hreq.Header.Set("User-Agent", f.agent)
	if req.Accept != "" {
		hreq.Header.Set("Accept", req.Accept)
	}
	if req.AuthToken != "" {
		hreq.Header.Set("Authorization", "Bearer "+req.AuthToken)
	}

	hresp, err := f.client.Do(hreq)
	if err != nil {
		return nil, RequestError(req.URL, err)
	}
	defer hresp.Body.Close()

	body, err := io.ReadAll(hresp.Body)
	if err != nil {
		return nil, ReadBodyError(req.URL, err)
	}
	return &pandata.Response{
		StatusCode: hresp.StatusCode,
		Header:     hresp.Header,
		Body:       body,
	}, nil
}

// retryAfter reads delay seconds. HTTP dates are not supported.
func retryAfter(s string) time.Duration {
	sec, err := strconv.Atoi(s)
	if err != nil || sec < 0 {
		return defaultRetryAfter
	}
	if sec == 0 {
		sec = 1
	}
	return time.Duration(sec) * time.Second
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

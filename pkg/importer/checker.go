package importer

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"
)

// Checker probes each contact source on a fixed interval and stores the
// outcome on the source row, so stale or moved feeds show up in
// `smartdial import` listings before an import fails.
type Checker struct {
	db    *SourceDB
	log   *slog.Logger
	every time.Duration
	http  *http.Client
}

func NewChecker(db *SourceDB, logger *slog.Logger, every time.Duration) *Checker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Checker{
		db:    db,
		log:   logger,
		every: every,
		http: &http.Client{
			Timeout: 30 * time.Second,
			// A redirect is reported as is; following it would hide a moved feed.
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// Start checks immediately, then every interval until ctx is done.
func (c *Checker) Start(ctx context.Context) {
	tick := time.NewTicker(c.every)
	defer tick.Stop()
	for {
		c.CheckAll(ctx)
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
		}
	}
}

// CheckAll probes every source once and returns how many answered and how
// many did not.
func (c *Checker) CheckAll(ctx context.Context) (up, down int) {
	sources, err := c.db.ListSources()
	if err != nil {
		c.log.Error("checker: list sources", "error", err)
		return 0, 0
	}

	for _, src := range sources {
		if ctx.Err() != nil {
			break
		}
		status, err := c.probe(ctx, src.SourceURL)
		var msg string
		if err != nil {
			msg = err.Error()
		}
		if err := c.db.UpdateCheck(src.ID, status, msg); err != nil {
			c.log.Error("checker: record status", "source", src.ID, "error", err)
		}
		if reachable(status) {
			up++
			continue
		}
		down++
		c.log.Warn("contact source down", "source", src.ID, "directory", src.DirectoryID, "status", status, "error", msg)
	}

	if len(sources) > 0 {
		c.log.Info("contact sources checked", "up", up, "down", down)
	}
	return up, down
}

func reachable(status int) bool { return status >= 200 && status < 400 }

// probe returns the status a source answers with, or 0 and an error when it
// cannot be reached. Local files answer 200 when they exist. Servers that
// refuse HEAD get a one-byte ranged GET instead.
func (c *Checker) probe(ctx context.Context, url string) (int, error) {
	if !isRemote(url) {
		if _, err := os.Stat(localPath(url)); err != nil {
			return 0, err
		}
		return http.StatusOK, nil
	}

	status, err := c.request(ctx, http.MethodHead, url)
	if err == nil && status == http.StatusMethodNotAllowed {
		status, err = c.request(ctx, http.MethodGet, url)
	}
	return status, err
}

func (c *Checker) request(ctx context.Context, method, url string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return 0, fmt.Errorf("%s %s: %w", method, url, err)
	}
	if method == http.MethodGet {
		req.Header.Set("Range", "bytes=0-0")
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%s %s: %w", method, url, err)
	}
	resp.Body.Close()
	return resp.StatusCode, nil
}

// Package corpus downloads the texts the searchers are compared on.
package corpus

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/cespare/xxhash/v2"
	"github.com/scottcagno/textsearch/pkg/generic/cache"
	"github.com/scottcagno/textsearch/pkg/logger"
	"golang.org/x/text/encoding/charmap"
)

var ErrEmptyURL = errors.New("corpus: empty url")

// StatusError is returned when the server answers with anything but 200 OK.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("corpus: GET %s: unexpected status %d %s",
		e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

// Text is a downloaded document decoded as ISO-8859-1, so every source byte
// is exactly one rune of Content.
type Text struct {
	URL         string
	Content     string
	Size        int    // raw bytes received
	Fingerprint uint64 // xxhash64 of the raw bytes
}

func (t *Text) String() string {
	return fmt.Sprintf("%s (%d bytes, xxh64 %016x)", t.URL, t.Size, t.Fingerprint)
}

// Fetcher is what the benchmark needs from a text source.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*Text, error)
}

// Loader fetches texts over HTTP and keeps the most recent ones in memory,
// so asking for the same url twice only downloads it once.
type Loader struct {
	client *http.Client
	texts  *cache.LRU[string, *Text]
	log    *logger.Logger
}

// NewLoader returns a Loader using client, or http.DefaultClient when client
// is nil. A nil log uses logger.DefaultLogger.
func NewLoader(client *http.Client, log *logger.Logger) *Loader {
	if client == nil {
		client = http.DefaultClient
	}
	if log == nil {
		log = logger.DefaultLogger
	}
	return &Loader{
		client: client,
		texts:  cache.NewLRU[string, *Text](cache.DefaultCapacity),
		log:    log,
	}
}

func (l *Loader) Fetch(ctx context.Context, url string) (*Text, error) {
	if url == "" {
		return nil, ErrEmptyURL
	}
	if t, ok := l.texts.Get(url); ok {
		l.log.Debugf("corpus: %s served from cache", url)
		return t, nil
	}
	raw, err := l.get(ctx, url)
	if err != nil {
		return nil, err
	}
	content, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return nil, fmt.Errorf("corpus: decoding %s: %w", url, err)
	}
	t := &Text{
		URL:         url,
		Content:     string(content),
		Size:        len(raw),
		Fingerprint: xxhash.Sum64(raw),
	}
	l.texts.Put(url, t)
	l.log.Infof("corpus: fetched %s", t)
	return t, nil
}

func (l *Loader) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("corpus: building request: %w", err)
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("corpus: GET %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode}
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("corpus: reading %s: %w", url, err)
	}
	return raw, nil
}

// Package source reads input lines from local files or remote URLs.
package source

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/op/go-logging"

	"bitbucket.org/Davydov/seqtools/store"
)

var log = logging.MustGetLogger("source")

// DefaultTimeout is the HTTP timeout used by NewFetcher.
const DefaultTimeout = 20 * time.Second

// ReadLines reads all the lines from a file; surrounding whitespace is
// removed from each line.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return SplitLines(f)
}

// SplitLines reads all the lines from a reader and trims them.
func SplitLines(rd io.Reader) (lines []string, err error) {
	scanner := bufio.NewScanner(rd)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	return lines, scanner.Err()
}

// Fetcher retrieves remote texts over HTTP.
type Fetcher struct {
	Client *http.Client
	// Cache is optional.
	Cache *store.Store
}

// NewFetcher creates a new Fetcher with the default timeout.
func NewFetcher(cache *store.Store) *Fetcher {
	return &Fetcher{
		Client: &http.Client{Timeout: DefaultTimeout},
		Cache:  cache,
	}
}

// FetchText returns the body of the document at url.
func (f *Fetcher) FetchText(ctx context.Context, url string) (string, error) {
	text, ok, err := f.Cache.Load(url)
	if err != nil {
		log.Warningf("Error reading cache for %s: %v", url, err)
	} else if ok {
		log.Infof("Using cached copy of %s", url)
		return text, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	log.Infof("Fetching %s", url)
	resp, err := f.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("fetching %s: %s", url, resp.Status)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", url, err)
	}
	text = string(b)

	// cache failure is not fatal
	_ = f.Cache.Save(url, text)
	return text, nil
}

// Fetch returns trimmed lines of the document at url.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]string, error) {
	text, err := f.FetchText(ctx, url)
	if err != nil {
		return nil, err
	}
	return SplitLines(strings.NewReader(text))
}

// Lines returns lines from url if it is not empty, and from the file
// at path otherwise.
func Lines(ctx context.Context, f *Fetcher, path, url string) ([]string, error) {
	if url != "" {
		if f == nil {
			f = NewFetcher(nil)
		}
		return f.Fetch(ctx, url)
	}
	if path == "" {
		return nil, errors.New("neither file nor url specified")
	}
	return ReadLines(path)
}

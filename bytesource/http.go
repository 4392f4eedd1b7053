package bytesource

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
)

// HTTPFetcher downloads an archive from a plain URL, transparently
// stripping a gzip envelope when the server sets Content-Encoding: gzip
// without the standard transport already having done so (common for
// statically-served archives on object storage mirrors).
type HTTPFetcher struct {
	URL    string
	Client *http.Client // defaults to http.DefaultClient when nil
}

// Fetch performs the GET request and returns the (ungzipped) body.
func (f *HTTPFetcher) Fetch(ctx context.Context) ([]byte, error) {
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return nil, &FetchError{Source: f.URL, Err: err}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &FetchError{Source: f.URL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{Source: f.URL, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	var body io.Reader = resp.Body
	if resp.Header.Get("Content-Encoding") == "gzip" {
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, &FetchError{Source: f.URL, Err: err}
		}
		defer gz.Close()
		body = gz
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, &FetchError{Source: f.URL, Err: err}
	}
	return data, nil
}

package bytesource

import (
	"compress/gzip"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPFetcher_PlainBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("archive-bytes"))
	}))
	defer srv.Close()

	f := &HTTPFetcher{URL: srv.URL}
	data, err := f.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "archive-bytes", string(data))
}

func TestHTTPFetcher_GzipEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Encoding", "gzip")
		gz := gzip.NewWriter(w)
		gz.Write([]byte("archive-bytes"))
		gz.Close()
	}))
	defer srv.Close()

	f := &HTTPFetcher{URL: srv.URL}
	data, err := f.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "archive-bytes", string(data))
}

func TestHTTPFetcher_NonOKStatusErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	f := &HTTPFetcher{URL: srv.URL}
	_, err := f.Fetch(context.Background())
	require.Error(t, err)
	var fe *FetchError
	assert.ErrorAs(t, err, &fe)
}

func TestHTTPFetcher_UnreachableHostErrors(t *testing.T) {
	f := &HTTPFetcher{URL: "http://127.0.0.1:0/unreachable"}
	_, err := f.Fetch(context.Background())
	require.Error(t, err)
}

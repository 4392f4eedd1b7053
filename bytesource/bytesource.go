// Package bytesource fetches whole Archive II payloads from the places they
// actually live: NOAA's realtime S3 chunk bucket, an NWS-style GCS bucket, or
// a plain HTTP(S) URL. None of it understands the archive format; it only
// produces the bytes archive2.Decode expects.
package bytesource

import (
	"context"
	"fmt"
)

// Fetcher retrieves one complete archive payload.
type Fetcher interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// FetchError wraps a transport-level failure (a failed S3/GCS/HTTP call)
// with the identity of the object that was being fetched.
type FetchError struct {
	Source string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("bytesource: fetching %s: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

package bytesource

import (
	"context"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// GCSFetcher downloads one complete archive object from a Google Cloud
// Storage bucket, the layout NOAA's public NEXRAD Level II mirror uses
// (one object per volume, unlike the chunked realtime S3 bucket).
type GCSFetcher struct {
	Bucket             string
	Object             string
	CredentialsFile    string // optional; anonymous access is used when empty
}

// Fetch downloads the object in full.
func (f *GCSFetcher) Fetch(ctx context.Context) ([]byte, error) {
	opts := []option.ClientOption{}
	if f.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(f.CredentialsFile))
	} else {
		opts = append(opts, option.WithoutAuthentication())
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, &FetchError{Source: f.source(), Err: err}
	}
	defer client.Close()

	r, err := client.Bucket(f.Bucket).Object(f.Object).NewReader(ctx)
	if err != nil {
		return nil, &FetchError{Source: f.source(), Err: err}
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &FetchError{Source: f.source(), Err: err}
	}
	return data, nil
}

func (f *GCSFetcher) source() string {
	return fmt.Sprintf("gs://%s/%s", f.Bucket, f.Object)
}

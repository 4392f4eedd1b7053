package bytesource

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/sirupsen/logrus"
)

const realtimeBucket = "unidata-nexrad-level2-chunks"

// S3Fetcher reassembles one realtime volume from NOAA's chunked S3 bucket:
// a numbered sequence of objects under "<site>/<volume>/" where the first
// chunk carries the volume header and the rest are appended compressed
// streams. Concatenating them in listing order reproduces one archive
// payload that archive2.Decode can deframe whole.
type S3Fetcher struct {
	Site   string
	Volume int
	Bucket string // defaults to realtimeBucket when empty
}

// Fetch lists and downloads every chunk of the requested volume, preserving
// object order, and returns them concatenated.
func (f *S3Fetcher) Fetch(ctx context.Context) ([]byte, error) {
	bucket := f.Bucket
	if bucket == "" {
		bucket = realtimeBucket
	}

	sess, err := session.NewSession(&aws.Config{
		Credentials: credentials.AnonymousCredentials,
		Region:      aws.String("us-east-1"),
	})
	if err != nil {
		return nil, &FetchError{Source: f.source(bucket), Err: err}
	}
	svc := s3.New(sess)

	listResp, err := svc.ListObjectsV2WithContext(ctx, &s3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
		Prefix: aws.String(fmt.Sprintf("%s/%d/", f.Site, f.Volume)),
	})
	if err != nil {
		return nil, &FetchError{Source: f.source(bucket), Err: err}
	}
	if len(listResp.Contents) == 0 {
		return nil, &FetchError{Source: f.source(bucket), Err: fmt.Errorf("no chunks for volume %d", f.Volume)}
	}

	chunks := make([][]byte, len(listResp.Contents))
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for i, obj := range listResp.Contents {
		wg.Add(1)
		go func(i int, key *string) {
			defer wg.Done()
			resp, err := svc.GetObjectWithContext(ctx, &s3.GetObjectInput{Bucket: aws.String(bucket), Key: key})
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				logrus.Warnf("bytesource: s3 chunk %s failed: %v", *key, err)
				return
			}
			defer resp.Body.Close()
			data, err := io.ReadAll(resp.Body)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}
			chunks[i] = data
		}(i, obj.Key)
	}
	wg.Wait()

	if chunks[0] == nil {
		return nil, &FetchError{Source: f.source(bucket), Err: fmt.Errorf("header chunk missing: %v", firstErr)}
	}

	var out bytes.Buffer
	for _, c := range chunks {
		out.Write(c)
	}
	return out.Bytes(), nil
}

func (f *S3Fetcher) source(bucket string) string {
	return fmt.Sprintf("s3://%s/%s/%d", bucket, f.Site, f.Volume)
}

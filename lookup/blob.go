package lookup

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sync"

	"gocloud.dev/blob"
)

// BlobLookerUpper is a LookerUpper for GeoJSON files stored in a gocloud.dev/blob bucket.
type BlobLookerUpper struct {
	LookerUpper
	bucket *blob.Bucket
}

// NewBlobLookerUpper returns a new BlobLookerUpper for the bucket URI 'uri'.
func NewBlobLookerUpper(ctx context.Context, uri string) (LookerUpper, error) {

	bucket, err := blob.OpenBucket(ctx, uri)

	if err != nil {
		return nil, fmt.Errorf("Failed to open bucket %s, %w", uri, err)
	}

	return NewBlobLookerUpperWithBucket(ctx, bucket)
}

// NewBlobLookerUpperWithBucket returns a new BlobLookerUpper for 'bucket'.
func NewBlobLookerUpperWithBucket(ctx context.Context, bucket *blob.Bucket) (LookerUpper, error) {

	l := &BlobLookerUpper{
		bucket: bucket,
	}

	return l, nil
}

// Append reads every .geojson file in the bucket and dispatches it to each of 'append_funcs'.
func (l *BlobLookerUpper) Append(ctx context.Context, lu *sync.Map, append_funcs ...AppendLookupFunc) error {

	iter := l.bucket.List(nil)

	for {

		select {
		case <-ctx.Done():
			return nil
		default:
			// pass
		}

		obj, err := iter.Next(ctx)

		if err == io.EOF {
			break
		}

		if err != nil {
			return err
		}

		if filepath.Ext(obj.Key) != ".geojson" {
			continue
		}

		body, err := l.bucket.ReadAll(ctx, obj.Key)

		if err != nil {
			return fmt.Errorf("Failed to read %s, %w", obj.Key, err)
		}

		for _, f := range append_funcs {

			err := f(ctx, lu, bytes.NewReader(body))

			if err != nil {
				return fmt.Errorf("Failed to append %s, %w", obj.Key, err)
			}
		}
	}

	return nil
}

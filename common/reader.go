package common

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/whosonfirst/go-reader/v2"
	"github.com/whosonfirst/go-whosonfirst-uri"
)

var readers = make(map[string]reader.Reader)
var readers_mu = new(sync.RWMutex)

// NewReader returns a whosonfirst/go-reader.Reader instance for 'reader_uri'. Instances are cached in memory, keyed
// by URI, for repeat lookups.
func NewReader(ctx context.Context, reader_uri string) (reader.Reader, error) {

	readers_mu.RLock()
	r, ok := readers[reader_uri]
	readers_mu.RUnlock()

	if ok {
		return r, nil
	}

	readers_mu.Lock()
	defer readers_mu.Unlock()

	r, ok = readers[reader_uri]

	if ok {
		return r, nil
	}

	r, err := reader.NewReader(ctx, reader_uri)

	if err != nil {
		return nil, fmt.Errorf("Failed to create reader for '%s', %w", reader_uri, err)
	}

	readers[reader_uri] = r
	return r, nil
}

// ReadFeature returns the body of the Who's On First feature 'id' from 'r'.
func ReadFeature(ctx context.Context, r reader.Reader, id int64) ([]byte, error) {

	rel_path, err := uri.Id2RelPath(id)

	if err != nil {
		return nil, fmt.Errorf("Failed to derive rel path for ID %d, %w", id, err)
	}

	fh, err := r.Read(ctx, rel_path)

	if err != nil {
		return nil, fmt.Errorf("Failed to read %s, %w", rel_path, err)
	}

	defer fh.Close()

	body, err := io.ReadAll(fh)

	if err != nil {
		return nil, fmt.Errorf("Failed to read body for %s, %w", rel_path, err)
	}

	return body, nil
}

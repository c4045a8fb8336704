// Package gather crawls a gocloud.dev/blob bucket for images and XMP sidecar files and derives a
// placemark.Record for each of them.
package gather

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sfomuseum/go-media-placemark/common"
	"github.com/sfomuseum/go-media-placemark/placemark"
	"github.com/sfomuseum/go-media-placemark/xmp"
	"gocloud.dev/blob"
)

// XMP_MIMETYPE is the mimetype assigned to standalone XMP files.
const XMP_MIMETYPE = "application/rdf+xml"

// GatherResponse is the result of processing a single file.
type GatherResponse struct {
	Path        string                 `json:"path"`
	MimeType    string                 `json:"mimetype"`
	Fingerprint string                 `json:"fingerprint"`
	ImageHashes []*common.ImageHashRsp `json:"imagehashes,omitempty"`
	Record      placemark.Record       `json:"record"`
}

// GatherCallbackFunc is a custom function invoked for each GatherResponse.
type GatherCallbackFunc func(context.Context, *GatherResponse) error

// GatherOptions defines options for gathering records.
type GatherOptions struct {
	// The function invoked for each successfully processed file.
	Callback GatherCallbackFunc
	// Derive perceptual hashes for images.
	HashImages bool
	// Options used to derive each placemark.Record.
	RecordOptions *placemark.RecordOptions
	// An optional map of fingerprints (see the lookup package) for files that should be skipped.
	Lookup *sync.Map
	// The maximum number of files processed concurrently. Defaults to 10.
	Workers int
}

// Gather processes every image and XMP file in 'bucket' invoking 'cb' for each.
func Gather(ctx context.Context, bucket *blob.Bucket, cb GatherCallbackFunc) error {

	opts := &GatherOptions{
		Callback: cb,
	}

	return GatherWithOptions(ctx, bucket, opts)
}

// GatherWithOptions processes every image and XMP file in 'bucket'. Failures for individual files are
// logged and do not stop the crawl; errors listing the bucket are returned.
func GatherWithOptions(ctx context.Context, bucket *blob.Bucket, opts *GatherOptions) error {

	if opts == nil || opts.Callback == nil {
		return fmt.Errorf("Missing gather callback")
	}

	workers := opts.Workers

	if workers <= 0 {
		workers = 10
	}

	throttle := make(chan bool, workers)
	path_ch := make(chan string)
	err_ch := make(chan error, 1)

	go func() {
		defer close(path_ch)
		err_ch <- Crawl(ctx, bucket, path_ch)
	}()

	wg := new(sync.WaitGroup)

	for path := range path_ch {

		throttle <- true
		wg.Add(1)

		go func(path string) {

			defer func() {
				<-throttle
				wg.Done()
			}()

			logger := slog.Default()
			logger = logger.With("path", path)

			rsp, err := GatherResponseWithPath(ctx, bucket, path, opts)

			if err != nil {
				logger.Warn("Failed to process file", "error", err)
				return
			}

			if rsp == nil {
				return
			}

			err = opts.Callback(ctx, rsp)

			if err != nil {
				logger.Error("Failed to execute callback", "error", err)
			}

		}(path)
	}

	wg.Wait()
	return <-err_ch
}

// Crawl iterates through all the items stored in 'bucket' dispatching each key to 'path_ch'.
func Crawl(ctx context.Context, bucket *blob.Bucket, path_ch chan<- string) error {

	var list func(context.Context, string) error

	list = func(ctx context.Context, prefix string) error {

		iter := bucket.List(&blob.ListOptions{
			Delimiter: "/",
			Prefix:    prefix,
		})

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
				return fmt.Errorf("Failed to list %s, %w", prefix, err)
			}

			if obj.IsDir {

				err := list(ctx, obj.Key)

				if err != nil {
					return err
				}

				continue
			}

			path_ch <- obj.Key
		}

		return nil
	}

	return list(ctx, "")
}

// MimeType returns the mimetype for 'path' and a boolean flag signaling whether it is a file that may carry
// metadata (an image or an XMP file).
func MimeType(path string) (string, bool) {

	ext := strings.ToLower(filepath.Ext(path))

	if ext == ".xmp" {
		return XMP_MIMETYPE, true
	}

	t := mime.TypeByExtension(ext)

	if !strings.HasPrefix(t, "image/") {
		return "", false
	}

	return t, true
}

// GatherResponseWithPath processes the file at 'path' in 'bucket'. It returns nil (and no error) for files
// that are neither images nor XMP files, or whose fingerprint is present in opts.Lookup.
func GatherResponseWithPath(ctx context.Context, bucket *blob.Bucket, path string, opts *GatherOptions) (*GatherResponse, error) {

	t, ok := MimeType(path)

	if !ok {
		return nil, nil
	}

	if strings.HasPrefix(filepath.Base(path), "thumbnail") {
		return nil, nil
	}

	fp, err := common.FingerprintFile(ctx, bucket, path)

	if err != nil {
		return nil, err
	}

	if opts.Lookup != nil {

		_, exists := opts.Lookup.Load(fp)

		if exists {
			slog.Debug("Skip file with known fingerprint", "path", path, "fingerprint", fp)
			return nil, nil
		}
	}

	r, err := bucket.NewReader(ctx, path, nil)

	if err != nil {
		return nil, fmt.Errorf("Failed to open %s, %w", path, err)
	}

	defer r.Close()

	g, err := xmp.ReadGraph(r, path)

	if err != nil {
		return nil, err
	}

	rec, err := placemark.NewRecord(g, opts.RecordOptions)

	if err != nil {
		return nil, fmt.Errorf("Failed to derive record for %s, %w", path, err)
	}

	rsp := &GatherResponse{
		Path:        path,
		MimeType:    t,
		Fingerprint: fp,
		Record:      rec,
	}

	if opts.HashImages && t != XMP_MIMETYPE {

		hashes, err := common.ImageHashes(ctx, bucket, path)

		if err != nil {
			return nil, err
		}

		rsp.ImageHashes = hashes
	}

	return rsp, nil
}

package common

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"sync"

	"github.com/corona10/goimagehash"
	"gocloud.dev/blob"
)

// ImageHashRsp is a struct representing the results of an image hashing operation.
type ImageHashRsp struct {
	// String label describing the image hashing procedure used.
	Approach string `json:"approach"`
	// The hexidecimal hash of an image.
	Hash string `json:"hash"`
}

// IMAGEHASH_APPROACHES are the image hashing procedures applied by ImageHashes.
var IMAGEHASH_APPROACHES = []string{
	"avg",
	"diff",
}

// ImageHashes returns perceptual hashes, using the corona10/goimagehash package, for the image stored at
// 'im_path' in 'bucket'. Failures for individual approaches are logged and skipped.
func ImageHashes(ctx context.Context, bucket *blob.Bucket, im_path string) ([]*ImageHashRsp, error) {

	r, err := bucket.NewReader(ctx, im_path, nil)

	if err != nil {
		return nil, fmt.Errorf("Failed to create reader for %s, %w", im_path, err)
	}

	defer r.Close()

	im, _, err := image.Decode(r)

	if err != nil {
		return nil, fmt.Errorf("Failed to decode image from %s, %w", im_path, err)
	}

	logger := slog.Default()
	logger = logger.With("path", im_path)

	hashes := make([]*ImageHashRsp, 0)
	mu := new(sync.Mutex)
	wg := new(sync.WaitGroup)

	for _, a := range IMAGEHASH_APPROACHES {

		wg.Add(1)

		go func(a string) {

			defer wg.Done()

			rsp, err := imageHash(ctx, im, a)

			if err != nil {
				logger.Error("Failed to derive image hash", "approach", a, "error", err)
				return
			}

			if rsp == nil {
				return
			}

			mu.Lock()
			hashes = append(hashes, rsp)
			mu.Unlock()

		}(a)
	}

	wg.Wait()
	return hashes, nil
}

func imageHash(ctx context.Context, im image.Image, approach string) (*ImageHashRsp, error) {

	select {
	case <-ctx.Done():
		return nil, nil
	default:
		// pass
	}

	var h *goimagehash.ImageHash
	var err error

	switch approach {
	case "avg":
		h, err = goimagehash.AverageHash(im)
	case "diff":
		h, err = goimagehash.DifferenceHash(im)
	case "perception":
		h, err = goimagehash.PerceptionHash(im)
	default:
		return nil, fmt.Errorf("Unknown approach '%s'", approach)
	}

	if err != nil {
		return nil, fmt.Errorf("Failed to process image hash appoach '%s', %w", approach, err)
	}

	rsp := &ImageHashRsp{
		Approach: approach,
		Hash:     h.ToString(),
	}

	return rsp, nil
}

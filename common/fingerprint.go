package common

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"

	"gocloud.dev/blob"
)

// FingerprintFile returns the hex-encoded SHA-1 hash of the object at 'path' in 'bucket'.
func FingerprintFile(ctx context.Context, bucket *blob.Bucket, path string) (string, error) {

	fh, err := bucket.NewReader(ctx, path, nil)

	if err != nil {
		return "", fmt.Errorf("Failed to open %s for fingerprinting, %w", path, err)
	}

	defer fh.Close()

	return Fingerprint(fh)
}

// Fingerprint returns the hex-encoded SHA-1 hash of the contents of 'r'.
func Fingerprint(r io.Reader) (string, error) {

	h := sha1.New()

	_, err := io.Copy(h, r)

	if err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

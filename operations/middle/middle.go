// Package middle provides methods for selecting a representative file from a directory of files.
package middle

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"gocloud.dev/blob"
)

// NoDataError is returned when a directory contains no files with the requested extension.
type NoDataError struct {
	Extension string
	Prefix    string
}

func (e *NoDataError) Error() string {
	return fmt.Sprintf("No %s files in %s", e.Extension, e.Prefix)
}

// MiddleFileWithExtension returns the key of the middle file, in sorted order, of the files ending in "."+ext
// directly inside 'prefix' in 'bucket'. Thumbnails (files whose name starts with "thumbnail") are ignored.
func MiddleFileWithExtension(ctx context.Context, bucket *blob.Bucket, prefix string, ext string) (string, error) {

	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix = prefix + "/"
	}

	suffix := "." + strings.TrimLeft(ext, ".")

	iter := bucket.List(&blob.ListOptions{
		Delimiter: "/",
		Prefix:    prefix,
	})

	keys := make([]string, 0)

	for {

		obj, err := iter.Next(ctx)

		if err == io.EOF {
			break
		}

		if err != nil {
			return "", fmt.Errorf("Failed to list %s, %w", prefix, err)
		}

		if obj.IsDir {
			continue
		}

		if !strings.HasSuffix(obj.Key, suffix) {
			continue
		}

		if strings.HasPrefix(filepath.Base(obj.Key), "thumbnail") {
			continue
		}

		keys = append(keys, obj.Key)
	}

	if len(keys) == 0 {
		return "", &NoDataError{Extension: strings.TrimLeft(ext, "."), Prefix: prefix}
	}

	sort.Strings(keys)
	return keys[len(keys)/2], nil
}

// MiddleXMPFile returns the key of the middle XMP file directly inside 'prefix' in 'bucket'.
func MiddleXMPFile(ctx context.Context, bucket *blob.Bucket, prefix string) (string, error) {
	return MiddleFileWithExtension(ctx, bucket, prefix, "xmp")
}

// placemark is a command line tool to derive normalized time, position and bearing records for the images and
// XMP files in one or more gocloud.dev/blob buckets, emitting each as a line of JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"sync"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "gocloud.dev/blob/fileblob"

	"github.com/sfomuseum/go-media-placemark/lookup"
	"github.com/sfomuseum/go-media-placemark/operations/gather"
	"github.com/sfomuseum/go-media-placemark/placemark"
	"github.com/sfomuseum/go-media-placemark/settings"
	"gocloud.dev/blob"
)

func main() {

	settings_path := flag.String("settings", "", "The path to a settings YAML file. If empty the default time zone is UTC.")
	hash_images := flag.Bool("hash-images", false, "Derive perceptual hashes for images.")
	lookup_uri := flag.String("lookup", "", "An optional gocloud.dev/blob URI of existing media features. Files whose fingerprint matches a feature are skipped.")
	workers := flag.Int("workers", 10, "The maximum number of files to process concurrently.")
	verbose := flag.Bool("verbose", false, "Enable verbose (debug) logging.")

	flag.Parse()

	if *verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	ctx := context.Background()

	s := settings.Default()

	if *settings_path != "" {

		loaded, err := settings.Load(*settings_path)

		if err != nil {
			log.Fatalf("Failed to load settings, %v", err)
		}

		s = loaded
	}

	opts := &gather.GatherOptions{
		HashImages: *hash_images,
		Workers:    *workers,
		RecordOptions: &placemark.RecordOptions{
			TimeZone: s.Location(),
		},
	}

	if *lookup_uri != "" {

		l, err := lookup.NewBlobLookerUpper(ctx, *lookup_uri)

		if err != nil {
			log.Fatalf("Failed to create lookup, %v", err)
		}

		lu, err := lookup.NewLookupMap(ctx, []lookup.LookerUpper{l}, []lookup.AppendLookupFunc{lookup.FingerprintAppendLookupFunc})

		if err != nil {
			log.Fatalf("Failed to populate lookup, %v", err)
		}

		opts.Lookup = lu
	}

	mu := new(sync.Mutex)
	enc := json.NewEncoder(os.Stdout)

	opts.Callback = func(ctx context.Context, rsp *gather.GatherResponse) error {

		mu.Lock()
		defer mu.Unlock()

		err := enc.Encode(rsp)

		if err != nil {
			return fmt.Errorf("Failed to encode %s, %w", rsp.Path, err)
		}

		return nil
	}

	for _, uri := range flag.Args() {

		slog.Debug("Gather records", "bucket", uri)

		bucket, err := blob.OpenBucket(ctx, uri)

		if err != nil {
			log.Fatalf("Failed to open %s, %v", uri, err)
		}

		err = gather.GatherWithOptions(ctx, bucket, opts)

		bucket.Close()

		if err != nil {
			log.Fatalf("Failed to gather records for %s, %v", uri, err)
		}
	}
}

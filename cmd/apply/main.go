// apply is a command line tool to derive a placemark record from an image or XMP file and apply it to an existing
// Who's On First media feature.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"

	_ "gocloud.dev/blob/fileblob"

	"github.com/sfomuseum/go-media-placemark/operations/middle"
	"github.com/sfomuseum/go-media-placemark/operations/update"
	"github.com/sfomuseum/go-media-placemark/placemark"
	"github.com/sfomuseum/go-media-placemark/settings"
	"github.com/sfomuseum/go-media-placemark/xmp"
	"github.com/whosonfirst/go-whosonfirst-export/v3"
	"gocloud.dev/blob"
)

func main() {

	settings_path := flag.String("settings", "", "The path to a settings YAML file. If empty the default time zone is UTC.")
	source_uri := flag.String("source", "", "A valid gocloud.dev/blob URI where the image or XMP file is stored.")
	path := flag.String("path", "", "The path, relative to -source, of the image or XMP file. If it ends in \"/\" the middle XMP file in that directory is used.")
	data_source := flag.String("data-source", "", "A valid whosonfirst/go-reader (and go-writer) URI for the media feature. \"%s\" is replaced by -repo.")
	repo := flag.String("repo", "", "The name of the repository the media feature is stored in.")
	id := flag.Int64("id", 0, "The ID of the media feature to update.")
	dryrun := flag.Bool("dryrun", false, "Go through the motions but don't write the feature.")
	flag.Parse()

	ctx := context.Background()

	s := settings.Default()

	if *settings_path != "" {

		loaded, err := settings.Load(*settings_path)

		if err != nil {
			log.Fatalf("Failed to load settings, %v", err)
		}

		s = loaded
	}

	bucket, err := blob.OpenBucket(ctx, *source_uri)

	if err != nil {
		log.Fatalf("Failed to open %s, %v", *source_uri, err)
	}

	defer bucket.Close()

	key := *path

	if key == "" || key[len(key)-1] == '/' {

		k, err := middle.MiddleXMPFile(ctx, bucket, key)

		if err != nil {
			log.Fatalf("Failed to derive middle XMP file, %v", err)
		}

		key = k
	}

	r, err := bucket.NewReader(ctx, key, nil)

	if err != nil {
		log.Fatalf("Failed to open %s, %v", key, err)
	}

	g, err := xmp.ReadGraph(r, key)

	r.Close()

	if err != nil {
		log.Fatalf("Failed to read metadata for %s, %v", key, err)
	}

	rec, err := placemark.NewRecord(g, &placemark.RecordOptions{TimeZone: s.Location()})

	if err != nil {
		log.Fatalf("Failed to derive record for %s, %v", key, err)
	}

	ex, err := export.NewExporter(ctx, "whosonfirst://")

	if err != nil {
		log.Fatalf("Failed to create exporter, %v", err)
	}

	u, err := update.NewUpdater(*data_source, ex)

	if err != nil {
		log.Fatalf("Failed to create updater, %v", err)
	}

	u.Dryrun = *dryrun

	req := &update.UpdateRequest{
		Id:     *id,
		Repo:   *repo,
		Record: rec,
	}

	err = u.Update(ctx, req)

	if err != nil {
		log.Fatalf("Failed to update feature, %v", err)
	}

	slog.Info("Applied record", "id", *id, "path", key)
}

package lookup

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/tidwall/gjson"
)

// AppendLookupFunc is a function that adds zero or more entries, derived from a GeoJSON feature, to a lookup table.
type AppendLookupFunc func(context.Context, *sync.Map, io.Reader) error

// PropertyAppendLookupFunc returns an AppendLookupFunc that maps the value at 'path' to the feature's wof:id.
// Features missing either value are skipped. A value that is already present in the table is an error.
func PropertyAppendLookupFunc(path string) AppendLookupFunc {

	fn := func(ctx context.Context, lu *sync.Map, r io.Reader) error {

		body, err := io.ReadAll(r)

		if err != nil {
			return err
		}

		id_rsp := gjson.GetBytes(body, "properties.wof:id")

		if !id_rsp.Exists() {
			slog.Debug("Feature is missing wof:id, skipping")
			return nil
		}

		value_rsp := gjson.GetBytes(body, path)

		if !value_rsp.Exists() {
			return nil
		}

		key := value_rsp.String()
		id := id_rsp.Int()

		existing, exists := lu.LoadOrStore(key, id)

		if exists && existing.(int64) != id {
			return fmt.Errorf("Existing key for %s (%s), %d and %d", path, key, existing, id)
		}

		return nil
	}

	return fn
}

// FingerprintAppendLookupFunc maps properties.media:fingerprint to wof:id.
var FingerprintAppendLookupFunc = PropertyAppendLookupFunc("properties.media:fingerprint")

// ImageHashAppendLookupFunc maps properties.media:imagehash_avg to wof:id.
var ImageHashAppendLookupFunc = PropertyAppendLookupFunc("properties.media:imagehash_avg")

package media

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/sfomuseum/go-media-placemark/operations/gather"
	"github.com/sfomuseum/go-media-placemark/placemark"
	"github.com/whosonfirst/go-whosonfirst-feature/properties"
	"github.com/whosonfirst/go-whosonfirst-id"
	"github.com/whosonfirst/go-whosonfirst-placetypes"
)

// type Coordinates stores a single longitude, latitude coordinate pair.
type Coordinates []float64

// type Geometry stores a GeoJSON geometry dictionary.
type Geometry struct {
	Type        string      `json:"type"`
	Coordinates Coordinates `json:"coordinates"`
}

// type Properties stores a GeoJSON properties dictionary.
type Properties map[string]interface{}

// type Feature provides a GeoJSON struct.
type Feature struct {
	Type       string     `json:"type"`
	Properties Properties `json:"properties"`
	Geometry   Geometry   `json:"geometry"`
}

// NewMediaFeatureNameFunc is a function for manipulating an input name in to a final name to be assigned to a feature's wof:name property.
type NewMediaFeatureNameFunc func(string) (string, error)

// NewMediaFeatureOptions is a struct containing application-specific options used in the create of new media-related GeoJSON Features.
type NewMediaFeatureOptions struct {
	// The name of the repository that this feature will be stored in.
	Repo string
	// An optional NewMediaFeatureNameFunc for deriving the final wof:name property assigned to the new feature.
	NameFunction NewMediaFeatureNameFunc
	// An optional string label for a WOF placetype. If present the IDs for that placetype and its descendants, in the
	// hierarchies of the depicted feature, are added to wof:depicts.
	DepictsPlacetype string
	// Custom properties to assign to the new Feature
	CustomProperties map[string]interface{}
}

// NewMediaFeature creates a new media GeoJSON Feature for 'rsp' depicting the feature in 'depicts'.
func NewMediaFeature(ctx context.Context, rsp *gather.GatherResponse, depicts []byte, opts *NewMediaFeatureOptions) ([]byte, error) {

	pr, err := id.NewProvider(ctx)

	if err != nil {
		return nil, err
	}

	return NewMediaFeatureWithProvider(ctx, pr, rsp, depicts, opts)
}

// NewMediaFeatureWithProvider creates a new media GeoJSON Feature for 'rsp' depicting the feature in 'depicts', using
// a custom id.Provider. The feature is positioned at the depicted feature's centroid, and marked as approximate, unless
// the record in 'rsp' has a latitude and longitude.
func NewMediaFeatureWithProvider(ctx context.Context, pr id.Provider, rsp *gather.GatherResponse, depicts []byte, opts *NewMediaFeatureOptions) ([]byte, error) {

	if opts.Repo == "" {
		return nil, errors.New("Missing wof:repo")
	}

	centroid, _, err := properties.Centroid(depicts)

	if err != nil {
		return nil, fmt.Errorf("Failed to derive centroid, %w", err)
	}

	geom := Geometry{
		Type: "Point",
		Coordinates: Coordinates{
			centroid.X(),
			centroid.Y(),
		},
	}

	depicts_id, err := properties.Id(depicts)

	if err != nil {
		return nil, fmt.Errorf("Failed to derive ID, %w", err)
	}

	depicts_name, err := properties.Name(depicts)

	if err != nil {
		return nil, fmt.Errorf("Failed to derive name, %w", err)
	}

	source_geom, err := properties.Source(depicts)

	if err != nil {
		return nil, fmt.Errorf("Failed to derive source, %w", err)
	}

	hierarchies := properties.Hierarchies(depicts)
	country := properties.Country(depicts)

	wof_id, err := pr.NewID(ctx)

	if err != nil {
		return nil, fmt.Errorf("Failed to create new ID, %w", err)
	}

	wof_name := depicts_name

	if opts.NameFunction != nil {

		name, err := opts.NameFunction(depicts_name)

		if err != nil {
			return nil, err
		}

		wof_name = name
	}

	depicts_ids, err := depictsIds(depicts_id, hierarchies, opts.DepictsPlacetype)

	if err != nil {
		return nil, err
	}

	props := Properties{
		"wof:id":            wof_id,
		"wof:name":          wof_name,
		"wof:repo":          opts.Repo,
		"wof:placetype":     "media",
		"wof:parent_id":     depicts_id,
		"wof:country":       country,
		"wof:depicts":       depicts_ids,
		"wof:hierarchy":     hierarchies,
		"iso:country":       country,
		"src:geom":          source_geom,
		"edtf:inception":    properties.Inception(depicts),
		"edtf:cessation":    properties.Cessation(depicts),
		"media:source":      "unknown",
		"media:medium":      "image",
		"media:mimetype":    rsp.MimeType,
		"media:fingerprint": rsp.Fingerprint,
		"mz:is_approximate": 1,
	}

	for _, h := range rsp.ImageHashes {
		k := fmt.Sprintf("media:imagehash_%s", h.Approach)
		props[k] = h.Hash
	}

	for k, v := range opts.CustomProperties {
		props[k] = v
	}

	f := &Feature{
		Type:       "Feature",
		Geometry:   geom,
		Properties: props,
	}

	enc_f, err := json.Marshal(f)

	if err != nil {
		return nil, fmt.Errorf("Failed to marshal feature, %w", err)
	}

	if rsp.Record == nil {
		return enc_f, nil
	}

	return placemark.ApplyToFeature(enc_f, rsp.Record)
}

func depictsIds(depicts_id int64, hierarchies []map[string]int64, placetype string) ([]int64, error) {

	seen := map[int64]bool{
		depicts_id: true,
	}

	if placetype != "" {

		pt, err := placetypes.GetPlacetypeByName(placetype)

		if err != nil {
			return nil, fmt.Errorf("Invalid placetype '%s', %w", placetype, err)
		}

		roles := []string{
			"common",
			"optional",
			"common_optional",
		}

		for _, d := range placetypes.DescendantsForRoles(pt, roles) {

			k := fmt.Sprintf("%s_id", d.Name)

			for _, hier := range hierarchies {

				id, ok := hier[k]

				if ok {
					seen[id] = true
				}
			}
		}
	}

	ids := make([]int64, 0, len(seen))

	for id := range seen {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

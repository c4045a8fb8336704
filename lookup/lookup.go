// Package lookup builds in-memory lookup tables, of property values to Who's On First IDs, from collections
// of GeoJSON features. They are used to skip media files that have already been processed.
package lookup

import (
	"context"
	"fmt"
	"sync"
)

// LookerUpper is the interface for sources of GeoJSON features used to populate a lookup table.
type LookerUpper interface {
	// Append dispatches the body of every feature in the source to each AppendLookupFunc.
	Append(context.Context, *sync.Map, ...AppendLookupFunc) error
}

// NewLookupMap returns a new lookup table populated, concurrently, from each of 'looker_uppers'.
func NewLookupMap(ctx context.Context, looker_uppers []LookerUpper, append_funcs []AppendLookupFunc) (*sync.Map, error) {

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lu := new(sync.Map)

	err_ch := make(chan error, len(looker_uppers))
	wg := new(sync.WaitGroup)

	for _, l := range looker_uppers {

		wg.Add(1)

		go func(l LookerUpper) {

			defer wg.Done()

			err := l.Append(ctx, lu, append_funcs...)

			if err != nil {
				err_ch <- err
				cancel()
			}

		}(l)
	}

	wg.Wait()
	close(err_ch)

	err, ok := <-err_ch

	if ok {
		return nil, fmt.Errorf("Failed to populate lookup table, %w", err)
	}

	return lu, nil
}

// Package update applies placemark records to existing Who's On First media features.
package update

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/sfomuseum/go-media-placemark/common"
	"github.com/sfomuseum/go-media-placemark/placemark"
	"github.com/tidwall/gjson"
	"github.com/whosonfirst/go-ioutil"
	"github.com/whosonfirst/go-whosonfirst-export/v3"
	"github.com/whosonfirst/go-whosonfirst-uri"
)

// Updater reads Who's On First media features, applies placemark records to them and writes them back.
type Updater struct {
	// A valid whosonfirst/go-reader (and go-writer) URI. If it contains "%s" it is replaced by each request's repo.
	DataSource string
	// An optional whosonfirst/go-whosonfirst-export Exporter applied to each updated feature before it is written.
	Exporter export.Exporter
	// Log writes rather than performing them.
	Dryrun bool
	mu     *sync.Mutex
}

// UpdateRequest defines a single record to apply to a feature.
type UpdateRequest struct {
	Id     int64            `json:"id"`
	Repo   string           `json:"repo"`
	Record placemark.Record `json:"record"`
}

// NewUpdater returns a new Updater for 'data_source'.
func NewUpdater(data_source string, ex export.Exporter) (*Updater, error) {

	if data_source == "" {
		return nil, fmt.Errorf("Missing data source")
	}

	u := &Updater{
		DataSource: data_source,
		Exporter:   ex,
		Dryrun:     false,
		mu:         new(sync.Mutex),
	}

	return u, nil
}

// Update applies each request concurrently. Every request is attempted; the errors for failed requests are
// combined in to a single error.
func (u *Updater) Update(ctx context.Context, requests ...*UpdateRequest) error {

	type updateError struct {
		Id    int64
		Error error
	}

	err_ch := make(chan updateError, len(requests))
	wg := new(sync.WaitGroup)

	for _, req := range requests {

		wg.Add(1)

		go func(req *UpdateRequest) {

			defer wg.Done()

			select {
			case <-ctx.Done():
				return
			default:
				// pass
			}

			err := u.update(ctx, req)

			if err != nil {
				err_ch <- updateError{Id: req.Id, Error: err}
				return
			}

			slog.Info("Updated feature", "id", req.Id)
		}(req)
	}

	wg.Wait()
	close(err_ch)

	error_msgs := make([]string, 0)

	for e := range err_ch {
		slog.Error("Failed to update feature", "id", e.Id, "error", e.Error)
		error_msgs = append(error_msgs, fmt.Sprintf("%d: %v", e.Id, e.Error))
	}

	if len(error_msgs) > 0 {
		return fmt.Errorf("One or more update errors: %s", strings.Join(error_msgs, ";"))
	}

	return nil
}

func (u *Updater) update(ctx context.Context, req *UpdateRequest) error {

	rel_path, err := uri.Id2RelPath(req.Id)

	if err != nil {
		return fmt.Errorf("Failed to derive rel path for ID %d, %w", req.Id, err)
	}

	source := u.DataSource

	if strings.Contains(source, "%s") {
		source = fmt.Sprintf(source, req.Repo)
	}

	rdr, err := common.NewReader(ctx, source)

	if err != nil {
		return err
	}

	wr, err := common.NewWriter(ctx, source)

	if err != nil {
		return err
	}

	// writers backed by a single (git) checkout are not safe for concurrent writes

	u.mu.Lock()
	defer u.mu.Unlock()

	body, err := common.ReadFeature(ctx, rdr, req.Id)

	if err != nil {
		return err
	}

	body, err = UpdateFeature(body, req.Id, req.Record)

	if err != nil {
		return err
	}

	if u.Exporter != nil {

		_, body, err = u.Exporter.Export(ctx, body)

		if err != nil {
			return fmt.Errorf("Failed to export %s, %w", rel_path, err)
		}
	}

	if u.Dryrun {
		slog.Info("[dryrun] write feature here", "path", rel_path)
		return nil
	}

	br := bytes.NewReader(body)
	out, err := ioutil.NewReadSeekCloser(br)

	if err != nil {
		return err
	}

	_, err = wr.Write(ctx, rel_path, out)

	if err != nil {
		return fmt.Errorf("Failed to write %s, %w", rel_path, err)
	}

	return nil
}

// UpdateFeature applies 'rec' to the feature in 'body' after confirming that its wof:id matches 'id'.
func UpdateFeature(body []byte, id int64, rec placemark.Record) ([]byte, error) {

	id_rsp := gjson.GetBytes(body, "properties.wof:id")

	if !id_rsp.Exists() {
		return nil, fmt.Errorf("Missing properties.wof:id")
	}

	if id_rsp.Int() != id {
		return nil, fmt.Errorf("Unexpected wof:id %d, expected %d", id_rsp.Int(), id)
	}

	body, err := placemark.ApplyToFeature(body, rec)

	if err != nil {
		return nil, fmt.Errorf("Failed to apply record to %d, %w", id, err)
	}

	return body, nil
}

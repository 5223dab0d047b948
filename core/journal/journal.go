package journal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"ingredient-manager/core/ingredient/itemstack"
	"ingredient-manager/core/objectstore"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// Record describes one committed transfer.
type Record struct {
	ID          string          `json:"id"`
	Time        time.Time       `json:"time"`
	RayID       string          `json:"ray_id,omitempty"`
	Source      string          `json:"source"`
	Destination string          `json:"destination"`
	Mode        string          `json:"mode"`
	Moved       itemstack.Stack `json:"moved"`
}

// Journal appends and lists transfer records.
type Journal struct {
	client objectstore.Client
	bucket string
	cfg    Config
	now    func() time.Time
	sf     singleflight.Group
}

// New creates a journal writing to bucket.
func New(client objectstore.Client, bucket string, cfg Config) *Journal {
	if cfg.Prefix == "" {
		cfg.Prefix = "journal"
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 8
	}
	return &Journal{
		client: client,
		bucket: bucket,
		cfg:    cfg,
		now:    time.Now,
	}
}

// Enabled reports whether records are persisted.
func (j *Journal) Enabled() bool {
	return j != nil && j.client != nil && j.cfg.Enabled
}

// Append stores rec, filling in its ID and Time when unset.
func (j *Journal) Append(ctx context.Context, rec Record) (Record, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.Time.IsZero() {
		rec.Time = j.now().UTC()
	}
	if !j.Enabled() {
		return rec, nil
	}

	body, err := json.Marshal(rec)
	if err != nil {
		return rec, fmt.Errorf("failed to encode journal record: %w", err)
	}

	_, err = j.client.PutObject(ctx, j.bucket, j.objectName(rec), bytes.NewReader(body), int64(len(body)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return rec, fmt.Errorf("failed to write journal record %s: %w", rec.ID, err)
	}
	return rec, nil
}

// List returns up to limit records, newest first. Concurrent calls with the
// same limit share one listing, which runs without the first caller's
// cancellation so that one abandoned request does not fail the others.
func (j *Journal) List(ctx context.Context, limit int) ([]Record, error) {
	if !j.Enabled() || limit <= 0 {
		return []Record{}, nil
	}

	v, err, _ := j.sf.Do(strconv.Itoa(limit), func() (any, error) {
		return j.list(context.WithoutCancel(ctx), limit)
	})
	if err != nil {
		return nil, err
	}
	return slices.Clone(v.([]Record)), nil
}

func (j *Journal) list(ctx context.Context, limit int) ([]Record, error) {
	var objects []minio.ObjectInfo
	for obj := range j.client.ListObjects(ctx, j.bucket, minio.ListObjectsOptions{
		Prefix:    j.cfg.Prefix + "/",
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list journal: %w", obj.Err)
		}
		if strings.HasSuffix(obj.Key, ".json") {
			objects = append(objects, obj)
		}
	}

	slices.SortFunc(objects, func(a, b minio.ObjectInfo) int {
		return b.LastModified.Compare(a.LastModified)
	})
	if len(objects) > limit {
		objects = objects[:limit]
	}

	records := make([]Record, len(objects))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(j.cfg.Concurrency)
	for i, obj := range objects {
		g.Go(func() error {
			rec, err := j.read(gctx, obj.Key)
			if err != nil {
				return err
			}
			records[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.SortStableFunc(records, func(a, b Record) int {
		return b.Time.Compare(a.Time)
	})
	return records, nil
}

func (j *Journal) read(ctx context.Context, key string) (Record, error) {
	reader, err := j.client.GetObject(ctx, j.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return Record{}, fmt.Errorf("failed to read journal record %s: %w", key, err)
	}
	defer reader.Close()

	var rec Record
	if err := json.NewDecoder(reader).Decode(&rec); err != nil {
		return Record{}, fmt.Errorf("failed to decode journal record %s: %w", key, err)
	}
	return rec, nil
}

func (j *Journal) objectName(rec Record) string {
	return fmt.Sprintf("%s/%s/%s.json", j.cfg.Prefix, rec.Time.UTC().Format("2006/01/02"), rec.ID)
}

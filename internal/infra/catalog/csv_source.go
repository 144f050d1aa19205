// Package catalog reads the bootstrap game catalog from a blob bucket.
package catalog

import (
	"context"
	"encoding/csv"
	"io"
	"log/slog"
	"strings"

	"gamehub/config"
	"gamehub/internal/domain/entity"
	"gamehub/internal/domain/service"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
)

// Expected CSV format: Name,Platform,Year,Genre,Publisher,... with a header row
const (
	colName      = 0
	colPlatform  = 1
	colGenre     = 3
	colPublisher = 4
	minColumns   = 6
)

// CSVSource reads catalog records from one CSV object.
type CSVSource struct {
	open   func(ctx context.Context) (*blob.Bucket, error)
	key    string
	logger *slog.Logger
}

// NewCSVSource reads key from the bucket at bucketURL, opened on every Read.
func NewCSVSource(bucketURL, key string, logger *slog.Logger) *CSVSource {
	return &CSVSource{
		open: func(ctx context.Context) (*blob.Bucket, error) {
			return blob.OpenBucket(ctx, bucketURL)
		},
		key:    key,
		logger: logger,
	}
}

// NewCSVSourceFromBucket reads key from an already opened bucket. The bucket stays open.
func NewCSVSourceFromBucket(bucket *blob.Bucket, key string, logger *slog.Logger) *CSVSource {
	return &CSVSource{
		open: func(context.Context) (*blob.Bucket, error) {
			return blob.PrefixedBucket(bucket, ""), nil
		},
		key:    key,
		logger: logger,
	}
}

// NewCatalogSource is the fx provider; it yields nil when no bucket is configured.
func NewCatalogSource(cfg *config.Config, logger *slog.Logger) service.CatalogSource {
	if cfg.Catalog == nil || cfg.Catalog.BucketURL == "" {
		return nil
	}

	return NewCSVSource(cfg.Catalog.BucketURL, cfg.Catalog.Key, logger)
}

// Read returns at most maxLines records; maxLines <= 0 reads everything.
// Rows with fewer than six columns are skipped.
func (s *CSVSource) Read(ctx context.Context, maxLines int) ([]service.CatalogRecord, error) {
	bucket, err := s.open(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open catalog bucket")
	}
	defer bucket.Close()

	r, err := bucket.NewReader(ctx, s.key, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open catalog %s", s.key)
	}
	defer r.Close()

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	// Skip header row
	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}

		return nil, errors.WithStack(err)
	}

	var records []service.CatalogRecord
	lineNum, skipped := 1, 0

	for maxLines <= 0 || len(records) < maxLines {
		row, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return nil, errors.Wrapf(readErr, "invalid catalog format at line %d", lineNum+1)
		}
		lineNum++

		if len(row) < minColumns || strings.TrimSpace(strings.Join(row, "")) == "" {
			skipped++

			continue
		}

		records = append(records, parseRecord(row))
	}

	s.logger.InfoContext(ctx, "Catalog read",
		slog.String("key", s.key),
		slog.Int("records", len(records)),
		slog.Int("skipped", skipped),
	)

	return records, nil
}

func parseRecord(row []string) service.CatalogRecord {
	return service.CatalogRecord{
		Name:      strings.TrimSpace(strings.ReplaceAll(row[colName], `"`, "")),
		Platform:  entity.ParsePlatform(row[colPlatform]),
		Genre:     entity.ParseGenre(row[colGenre]),
		Publisher: strings.TrimSpace(strings.ReplaceAll(row[colPublisher], `"`, "")),
	}
}

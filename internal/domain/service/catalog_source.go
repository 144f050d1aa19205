package service

import (
	"context"

	"gamehub/internal/domain/entity"
)

// CatalogRecord is one row of the bootstrap catalog.
type CatalogRecord struct {
	Name      string
	Platform  entity.Platform
	Genre     entity.Genre
	Publisher string
}

// CatalogSource reads the bootstrap game catalog.
type CatalogSource interface {
	// Read returns at most maxLines records; maxLines <= 0 reads everything.
	Read(ctx context.Context, maxLines int) ([]CatalogRecord, error)
}

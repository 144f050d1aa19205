// Package migrations embeds the SQL schema of each service.
package migrations

import (
	"embed"
	"io/fs"

	"gamehub/internal/domain/constants"

	"github.com/pkg/errors"
)

//go:embed distributor/*.sql
var distributorFS embed.FS

//go:embed publisher/*.sql
var publisherFS embed.FS

// ForService returns the migration files of service, rooted at the migration directory.
func ForService(service string) (fs.FS, error) {
	switch service {
	case constants.ServiceDistributor:
		return fs.Sub(distributorFS, "distributor")
	case constants.ServicePublisher:
		return fs.Sub(publisherFS, "publisher")
	default:
		return nil, errors.Errorf("no migrations for service %q", service)
	}
}

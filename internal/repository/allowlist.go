package repository

import (
	"context"

	"github.com/eslsoft/allowdns/pkg/allowlist"
)

// AllowlistRepository supplies raw, not yet normalized allow-list entries.
type AllowlistRepository interface {
	List(ctx context.Context) ([]allowlist.Entry, error)
}

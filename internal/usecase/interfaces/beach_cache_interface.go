package interfaces

import (
	"context"

	"beachrent/internal/domain/entities"
)

// IBeachCache is a TTL'd cache for the beach catalog. A (nil, nil) read
// means cache miss.
type IBeachCache interface {
	GetBeaches(ctx context.Context) ([]entities.Beach, error)
	SetBeaches(ctx context.Context, beaches []entities.Beach) error
}

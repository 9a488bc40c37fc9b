package out

import (
	"context"

	"github.com/wyc-thg/broker/internal/domain"
)

// FilterLoader loads the relay accept rules.
type FilterLoader interface {
	Load(ctx context.Context) (domain.FilterSet, error)
}

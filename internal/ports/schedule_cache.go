package ports

import (
	"context"
	"bed-scheduler-service/internal/domain"
)

// Contract for storing computed allocations by request key.
type ScheduleCache interface {
	// Return the cached allocation and whether it was found.
	Get(ctx context.Context, key string) (*domain.Allocation, bool, error)
	Put(ctx context.Context, key string, alloc *domain.Allocation) error
}

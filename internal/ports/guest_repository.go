package ports

import (
	"context"
	"bed-scheduler-service/internal/domain"
)

// Port: a boundary for retrieving Guest stays from a data source.
type GuestRepository interface {
	// Retrieve all guests waiting for a bed.
	ListGuests(ctx context.Context) ([]domain.Guest, error)
}

// Optional extension of GuestRepository that filters by date window.
type GuestWindowRepository interface {
	GuestRepository
	// Return guests whose whole stay falls within [from, to].
	ListGuestsInWindow(ctx context.Context, from, to int) ([]domain.Guest, error)
}

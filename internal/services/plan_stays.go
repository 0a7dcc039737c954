package services

import (
	"bed-scheduler-service/internal/domain"
	"bed-scheduler-service/internal/platform/obs"
	"bed-scheduler-service/internal/ports"
	"cmp"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"log"
	"slices"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/singleflight"
)

// Window restricts planning to guests staying entirely within [From, To].
type Window struct {
	From int
	To   int
}

type PlanStaysRequest struct {
	BedCount int
	Strategy string
	Window   *Window
	// Guests, when non-nil, replaces the repository as the guest source.
	Guests []domain.Guest
	// MaxGraphGuests caps the input size for the graph strategy; 0 disables the cap.
	MaxGraphGuests int
}

// CachedPlanner runs allocations behind a cache and collapses concurrent
// identical requests into a single computation.
// The planner is safe for concurrent use.
type CachedPlanner struct {
	cache ports.ScheduleCache
	group singleflight.Group
}

// NewCachedPlanner returns a planner; cache may be nil to disable caching.
func NewCachedPlanner(cache ports.ScheduleCache) *CachedPlanner {
	return &CachedPlanner{cache: cache}
}

// Allocate returns the allocation for the given guests, reading and filling
// the cache when one is configured. Cache failures are logged, not returned.
func (p *CachedPlanner) Allocate(
	ctx context.Context,
	bedCount int,
	guests []domain.Guest,
	planner RoundPlanner,
) (_ *domain.Allocation, err error) {
	defer obs.Time(ctx, "schedule.Allocate")(&err)

	if planner == nil {
		return nil, errors.New("cached planner: planner must not be nil")
	}

	// Reject bad input before it can reach the cache.
	if err := domain.ValidateRequest(bedCount, guests); err != nil {
		return nil, fmt.Errorf("cached planner: %w", err)
	}

	key := AllocationKey(planner.Name(), bedCount, guests)

	v, err, _ := p.group.Do(key, func() (any, error) {
		if p.cache != nil {
			alloc, ok, cerr := p.cache.Get(ctx, key)
			if cerr != nil {
				log.Printf("schedule cache get failed: key=%s err=%v", key, cerr)
			} else if ok {
				return alloc, nil
			}
		}

		alloc, aerr := AllocateBeds(bedCount, guests, planner)
		if aerr != nil {
			return nil, aerr
		}

		if p.cache != nil {
			if cerr := p.cache.Put(ctx, key, alloc); cerr != nil {
				log.Printf("schedule cache put failed: key=%s err=%v", key, cerr)
			}
		}
		return alloc, nil
	})
	if err != nil {
		return nil, fmt.Errorf("cached planner: %w", err)
	}

	return v.(*domain.Allocation), nil
}

// AllocationKey derives a stable cache key from the strategy, bed count and
// guest set. Guest order does not change the key.
func AllocationKey(strategy string, bedCount int, guests []domain.Guest) string {
	sorted := slices.Clone(guests)
	slices.SortFunc(sorted, func(a, b domain.Guest) int { return cmp.Compare(a.GuestID, b.GuestID) })

	h := xxhash.New()
	_, _ = h.WriteString(strategy)

	var buf [8]byte
	writeInt := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(int64(v)))
		_, _ = h.Write(buf[:])
	}

	writeInt(bedCount)
	for _, g := range sorted {
		writeInt(g.GuestID)
		writeInt(g.Start)
		writeInt(g.End)
	}

	return "schedule:" + strategy + ":" + strconv.FormatUint(h.Sum64(), 16)
}

// PlanStays loads guests and computes the bed allocation for them.
//
// Inline guests take precedence over the repository. A window is pushed down
// to the repository when it supports GuestWindowRepository and is applied in
// memory otherwise.
func PlanStays(
	ctx context.Context,
	req PlanStaysRequest,
	repo ports.GuestRepository,
	planner *CachedPlanner,
) (*domain.Allocation, error) {
	if planner == nil {
		return nil, errors.New("plan stays: planner must not be nil")
	}

	strategy, err := PlannerByName(req.Strategy)
	if err != nil {
		return nil, fmt.Errorf("plan stays: %w", err)
	}

	if req.Window != nil && req.Window.From > req.Window.To {
		return nil, &domain.ValidationError{
			Code:    domain.CodeInvalidInterval,
			Message: fmt.Sprintf("window start %d must not be after end %d", req.Window.From, req.Window.To),
		}
	}

	guests := req.Guests
	if guests == nil {
		if repo == nil {
			return nil, errors.New("plan stays: no guests given and no repository configured")
		}

		guests, err = loadGuests(ctx, repo, req.Window)
		if err != nil {
			return nil, fmt.Errorf("plan stays: %w", err)
		}
	} else if req.Window != nil {
		guests = filterWindow(guests, *req.Window)
	}

	if strategy.Name() == StrategyGraph && req.MaxGraphGuests > 0 && len(guests) > req.MaxGraphGuests {
		return nil, &domain.ValidationError{
			Code:    domain.CodeTooManyGuests,
			Message: fmt.Sprintf("graph strategy accepts at most %d guests, got %d", req.MaxGraphGuests, len(guests)),
		}
	}

	alloc, err := planner.Allocate(ctx, req.BedCount, guests, strategy)
	if err != nil {
		return nil, fmt.Errorf("plan stays: %w", err)
	}
	return alloc, nil
}

func loadGuests(ctx context.Context, repo ports.GuestRepository, w *Window) ([]domain.Guest, error) {
	if w == nil {
		guests, err := repo.ListGuests(ctx)
		if err != nil {
			return nil, fmt.Errorf("list guests: %w", err)
		}
		return guests, nil
	}

	if wr, ok := repo.(ports.GuestWindowRepository); ok {
		guests, err := wr.ListGuestsInWindow(ctx, w.From, w.To)
		if err != nil {
			return nil, fmt.Errorf("list guests in window [%d, %d]: %w", w.From, w.To, err)
		}
		return guests, nil
	}

	guests, err := repo.ListGuests(ctx)
	if err != nil {
		return nil, fmt.Errorf("list guests: %w", err)
	}
	return filterWindow(guests, *w), nil
}

func filterWindow(guests []domain.Guest, w Window) []domain.Guest {
	out := make([]domain.Guest, 0, len(guests))
	for _, g := range guests {
		if g.Start >= w.From && g.End <= w.To {
			out = append(out, g)
		}
	}
	return out
}

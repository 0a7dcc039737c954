package services

import (
	"context"
	"bed-scheduler-service/internal/domain"
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type memRepo struct {
	guests      []domain.Guest
	windowCalls int
}

func (m *memRepo) ListGuests(context.Context) ([]domain.Guest, error) { return m.guests, nil }

type windowRepo struct{ memRepo }

func (w *windowRepo) ListGuestsInWindow(_ context.Context, from, to int) ([]domain.Guest, error) {
	w.windowCalls++
	return filterWindow(w.guests, Window{From: from, To: to}), nil
}

type countingCache struct {
	mu   sync.Mutex
	data map[string]*domain.Allocation
	gets int
	puts int
	err  error
}

func newCountingCache() *countingCache {
	return &countingCache{data: map[string]*domain.Allocation{}}
}

func (c *countingCache) Get(_ context.Context, key string) (*domain.Allocation, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	if c.err != nil {
		return nil, false, c.err
	}
	a, ok := c.data[key]
	return a, ok, nil
}

func (c *countingCache) Put(_ context.Context, key string, a *domain.Allocation) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.puts++
	if c.err != nil {
		return c.err
	}
	c.data[key] = a
	return nil
}

func TestPlanStaysUsesRepositoryAndCache(t *testing.T) {
	repo := &memRepo{guests: guests(overlapping...)}
	c := newCountingCache()
	planner := NewCachedPlanner(c)
	ctx := context.Background()

	req := PlanStaysRequest{BedCount: 2, Strategy: StrategyGraph}

	first, err := PlanStays(ctx, req, repo, planner)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := PlanStays(ctx, req, repo, planner)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if diff := cmp.Diff([][]int{{1, 2, 4, 5}, {3}}, bedGuestIDs(first.Beds)); diff != "" {
		t.Fatalf("schedules mismatch (-want +got):\n%s", diff)
	}
	if first != second {
		t.Fatalf("second call should be served from cache")
	}
	if c.puts != 1 || c.gets != 2 {
		t.Fatalf("cache gets=%d puts=%d, want 2 and 1", c.gets, c.puts)
	}
}

func TestPlanStaysCacheFailureIsNotFatal(t *testing.T) {
	c := newCountingCache()
	c.err = errors.New("cache down")

	alloc, err := PlanStays(context.Background(), PlanStaysRequest{
		BedCount: 1,
		Guests:   guests([3]int{1, 1, 2}),
	}, nil, NewCachedPlanner(c))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if alloc.HostedCount() != 1 {
		t.Fatalf("hosted = %d, want 1", alloc.HostedCount())
	}
}

func TestPlanStaysWindow(t *testing.T) {
	in := guests(overlapping...)
	want := [][]int{{2, 4}, {3}}
	req := PlanStaysRequest{BedCount: 2, Strategy: StrategyEarliestFinish, Window: &Window{From: 5, To: 11}}

	wr := &windowRepo{memRepo{guests: in}}
	alloc, err := PlanStays(context.Background(), req, wr, NewCachedPlanner(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if wr.windowCalls != 1 {
		t.Fatalf("window query not pushed down")
	}
	if diff := cmp.Diff(want, bedGuestIDs(alloc.Beds)); diff != "" {
		t.Fatalf("window repo mismatch (-want +got):\n%s", diff)
	}

	// Plain repositories are filtered in memory.
	alloc, err = PlanStays(context.Background(), req, &memRepo{guests: in}, NewCachedPlanner(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(want, bedGuestIDs(alloc.Beds)); diff != "" {
		t.Fatalf("plain repo mismatch (-want +got):\n%s", diff)
	}
}

func TestPlanStaysValidation(t *testing.T) {
	ctx := context.Background()
	planner := NewCachedPlanner(nil)

	_, err := PlanStays(ctx, PlanStaysRequest{Window: &Window{From: 5, To: 1}, Guests: []domain.Guest{}}, nil, planner)
	if !domain.IsValidationError(err) {
		t.Fatalf("expected validation error for inverted window, got %v", err)
	}

	_, err = PlanStays(ctx, PlanStaysRequest{
		BedCount:       1,
		Strategy:       StrategyGraph,
		MaxGraphGuests: 2,
		Guests:         guests(overlapping...),
	}, nil, planner)
	if !domain.IsValidationError(err) {
		t.Fatalf("expected validation error for oversized graph input, got %v", err)
	}

	if _, err := PlanStays(ctx, PlanStaysRequest{Strategy: "random", Guests: []domain.Guest{}}, nil, planner); err == nil {
		t.Fatalf("expected error for unknown strategy")
	}
	if _, err := PlanStays(ctx, PlanStaysRequest{BedCount: 1}, nil, planner); err == nil {
		t.Fatalf("expected error without guests or repository")
	}
}

func TestAllocationKeyIgnoresGuestOrder(t *testing.T) {
	a := guests([3]int{1, 1, 5}, [3]int{2, 5, 9})
	b := guests([3]int{2, 5, 9}, [3]int{1, 1, 5})

	if AllocationKey(StrategyGraph, 2, a) != AllocationKey(StrategyGraph, 2, b) {
		t.Fatalf("key depends on guest order")
	}
	big := guests([3]int{math.MaxInt, 1, 5}, [3]int{-1, 5, 9})
	bigReversed := guests([3]int{-1, 5, 9}, [3]int{math.MaxInt, 1, 5})
	if AllocationKey(StrategyGraph, 1, big) != AllocationKey(StrategyGraph, 1, bigReversed) {
		t.Fatalf("key depends on order of extreme guest ids")
	}

	if AllocationKey(StrategyGraph, 2, a) == AllocationKey(StrategyGraph, 3, a) {
		t.Fatalf("key ignores bed count")
	}
	if AllocationKey(StrategyGraph, 2, a) == AllocationKey(StrategyEarliestFinish, 2, a) {
		t.Fatalf("key ignores strategy")
	}
}

func TestCachedPlannerConcurrentCallers(t *testing.T) {
	c := newCountingCache()
	planner := NewCachedPlanner(c)
	in := guests(overlapping...)

	var wg sync.WaitGroup
	results := make([]*domain.Allocation, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			a, err := planner.Allocate(context.Background(), 2, in, GraphPlanner{})
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			results[i] = a
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		if r == nil || r.HostedCount() != 5 {
			t.Fatalf("unexpected allocation: %+v", r)
		}
	}
	if c.puts < 1 {
		t.Fatalf("allocation never cached")
	}
}

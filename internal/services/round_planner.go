package services

import (
	"bed-scheduler-service/internal/domain"
	"cmp"
	"fmt"
	"slices"
)

const (
	StrategyGraph          = "graph"
	StrategyEarliestFinish = "earliest_finish"
)

// RoundPlanner picks the stays for a single bed from the remaining guests.
// The returned stays must reference distinct guests that do not overlap.
type RoundPlanner interface {
	Name() string
	PlanRound(guests []domain.Guest) ([]domain.Stay, error)
}

// GraphPlanner searches every sequence of stays through the date graph.
// Runtime is exponential in the number of distinct dates.
type GraphPlanner struct{}

func (GraphPlanner) Name() string { return StrategyGraph }

func (GraphPlanner) PlanRound(guests []domain.Guest) ([]domain.Stay, error) {
	entry, graph, err := BuildDateGraph(guests)
	if err != nil {
		return nil, fmt.Errorf("graph planner: %w", err)
	}

	stays, err := LongestPath(entry, graph)
	if err != nil {
		return nil, fmt.Errorf("graph planner: %w", err)
	}
	return stays, nil
}

// EarliestFinishPlanner selects a maximum set of non-overlapping stays by
// repeatedly taking the guest that leaves first.
// Every guest counts the same, which is what makes the greedy choice optimal.
type EarliestFinishPlanner struct{}

func (EarliestFinishPlanner) Name() string { return StrategyEarliestFinish }

func (EarliestFinishPlanner) PlanRound(guests []domain.Guest) ([]domain.Stay, error) {
	byEnd := slices.Clone(guests)
	slices.SortFunc(byEnd, func(a, b domain.Guest) int {
		return cmp.Or(
			cmp.Compare(a.End, b.End),
			cmp.Compare(a.Start, b.Start),
			cmp.Compare(a.GuestID, b.GuestID),
		)
	})

	stays := make([]domain.Stay, 0, len(byEnd))
	taken := false
	lastEnd := 0
	for _, g := range byEnd {
		if taken && g.Start < lastEnd {
			continue
		}
		stays = append(stays, domain.Occupied(g.GuestID))
		lastEnd = g.End
		taken = true
	}

	return stays, nil
}

// Resolve a planner from its configured name.
func PlannerByName(name string) (RoundPlanner, error) {
	switch name {
	case "", StrategyGraph:
		return GraphPlanner{}, nil
	case StrategyEarliestFinish:
		return EarliestFinishPlanner{}, nil
	default:
		return nil, fmt.Errorf("planner by name: unknown strategy %q", name)
	}
}

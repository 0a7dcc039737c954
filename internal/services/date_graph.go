package services

import (
	"bed-scheduler-service/internal/domain"
	"cmp"
	"errors"
	"slices"
)

// Edge leads from one date to a later date through a single Stay.
type Edge struct {
	Target int
	Stay   domain.Stay
}

// DateGraph maps every known date to its outgoing edges.
// Edges always point to a strictly later date, so the graph is acyclic.
type DateGraph struct {
	dates []int
	edges map[int][]Edge
}

// Return the distinct dates in ascending order.
func (g *DateGraph) Dates() []int { return slices.Clone(g.dates) }

func (g *DateGraph) Edges(date int) []Edge { return g.edges[date] }

// Report whether a known date has no outgoing edge.
func (g *DateGraph) Terminal(date int) bool { return len(g.edges[date]) == 0 }

// Build the graph of possible stay sequences for a single bed.
//
// Every guest contributes an Occupied edge from its start date to its end date.
// A date that no guest ends on (other than the entry date) cannot be reached
// through a guest, so it is bridged with a Vacant edge from the preceding date.
// The returned entry date is the earliest date across all guests.
func BuildDateGraph(guests []domain.Guest) (int, *DateGraph, error) {
	if len(guests) == 0 {
		return 0, nil, errors.New("build date graph: guest list must not be empty")
	}

	dates := make([]int, 0, 2*len(guests))
	endDates := make(map[int]struct{}, len(guests))
	for _, g := range guests {
		dates = append(dates, g.Start, g.End)
		endDates[g.End] = struct{}{}
	}
	slices.Sort(dates)
	dates = slices.Compact(dates)

	// Every date is a key so lookups during traversal are always defined.
	edges := make(map[int][]Edge, len(dates))
	for _, d := range dates {
		edges[d] = nil
	}

	byStart := slices.Clone(guests)
	slices.SortFunc(byStart, func(a, b domain.Guest) int {
		return cmp.Or(
			cmp.Compare(a.Start, b.Start),
			cmp.Compare(a.End, b.End),
			cmp.Compare(a.GuestID, b.GuestID),
		)
	})
	for _, g := range byStart {
		edges[g.Start] = append(edges[g.Start], Edge{Target: g.End, Stay: domain.Occupied(g.GuestID)})
	}

	entry := dates[0]
	for i := 1; i < len(dates); i++ {
		d := dates[i]
		if _, ok := endDates[d]; ok {
			continue
		}
		prev := dates[i-1]
		edges[prev] = append(edges[prev], Edge{Target: d, Stay: domain.Vacant()})
	}

	return entry, &DateGraph{dates: dates, edges: edges}, nil
}

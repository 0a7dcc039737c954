package services

import (
	"bed-scheduler-service/internal/domain"
	"fmt"
)

// pathFrame is one partial path on the exploration stack.
type pathFrame struct {
	date    int
	guests  []int
	lastEnd int
}

// Find the path from entry to a terminal date that hosts the most guests.
//
// Every path is explored with an explicit stack, so memory grows with the
// number of distinct dates rather than the goroutine stack. Vacant edges are
// followed but do not appear in the result.
//
// Ties are broken by the earliest end of the last hosted guest, then by the
// lexicographically smallest guest id sequence.
func LongestPath(entry int, graph *DateGraph) ([]domain.Stay, error) {
	if graph == nil {
		return nil, fmt.Errorf("longest path: graph is nil")
	}
	if _, ok := graph.edges[entry]; !ok {
		return nil, fmt.Errorf("longest path: entry date %d is not in the graph", entry)
	}

	var best *pathFrame
	stack := []pathFrame{{date: entry, lastEnd: entry}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		out := graph.edges[top.date]
		if len(out) == 0 {
			if best == nil || betterPath(top, *best) {
				candidate := top
				best = &candidate
			}
			continue
		}

		// Push in reverse so edges are explored in their stored order.
		for i := len(out) - 1; i >= 0; i-- {
			e := out[i]
			if _, ok := graph.edges[e.Target]; !ok {
				return nil, fmt.Errorf("longest path: edge %d -> %d leaves the graph", top.date, e.Target)
			}

			next := pathFrame{date: e.Target, guests: top.guests, lastEnd: top.lastEnd}
			if id, ok := e.Stay.GuestID(); ok {
				next.guests = append(append(make([]int, 0, len(top.guests)+1), top.guests...), id)
				next.lastEnd = e.Target
			}
			stack = append(stack, next)
		}
	}

	if best == nil {
		return nil, fmt.Errorf("longest path: no terminal date reachable from %d", entry)
	}

	stays := make([]domain.Stay, 0, len(best.guests))
	for _, id := range best.guests {
		stays = append(stays, domain.Occupied(id))
	}
	return stays, nil
}

func betterPath(a, b pathFrame) bool {
	if len(a.guests) != len(b.guests) {
		return len(a.guests) > len(b.guests)
	}
	if a.lastEnd != b.lastEnd {
		return a.lastEnd < b.lastEnd
	}
	for i := range a.guests {
		if a.guests[i] != b.guests[i] {
			return a.guests[i] < b.guests[i]
		}
	}
	return false
}

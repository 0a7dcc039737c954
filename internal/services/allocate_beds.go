package services

import (
	"bed-scheduler-service/internal/domain"
	"errors"
	"fmt"
	"slices"
)

// Solve assigns guests to bedCount beds using the date graph search.
//
// Beds are filled one at a time, each with the largest set of stays still
// available. With no beds or no guests the result is empty. Guests that no
// bed can take are left out; use AllocateBeds to get them back.
func Solve(bedCount int, guests []domain.Guest) ([]domain.BedSchedule, error) {
	alloc, err := AllocateBeds(bedCount, guests, GraphPlanner{})
	if err != nil {
		return nil, err
	}
	return alloc.Beds, nil
}

// AllocateBeds validates the request and runs one planning round per bed,
// in ascending bed id order.
func AllocateBeds(bedCount int, guests []domain.Guest, planner RoundPlanner) (*domain.Allocation, error) {
	if planner == nil {
		return nil, errors.New("allocate beds: planner must not be nil")
	}

	if err := domain.ValidateRequest(bedCount, guests); err != nil {
		return nil, fmt.Errorf("allocate beds: %w", err)
	}

	// No beds are produced at all when there is nothing to place.
	if bedCount == 0 || len(guests) == 0 {
		return &domain.Allocation{
			Beds:        []domain.BedSchedule{},
			Unscheduled: slices.Clone(guests),
		}, nil
	}

	beds := make([]domain.BedSchedule, 0, bedCount)
	remaining := slices.Clone(guests)

	for bedID := 1; bedID <= bedCount; bedID++ {
		bed, rest, err := planRound(planner, bedID, remaining)
		if err != nil {
			return nil, fmt.Errorf("allocate beds: bed %d: %w", bedID, err)
		}

		beds = append(beds, bed)
		remaining = rest
	}

	return &domain.Allocation{Beds: beds, Unscheduled: remaining}, nil
}

// planRound produces one bed's schedule and the guests still to be placed.
// The input slice is not modified.
func planRound(planner RoundPlanner, bedID int, remaining []domain.Guest) (domain.BedSchedule, []domain.Guest, error) {
	if len(remaining) == 0 {
		return domain.BedSchedule{BedID: bedID, Stays: []domain.Stay{}}, remaining, nil
	}

	stays, err := planner.PlanRound(remaining)
	if err != nil {
		return domain.BedSchedule{}, nil, fmt.Errorf("plan round with %s: %w", planner.Name(), err)
	}

	byID := make(map[int]domain.Guest, len(remaining))
	for _, g := range remaining {
		byID[g.GuestID] = g
	}

	hosted := make(map[int]struct{}, len(stays))
	var last *domain.Guest
	for _, s := range stays {
		id, ok := s.GuestID()
		if !ok {
			continue
		}

		g, known := byID[id]
		if !known {
			return domain.BedSchedule{}, nil, fmt.Errorf("plan round with %s: guest %d is not waiting for a bed", planner.Name(), id)
		}
		if _, dup := hosted[id]; dup {
			return domain.BedSchedule{}, nil, fmt.Errorf("plan round with %s: guest %d scheduled twice", planner.Name(), id)
		}
		if last != nil && g.Start < last.End {
			return domain.BedSchedule{}, nil, fmt.Errorf("plan round with %s: guest %d overlaps guest %d", planner.Name(), id, last.GuestID)
		}

		hosted[id] = struct{}{}
		last = &g
	}

	rest := make([]domain.Guest, 0, len(remaining)-len(hosted))
	for _, g := range remaining {
		if _, ok := hosted[g.GuestID]; !ok {
			rest = append(rest, g)
		}
	}

	return domain.BedSchedule{BedID: bedID, Stays: stays}, rest, nil
}

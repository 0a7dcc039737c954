package cache

import (
	"bed-scheduler-service/internal/domain"
	"encoding/json"
	"fmt"
)

type stayRecord struct {
	// Nil marks a vacant stay.
	GuestID *int `json:"guest_id"`
}

type bedRecord struct {
	BedID int          `json:"bed_id"`
	Stays []stayRecord `json:"stays"`
}

type guestRecord struct {
	GuestID int `json:"guest_id"`
	Start   int `json:"start"`
	End     int `json:"end"`
}

type allocationRecord struct {
	Beds        []bedRecord   `json:"beds"`
	Unscheduled []guestRecord `json:"unscheduled"`
}

func encodeAllocation(a *domain.Allocation) ([]byte, error) {
	rec := allocationRecord{
		Beds:        make([]bedRecord, 0, len(a.Beds)),
		Unscheduled: make([]guestRecord, 0, len(a.Unscheduled)),
	}

	for _, b := range a.Beds {
		br := bedRecord{BedID: b.BedID, Stays: make([]stayRecord, 0, len(b.Stays))}
		for _, s := range b.Stays {
			var sr stayRecord
			if id, ok := s.GuestID(); ok {
				sr.GuestID = &id
			}
			br.Stays = append(br.Stays, sr)
		}
		rec.Beds = append(rec.Beds, br)
	}

	for _, g := range a.Unscheduled {
		rec.Unscheduled = append(rec.Unscheduled, guestRecord{GuestID: g.GuestID, Start: g.Start, End: g.End})
	}

	b, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("encode allocation: %w", err)
	}
	return b, nil
}

func decodeAllocation(data []byte) (*domain.Allocation, error) {
	var rec allocationRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode allocation: %w", err)
	}

	a := &domain.Allocation{
		Beds:        make([]domain.BedSchedule, 0, len(rec.Beds)),
		Unscheduled: make([]domain.Guest, 0, len(rec.Unscheduled)),
	}

	for _, br := range rec.Beds {
		stays := make([]domain.Stay, 0, len(br.Stays))
		for _, sr := range br.Stays {
			if sr.GuestID == nil {
				stays = append(stays, domain.Vacant())
				continue
			}
			stays = append(stays, domain.Occupied(*sr.GuestID))
		}
		a.Beds = append(a.Beds, domain.BedSchedule{BedID: br.BedID, Stays: stays})
	}

	for _, g := range rec.Unscheduled {
		a.Unscheduled = append(a.Unscheduled, domain.NewGuest(g.GuestID, g.Start, g.End))
	}

	return a, nil
}

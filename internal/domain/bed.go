package domain

// Represents the planned occupation of a single bed.
// Stays are in chronological order. A BedSchedule is the output of a
// scheduling round and is not modified afterwards.
type BedSchedule struct {
	BedID int
	Stays []Stay
}

// Return the hosted guest ids in chronological order.
func (b BedSchedule) GuestIDs() []int {
	ids := make([]int, 0, len(b.Stays))
	for _, s := range b.Stays {
		if id, ok := s.GuestID(); ok {
			ids = append(ids, id)
		}
	}
	return ids
}

func (b BedSchedule) HostedCount() int {
	n := 0
	for _, s := range b.Stays {
		if !s.IsVacant() {
			n++
		}
	}
	return n
}

// Represents the result of allocating every bed.
// Beds are ordered by ascending BedID. Unscheduled holds the guests no bed
// could take, in input order.
type Allocation struct {
	Beds        []BedSchedule
	Unscheduled []Guest
}

func (a *Allocation) HostedCount() int {
	n := 0
	for _, b := range a.Beds {
		n += b.HostedCount()
	}
	return n
}

package domain

// Represents a single guest stay request.
// A Guest occupies a bed from Start (inclusive) to End (exclusive), so one
// guest leaving on the day another arrives does not conflict.
type Guest struct {
	GuestID int
	Start   int
	End     int
}

func NewGuest(id, start, end int) Guest {
	return Guest{GuestID: id, Start: start, End: end}
}

// Report whether two stays cannot share a bed.
// Touching intervals (g.End == other.Start) do not overlap.
func (g Guest) Overlaps(other Guest) bool {
	return g.Start < other.End && other.Start < g.End
}

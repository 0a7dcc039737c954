package domain

import "strconv"

// Represents what occupies a bed over one leg of its schedule.
// A Stay is either Occupied by a guest or Vacant. Vacant is a structural
// placeholder and never counts as a hosted guest.
type Stay struct {
	guestID int
	vacant  bool
}

func Occupied(guestID int) Stay { return Stay{guestID: guestID} }

func Vacant() Stay { return Stay{vacant: true} }

func (s Stay) IsVacant() bool { return s.vacant }

// Return the guest occupying the bed, or false for a Vacant stay.
func (s Stay) GuestID() (int, bool) {
	if s.vacant {
		return 0, false
	}
	return s.guestID, true
}

func (s Stay) String() string {
	if s.vacant {
		return "vacant"
	}
	return "guest(" + strconv.Itoa(s.guestID) + ")"
}

func (s Stay) Equal(other Stay) bool { return s == other }

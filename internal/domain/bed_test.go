package domain

import (
	"errors"
	"testing"
)

func TestBedScheduleSkipsVacantStays(t *testing.T) {
	bed := BedSchedule{
		BedID: 1,
		Stays: []Stay{Occupied(4), Vacant(), Occupied(2)},
	}

	if got := bed.HostedCount(); got != 2 {
		t.Fatalf("HostedCount = %d, want 2", got)
	}

	ids := bed.GuestIDs()
	if len(ids) != 2 || ids[0] != 4 || ids[1] != 2 {
		t.Fatalf("GuestIDs = %v, want [4 2]", ids)
	}
}

func TestStayVariants(t *testing.T) {
	if id, ok := Occupied(7).GuestID(); !ok || id != 7 {
		t.Fatalf("Occupied(7).GuestID() = %d, %v", id, ok)
	}
	if _, ok := Vacant().GuestID(); ok {
		t.Fatalf("Vacant().GuestID() reported a guest")
	}
	if Occupied(0).IsVacant() {
		t.Fatalf("Occupied(0) must not be vacant")
	}
	if Vacant().String() != "vacant" || Occupied(3).String() != "guest(3)" {
		t.Fatalf("unexpected String(): %q %q", Vacant().String(), Occupied(3).String())
	}
}

func TestGuestOverlaps(t *testing.T) {
	a := NewGuest(1, 1, 5)

	cases := []struct {
		name  string
		other Guest
		want  bool
	}{
		{"touching after", NewGuest(2, 5, 9), false},
		{"touching before", NewGuest(2, 0, 1), false},
		{"inside", NewGuest(2, 2, 3), true},
		{"crossing end", NewGuest(2, 4, 8), true},
		{"identical", NewGuest(2, 1, 5), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := a.Overlaps(tc.other); got != tc.want {
				t.Errorf("Overlaps = %v, want %v", got, tc.want)
			}
			if got := tc.other.Overlaps(a); got != tc.want {
				t.Errorf("reverse Overlaps = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestValidateRequest(t *testing.T) {
	cases := []struct {
		name     string
		bedCount int
		guests   []Guest
		code     ValidationCode
	}{
		{"negative bed count", -1, nil, CodeNegativeBedCount},
		{"start equals end", 1, []Guest{NewGuest(1, 3, 3)}, CodeInvalidInterval},
		{"start after end", 1, []Guest{NewGuest(1, 4, 2)}, CodeInvalidInterval},
		{"duplicate id", 2, []Guest{NewGuest(1, 1, 2), NewGuest(1, 3, 4)}, CodeDuplicateGuestID},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateRequest(tc.bedCount, tc.guests)
			if err == nil {
				t.Fatalf("expected validation error")
			}

			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("error %v is not a ValidationError", err)
			}
			if ve.Code != tc.code {
				t.Fatalf("code = %s, want %s", ve.Code, tc.code)
			}
		})
	}

	if err := ValidateRequest(0, []Guest{NewGuest(1, 1, 2), NewGuest(2, 1, 2)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestIsValidationErrorThroughWrapping(t *testing.T) {
	err := ValidateRequest(-2, nil)
	wrapped := errors.Join(errors.New("allocate beds"), err)

	if !IsValidationError(wrapped) {
		t.Fatalf("wrapped error lost its ValidationError")
	}
	if IsValidationError(errors.New("boom")) {
		t.Fatalf("plain error reported as ValidationError")
	}
}

package domain

import (
	"errors"
	"fmt"
)

type ValidationCode string

const (
	CodeInvalidInterval  ValidationCode = "INVALID_INTERVAL"
	CodeDuplicateGuestID ValidationCode = "DUPLICATE_GUEST_ID"
	CodeNegativeBedCount ValidationCode = "NEGATIVE_BED_COUNT"
	CodeTooManyGuests    ValidationCode = "TOO_MANY_GUESTS"
)

// ValidationError reports input rejected before scheduling starts.
type ValidationError struct {
	Code    ValidationCode
	GuestID int
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Check a scheduling request and return the first problem found.
// The bed count is checked first, then guests in input order.
func ValidateRequest(bedCount int, guests []Guest) error {
	if bedCount < 0 {
		return &ValidationError{
			Code:    CodeNegativeBedCount,
			Message: fmt.Sprintf("bed count must not be negative, got %d", bedCount),
		}
	}

	seen := make(map[int]struct{}, len(guests))
	for _, g := range guests {
		if g.Start >= g.End {
			return &ValidationError{
				Code:    CodeInvalidInterval,
				GuestID: g.GuestID,
				Message: fmt.Sprintf("guest %d: start %d must be before end %d", g.GuestID, g.Start, g.End),
			}
		}
		if _, ok := seen[g.GuestID]; ok {
			return &ValidationError{
				Code:    CodeDuplicateGuestID,
				GuestID: g.GuestID,
				Message: fmt.Sprintf("guest id %d appears more than once", g.GuestID),
			}
		}
		seen[g.GuestID] = struct{}{}
	}

	return nil
}

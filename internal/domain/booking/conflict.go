package booking

import (
	"errors"
	"fmt"

	"ferienwerk/internal/domain/stay"

	"github.com/google/uuid"
)

var ErrConflict = errors.New("booking conflict")

// ConflictError carries the booking that blocks a candidate range so callers
// can tell the user exactly which dates are taken.
type ConflictError struct {
	Existing *Booking
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("range is already booked: %s", e.Existing.Stay())
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// FindConflict returns the earliest-starting confirmed booking whose range
// overlaps r, or nil. excludeID skips one booking, used when re-validating an
// edit against itself; pass uuid.Nil otherwise.
func FindConflict(existing []*Booking, r stay.DateRange, excludeID uuid.UUID) *Booking {
	var found *Booking
	for _, b := range existing {
		if !b.IsConfirmed() {
			continue
		}
		if excludeID != uuid.Nil && b.ID() == excludeID {
			continue
		}
		if !b.Stay().Overlaps(r) {
			continue
		}
		if found == nil || b.Stay().Start().Before(found.Stay().Start()) {
			found = b
		}
	}
	return found
}

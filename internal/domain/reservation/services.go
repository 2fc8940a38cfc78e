package reservation

import "github.com/google/uuid"

// FindConflict returns the first existing reservation that collides
// with the candidate slot range: equal calendar date and strictly
// overlapping labels. excludeID skips the record being edited so a
// reservation never conflicts with itself. Returns nil when the
// candidate is admissible.
func FindConflict(existing []*Reservation, date Date, slots SlotRange, excludeID uuid.UUID) *Reservation {
	for _, other := range existing {
		if other.ID() == excludeID {
			continue
		}
		if !other.Date().Equal(date) {
			continue
		}
		if slots.Overlaps(other.Slots()) {
			return other
		}
	}
	return nil
}

func HasConflict(existing []*Reservation, date Date, slots SlotRange, excludeID uuid.UUID) bool {
	return FindConflict(existing, date, slots, excludeID) != nil
}

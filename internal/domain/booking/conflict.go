package booking

import (
	"github.com/google/uuid"
)

type Candidate struct {
	RoomID uuid.UUID
	Range  TimeRange
}

// Conflicts reports whether candidate overlaps any booking in existing on the same
// room. A booking whose ID equals excludeID is skipped, which lets an update be checked
// against everything except itself.
func Conflicts(candidate Candidate, existing []*Booking, excludeID *uuid.UUID) bool {
	return FirstConflict(candidate, existing, excludeID) != nil
}

// FirstConflict is Conflicts returning the offending booking, for logging.
func FirstConflict(candidate Candidate, existing []*Booking, excludeID *uuid.UUID) *Booking {
	for _, b := range existing {
		if b == nil || b.RoomID() != candidate.RoomID {
			continue
		}
		if excludeID != nil && b.ID() == *excludeID {
			continue
		}
		if b.Range().Overlaps(candidate.Range) {
			return b
		}
	}
	return nil
}

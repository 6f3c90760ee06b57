//go:build unit

package booking_test

import (
	"testing"
	"time"

	"hotel-booking/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day = time.Date(2030, 3, 1, 0, 0, 0, 0, time.UTC)

func at(hour int) time.Time {
	return day.Add(time.Duration(hour) * time.Hour)
}

func mustRange(t *testing.T, startHour, endHour int) booking.TimeRange {
	t.Helper()
	r, err := booking.NewTimeRange(at(startHour), at(endHour))
	require.NoError(t, err)
	return r
}

func committed(roomID uuid.UUID, startHour, endHour int) *booking.Booking {
	return booking.ReconstructBooking(uuid.New(), roomID, uuid.New(), at(startHour), at(endHour), day, day)
}

func TestConflicts(t *testing.T) {
	roomID := uuid.New()
	otherRoom := uuid.New()
	existing := committed(roomID, 10, 12)

	testCases := []struct {
		name      string
		startHour int
		endHour   int
		existing  []*booking.Booking
		excludeID *uuid.UUID
		want      bool
	}{
		{name: "overlap at the tail", startHour: 11, endHour: 13, existing: []*booking.Booking{existing}, want: true},
		{name: "overlap at the head", startHour: 9, endHour: 11, existing: []*booking.Booking{existing}, want: true},
		{name: "contained", startHour: 10, endHour: 11, existing: []*booking.Booking{existing}, want: true},
		{name: "containing", startHour: 8, endHour: 14, existing: []*booking.Booking{existing}, want: true},
		{name: "identical", startHour: 10, endHour: 12, existing: []*booking.Booking{existing}, want: true},
		{name: "back-to-back after", startHour: 12, endHour: 14, existing: []*booking.Booking{existing}, want: false},
		{name: "back-to-back before", startHour: 8, endHour: 10, existing: []*booking.Booking{existing}, want: false},
		{name: "disjoint", startHour: 14, endHour: 16, existing: []*booking.Booking{existing}, want: false},
		{name: "empty set", startHour: 10, endHour: 12, existing: nil, want: false},
		{name: "other room is ignored", startHour: 10, endHour: 12, existing: []*booking.Booking{committed(otherRoom, 10, 12)}, want: false},
		{name: "nil entries are ignored", startHour: 10, endHour: 12, existing: []*booking.Booking{nil}, want: false},
		{
			name: "self is excluded", startHour: 11, endHour: 13,
			existing: []*booking.Booking{existing}, excludeID: idPtr(existing.ID()), want: false,
		},
		{
			name: "exclusion does not hide others", startHour: 11, endHour: 13,
			existing: []*booking.Booking{existing, committed(roomID, 12, 15)}, excludeID: idPtr(existing.ID()), want: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			candidate := booking.Candidate{RoomID: roomID, Range: mustRange(t, tc.startHour, tc.endHour)}
			assert.Equal(t, tc.want, booking.Conflicts(candidate, tc.existing, tc.excludeID))
		})
	}
}

func TestConflicts_Symmetric(t *testing.T) {
	roomID := uuid.New()
	pairs := [][4]int{
		{10, 12, 11, 13},
		{10, 12, 12, 14},
		{10, 20, 12, 13},
		{1, 2, 3, 4},
	}

	for _, p := range pairs {
		a := committed(roomID, p[0], p[1])
		b := committed(roomID, p[2], p[3])

		ab := booking.Conflicts(a.Candidate(), []*booking.Booking{b}, nil)
		ba := booking.Conflicts(b.Candidate(), []*booking.Booking{a}, nil)
		assert.Equal(t, ab, ba, "overlap must be symmetric for %v", p)
	}
}

func TestFirstConflict(t *testing.T) {
	roomID := uuid.New()
	first := committed(roomID, 8, 9)
	second := committed(roomID, 10, 12)

	got := booking.FirstConflict(booking.Candidate{RoomID: roomID, Range: mustRange(t, 11, 13)}, []*booking.Booking{first, second}, nil)
	require.NotNil(t, got)
	assert.Equal(t, second.ID(), got.ID())
}

func idPtr(id uuid.UUID) *uuid.UUID {
	return &id
}

//go:build unit

package appointment_test

import (
	"testing"
	"time"

	"beautypro/internal/domain/appointment"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustHours(t *testing.T) appointment.WorkingHours {
	t.Helper()
	hours, err := appointment.NewWorkingHours("09:00", "20:00", 30)
	require.NoError(t, err)
	return hours
}

func day(t *testing.T) time.Time {
	t.Helper()
	return time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
}

func at(t *testing.T, hour, minute int) time.Time {
	t.Helper()
	return time.Date(2025, 3, 10, hour, minute, 0, 0, time.UTC)
}

func starts(slots []appointment.TimeSlot) []time.Time {
	out := make([]time.Time, len(slots))
	for i, s := range slots {
		out[i] = s.Start()
	}
	return out
}

func TestNewWorkingHours(t *testing.T) {
	t.Run("valid window", func(t *testing.T) {
		_, err := appointment.NewWorkingHours("09:00", "20:00", 30)
		assert.NoError(t, err)
	})

	t.Run("end before start", func(t *testing.T) {
		_, err := appointment.NewWorkingHours("20:00", "09:00", 30)
		assert.ErrorIs(t, err, appointment.ErrInvalidWorkingHours)
	})

	t.Run("zero step", func(t *testing.T) {
		_, err := appointment.NewWorkingHours("09:00", "20:00", 0)
		assert.ErrorIs(t, err, appointment.ErrInvalidWorkingHours)
	})

	t.Run("unparseable start", func(t *testing.T) {
		_, err := appointment.NewWorkingHours("nine", "20:00", 30)
		assert.ErrorIs(t, err, appointment.ErrInvalidWorkingHours)
	})
}

func TestCandidates(t *testing.T) {
	hours := mustHours(t)

	t.Run("60 minute service fills the day with 21 slots", func(t *testing.T) {
		slots := hours.Candidates(day(t), time.Hour)
		require.Len(t, slots, 21)

		assert.Equal(t, at(t, 9, 0), slots[0].Start())
		assert.Equal(t, at(t, 9, 30), slots[1].Start())
		assert.Equal(t, at(t, 19, 0), slots[20].Start())
		assert.Equal(t, at(t, 20, 0), slots[20].End())
	})

	t.Run("30 minute service yields 22 slots", func(t *testing.T) {
		slots := hours.Candidates(day(t), 30*time.Minute)
		require.Len(t, slots, 22)
		assert.Equal(t, at(t, 19, 30), slots[21].Start())
	})

	t.Run("duration longer than the window yields nothing", func(t *testing.T) {
		assert.Empty(t, hours.Candidates(day(t), 12*time.Hour))
	})

	t.Run("non-positive duration yields nothing", func(t *testing.T) {
		assert.Empty(t, hours.Candidates(day(t), 0))
	})
}

func TestAvailableSlots(t *testing.T) {
	hours := mustHours(t)
	beforeOpening := time.Date(2025, 3, 9, 23, 0, 0, 0, time.UTC)

	t.Run("empty schedule keeps every candidate", func(t *testing.T) {
		candidates := hours.Candidates(day(t), time.Hour)
		free := appointment.AvailableSlots(candidates, nil, beforeOpening)
		assert.Len(t, free, 21)
	})

	t.Run("one 10:00-11:00 booking shadows three starts", func(t *testing.T) {
		candidates := hours.Candidates(day(t), time.Hour)
		busy := []appointment.TimeSlot{appointment.SlotBetween(at(t, 10, 0), at(t, 11, 0))}

		free := appointment.AvailableSlots(candidates, busy, beforeOpening)
		require.Len(t, free, 18)

		freeStarts := starts(free)
		assert.Contains(t, freeStarts, at(t, 9, 0))
		assert.Contains(t, freeStarts, at(t, 11, 0))
		assert.NotContains(t, freeStarts, at(t, 9, 30))
		assert.NotContains(t, freeStarts, at(t, 10, 0))
		assert.NotContains(t, freeStarts, at(t, 10, 30))
	})

	t.Run("touching slots do not conflict", func(t *testing.T) {
		candidates := hours.Candidates(day(t), time.Hour)
		busy := []appointment.TimeSlot{appointment.SlotBetween(at(t, 9, 0), at(t, 10, 0))}

		free := appointment.AvailableSlots(candidates, busy, beforeOpening)
		assert.Contains(t, starts(free), at(t, 10, 0))
		assert.NotContains(t, starts(free), at(t, 9, 0))
	})

	t.Run("slots at or before now are excluded", func(t *testing.T) {
		candidates := hours.Candidates(day(t), time.Hour)
		free := appointment.AvailableSlots(candidates, nil, at(t, 12, 0))

		want := hours.Candidates(day(t), time.Hour)[7:] // 12:30 onward
		if diff := cmp.Diff(starts(want), starts(free)); diff != "" {
			t.Errorf("available starts mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("day fully in the past yields empty, not error", func(t *testing.T) {
		candidates := hours.Candidates(day(t), time.Hour)
		free := appointment.AvailableSlots(candidates, nil, at(t, 19, 30))
		assert.Empty(t, free)
	})
}

func TestOnGrid(t *testing.T) {
	hours := mustHours(t)

	assert.True(t, hours.OnGrid(at(t, 9, 0)))
	assert.True(t, hours.OnGrid(at(t, 14, 30)))
	assert.False(t, hours.OnGrid(at(t, 9, 15)))
	assert.False(t, hours.OnGrid(at(t, 8, 30)))
}

func TestContains(t *testing.T) {
	hours := mustHours(t)

	inside, err := appointment.NewTimeSlot(at(t, 9, 0), time.Hour)
	require.NoError(t, err)
	assert.True(t, hours.Contains(inside))

	overrunning, err := appointment.NewTimeSlot(at(t, 19, 30), time.Hour)
	require.NoError(t, err)
	assert.False(t, hours.Contains(overrunning))

	beforeOpening, err := appointment.NewTimeSlot(at(t, 8, 0), time.Hour)
	require.NoError(t, err)
	assert.False(t, hours.Contains(beforeOpening))
}

func TestTimeSlotOverlaps(t *testing.T) {
	base := appointment.SlotBetween(at(t, 10, 0), at(t, 11, 0))

	cases := []struct {
		name  string
		other appointment.TimeSlot
		want  bool
	}{
		{"identical", appointment.SlotBetween(at(t, 10, 0), at(t, 11, 0)), true},
		{"starts inside", appointment.SlotBetween(at(t, 10, 30), at(t, 11, 30)), true},
		{"ends inside", appointment.SlotBetween(at(t, 9, 30), at(t, 10, 30)), true},
		{"covers", appointment.SlotBetween(at(t, 9, 0), at(t, 12, 0)), true},
		{"touches end", appointment.SlotBetween(at(t, 11, 0), at(t, 12, 0)), false},
		{"touches start", appointment.SlotBetween(at(t, 9, 0), at(t, 10, 0)), false},
		{"disjoint", appointment.SlotBetween(at(t, 13, 0), at(t, 14, 0)), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, base.Overlaps(tc.other))
			assert.Equal(t, tc.want, tc.other.Overlaps(base))
		})
	}
}

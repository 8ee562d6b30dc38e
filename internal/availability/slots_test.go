package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var never = time.Time{}

func at(h, m int) time.Time {
	return time.Date(2026, 6, 15, h, m, 0, 0, time.UTC)
}

func TestGenerate(t *testing.T) {
	t.Run("interval slices into consecutive slots", func(t *testing.T) {
		// 09:00-12:00 with 30-minute slots and no buffers.
		slots := Generate(at(9, 0), at(12, 0), 30*time.Minute, 0, 0, never)
		require.Len(t, slots, 6)
		assert.Equal(t, at(9, 0), slots[0].Start)
		assert.Equal(t, at(9, 30), slots[0].End)
		assert.Equal(t, at(11, 30), slots[5].Start)
		assert.Equal(t, at(12, 0), slots[5].End)
	})

	t.Run("remainder that cannot fit a full slot is unused", func(t *testing.T) {
		// 13:00-18:00 with 45-minute slots: 6 slots, 30 minutes left over.
		slots := Generate(at(13, 0), at(18, 0), 45*time.Minute, 0, 0, never)
		require.Len(t, slots, 6)
		assert.Equal(t, at(17, 30), slots[5].End)
	})

	t.Run("buffers consume the interval but not the slot", func(t *testing.T) {
		// Step is 10+30+5=45 minutes; slot covers only the middle 30.
		slots := Generate(at(9, 0), at(12, 0), 30*time.Minute, 10*time.Minute, 5*time.Minute, never)
		require.Len(t, slots, 4)
		assert.Equal(t, at(9, 10), slots[0].Start)
		assert.Equal(t, at(9, 40), slots[0].End)
		assert.Equal(t, at(9, 55), slots[1].Start)
	})

	t.Run("interval shorter than one step yields nothing", func(t *testing.T) {
		slots := Generate(at(9, 0), at(9, 20), 30*time.Minute, 0, 0, never)
		assert.Empty(t, slots)
	})

	t.Run("slot exactly filling the interval is kept", func(t *testing.T) {
		slots := Generate(at(9, 0), at(9, 30), 30*time.Minute, 0, 0, never)
		require.Len(t, slots, 1)
		assert.Equal(t, at(9, 0), slots[0].Start)
	})

	t.Run("lead time discards early slots", func(t *testing.T) {
		slots := Generate(at(9, 0), at(12, 0), 30*time.Minute, 0, 0, at(10, 15))
		require.Len(t, slots, 3)
		assert.Equal(t, at(10, 30), slots[0].Start)
	})

	t.Run("degenerate inputs", func(t *testing.T) {
		assert.Empty(t, Generate(at(9, 0), at(12, 0), 0, 0, 0, never))
		assert.Empty(t, Generate(at(9, 0), at(12, 0), 30*time.Minute, -time.Minute, 0, never))
		assert.Empty(t, Generate(at(12, 0), at(9, 0), 30*time.Minute, 0, 0, never))
	})
}

func TestFree(t *testing.T) {
	slots := Generate(at(9, 0), at(12, 0), 30*time.Minute, 0, 0, never)
	require.Len(t, slots, 6)

	t.Run("overlapping appointment removes its slots", func(t *testing.T) {
		busy := []Interval{{Start: at(9, 45), End: at(10, 15)}}
		free := Free(slots, busy)
		starts := slotStarts(free)
		assert.NotContains(t, starts, at(9, 30))
		assert.NotContains(t, starts, at(10, 0))
		assert.Len(t, free, 4)
	})

	t.Run("back-to-back does not conflict", func(t *testing.T) {
		// Appointment at 10:00-10:30; the 09:30 and 10:30 slots touch it
		// at the bounds only.
		busy := []Interval{{Start: at(10, 0), End: at(10, 30)}}
		free := Free(slots, busy)
		starts := slotStarts(free)
		assert.Contains(t, starts, at(9, 30))
		assert.Contains(t, starts, at(10, 30))
		assert.NotContains(t, starts, at(10, 0))
	})

	t.Run("busy interval covering everything empties the day", func(t *testing.T) {
		busy := []Interval{{Start: at(0, 0), End: at(23, 0)}}
		assert.Empty(t, Free(slots, busy))
	})

	t.Run("no busy intervals keeps all slots", func(t *testing.T) {
		assert.Equal(t, slots, Free(slots, nil))
	})
}

func slotStarts(slots []Slot) []time.Time {
	out := make([]time.Time, len(slots))
	for i, s := range slots {
		out[i] = s.Start
	}
	return out
}

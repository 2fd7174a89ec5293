//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"backline/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustWindow(t *testing.T, start, end time.Time) schedule.Window {
	t.Helper()
	w, err := schedule.NewWindow(start, end)
	require.NoError(t, err)
	return w
}

func at(t *testing.T, hhmm string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, "2025-06-01T"+hhmm+":00Z")
	require.NoError(t, err)
	return ts
}

func TestNewWindow(t *testing.T) {
	start := at(t, "10:00")

	t.Run("end after start", func(t *testing.T) {
		w, err := schedule.NewWindow(start, start.Add(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, start, w.Start())
		assert.Equal(t, time.Hour, w.Duration())
	})

	t.Run("end equal to start", func(t *testing.T) {
		_, err := schedule.NewWindow(start, start)
		assert.ErrorIs(t, err, schedule.ErrInvalidWindow)
	})

	t.Run("end before start", func(t *testing.T) {
		_, err := schedule.NewWindow(start, start.Add(-time.Minute))
		assert.ErrorIs(t, err, schedule.ErrInvalidWindow)
	})
}

func TestNewBuffers(t *testing.T) {
	tests := []struct {
		name      string
		before    int
		after     int
		wantError bool
	}{
		{name: "both zero", before: 0, after: 0},
		{name: "typical padding", before: 30, after: 60},
		{name: "negative before", before: -1, after: 0, wantError: true},
		{name: "negative after", before: 0, after: -15, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := schedule.NewBuffers(tt.before, tt.after)
			if tt.wantError {
				assert.ErrorIs(t, err, schedule.ErrNegativeBuffer)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.before, b.BeforeMin)
			assert.Equal(t, tt.after, b.AfterMin)
		})
	}
}

func TestBuffered(t *testing.T) {
	w := mustWindow(t, at(t, "10:00"), at(t, "11:00"))

	t.Run("zero buffers are the identity", func(t *testing.T) {
		got := w.Buffered(schedule.Buffers{})
		assert.Equal(t, w.Start(), got.Start())
		assert.Equal(t, w.End(), got.End())
	})

	t.Run("expands by minutes on each side", func(t *testing.T) {
		got := w.Buffered(schedule.Buffers{BeforeMin: 30, AfterMin: 45})
		assert.Equal(t, at(t, "09:30"), got.Start())
		assert.Equal(t, at(t, "11:45"), got.End())
	})

	t.Run("asymmetric buffers", func(t *testing.T) {
		got := w.Buffered(schedule.Buffers{BeforeMin: 15, AfterMin: 0})
		assert.Equal(t, at(t, "09:45"), got.Start())
		assert.Equal(t, w.End(), got.End())
	})
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a    [2]string
		b    [2]string
		want bool
	}{
		{name: "disjoint before", a: [2]string{"08:00", "09:00"}, b: [2]string{"10:00", "11:00"}, want: false},
		{name: "disjoint after", a: [2]string{"12:00", "13:00"}, b: [2]string{"10:00", "11:00"}, want: false},
		{name: "touching at a.end == b.start", a: [2]string{"09:00", "10:00"}, b: [2]string{"10:00", "11:00"}, want: false},
		{name: "touching at a.start == b.end", a: [2]string{"11:00", "12:00"}, b: [2]string{"10:00", "11:00"}, want: false},
		{name: "strict interior overlap", a: [2]string{"10:30", "11:30"}, b: [2]string{"10:00", "11:00"}, want: true},
		{name: "containment", a: [2]string{"10:15", "10:45"}, b: [2]string{"10:00", "11:00"}, want: true},
		{name: "identical windows", a: [2]string{"10:00", "11:00"}, b: [2]string{"10:00", "11:00"}, want: true},
		{name: "one minute of shared interior", a: [2]string{"10:59", "12:00"}, b: [2]string{"10:00", "11:00"}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustWindow(t, at(t, tt.a[0]), at(t, tt.a[1]))
			b := mustWindow(t, at(t, tt.b[0]), at(t, tt.b[1]))
			assert.Equal(t, tt.want, a.Overlaps(b))
			assert.Equal(t, tt.want, b.Overlaps(a), "overlap must be symmetric")
		})
	}
}

func TestBufferedOverlapEndpointRule(t *testing.T) {
	// A reservation 10:00-11:00 with (30,30) buffers blocks [09:30,11:30).
	reserved := mustWindow(t, at(t, "10:00"), at(t, "11:00")).
		Buffered(schedule.Buffers{BeforeMin: 30, AfterMin: 30})

	touching := mustWindow(t, at(t, "11:30"), at(t, "12:30"))
	assert.False(t, reserved.Overlaps(touching))

	intruding := mustWindow(t, at(t, "11:00"), at(t, "12:00"))
	assert.True(t, reserved.Overlaps(intruding))
}

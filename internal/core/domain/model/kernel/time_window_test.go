package kernel_test

import (
	"testing"
	"time"

	"attendance/internal/core/domain/model/kernel"
	"attendance/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var shiftDay = time.Date(2025, 7, 26, 0, 0, 0, 0, time.UTC)

func window(t *testing.T, fromHour, toHour int) kernel.TimeWindow {
	t.Helper()
	w, err := kernel.NewTimeWindow(
		shiftDay.Add(time.Duration(fromHour)*time.Hour),
		shiftDay.Add(time.Duration(toHour)*time.Hour),
	)
	require.NoError(t, err)
	return w
}

func TestNewTimeWindow(t *testing.T) {
	t.Run("requires end after start", func(t *testing.T) {
		_, err := kernel.NewTimeWindow(shiftDay.Add(time.Hour), shiftDay.Add(time.Hour))

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("requires both bounds", func(t *testing.T) {
		_, err := kernel.NewTimeWindow(time.Time{}, time.Time{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ErrorContains(t, err, "start")
		assert.ErrorContains(t, err, "end")
	})

	t.Run("exposes bounds and duration", func(t *testing.T) {
		w := window(t, 9, 17)

		assert.Equal(t, shiftDay.Add(9*time.Hour), w.Start())
		assert.Equal(t, shiftDay.Add(17*time.Hour), w.End())
		assert.Equal(t, 8*time.Hour, w.Duration())
		assert.NoError(t, w.Validate())
	})
}

func TestNewDayWindow(t *testing.T) {
	w := kernel.NewDayWindow(shiftDay.Add(13*time.Hour + 5*time.Minute))

	assert.Equal(t, shiftDay, w.Start())
	assert.Equal(t, shiftDay.AddDate(0, 0, 1), w.End())
	assert.NoError(t, w.Validate())
}

func TestTimeWindow_Overlaps(t *testing.T) {
	testCases := []struct {
		name string
		a, b [2]int
		want bool
	}{
		{name: "contained", a: [2]int{9, 17}, b: [2]int{12, 14}, want: true},
		{name: "shared endpoint", a: [2]int{9, 17}, b: [2]int{17, 20}, want: false},
		{name: "partial", a: [2]int{9, 17}, b: [2]int{16, 18}, want: true},
		{name: "disjoint", a: [2]int{6, 8}, b: [2]int{9, 17}, want: false},
		{name: "identical", a: [2]int{9, 17}, b: [2]int{9, 17}, want: true},
		{name: "cross midnight", a: [2]int{22, 30}, b: [2]int{29, 31}, want: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := window(t, tc.a[0], tc.a[1])
			b := window(t, tc.b[0], tc.b[1])

			assert.Equal(t, tc.want, a.Overlaps(b))
			assert.Equal(t, tc.want, b.Overlaps(a), "overlap must be symmetric")
		})
	}
}

func TestTimeWindow_Contains(t *testing.T) {
	w := window(t, 9, 17)

	assert.True(t, w.Contains(shiftDay.Add(9*time.Hour)))
	assert.False(t, w.Contains(shiftDay.Add(17*time.Hour)))
	assert.False(t, w.Contains(shiftDay.Add(8*time.Hour)))
}

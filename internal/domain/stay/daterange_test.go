//go:build unit

package stay_test

import (
	"testing"
	"time"

	"ferienwerk/internal/domain/stay"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.ParseInLocation(stay.ISODate, s, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func mustRange(t *testing.T, start, end string) stay.DateRange {
	t.Helper()
	r, err := stay.NewDateRange(date(start), date(end))
	require.NoError(t, err)
	return r
}

func TestNewDateRange(t *testing.T) {
	t.Run("valid range", func(t *testing.T) {
		r, err := stay.NewDateRange(date("2025-10-01"), date("2025-10-04"))
		require.NoError(t, err)
		assert.Equal(t, date("2025-10-01"), r.Start())
		assert.Equal(t, date("2025-10-04"), r.End())
		assert.Equal(t, 3, r.NightCount())
	})

	t.Run("end before start", func(t *testing.T) {
		_, err := stay.NewDateRange(date("2025-10-04"), date("2025-10-01"))
		assert.ErrorIs(t, err, stay.ErrInvalidRange)
	})

	t.Run("zero nights", func(t *testing.T) {
		_, err := stay.NewDateRange(date("2025-10-01"), date("2025-10-01"))
		assert.ErrorIs(t, err, stay.ErrInvalidRange)
	})

	t.Run("time of day is stripped", func(t *testing.T) {
		start := time.Date(2025, 10, 1, 14, 30, 0, 0, time.UTC)
		end := time.Date(2025, 10, 2, 10, 0, 0, 0, time.UTC)
		r, err := stay.NewDateRange(start, end)
		require.NoError(t, err)
		assert.Equal(t, date("2025-10-01"), r.Start())
		assert.Equal(t, 1, r.NightCount())
	})
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a    [2]string
		b    [2]string
		want bool
	}{
		{"identical", [2]string{"2025-10-01", "2025-10-04"}, [2]string{"2025-10-01", "2025-10-04"}, true},
		{"contained", [2]string{"2025-10-01", "2025-10-10"}, [2]string{"2025-10-03", "2025-10-05"}, true},
		{"partial overlap", [2]string{"2025-10-01", "2025-10-05"}, [2]string{"2025-10-04", "2025-10-08"}, true},
		{"checkout equals checkin", [2]string{"2025-10-01", "2025-10-04"}, [2]string{"2025-10-04", "2025-10-07"}, false},
		{"disjoint", [2]string{"2025-10-01", "2025-10-03"}, [2]string{"2025-10-05", "2025-10-07"}, false},
		{"one night inside", [2]string{"2025-10-01", "2025-10-04"}, [2]string{"2025-10-03", "2025-10-04"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustRange(t, tt.a[0], tt.a[1])
			b := mustRange(t, tt.b[0], tt.b[1])
			assert.Equal(t, tt.want, a.Overlaps(b))
			// symmetry
			assert.Equal(t, tt.want, b.Overlaps(a))
		})
	}

	t.Run("every range overlaps itself", func(t *testing.T) {
		r := mustRange(t, "2025-10-01", "2025-10-02")
		assert.True(t, r.Overlaps(r))
	})
}

func TestNights(t *testing.T) {
	r := mustRange(t, "2025-10-01", "2025-10-04")
	nights := r.Nights()
	require.Len(t, nights, 3)
	assert.Equal(t, date("2025-10-01"), nights[0])
	assert.Equal(t, date("2025-10-02"), nights[1])
	assert.Equal(t, date("2025-10-03"), nights[2])
}

func TestContains(t *testing.T) {
	r := mustRange(t, "2025-10-01", "2025-10-04")
	assert.True(t, r.Contains(date("2025-10-01")))
	assert.True(t, r.Contains(date("2025-10-03")))
	assert.False(t, r.Contains(date("2025-10-04")))
	assert.False(t, r.Contains(date("2025-09-30")))
}

func TestString(t *testing.T) {
	r := mustRange(t, "2025-10-01", "2025-10-04")
	assert.Equal(t, "[2025-10-01,2025-10-04)", r.String())
}

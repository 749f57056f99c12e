//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"visit-booking/internal/domain/reservation"
	"visit-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		d, err := reservation.ParseDate("2024-02-29")
		require.NoError(t, err)
		assert.Equal(t, 2024, d.Year())
		assert.Equal(t, time.February, d.Month())
		assert.Equal(t, 29, d.Day())
		assert.Equal(t, "2024-02-29", d.String())
	})

	for _, in := range []string{"", "2024-1-02", "02/01/2024", "2023-02-29", "2024-01-02 ", "20240102"} {
		t.Run("invalid "+in, func(t *testing.T) {
			_, err := reservation.ParseDate(in)
			require.Error(t, err)
			assert.True(t, errs.IsFormat(err))
			assert.True(t, errs.IsValidation(err))
		})
	}
}

func TestDate(t *testing.T) {
	t.Run("date of ignores time of day and keeps the local calendar day", func(t *testing.T) {
		late := time.Date(2024, 1, 2, 23, 59, 0, 0, time.FixedZone("PST", -8*3600))
		assert.Equal(t, reservation.NewDate(2024, time.January, 2), reservation.DateOf(late))
	})

	t.Run("add days crosses month and year", func(t *testing.T) {
		d := reservation.NewDate(2023, time.December, 31)
		assert.Equal(t, reservation.NewDate(2024, time.January, 1), d.AddDays(1))
		assert.Equal(t, reservation.NewDate(2023, time.December, 30), d.AddDays(-1))
	})

	t.Run("weekend", func(t *testing.T) {
		assert.True(t, reservation.NewDate(2024, time.January, 6).IsWeekend())  // Saturday
		assert.True(t, reservation.NewDate(2024, time.January, 7).IsWeekend())  // Sunday
		assert.False(t, reservation.NewDate(2024, time.January, 8).IsWeekend()) // Monday
	})

	t.Run("ordering", func(t *testing.T) {
		a := reservation.NewDate(2024, time.January, 1)
		b := reservation.NewDate(2024, time.January, 2)
		assert.True(t, a.Before(b))
		assert.True(t, b.After(a))
		assert.False(t, a.After(a))
	})

	t.Run("zero value", func(t *testing.T) {
		assert.True(t, reservation.Date{}.IsZero())
		assert.False(t, reservation.NewDate(2024, time.January, 1).IsZero())
	})

	t.Run("text round trip", func(t *testing.T) {
		var d reservation.Date
		require.NoError(t, d.UnmarshalText([]byte("2024-03-15")))
		b, err := d.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, "2024-03-15", string(b))
		assert.Error(t, d.UnmarshalText([]byte("march")))
	})
}

func TestDateRange(t *testing.T) {
	start := reservation.NewDate(2024, time.January, 1)
	end := reservation.NewDate(2024, time.January, 10)

	r := reservation.NewDateRange(start, end)
	assert.False(t, r.IsEmpty())
	assert.Equal(t, 10, r.Days())
	assert.True(t, r.Contains(start))
	assert.True(t, r.Contains(end))
	assert.False(t, r.Contains(end.AddDays(1)))

	single := reservation.NewDateRange(start, start)
	assert.Equal(t, 1, single.Days())

	inverted := reservation.NewDateRange(end, start)
	assert.True(t, inverted.IsEmpty())
	assert.Equal(t, 0, inverted.Days())

	leap := reservation.NewDateRange(reservation.NewDate(2024, time.February, 28), reservation.NewDate(2024, time.March, 1))
	assert.Equal(t, 3, leap.Days())

	// wider than time.Duration can hold
	whole := reservation.NewDateRange(reservation.NewDate(1, time.January, 1), reservation.NewDate(9999, time.December, 31))
	assert.Equal(t, 3652059, whole.Days())
}

func TestNewAttendee(t *testing.T) {
	cases := []struct {
		in        string
		wantErr   bool
		wantFmt   bool
		wantValue string
	}{
		{in: "a@b.co", wantValue: "a@b.co"},
		{in: "first.last-1@sub.example.museum", wantValue: "first.last-1@sub.example.museum"},
		{in: "", wantErr: true},
		{in: "   ", wantErr: true},
		{in: "no-at-sign.example.com", wantErr: true, wantFmt: true},
		{in: "a@b.c", wantErr: true, wantFmt: true},
		{in: "a b@example.com", wantErr: true, wantFmt: true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			a, err := reservation.NewAttendee(tc.in)
			if !tc.wantErr {
				require.NoError(t, err)
				assert.Equal(t, tc.wantValue, a.String())
				return
			}
			require.Error(t, err)
			assert.True(t, errs.IsValidation(err))
			assert.Equal(t, tc.wantFmt, errs.IsFormat(err))
		})
	}
}

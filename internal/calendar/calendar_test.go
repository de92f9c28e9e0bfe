package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthKeyAddMonths(t *testing.T) {
	cases := []struct {
		in   MonthKey
		n    int
		want MonthKey
	}{
		{MonthKey{1403, 1}, -1, MonthKey{1402, 12}},
		{MonthKey{1403, 12}, 1, MonthKey{1404, 1}},
		{MonthKey{1403, 5}, -11, MonthKey{1402, 6}},
		{MonthKey{1403, 5}, -24, MonthKey{1401, 5}},
		{MonthKey{2024, 3}, 0, MonthKey{2024, 3}},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.in.AddMonths(c.n), "%v%+d", c.in, c.n)
	}
}

func TestMonthKeyBefore(t *testing.T) {
	assert.True(t, MonthKey{1402, 12}.Before(MonthKey{1403, 1}))
	assert.False(t, MonthKey{1403, 1}.Before(MonthKey{1403, 1}))
	assert.False(t, MonthKey{1403, 2}.Before(MonthKey{1403, 1}))
}

func TestJalaliMonthOf(t *testing.T) {
	tehran := LoadLocation("Asia/Tehran")
	cal := NewJalali(tehran)

	// Mid Esfand 1402 and mid Farvardin 1403
	assert.Equal(t, MonthKey{1402, 12}, cal.MonthOf(time.Date(2024, 3, 10, 12, 0, 0, 0, tehran)))
	assert.Equal(t, MonthKey{1403, 1}, cal.MonthOf(time.Date(2024, 4, 5, 12, 0, 0, 0, tehran)))
	// Gregorian month changes, Jalali month does not
	assert.Equal(t, cal.MonthOf(time.Date(2024, 4, 25, 12, 0, 0, 0, tehran)), cal.MonthOf(time.Date(2024, 5, 10, 12, 0, 0, 0, tehran)))
}

func TestJalaliStartOfRoundTrip(t *testing.T) {
	cal := NewJalali(LoadLocation("Asia/Tehran"))
	for _, k := range []MonthKey{{1402, 12}, {1403, 1}, {1403, 7}} {
		start := cal.StartOf(k)
		assert.Equal(t, k, cal.MonthOf(start), "start of %v", k)
		assert.Equal(t, k.AddMonths(-1), cal.MonthOf(start.Add(-time.Second)), "instant before %v", k)
	}
}

func TestGregorianCalendar(t *testing.T) {
	cal, err := New("gregorian", time.UTC)
	require.NoError(t, err)

	k := cal.MonthOf(time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC))
	assert.Equal(t, MonthKey{2024, 3}, k)
	assert.Equal(t, "March 2024", cal.Label(k))
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), cal.StartOf(k))
	assert.Equal(t, "2024-3-15 08:00:00", cal.FormatDateTime(time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC)))
}

func TestNewUnknown(t *testing.T) {
	_, err := New("lunar", time.UTC)
	assert.Error(t, err)
}

package datetime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthBounds(t *testing.T) {
	first, last, err := MonthBounds(2024, time.February)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), first)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), last)

	first, last, err = MonthBounds(2025, time.December)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Day())
	assert.Equal(t, 31, last.Day())

	_, _, err = MonthBounds(2025, time.Month(13))
	assert.Error(t, err)
}

func TestDateRange(t *testing.T) {
	start := time.Date(2025, 3, 30, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC)

	dates := DateRange(start, end)
	require.Len(t, dates, 4)
	assert.Equal(t, start, dates[0])
	assert.Equal(t, end, dates[3])

	assert.Len(t, DateRange(start, start), 1)
	assert.Empty(t, DateRange(end, start))
}

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2025-08-24")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 8, 24, 0, 0, 0, 0, time.UTC), parsed)

	_, err = ParseDate("24/08/2025")
	assert.Error(t, err)
}

func TestParseClock(t *testing.T) {
	parsed, err := ParseClock("13:45")
	require.NoError(t, err)
	assert.Equal(t, 13, parsed.Hour())
	assert.Equal(t, 45, parsed.Minute())

	_, err = ParseClock("25:00")
	assert.Error(t, err)
}

func TestMakeAware(t *testing.T) {
	naive := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	aware, err := MakeAware(naive, "Asia/Kathmandu")
	require.NoError(t, err)
	assert.Equal(t, "Asia/Kathmandu", aware.Location().String())
	assert.Equal(t, 12, aware.Hour())

	_, err = MakeAware(naive, "Not/AZone")
	assert.Error(t, err)
}

func TestConvert(t *testing.T) {
	noon := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)

	converted, err := Convert(noon, "UTC", "Asia/Kathmandu")
	require.NoError(t, err)
	// Kathmandu is UTC+5:45.
	assert.Equal(t, 17, converted.Hour())
	assert.Equal(t, 45, converted.Minute())

	_, err = Convert(noon, "Nope", "UTC")
	assert.Error(t, err)
	_, err = Convert(noon, "UTC", "Nope")
	assert.Error(t, err)
}

package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayBounds(t *testing.T) {
	moment := time.Date(2025, 3, 9, 15, 42, 7, 123, time.UTC)

	start, end := DayBounds(moment)

	assert.Equal(t, time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC), start)
	assert.True(t, end.After(moment))
	assert.Equal(t, 9, end.Day(), "end stays on the same day")
	assert.Equal(t, 23, end.Hour())
}

func TestMonthBounds(t *testing.T) {
	start, end := MonthBounds(3, time.UTC)

	assert.Equal(t, time.March, start.Month())
	assert.Equal(t, 1, start.Day())
	assert.Equal(t, time.March, end.Month())
	assert.Equal(t, 31, end.Day())
	assert.True(t, end.After(start))
}

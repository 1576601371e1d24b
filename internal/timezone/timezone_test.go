package timezone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddDaysISO(t *testing.T) {
	got, err := AddDaysISO("2025-03-10", 6)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-16", got)

	got, err = AddDaysISO("2025-02-27", 3)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-02", got, "month rollover")

	_, err = AddDaysISO("10/03/2025", 1)
	assert.Error(t, err)
}

func TestWeekdayOf(t *testing.T) {
	sunday, err := WeekdayOf("2025-03-09")
	require.NoError(t, err)
	assert.Equal(t, 0, sunday)

	monday, err := WeekdayOf("2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, 1, monday)

	saturday, err := WeekdayOf("2025-03-15")
	require.NoError(t, err)
	assert.Equal(t, 6, saturday)
}

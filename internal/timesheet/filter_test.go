package timesheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hourlog/internal/domain"
	"hourlog/internal/errors"
)

// sampleTimesheet builds a three-entry timesheet, newest first.
func sampleTimesheet() []domain.Entry {
	day := func(d, h int) time.Time {
		return time.Date(2024, 1, d, h, 0, 0, 0, time.Local)
	}
	return []domain.Entry{
		{Project: "proj-b", In: day(3, 9), Description: strPtr("open session")},
		{Project: "proj-a", In: day(2, 9), Out: timePtr(day(2, 17)), Description: strPtr("second day")},
		{Project: "proj-a", In: day(1, 9), Out: timePtr(day(1, 17)), Description: strPtr("first day")},
	}
}

func TestFilter(t *testing.T) {
	t.Run("no filters returns the input unchanged", func(t *testing.T) {
		ts := sampleTimesheet()

		filtered, err := Filter(ts, FilterOptions{})
		require.NoError(t, err)
		assert.Equal(t, ts, filtered)
	})

	t.Run("filters by project in reversed order", func(t *testing.T) {
		filtered, err := Filter(sampleTimesheet(), FilterOptions{Project: "proj-a"})
		require.NoError(t, err)
		require.Len(t, filtered, 2)
		assert.Equal(t, "first day", *filtered[0].Description)
		assert.Equal(t, "second day", *filtered[1].Description)
	})

	t.Run("start bound drops earlier entries", func(t *testing.T) {
		filtered, err := Filter(sampleTimesheet(), FilterOptions{Start: "2024-01-02"})
		require.NoError(t, err)
		require.Len(t, filtered, 2)
		assert.Equal(t, "second day", *filtered[0].Description)
		assert.Equal(t, "open session", *filtered[1].Description)
	})

	t.Run("end bound excludes open entries", func(t *testing.T) {
		filtered, err := Filter(sampleTimesheet(), FilterOptions{End: "2024-01-04"})
		require.NoError(t, err)
		require.Len(t, filtered, 2)
		for _, e := range filtered {
			assert.NotNil(t, e.Out)
		}
	})

	t.Run("end bound drops later entries", func(t *testing.T) {
		filtered, err := Filter(sampleTimesheet(), FilterOptions{End: "2024-01-01T18:00:00"})
		require.NoError(t, err)
		require.Len(t, filtered, 1)
		assert.Equal(t, "first day", *filtered[0].Description)
	})

	t.Run("filtered-out result is empty, not nil", func(t *testing.T) {
		filtered, err := Filter(sampleTimesheet(), FilterOptions{Project: "missing"})
		require.NoError(t, err)
		assert.NotNil(t, filtered)
		assert.Empty(t, filtered)
	})

	t.Run("fails parse on malformed bound", func(t *testing.T) {
		_, err := Filter(sampleTimesheet(), FilterOptions{Start: "yesterday"})
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeParse))
	})
}

func TestRemoveLast(t *testing.T) {
	t.Run("drops the head without a project", func(t *testing.T) {
		ts := RemoveLast(sampleTimesheet(), "")
		require.Len(t, ts, 2)
		assert.Equal(t, "second day", *ts[0].Description)
	})

	t.Run("single entry empties out", func(t *testing.T) {
		ts := RemoveLast(sampleTimesheet()[:1], "")
		assert.Empty(t, ts)
	})

	t.Run("empty timesheet stays empty", func(t *testing.T) {
		ts := RemoveLast(nil, "")
		assert.Empty(t, ts)
	})

	t.Run("removes the first match for a project", func(t *testing.T) {
		ts := RemoveLast(sampleTimesheet(), "proj-a")
		require.Len(t, ts, 2)
		assert.Equal(t, "open session", *ts[0].Description)
		assert.Equal(t, "first day", *ts[1].Description)
	})

	t.Run("no match leaves the timesheet unchanged", func(t *testing.T) {
		input := sampleTimesheet()
		ts := RemoveLast(input, "missing")
		assert.Equal(t, input, ts)
	})
}

package timesheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hourlog/internal/domain"
	"hourlog/internal/errors"
)

func TestStatusWithProject(t *testing.T) {
	t1 := time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local)
	t2 := time.Date(2024, 1, 1, 17, 0, 0, 0, time.Local)
	t3 := time.Date(2024, 1, 2, 9, 0, 0, 0, time.Local)

	t.Run("selects all project entries sorted ascending by in", func(t *testing.T) {
		ts := []domain.Entry{
			{Project: "proj-a", In: t3},
			{Project: "proj-b", In: t2, Out: timePtr(t3)},
			{Project: "proj-a", In: t1, Out: timePtr(t2)},
		}

		selected, err := Status(ts, FilterOptions{Project: "proj-a"})
		require.NoError(t, err)
		require.Len(t, selected, 2)
		assert.Equal(t, t1, selected[0].In)
		assert.Equal(t, t3, selected[1].In)
		assert.Nil(t, selected[1].Out)
	})

	t.Run("ignores time bounds on the project branch", func(t *testing.T) {
		ts := []domain.Entry{
			{Project: "proj-a", In: t1, Out: timePtr(t2)},
		}

		selected, err := Status(ts, FilterOptions{Project: "proj-a", Start: "2030-01-01"})
		require.NoError(t, err)
		assert.Len(t, selected, 1)
	})

	t.Run("fails with not found for unknown project", func(t *testing.T) {
		ts := []domain.Entry{{Project: "proj-b", In: t1}}

		_, err := Status(ts, FilterOptions{Project: "proj-a"})
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
		assert.Contains(t, err.Error(), "proj-a")
	})
}

func TestStatusAcrossProjects(t *testing.T) {
	day := func(d, h int) time.Time {
		return time.Date(2024, 1, d, h, 0, 0, 0, time.Local)
	}

	t.Run("selects the most recent entry per project", func(t *testing.T) {
		ts := []domain.Entry{
			{Project: "proj-b", In: day(3, 9)},
			{Project: "proj-a", In: day(2, 9), Out: timePtr(day(2, 17))},
			{Project: "proj-a", In: day(1, 9), Out: timePtr(day(1, 17))},
		}

		selected, err := Status(ts, FilterOptions{})
		require.NoError(t, err)
		require.Len(t, selected, 2)
		assert.Equal(t, "proj-a", selected[0].Project)
		assert.Equal(t, day(2, 9), selected[0].In)
		assert.Equal(t, "proj-b", selected[1].Project)
	})

	t.Run("start bound disqualifies newer entries but not older ones", func(t *testing.T) {
		ts := []domain.Entry{
			{Project: "proj-a", In: day(5, 9), Out: timePtr(day(5, 17))},
			{Project: "proj-a", In: day(2, 9), Out: timePtr(day(2, 17))},
		}

		// Both entries are after the bound, the newest wins.
		selected, err := Status(ts, FilterOptions{Start: "2024-01-01"})
		require.NoError(t, err)
		require.Len(t, selected, 1)
		assert.Equal(t, day(5, 9), selected[0].In)
	})

	t.Run("end bound falls back to an older qualifying entry", func(t *testing.T) {
		ts := []domain.Entry{
			{Project: "proj-a", In: day(5, 9), Out: timePtr(day(5, 17))},
			{Project: "proj-a", In: day(2, 9), Out: timePtr(day(2, 17))},
		}

		selected, err := Status(ts, FilterOptions{End: "2024-01-03"})
		require.NoError(t, err)
		require.Len(t, selected, 1)
		assert.Equal(t, day(2, 9), selected[0].In)
	})

	t.Run("open entries always satisfy the end bound", func(t *testing.T) {
		ts := []domain.Entry{
			{Project: "proj-a", In: day(5, 9)},
		}

		selected, err := Status(ts, FilterOptions{End: "2024-01-01"})
		require.NoError(t, err)
		assert.Len(t, selected, 1)
	})

	t.Run("fails with not found on an empty timesheet", func(t *testing.T) {
		_, err := Status(nil, FilterOptions{})
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
	})

	t.Run("fails with not found when no entry qualifies", func(t *testing.T) {
		ts := []domain.Entry{
			{Project: "proj-a", In: day(1, 9), Out: timePtr(day(1, 17))},
		}

		_, err := Status(ts, FilterOptions{Start: "2030-01-01"})
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
	})

	t.Run("fails parse on malformed bound", func(t *testing.T) {
		ts := []domain.Entry{{Project: "proj-a", In: day(1, 9)}}

		_, err := Status(ts, FilterOptions{End: "someday"})
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeParse))
	})
}

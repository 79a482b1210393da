package timesheet

import (
	"fmt"
	"sort"

	"hourlog/internal/domain"
	"hourlog/internal/errors"
)

// Status selects the entries for a status report, sorted ascending by in
// time. With a project, every entry of that project is selected and the
// time bounds are not applied. Without a project, each distinct project
// contributes its most recent entry satisfying the bounds: the in time
// not before Start, and the out time not after End (open entries always
// satisfy the End bound here).
func Status(ts []domain.Entry, opts FilterOptions) ([]domain.Entry, error) {
	if opts.Project != "" {
		var selected []domain.Entry
		for _, e := range ts {
			if e.Project == opts.Project {
				selected = append(selected, e)
			}
		}
		if len(selected) == 0 {
			return nil, errors.NewNotFoundError(fmt.Sprintf(
				"no data for project '%s' found", opts.Project))
		}
		sortByIn(selected)
		return selected, nil
	}

	start, end, err := opts.parseBounds()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var selected []domain.Entry
	for _, e := range ts {
		if seen[e.Project] {
			continue
		}
		if start != nil && e.In.Before(*start) {
			continue
		}
		if end != nil && e.Out != nil && e.Out.After(*end) {
			continue
		}
		seen[e.Project] = true
		selected = append(selected, e)
	}
	if len(selected) == 0 {
		return nil, errors.NewNotFoundError("no timesheet data found")
	}
	sortByIn(selected)
	return selected, nil
}

func sortByIn(entries []domain.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].In.Before(entries[j].In)
	})
}

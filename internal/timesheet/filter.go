package timesheet

import (
	"slices"
	"time"

	"hourlog/internal/domain"
)

// FilterOptions narrow a timesheet by project and time window. Start and
// End are ISO-8601 timestamp strings; empty means no bound.
type FilterOptions struct {
	Project string
	Start   string
	End     string
}

// parseBounds resolves the optional Start/End strings into times.
func (o FilterOptions) parseBounds() (start, end *time.Time, err error) {
	if o.Start != "" {
		t, err := domain.ParseTimestamp(o.Start)
		if err != nil {
			return nil, nil, err
		}
		start = &t
	}
	if o.End != "" {
		t, err := domain.ParseTimestamp(o.End)
		if err != nil {
			return nil, nil, err
		}
		end = &t
	}
	return start, end, nil
}

// Filter returns the entries matching the given options. With no options
// set the input is returned unchanged. An entry survives when its
// project matches, its in time is not before Start and its out time is
// not after End; open entries never satisfy an End bound. The surviving
// entries come back in reversed traversal order.
func Filter(ts []domain.Entry, opts FilterOptions) ([]domain.Entry, error) {
	if opts.Project == "" && opts.Start == "" && opts.End == "" {
		return ts, nil
	}
	start, end, err := opts.parseBounds()
	if err != nil {
		return nil, err
	}

	filtered := make([]domain.Entry, 0, len(ts))
	for _, e := range ts {
		if opts.Project != "" && e.Project != opts.Project {
			continue
		}
		if start != nil && e.In.Before(*start) {
			continue
		}
		if end != nil && (e.Out == nil || e.Out.After(*end)) {
			continue
		}
		filtered = append(filtered, e)
	}
	slices.Reverse(filtered)
	return filtered, nil
}

// RemoveLast removes the most recent entry, optionally restricted to a
// project. Without a project the head of the sequence is dropped
// whatever project it belongs to; a sequence of one entry or fewer
// empties out. With a project, the first matching entry from the head is
// removed and a missing match leaves the timesheet unchanged.
func RemoveLast(ts []domain.Entry, project string) []domain.Entry {
	if project == "" {
		if len(ts) > 1 {
			return ts[1:]
		}
		return []domain.Entry{}
	}
	for i := range ts {
		if ts[i].Project == project {
			return append(ts[:i:i], ts[i+1:]...)
		}
	}
	return ts
}

// Package timesheet implements the timesheet operations: clocking in and
// out, filtering, deleting the most recent entry and selecting entries
// for a status report. All operations work on the full entry sequence,
// newest first, and are pure aside from reading the current time.
package timesheet

import (
	"fmt"
	"strings"
	"time"

	"hourlog/internal/domain"
	"hourlog/internal/errors"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// joinDescription joins description words into a single string, or nil
// when no words were given.
func joinDescription(words []string) *string {
	joined := strings.TrimSpace(strings.Join(words, " "))
	if joined == "" {
		return nil
	}
	return &joined
}

// ClockIn prepends a new open entry for the given project. The start
// time defaults to now when no start argument is given. At most one open
// entry may exist per project.
func ClockIn(ts []domain.Entry, project string, description []string, start string) ([]domain.Entry, error) {
	if project == "" {
		return nil, errors.NewValidationError("no project name was given", nil)
	}

	for _, e := range ts {
		if e.Project == project {
			if e.IsOpen() {
				return nil, errors.NewConflictError(fmt.Sprintf(
					"already clocked in for project '%s' at '%s'",
					project, domain.FormatTimestamp(e.In)))
			}
			break
		}
	}

	in := timeNow()
	if start != "" {
		parsed, err := domain.ParseTimestamp(start)
		if err != nil {
			return nil, err
		}
		in = parsed
	}

	entry := domain.NewEntry(project, in, joinDescription(description))
	return append([]domain.Entry{entry}, ts...), nil
}

// ClockOut closes the most recent entry for the given project. The entry
// is mutated in place: the start time may be revised, the out time is
// set, and the description is filled unless one is already stored. A
// description must be available from either the call or storage.
func ClockOut(ts []domain.Entry, project string, description []string, start, end string) ([]domain.Entry, error) {
	if project == "" {
		return nil, errors.NewValidationError("no project name was given", nil)
	}
	desc := joinDescription(description)

	for i := range ts {
		if ts[i].Project != project {
			continue
		}
		if !ts[i].IsOpen() {
			return nil, errors.NewConflictError(fmt.Sprintf(
				"no clock-in specified for project '%s'", project))
		}

		st := ts[i].In
		if start != "" {
			parsed, err := domain.ParseTimestamp(start)
			if err != nil {
				return nil, err
			}
			st = parsed
		}
		et := timeNow()
		if end != "" {
			parsed, err := domain.ParseTimestamp(end)
			if err != nil {
				return nil, err
			}
			et = parsed
		}

		if !et.After(st) {
			return nil, errors.NewValidationError("end time must be later than start time", nil)
		}
		if desc == nil && ts[i].Description == nil {
			return nil, errors.NewValidationError("please specify a description of work completed", nil)
		}

		ts[i].In = st
		ts[i].Out = &et
		if desc != nil {
			ts[i].Description = desc
		}
		return ts, nil
	}

	return nil, errors.NewNotFoundError(fmt.Sprintf(
		"did not find a clock-in time for project '%s'", project))
}

package jsonfile

import (
	"encoding/json"

	"hourlog/internal/domain"
)

// record is the serialized form of a timesheet entry. Timestamps are
// ISO-8601 strings; out and description are nullable.
type record struct {
	Project     string  `json:"project"`
	In          string  `json:"in"`
	Out         *string `json:"out"`
	Description *string `json:"description"`
}

// toRecord converts a domain entry to its serialized form.
func toRecord(e domain.Entry) record {
	r := record{
		Project:     e.Project,
		In:          e.In.Format(domain.StorageTimeFormat),
		Description: e.Description,
	}
	if e.Out != nil {
		out := e.Out.Format(domain.StorageTimeFormat)
		r.Out = &out
	}
	return r
}

// toEntry converts a serialized record back to a domain entry.
func (r record) toEntry() (domain.Entry, error) {
	in, err := domain.ParseTimestamp(r.In)
	if err != nil {
		return domain.Entry{}, err
	}
	e := domain.Entry{
		Project:     r.Project,
		In:          in,
		Description: r.Description,
	}
	if r.Out != nil {
		out, err := domain.ParseTimestamp(*r.Out)
		if err != nil {
			return domain.Entry{}, err
		}
		e.Out = &out
	}
	return e, nil
}

// Marshal renders entries in the on-disk record form. A nil or empty
// entry sequence renders as an empty list, not null.
func Marshal(entries []domain.Entry) ([]byte, error) {
	records := make([]record, 0, len(entries))
	for _, e := range entries {
		records = append(records, toRecord(e))
	}
	return json.Marshal(records)
}

// Unmarshal parses the on-disk record form into entries.
func Unmarshal(data []byte) ([]domain.Entry, error) {
	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	entries := make([]domain.Entry, 0, len(records))
	for _, r := range records {
		e, err := r.toEntry()
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

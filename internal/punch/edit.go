package punch

import (
	"fmt"

	"github.com/punch-cli/punch/internal/db"
	"github.com/punch-cli/punch/internal/models"
	"github.com/punch-cli/punch/internal/timeparse"
)

// EditOptions carries the changes for one edit. Nil fields are left
// untouched. Reference picks the target entry; empty means the active
// entry or, failing that, the most recent one.
type EditOptions struct {
	Reference string
	TaskName  *string
	Project   *string
	Start     *string
	End       *string
}

// Edit applies the requested changes to one resolved entry. Time texts
// are parsed against the entry's current start time, so "14:00" lands on
// the day the entry was worked, not today. The merged start/end pair is
// validated before anything is written: editing only the start can still
// fail against the existing end.
func (s *Service) Edit(opts EditOptions) (*models.Entry, error) {
	entry, err := s.Resolve(opts.Reference)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{
		"updated_at": s.now(),
	}

	if opts.TaskName != nil {
		fields["task_name"] = *opts.TaskName
	}
	if opts.Project != nil {
		fields["project"] = *opts.Project
	}

	startTime := entry.StartTime
	endTime := entry.EndTime

	if opts.Start != nil {
		startTime, err = timeparse.Parse(*opts.Start, entry.StartTime)
		if err != nil {
			return nil, err
		}
		fields["start_time"] = startTime
	}
	if opts.End != nil {
		t, err := timeparse.Parse(*opts.End, entry.StartTime)
		if err != nil {
			return nil, err
		}
		endTime = &t
		fields["end_time"] = t
	}

	if endTime != nil && !endTime.After(startTime) {
		return nil, &InvalidEndTimeError{StartTime: startTime, EndTime: *endTime}
	}

	updated, err := s.store.Update(entry.ID, fields)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, &db.StoreError{Op: "edit", Err: fmt.Errorf("entry %s vanished during update", entry.ID)}
	}
	return updated, nil
}

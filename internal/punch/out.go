package punch

import (
	"fmt"

	"github.com/punch-cli/punch/internal/db"
	"github.com/punch-cli/punch/internal/models"
	"github.com/punch-cli/punch/internal/timeparse"
)

// PunchOut closes the active entry. An empty atText ends it now;
// otherwise atText is parsed against the current day ("14:00", "2pm",
// "2026-01-18 14:00"). The end time must be strictly after the entry's
// start; nothing is written when validation fails.
func (s *Service) PunchOut(atText string) (*models.Entry, error) {
	active, err := s.store.FindActive()
	if err != nil {
		return nil, err
	}
	if active == nil {
		return nil, ErrNoActiveTask
	}

	now := s.now()
	endTime := now
	if atText != "" {
		endTime, err = timeparse.Parse(atText, now)
		if err != nil {
			return nil, err
		}
	}

	if !endTime.After(active.StartTime) {
		return nil, &InvalidEndTimeError{StartTime: active.StartTime, EndTime: endTime}
	}

	updated, err := s.store.Update(active.ID, map[string]any{
		"end_time":   endTime,
		"updated_at": now,
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, &db.StoreError{Op: "punch out", Err: fmt.Errorf("entry %s vanished during update", active.ID)}
	}
	return updated, nil
}

package punch

import (
	"github.com/punch-cli/punch/internal/models"
)

// PunchIn starts tracking taskName, optionally under a project. Fails
// with TaskAlreadyRunningError while another entry is active.
func (s *Service) PunchIn(taskName string, project *string) (*models.Entry, error) {
	active, err := s.store.FindActive()
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, &TaskAlreadyRunningError{
			TaskName:  active.TaskName,
			StartTime: active.StartTime,
		}
	}

	entry := &models.Entry{
		TaskName:  taskName,
		Project:   project,
		StartTime: s.now(),
	}
	return s.store.Insert(entry)
}

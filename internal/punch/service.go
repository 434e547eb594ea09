// Package punch implements the time entry lifecycle: starting and stopping
// work, editing past entries, and querying the log. All invariants —
// single active entry, strict start/end ordering — are enforced here, not
// in the store.
package punch

import (
	"time"

	"github.com/punch-cli/punch/internal/db"
	"github.com/punch-cli/punch/internal/models"
)

// Service runs lifecycle operations against an injected entry store.
// One Service is built per CLI invocation.
type Service struct {
	store *db.EntryStore
	now   func() time.Time
}

// NewService wraps the store with a real clock.
func NewService(store *db.EntryStore) *Service {
	return &Service{store: store, now: time.Now}
}

// Active returns the running entry, or nil when nothing is being tracked.
func (s *Service) Active() (*models.Entry, error) {
	return s.store.FindActive()
}

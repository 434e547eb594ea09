package db

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/punch-cli/punch/internal/models"
)

// EntryStore is the persistence surface for time entries. It owns no
// policy: invariants like "one active entry" live in the punch package.
type EntryStore struct {
	db *gorm.DB
}

// NewEntryStore wraps an open database handle.
func NewEntryStore(gdb *gorm.DB) *EntryStore {
	return &EntryStore{db: gdb}
}

// Insert persists a new entry, assigning its random id and bookkeeping
// timestamps.
func (s *EntryStore) Insert(entry *models.Entry) (*models.Entry, error) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if err := s.db.Create(entry).Error; err != nil {
		return nil, wrapStoreErr("insert", err)
	}
	return entry, nil
}

// FindActive returns the running entry, or nil when nothing is active.
func (s *EntryStore) FindActive() (*models.Entry, error) {
	var entry models.Entry
	err := s.db.Where("end_time IS NULL").First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapStoreErr("find active", err)
	}
	return &entry, nil
}

// FindMostRecent returns the entry with the latest start time, or nil on
// an empty store.
func (s *EntryStore) FindMostRecent() (*models.Entry, error) {
	var entry models.Entry
	err := s.db.Order("start_time DESC").First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapStoreErr("find most recent", err)
	}
	return &entry, nil
}

// FindAtOffsetByRecency returns the entry at the given zero-based offset
// into the start-time-descending ordering, or nil past the end.
func (s *EntryStore) FindAtOffsetByRecency(offset int) (*models.Entry, error) {
	var entries []models.Entry
	err := s.db.Order("start_time DESC").Offset(offset).Limit(1).Find(&entries).Error
	if err != nil {
		return nil, wrapStoreErr("find at offset", err)
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return &entries[0], nil
}

// FindByIDPrefix returns every entry whose id starts with prefix,
// ordered by id so ambiguous-prefix listings are stable. The comparison
// is case-sensitive, unlike sqlite's LIKE.
func (s *EntryStore) FindByIDPrefix(prefix string) ([]models.Entry, error) {
	var entries []models.Entry
	err := s.db.
		Where("substr(id, 1, ?) = ?", len(prefix), prefix).
		Order("id").
		Find(&entries).Error
	if err != nil {
		return nil, wrapStoreErr("find by id prefix", err)
	}
	return entries, nil
}

// FindStartedSince returns entries with start_time >= since, optionally
// restricted to an exact project, ascending by start time. Active entries
// are included.
func (s *EntryStore) FindStartedSince(since time.Time, project *string) ([]models.Entry, error) {
	q := s.db.Where("start_time >= ?", since)
	if project != nil {
		q = q.Where("project = ?", *project)
	}

	var entries []models.Entry
	if err := q.Order("start_time ASC").Find(&entries).Error; err != nil {
		return nil, wrapStoreErr("find started since", err)
	}
	return entries, nil
}

// Update applies the given column changes to one entry and returns the
// updated row. A nil result with nil error means no row matched the id,
// which callers treat as a consistency failure.
func (s *EntryStore) Update(id string, fields map[string]any) (*models.Entry, error) {
	res := s.db.Model(&models.Entry{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, wrapStoreErr("update", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}

	var entry models.Entry
	if err := s.db.Where("id = ?", id).First(&entry).Error; err != nil {
		return nil, wrapStoreErr("update reload", err)
	}
	return &entry, nil
}

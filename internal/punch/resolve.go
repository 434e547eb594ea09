package punch

import (
	"regexp"
	"strconv"

	"github.com/punch-cli/punch/internal/models"
)

// positionRe matches relative position references like -1 or -2. The
// anchor on the leading dash keeps ordinary id prefixes out: "2" or "ab3"
// is always a prefix, never a position.
var positionRe = regexp.MustCompile(`^-\d+$`)

// Resolve maps a user-supplied reference to exactly one entry.
//
// An empty reference means the active entry, falling back to the most
// recently started one. "-N" is the Nth most recent entry by start time.
// Anything else is a case-sensitive id prefix that must match exactly one
// entry.
func (s *Service) Resolve(reference string) (*models.Entry, error) {
	if reference == "" {
		return s.findActiveOrLast()
	}
	if positionRe.MatchString(reference) {
		return s.findByPosition(reference)
	}
	return s.findByIDPrefix(reference)
}

func (s *Service) findActiveOrLast() (*models.Entry, error) {
	entry, err := s.store.FindActive()
	if err != nil {
		return nil, err
	}
	if entry == nil {
		entry, err = s.store.FindMostRecent()
		if err != nil {
			return nil, err
		}
	}
	if entry == nil {
		return nil, ErrNoEntries
	}
	return entry, nil
}

func (s *Service) findByPosition(position string) (*models.Entry, error) {
	// positionRe guarantees the slice past the dash is all digits.
	n, err := strconv.Atoi(position[1:])
	if err != nil {
		return nil, &EntryNotFoundError{Identifier: position}
	}

	entry, err := s.store.FindAtOffsetByRecency(n - 1)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, &EntryNotFoundError{Identifier: position}
	}
	return entry, nil
}

func (s *Service) findByIDPrefix(prefix string) (*models.Entry, error) {
	matches, err := s.store.FindByIDPrefix(prefix)
	if err != nil {
		return nil, err
	}

	switch len(matches) {
	case 0:
		return nil, &EntryNotFoundError{Identifier: prefix}
	case 1:
		return &matches[0], nil
	default:
		ids := make([]string, len(matches))
		for i, m := range matches {
			ids[i] = m.ID
		}
		return nil, &AmbiguousIDPrefixError{Prefix: prefix, Matches: ids}
	}
}

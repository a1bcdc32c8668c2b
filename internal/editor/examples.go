package editor

import (
	"slices"

	"elemental/internal/models"
)

// Examples returns a copy of the working example list in display order.
func (s *Session) Examples() []models.ExampleEntry {
	return slices.Clone(s.examples)
}

// AddExample appends a pair to the end of the working list. Empty and
// duplicate pairs are accepted.
func (s *Session) AddExample(fromStr, resultStr string) (models.ExampleEntry, error) {
	if s.outcome != Pending {
		return models.ExampleEntry{}, ErrSessionClosed
	}
	entry := models.ExampleEntry{
		ID:          s.newID(),
		ExamplePair: models.ExamplePair{FromStr: fromStr, ResultStr: resultStr},
	}
	s.examples = append(s.examples, entry)
	return entry, nil
}

// UpdateExample replaces the pair held by the entry with the given id.
func (s *Session) UpdateExample(id, fromStr, resultStr string) error {
	if s.outcome != Pending {
		return ErrSessionClosed
	}
	i := s.indexOf(id)
	if i < 0 {
		return ErrExampleNotFound
	}
	s.examples[i].FromStr = fromStr
	s.examples[i].ResultStr = resultStr
	return nil
}

// RemoveExample drops the entry with the given id from the working list.
// Unknown ids return ErrExampleNotFound and leave the list unchanged.
func (s *Session) RemoveExample(id string) error {
	if s.outcome != Pending {
		return ErrSessionClosed
	}
	i := s.indexOf(id)
	if i < 0 {
		return ErrExampleNotFound
	}
	s.examples = slices.Delete(s.examples, i, i+1)
	return nil
}

func (s *Session) indexOf(id string) int {
	return slices.IndexFunc(s.examples, func(e models.ExampleEntry) bool {
		return e.ID == id
	})
}

package domain

import "github.com/samber/lo"

// CompletionSet is an insertion-ordered set of completed item ids.
// The zero value is an empty set ready to use.
type CompletionSet struct {
	ids []string
}

// NewCompletionSet builds a set from ids, dropping empties and duplicates.
func NewCompletionSet(ids ...string) CompletionSet {
	clean := lo.Uniq(lo.Compact(ids))
	return CompletionSet{ids: clean}
}

// Toggle flips membership of id and returns the new membership. The empty
// id is never a member.
func (s *CompletionSet) Toggle(id string) bool {
	if id == "" {
		return false
	}
	if s.Contains(id) {
		s.ids = lo.Without(s.ids, id)
		return false
	}
	s.ids = append(s.ids, id)
	return true
}

func (s CompletionSet) Contains(id string) bool {
	return lo.Contains(s.ids, id)
}

func (s CompletionSet) Len() int {
	return len(s.ids)
}

// IDs returns a copy of the members in insertion order.
func (s CompletionSet) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// CountIn returns how many members satisfy known. Used to ignore stale
// ids left over from an earlier catalog.
func (s CompletionSet) CountIn(known func(string) bool) int {
	return lo.CountBy(s.ids, known)
}

func (s *CompletionSet) Clear() {
	s.ids = nil
}

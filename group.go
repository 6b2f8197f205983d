package hpo

import (
	"sort"

	"github.com/hpoeval/hpo/model"
)

// HpoGroup is an ordered, deduplicated set of term ids. It is the workhorse
// container used for parents, children, transitive closures, and patient
// phenotype profiles.
//
// HpoGroup is a plain sorted slice rather than a hand-rolled small-vector
// type: Go's escape analysis already keeps short-lived, small slices off
// the heap in the common case, and a hand-rolled inline buffer would
// duplicate what the allocator already does for the single-digit-to-low-
// tens element counts typical of direct parents/children.
type HpoGroup struct {
	ids []model.TermID
}

// NewHpoGroup builds a group from the given ids, sorting and deduplicating.
func NewHpoGroup(ids ...model.TermID) HpoGroup {
	g := HpoGroup{ids: append([]model.TermID(nil), ids...)}
	g.normalize()
	return g
}

// FromSorted wraps an already sorted, deduplicated slice without copying or
// re-sorting it. Callers must not mutate ids afterward.
func FromSorted(ids []model.TermID) HpoGroup {
	return HpoGroup{ids: ids}
}

func (g *HpoGroup) normalize() {
	sort.Slice(g.ids, func(i, j int) bool { return g.ids[i] < g.ids[j] })
	g.ids = dedupSorted(g.ids)
}

func dedupSorted(ids []model.TermID) []model.TermID {
	if len(ids) < 2 {
		return ids
	}
	out := ids[:1]
	for _, id := range ids[1:] {
		if id != out[len(out)-1] {
			out = append(out, id)
		}
	}
	return out
}

// Len returns the number of members.
func (g HpoGroup) Len() int { return len(g.ids) }

// IsEmpty reports whether the group has no members.
func (g HpoGroup) IsEmpty() bool { return len(g.ids) == 0 }

// Contains reports membership via binary search, O(log n).
func (g HpoGroup) Contains(id model.TermID) bool {
	i := sort.Search(len(g.ids), func(i int) bool { return g.ids[i] >= id })
	return i < len(g.ids) && g.ids[i] == id
}

// Iter returns the members in ascending order. The returned slice is
// shared with the group's internal storage and must not be mutated.
func (g HpoGroup) Iter() []model.TermID { return g.ids }

// Insert adds id, keeping the group sorted; no-op if already present.
func (g *HpoGroup) Insert(id model.TermID) {
	i := sort.Search(len(g.ids), func(i int) bool { return g.ids[i] >= id })
	if i < len(g.ids) && g.ids[i] == id {
		return
	}
	g.ids = append(g.ids, model.TermID(0))
	copy(g.ids[i+1:], g.ids[i:])
	g.ids[i] = id
}

// Union returns a new group containing every id in g or other, via a
// linear two-pointer merge of the two sorted slices.
func (g HpoGroup) Union(other HpoGroup) HpoGroup {
	out := make([]model.TermID, 0, len(g.ids)+len(other.ids))
	i, j := 0, 0
	for i < len(g.ids) && j < len(other.ids) {
		a, b := g.ids[i], other.ids[j]
		switch {
		case a < b:
			out = append(out, a)
			i++
		case a > b:
			out = append(out, b)
			j++
		default:
			out = append(out, a)
			i++
			j++
		}
	}
	out = append(out, g.ids[i:]...)
	out = append(out, other.ids[j:]...)
	return HpoGroup{ids: out}
}

// Intersection returns a new group of ids present in both g and other.
func (g HpoGroup) Intersection(other HpoGroup) HpoGroup {
	out := make([]model.TermID, 0, min(len(g.ids), len(other.ids)))
	i, j := 0, 0
	for i < len(g.ids) && j < len(other.ids) {
		a, b := g.ids[i], other.ids[j]
		switch {
		case a < b:
			i++
		case a > b:
			j++
		default:
			out = append(out, a)
			i++
			j++
		}
	}
	return HpoGroup{ids: out}
}

// Difference returns the ids in g that are not in other (g \ other).
func (g HpoGroup) Difference(other HpoGroup) HpoGroup {
	out := make([]model.TermID, 0, len(g.ids))
	i, j := 0, 0
	for i < len(g.ids) && j < len(other.ids) {
		a, b := g.ids[i], other.ids[j]
		switch {
		case a < b:
			out = append(out, a)
			i++
		case a > b:
			j++
		default:
			i++
			j++
		}
	}
	out = append(out, g.ids[i:]...)
	return HpoGroup{ids: out}
}

// SymmetricDifference returns the ids that are in exactly one of g, other.
func (g HpoGroup) SymmetricDifference(other HpoGroup) HpoGroup {
	out := make([]model.TermID, 0, len(g.ids)+len(other.ids))
	i, j := 0, 0
	for i < len(g.ids) && j < len(other.ids) {
		a, b := g.ids[i], other.ids[j]
		switch {
		case a < b:
			out = append(out, a)
			i++
		case a > b:
			out = append(out, b)
			j++
		default:
			i++
			j++
		}
	}
	out = append(out, g.ids[i:]...)
	out = append(out, other.ids[j:]...)
	return HpoGroup{ids: out}
}

// Equal reports whether g and other contain exactly the same ids.
func (g HpoGroup) Equal(other HpoGroup) bool {
	if len(g.ids) != len(other.ids) {
		return false
	}
	for i := range g.ids {
		if g.ids[i] != other.ids[i] {
			return false
		}
	}
	return true
}

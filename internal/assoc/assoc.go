// Package assoc implements upward-closed gene/disease association sets
// keyed by compact arena index, backed by a compressed roaring bitmap.
//
// A term's association set can, after upward-closure propagation, hold
// hundreds of thousands of entries (every descendant's direct annotations
// are visible on every ancestor); a plain map[uint32]struct{} would spend
// far more memory on bucket overhead than the set actually needs once
// cardinality gets into that range, and offers no cheap union. Roaring
// bitmaps give both: compact storage and an O(n) Or for the propagation
// pass in the root package's Builder.Freeze.
package assoc

import "github.com/RoaringBitmap/roaring/v2"

// Set is an association set of compact arena indexes (gene, disease, or
// term positions, always non-negative, cast to uint32 at the call site).
type Set struct {
	bm *roaring.Bitmap
}

// New creates an empty Set.
func New() *Set {
	return &Set{bm: roaring.New()}
}

// Add inserts idx into the set.
func (s *Set) Add(idx uint32) {
	s.bm.Add(idx)
}

// Contains reports whether idx is a member.
func (s *Set) Contains(idx uint32) bool {
	return s.bm.Contains(idx)
}

// Cardinality returns the number of members.
func (s *Set) Cardinality() int {
	return int(s.bm.GetCardinality())
}

// Clone returns an independent copy.
func (s *Set) Clone() *Set {
	return &Set{bm: s.bm.Clone()}
}

// UnionWith merges other's members into s in place.
func (s *Set) UnionWith(other *Set) {
	s.bm.Or(other.bm)
}

// IntersectionCardinality returns |s ∩ other| without materializing the
// intersection, used by the hypergeometric enrichment draw count.
func (s *Set) IntersectionCardinality(other *Set) int {
	return int(s.bm.AndCardinality(other.bm))
}

// ToSlice returns the sorted member indexes.
func (s *Set) ToSlice() []uint32 {
	return s.bm.ToArray()
}

// Freeze finalizes the bitmap's internal container representation for
// fastest subsequent reads. Call once after the last Add/UnionWith.
func (s *Set) Freeze() {
	s.bm.RunOptimize()
}

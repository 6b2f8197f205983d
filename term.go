package hpo

import (
	"github.com/hpoeval/hpo/model"
)

// Term is a lightweight, copyable view onto one term record inside an
// Ontology. It is valid for the lifetime of the Ontology it was obtained
// from.
type Term struct {
	ont *Ontology
	idx int
}

func (t Term) node() termNode { return t.ont.terms.Get(t.idx) }

// ID returns the term's HPO identifier.
func (t Term) ID() model.TermID { return t.node().rec.ID }

// Name returns the term's label.
func (t Term) Name() string { return t.node().rec.Name }

// Obsolete reports whether this term stanza is marked is_obsolete.
func (t Term) Obsolete() bool { return t.node().rec.Obsolete }

// ReplacedBy returns the successor term id named by a replaced_by tag, or
// the zero TermID if none was given.
func (t Term) ReplacedBy() model.TermID { return t.node().rec.ReplacedBy }

// ModifierFlags returns the clinical-modifier subtree bitmask this term
// belongs to, if any.
func (t Term) ModifierFlags() model.ModifierFlags { return t.node().rec.ModifierFlags }

// HasModifier reports whether this term carries the given modifier flag.
func (t Term) HasModifier(f model.ModifierFlags) bool { return t.node().rec.ModifierFlags.Has(f) }

// Parents returns the term's direct is_a targets.
func (t Term) Parents() HpoGroup { return t.node().parents }

// Children returns the terms whose is_a targets include this term.
func (t Term) Children() HpoGroup { return t.node().children }

// AllAncestors returns the term's full transitive closure of parents,
// excluding the term itself.
func (t Term) AllAncestors() HpoGroup { return t.node().allParents }

// AllAncestorsInclusive returns AllAncestors() plus the term itself; this
// is the set most similarity scorers operate over (mica, union/intersection
// sums).
func (t Term) AllAncestorsInclusive() HpoGroup {
	return t.node().allParents.Union(NewHpoGroup(t.ID()))
}

// Genes returns the ids of genes associated with this term or any of its
// descendants.
func (t Term) Genes() []model.GeneID {
	raw := t.node().genes.ToSlice()
	out := make([]model.GeneID, 0, len(raw))
	for _, g := range raw {
		out = append(out, t.ont.genes.Get(int(g)).rec.ID)
	}
	return out
}

// Diseases returns the ids of diseases associated with this term or any of
// its descendants.
func (t Term) Diseases() []model.DiseaseID {
	raw := t.node().diseases.ToSlice()
	out := make([]model.DiseaseID, 0, len(raw))
	for _, d := range raw {
		out = append(out, t.ont.diseases.Get(int(d)).rec.ID)
	}
	return out
}

// InformationContent returns the term's information content under the
// given flavor.
func (t Term) InformationContent(flavor model.Flavor) float64 {
	return t.node().ic[flavor]
}

// IsAncestorOf reports whether t is a (possibly indirect, non-strict)
// ancestor of other.
func (t Term) IsAncestorOf(other Term) bool {
	return other.node().allParents.Contains(t.ID()) || t.ID() == other.ID()
}

// IsDescendantOf reports whether t is a (possibly indirect, non-strict)
// descendant of other.
func (t Term) IsDescendantOf(other Term) bool {
	return other.IsAncestorOf(t)
}

// CommonAncestors returns the set of terms that are ancestors of (or equal
// to) both t and other.
func (t Term) CommonAncestors(other Term) HpoGroup {
	return t.AllAncestorsInclusive().Intersection(other.AllAncestorsInclusive())
}

// Distance returns the length, in edges, of the shortest undirected path
// through the is_a graph between t and other. Two equal terms are distance
// 0. If no path exists (should not happen within one ontology's connected
// term graph) it returns -1.
func (t Term) Distance(other Term) int {
	if t.idx == other.idx {
		return 0
	}
	return bidirectionalBFS(t.ont, t.idx, other.idx)
}

func (t Term) neighbors() []int {
	node := t.node()
	out := make([]int, 0, node.parents.Len()+node.children.Len())
	for _, p := range node.parents.Iter() {
		if idx, ok := t.ont.termIndex(p); ok {
			out = append(out, idx)
		}
	}
	for _, c := range node.children.Iter() {
		if idx, ok := t.ont.termIndex(c); ok {
			out = append(out, idx)
		}
	}
	return out
}

// bidirectionalBFS runs two simultaneous breadth-first searches, one from
// each end, over the unweighted is_a/inverse-is_a graph and returns the
// length of the shortest connecting path. The ontology's term graph is
// small-diameter and sparse, so a pair of plain-slice frontiers beats the
// bookkeeping of a priority queue here: every edge has weight 1.
func bidirectionalBFS(o *Ontology, start, goal int) int {
	distFromStart := map[int]int{start: 0}
	distFromGoal := map[int]int{goal: 0}
	frontierStart := []int{start}
	frontierGoal := []int{goal}

	for len(frontierStart) > 0 && len(frontierGoal) > 0 {
		if d, ok := meetingDistance(distFromStart, distFromGoal); ok {
			return d
		}

		frontierStart = expandFrontier(o, frontierStart, distFromStart)
		if d, ok := meetingDistance(distFromStart, distFromGoal); ok {
			return d
		}
		frontierGoal = expandFrontier(o, frontierGoal, distFromGoal)
	}

	if d, ok := meetingDistance(distFromStart, distFromGoal); ok {
		return d
	}
	return -1
}

func expandFrontier(o *Ontology, frontier []int, dist map[int]int) []int {
	next := make([]int, 0, len(frontier))
	for _, u := range frontier {
		du := dist[u]
		for _, v := range (Term{ont: o, idx: u}).neighbors() {
			if _, seen := dist[v]; seen {
				continue
			}
			dist[v] = du + 1
			next = append(next, v)
		}
	}
	return next
}

func meetingDistance(a, b map[int]int) (int, bool) {
	best := -1
	for node, da := range a {
		if db, ok := b[node]; ok {
			total := da + db
			if best == -1 || total < best {
				best = total
			}
		}
	}
	if best == -1 {
		return 0, false
	}
	return best, true
}

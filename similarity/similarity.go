package similarity

import (
	"fmt"

	"github.com/hpoeval/hpo/model"
)

// TermInfo is the minimal per-term data a scorer needs: the term's id and
// its ancestor closure INCLUDING the term itself (A = all_parents ∪ {self}
// in spec terms, sorted ascending).
type TermInfo struct {
	ID         model.TermID
	Ancestors  []model.TermID
	AssocCount int // gene+disease association count, used by Mutation
}

// Context supplies the cross-cutting lookups scorers need beyond the two
// TermInfo values.
type Context struct {
	// IC returns the information content of a term under the caller's
	// chosen flavor.
	IC func(model.TermID) float64
	// Distance returns the shortest path length (in is_a hops) between two
	// terms. Required only by DistanceGraph.
	Distance func(a, b model.TermID) int
}

// ScoreFunc computes a single term-pair similarity score.
type ScoreFunc func(a, b TermInfo, ctx Context) float64

// Metric names a term-pair scorer.
type Metric int

const (
	Resnik Metric = iota
	Lin
	Jc
	Rel
	Ic
	GraphIc
	DistanceGraph
	Mutation
)

func (m Metric) String() string {
	switch m {
	case Resnik:
		return "Resnik"
	case Lin:
		return "Lin"
	case Jc:
		return "Jc"
	case Rel:
		return "Rel"
	case Ic:
		return "Ic"
	case GraphIc:
		return "GraphIc"
	case DistanceGraph:
		return "DistanceGraph"
	case Mutation:
		return "Mutation"
	default:
		return "Unknown"
	}
}

// Provider resolves a Metric to its ScoreFunc.
func Provider(m Metric) (ScoreFunc, error) {
	switch m {
	case Resnik:
		return resnikScore, nil
	case Lin:
		return linScore, nil
	case Jc:
		return jcScore, nil
	case Rel:
		return relScore, nil
	case Ic:
		return icScore, nil
	case GraphIc:
		return graphIcScore, nil
	case DistanceGraph:
		return distanceGraphScore, nil
	case Mutation:
		return mutationScore, nil
	default:
		return nil, fmt.Errorf("similarity: unknown metric %d", m)
	}
}

// mica returns the information content of the maximally informative common
// ancestor in A ∩ B, and whether the intersection is non-empty. Both
// ancestor slices are sorted ascending, so this is a linear merge.
func mica(a, b TermInfo, ic func(model.TermID) float64) (float64, bool) {
	i, j := 0, 0
	var best float64
	found := false
	for i < len(a.Ancestors) && j < len(b.Ancestors) {
		x, y := a.Ancestors[i], b.Ancestors[j]
		switch {
		case x < y:
			i++
		case x > y:
			j++
		default:
			if v := ic(x); !found || v > best {
				best = v
				found = true
			}
			i++
			j++
		}
	}
	return best, found
}

// unionSum returns sum_{x in A ∪ B} ic(x).
func unionSum(a, b TermInfo, ic func(model.TermID) float64) float64 {
	var sum float64
	i, j := 0, 0
	for i < len(a.Ancestors) && j < len(b.Ancestors) {
		x, y := a.Ancestors[i], b.Ancestors[j]
		switch {
		case x < y:
			sum += ic(x)
			i++
		case x > y:
			sum += ic(y)
			j++
		default:
			sum += ic(x)
			i++
			j++
		}
	}
	for ; i < len(a.Ancestors); i++ {
		sum += ic(a.Ancestors[i])
	}
	for ; j < len(b.Ancestors); j++ {
		sum += ic(b.Ancestors[j])
	}
	return sum
}

// intersectionSum returns sum_{x in A ∩ B} ic(x).
func intersectionSum(a, b TermInfo, ic func(model.TermID) float64) float64 {
	var sum float64
	i, j := 0, 0
	for i < len(a.Ancestors) && j < len(b.Ancestors) {
		x, y := a.Ancestors[i], b.Ancestors[j]
		switch {
		case x < y:
			i++
		case x > y:
			j++
		default:
			sum += ic(x)
			i++
			j++
		}
	}
	return sum
}

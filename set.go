package hpo

import (
	"context"
	"fmt"

	"github.com/hpoeval/hpo/internal/assoc"
	"github.com/hpoeval/hpo/internal/queue"
	"github.com/hpoeval/hpo/model"
	"github.com/hpoeval/hpo/similarity"
	"github.com/hpoeval/hpo/stats"
)

// HpoSet pairs an HpoGroup with the Ontology it was drawn from. It owns
// its HpoGroup but not the ontology: the Ontology must outlive any HpoSet
// built against it.
type HpoSet struct {
	ont   *Ontology
	group HpoGroup
}

// NewHpoSet builds a set from term ids, ignoring any id not present in ont.
func NewHpoSet(ont *Ontology, ids ...model.TermID) HpoSet {
	kept := make([]model.TermID, 0, len(ids))
	for _, id := range ids {
		if _, ok := ont.GetTerm(id); ok {
			kept = append(kept, id)
		}
	}
	return HpoSet{ont: ont, group: NewHpoGroup(kept...)}
}

// Group returns the underlying sorted, deduplicated id set.
func (s HpoSet) Group() HpoGroup { return s.group }

// Len reports the number of terms in the set.
func (s HpoSet) Len() int { return s.group.Len() }

// ChildNodes keeps only terms with no other set member among their
// descendants: the "leaves" of the set with respect to the is_a DAG.
func (s HpoSet) ChildNodes() HpoSet {
	kept := make([]model.TermID, 0, s.group.Len())
	for _, id := range s.group.Iter() {
		if _, ok := s.ont.GetTerm(id); !ok {
			continue
		}
		isAncestorOfAnother := false
		for _, other := range s.group.Iter() {
			if other == id {
				continue
			}
			ot, ok := s.ont.GetTerm(other)
			if ok && ot.AllAncestors().Contains(id) {
				isAncestorOfAnother = true
				break
			}
		}
		if !isAncestorOfAnother {
			kept = append(kept, id)
		}
	}
	return HpoSet{ont: s.ont, group: NewHpoGroup(kept...)}
}

// AllAncestors returns the union of all_parents across every set member.
func (s HpoSet) AllAncestors() HpoGroup {
	var out HpoGroup
	for _, id := range s.group.Iter() {
		if term, ok := s.ont.GetTerm(id); ok {
			out = out.Union(term.AllAncestors())
		}
	}
	return out
}

// ReplaceObsolete substitutes every obsolete member by its replaced_by
// target when present, and drops it otherwise.
func (s HpoSet) ReplaceObsolete() HpoSet {
	out := make([]model.TermID, 0, s.group.Len())
	for _, id := range s.group.Iter() {
		term, ok := s.ont.GetTerm(id)
		if !ok {
			continue
		}
		if !term.Obsolete() {
			out = append(out, id)
			continue
		}
		if rb := term.ReplacedBy(); rb != 0 {
			if _, ok := s.ont.GetTerm(rb); ok {
				out = append(out, rb)
			}
		}
	}
	return HpoSet{ont: s.ont, group: NewHpoGroup(out...)}
}

// ICStats aggregates information content over an HpoSet's members.
type ICStats struct {
	Max  float64
	Mean float64
	Sum  float64
}

// InformationContent aggregates the information content of every member
// under the given flavor.
func (s HpoSet) InformationContent(flavor model.Flavor) ICStats {
	if s.group.Len() == 0 {
		return ICStats{}
	}
	var sum, max float64
	for i, id := range s.group.Iter() {
		term, ok := s.ont.GetTerm(id)
		if !ok {
			continue
		}
		ic := term.InformationContent(flavor)
		sum += ic
		if i == 0 || ic > max {
			max = ic
		}
	}
	return ICStats{Max: max, Mean: sum / float64(s.group.Len()), Sum: sum}
}

func (s HpoSet) termInfos(flavor model.Flavor) []similarity.TermInfo {
	out := make([]similarity.TermInfo, 0, s.group.Len())
	for _, id := range s.group.Iter() {
		term, ok := s.ont.GetTerm(id)
		if !ok {
			continue
		}
		anc := term.AllAncestorsInclusive().Iter()
		out = append(out, similarity.TermInfo{
			ID:         id,
			Ancestors:  anc,
			AssocCount: len(term.Genes()) + len(term.Diseases()),
		})
	}
	return out
}

func (s HpoSet) similarityContext(flavor model.Flavor) similarity.Context {
	return similarity.Context{
		IC: func(id model.TermID) float64 {
			term, ok := s.ont.GetTerm(id)
			if !ok {
				return 0
			}
			return term.InformationContent(flavor)
		},
		Distance: func(a, b model.TermID) int {
			ta, aok := s.ont.GetTerm(a)
			tb, bok := s.ont.GetTerm(b)
			if !aok || !bok {
				return -1
			}
			return ta.Distance(tb)
		},
	}
}

// Similarity scores this set against other using the given term-pair
// scorer and set-to-set combiner, under opts's information-content flavor
// and matrix-construction concurrency.
func (s HpoSet) Similarity(other HpoSet, scorer similarity.Metric, combiner similarity.CombinerMetric, opts SimilarityOptions) (float64, error) {
	score, err := similarity.Provider(scorer)
	if err != nil {
		return 0, err
	}
	combine, err := similarity.CombinerProvider(combiner)
	if err != nil {
		return 0, err
	}

	as := s.termInfos(opts.Flavor)
	bs := other.termInfos(opts.Flavor)
	sctx := s.similarityContext(opts.Flavor)

	m, err := similarity.BuildMatrix(context.Background(), as, bs, score, sctx, opts.MaxConcurrency)
	if err != nil {
		return 0, err
	}

	var aWeights, bWeights []float64
	if combiner == similarity.Bmwa {
		aWeights = icWeights(as, sctx)
		bWeights = icWeights(bs, sctx)
	}
	return combine(m, aWeights, bWeights), nil
}

func icWeights(terms []similarity.TermInfo, sctx similarity.Context) []float64 {
	out := make([]float64, len(terms))
	for i, t := range terms {
		out[i] = sctx.IC(t.ID)
	}
	return out
}

// EnrichmentResult reports one candidate's hypergeometric enrichment
// against a query HpoSet.
type EnrichmentResult struct {
	Observed       int
	Expected       float64
	FoldEnrichment float64
	PValue         float64

	// CandidateTermCount is the candidate gene/disease's own upward-closed
	// term-association count (the hypergeometric "successes" parameter),
	// carried through so a caller building an enrichment report doesn't
	// need to look the candidate back up in the ontology.
	CandidateTermCount int
}

// GeneEnrichment reports, for every gene in the ontology, its
// hypergeometric enrichment against this set. The population is every
// term in the ontology; a candidate's successes are its own upward-closed
// term-association count; the draw is this set's size; the observed
// overlap is the intersection of the candidate's associated terms with
// this set.
func (s HpoSet) GeneEnrichment() map[model.GeneID]EnrichmentResult {
	out := make(map[model.GeneID]EnrichmentResult, s.ont.NumGenes())
	population := s.ont.NumTerms()
	draws := s.group.Len()
	queryTerms := s.termIndexSet()

	s.ont.IterGenes(func(g Gene) bool {
		observed := s.ont.genes.Get(g.idx).terms.IntersectionCardinality(queryTerms)
		out[g.ID()] = enrichmentFor(population, g.TermCount(), draws, observed)
		return true
	})
	return out
}

// DiseaseEnrichment is GeneEnrichment's analog for diseases.
func (s HpoSet) DiseaseEnrichment() map[model.DiseaseID]EnrichmentResult {
	out := make(map[model.DiseaseID]EnrichmentResult, s.ont.NumDiseases())
	population := s.ont.NumTerms()
	draws := s.group.Len()
	queryTerms := s.termIndexSet()

	s.ont.IterDiseases(func(d Disease) bool {
		observed := s.ont.diseases.Get(d.idx).terms.IntersectionCardinality(queryTerms)
		out[d.ID()] = enrichmentFor(population, d.TermCount(), draws, observed)
		return true
	})
	return out
}

func enrichmentFor(population, successes, draws, observed int) EnrichmentResult {
	expected := stats.Expected(population, successes, draws)
	return EnrichmentResult{
		Observed:           observed,
		Expected:           expected,
		FoldEnrichment:     stats.FoldEnrichment(observed, expected),
		PValue:             stats.SurvivalFunction(population, successes, draws, observed),
		CandidateTermCount: successes,
	}
}

// GeneEnrichmentResult pairs a gene id with its enrichment against a query set.
type GeneEnrichmentResult struct {
	GeneID model.GeneID
	EnrichmentResult
}

// DiseaseEnrichmentResult pairs a disease id with its enrichment against a
// query set.
type DiseaseEnrichmentResult struct {
	DiseaseID model.DiseaseID
	EnrichmentResult
}

// TopGenesByEnrichment returns at most n genes with the smallest p-value
// against this set, most significant first. Every gene is scored, but only
// a bounded max-heap of size n is kept for ranking rather than sorting the
// full gene population, so picking a handful of top hits out of thousands
// of genes costs O(NumGenes * log n) instead of O(NumGenes * log NumGenes).
func (s HpoSet) TopGenesByEnrichment(n int) []GeneEnrichmentResult {
	if n <= 0 {
		return nil
	}
	population := s.ont.NumTerms()
	draws := s.group.Len()
	queryTerms := s.termIndexSet()

	all := make([]GeneEnrichmentResult, 0, s.ont.NumGenes())
	heap := queue.NewMax(n)

	s.ont.IterGenes(func(g Gene) bool {
		observed := s.ont.genes.Get(g.idx).terms.IntersectionCardinality(queryTerms)
		er := enrichmentFor(population, g.TermCount(), draws, observed)
		idx := uint32(len(all))
		all = append(all, GeneEnrichmentResult{GeneID: g.ID(), EnrichmentResult: er})

		if heap.Len() < n {
			heap.PushItem(queue.PriorityQueueItem{Node: idx, Distance: er.PValue})
		} else if top, ok := heap.TopItem(); ok && er.PValue < top.Distance {
			heap.PopItem()
			heap.PushItem(queue.PriorityQueueItem{Node: idx, Distance: er.PValue})
		}
		return true
	})

	return drainRankedByPValue(heap, all)
}

// TopDiseasesByEnrichment is TopGenesByEnrichment's analog for diseases.
func (s HpoSet) TopDiseasesByEnrichment(n int) []DiseaseEnrichmentResult {
	if n <= 0 {
		return nil
	}
	population := s.ont.NumTerms()
	draws := s.group.Len()
	queryTerms := s.termIndexSet()

	all := make([]DiseaseEnrichmentResult, 0, s.ont.NumDiseases())
	heap := queue.NewMax(n)

	s.ont.IterDiseases(func(d Disease) bool {
		observed := s.ont.diseases.Get(d.idx).terms.IntersectionCardinality(queryTerms)
		er := enrichmentFor(population, d.TermCount(), draws, observed)
		idx := uint32(len(all))
		all = append(all, DiseaseEnrichmentResult{DiseaseID: d.ID(), EnrichmentResult: er})

		if heap.Len() < n {
			heap.PushItem(queue.PriorityQueueItem{Node: idx, Distance: er.PValue})
		} else if top, ok := heap.TopItem(); ok && er.PValue < top.Distance {
			heap.PopItem()
			heap.PushItem(queue.PriorityQueueItem{Node: idx, Distance: er.PValue})
		}
		return true
	})

	return drainRankedByPValue(heap, all)
}

// drainRankedByPValue pops heap (a max-heap keyed on p-value, so the worst
// survivor comes out first) and reverses the result so index 0 is the most
// significant (smallest p-value) entry.
func drainRankedByPValue[T any](heap *queue.PriorityQueue, all []T) []T {
	out := make([]T, heap.Len())
	for i := len(out) - 1; i >= 0; i-- {
		item, _ := heap.PopItem()
		out[i] = all[item.Node]
	}
	return out
}

// termIndexSet builds the bitmap of this set's member term indices, used to
// compute observed overlap counts against every gene/disease's term-index
// bitmap via IntersectionCardinality in one pass each, rather than a linear
// scan per candidate.
func (s HpoSet) termIndexSet() *assoc.Set {
	set := assoc.New()
	for _, id := range s.group.Iter() {
		if idx, ok := s.ont.termIndex(id); ok {
			set.Add(uint32(idx))
		}
	}
	set.Freeze()
	return set
}

// String renders the set's member ids for debugging.
func (s HpoSet) String() string {
	return fmt.Sprintf("HpoSet%v", s.group.Iter())
}

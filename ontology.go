package hpo

import (
	"fmt"
	"strings"

	"github.com/hpoeval/hpo/internal/arena"
	"github.com/hpoeval/hpo/internal/assoc"
	"github.com/hpoeval/hpo/internal/idindex"
	"github.com/hpoeval/hpo/internal/resource"
	"github.com/hpoeval/hpo/model"
)

// termNode is the frozen, arena-resident representation of one term. All
// fields are immutable after Builder.Freeze returns.
type termNode struct {
	rec        model.TermRecord
	parents    HpoGroup
	children   HpoGroup
	allParents HpoGroup

	genes    *assoc.Set // upward-closed: this term's and every descendant's annotations
	diseases *assoc.Set

	directGenes    *assoc.Set // this term's own annotations only, pre-propagation
	directDiseases *assoc.Set

	ic [model.NumFlavors]float64
}

type geneNode struct {
	rec         model.GeneRecord
	termCount   int
	terms       *assoc.Set // transpose of termNode.genes: term indices this gene is upward-closed associated with
	directTerms *assoc.Set // term indices this gene is directly annotated to, pre-propagation
}

type diseaseNode struct {
	rec         model.DiseaseRecord
	termCount   int
	terms       *assoc.Set
	directTerms *assoc.Set
}

// Ontology is the immutable, many-reader view produced by Builder.Freeze.
// Every method is safe for concurrent use by multiple goroutines: nothing
// about an Ontology's internal state changes after construction.
type Ontology struct {
	terms    *arena.Arena[termNode]
	genes    *arena.Arena[geneNode]
	diseases *arena.Arena[diseaseNode]

	termTable    *idindex.Table
	geneTable    *idindex.Table
	diseaseTable *idindex.Table

	termNameIndex map[string]int
	geneNameIndex map[string]int

	resourceCtl   *resource.Controller
	reservedBytes int64
}

// Close releases any memory this ontology reserved against its
// WithResourceController budget. Safe to call on an ontology built without
// one (no-op) and safe to call more than once.
func (o *Ontology) Close() error {
	if o.resourceCtl != nil && o.reservedBytes > 0 {
		o.resourceCtl.ReleaseMemory(o.reservedBytes)
		o.reservedBytes = 0
	}
	return nil
}

// NumTerms, NumGenes, and NumDiseases report the (non-obsolete and
// obsolete) record counts in the ontology.
func (o *Ontology) NumTerms() int    { return o.terms.Len() }
func (o *Ontology) NumGenes() int    { return o.genes.Len() }
func (o *Ontology) NumDiseases() int { return o.diseases.Len() }

func (o *Ontology) termIndex(id model.TermID) (int, bool) {
	idx := o.termTable.Get(uint32(id))
	if idx < 0 || int(idx) >= o.terms.Len() {
		return 0, false
	}
	return int(idx), true
}

func (o *Ontology) geneIndex(id model.GeneID) (int, bool) {
	idx := o.geneTable.Get(uint32(id))
	if idx < 0 || int(idx) >= o.genes.Len() {
		return 0, false
	}
	return int(idx), true
}

func (o *Ontology) diseaseIndex(id model.DiseaseID) (int, bool) {
	idx := o.diseaseTable.Get(uint32(id))
	if idx < 0 || int(idx) >= o.diseases.Len() {
		return 0, false
	}
	return int(idx), true
}

// GetTerm resolves a term id to its view. The bool is false if the id was
// never ingested.
func (o *Ontology) GetTerm(id model.TermID) (Term, bool) {
	idx, ok := o.termIndex(id)
	if !ok {
		return Term{}, false
	}
	return Term{ont: o, idx: idx}, true
}

// GetTermByName looks up a term by its exact, case-sensitive label.
func (o *Ontology) GetTermByName(name string) (Term, bool) {
	idx, ok := o.termNameIndex[name]
	if !ok {
		return Term{}, false
	}
	return Term{ont: o, idx: idx}, true
}

// GetGene resolves a gene id to its view.
func (o *Ontology) GetGene(id model.GeneID) (Gene, bool) {
	idx, ok := o.geneIndex(id)
	if !ok {
		return Gene{}, false
	}
	return Gene{ont: o, idx: idx}, true
}

// GetGeneByName looks up a gene by its exact symbol.
func (o *Ontology) GetGeneByName(name string) (Gene, bool) {
	idx, ok := o.geneNameIndex[name]
	if !ok {
		return Gene{}, false
	}
	return Gene{ont: o, idx: idx}, true
}

// GetDisease resolves a disease id to its view.
func (o *Ontology) GetDisease(id model.DiseaseID) (Disease, bool) {
	idx, ok := o.diseaseIndex(id)
	if !ok {
		return Disease{}, false
	}
	return Disease{ont: o, idx: idx}, true
}

// IterTerms calls fn for every term in arena order, stopping early if fn
// returns false.
func (o *Ontology) IterTerms(fn func(Term) bool) {
	for i := 0; i < o.terms.Len(); i++ {
		if !fn(Term{ont: o, idx: i}) {
			return
		}
	}
}

// IterGenes calls fn for every gene in arena order.
func (o *Ontology) IterGenes(fn func(Gene) bool) {
	for i := 0; i < o.genes.Len(); i++ {
		if !fn(Gene{ont: o, idx: i}) {
			return
		}
	}
}

// IterDiseases calls fn for every disease in arena order.
func (o *Ontology) IterDiseases(fn func(Disease) bool) {
	for i := 0; i < o.diseases.Len(); i++ {
		if !fn(Disease{ont: o, idx: i}) {
			return
		}
	}
}

// termIDsForIndices maps a bitmap of term arena indices back to a sorted
// HpoGroup of the terms' ids.
func (o *Ontology) termIDsForIndices(indices *assoc.Set) HpoGroup {
	raw := indices.ToSlice()
	ids := make([]model.TermID, len(raw))
	for i, idx := range raw {
		ids[i] = o.terms.Get(int(idx)).rec.ID
	}
	return NewHpoGroup(ids...)
}

// Search scans the term arena in order for terms whose name contains the
// given substring (case-sensitive), calling fn for each match.
func (o *Ontology) Search(substring string, fn func(Term) bool) {
	for i := 0; i < o.terms.Len(); i++ {
		if strings.Contains(o.terms.Get(i).rec.Name, substring) {
			if !fn(Term{ont: o, idx: i}) {
				return
			}
		}
	}
}

// SubontologyOptions configures Subontology.
type SubontologyOptions struct {
	// AssociationsRequired drops genes/diseases that end up with no
	// remaining association once annotations are filtered to the
	// retained term set.
	AssociationsRequired bool
}

// Subontology builds a new, independent ontology containing root and every
// descendant of root, with gene/disease annotations filtered to that
// retained term set. The result is produced by replaying the retained
// terms and their direct annotations through a fresh Builder, so all
// invariants a top-level Freeze establishes (closures, upward-closed
// associations, information content) hold on the subontology too.
func (o *Ontology) Subontology(root model.TermID, opts SubontologyOptions) (*Ontology, error) {
	if o.resourceCtl != nil {
		if !o.resourceCtl.TryAcquireBackground() {
			return nil, resource.ErrBackgroundLimitExceeded
		}
		defer o.resourceCtl.ReleaseBackground()
	}

	rootTerm, ok := o.GetTerm(root)
	if !ok {
		return nil, fmt.Errorf("%w: term %s", ErrUnknownTerm, root)
	}

	retained := map[int]bool{rootTerm.idx: true}
	queue := []int{rootTerm.idx}
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		for _, cid := range o.terms.Get(i).children.Iter() {
			ci, ok := o.termIndex(cid)
			if !ok || retained[ci] {
				continue
			}
			retained[ci] = true
			queue = append(queue, ci)
		}
	}

	b := NewBuilder(WithAnnotationPolicy(PolicyStrict), WithResourceController(o.resourceCtl))
	for i := 0; i < o.terms.Len(); i++ {
		if !retained[i] {
			continue
		}
		n := o.terms.Get(i)
		parents := make([]model.TermID, 0, n.parents.Len())
		for _, p := range n.parents.Iter() {
			if pi, ok := o.termIndex(p); ok && retained[pi] {
				parents = append(parents, p)
			}
		}
		if err := b.AddTerm(TermInput{
			ID:            n.rec.ID,
			Name:          n.rec.Name,
			Parents:       parents,
			Obsolete:      n.rec.Obsolete,
			ReplacedBy:    n.rec.ReplacedBy,
			ModifierFlags: n.rec.ModifierFlags,
		}); err != nil {
			return nil, err
		}
	}

	geneHasAssoc := make([]bool, o.genes.Len())
	diseaseHasAssoc := make([]bool, o.diseases.Len())
	for i := 0; i < o.terms.Len(); i++ {
		if !retained[i] {
			continue
		}
		n := o.terms.Get(i)
		for _, g := range n.directGenes.ToSlice() {
			geneHasAssoc[g] = true
		}
		for _, d := range n.directDiseases.ToSlice() {
			diseaseHasAssoc[d] = true
		}
	}

	for i := 0; i < o.genes.Len(); i++ {
		if opts.AssociationsRequired && !geneHasAssoc[i] {
			continue
		}
		n := o.genes.Get(i)
		if err := b.AddGene(n.rec.ID, n.rec.Name); err != nil {
			return nil, err
		}
	}
	for i := 0; i < o.diseases.Len(); i++ {
		if opts.AssociationsRequired && !diseaseHasAssoc[i] {
			continue
		}
		n := o.diseases.Get(i)
		if err := b.AddDisease(n.rec.ID, n.rec.Name, n.rec.Source); err != nil {
			return nil, err
		}
	}

	for i := 0; i < o.terms.Len(); i++ {
		if !retained[i] {
			continue
		}
		n := o.terms.Get(i)
		termID := n.rec.ID
		for _, g := range n.directGenes.ToSlice() {
			if opts.AssociationsRequired && !geneHasAssoc[g] {
				continue
			}
			if err := b.AddGeneAnnotation(termID, o.genes.Get(int(g)).rec.ID); err != nil {
				return nil, err
			}
		}
		for _, d := range n.directDiseases.ToSlice() {
			if opts.AssociationsRequired && !diseaseHasAssoc[d] {
				continue
			}
			dn := o.diseases.Get(int(d))
			if err := b.AddDiseaseAnnotation(termID, dn.rec.ID, dn.rec.Source); err != nil {
				return nil, err
			}
		}
	}

	return b.Freeze()
}

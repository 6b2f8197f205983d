package hpo

import "github.com/hpoeval/hpo/model"

// Gene is a lightweight, copyable view onto one gene record inside an
// Ontology.
type Gene struct {
	ont *Ontology
	idx int
}

func (g Gene) node() geneNode { return g.ont.genes.Get(g.idx) }

// ID returns the gene's numeric identifier (its Entrez id, by convention).
func (g Gene) ID() model.GeneID { return g.node().rec.ID }

// Name returns the gene's symbol.
func (g Gene) Name() string { return g.node().rec.Name }

// TermCount returns the number of distinct terms this gene is associated
// with, directly or through any descendant term. This is the "successes"
// parameter (K) a gene contributes to hypergeometric enrichment.
func (g Gene) TermCount() int { return g.node().termCount }

// DirectTerms returns the terms this gene is directly annotated to, before
// upward propagation to ancestor terms. The reflexive-transitive closure of
// these terms is not stored a second time here; it is available on the term
// side via Term.Genes on each of DirectTerms' ancestors.
func (g Gene) DirectTerms() HpoGroup { return g.ont.termIDsForIndices(g.node().directTerms) }

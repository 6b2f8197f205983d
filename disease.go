package hpo

import "github.com/hpoeval/hpo/model"

// Disease is a lightweight, copyable view onto one disease record inside
// an Ontology.
type Disease struct {
	ont *Ontology
	idx int
}

func (d Disease) node() diseaseNode { return d.ont.diseases.Get(d.idx) }

// ID returns the disease's numeric identifier within its Source namespace.
func (d Disease) ID() model.DiseaseID { return d.node().rec.ID }

// Name returns the disease's label.
func (d Disease) Name() string { return d.node().rec.Name }

// Source reports which catalog (OMIM, Orphanet, Decipher) this disease
// record came from.
func (d Disease) Source() model.Source { return d.node().rec.Source }

// TermCount returns the number of distinct terms this disease is
// associated with, directly or through any descendant term.
func (d Disease) TermCount() int { return d.node().termCount }

// DirectTerms returns the terms this disease is directly annotated to,
// before upward propagation to ancestor terms.
func (d Disease) DirectTerms() HpoGroup { return d.ont.termIDsForIndices(d.node().directTerms) }

package testutil

import "github.com/hpoeval/hpo/model"

// TermInput mirrors the root package's builder input so fixtures can be
// shared without testutil importing the root package.
type TermInput struct {
	ID         model.TermID
	Name       string
	Parents    []model.TermID
	Obsolete   bool
	ReplacedBy model.TermID
}

// GeneAnnotation is one direct (term, gene) row.
type GeneAnnotation struct {
	TermID model.TermID
	GeneID model.GeneID
}

// DiseaseAnnotation is one direct (term, disease) row.
type DiseaseAnnotation struct {
	TermID    model.TermID
	DiseaseID model.DiseaseID
	Source    model.Source
}

// Gene is a fixture gene record.
type Gene struct {
	ID   model.GeneID
	Name string
}

// Disease is a fixture disease record.
type Disease struct {
	ID     model.DiseaseID
	Name   string
	Source model.Source
}

// S1 builds the three-term fixture used across the test suite: a chain
// Xerostomia -> High palate -> Thin upper lip vermilion, plus an obsolete
// term replaced by an id outside the chain.
//
//	HP:0000217 Xerostomia
//	HP:0000218 High palate              is_a 217
//	HP:0000219 Thin upper lip vermilion is_a 217, 218
//	HP:0000284 (obsolete)                replaced_by 315
func S1() []TermInput {
	return []TermInput{
		{ID: 217, Name: "Xerostomia"},
		{ID: 218, Name: "High palate", Parents: []model.TermID{217}},
		{ID: 219, Name: "Thin upper lip vermilion", Parents: []model.TermID{217, 218}},
		{ID: 284, Name: "Obsolete term", Obsolete: true, ReplacedBy: 315},
	}
}

// S6Genes returns the three genes from the enrichment fixture: G1 annotated
// to the leaf (219), G2 to the middle term (218), G3 to the root (217).
// Because annotations propagate upward through is_a, G1 ends up associated
// with all three terms, G2 with 217 and 218, and G3 with only 217.
func S6Genes() []Gene {
	return []Gene{
		{ID: 1, Name: "G1"},
		{ID: 2, Name: "G2"},
		{ID: 3, Name: "G3"},
	}
}

// S6GeneAnnotations returns the direct annotation rows for S6Genes against
// the S1 term fixture.
func S6GeneAnnotations() []GeneAnnotation {
	return []GeneAnnotation{
		{TermID: 219, GeneID: 1},
		{TermID: 218, GeneID: 2},
		{TermID: 217, GeneID: 3},
	}
}

// SyntheticIC returns the per-term information content used by the
// similarity fixture: ic(217)=0.5, ic(218)=1.0, ic(219)=1.5.
func SyntheticIC() map[model.TermID]float64 {
	return map[model.TermID]float64{
		217: 0.5,
		218: 1.0,
		219: 1.5,
	}
}

// TopKOverlap reports how many of the first k entries of got also appear
// anywhere in the first k entries of want, for comparing a ranked result
// against a known-good ordering when exact tie-breaking may differ.
func TopKOverlap[T comparable](want, got []T, k int) int {
	if k > len(want) {
		k = len(want)
	}
	if k > len(got) {
		k = len(got)
	}
	wantSet := make(map[T]struct{}, k)
	for _, id := range want[:k] {
		wantSet[id] = struct{}{}
	}
	hits := 0
	for _, id := range got[:k] {
		if _, ok := wantSet[id]; ok {
			hits++
		}
	}
	return hits
}

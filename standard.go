package hpo

import (
	"io"
	"os"
	"path/filepath"

	"github.com/hpoeval/hpo/model"
)

// GeneAnnotationRow is one parsed row of a gene-annotation file: a direct
// term-gene association plus the gene's symbol.
type GeneAnnotationRow struct {
	TermID     model.TermID
	GeneID     model.GeneID
	GeneSymbol string
}

// DiseaseAnnotationRow is one parsed row of a disease-annotation file.
type DiseaseAnnotationRow struct {
	TermID      model.TermID
	DiseaseID   model.DiseaseID
	DiseaseName string
	Source      model.Source
}

// StandardParsers bundles the three external parser collaborators
// FromStandard wires into a Builder. Parsing the term-stanza file and the
// two tabular annotation files is deliberately outside the core: callers
// supply whatever parser fits the exact file revision they're reading.
type StandardParsers struct {
	ParseTerms              func(r io.Reader) ([]TermInput, error)
	ParseGeneAnnotations    func(r io.Reader) ([]GeneAnnotationRow, error)
	ParseDiseaseAnnotations func(r io.Reader) ([]DiseaseAnnotationRow, error)
}

// StandardFilenames are the conventional names of the three files a
// standard HPO release directory contains.
var StandardFilenames = struct {
	Terms              string
	GeneAnnotations    string
	DiseaseAnnotations string
}{
	Terms:              "hp.obo",
	GeneAnnotations:    "genes_to_phenotype.txt",
	DiseaseAnnotations: "phenotype.hpoa",
}

// FromStandard opens the three standard release files under dir, runs each
// through the matching parser collaborator, and feeds the parsed records to
// a fresh Builder. It performs no parsing of its own: it is wiring, not a
// file-format implementation.
func FromStandard(dir string, parsers StandardParsers, opts ...Option) (*Ontology, error) {
	b := NewBuilder(opts...)

	terms, err := parseFile(filepath.Join(dir, StandardFilenames.Terms), parsers.ParseTerms)
	if err != nil {
		return nil, err
	}
	for _, t := range terms {
		if err := b.AddTerm(t); err != nil {
			return nil, err
		}
	}

	geneRows, err := parseFile(filepath.Join(dir, StandardFilenames.GeneAnnotations), parsers.ParseGeneAnnotations)
	if err != nil {
		return nil, err
	}
	for _, row := range geneRows {
		if err := b.AddGene(row.GeneID, row.GeneSymbol); err != nil {
			return nil, err
		}
		if err := b.AddGeneAnnotation(row.TermID, row.GeneID); err != nil {
			return nil, err
		}
	}

	diseaseRows, err := parseFile(filepath.Join(dir, StandardFilenames.DiseaseAnnotations), parsers.ParseDiseaseAnnotations)
	if err != nil {
		return nil, err
	}
	for _, row := range diseaseRows {
		if err := b.AddDisease(row.DiseaseID, row.DiseaseName, row.Source); err != nil {
			return nil, err
		}
		if err := b.AddDiseaseAnnotation(row.TermID, row.DiseaseID, row.Source); err != nil {
			return nil, err
		}
	}

	return b.Freeze()
}

func parseFile[T any](path string, parse func(io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parse(f)
}

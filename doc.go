// Package hpo provides an in-memory Human Phenotype Ontology: term
// definitions, the is_a DAG and its transitive closure, gene and disease
// annotations, term similarity, and hypergeometric enrichment.
//
// # Building
//
// A Builder accumulates terms, genes, diseases, and their direct
// annotations during a single-writer collection phase, then Freeze
// computes children, transitive closures, upward-closed associations, and
// information content, and hands back an immutable Ontology safe for
// concurrent use by many readers:
//
//	b := hpo.NewBuilder()
//	b.AddTerm(hpo.TermInput{ID: 217, Name: "Xerostomia"})
//	b.AddTerm(hpo.TermInput{ID: 218, Name: "High palate", Parents: []model.TermID{217}})
//	ont, err := b.Freeze()
//
// FromStandard builds an Ontology directly from a directory of standard HPO
// release files (hp.obo, genes_to_phenotype.txt, phenotype.hpoa) given
// caller-supplied parsers for each format.
//
// # Querying
//
// Ontology exposes lookup by id or name, iteration, substring search, and
// Subontology for extracting an induced sub-DAG. Term, Gene, and Disease
// are lightweight views over an Ontology's arenas.
//
// # Sets, Similarity, and Enrichment
//
// HpoGroup is a sorted, deduplicated set of term ids with the usual set
// algebra. HpoSet pairs a group with the Ontology it was drawn from and
// adds ontology-aware operations: ancestor closure, obsolete-term
// substitution, information-content aggregation, pairwise similarity
// scoring against another set (see the similarity subpackage for the
// available metrics and combiners), and gene/disease enrichment via
// hypergeometric p-values (see the stats subpackage).
//
// # Persistence
//
// ToBinary/FromBinary (and the SaveToFile/LoadFromFile file-based
// equivalents) round-trip an Ontology through a versioned binary codec; see
// the persistence subpackage for the wire format. The *Throttled variants
// rate-limit I/O through a resource.Controller.
//
// # Resource Governance
//
// WithResourceController bounds the memory Freeze commits to an Ontology's
// arenas and lets SaveToFileThrottled/LoadFromFileThrottled share an I/O
// budget with other work; see the resource subpackage under internal for
// the full controller.
package hpo

// Package testutil provides shared fixtures for the hpo test suite.
//
// It is intended for use in tests only. It does not import the root hpo
// package: fixtures are plain data (term/gene/disease rows) that a test can
// feed into a Builder itself, so both internal (package hpo) and external
// tests can share one source of truth for the standard three-term ontology
// and its enrichment/similarity fixtures.
//
// # Ontology Fixture
//
//	terms := testutil.S1()
//	for _, t := range terms {
//	    b.AddTerm(hpo.TermInput{ID: t.ID, Name: t.Name, Parents: t.Parents, Obsolete: t.Obsolete, ReplacedBy: t.ReplacedBy})
//	}
//
// # Enrichment Fixture
//
//	genes := testutil.S6Genes()
//	rows := testutil.S6GeneAnnotations()
package testutil

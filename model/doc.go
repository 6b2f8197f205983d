// Package model defines the plain-data record types shared across the
// ontology's storage and codec layers.
//
// # Identity Types
//
//   - TermID: numeric suffix of an "HP:nnnnnnn" id
//   - GeneID: HGNC numeric identifier
//   - DiseaseID: OMIM/Orphanet/Decipher numeric identifier
//
// # Records
//
//   - TermRecord: a phenotype term as ingested by the builder
//   - GeneRecord: a gene
//   - DiseaseRecord: a disease, tagged with its Source
//
// Records are plain data; they carry no references to an ontology or arena
// and can be constructed, compared, and serialized independently.
package model

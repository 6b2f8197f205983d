// Package model holds the plain-data record types shared across the ontology
// arenas, the binary codec, and the public hpo package. Nothing in this
// package depends on how records are indexed or stored.
package model

import (
	"errors"
	"fmt"
)

// ErrInvalidIDFormat is returned by ParseTermID when the input is not a
// well-formed "HP:nnnnnnn" string.
var ErrInvalidIDFormat = errors.New("model: string id could not be parsed")

// TermID is the numeric suffix of the canonical external id "HP:nnnnnnn".
// Conversion to and from the zero-padded 7-digit string form is total on
// the representable range.
type TermID uint32

// String renders the canonical "HP:nnnnnnn" form.
func (t TermID) String() string {
	return fmt.Sprintf("HP:%07d", uint32(t))
}

// ParseTermID parses the canonical "HP:nnnnnnn" form back into a TermID.
// It is the total inverse of TermID.String over the 7-digit range.
func ParseTermID(s string) (TermID, error) {
	if len(s) != 10 || s[0:3] != "HP:" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidIDFormat, s)
	}
	var n uint32
	for _, c := range s[3:] {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidIDFormat, s)
		}
		n = n*10 + uint32(c-'0')
	}
	return TermID(n), nil
}

// GeneID is an externally derived identifier (HGNC numeric id).
type GeneID uint32

// DiseaseID is an externally derived identifier (OMIM/Orphanet/Decipher
// numeric id). Uniqueness is only guaranteed within a Source.
type DiseaseID uint32

// Source tags which database a disease record was imported from.
type Source uint8

const (
	Omim Source = iota
	Orpha
	Decipher
)

func (s Source) String() string {
	switch s {
	case Omim:
		return "OMIM"
	case Orpha:
		return "ORPHA"
	case Decipher:
		return "DECIPHER"
	default:
		return "UNKNOWN"
	}
}

// Flavor selects which association counts back an information-content
// value: Omim and Orpha restrict to disease records of that source, Gene
// uses gene associations.
type Flavor uint8

const (
	FlavorOmim Flavor = iota
	FlavorOrpha
	FlavorGene
)

// NumFlavors is the number of Flavor values; used to size per-flavor arrays.
const NumFlavors = 3

func (f Flavor) String() string {
	switch f {
	case FlavorOmim:
		return "Omim"
	case FlavorOrpha:
		return "Orpha"
	case FlavorGene:
		return "Gene"
	default:
		return "Unknown"
	}
}

// ModifierFlags is a bitmask of optional term modifier categories carried
// through the v3 binary codec.
type ModifierFlags uint32

const (
	ModifierClinicalCourse ModifierFlags = 1 << iota
	ModifierOnset
	ModifierModeOfInheritance
	ModifierClinicalModifier
	ModifierPastMedicalHistory
)

// Has reports whether the given flag is set.
func (m ModifierFlags) Has(flag ModifierFlags) bool {
	return m&flag != 0
}

// TermRecord is the durable, arena-stored representation of a term's own
// scalar fields. It carries no derived relations: parents, children, the
// transitive closure, and the upward-closed gene/disease association sets
// are computed at freeze and held alongside the record, not in it.
type TermRecord struct {
	ID            TermID
	Name          string
	Obsolete      bool
	ReplacedBy    TermID // zero if none
	ModifierFlags ModifierFlags

	// RawParents holds the ids as ingested, before freeze resolves them to
	// compact indexes. Cleared after freeze.
	RawParents []TermID
}

// GeneRecord is the arena-stored representation of a gene.
type GeneRecord struct {
	ID   GeneID
	Name string
}

// DiseaseRecord is the arena-stored representation of a disease.
type DiseaseRecord struct {
	ID     DiseaseID
	Name   string
	Source Source
}

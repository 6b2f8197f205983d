package hpo

import "github.com/hpoeval/hpo/model"

// These aliases re-export the plain-data identifier and enum types from
// the model package so that callers of this package never need to import
// model directly for everyday use.
type (
	TermID        = model.TermID
	GeneID        = model.GeneID
	DiseaseID     = model.DiseaseID
	Source        = model.Source
	Flavor        = model.Flavor
	ModifierFlags = model.ModifierFlags
)

const (
	Omim     = model.Omim
	Orpha    = model.Orpha
	Decipher = model.Decipher
)

const (
	FlavorOmim  = model.FlavorOmim
	FlavorOrpha = model.FlavorOrpha
	FlavorGene  = model.FlavorGene
)

const (
	ModifierClinicalCourse     = model.ModifierClinicalCourse
	ModifierOnset              = model.ModifierOnset
	ModifierModeOfInheritance  = model.ModifierModeOfInheritance
	ModifierClinicalModifier   = model.ModifierClinicalModifier
	ModifierPastMedicalHistory = model.ModifierPastMedicalHistory
)

// ParseTermID parses the canonical "HP:nnnnnnn" form into a TermID. It is
// the total inverse of TermID.String over the 7-digit range.
func ParseTermID(s string) (TermID, error) { return model.ParseTermID(s) }

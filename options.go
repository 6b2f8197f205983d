package hpo

import "github.com/hpoeval/hpo/internal/resource"

// AnnotationPolicy controls how the builder handles annotation rows that
// reference a missing or obsolete term at freeze time.
type AnnotationPolicy int

const (
	// PolicyDropUnknown silently drops the offending annotation row; the
	// build still succeeds and returns a valid ontology. This is the
	// default: annotation errors are recoverable per row.
	PolicyDropUnknown AnnotationPolicy = iota
	// PolicyStrict fails Freeze with the row's error (ErrUnknownTerm or
	// ErrObsoleteTerm) instead of dropping it.
	PolicyStrict
)

// Option configures a Builder.
type Option func(*builderConfig)

type builderConfig struct {
	annotationPolicy AnnotationPolicy
	resourceCtl      *resource.Controller
}

func defaultBuilderConfig() builderConfig {
	return builderConfig{annotationPolicy: PolicyDropUnknown}
}

// WithAnnotationPolicy sets how unknown/obsolete annotation rows are
// handled during Freeze.
func WithAnnotationPolicy(p AnnotationPolicy) Option {
	return func(c *builderConfig) { c.annotationPolicy = p }
}

// WithResourceController bounds the memory Freeze is willing to commit to
// the resulting Ontology's arenas: Freeze never blocks (it is CPU-bound and
// allocation-light per contract), so exceeding ctl's memory limit fails
// Freeze immediately with ErrMemoryLimitExceeded instead of waiting for
// headroom. A caller holding several ontologies (a base plus subontologies)
// concurrently can use one Controller to cap their combined footprint.
func WithResourceController(ctl *resource.Controller) Option {
	return func(c *builderConfig) { c.resourceCtl = ctl }
}

// SimilarityOptions bundles the defaults an HpoSet.Similarity caller may
// omit explicitly.
type SimilarityOptions struct {
	Flavor         Flavor
	MaxConcurrency int
}

// DefaultSimilarityOptions returns the package defaults: Gene flavor IC,
// sequential matrix construction (MaxConcurrency 1).
func DefaultSimilarityOptions() SimilarityOptions {
	return SimilarityOptions{Flavor: FlavorGene, MaxConcurrency: 1}
}

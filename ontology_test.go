package hpo

import (
	"testing"

	"github.com/hpoeval/hpo/internal/resource"
	"github.com/hpoeval/hpo/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTermByName(t *testing.T) {
	ont := buildS1(t)
	term, ok := ont.GetTermByName("High palate")
	require.True(t, ok)
	assert.Equal(t, model.TermID(218), term.ID())

	_, ok = ont.GetTermByName("nope")
	assert.False(t, ok)
}

func TestSearch(t *testing.T) {
	ont := buildS1(t)

	var got []model.TermID
	ont.Search("palate", func(term Term) bool {
		got = append(got, term.ID())
		return true
	})
	assert.Equal(t, []model.TermID{218}, got)
}

func TestSearchStopsEarly(t *testing.T) {
	ont := buildS1(t)

	calls := 0
	ont.Search("", func(term Term) bool {
		calls++
		return false
	})
	assert.Equal(t, 1, calls)
}

func TestIterTerms(t *testing.T) {
	ont := buildS1(t)

	count := 0
	ont.IterTerms(func(Term) bool {
		count++
		return true
	})
	assert.Equal(t, ont.NumTerms(), count)
}

func buildEnrichmentFixture(t *testing.T, opts ...Option) *Ontology {
	t.Helper()
	b := NewBuilder(opts...)
	require.NoError(t, b.AddTerm(TermInput{ID: 217, Name: "Xerostomia"}))
	require.NoError(t, b.AddTerm(TermInput{ID: 218, Name: "High palate", Parents: []model.TermID{217}}))
	require.NoError(t, b.AddTerm(TermInput{ID: 219, Name: "Thin upper lip vermilion", Parents: []model.TermID{217, 218}}))
	require.NoError(t, b.AddGeneAnnotation(219, 1)) // G1
	require.NoError(t, b.AddGeneAnnotation(218, 2)) // G2
	require.NoError(t, b.AddGeneAnnotation(217, 3)) // G3
	ont, err := b.Freeze()
	require.NoError(t, err)
	return ont
}

func TestSubontologyRetainsDescendantsOnly(t *testing.T) {
	ont := buildEnrichmentFixture(t)

	sub, err := ont.Subontology(218, SubontologyOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, sub.NumTerms()) // 218, 219

	_, ok := sub.GetTerm(217)
	assert.False(t, ok)
	root, ok := sub.GetTerm(218)
	require.True(t, ok)
	assert.True(t, root.Parents().IsEmpty())
}

func TestSubontologyAssociationsRequired(t *testing.T) {
	ont := buildEnrichmentFixture(t)

	// Rooted at 218: only G1 (annotated at 219, which propagates to 218)
	// and G2 (annotated directly at 218) have associations in the subtree.
	// G3 is annotated only at 217, outside the subtree.
	sub, err := ont.Subontology(218, SubontologyOptions{AssociationsRequired: true})
	require.NoError(t, err)
	assert.Equal(t, 2, sub.NumGenes())

	subAll, err := ont.Subontology(218, SubontologyOptions{})
	require.NoError(t, err)
	assert.Equal(t, ont.NumGenes(), subAll.NumGenes())
}

func TestSubontologyUnknownRoot(t *testing.T) {
	ont := buildS1(t)
	_, err := ont.Subontology(9999, SubontologyOptions{})
	assert.ErrorIs(t, err, ErrUnknownTerm)
}

func TestSubontologyRespectsBackgroundWorkerLimit(t *testing.T) {
	ctl := resource.NewController(resource.Config{MaxBackgroundWorkers: 1})
	ont := buildEnrichmentFixture(t, WithResourceController(ctl))

	require.True(t, ctl.TryAcquireBackground()) // saturate the one slot
	defer ctl.ReleaseBackground()

	_, err := ont.Subontology(218, SubontologyOptions{})
	assert.ErrorIs(t, err, resource.ErrBackgroundLimitExceeded)
}

func TestCloseIsIdempotentWithoutController(t *testing.T) {
	ont := buildS1(t)
	assert.NoError(t, ont.Close())
	assert.NoError(t, ont.Close())
}

package hpo

import (
	"testing"

	"github.com/hpoeval/hpo/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildS1(t *testing.T, opts ...Option) *Ontology {
	t.Helper()
	b := NewBuilder(opts...)
	require.NoError(t, b.AddTerm(TermInput{ID: 217, Name: "Xerostomia"}))
	require.NoError(t, b.AddTerm(TermInput{ID: 218, Name: "High palate", Parents: []model.TermID{217}}))
	require.NoError(t, b.AddTerm(TermInput{ID: 219, Name: "Thin upper lip vermilion", Parents: []model.TermID{217, 218}}))
	require.NoError(t, b.AddTerm(TermInput{ID: 284, Name: "Obsolete term", Obsolete: true, ReplacedBy: 315}))
	ont, err := b.Freeze()
	require.NoError(t, err)
	return ont
}

func TestLookup(t *testing.T) {
	ont := buildS1(t)

	term, ok := ont.GetTerm(218)
	require.True(t, ok)
	assert.Equal(t, "High palate", term.Name())

	obsolete, ok := ont.GetTerm(284)
	require.True(t, ok)
	assert.True(t, obsolete.Obsolete())
	assert.Equal(t, model.TermID(315), obsolete.ReplacedBy())

	_, ok = ont.GetTerm(0)
	assert.False(t, ok)
}

func TestClosure(t *testing.T) {
	ont := buildS1(t)

	t219, _ := ont.GetTerm(219)
	assert.Equal(t, []model.TermID{217, 218}, t219.AllAncestors().Iter())

	t217, _ := ont.GetTerm(217)
	assert.Equal(t, []model.TermID{218, 219}, t217.Children().Iter())

	t218, _ := ont.GetTerm(218)
	assert.Equal(t, []model.TermID{219}, t218.Children().Iter())
}

func TestFreezeRejectsCycle(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.AddTerm(TermInput{ID: 1, Name: "a", Parents: []model.TermID{2}}))
	require.NoError(t, b.AddTerm(TermInput{ID: 2, Name: "b", Parents: []model.TermID{1}}))
	_, err := b.Freeze()
	assert.ErrorIs(t, err, ErrCycle)
}

func TestFreezeRejectsUnknownParent(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.AddTerm(TermInput{ID: 1, Name: "a", Parents: []model.TermID{99}}))
	_, err := b.Freeze()
	assert.ErrorIs(t, err, ErrUnknownParent)
}

func TestAddTermRejectsDuplicate(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.AddTerm(TermInput{ID: 1, Name: "a"}))
	err := b.AddTerm(TermInput{ID: 1, Name: "a-again"})
	assert.ErrorIs(t, err, ErrDuplicateTerm)
}

func TestAnnotationPolicyDropUnknown(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.AddTerm(TermInput{ID: 217, Name: "Xerostomia"}))
	require.NoError(t, b.AddGeneAnnotation(999, 1))
	ont, err := b.Freeze()
	require.NoError(t, err)
	assert.Equal(t, 0, ont.NumGenes())
}

func TestAnnotationPolicyStrict(t *testing.T) {
	b := NewBuilder(WithAnnotationPolicy(PolicyStrict))
	require.NoError(t, b.AddTerm(TermInput{ID: 217, Name: "Xerostomia"}))
	require.NoError(t, b.AddGeneAnnotation(999, 1))
	_, err := b.Freeze()
	assert.ErrorIs(t, err, ErrUnknownTerm)
}

func TestFreezeIsTerminal(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.AddTerm(TermInput{ID: 217, Name: "Xerostomia"}))
	_, err := b.Freeze()
	require.NoError(t, err)

	err = b.AddTerm(TermInput{ID: 218, Name: "too late"})
	var stateErr *BuilderStateError
	assert.ErrorAs(t, err, &stateErr)

	_, err = b.Freeze()
	assert.ErrorAs(t, err, &stateErr)
}

func TestInformationContentPropagates(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.AddTerm(TermInput{ID: 217, Name: "Xerostomia"}))
	require.NoError(t, b.AddTerm(TermInput{ID: 218, Name: "High palate", Parents: []model.TermID{217}}))
	require.NoError(t, b.AddGeneAnnotation(218, 1))
	ont, err := b.Freeze()
	require.NoError(t, err)

	t217, _ := ont.GetTerm(217)
	t218, _ := ont.GetTerm(218)

	// The gene annotated at 218 propagates up to 217, so both terms have
	// the same (single-gene, total-one-gene) information content: zero.
	assert.InDelta(t, 0.0, t217.InformationContent(model.FlavorGene), 1e-9)
	assert.InDelta(t, 0.0, t218.InformationContent(model.FlavorGene), 1e-9)
}

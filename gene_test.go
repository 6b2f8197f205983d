package hpo

import (
	"testing"

	"github.com/hpoeval/hpo/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneAccessors(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.AddTerm(TermInput{ID: 217, Name: "Xerostomia"}))
	require.NoError(t, b.AddTerm(TermInput{ID: 218, Name: "High palate", Parents: []model.TermID{217}}))
	require.NoError(t, b.AddGene(1, "G1"))
	require.NoError(t, b.AddGeneAnnotation(218, 1))

	ont, err := b.Freeze()
	require.NoError(t, err)

	g, ok := ont.GetGene(1)
	require.True(t, ok)
	assert.Equal(t, model.GeneID(1), g.ID())
	assert.Equal(t, "G1", g.Name())
	// 218 plus its ancestor 217 both count toward this gene's term set.
	assert.Equal(t, 2, g.TermCount())
	// but the direct annotation is only to 218; 217 is inherited, not
	// duplicated on the gene record itself.
	assert.Equal(t, []model.TermID{218}, g.DirectTerms().Iter())

	named, ok := ont.GetGeneByName("G1")
	require.True(t, ok)
	assert.Equal(t, g.ID(), named.ID())
}

func TestGeneAnnotationAutoRegisters(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.AddTerm(TermInput{ID: 217, Name: "Xerostomia"}))
	require.NoError(t, b.AddGeneAnnotation(217, 42))

	ont, err := b.Freeze()
	require.NoError(t, err)

	g, ok := ont.GetGene(42)
	require.True(t, ok)
	assert.Equal(t, "", g.Name())
	assert.Equal(t, 1, g.TermCount())
}

package hpo

import (
	"testing"

	"github.com/hpoeval/hpo/similarity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHpoSetSimilarityAgainstItself(t *testing.T) {
	ont := buildEnrichmentFixture(t)

	a := NewHpoSet(ont, 219)
	score, err := a.Similarity(a, similarity.Resnik, similarity.Bma, DefaultSimilarityOptions())
	require.NoError(t, err)
	assert.Greater(t, score, 0.0)
}

func TestHpoSetAllAncestorsUnion(t *testing.T) {
	ont := buildEnrichmentFixture(t)

	s := NewHpoSet(ont, 218, 219)
	anc := s.AllAncestors()
	assert.True(t, anc.Contains(217))
}

func TestHpoSetChildNodesKeepsLeaves(t *testing.T) {
	ont := buildEnrichmentFixture(t)

	s := NewHpoSet(ont, 217, 218, 219)
	leaves := s.ChildNodes()
	assert.Equal(t, 1, leaves.Len())
	assert.True(t, leaves.Group().Contains(219))
}

// TestGeneEnrichmentS6 exercises the enrichment worked example: three genes
// annotated at 219, 218, and 217 respectively, queried against {219}. Every
// gene's success count is its upward-closed term count (G1=3, G2=2, G3=1),
// and the observed overlap with the query is the intersection of that
// upward closure with {219}: G1 overlaps (219 is in its closure), G2 and G3
// do not.
func TestGeneEnrichmentS6(t *testing.T) {
	ont := buildEnrichmentFixture(t)

	query := NewHpoSet(ont, 219)
	results := query.GeneEnrichment()

	require.Len(t, results, 3)
	assert.Equal(t, 1, results[1].Observed)
	assert.Equal(t, 0, results[2].Observed)
	assert.Equal(t, 0, results[3].Observed)

	// population=3 terms, G1 successes=3, draws=1 -> expected = 3*1/3 = 1.
	assert.InDelta(t, 1.0, results[1].Expected, 1e-9)
	assert.InDelta(t, 1.0, results[1].FoldEnrichment, 1e-9)
	assert.Less(t, results[1].PValue, 1.0)
}

func TestTopGenesByEnrichmentRanksByPValue(t *testing.T) {
	ont := buildEnrichmentFixture(t)

	query := NewHpoSet(ont, 219)
	top := query.TopGenesByEnrichment(2)
	require.Len(t, top, 2)

	// Most significant (smallest p-value) first.
	assert.LessOrEqual(t, top[0].PValue, top[1].PValue)
	assert.Equal(t, uint32(1), uint32(top[0].GeneID))
}

func TestTopGenesByEnrichmentZeroOrNegativeN(t *testing.T) {
	ont := buildEnrichmentFixture(t)
	query := NewHpoSet(ont, 219)
	assert.Nil(t, query.TopGenesByEnrichment(0))
	assert.Nil(t, query.TopGenesByEnrichment(-1))
}

func TestNewHpoSetIgnoresUnknownIDs(t *testing.T) {
	ont := buildS1(t)
	s := NewHpoSet(ont, 217, 9999)
	assert.Equal(t, 1, s.Len())
}

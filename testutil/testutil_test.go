package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestS1Fixture(t *testing.T) {
	terms := S1()
	require := assert.New(t)
	require.Len(terms, 4)

	byID := make(map[uint32]TermInput, len(terms))
	for _, term := range terms {
		byID[uint32(term.ID)] = term
	}

	require.Equal("Xerostomia", byID[217].Name)
	require.Empty(byID[217].Parents)

	require.Equal([]uint32{217}, termIDsToUint32(byID[218].Parents))
	require.Equal([]uint32{217, 218}, termIDsToUint32(byID[219].Parents))

	obsolete := byID[284]
	require.True(obsolete.Obsolete)
	require.EqualValues(315, obsolete.ReplacedBy)
}

func TestS6Fixture(t *testing.T) {
	genes := S6Genes()
	rows := S6GeneAnnotations()

	assert.Len(t, genes, 3)
	assert.Len(t, rows, 3)

	byGene := make(map[uint32]uint32, len(rows))
	for _, row := range rows {
		byGene[uint32(row.GeneID)] = uint32(row.TermID)
	}
	assert.Equal(t, uint32(219), byGene[1])
	assert.Equal(t, uint32(218), byGene[2])
	assert.Equal(t, uint32(217), byGene[3])
}

func TestSyntheticIC(t *testing.T) {
	ic := SyntheticIC()
	assert.InDelta(t, 0.5, ic[217], 1e-9)
	assert.InDelta(t, 1.0, ic[218], 1e-9)
	assert.InDelta(t, 1.5, ic[219], 1e-9)
}

func TestTopKOverlap(t *testing.T) {
	want := []int{1, 2, 3, 4, 5}
	got := []int{1, 2, 9, 4, 5}

	assert.Equal(t, 4, TopKOverlap(want, got, 5))
	assert.Equal(t, 2, TopKOverlap(want, got, 2))
}

func termIDsToUint32[T ~uint32](ids []T) []uint32 {
	out := make([]uint32, len(ids))
	for i, id := range ids {
		out[i] = uint32(id)
	}
	return out
}

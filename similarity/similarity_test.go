package similarity

import (
	"testing"

	"github.com/hpoeval/hpo/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// s4Fixture sets up a small ancestor chain: term 219 is_a 218 and 217, term
// 218 is_a 217, with synthetic information content ic(217)=0.5, ic(218)=1.0,
// ic(219)=1.5.
func s4Fixture() (t217, t218, t219 TermInfo, ic func(model.TermID) float64) {
	icValues := map[model.TermID]float64{217: 0.5, 218: 1.0, 219: 1.5}
	ic = func(id model.TermID) float64 { return icValues[id] }

	t217 = TermInfo{ID: 217, Ancestors: []model.TermID{217}}
	t218 = TermInfo{ID: 218, Ancestors: []model.TermID{217, 218}}
	t219 = TermInfo{ID: 219, Ancestors: []model.TermID{217, 218, 219}}
	return
}

func TestResnikS4(t *testing.T) {
	_, t218, t219, ic := s4Fixture()
	got := resnikScore(t218, t219, Context{IC: ic})
	assert.InDelta(t, 1.0, got, 1e-9)
}

func TestLinS4(t *testing.T) {
	_, t218, t219, ic := s4Fixture()
	got := linScore(t218, t219, Context{IC: ic})
	assert.InDelta(t, 0.8, got, 1e-9)
}

func TestGraphIcS4(t *testing.T) {
	_, t218, t219, ic := s4Fixture()
	got := graphIcScore(t218, t219, Context{IC: ic})
	assert.InDelta(t, 0.5, got, 1e-9)
}

func TestScorersReflexiveForNormalizedMetrics(t *testing.T) {
	_, t218, _, ic := s4Fixture()
	ctx := Context{IC: ic, Distance: func(a, b model.TermID) int { return 0 }}

	for _, m := range []Metric{Lin, Jc, Ic, GraphIc, DistanceGraph} {
		score, err := Provider(m)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, score(t218, t218, ctx), 1e-9, "metric %s", m)
	}
}

func TestScorersSymmetric(t *testing.T) {
	_, t218, t219, ic := s4Fixture()
	ctx := Context{IC: ic, Distance: func(a, b model.TermID) int { return 1 }}

	for _, m := range []Metric{Resnik, Lin, Jc, Rel, Ic, GraphIc, DistanceGraph} {
		score, err := Provider(m)
		require.NoError(t, err)
		assert.InDelta(t, score(t218, t219, ctx), score(t219, t218, ctx), 1e-9, "metric %s", m)
	}
}

func TestResnikEmptyIntersectionReturnsZero(t *testing.T) {
	disjointA := TermInfo{ID: 1, Ancestors: []model.TermID{1}}
	disjointB := TermInfo{ID: 2, Ancestors: []model.TermID{2}}
	ic := func(model.TermID) float64 { return 1 }

	score, err := Provider(Resnik)
	require.NoError(t, err)
	assert.Equal(t, 0.0, score(disjointA, disjointB, Context{IC: ic}))
}

func TestCombinersOnSimpleMatrix(t *testing.T) {
	m := Matrix{
		{0.2, 0.8},
		{0.5, 0.3},
	}

	funSim, err := CombinerProvider(FunSimAvg)
	require.NoError(t, err)
	// rowMax = [0.8, 0.5] mean=0.65; colMax = [0.5, 0.8] mean=0.65
	assert.InDelta(t, 0.65, funSim(m, nil, nil), 1e-9)

	bmaFn, err := CombinerProvider(Bma)
	require.NoError(t, err)
	// (sum(rowMax)+sum(colMax))/(2+2) = (1.3+1.3)/4 = 0.65
	assert.InDelta(t, 0.65, bmaFn(m, nil, nil), 1e-9)

	gofFn, err := CombinerProvider(GoF)
	require.NoError(t, err)
	assert.InDelta(t, 0.65, gofFn(m, nil, nil), 1e-9)
}

package similarity

import "math"

// Resnik(a,b) = ic(MICA); 0 when A ∩ B is empty.
func resnikScore(a, b TermInfo, ctx Context) float64 {
	v, ok := mica(a, b, ctx.IC)
	if !ok {
		return 0
	}
	return v
}

// Lin(a,b) = 2*ic(MICA) / (ic(a) + ic(b)); naturally reflexive at a == b
// since MICA(a,a) = a.
func linScore(a, b TermInfo, ctx Context) float64 {
	v, ok := mica(a, b, ctx.IC)
	if !ok {
		return 0
	}
	denom := ctx.IC(a.ID) + ctx.IC(b.ID)
	if denom == 0 {
		return 0
	}
	return 2 * v / denom
}

// Jc (Jiang-Conrath) = 1 / (1 + ic(a) + ic(b) - 2*ic(MICA)).
func jcScore(a, b TermInfo, ctx Context) float64 {
	v, ok := mica(a, b, ctx.IC)
	if !ok {
		return 0
	}
	denom := 1 + ctx.IC(a.ID) + ctx.IC(b.ID) - 2*v
	if denom == 0 {
		return 0
	}
	return 1 / denom
}

// Rel = Lin * (1 - exp(-ic(MICA))). Not forced to 1.0 at a == b: its value
// there depends on ic(a), which is generally finite.
func relScore(a, b TermInfo, ctx Context) float64 {
	v, ok := mica(a, b, ctx.IC)
	if !ok {
		return 0
	}
	lin := linScore(a, b, ctx)
	return lin * (1 - math.Exp(-v))
}

// Ic(a,b) = ic(MICA) / max(ic(a), ic(b)).
func icScore(a, b TermInfo, ctx Context) float64 {
	v, ok := mica(a, b, ctx.IC)
	if !ok {
		return 0
	}
	denom := math.Max(ctx.IC(a.ID), ctx.IC(b.ID))
	if denom == 0 {
		return 0
	}
	return v / denom
}

// GraphIc(a,b) = sum_{x in A ∩ B} ic(x) / sum_{x in A ∪ B} ic(x).
func graphIcScore(a, b TermInfo, ctx Context) float64 {
	denom := unionSum(a, b, ctx.IC)
	if denom == 0 {
		return 0
	}
	return intersectionSum(a, b, ctx.IC) / denom
}

// DistanceGraph(a,b) = 1 / (1 + distance(a,b)).
func distanceGraphScore(a, b TermInfo, ctx Context) float64 {
	if ctx.Distance == nil {
		return 0
	}
	d := ctx.Distance(a.ID, b.ID)
	return 1 / (1 + float64(d))
}

// Mutation scores similarity from association-count overlap rather than
// information content: a Dice coefficient over each term's upward-closed
// gene+disease association count, symmetric and 0 when both terms carry no
// associations at all.
func mutationScore(a, b TermInfo, ctx Context) float64 {
	denom := a.AssocCount + b.AssocCount
	if denom == 0 {
		return 0
	}
	if _, shareAncestor := mica(a, b, ctx.IC); !shareAncestor {
		return 0
	}
	minCount := a.AssocCount
	if b.AssocCount < minCount {
		minCount = b.AssocCount
	}
	return 2 * float64(minCount) / float64(denom)
}

// Package similarity implements pairwise term scorers (Resnik, Lin, Jc,
// Rel, Ic, GraphIc, DistanceGraph, Mutation) and set-to-set combiners
// (FunSimAvg, FunSimMax, Bma, Bmwa, GoF) over precomputed term ancestor
// closures and information content. It has no dependency on the root hpo
// package: callers precompute each term's ancestor closure and hand over a
// Context with an information-content lookup and a distance function,
// which keeps the scorer math pure and independently testable.
package similarity

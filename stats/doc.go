// Package stats implements the hypergeometric enrichment math (log-gamma,
// PMF, upper-tail survival function) used by gene and disease enrichment.
// Working in log-space throughout and exponentiating only at the end avoids
// factorial overflow for populations in the tens-of-thousands range.
package stats

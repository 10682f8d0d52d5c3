// Package engine filters a dictionary down to the words that reproduce a
// segment's constraint. Filters run cheapest first: length and first letter
// prune most candidates before the per-letter checks and the value sum.
package engine

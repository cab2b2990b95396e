// Package prdga searches for minimum-weight Perfect Roman Dominating
// Functions (PRDF) on simple undirected graphs.
//
// A labeling f: V → {0,1,2} is a PRDF when every vertex labelled 0 has
// exactly one neighbor labelled 2. Its weight is the sum of labels; the
// smallest weight over all PRDFs is the perfect Roman domination number.
//
// Layout:
//
//	core/      immutable index-based Graph built from vertex IDs and edges
//	labeling/  Label and Labeling values, parsing and weight
//	oracle/    validity check, violations, weight and penalized fitness
//	construct/ randomized and degree-based constructors, repair
//	ga/        genetic algorithm engine, operators, YAML config
//	metrics/   Prometheus collector for GA progress
//	edgelist/  "n m" + "u v" instance reader and writer
//	builder/   generated topologies (path, grid, wheel, G(n,p), ...)
//	rng/       deterministic seeding helpers
//	cmd/prdga  command-line front end
//
// Determinism: every randomized step takes an explicit *rand.Rand, so a run
// is reproducible from its seed.
package prdga

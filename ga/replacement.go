package ga

// ElitismReplacement keeps the Elite best of the current population and
// fills the rest with the best children. If there are too few children the
// remaining slots take the next best of the current population.
//
// With Elite == 0 the current population is discarded entirely, so the best
// fitness can regress between generations.
type ElitismReplacement struct {
	Elite int
}

func (e ElitismReplacement) Replace(current, children Population, size int) Population {
	elite := e.Elite
	if elite > size {
		elite = size
	}
	cur := current.Sorted()
	if elite > len(cur) {
		elite = len(cur)
	}

	next := make(Population, 0, size)
	next = append(next, cur[:elite]...)

	kids := children.Sorted()
	for _, c := range kids {
		if len(next) == size {
			break
		}
		next = append(next, c)
	}
	for _, c := range cur[elite:] {
		if len(next) == size {
			break
		}
		next = append(next, c)
	}
	return next.Sorted()
}

// PartitionReplacement merges current and children and keeps the size best.
// The best fitness never regresses under this policy.
type PartitionReplacement struct{}

func (PartitionReplacement) Replace(current, children Population, size int) Population {
	merged := make(Population, 0, len(current)+len(children))
	merged = append(merged, current...)
	merged = append(merged, children...)
	merged = merged.Sorted()
	if len(merged) > size {
		merged = merged[:size]
	}
	return merged
}

package fbarcalc

// MaximumTracker accumulates an account balance from an opening value and a
// stream of signed transaction deltas, and remembers the highest running
// total observed, the opening value included.
//
// Every value entering the tracker is truncated to cents first; the running
// total itself is never re-truncated after a summation.
type MaximumTracker struct {
	total   Amount
	max     Amount
	applied int
}

// StartTracking truncates the opening balance and seeds the tracker with it
// as both the running total and the first maximum candidate.
func StartTracking(opening Amount) *MaximumTracker {
	v := opening.Truncate()
	return &MaximumTracker{total: v, max: v}
}

// Apply truncates the delta, adds it to the running total and promotes the
// new total to maximum if it exceeds every total seen so far. It returns the
// new running total.
func (t *MaximumTracker) Apply(delta Amount) Amount {
	t.total = t.total.Add(delta.Truncate())
	if t.total.GreaterThan(t.max) {
		t.max = t.total
	}
	t.applied++
	return t.total
}

// Maximum returns the largest running total recorded so far.
func (t *MaximumTracker) Maximum() Amount { return t.max }

// Total returns the current running total.
func (t *MaximumTracker) Total() Amount { return t.total }

// Applied returns the number of transaction deltas applied.
func (t *MaximumTracker) Applied() int { return t.applied }

package codec

import (
	"cmp"
	"slices"
)

// MisraGries approximately tracks the most frequent values of a stream in
// bounded space. It keeps at most k counters; when a new value arrives with
// all counters taken, every counter is decremented and zeroed counters are
// evicted. Any value occurring more than n/(k+1) times in a stream of n
// insertions is guaranteed to survive, and surviving counts undershoot true
// frequencies by at most n/(k+1).
type MisraGries struct {
	k      int
	counts map[string]int64
	n      int64
}

// NewMisraGries creates a summary with capacity for k tracked values.
func NewMisraGries(k int) *MisraGries {
	if k <= 0 {
		k = 1
	}
	return &MisraGries{k: k, counts: make(map[string]int64, k)}
}

// Observe feeds one occurrence of v into the summary.
func (m *MisraGries) Observe(v []byte) {
	m.n++
	key := string(v)
	if _, ok := m.counts[key]; ok {
		m.counts[key]++
		return
	}
	if len(m.counts) < m.k {
		m.counts[key] = 1
		return
	}
	for k, c := range m.counts {
		if c <= 1 {
			delete(m.counts, k)
		} else {
			m.counts[k] = c - 1
		}
	}
}

// Count returns the number of insertions observed.
func (m *MisraGries) Count() int64 {
	return m.n
}

// Heavy returns the surviving values ordered by descending approximate
// frequency, ties broken by value for determinism.
func (m *MisraGries) Heavy() []string {
	type entry struct {
		value string
		count int64
	}
	entries := make([]entry, 0, len(m.counts))
	for v, c := range m.counts {
		entries = append(entries, entry{v, c})
	}
	slices.SortFunc(entries, func(a, b entry) int {
		if c := cmp.Compare(b.count, a.count); c != 0 {
			return c
		}
		return cmp.Compare(a.value, b.value)
	})
	heavy := make([]string, len(entries))
	for i, e := range entries {
		heavy[i] = e.value
	}
	return heavy
}

// Absorb folds the contents of others into m. Counts are summed, then the
// result is consolidated back down to k counters by subtracting the (k+1)-th
// largest count from every survivor. This is the merge law summaries need so
// that a merged region can retrain its dictionary from all inputs.
func (m *MisraGries) Absorb(others []*MisraGries) {
	for _, other := range others {
		m.n += other.n
		for v, c := range other.counts {
			m.counts[v] += c
		}
	}
	if len(m.counts) <= m.k {
		return
	}
	counts := make([]int64, 0, len(m.counts))
	for _, c := range m.counts {
		counts = append(counts, c)
	}
	slices.SortFunc(counts, func(a, b int64) int { return cmp.Compare(b, a) })
	threshold := counts[m.k]
	for v, c := range m.counts {
		if c <= threshold {
			delete(m.counts, v)
		} else {
			m.counts[v] = c - threshold
		}
	}
}

// HeapSize approximates the summary's map footprint.
func (m *MisraGries) HeapSize(fn func(used, reserved int)) {
	var bytes int
	for v := range m.counts {
		bytes += len(v) + 8
	}
	fn(bytes, bytes)
}

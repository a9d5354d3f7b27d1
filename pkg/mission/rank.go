package mission

import (
	"container/heap"
	"sort"
)

// Rank returns a copy of records ordered by duration descending. The
// sort is stable, so equal durations keep their insertion order, which
// is ascending source line.
func Rank(records []Record) []Record {
	out := make([]Record, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DurationDays > out[j].DurationDays
	})
	return out
}

// TopK returns the k highest-ranked records using a bounded min-heap,
// so at most k records are held beyond the input slice. The result is
// identical to Rank(records)[:min(k, len)]. k < 1 is treated as 1.
func TopK(records []Record, k int) []Record {
	if k < 1 {
		k = 1
	}
	h := make(recordHeap, 0, k)
	for _, r := range records {
		if len(h) < k {
			heap.Push(&h, r)
			continue
		}
		if outranks(r, h[0]) {
			h[0] = r
			heap.Fix(&h, 0)
		}
	}
	out := make([]Record, len(h))
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = heap.Pop(&h).(Record)
	}
	return out
}

// outranks reports whether a places before b: longer duration, or
// equal duration and earlier source line.
func outranks(a, b Record) bool {
	if a.DurationDays != b.DurationDays {
		return a.DurationDays > b.DurationDays
	}
	return a.Line < b.Line
}

// recordHeap is a min-heap by rank order: the root is the weakest
// retained record, ready to be displaced.
type recordHeap []Record

func (h recordHeap) Len() int            { return len(h) }
func (h recordHeap) Less(i, j int) bool  { return outranks(h[j], h[i]) }
func (h recordHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *recordHeap) Push(x interface{}) { *h = append(*h, x.(Record)) }

func (h *recordHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

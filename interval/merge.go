// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package interval

import (
	"cloudeng.io/algo/container/heap"
	"cloudeng.io/calendar"
)

type mergeCursor struct {
	seq  int
	next int
}

// Merge interleaves ascending sequences of dates, as produced by Range,
// into a single ascending sequence with duplicates removed. A min-heap
// keyed on the day count tracks the head of each sequence.
func Merge(seqs ...[]calendar.Date) []calendar.Date {
	h := heap.NewMinMax(heap.WithSliceCap[int64, mergeCursor](len(seqs) + 1))
	total := 0
	for i, seq := range seqs {
		total += len(seq)
		if len(seq) > 0 {
			h.Push(int64(seq[0]), mergeCursor{seq: i, next: 1})
		}
	}
	merged := make([]calendar.Date, 0, total)
	for h.Len() > 0 {
		k, cur := h.PopMin()
		if d := calendar.Date(k); len(merged) == 0 || merged[len(merged)-1] != d {
			merged = append(merged, d)
		}
		if seq := seqs[cur.seq]; cur.next < len(seq) {
			h.Push(int64(seq[cur.next]), mergeCursor{seq: cur.seq, next: cur.next + 1})
		}
	}
	return merged
}

/*
 * MIT License
 *
 * Copyright (c) 2024 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package client

import (
	"container/heap"
	"time"

	librqs "github.com/nabbar/golift/request"
)

// timerEntry is one pending user visible deadline.
type timerEntry struct {
	deadline int64
	exe      librqs.Executor
	index    int
}

type entryHeap []*timerEntry

func (h entryHeap) Len() int {
	return len(h)
}

func (h entryHeap) Less(i, j int) bool {
	return h[i].deadline < h[j].deadline
}

func (h entryHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *entryHeap) Push(x any) {
	e := x.(*timerEntry)
	e.index = len(*h)
	*h = append(*h, e)
}

func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return e
}

// timerIndex orders the pending deadlines by absolute monotonic
// millisecond and keeps one next-fire timer pointed at the earliest one.
// It is owned by the loop goroutine.
type timerIndex struct {
	hp entryHeap
	by map[librqs.Executor]*timerEntry
	tm *time.Timer
}

func newTimerIndex() *timerIndex {
	tm := time.NewTimer(time.Hour)
	if !tm.Stop() {
		<-tm.C
	}

	return &timerIndex{
		by: make(map[librqs.Executor]*timerEntry),
		tm: tm,
	}
}

// C is the next-fire channel to select on.
func (t *timerIndex) C() <-chan time.Time {
	return t.tm.C
}

// insert indexes the executor under the given absolute deadline. The
// caller follows with updateNextFire.
func (t *timerIndex) insert(deadline int64, exe librqs.Executor) {
	e := &timerEntry{
		deadline: deadline,
		exe:      exe,
	}

	heap.Push(&t.hp, e)
	t.by[exe] = e
}

// remove erases the executor's deadline if it has one, reporting whether
// anything was removed. The caller follows with updateNextFire.
func (t *timerIndex) remove(exe librqs.Executor) bool {
	e, ok := t.by[exe]
	if !ok {
		return false
	}

	heap.Remove(&t.hp, e.index)
	delete(t.by, exe)

	return true
}

// popDue removes and returns the earliest entry whose deadline has passed.
func (t *timerIndex) popDue(now int64) (librqs.Executor, bool) {
	if len(t.hp) < 1 || t.hp[0].deadline > now {
		return nil, false
	}

	e := heap.Pop(&t.hp).(*timerEntry)
	delete(t.by, e.exe)

	return e.exe, true
}

// updateNextFire stops the next-fire timer and, if the index is not
// empty, restarts it at the earliest deadline. An already expired
// deadline restarts it at zero so it fires on the next loop iteration.
func (t *timerIndex) updateNextFire(now int64) {
	if !t.tm.Stop() {
		select {
		case <-t.tm.C:
		default:
		}
	}

	if len(t.hp) < 1 {
		return
	}

	d := t.hp[0].deadline - now
	if d < 0 {
		d = 0
	}

	t.tm.Reset(time.Duration(d) * time.Millisecond)
}

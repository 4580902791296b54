/*
Package rle implements run length encoding over arbitrary comparable tokens,
searchable in O(lg(n)) time.

Runs are of indefinite length. A run only stores the index it starts at; it
ends where the next run in the sequence starts, or at the end of the
addressable range for the last run. A sequence is built once, by appending runs
in ascending order of their start, and is read-only afterwards.
*/
package rle

import (
	"fmt"
	"sort"
	"unsafe"
)

// Index is the set of types usable as a run start. Choosing a smaller type
// saves space when the sequence length is known to fit.
type Index interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint |
		~int8 | ~int16 | ~int32 | ~int64 | ~int
}

// Mergeable is the merge contract between a run and a candidate run.
//
// CanAppend reports whether other may be folded into the receiver at the end
// of a sequence. Append and Prepend return the merged run.
type Mergeable[R any] interface {
	CanAppend(other R) bool
	Append(other R) R
	Prepend(other R) R
}

// Run is a mergeable run with a token and an ordered start.
type Run[R any, T comparable, S Index] interface {
	Mergeable[R]
	Token() T
	Start() S
}

// IndexedRun stores a token verbatim, together with its start.
type IndexedRun[T comparable, S Index] struct {
	token T
	start S
}

// NewIndexedRun creates a run of token starting at start.
func NewIndexedRun[T comparable, S Index](token T, start S) IndexedRun[T, S] {
	return IndexedRun[T, S]{token: token, start: start}
}

// Token returns the token value of the run.
func (r IndexedRun[T, S]) Token() T { return r.token }

// Start returns the index the run starts at.
func (r IndexedRun[T, S]) Start() S { return r.start }

// CanAppend is true if other carries the same token and does not start
// before r.
func (r IndexedRun[T, S]) CanAppend(other IndexedRun[T, S]) bool {
	return r.token == other.token && r.start <= other.start
}

// Append is a no-op: the run already covers everything after its start.
func (r IndexedRun[T, S]) Append(other IndexedRun[T, S]) IndexedRun[T, S] {
	return r
}

// Prepend extends r back to the start of other, if other starts sooner.
func (r IndexedRun[T, S]) Prepend(other IndexedRun[T, S]) IndexedRun[T, S] {
	if other.start < r.start {
		r.start = other.start
	}
	return r
}

func (r IndexedRun[T, S]) String() string {
	return fmt.Sprintf("%v@%v", r.token, r.start)
}

// MemorySize is the amount of memory one run occupies, including padding.
func (r IndexedRun[T, S]) MemorySize() int {
	return int(unsafe.Sizeof(r))
}

// Runs is an ordered sequence of runs.
//
// Runs are expected to be appended in ascending order of their start; Runs
// does no sorting.
type Runs[R Run[R, T, S], T comparable, S Index] struct {
	runs []R
	mk   func(T, S) R
}

// New creates an empty sequence. mk constructs a run from a token and a
// start, for AppendToken.
func New[R Run[R, T, S], T comparable, S Index](mk func(T, S) R) *Runs[R, T, S] {
	return &Runs[R, T, S]{mk: mk}
}

// NewIndexed creates an empty sequence of IndexedRuns.
func NewIndexed[T comparable, S Index]() *Runs[IndexedRun[T, S], T, S] {
	return New[IndexedRun[T, S], T, S](NewIndexedRun[T, S])
}

// AppendRun appends run to the end of the sequence.
//
// It returns true if run was added as a new run, and false if it was merged
// into the last run instead.
//
// A run carrying the last run's token but starting before it moves the last
// run's start back, as long as it still starts after the run before that one.
// Any other run starting before the last run violates the ordering of the
// sequence and panics.
func (rs *Runs[R, T, S]) AppendRun(run R) bool {
	n := len(rs.runs)
	if n == 0 {
		rs.runs = append(rs.runs, run)
		return true
	}
	last := rs.runs[n-1]
	if last.CanAppend(run) {
		rs.runs[n-1] = last.Append(run)
		return false
	}
	if run.Start() < last.Start() {
		if run.Token() != last.Token() {
			panic(fmt.Sprintf("rle: run starting at %v appended after run starting at %v", run.Start(), last.Start()))
		}
		if n > 1 && run.Start() <= rs.runs[n-2].Start() {
			panic(fmt.Sprintf("rle: run starting at %v would overtake run starting at %v", run.Start(), rs.runs[n-2].Start()))
		}
		rs.runs[n-1] = last.Prepend(run)
		return false
	}
	rs.runs = append(rs.runs, run)
	return true
}

// AppendToken appends token as its own run, starting at start.
//
// It returns true if the token was added as a new run, and false if it was
// merged into the last run instead.
func (rs *Runs[R, T, S]) AppendToken(token T, start S) bool {
	return rs.AppendRun(rs.mk(token, start))
}

// Find returns the token for the run containing index.
//
// It returns false if the sequence is empty or index is before the start of
// the first run.
func (rs *Runs[R, T, S]) Find(index S) (T, bool) {
	var none T
	if len(rs.runs) == 0 || index < rs.runs[0].Start() {
		return none, false
	}
	i := sort.Search(len(rs.runs), func(i int) bool {
		return rs.runs[i].Start() >= index
	})
	switch {
	case i == len(rs.runs): // at or after the start of the last run
		i--
	case rs.runs[i].Start() != index: // in the middle of the previous run
		i--
	}
	return rs.runs[i].Token(), true
}

// NumRuns returns the number of runs in the sequence.
func (rs *Runs[R, T, S]) NumRuns() int {
	return len(rs.runs)
}

// At returns the i-th run.
func (rs *Runs[R, T, S]) At(i int) R {
	return rs.runs[i]
}

// Last returns the last run, or false if the sequence is empty.
func (rs *Runs[R, T, S]) Last() (R, bool) {
	if len(rs.runs) == 0 {
		var none R
		return none, false
	}
	return rs.runs[len(rs.runs)-1], true
}

// Sorted checks the invariants of the sequence: starts strictly ascending and
// no two neighbouring runs carrying the same token.
func (rs *Runs[R, T, S]) Sorted() bool {
	for i := 1; i < len(rs.runs); i++ {
		if rs.runs[i].Start() <= rs.runs[i-1].Start() || rs.runs[i].Token() == rs.runs[i-1].Token() {
			return false
		}
	}
	return true
}

// MemorySize is the amount of memory it takes to store the sequence.
func (rs *Runs[R, T, S]) MemorySize() int {
	var r R
	return len(rs.runs)*int(unsafe.Sizeof(r)) + int(unsafe.Sizeof(rs.runs))
}

// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"container/heap"

	"golang.org/x/exp/slices"

	"github.com/dsnet/huffviz/internal/errors"
)

// Absent is the child index of a missing branch.
const Absent = -1

// Node is either a leaf holding a Symbol and its frequency, or an internal
// node holding the indices of its two children and their combined frequency.
// The only internal node with an Absent child is the root of a tree built
// from a single distinct symbol.
type Node struct {
	Symbol Symbol // Only valid for leaves
	Freq   int
	Left   int // Index of the left child or Absent
	Right  int // Index of the right child or Absent
	leaf   bool
}

// IsLeaf reports whether n is a leaf.
func (n Node) IsLeaf() bool { return n.leaf }

// Tree is a Huffman tree stored as an arena of nodes. Node indices follow
// insertion order: the leaves come first in ascending Symbol order, and each
// internal node is appended when it is created. Since nodes are never
// modified after creation, any prefix of the arena together with a list of
// roots describes the forest at some point of the construction.
type Tree struct {
	nodes []Node
	root  int
}

// Step records a single merge of the tree construction.
type Step struct {
	Left   int   // The node taken first from the queue
	Right  int   // The node taken second from the queue
	Merged int   // The internal node created from Left and Right
	Forest []int // Roots of the forest after the merge, in priority order
}

// Build constructs the Huffman tree for ft, along with the sequence of merge
// steps that produced it.
//
// It reports an empty input error if ft has no symbols. If ft has a single
// symbol, then the returned tree has a synthetic internal root and no steps.
func Build(ft FrequencyTable) (*Tree, []Step, error) {
	syms := ft.Symbols()
	if len(syms) == 0 {
		return nil, nil, errorf(errors.EmptyInput, "no symbols to build a tree from")
	}

	t := &Tree{nodes: make([]Node, 0, 2*len(syms))}
	for _, s := range syms {
		t.nodes = append(t.nodes, Node{Symbol: s, Freq: ft.Count(s), Left: Absent, Right: Absent, leaf: true})
	}
	if len(syms) == 1 {
		t.nodes = append(t.nodes, Node{Freq: t.nodes[0].Freq, Left: 0, Right: Absent})
		t.root = 1
		return t, nil, nil
	}

	q := &nodeQueue{t: t}
	for i := range t.nodes {
		q.idxs = append(q.idxs, i)
	}
	heap.Init(q)

	steps := make([]Step, 0, len(syms)-1)
	for q.Len() > 1 {
		left := heap.Pop(q).(int)
		right := heap.Pop(q).(int)
		merged := len(t.nodes)
		t.nodes = append(t.nodes, Node{
			Freq:  t.nodes[left].Freq + t.nodes[right].Freq,
			Left:  left,
			Right: right,
		})
		heap.Push(q, merged)
		steps = append(steps, Step{Left: left, Right: right, Merged: merged, Forest: q.sorted()})
	}
	t.root = q.idxs[0]
	return t, steps, nil
}

// Root returns the index of the root node.
func (t *Tree) Root() int { return t.root }

// Len reports the number of nodes in the tree.
func (t *Tree) Len() int { return len(t.nodes) }

// Node returns the node at index i.
func (t *Tree) Node(i int) Node { return t.nodes[i] }

// Weight reports the frequency of the root, which is the number of symbols
// the tree was built from.
func (t *Tree) Weight() int { return t.nodes[t.root].Freq }

// Leaves returns the indices of all leaves in priority order.
// This is the forest before the first merge.
func (t *Tree) Leaves() []int {
	var idxs []int
	for i, n := range t.nodes {
		if n.leaf {
			idxs = append(idxs, i)
		}
	}
	slices.SortFunc(idxs, t.compare)
	return idxs
}

// Snapshot returns the roots of the forest after the first n of the given
// merge steps, in priority order. Snapshot(steps, 0) is the initial forest of
// leaves. The steps must be those returned by Build along with t.
func (t *Tree) Snapshot(steps []Step, n int) []int {
	if n < 0 || n > len(steps) {
		panic("huffman: snapshot out of range")
	}
	if n == 0 {
		return t.Leaves()
	}
	return append([]int(nil), steps[n-1].Forest...)
}

// Walk visits the sub-tree rooted at node i in depth-first order, left
// before right, calling fn with each node index and its depth below i.
func (t *Tree) Walk(i int, fn func(idx, depth int)) {
	var walk func(i, depth int)
	walk = func(i, depth int) {
		if i == Absent {
			return
		}
		fn(i, depth)
		walk(t.nodes[i].Left, depth+1)
		walk(t.nodes[i].Right, depth+1)
	}
	walk(i, 0)
}

// Depth reports the length of the longest root-to-leaf path.
func (t *Tree) Depth() (n int) {
	t.Walk(t.root, func(i, depth int) {
		if t.nodes[i].leaf && depth > n {
			n = depth
		}
	})
	return n
}

// Symbols returns the symbols of all leaves below node i, left to right.
func (t *Tree) Symbols(i int) []Symbol {
	var syms []Symbol
	t.Walk(i, func(i, _ int) {
		if t.nodes[i].leaf {
			syms = append(syms, t.nodes[i].Symbol)
		}
	})
	return syms
}

// compare orders nodes by frequency and then by insertion order.
func (t *Tree) compare(a, b int) int {
	switch fa, fb := t.nodes[a].Freq, t.nodes[b].Freq; {
	case fa < fb:
		return -1
	case fa > fb:
		return +1
	}
	return a - b
}

// nodeQueue is a min-heap of node indices.
type nodeQueue struct {
	t    *Tree
	idxs []int
}

func (q *nodeQueue) Len() int           { return len(q.idxs) }
func (q *nodeQueue) Less(i, j int) bool { return q.t.compare(q.idxs[i], q.idxs[j]) < 0 }
func (q *nodeQueue) Swap(i, j int)      { q.idxs[i], q.idxs[j] = q.idxs[j], q.idxs[i] }
func (q *nodeQueue) Push(x interface{}) { q.idxs = append(q.idxs, x.(int)) }
func (q *nodeQueue) Pop() interface{} {
	n := q.idxs[len(q.idxs)-1]
	q.idxs = q.idxs[:len(q.idxs)-1]
	return n
}

// sorted returns a copy of the queue contents in the order they would be
// popped.
func (q *nodeQueue) sorted() []int {
	idxs := append([]int(nil), q.idxs...)
	slices.SortFunc(idxs, q.t.compare)
	return idxs
}

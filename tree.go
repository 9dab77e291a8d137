package textcodec

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/chronos-tachyon/assert"
)

// nodeIndex addresses a node within a tree's arena.
type nodeIndex int32

// noNode marks an absent child or an empty tree.
const noNode = nodeIndex(-1)

type node struct {
	left   nodeIndex
	right  nodeIndex
	symbol byte
	leaf   bool
}

func (n node) child(bit uint) nodeIndex {
	if bit == 0 {
		return n.left
	}
	return n.right
}

func (n node) isEmpty() bool {
	return !n.leaf && n.left == noNode && n.right == noNode
}

// tree is a binary Huffman tree stored as an arena of nodes.  Children are
// referenced by index, so replacing the arena releases the whole tree.
type tree struct {
	nodes []node
	root  nodeIndex
}

func (t *tree) reset(capacity int) {
	*t = tree{nodes: make([]node, 0, capacity), root: noNode}
}

func (t *tree) addLeaf(symbol byte) nodeIndex {
	t.nodes = append(t.nodes, node{left: noNode, right: noNode, symbol: symbol, leaf: true})
	return nodeIndex(len(t.nodes) - 1)
}

func (t *tree) addInternal(left nodeIndex, right nodeIndex) nodeIndex {
	t.nodes = append(t.nodes, node{left: left, right: right})
	return nodeIndex(len(t.nodes) - 1)
}

// build replaces this tree with the Huffman tree for the given byte
// frequencies.  Bytes with a frequency of 0 get no leaf.
//
// Ties between equal frequencies are broken by arena index: leaves are
// allocated in ascending byte order, and internal nodes after all leaves in
// the order they are created, so the shape of the tree is a pure function
// of the frequencies.
//
func (t *tree) build(frequencies *[256]uint64) {
	var numLeaves int
	for _, freq := range frequencies {
		if freq != 0 {
			numLeaves++
		}
	}

	t.reset(2 * numLeaves)
	if numLeaves == 0 {
		return
	}

	h := freqHeap{list: make([]nodeAndFreq, 0, numLeaves)}
	for symbol, freq := range frequencies {
		if freq != 0 {
			index := t.addLeaf(byte(symbol))
			h.list = append(h.list, nodeAndFreq{index, freq})
		}
	}
	h.Init()

	for h.Len() > 1 {
		a := heap.Pop(&h).(nodeAndFreq)
		b := heap.Pop(&h).(nodeAndFreq)

		// Compute freqSum using saturating addition
		freqSum := a.freq + b.freq
		if freqSum < a.freq {
			freqSum = math.MaxUint64
		}

		heap.Push(&h, nodeAndFreq{t.addInternal(a.node, b.node), freqSum})
	}

	t.root = heap.Pop(&h).(nodeAndFreq).node
}

// assignCodes walks the tree in pre-order and records the Code of every
// leaf in codes, which must be zeroed by the caller.  A tree consisting of a
// single leaf assigns that leaf the one-bit code "0", since an empty code
// could never be decoded.
//
func (t *tree) assignCodes(codes *[256]Code) {
	if t.root == noNode {
		return
	}

	if rootNode := t.nodes[t.root]; rootNode.leaf {
		codes[rootNode.symbol] = MakeCode(1, 0)
		return
	}

	// We use stackItem.x to keep track of where we are in the tree walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children

	type stackItem struct {
		n    nodeIndex
		code Code
		x    byte
	}

	stack := make([]stackItem, 0, log2int(len(t.nodes)))

	processChild := func(child nodeIndex, code Code) {
		assert.Assertf(child != noNode, "tree.assignCodes: internal node with a missing child at code %v", code)
		if n := t.nodes[child]; n.leaf {
			codes[n.symbol] = code
			return
		}
		stack = append(stack, stackItem{n: child, code: code})
	}

	stack = append(stack, stackItem{n: t.root})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		switch x {
		case 0:
			processChild(t.nodes[top.n].left, top.code.Append(0))
		case 1:
			processChild(t.nodes[top.n].right, top.code.Append(1))
		case 2:
			stack = stack[:len(stack)-1]
		}
	}
}

// insert adds a leaf for symbol at the position described by hc, creating
// placeholder internal nodes along the way.  It is used to rebuild a tree
// from its serialized form, and rejects codes that collide with codes
// already inserted.
//
func (t *tree) insert(symbol byte, hc Code) error {
	if hc.Size == 0 {
		return fmt.Errorf("%w: empty code for symbol %q", ErrMalformedInput, symbol)
	}
	if t.root == noNode {
		t.root = t.addInternal(noNode, noNode)
	}

	n := t.root
	for i := byte(0); i < hc.Size; i++ {
		if t.nodes[n].leaf {
			return fmt.Errorf("%w: code %v for symbol %q extends the code of symbol %q", ErrMalformedInput, hc, symbol, t.nodes[n].symbol)
		}
		bit := hc.Bit(i)
		child := t.nodes[n].child(bit)
		if child == noNode {
			child = t.addInternal(noNode, noNode)
			if bit == 0 {
				t.nodes[n].left = child
			} else {
				t.nodes[n].right = child
			}
		}
		n = child
	}

	target := &t.nodes[n]
	if target.leaf {
		return fmt.Errorf("%w: code %v is assigned to both %q and %q", ErrMalformedInput, hc, target.symbol, symbol)
	}
	if !target.isEmpty() {
		return fmt.Errorf("%w: code %v for symbol %q is a prefix of another code", ErrMalformedInput, hc, symbol)
	}
	target.leaf = true
	target.symbol = symbol
	return nil
}

// step follows one edge down from n.  It returns false if there is no
// such edge.
func (t *tree) step(n nodeIndex, bit uint) (nodeIndex, bool) {
	if n == noNode {
		return noNode, false
	}
	child := t.nodes[n].child(bit)
	return child, child != noNode
}

// type nodeAndFreq + type freqHeap {{{

type nodeAndFreq struct {
	node nodeIndex
	freq uint64
}

type freqHeap struct {
	list []nodeAndFreq
}

func (h *freqHeap) Init() {
	heap.Init(h)
}

func (h *freqHeap) Len() int {
	return len(h.list)
}

func (h *freqHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *freqHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.freq != b.freq {
		return a.freq < b.freq
	}
	return a.node < b.node
}

func (h *freqHeap) Push(x interface{}) {
	h.list = append(h.list, x.(nodeAndFreq))
}

func (h *freqHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*freqHeap)(nil)

// }}}

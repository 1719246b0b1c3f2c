package huffman

import (
	"container/heap"
	"fmt"

	"github.com/chronos-tachyon/assert"
)

// Node is a node in a Huffman tree.  A Node with no children is a leaf and
// carries a Symbol; any other Node has exactly two children and a Weight
// equal to the sum of theirs.
type Node[S Symbol] struct {
	// Weight is the total frequency of every leaf under this Node.
	Weight uint64

	// Symbol is the symbol of a leaf.  It is the zero value for internal
	// nodes.
	Symbol S

	// Low is the child reached by a 0 bit.
	Low *Node[S]

	// High is the child reached by a 1 bit.
	High *Node[S]

	// key orders nodes of equal weight: the symbol for a leaf, or the key
	// of the low child for an internal node.
	key S
}

// IsLeaf returns true iff this Node has no children.
func (n *Node[S]) IsLeaf() bool {
	return n.Low == nil && n.High == nil
}

// Tree is a Huffman tree.
type Tree[S Symbol] struct {
	root      *Node[S]
	numLeaves int
	depth     int
}

// BuildTree constructs the Huffman tree for the given frequencies.
//
// Construction is the usual greedy one: every symbol starts as a leaf in a
// min-heap ordered by (weight, key), and the two lightest nodes are
// repeatedly merged until a single root remains.  The first node popped
// becomes the low (0) child of the merged node.  Because the ordering is
// total, the result depends only on freq.
//
// ErrEmptyAlphabet is returned if freq is empty.  A table with a single
// symbol yields a one-leaf tree.
//
func BuildTree[S Symbol](freq Frequencies[S]) (*Tree[S], error) {
	if len(freq) == 0 {
		return nil, ErrEmptyAlphabet
	}

	symbols := freq.Symbols()
	nodes := make([]*Node[S], 0, len(symbols))
	for _, symbol := range symbols {
		weight := freq[symbol]
		if weight == 0 {
			return nil, fmt.Errorf("invalid frequency for symbol %s: got 0, want > 0", formatSymbol(symbol))
		}
		nodes = append(nodes, &Node[S]{Weight: weight, Symbol: symbol, key: symbol})
	}
	numLeaves := len(nodes)

	// Step 1: build a minheap.

	h := nodeHeap[S]{nodes}
	h.Init()

	// Step 2: process the minheap by popping two nodes, merging them into
	// a new internal node, and pushing the new node back onto the minheap.

	for h.Len() > 1 {
		lo := heap.Pop(&h).(*Node[S])
		hi := heap.Pop(&h).(*Node[S])

		weight := lo.Weight + hi.Weight
		assert.Assertf(weight >= lo.Weight, "weight overflow: %d + %d", lo.Weight, hi.Weight)

		heap.Push(&h, &Node[S]{Weight: weight, Low: lo, High: hi, key: lo.key})
	}

	root := heap.Pop(&h).(*Node[S])
	assert.Assertf(h.Len() == 0, "heap not drained: %d nodes left", h.Len())

	t := &Tree[S]{root: root, numLeaves: numLeaves}
	t.depth = t.measureDepth()
	if t.depth > MaxBitsPerCode {
		return nil, fmt.Errorf("invalid bit length while constructing Huffman tree: got %d, max %d", t.depth, MaxBitsPerCode)
	}
	return t, nil
}

// Root returns the root Node.
func (t *Tree[S]) Root() *Node[S] {
	return t.root
}

// NumLeaves returns the number of symbols in the tree.
func (t *Tree[S]) NumLeaves() int {
	return t.numLeaves
}

// Depth returns the length of the longest code this tree assigns.
func (t *Tree[S]) Depth() int {
	return t.depth
}

// Table flattens this tree into a code table, accumulating a 0 bit for each
// step to a Low child and a 1 bit for each step to a High child.
//
// A tree consisting of a lone leaf assigns that leaf the 1-bit code "0", so
// that every symbol always has a non-empty code.
//
func (t *Tree[S]) Table() Table[S] {
	table := make(Table[S], t.numLeaves)
	if t.root.IsLeaf() {
		table[t.root.Symbol] = MakeCode(1, 0)
		return table
	}

	t.walk(func(leaf *Node[S], hc Code) {
		table[leaf.Symbol] = hc
	})

	assert.Assertf(len(table) == t.numLeaves, "table has %d entries, tree has %d leaves", len(table), t.numLeaves)
	return table
}

func (t *Tree[S]) measureDepth() int {
	type stackItem struct {
		node  *Node[S]
		depth int
	}

	var depth int
	stack := []stackItem{{node: t.root}}
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.node.IsLeaf() {
			if top.depth > depth {
				depth = top.depth
			}
			continue
		}
		stack = append(stack, stackItem{top.node.Low, top.depth + 1}, stackItem{top.node.High, top.depth + 1})
	}
	if depth == 0 {
		depth = 1
	}
	return depth
}

// walk visits every leaf in low-to-high order, passing the path from the
// root as a Code.  The root itself must not be a leaf.
//
// We use stackItem.x to keep track of where we are in the tree walk:
//   x=0 → We just arrived at stackItem for the first time
//   x=1 → We have already processed the low child
//   x=2 → We have already processed both children
//
func (t *Tree[S]) walk(fn func(leaf *Node[S], hc Code)) {
	type stackItem struct {
		node *Node[S]
		code Code
		x    byte
	}

	stack := make([]stackItem, 0, bitLength(uint32(t.numLeaves)))
	stack = append(stack, stackItem{node: t.root})

	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++

		var child *Node[S]
		var bit uint
		switch x {
		case 0:
			child, bit = top.node.Low, 0
		case 1:
			child, bit = top.node.High, 1
		default:
			stack[len(stack)-1] = stackItem{}
			stack = stack[:len(stack)-1]
			continue
		}

		assert.Assertf(child != nil, "internal node with weight %d is missing a child", top.node.Weight)

		hc := top.code.Append(bit)
		if child.IsLeaf() {
			fn(child, hc)
		} else {
			stack = append(stack, stackItem{node: child, code: hc})
		}
	}
}

// type nodeHeap {{{

type nodeHeap[S Symbol] struct {
	list []*Node[S]
}

func (h *nodeHeap[S]) Init() {
	heap.Init(h)
}

func (h *nodeHeap[S]) Len() int {
	return len(h.list)
}

func (h *nodeHeap[S]) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap[S]) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}
	return a.key < b.key
}

func (h *nodeHeap[S]) Push(x interface{}) {
	h.list = append(h.list, x.(*Node[S]))
}

func (h *nodeHeap[S]) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = nil
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap[rune])(nil)

// }}}

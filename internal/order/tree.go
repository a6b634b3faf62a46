package order

import "math/rand/v2"

// node is a treap node keyed by span index.
// sum caches the total delta of the node's subtree so prefix sums
// resolve during a single root-to-leaf descent.
type node struct {
	key   int
	delta float64
	prio  uint64
	sum   float64
	left  *node
	right *node
}

func (n *node) subtreeSum() float64 {
	if n == nil {
		return 0
	}
	return n.sum
}

func (n *node) update() {
	n.sum = n.delta + n.left.subtreeSum() + n.right.subtreeSum()
}

// Tree is an order-statistics treap mapping span indices to size
// deltas. The zero value is not usable; call New.
type Tree struct {
	root *node
	size int
	rng  func() uint64
}

// New creates an empty tree.
func New() *Tree {
	return &Tree{rng: rand.Uint64}
}

// Len returns the number of overrides in the tree.
func (t *Tree) Len() int {
	return t.size
}

// Get returns the delta stored at key.
func (t *Tree) Get(key int) (float64, bool) {
	n := t.root
	for n != nil {
		switch {
		case key < n.key:
			n = n.left
		case key > n.key:
			n = n.right
		default:
			return n.delta, true
		}
	}
	return 0, false
}

// Set inserts or replaces the delta at key.
// A delta of zero is stored like any other; callers that want
// zero-delta entries removed should call Delete instead.
func (t *Tree) Set(key int, delta float64) {
	if t.replace(t.root, key, delta) {
		return
	}
	t.root = t.insert(t.root, &node{key: key, delta: delta, prio: t.rng()})
	t.size++
}

// replace updates an existing node in place, fixing cached sums on
// the way back up. Returns false if key is absent.
func (t *Tree) replace(n *node, key int, delta float64) bool {
	if n == nil {
		return false
	}
	var found bool
	switch {
	case key < n.key:
		found = t.replace(n.left, key, delta)
	case key > n.key:
		found = t.replace(n.right, key, delta)
	default:
		n.delta = delta
		found = true
	}
	if found {
		n.update()
	}
	return found
}

func (t *Tree) insert(n, item *node) *node {
	if n == nil {
		item.update()
		return item
	}
	if item.key < n.key {
		n.left = t.insert(n.left, item)
		if n.left.prio > n.prio {
			n = rotateRight(n)
		}
	} else {
		n.right = t.insert(n.right, item)
		if n.right.prio > n.prio {
			n = rotateLeft(n)
		}
	}
	n.update()
	return n
}

// Delete removes the entry at key. Returns true if it was present.
func (t *Tree) Delete(key int) bool {
	var deleted bool
	t.root, deleted = t.delete(t.root, key)
	if deleted {
		t.size--
	}
	return deleted
}

func (t *Tree) delete(n *node, key int) (*node, bool) {
	if n == nil {
		return nil, false
	}
	var deleted bool
	switch {
	case key < n.key:
		n.left, deleted = t.delete(n.left, key)
	case key > n.key:
		n.right, deleted = t.delete(n.right, key)
	default:
		return t.merge(n.left, n.right), true
	}
	n.update()
	return n, deleted
}

// merge joins two subtrees where every key in a precedes every key in b.
func (t *Tree) merge(a, b *node) *node {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case a.prio > b.prio:
		a.right = t.merge(a.right, b)
		a.update()
		return a
	default:
		b.left = t.merge(a, b.left)
		b.update()
		return b
	}
}

// SumBefore returns the total delta of all overrides at indices
// strictly less than key.
func (t *Tree) SumBefore(key int) float64 {
	var sum float64
	n := t.root
	for n != nil {
		if key <= n.key {
			n = n.left
		} else {
			sum += n.left.subtreeSum() + n.delta
			n = n.right
		}
	}
	return sum
}

// SeekOffset locates the span containing a worksheet offset, assuming
// every non-overridden index occupies scale units and every override
// at index i occupies scale plus its stored delta.
//
// When the offset falls inside an overridden span, SeekOffset returns
// that span's index with ok=true. Otherwise it returns ok=false and
// prefix, the total delta of all overrides positioned before offset;
// the caller derives the default-sized index as
// floor((offset-prefix)/scale).
//
// Offsets before position zero report ok=false with prefix 0.
func (t *Tree) SeekOffset(offset, scale float64) (index int, prefix float64, ok bool) {
	var acc float64
	n := t.root
	for n != nil {
		// Worksheet position of the overridden span at n.key, counting
		// every override before it: those outside this subtree (acc)
		// plus those in the left subtree.
		start := scale*float64(n.key) + acc + n.left.subtreeSum()
		switch {
		case offset < start:
			n = n.left
		case offset < start+scale+n.delta:
			return n.key, 0, true
		default:
			acc += n.left.subtreeSum() + n.delta
			n = n.right
		}
	}
	return 0, acc, false
}

// Ascend calls fn for every override in increasing key order until fn
// returns false.
func (t *Tree) Ascend(fn func(key int, delta float64) bool) {
	ascend(t.root, fn)
}

func ascend(n *node, fn func(int, float64) bool) bool {
	if n == nil {
		return true
	}
	if !ascend(n.left, fn) {
		return false
	}
	if !fn(n.key, n.delta) {
		return false
	}
	return ascend(n.right, fn)
}

func rotateLeft(n *node) *node {
	r := n.right
	n.right = r.left
	r.left = n
	n.update()
	r.update()
	return r
}

func rotateRight(n *node) *node {
	l := n.left
	n.left = l.right
	l.right = n
	n.update()
	l.update()
	return l
}

// Package order provides an order-statistics index over a sparse set
// of per-index size deltas.
//
// The index backs variable-span axis layout over huge index spaces
// (up to 2^20 rows): every index has an implicit default size, and a
// small number of indices carry an override. Storing only the deltas
// (override minus default) in a balanced tree augmented with subtree
// sums makes both prefix-sum and position-seek queries O(log k) in
// the number of overrides, independent of the axis length.
//
// # Queries
//
//	t.Set(500, 24)         // index 500 is 24 units larger than default
//	t.SumBefore(501)       // total delta of overrides at indices < 501
//	t.SeekOffset(off, 24)  // which span contains worksheet offset off?
//
// The tree is a treap with random priorities, giving expected O(log k)
// per operation without rebalancing bookkeeping.
//
// Package order is not safe for concurrent use; the owning axis is
// confined to the rendering goroutine.
package order

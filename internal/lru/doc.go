// Package lru provides an intrusive doubly-linked recency list.
//
// The list tracks usage order only; the owning cache pairs each node
// with its entry in a map so both lookup and eviction are O(1). The
// front of the list is the most recently used key, the back the least.
//
// Package lru is not safe for concurrent use; the owning cache is
// confined to the rendering goroutine.
package lru

// Package veb defines an implementation of a van Emde Boas tree: an ordered set of
// integers drawn from a fixed universe [0, u) where u = 2**(2**k).
//
// Membership, insertion, deletion, successor and predecessor all run in
// O(log log u); Min and Max are O(1).
//
// Node layout:
// -----------
//
// Every node covers a universe of 2**w values and caches its own min and max.
// The cached extremes are never stored below the node, so a node holding one
// or two values has no substructure at all.
//
//   - Leaf node (u <= leaf size, 16 by default):
//
//     [ min ] [ max ] [ count ] [ bitmap: u bits, one per value ]
//
//   - Internal node (u > leaf size):
//
//     [ min ] [ max ] [ count ] [ summary: node(w/2) ] [ cluster: [2**(w/2)]*node(w/2) ]
//
// A value v splits into high(v) = v >> w/2 (the cluster index) and
// low(v) = v & (2**(w/2) - 1) (the value stored inside that cluster). The summary
// node holds exactly the indices of the non-empty clusters. Clusters and the
// summary are allocated on first use and released once they become empty.
//
// Example tree:
// ------------
//
//	u = 256, values {3, 17, 18, 200}
//
//	[min:3 max:200] --+-- summary(16):  {1}
//	                  |
//	                  `-- cluster[1](16): [min:1 max:2]   (17 = 1<<4|1, 18 = 1<<4|2)
//
// 3 and 200 live only in the root's cached extremes.
//
// A Tree is not safe for concurrent use. Callers that share one between
// goroutines must guard every operation with a mutex.
package veb

/*
Package scenariotree materializes a discrete-time stochastic scenario tree
and indexes it for lookup.

A scenario tree describes how the state of a stochastic process may evolve
over model years. Every node is one (year, state) combination carrying a
probability weight; every root-to-leaf path is one fully realized scenario.

# Construction

Construct turns a raw record tree (see package record) into an immutable
*Tree in a single synchronous pass:

 1. Tree Loader: the records are visited pre-order, depth-first. Each record
    becomes a Node carrying its identifier, year, probability and state. The
    node's PathToRoot is its own identifier followed by its parent's path,
    so it is always computed from an already complete parent. The node is
    registered in the identifier lookup before its children are visited, and
    children keep the order they have in the source.

 2. Indexing: once the pass completes, the leaves (nodes without children)
    are collected from the root and the node count is fixed to the size of
    the lookup.

A record missing `node_id`, `year`, `probability` or `state` fails the whole
construction with a *MalformedInputError; no partial tree is ever returned.
Years, probability ranges and sibling probability sums are not validated.

# Identity

Identifiers are expected to be unique across the tree, but duplicates are not
rejected by default: a node registered later in the pre-order pass replaces
the earlier one in the lookup (and a later leaf an earlier one in the leaf
index), so NodeCount counts distinct identifiers. The leaf index only sees
childless nodes, so a leaf shadowed in the lookup by a later node with
children stays in the leaf index under that identifier. WithUniqueIDs turns
a duplicate into a *MalformedInputError instead.

# Storage

Nodes live in one arena owned by the Tree. A node refers to its parent and
children by arena index, so there are no ownership cycles and *Node handles
stay valid for the lifetime of the Tree.

# Thread-Safety

A Tree never changes after Construct returns. It may be shared between any
number of goroutines without locking. Accessors that return maps or slices
return fresh copies.

# Loading from a dataset

Load combines source.Load, which reads `scenariotree.json` (or its YAML/HCL
alternatives) from a dataset directory, with Construct. A dataset without a
scenario tree file fails with a *NotFoundError before construction starts.
*/
package scenariotree

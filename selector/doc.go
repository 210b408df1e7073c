// Package selector implements the six Selector operations: each takes a
// wavegraph.Graph and returns a new graph, never mutating its input. Five
// of the six operations work at the granularity of whole weakly-connected
// components — a component is kept entirely or dropped entirely — while
// SelectTimeInterval and the second half of SelectOnlyInInterval drop
// individual vertices. Every operation obeys the same edge rule: an edge
// survives iff both its endpoints do.
package selector

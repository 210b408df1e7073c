// Package wireformat provides the module's one stable on-disk/over-the-wire
// representation: node-link JSON for wavegraph.Graph (the same shape
// networkx's json_graph.node_link_data/node_link_graph produce), compact
// per-station and per-pair listings for peaks and edges, and a CSV-row
// style tabular flattening of analysis results. It has no CSV parser and no
// HTTP client; reading and writing the encoded bytes is the caller's job.
package wireformat

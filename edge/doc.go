// Package edge implements EdgeFinder: it links peaks at one station to
// peaks at its immediate downstream neighbour.
//
// For an upstream peak p_u at station u with tolerance (alpha, beta), every
// downstream peak p_v at station v whose date falls in
// [date(p_u)-alpha, date(p_u)+beta] becomes a Link p_u -> p_v carrying the
// slope (level(p_v)-level(p_u)) / (rkm(u)-rkm(v)). A single p_u may link to
// several p_v, and links are never merged or deduplicated: that combinatorial
// branching is resolved later, by wave extraction's shortest-path rule.
package edge

package graph

// Shop is a node of the road network.
//
// Links holds arena indices of the neighbors in insertion order. The same
// index may appear more than once (repeated roads) and a shop may list
// itself (self-loop roads add two entries).
type Shop struct {
	Index uint32
	ID    uint64
	Links []uint32
}

// Degree is the number of neighbor entries, counting multiplicity.
func (s *Shop) Degree() int {
	return len(s.Links)
}

// Road is an undirected connection between two shop identifiers.
type Road struct {
	From uint64
	To   uint64
}

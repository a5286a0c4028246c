package graph

// Store defines shop network storage.
//
// A Store is built by one goroutine and is read-only afterwards, so
// implementations carry no locks.
type Store interface {
	// Shop operations.
	GetOrCreate(id uint64) *Shop
	Lookup(id uint64) (*Shop, bool)
	Shop(index uint32) *Shop
	ShopCount() int
	Shops() []*Shop // Insertion order.

	// Road operations.
	AddRoad(from, to uint64)
	Neighbors(s *Shop) []*Shop
	LinkCount() int
}

package graph

// CreateHook is called once for every shop the store instantiates.
type CreateHook func(s *Shop)

// StoreOption configures a MemoryStore.
type StoreOption func(*MemoryStore)

// WithCreateHook registers a callback for shop instantiation.
func WithCreateHook(h CreateHook) StoreOption {
	return func(s *MemoryStore) {
		s.onCreate = h
	}
}

// MemoryStore is an arena of shops indexed by insertion order.
type MemoryStore struct {
	shops    []*Shop
	idMap    map[uint64]uint32 // Shop ID -> Index
	links    int
	onCreate CreateHook
}

func NewMemoryStore(opts ...StoreOption) *MemoryStore {
	s := &MemoryStore{
		shops: make([]*Shop, 0, 64),
		idMap: make(map[uint64]uint32),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Build returns a store holding the given roads, added in order.
func Build(roads []Road, opts ...StoreOption) *MemoryStore {
	s := NewMemoryStore(opts...)
	for _, r := range roads {
		s.AddRoad(r.From, r.To)
	}
	return s
}

func (s *MemoryStore) GetOrCreate(id uint64) *Shop {
	if idx, ok := s.idMap[id]; ok {
		return s.shops[idx]
	}

	shop := &Shop{
		Index: uint32(len(s.shops)),
		ID:    id,
	}
	s.shops = append(s.shops, shop)
	s.idMap[id] = shop.Index

	if s.onCreate != nil {
		s.onCreate(shop)
	}
	return shop
}

func (s *MemoryStore) Lookup(id uint64) (*Shop, bool) {
	idx, ok := s.idMap[id]
	if !ok {
		return nil, false
	}
	return s.shops[idx], true
}

func (s *MemoryStore) Shop(index uint32) *Shop {
	if int(index) < len(s.shops) {
		return s.shops[index]
	}
	return nil
}

func (s *MemoryStore) ShopCount() int {
	return len(s.shops)
}

func (s *MemoryStore) Shops() []*Shop {
	// Return copy.
	result := make([]*Shop, len(s.shops))
	copy(result, s.shops)
	return result
}

// AddRoad links both endpoints, creating them on first reference.
// Repeated roads and self-loops are recorded as given.
func (s *MemoryStore) AddRoad(from, to uint64) {
	u := s.GetOrCreate(from)
	v := s.GetOrCreate(to)

	u.Links = append(u.Links, v.Index)
	v.Links = append(v.Links, u.Index)
	s.links += 2
}

func (s *MemoryStore) Neighbors(shop *Shop) []*Shop {
	res := make([]*Shop, 0, len(shop.Links))
	for _, idx := range shop.Links {
		res = append(res, s.shops[idx])
	}
	return res
}

// LinkCount is the sum of all neighbor sequence lengths.
func (s *MemoryStore) LinkCount() int {
	return s.links
}

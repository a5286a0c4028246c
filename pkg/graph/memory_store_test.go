package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreate(t *testing.T) {
	s := NewMemoryStore()

	a := s.GetOrCreate(7)
	require.NotNil(t, a)
	assert.Equal(t, uint64(7), a.ID)
	assert.Empty(t, a.Links)

	// Same identity on second call.
	assert.Same(t, a, s.GetOrCreate(7))
	assert.Equal(t, 1, s.ShopCount())
}

func TestLookup(t *testing.T) {
	s := Build([]Road{{1, 2}})

	shop, ok := s.Lookup(2)
	require.True(t, ok)
	assert.Equal(t, uint64(2), shop.ID)

	_, ok = s.Lookup(3)
	assert.False(t, ok)
	assert.Equal(t, 2, s.ShopCount(), "lookup must not create shops")
}

func TestAddRoadSymmetric(t *testing.T) {
	s := NewMemoryStore()
	s.AddRoad(1, 2)
	s.AddRoad(1, 3)

	one, _ := s.Lookup(1)
	two, _ := s.Lookup(2)
	three, _ := s.Lookup(3)

	assert.Equal(t, []*Shop{two, three}, s.Neighbors(one))
	assert.Equal(t, []*Shop{one}, s.Neighbors(two))
	assert.Equal(t, []*Shop{one}, s.Neighbors(three))
	assert.Equal(t, 4, s.LinkCount())
}

func TestAddRoadDuplicates(t *testing.T) {
	s := Build([]Road{{1, 2}, {1, 2}, {2, 1}})

	one, _ := s.Lookup(1)
	two, _ := s.Lookup(2)
	assert.Equal(t, 3, one.Degree())
	assert.Equal(t, 3, two.Degree())
	assert.Equal(t, 6, s.LinkCount())
}

func TestAddRoadSelfLoop(t *testing.T) {
	s := NewMemoryStore()
	s.AddRoad(4, 4)

	require.Equal(t, 1, s.ShopCount(), "self-loop must not create a second shop")
	four, _ := s.Lookup(4)
	assert.Equal(t, 2, four.Degree())
	assert.Equal(t, []uint32{four.Index, four.Index}, four.Links)
	assert.Equal(t, 2, s.LinkCount())
}

func TestDegreeMatchesLinks(t *testing.T) {
	roads := []Road{{1, 2}, {2, 3}, {3, 3}, {1, 2}, {5, 1}}
	s := Build(roads)

	want := map[uint64]int{1: 3, 2: 3, 3: 3, 5: 1}
	for id, d := range want {
		shop, ok := s.Lookup(id)
		require.True(t, ok)
		assert.Equal(t, d, shop.Degree(), "shop %d", id)
	}
	assert.Equal(t, 2*len(roads), s.LinkCount())
}

func TestCreateHook(t *testing.T) {
	var created []uint64
	s := NewMemoryStore(WithCreateHook(func(shop *Shop) {
		created = append(created, shop.ID)
	}))

	s.AddRoad(3, 1)
	s.AddRoad(1, 3)
	s.AddRoad(9, 9)

	assert.Equal(t, []uint64{3, 1, 9}, created)
}

func TestShopsInsertionOrder(t *testing.T) {
	s := Build([]Road{{10, 2}, {5, 10}})

	var ids []uint64
	for _, shop := range s.Shops() {
		ids = append(ids, shop.ID)
	}
	assert.Equal(t, []uint64{10, 2, 5}, ids)
	assert.Nil(t, s.Shop(99))
}

package graph_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/DrSkyle/shopnet/pkg/graph"
)

// ReductionPropertiesSuite checks the reduction invariants over random networks.
type ReductionPropertiesSuite struct {
	suite.Suite
	networks []*graph.MemoryStore
}

func (s *ReductionPropertiesSuite) SetupSuite() {
	r := rand.New(rand.NewSource(7))
	for n := 0; n < 200; n++ {
		shops := r.Intn(20) + 2
		roads := r.Intn(40) + 1
		store := graph.NewMemoryStore()
		for i := 0; i < roads; i++ {
			store.AddRoad(uint64(r.Intn(shops)+1), uint64(r.Intn(shops)+1))
		}
		s.networks = append(s.networks, store)
	}
}

// TestDegreeSumsToLinks verifies every road adds two neighbor entries.
func (s *ReductionPropertiesSuite) TestDegreeSumsToLinks() {
	for _, store := range s.networks {
		sum := 0
		for _, shop := range store.Shops() {
			sum += shop.Degree()
		}
		require.Equal(s.T(), store.LinkCount(), sum)
	}
}

// TestCoreNeverEmpty verifies a non-empty network always has a hub.
func (s *ReductionPropertiesSuite) TestCoreNeverEmpty() {
	for _, store := range s.networks {
		a := graph.Analyze(store, nil)
		require.NotEmpty(s.T(), a.Core)
		require.NotEmpty(s.T(), a.Winners)
		for _, shop := range a.Core {
			require.Equal(s.T(), a.Threshold, shop.Degree())
		}
	}
}

// TestResultNeverOne verifies a lone winner is reported as 0.
func (s *ReductionPropertiesSuite) TestResultNeverOne() {
	for _, store := range s.networks {
		a := graph.Analyze(store, nil)
		require.NotEqual(s.T(), 1, a.Result)
		if len(a.Winners) >= 2 {
			require.Equal(s.T(), len(a.Winners), a.Result)
		} else {
			require.Zero(s.T(), a.Result)
		}
	}
}

// TestIdempotent verifies repeated reductions agree and leave the store intact.
func (s *ReductionPropertiesSuite) TestIdempotent() {
	for _, store := range s.networks {
		links := store.LinkCount()
		first := graph.Reduce(store)
		require.Equal(s.T(), first, graph.Reduce(store))
		require.Equal(s.T(), links, store.LinkCount())
	}
}

func TestReductionProperties(t *testing.T) {
	suite.Run(t, new(ReductionPropertiesSuite))
}

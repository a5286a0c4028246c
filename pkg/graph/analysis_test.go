package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(shops []*Shop) []uint64 {
	var out []uint64
	for _, s := range shops {
		out = append(out, s.ID)
	}
	return out
}

func TestReduce(t *testing.T) {
	tests := []struct {
		name  string
		roads []Road
		want  int
	}{
		{
			name:  "single hub",
			roads: []Road{{1, 2}, {1, 3}, {1, 4}, {2, 3}},
			want:  0,
		},
		{
			name:  "two tied hubs",
			roads: []Road{{1, 2}, {1, 3}, {1, 4}, {2, 5}, {2, 6}},
			want:  2,
		},
		{
			name:  "minimum network",
			roads: []Road{{1, 2}},
			want:  2,
		},
		{
			name:  "triangle",
			roads: []Road{{1, 2}, {2, 3}, {3, 1}},
			want:  3,
		},
		{
			name:  "unique maximum degree",
			roads: []Road{{1, 2}, {1, 3}, {2, 4}, {2, 5}, {4, 6}},
			want:  0,
		},
		{
			name:  "self-loop hub",
			roads: []Road{{1, 1}, {2, 3}},
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Reduce(Build(tt.roads)))
		})
	}
}

func TestAnalyzeSingleHub(t *testing.T) {
	s := Build([]Road{{1, 2}, {1, 3}, {1, 4}, {2, 3}})
	a := Analyze(s, nil)

	assert.Equal(t, 3, a.Threshold)
	assert.Equal(t, []uint64{1}, ids(a.Core))

	one, _ := s.Lookup(1)
	impact, ok := a.Impact(one)
	require.True(t, ok)
	assert.Equal(t, 5, impact)
	assert.Equal(t, []uint64{1}, ids(a.Winners))
	assert.Equal(t, 0, a.Result)
}

func TestAnalyzeTiedHubs(t *testing.T) {
	s := Build([]Road{{1, 2}, {1, 3}, {1, 4}, {2, 5}, {2, 6}})
	a := Analyze(s, nil)

	assert.Equal(t, 3, a.Threshold)
	assert.Equal(t, []uint64{1, 2}, ids(a.Core))
	assert.Equal(t, 2, a.RequiredImpact)
	assert.Equal(t, []uint64{1, 2}, ids(a.Winners))
	assert.Equal(t, 2, a.Result)

	three, _ := s.Lookup(3)
	assert.False(t, a.InCore(three))
	assert.False(t, a.IsWinner(three))
}

func TestAnalyzeZeroImpact(t *testing.T) {
	s := Build([]Road{{1, 2}})
	a := Analyze(s, nil)

	assert.Equal(t, 1, a.Threshold)
	assert.Len(t, a.Core, 2)
	assert.Equal(t, 0, a.RequiredImpact)
	for _, shop := range a.Core {
		impact, _ := a.Impact(shop)
		assert.Zero(t, impact)
	}
	assert.Equal(t, 2, a.Result)
}

func TestAnalyzeSelfLoopIsNotExternal(t *testing.T) {
	// 1 has degree 4 (two self entries plus 2 and 3).
	s := Build([]Road{{1, 1}, {1, 2}, {1, 3}})
	a := Analyze(s, nil)

	assert.Equal(t, 4, a.Threshold)
	require.Equal(t, []uint64{1}, ids(a.Core))
	impact, _ := a.Impact(a.Core[0])
	assert.Equal(t, 2, impact)
}

func TestAnalyzeCountsMultiplicity(t *testing.T) {
	// The repeated road 1-2 makes 2 contribute twice to the impact of 1.
	s := Build([]Road{{1, 2}, {1, 2}, {1, 3}, {4, 5}, {4, 6}, {4, 7}})
	a := Analyze(s, nil)

	assert.Equal(t, 3, a.Threshold)
	require.Equal(t, []uint64{1, 4}, ids(a.Core))

	one, _ := s.Lookup(1)
	four, _ := s.Lookup(4)
	i1, _ := a.Impact(one)
	i4, _ := a.Impact(four)
	assert.Equal(t, 5, i1)
	assert.Equal(t, 3, i4)
	assert.Equal(t, []uint64{1}, ids(a.Winners))
	assert.Equal(t, 0, a.Result)
}

func TestAnalyzeEmptyStore(t *testing.T) {
	a := Analyze(NewMemoryStore(), nil)
	assert.Zero(t, a.Result)
	assert.Empty(t, a.Core)
}

func TestReduceIdempotent(t *testing.T) {
	s := Build([]Road{{1, 2}, {1, 3}, {1, 4}, {2, 5}, {2, 6}, {3, 3}})
	first := Analyze(s, nil)
	second := Analyze(s, nil)

	assert.Equal(t, first, second)
	assert.Equal(t, 12, s.LinkCount())
}

func FuzzReduce(f *testing.F) {
	f.Add([]byte{1, 2, 1, 3, 1, 4, 2, 3})
	f.Add([]byte{1, 1})
	f.Add([]byte{0x10, 0x20, 0x30, 0x10})

	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) < 2 {
			return
		}

		s := NewMemoryStore()
		roads := 0
		for i := 0; i+1 < len(data) && roads < 1000; i += 2 {
			s.AddRoad(uint64(data[i])+1, uint64(data[i+1])+1)
			roads++
		}

		a := Analyze(s, nil)

		if len(a.Core) == 0 {
			t.Fatal("core must not be empty")
		}
		if a.Result == 1 || a.Result < 0 {
			t.Fatalf("unexpected result %d", a.Result)
		}
		if a.Result != 0 && a.Result != len(a.Winners) {
			t.Fatalf("result %d != winners %d", a.Result, len(a.Winners))
		}
		if s.LinkCount() != 2*roads {
			t.Fatalf("links %d != 2*%d", s.LinkCount(), roads)
		}
		if Reduce(s) != a.Result {
			t.Fatal("reduction is not idempotent")
		}
	})
}

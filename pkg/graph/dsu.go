package graph

// UnionFind is a disjoint set over arena indices.
// Supports amortized O(1) checks.
type UnionFind struct {
	parent []int
	rank   []int
}

// NewUnionFind initializes DSU.
func NewUnionFind(n int) *UnionFind {
	parent := make([]int, n)
	rank := make([]int, n)
	for i := 0; i < n; i++ {
		parent[i] = i
	}
	return &UnionFind{parent: parent, rank: rank}
}

// Find returns set representative.
func (uf *UnionFind) Find(i int) int {
	if i < 0 || i >= len(uf.parent) {
		return -1
	}
	if uf.parent[i] != i {
		uf.parent[i] = uf.Find(uf.parent[i])
	}
	return uf.parent[i]
}

// Union merges sets.
func (uf *UnionFind) Union(i, j int) {
	rootI := uf.Find(i)
	rootJ := uf.Find(j)

	if rootI == -1 || rootJ == -1 || rootI == rootJ {
		return
	}

	// Union by rank
	if uf.rank[rootI] < uf.rank[rootJ] {
		uf.parent[rootI] = rootJ
	} else if uf.rank[rootI] > uf.rank[rootJ] {
		uf.parent[rootJ] = rootI
	} else {
		uf.parent[rootJ] = rootI
		uf.rank[rootI]++
	}
}

// Connected checks connectivity.
func (uf *UnionFind) Connected(i, j int) bool {
	return uf.Find(i) == uf.Find(j)
}

// Components counts the connected parts of the road network.
func Components(s Store) int {
	shops := s.Shops()
	uf := NewUnionFind(len(shops))
	for _, shop := range shops {
		for _, idx := range shop.Links {
			uf.Union(int(shop.Index), int(idx))
		}
	}

	roots := make(map[int]struct{})
	for _, shop := range shops {
		roots[uf.Find(int(shop.Index))] = struct{}{}
	}
	return len(roots)
}

package graph

import (
	"bufio"
	"fmt"
	"io"
	"sort"
)

// Dump writes one "<id> is connected with <id>" line per neighbor entry.
// Shops are listed by ascending ID, neighbors in insertion order.
func Dump(w io.Writer, s Store) error {
	shops := s.Shops()
	sort.Slice(shops, func(i, j int) bool {
		return shops[i].ID < shops[j].ID
	})

	bw := bufio.NewWriter(w)
	for _, shop := range shops {
		for _, remote := range s.Neighbors(shop) {
			if _, err := fmt.Fprintf(bw, "%d is connected with %d\n", shop.ID, remote.ID); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

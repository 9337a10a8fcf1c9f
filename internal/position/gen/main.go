// Command gen emits quadtables_gen.go, the two static tables backing
// the position encoding: the dense enumeration of the 1423 legal
// placements of four same-size pieces, and its inverse over the full
// 10^4 tuple space.
//
// A placement is legal when the on-board locations of the four pieces
// are pairwise distinct; any number of pieces may share Out. Quads are
// enumerated with the inactive pair as the outer loop, the active pair
// as the inner loop, and each pair running through (Out, Out) followed
// by the 45 descending-ordered location pairs. This order makes the
// quad index increase with the flattened tuple index, which both tables
// rely on.
package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
)

const locationCount = 10

var locationNames = [locationCount]string{
	"Out", "NW", "N", "NE", "W", "Center", "E", "SW", "S", "SE",
}

type pair [2]int

// eachPair lists the canonical location pairs: (Out, Out) first, then
// every (hi, lo) with hi > lo.
func eachPair() []pair {
	pairs := []pair{{0, 0}}
	for lo := 0; lo < locationCount-1; lo++ {
		for hi := lo + 1; hi < locationCount; hi++ {
			pairs = append(pairs, pair{hi, lo})
		}
	}
	return pairs
}

// boardBits returns the occupancy bitmap of a pair over the nine board
// cells; Out does not occupy anything.
func boardBits(p pair) uint {
	return (1<<p[0] | 1<<p[1]) & 0x3fe
}

func main() {
	pairs := eachPair()

	// Enumerate legal quads: the two occupancy bitmaps must be disjoint,
	// and only the fully-off-board placement may have both empty.
	var quads [][4]int
	for _, inactive := range pairs {
		ibits := boardBits(inactive)
		for _, active := range pairs {
			abits := boardBits(active)
			if (abits == 0 && ibits == 0) || (abits != ibits && abits|ibits == abits^ibits) {
				quads = append(quads, [4]int{active[0], active[1], inactive[0], inactive[1]})
			}
		}
	}

	// Build the inverse table over all 10^4 tuples. Non-canonical
	// tuples (either pair ascending) share the index of their canonical
	// form; overlapping placements stay invalid.
	const invalid = -1
	inverse := make([]int, 10000)
	canonical := make(map[int]int)
	seq := 0
	for i1 := 0; i1 < locationCount; i1++ {
		for i0 := 0; i0 < locationCount; i0++ {
			for a1 := 0; a1 < locationCount; a1++ {
				for a0 := 0; a0 < locationCount; a0++ {
					idx := a0 + a1*10 + i0*100 + i1*1000
					if !legal(a0, a1, i0, i1) {
						inverse[idx] = invalid
						continue
					}
					c0, c1 := ordered(a0, a1)
					c2, c3 := ordered(i0, i1)
					cidx := c0 + c1*10 + c2*100 + c3*1000
					if idx == cidx {
						canonical[idx] = seq
						inverse[idx] = seq
						seq++
					} else {
						inverse[idx] = canonical[cidx]
					}
				}
			}
		}
	}

	if len(quads) != seq {
		log.Fatalf("table mismatch: %d quads, %d canonical tuples", len(quads), seq)
	}
	for i, q := range quads {
		if inverse[q[0]+q[1]*10+q[2]*100+q[3]*1000] != i {
			log.Fatalf("quad %d does not round-trip through the inverse table", i)
		}
	}

	var buf bytes.Buffer
	fmt.Fprintln(&buf, "// Code generated by gen/main.go. DO NOT EDIT.")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "package position")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, `import "github.com/discochess/gobbler/internal/game"`)
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "// invalidQuad marks a four-location tuple with no legal placement.")
	fmt.Fprintln(&buf, "const invalidQuad = 0xffff")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "// quadLocations maps a quad index to the locations of the four")
	fmt.Fprintln(&buf, "// same-size pieces: active pair first, inactive pair second, each in")
	fmt.Fprintln(&buf, "// non-ascending order.")
	fmt.Fprintln(&buf, "var quadLocations = [QuadCombinations][4]game.Location{")
	for i, q := range quads {
		fmt.Fprintf(&buf, "\t{game.%s, game.%s, game.%s, game.%s}, // %d\n",
			locationNames[q[0]], locationNames[q[1]], locationNames[q[2]], locationNames[q[3]], i)
	}
	fmt.Fprintln(&buf, "}")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "// quadIndex is the inverse of quadLocations over the full 10^4 tuple")
	fmt.Fprintln(&buf, "// space, flattened as a0 + 10*a1 + 100*i0 + 1000*i1.")
	fmt.Fprintln(&buf, "var quadIndex = [10000]uint16{")
	for row := 0; row < 1000; row++ {
		fmt.Fprint(&buf, "\t")
		for col := 0; col < 10; col++ {
			if col > 0 {
				fmt.Fprint(&buf, " ")
			}
			if v := inverse[row*10+col]; v == invalid {
				fmt.Fprint(&buf, "invalidQuad,")
			} else {
				fmt.Fprintf(&buf, "%d,", v)
			}
		}
		fmt.Fprintln(&buf)
	}
	fmt.Fprintln(&buf, "}")

	if err := os.WriteFile("quadtables_gen.go", buf.Bytes(), 0644); err != nil {
		log.Fatalf("writing quadtables_gen.go: %v", err)
	}
}

func legal(a0, a1, i0, i1 int) bool {
	if a0 != 0 && (a0 == a1 || a0 == i0 || a0 == i1) {
		return false
	}
	if a1 != 0 && (a1 == i0 || a1 == i1) {
		return false
	}
	if i0 != 0 && i0 == i1 {
		return false
	}
	return true
}

func ordered(hi, lo int) (int, int) {
	if hi >= lo {
		return hi, lo
	}
	return lo, hi
}

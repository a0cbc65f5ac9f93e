package keccakf

import (
	"encoding/binary"
	"math/bits"
)

// keccakF1600Generic applies the final rounds of Keccak-f[1600] to the state
// using scalar 64-bit lanes. rounds must be 24 for Keccak-f or 12 for
// Keccak-p[1600, 12].
func keccakF1600Generic(a *[200]byte, rounds int) {
	var st [25]uint64
	for i := range st {
		st[i] = binary.LittleEndian.Uint64(a[8*i:])
	}

	var bc [5]uint64
	for r := 24 - rounds; r < 24; r++ {
		// θ: XOR each lane with the parities of the two adjacent columns.
		for x := range 5 {
			bc[x] = st[x] ^ st[x+5] ^ st[x+10] ^ st[x+15] ^ st[x+20]
		}
		for x := range 5 {
			d := bc[(x+4)%5] ^ bits.RotateLeft64(bc[(x+1)%5], 1)
			for y := 0; y < 25; y += 5 {
				st[y+x] ^= d
			}
		}

		// ρ+π: rotate each lane and move it to its π destination. A single
		// carried lane walks the 24-step cycle; lane 0 is a fixed point.
		t := st[1]
		for i := range 24 {
			j := piln[i]
			t, st[j] = st[j], bits.RotateLeft64(t, rotc[i])
		}

		// χ: the rows must be buffered, since every output lane reads two
		// other lanes of the same row.
		for y := 0; y < 25; y += 5 {
			for x := range 5 {
				bc[x] = st[y+x]
			}
			for x := range 5 {
				st[y+x] = bc[x] ^ (^bc[(x+1)%5] & bc[(x+2)%5])
			}
		}

		// ι
		st[0] ^= rc[r]
	}

	for i := range st {
		binary.LittleEndian.PutUint64(a[8*i:], st[i])
	}
}

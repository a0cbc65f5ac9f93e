// Package keccakf implements the Keccak-f[1600] permutation and its
// reduced-round Keccak-p[1600, 12] variant.
//
// The state is the canonical 200-byte sponge state: 25 64-bit lanes in
// little-endian byte order, lane i holding position (x, y) = (i mod 5, i / 5)
// of the 5×5 matrix. Two backends with identical semantics are provided: a
// scalar implementation using native 64-bit lanes, and a compact
// implementation that splits each lane into four 16-bit limbs for targets
// where wide integer arithmetic is slow. The keccak32 build tag selects the
// compact backend; both are always compiled and cross-checked in tests.
package keccakf

// F1600 applies the Keccak-f[1600] permutation to the state (24 rounds).
func F1600(a *[200]byte) {
	f1600(a, 24)
}

// P1600 applies the Keccak-p[1600, 12] permutation to the state: the final
// 12 rounds of Keccak-f[1600], as used by TurboSHAKE.
func P1600(a *[200]byte) {
	f1600(a, 12)
}

// rc is the round constant XORed into lane 0 by ι at the end of round r.
var rc = [24]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808a, 0x8000000080008000,
	0x000000000000808b, 0x0000000080000001, 0x8000000080008081, 0x8000000000008009,
	0x000000000000008a, 0x0000000000000088, 0x0000000080008009, 0x000000008000000a,
	0x000000008000808b, 0x800000000000008b, 0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080, 0x000000000000800a, 0x800000008000000a,
	0x8000000080008081, 0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// rotc is the ρ rotation offset for step i of the combined ρ+π traversal.
var rotc = [24]int{
	1, 3, 6, 10, 15, 21, 28, 36, 45, 55, 2, 14,
	27, 41, 56, 8, 25, 43, 62, 18, 39, 61, 20, 44,
}

// piln is the π destination lane (linear index) for step i of the traversal.
// Lane 0 is a fixed point and never appears.
var piln = [24]int{
	10, 7, 11, 17, 18, 3, 5, 16, 8, 21, 24, 4,
	15, 23, 19, 13, 12, 2, 20, 14, 22, 9, 6, 1,
}

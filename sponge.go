package keccak

import (
	"github.com/codahale/keccak/internal/mem"
)

const (
	// stateLen is the width of the Keccak-f[1600] permutation in bytes.
	stateLen = 200

	// domainKeccak is the original Keccak padding byte, used by the
	// fixed-length hashes. FIPS 202 SHA-3 uses 0x06 instead; the two are
	// deliberately incompatible.
	domainKeccak = 0x01

	// domainShake is the FIPS 202 SHAKE padding byte.
	domainShake = 0x1f
)

// rateFor returns the sponge rate in bytes for a security strength in bits.
// The capacity is twice the strength, leaving 200 - strength/4 bytes of rate.
func rateFor(strength int) int {
	return stateLen - strength/4
}

// sponge absorbs msg into a fresh all-zero state at the given rate, applies
// pad10*1 with the domain separation byte ds, and squeezes n bytes of output.
func sponge(msg []byte, rate int, ds byte, n int, permute func(*[stateLen]byte)) []byte {
	var s [stateLen]byte

	// Absorb full rate blocks.
	for len(msg) >= rate {
		mem.XOR(s[:rate], s[:rate], msg[:rate])
		permute(&s)
		msg = msg[rate:]
	}

	// Absorb the remaining bytes + padding. When the tail fills all but one
	// byte of the block, the domain byte and the final pad bit share a byte;
	// XORing both yields the merged ds | 0x80 value.
	mem.XOR(s[:len(msg)], s[:len(msg)], msg)
	s[len(msg)] ^= ds
	s[rate-1] ^= 0x80
	permute(&s)

	// Squeeze output, permuting between rate-sized blocks.
	out := make([]byte, n)
	buf := out
	for len(buf) > 0 {
		c := copy(buf, s[:rate])
		buf = buf[c:]
		if len(buf) > 0 {
			permute(&s)
		}
	}

	return out
}

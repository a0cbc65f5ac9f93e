package keccak

import (
	"errors"

	"github.com/codahale/keccak/internal/keccakf"
)

// TurboSHAKE rates per RFC 9861: 200 - 2 * (security level / 8).
const (
	rateTurbo128 = 168
	rateTurbo256 = 136
)

// ErrDomainByte is returned by the TurboSHAKE functions for a domain
// separation byte outside [0x01, 0x7f].
var ErrDomainByte = errors.New("keccak: domain separation byte out of range")

// TurboShake128 computes n bits of TurboSHAKE128 output for data, using the
// 12-round Keccak-p[1600, 12] permutation. ds is the domain separation byte
// and must be in [0x01, 0x7f]; n must be a positive multiple of 8.
func TurboShake128(data []byte, ds byte, n int) ([]byte, error) {
	return turboShake(data, rateTurbo128, ds, n)
}

// TurboShake256 computes n bits of TurboSHAKE256 output for data, using the
// 12-round Keccak-p[1600, 12] permutation. ds is the domain separation byte
// and must be in [0x01, 0x7f]; n must be a positive multiple of 8.
func TurboShake256(data []byte, ds byte, n int) ([]byte, error) {
	return turboShake(data, rateTurbo256, ds, n)
}

func turboShake(data []byte, rate int, ds byte, n int) ([]byte, error) {
	if ds == 0 || ds > 0x7f {
		return nil, ErrDomainByte
	}
	if n <= 0 || n%8 != 0 {
		return nil, ErrOutputLength
	}
	return sponge(data, rate, ds, n/8, keccakf.P1600), nil
}

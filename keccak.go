// Package keccak implements the Keccak-f[1600] sponge construction: the
// fixed-length Keccak-224/256/384/512 hashes and the SHAKE128/SHAKE256 and
// TurboSHAKE128/TurboSHAKE256 extendable-output functions.
//
// The fixed-length hashes use the original Keccak padding (domain byte 0x01),
// not the FIPS 202 SHA-3 padding (0x06). Their outputs match pre-standard
// Keccak deployments such as Ethereum's keccak256 and will NOT match
// published SHA-3 test vectors. The SHAKE functions use the standard 0x1f
// domain byte and are identical to FIPS 202 SHAKE.
//
// All functions are single-shot and pure: one input buffer in, one digest
// out, with no shared or retained state. They are safe for concurrent use.
package keccak

import (
	"encoding/hex"
	"errors"

	"github.com/codahale/keccak/internal/keccakf"
)

var (
	// ErrOutputSize is returned by Hash for an output size other than 224,
	// 256, 384, or 512 bits.
	ErrOutputSize = errors.New("keccak: unsupported output size")

	// ErrSecurityLevel is returned by Shake for a security level other than
	// 128 or 256 bits.
	ErrSecurityLevel = errors.New("keccak: unsupported security level")

	// ErrOutputLength is returned for an XOF output length that is not a
	// positive multiple of 8 bits.
	ErrOutputLength = errors.New("keccak: output length must be a positive multiple of 8 bits")
)

// Hash computes the Keccak digest of data. size is the digest length in bits
// and must be one of 224, 256, 384, or 512; the sponge capacity is twice the
// digest length.
func Hash(data []byte, size int) ([]byte, error) {
	switch size {
	case 224, 256, 384, 512:
	default:
		return nil, ErrOutputSize
	}
	return sponge(data, rateFor(size), domainKeccak, size/8, keccakf.F1600), nil
}

// HashHex computes the Keccak digest of data and returns it as a lowercase
// hexadecimal string of size/4 characters.
func HashHex(data []byte, size int) (string, error) {
	digest, err := Hash(data, size)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(digest), nil
}

// Shake computes n bits of SHAKE output for data. level is the security level
// in bits and must be 128 or 256; n must be a positive multiple of 8.
func Shake(data []byte, level, n int) ([]byte, error) {
	switch level {
	case 128, 256:
	default:
		return nil, ErrSecurityLevel
	}
	if n <= 0 || n%8 != 0 {
		return nil, ErrOutputLength
	}
	return sponge(data, rateFor(level), domainShake, n/8, keccakf.F1600), nil
}

// ShakeHex computes n bits of SHAKE output for data and returns it as a
// lowercase hexadecimal string of n/4 characters.
func ShakeHex(data []byte, level, n int) (string, error) {
	out, err := Shake(data, level, n)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(out), nil
}

// Sum224 computes the Keccak-224 digest of data.
func Sum224(data []byte) [28]byte {
	return [28]byte(sponge(data, rateFor(224), domainKeccak, 28, keccakf.F1600))
}

// Sum256 computes the Keccak-256 digest of data.
func Sum256(data []byte) [32]byte {
	return [32]byte(sponge(data, rateFor(256), domainKeccak, 32, keccakf.F1600))
}

// Sum384 computes the Keccak-384 digest of data.
func Sum384(data []byte) [48]byte {
	return [48]byte(sponge(data, rateFor(384), domainKeccak, 48, keccakf.F1600))
}

// Sum512 computes the Keccak-512 digest of data.
func Sum512(data []byte) [64]byte {
	return [64]byte(sponge(data, rateFor(512), domainKeccak, 64, keccakf.F1600))
}

//go:build !keccak32

package keccakf

func f1600(a *[200]byte, rounds int) {
	keccakF1600Generic(a, rounds)
}

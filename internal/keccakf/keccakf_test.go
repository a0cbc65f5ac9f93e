package keccakf //nolint:testpackage // testing internals

import (
	"bytes"
	"math/rand"
	"testing"
	"time"
)

func TestCompliance(t *testing.T) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	var state1, state2 [200]byte

	for i := range 100 {
		rng.Read(state1[:])
		copy(state2[:], state1[:])

		keccakF1600Generic(&state1, 24)
		keccakF1600Compact(&state2, 24)

		if !bytes.Equal(state1[:], state2[:]) {
			t.Errorf("iteration %d: compact (24 rounds) mismatch generic", i)
		}
	}
}

func TestCompliance12(t *testing.T) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	var state1, state2 [200]byte

	for i := range 100 {
		rng.Read(state1[:])
		copy(state2[:], state1[:])

		keccakF1600Generic(&state1, 12)
		keccakF1600Compact(&state2, 12)

		if !bytes.Equal(state1[:], state2[:]) {
			t.Errorf("iteration %d: compact (12 rounds) mismatch generic", i)
		}
	}
}

func TestP1600IsFinalRounds(t *testing.T) {
	// Permuting an arbitrary state with P1600 must match running the last 12
	// rounds of the generic path, not the first 12.
	var state1, state2 [200]byte
	for i := range state1 {
		state1[i] = byte(i * 13)
	}
	copy(state2[:], state1[:])

	P1600(&state1)
	keccakF1600Generic(&state2, 12)

	if !bytes.Equal(state1[:], state2[:]) {
		t.Error("P1600 mismatch with 12-round generic permutation")
	}
}

func TestF1600ChangesState(t *testing.T) {
	var state, zero [200]byte
	F1600(&state)
	if bytes.Equal(state[:], zero[:]) {
		t.Error("F1600 left the all-zero state unchanged")
	}
}

func BenchmarkF1600(b *testing.B) {
	var state [200]byte
	b.SetBytes(int64(len(state)))
	b.ReportAllocs()
	for b.Loop() {
		keccakF1600Generic(&state, 24)
	}
}

func BenchmarkF1600Compact(b *testing.B) {
	var state [200]byte
	b.SetBytes(int64(len(state)))
	b.ReportAllocs()
	for b.Loop() {
		keccakF1600Compact(&state, 24)
	}
}

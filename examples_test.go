package keccak_test

import (
	"fmt"

	"github.com/codahale/keccak"
)

func ExampleHashHex() {
	digest, err := keccak.HashHex([]byte("abc"), 256)
	if err != nil {
		panic(err)
	}

	fmt.Println(digest)
	// Output: 4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45
}

func ExampleShakeHex() {
	// Squeeze 128 bits of SHAKE128 output for an empty input.
	out, err := keccak.ShakeHex(nil, 128, 128)
	if err != nil {
		panic(err)
	}

	fmt.Println(out)
	// Output: 7f9c2ba4e88f827d616045507605853e
}

func ExampleSum256() {
	fmt.Printf("%x\n", keccak.Sum256([]byte("hello")))
	// Output: 1c8aff950685c2ed4bc3174f3472287b56d9517b9c948127319a09a7a36deac8
}

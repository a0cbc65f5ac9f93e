package keccakf

// A lane16 is a 64-bit lane split into four 16-bit limbs, limb 0 holding
// bits 48..63 down to limb 3 holding bits 0..15.
type lane16 [4]uint16

// rotl16 rotates a limb-split lane left by n bits (0 <= n < 64) by combining
// a whole-limb rotation (n / 16) with an intra-limb shift (n mod 16) stitched
// across limb boundaries.
func rotl16(l lane16, n int) lane16 {
	k, s := n/16, n%16
	var r lane16
	for i := range 4 {
		r[i] = l[(i+k)%4]<<s | l[(i+k+1)%4]>>(16-s)
	}
	return r
}

// keccakF1600Compact applies the final rounds of Keccak-f[1600] to the state
// using four 16-bit limbs per lane. Bit-identical to keccakF1600Generic.
func keccakF1600Compact(a *[200]byte, rounds int) {
	var st [25]lane16
	for i := range st {
		b := a[8*i : 8*i+8]
		st[i] = lane16{
			uint16(b[6]) | uint16(b[7])<<8,
			uint16(b[4]) | uint16(b[5])<<8,
			uint16(b[2]) | uint16(b[3])<<8,
			uint16(b[0]) | uint16(b[1])<<8,
		}
	}

	var bc [5]lane16
	for r := 24 - rounds; r < 24; r++ {
		// θ
		for x := range 5 {
			for m := range 4 {
				bc[x][m] = st[x][m] ^ st[x+5][m] ^ st[x+10][m] ^ st[x+15][m] ^ st[x+20][m]
			}
		}
		for x := range 5 {
			d := rotl16(bc[(x+1)%5], 1)
			for m := range 4 {
				d[m] ^= bc[(x+4)%5][m]
			}
			for y := 0; y < 25; y += 5 {
				for m := range 4 {
					st[y+x][m] ^= d[m]
				}
			}
		}

		// ρ+π
		t := st[1]
		for i := range 24 {
			j := piln[i]
			t, st[j] = st[j], rotl16(t, rotc[i])
		}

		// χ
		for y := 0; y < 25; y += 5 {
			for x := range 5 {
				bc[x] = st[y+x]
			}
			for x := range 5 {
				for m := range 4 {
					st[y+x][m] = bc[x][m] ^ (^bc[(x+1)%5][m] & bc[(x+2)%5][m])
				}
			}
		}

		// ι
		k := rc[r]
		st[0][0] ^= uint16(k >> 48)
		st[0][1] ^= uint16(k >> 32)
		st[0][2] ^= uint16(k >> 16)
		st[0][3] ^= uint16(k)
	}

	for i := range st {
		b := a[8*i : 8*i+8]
		b[0], b[1] = byte(st[i][3]), byte(st[i][3]>>8)
		b[2], b[3] = byte(st[i][2]), byte(st[i][2]>>8)
		b[4], b[5] = byte(st[i][1]), byte(st[i][1]>>8)
		b[6], b[7] = byte(st[i][0]), byte(st[i][0]>>8)
	}
}

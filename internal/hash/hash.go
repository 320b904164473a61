package hash

// Sum computes a stable hash of content, seeded so the same string can
// yield independent identifiers for different roles. It is a seeded
// variant of the multiply-by-31 (djb2-style) string hash: a 32-bit
// signed accumulator with two's-complement wraparound, reduced to the
// Anki identifier range [0, 2^31-1).
//
// The recurrence and the final modulus must not change: exported
// packages carry identifiers produced by this exact function, and
// re-importing an updated export only matches existing study history
// if the identifiers reproduce bit for bit.
//
// Not a cryptographic hash. Collisions are possible and acceptable.
func Sum(content string, seed int32) int64 {
	acc := seed
	for _, r := range content {
		acc = acc*31 + int32(r)
	}

	// abs in int64 space so the minimum int32 value does not overflow
	v := int64(acc)
	if v < 0 {
		v = -v
	}
	return v % 0x7FFFFFFF
}

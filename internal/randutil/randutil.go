// Package randutil provides the deterministic PRNG and shuffle used by the
// daily practice selectors. The generator is mulberry32, chosen for exact
// cross-implementation reproducibility: the same seed must yield the same
// exercise set on every device and every reload of the same calendar day.
// It is not suitable for anything security-sensitive.
package randutil

import "unicode/utf16"

// SeedFromString maps an arbitrary string to a stable 32-bit seed using the
// classic hash*31+code rolling hash over UTF-16 code units, wrapped to signed
// 32-bit and made non-negative. Distinct purpose suffixes on the same date
// string produce distinct seeds, so "2025-01-15" and "2025-01-15-quiz-drills"
// draw independent streams.
func SeedFromString(s string) uint32 {
	var h int32
	for _, u := range utf16.Encode([]rune(s)) {
		h = h*31 + int32(u)
	}
	if h < 0 {
		h = -h
	}
	return uint32(h)
}

// New returns a mulberry32 generator producing floats in [0, 1).
// The same seed yields a bit-identical sequence on every call.
func New(seed uint32) func() float64 {
	state := seed
	return func() float64 {
		state += 0x6D2B79F5
		t := state
		t = (t ^ (t >> 15)) * (t | 1)
		t ^= t + (t^(t>>7))*(t|61)
		return float64(t^(t>>14)) / 4294967296.0
	}
}

// Shuffle returns a Fisher-Yates shuffled copy of items. The input slice is
// not modified. Exactly len(items)-1 draws are consumed from rng, so callers
// sharing one generator across several shuffles stay deterministic.
func Shuffle[T any](items []T, rng func() float64) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i >= 1; i-- {
		j := int(rng() * float64(i+1))
		out[i], out[j] = out[j], out[i]
	}
	return out
}

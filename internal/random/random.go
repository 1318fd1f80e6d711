// Package random provides helpers to generate random test data.
package random

import (
	"math/rand"

	"github.com/macladson/milhouse/pkg/util"
)

// Fill fills buf with random bytes.
func Fill(buf []byte) {
	_, _ = rand.Read(buf)
}

// Int returns a random integer in [minI, maxI).
func Int(minI, maxI int) int {
	return minI + rand.Intn(maxI-minI)
}

// Uint64 returns a random uint64.
func Uint64() uint64 {
	return rand.Uint64()
}

// Hash256 returns a random chunk.
func Hash256() util.Hash256 {
	var h util.Hash256
	Fill(h[:])
	return h
}

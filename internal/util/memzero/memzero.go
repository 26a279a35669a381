// Package memzero wipes secret material from memory on a best-effort basis.
package memzero

import (
	"crypto/subtle"
	"math/big"
	"runtime"
)

// Zero overwrites b with zeros in a constant-time friendly way.
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	zero := make([]byte, len(b))
	subtle.ConstantTimeCopy(1, b, zero)
	runtime.KeepAlive(b)
}

// Int clears the limbs backing x and sets it to zero.
func Int(x *big.Int) {
	if x == nil {
		return
	}
	words := x.Bits()
	for i := range words {
		words[i] = 0
	}
	x.SetInt64(0)
	runtime.KeepAlive(words)
}

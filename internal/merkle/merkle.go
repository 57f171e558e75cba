// Package merkle implements a binary Keccak-256 Merkle tree used to
// commit to both the input entry list and the output winner set of a
// raffle draw.
package merkle

import (
	"errors"

	"github.com/ethereum/go-ethereum/crypto"
)

// ErrEmptyLeafSet is returned when Root is asked to commit to zero
// leaves. This is an internal invariant failure: callers are expected
// to have validated a non-empty entry or winner list before reaching
// here.
var ErrEmptyLeafSet = errors.New("merkle: cannot compute root of empty leaf set")

// Root computes the Merkle root over leaves in the given order. Parent
// of (L, R) is Keccak256(L || R). At an odd-count level, the last node
// is promoted unchanged to the next level instead of being duplicated.
// A single-leaf tree's root is that leaf.
func Root(leaves [][32]byte) ([32]byte, error) {
	if len(leaves) == 0 {
		return [32]byte{}, ErrEmptyLeafSet
	}

	level := make([][32]byte, len(leaves))
	copy(level, leaves)

	for len(level) > 1 {
		next := make([][32]byte, 0, (len(level)+1)/2)
		for i := 0; i+1 < len(level); i += 2 {
			next = append(next, hashPair(level[i], level[i+1]))
		}
		if len(level)%2 == 1 {
			next = append(next, level[len(level)-1])
		}
		level = next
	}

	return level[0], nil
}

func hashPair(left, right [32]byte) [32]byte {
	var buf [64]byte
	copy(buf[0:32], left[:])
	copy(buf[32:64], right[:])

	digest := crypto.Keccak256(buf[:])
	var out [32]byte
	copy(out[:], digest)
	return out
}

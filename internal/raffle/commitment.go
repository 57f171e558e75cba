package raffle

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"plinko-raffle/internal/merkle"
)

// CommitmentRoot validates entries (I1-I5) and returns the Merkle root
// over per-entry leaves Keccak256(address || BE(start) || BE(end)), in
// input order. Unlike the round function's hash inputs (little-endian),
// these u64 fields are big-endian.
func CommitmentRoot(entries EntryList) ([32]byte, error) {
	if err := entries.Validate(); err != nil {
		return [32]byte{}, err
	}

	leaves := make([][32]byte, len(entries))
	for i, entry := range entries {
		leaves[i] = entryLeaf(entry)
	}
	return merkle.Root(leaves)
}

func entryLeaf(entry Entry) [32]byte {
	var buf [36]byte
	copy(buf[0:20], entry.Address[:])
	binary.BigEndian.PutUint64(buf[20:28], entry.Start)
	binary.BigEndian.PutUint64(buf[28:36], entry.End)

	digest := crypto.Keccak256(buf[:])
	var leaf [32]byte
	copy(leaf[:], digest)
	return leaf
}

// WinnersRoot runs Draw and returns the Merkle root over per-winner
// leaves Keccak256(address), in winner-insertion order, along with the
// winners themselves so callers don't need to re-run the draw.
func WinnersRoot(k uint64, seed Seed, entries EntryList) ([32]byte, []common.Address, error) {
	winners, err := Draw(k, seed, entries)
	if err != nil {
		return [32]byte{}, nil, err
	}

	leaves := make([][32]byte, len(winners))
	for i, addr := range winners {
		digest := crypto.Keccak256(addr[:])
		copy(leaves[i][:], digest)
	}

	root, err := merkle.Root(leaves)
	if err != nil {
		return [32]byte{}, nil, err
	}
	return root, winners, nil
}

// Package entrybuild constructs a validated raffle.EntryList from raw
// (address, balance) pairs: sort by address, assign each holder a
// contiguous weight segment, and clamp balances that don't fit a
// uint64 segment width instead of silently overflowing.
package entrybuild

import (
	"math/big"
	"sort"

	"github.com/ethereum/go-ethereum/common"

	"plinko-raffle/internal/raffle"
)

// Holder is one raw (address, balance) pair as read from a snapshot,
// e.g. an ERC-20 balance table or a state-trie dump.
type Holder struct {
	Address common.Address
	Balance *big.Int
}

var maxUint64 = new(big.Int).SetUint64(^uint64(0))

// Build sorts holders by address, drops zero-balance holders (they
// would contribute a zero-width, hence invalid, segment), and assigns
// each remaining holder a contiguous [start, end) weight segment equal
// to its balance. Balances above the uint64 range are clamped to
// ^uint64(0) rather than rejected, and a segment whose end would pass
// ^uint64(0) is cut off there — a balance that large (e.g. a large
// staking-contract pool) should still draw, just capped rather than
// wrapping around and corrupting every later segment's offset. Holders
// sorted after a segment that reaches ^uint64(0) get no room and are
// dropped like zero-balance holders.
//
// The holder slice is not mutated; Build sorts a copy.
func Build(holders []Holder) (raffle.EntryList, error) {
	sorted := make([]Holder, len(holders))
	copy(sorted, holders)
	sort.Slice(sorted, func(i, j int) bool {
		return lessAddress(sorted[i].Address, sorted[j].Address)
	})

	entries := make(raffle.EntryList, 0, len(sorted))
	var cursor uint64
	for _, h := range sorted {
		weight := clampToUint64(h.Balance)
		if room := ^uint64(0) - cursor; weight > room {
			weight = room
		}
		if weight == 0 {
			continue
		}
		start := cursor
		end := start + weight
		entries = append(entries, raffle.Entry{
			Address: h.Address,
			Start:   start,
			End:     end,
		})
		cursor = end
	}

	if err := entries.Validate(); err != nil {
		return nil, err
	}
	return entries, nil
}

func clampToUint64(balance *big.Int) uint64 {
	if balance == nil || balance.Sign() <= 0 {
		return 0
	}
	if balance.Cmp(maxUint64) > 0 {
		return ^uint64(0)
	}
	return balance.Uint64()
}

func lessAddress(a, b common.Address) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

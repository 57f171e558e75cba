package raffle

import "github.com/ethereum/go-ethereum/common"

// feistelRounds is the fixed round count for the Feistel permutation
// used by Draw.
const feistelRounds = 4

// Draw samples k distinct winners from entries via rejection-on-
// collision over the forward Feistel permutation. Forward Shuffle is
// the canonical direction this repo commits to, as opposed to its
// inverse Deshuffle — both are valid permutations but produce
// different winner sets for the same input, so the choice must stay
// fixed rather than be picked ad hoc per caller.
//
// Winners are returned in insertion order — the chronological order in
// which the draw accepted them — never set-iteration order, since the
// public winners_root commitment depends on that order.
func Draw(k uint64, seed Seed, entries EntryList) ([]common.Address, error) {
	if err := entries.Validate(); err != nil {
		return nil, err
	}
	if k == 0 {
		return nil, ErrNumWinnersZero
	}
	if k > uint64(len(entries)) {
		return nil, ErrNumWinnersTooLarge
	}

	domain := entries.Domain()
	feistelKey := seed.FeistelKey()

	winners := make([]common.Address, 0, k)
	seen := make(map[common.Address]struct{}, k)

	i := uint64(0)
	for uint64(len(winners)) < k {
		w, err := Shuffle(i, feistelKey, domain, feistelRounds)
		if err != nil {
			return nil, err
		}
		i++

		entry, err := locate(entries, w)
		if err != nil {
			return nil, err
		}

		if _, ok := seen[entry.Address]; ok {
			continue
		}
		seen[entry.Address] = struct{}{}
		winners = append(winners, entry.Address)
	}

	return winners, nil
}

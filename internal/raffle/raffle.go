package raffle

import "github.com/ethereum/go-ethereum/common"

// Result is the public output of a draw: the triple (commit_root, seed,
// winners_root), plus the revealed winners so a harness can log or
// publish them without recomputing the draw.
type Result struct {
	CommitRoot  [32]byte
	Seed        Seed
	WinnersRoot [32]byte
	Winners     []common.Address
}

// Encode returns the 96-byte wire form: commit_root(32) || seed(32) ||
// winners_root(32).
func (r Result) Encode() [96]byte {
	var out [96]byte
	copy(out[0:32], r.CommitRoot[:])
	copy(out[32:64], r.Seed[:])
	copy(out[64:96], r.WinnersRoot[:])
	return out
}

// RunRaffle is the top-level pure function composing C5+C6+C7: it
// validates and commits to entries, draws k winners, and commits to
// the winner set, returning the public triple. It is deterministic and
// allocation-bounded — no I/O, no randomness beyond the caller-supplied
// seed.
func RunRaffle(seed Seed, entries EntryList, k uint64) (Result, error) {
	commitRoot, err := CommitmentRoot(entries)
	if err != nil {
		return Result{}, err
	}

	winnersRoot, winners, err := WinnersRoot(k, seed, entries)
	if err != nil {
		return Result{}, err
	}

	return Result{
		CommitRoot:  commitRoot,
		Seed:        seed,
		WinnersRoot: winnersRoot,
		Winners:     winners,
	}, nil
}

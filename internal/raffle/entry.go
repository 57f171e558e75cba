package raffle

import (
	"bytes"
	"errors"

	"github.com/ethereum/go-ethereum/common"
)

// Sentinel errors for EntryList precondition violations: the caller
// supplied malformed data.
var (
	ErrTooFewEntries      = errors.New("<2 entries")
	ErrFirstEntryNotZero  = errors.New("first entry must start at 0")
	ErrInvalidEntry       = errors.New("invalid entry")
	ErrNonAdjacentEntries = errors.New("non-adjacent entries")
	ErrEntriesNotOrdered  = errors.New("entries must be ordered (asc) by addresses")
	ErrNumWinnersZero     = errors.New("num_winners == 0")
	ErrNumWinnersTooLarge = errors.New("num_winners > |entries|")
)

// Entry is a single weighted segment on the non-negative integer line.
// Weight is End-Start.
type Entry struct {
	Address common.Address
	Start   uint64
	End     uint64
}

// EntryList is an ordered sequence of Entry. Validate enforces the
// structural invariants below before any commitment is produced from
// it: at least two entries, the first starting at zero, every entry
// non-empty and contiguous with the next, and addresses strictly
// ascending.
type EntryList []Entry

// Validate checks the structural invariants. It does not allocate;
// callers that need the per-entry leaf hashes should call
// CommitmentRoot, which validates the list and then hashes each entry.
func (entries EntryList) Validate() error {
	if len(entries) < 2 {
		return ErrTooFewEntries
	}
	if entries[0].Start != 0 {
		return ErrFirstEntryNotZero
	}
	for i, entry := range entries {
		if entry.Start >= entry.End {
			return ErrInvalidEntry
		}
		if i == 0 {
			continue
		}
		prev := entries[i-1]
		if prev.End != entry.Start {
			return ErrNonAdjacentEntries
		}
		if bytes.Compare(prev.Address[:], entry.Address[:]) >= 0 {
			return ErrEntriesNotOrdered
		}
	}
	return nil
}

// Domain returns N, the half-open interval [0, N) partitioned by the
// entries. Callers must validate the list first.
func (entries EntryList) Domain() uint64 {
	return entries[len(entries)-1].End
}

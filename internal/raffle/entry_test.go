package raffle

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

func TestValidateTooFewEntries(t *testing.T) {
	for _, entries := range []EntryList{
		{},
		{{Address: common.Address{0x11}, Start: 0, End: 10}},
	} {
		if err := entries.Validate(); err != ErrTooFewEntries {
			t.Errorf("Validate(%d entries) = %v, want %v", len(entries), err, ErrTooFewEntries)
		}
	}
}

func TestValidateFirstEntryMustStartAtZero(t *testing.T) {
	entries := EntryList{
		{Address: common.Address{0x11}, Start: 1, End: 10},
		{Address: common.Address{0x22}, Start: 10, End: 20},
	}
	if err := entries.Validate(); err != ErrFirstEntryNotZero {
		t.Errorf("Validate = %v, want %v", err, ErrFirstEntryNotZero)
	}
}

func TestValidateInvalidEntryZeroWeight(t *testing.T) {
	entries := EntryList{
		{Address: common.Address{0x11}, Start: 0, End: 0},
		{Address: common.Address{0x22}, Start: 0, End: 10},
	}
	if err := entries.Validate(); err != ErrInvalidEntry {
		t.Errorf("Validate = %v, want %v", err, ErrInvalidEntry)
	}
}

func TestValidateInvalidEntryNegativeWeight(t *testing.T) {
	entries := EntryList{
		{Address: common.Address{0x11}, Start: 0, End: 10},
		{Address: common.Address{0x22}, Start: 10, End: 9},
	}
	if err := entries.Validate(); err != ErrInvalidEntry {
		t.Errorf("Validate = %v, want %v", err, ErrInvalidEntry)
	}
}

func TestValidateNonAdjacentEntries(t *testing.T) {
	entries := EntryList{
		{Address: common.Address{0x11}, Start: 0, End: 11},
		{Address: common.Address{0x22}, Start: 10, End: 20},
	}
	if err := entries.Validate(); err != ErrNonAdjacentEntries {
		t.Errorf("Validate = %v, want %v", err, ErrNonAdjacentEntries)
	}
}

func TestValidateDuplicateAddressesRejected(t *testing.T) {
	entries := EntryList{
		{Address: common.Address{0x11}, Start: 0, End: 10},
		{Address: common.Address{0x11}, Start: 10, End: 20},
	}
	if err := entries.Validate(); err != ErrEntriesNotOrdered {
		t.Errorf("Validate = %v, want %v", err, ErrEntriesNotOrdered)
	}
}

func TestValidateDescendingAddressesRejected(t *testing.T) {
	entries := EntryList{
		{Address: common.Address{0x22}, Start: 0, End: 10},
		{Address: common.Address{0x11}, Start: 10, End: 20},
	}
	if err := entries.Validate(); err != ErrEntriesNotOrdered {
		t.Errorf("Validate = %v, want %v", err, ErrEntriesNotOrdered)
	}
}

func TestValidateAcceptsWellFormedList(t *testing.T) {
	entries := threeSegmentList()
	if err := entries.Validate(); err != nil {
		t.Errorf("Validate = %v, want nil", err)
	}
	if got, want := entries.Domain(), uint64(60); got != want {
		t.Errorf("Domain() = %d, want %d", got, want)
	}
}

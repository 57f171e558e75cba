// Package wire implements the on-disk binary formats used to move
// entry lists and draw results between processes: a small fixed-width
// header naming the record count and domain, followed by a flat array
// of fixed-size records.
package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"plinko-raffle/internal/raffle"
)

// entryRecordSize is address(20) + start(8, BE) + end(8, BE), matching
// the field layout CommitmentRoot hashes per entry.
const entryRecordSize = 36

// headerSize is the 32-byte metadata header:
// [EntryCount:8][Domain:8][Reserved:16], all little-endian.
const headerSize = 32

var (
	ErrTruncatedHeader = errors.New("wire: truncated header")
	ErrTruncatedRecord = errors.New("wire: truncated entry record")
	ErrHeaderMismatch  = errors.New("wire: header entry count does not match body")
)

// EncodeEntryRecord serializes one entry to its fixed 36-byte record.
func EncodeEntryRecord(entry raffle.Entry) [entryRecordSize]byte {
	var buf [entryRecordSize]byte
	copy(buf[0:20], entry.Address[:])
	binary.BigEndian.PutUint64(buf[20:28], entry.Start)
	binary.BigEndian.PutUint64(buf[28:36], entry.End)
	return buf
}

// DecodeEntryRecord is the inverse of EncodeEntryRecord.
func DecodeEntryRecord(buf [entryRecordSize]byte) raffle.Entry {
	var entry raffle.Entry
	copy(entry.Address[:], buf[0:20])
	entry.Start = binary.BigEndian.Uint64(buf[20:28])
	entry.End = binary.BigEndian.Uint64(buf[28:36])
	return entry
}

// WriteEntries serializes entries to path as [header][records...],
// writing to a temp file and renaming into place so a reader never
// observes a partial file.
func WriteEntries(path string, entries raffle.EntryList) (err error) {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			os.Remove(tmp)
		}
	}()

	var header [headerSize]byte
	binary.LittleEndian.PutUint64(header[0:8], uint64(len(entries)))
	if len(entries) > 0 {
		binary.LittleEndian.PutUint64(header[8:16], entries.Domain())
	}
	if _, err = f.Write(header[:]); err != nil {
		f.Close()
		return err
	}

	for _, entry := range entries {
		record := EncodeEntryRecord(entry)
		if _, err = f.Write(record[:]); err != nil {
			f.Close()
			return err
		}
	}

	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// ReadEntries reads back a file written by WriteEntries.
func ReadEntries(path string) (raffle.EntryList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(data) < headerSize {
		return nil, ErrTruncatedHeader
	}

	count := binary.LittleEndian.Uint64(data[0:8])
	body := data[headerSize:]
	if uint64(len(body)) != count*entryRecordSize {
		return nil, ErrTruncatedRecord
	}

	entries := make(raffle.EntryList, 0, count)
	for i := uint64(0); i < count; i++ {
		var record [entryRecordSize]byte
		copy(record[:], body[i*entryRecordSize:(i+1)*entryRecordSize])
		entries = append(entries, DecodeEntryRecord(record))
	}
	return entries, nil
}

// WriteResult serializes the 96-byte public commitment triple
// (commit_root || seed || winners_root) to path, atomically.
func WriteResult(path string, result raffle.Result) error {
	encoded := result.Encode()
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, encoded[:], 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// ReadResultTriple reads back the 96-byte triple written by
// WriteResult and splits it into its three 32-byte fields.
func ReadResultTriple(path string) (commitRoot, seed, winnersRoot [32]byte, err error) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()

	var buf [96]byte
	if _, rerr := io.ReadFull(f, buf[:]); rerr != nil {
		err = fmt.Errorf("read result triple: %w", rerr)
		return
	}
	copy(commitRoot[:], buf[0:32])
	copy(seed[:], buf[32:64])
	copy(winnersRoot[:], buf[64:96])
	return
}

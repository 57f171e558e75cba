package raffle

import "encoding/binary"

// Seed is the 32-byte public random seed for a draw. Only the last 8
// bytes feed the Feistel key; the full seed is echoed in the public
// output so verifiers can re-derive the truncation.
type Seed [32]byte

// FeistelKey decodes the last 8 bytes of the seed as a big-endian u64.
func (s Seed) FeistelKey() uint64 {
	return binary.BigEndian.Uint64(s[24:32])
}

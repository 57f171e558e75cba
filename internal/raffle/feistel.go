package raffle

import (
	"encoding/binary"
	"errors"

	"github.com/ethereum/go-ethereum/crypto"
)

// Sentinel errors for Feistel precondition violations. Tests and
// callers compare against these values, not against message strings.
var (
	ErrModulusNotPositive = errors.New("modulus must be > 0")
	ErrInputTooLarge      = errors.New("x too large")
	ErrRoundsNotEven      = errors.New("rounds must be even")
)

// roundFunction computes f(x, i, seed, modulus) as specified: Keccak-256
// over the little-endian 8-byte encodings of x, i, seed, modulus
// concatenated in that order, truncated to the last 8 bytes of the
// digest and decoded big-endian. The mixed endianness is load-bearing —
// it is part of the wire contract and must not be "fixed".
func roundFunction(x, i, seed, modulus uint64) uint64 {
	var buf [32]byte
	binary.LittleEndian.PutUint64(buf[0:8], x)
	binary.LittleEndian.PutUint64(buf[8:16], i)
	binary.LittleEndian.PutUint64(buf[16:24], seed)
	binary.LittleEndian.PutUint64(buf[24:32], modulus)

	digest := crypto.Keccak256(buf[:])
	return binary.BigEndian.Uint64(digest[24:32])
}

// Shuffle applies the forward format-preserving permutation to x over
// [0, domain), keyed by seed, using the given (even) round count.
func Shuffle(x, seed, domain uint64, rounds int) (uint64, error) {
	if err := checkFeistelPreconditions(x, domain, rounds); err != nil {
		return 0, err
	}

	h := isqrt(nextPerfectSquare(domain))
	for {
		l := x % h
		r := x / h
		for i := 0; i < rounds; i++ {
			l, r = r, (l+roundFunction(r, uint64(i), seed, domain))%h
		}
		x = h*r + l
		if x < domain {
			return x, nil
		}
	}
}

// Deshuffle applies the inverse permutation, reversing the round
// schedule of Shuffle.
func Deshuffle(xPrime, seed, domain uint64, rounds int) (uint64, error) {
	if err := checkFeistelPreconditions(xPrime, domain, rounds); err != nil {
		return 0, err
	}

	h := isqrt(nextPerfectSquare(domain))
	x := xPrime
	for {
		l := x % h
		r := x / h
		for i := 0; i < rounds; i++ {
			fVal := roundFunction(l, uint64(rounds-i-1), seed, domain) % h
			l, r = (r+h-fVal)%h, l
		}
		x = h*r + l
		if x < domain {
			return x, nil
		}
	}
}

func checkFeistelPreconditions(x, domain uint64, rounds int) error {
	if domain == 0 {
		return ErrModulusNotPositive
	}
	if x >= domain {
		return ErrInputTooLarge
	}
	if rounds&1 != 0 {
		return ErrRoundsNotEven
	}
	return nil
}

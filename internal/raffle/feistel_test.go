package raffle

import "testing"

func TestShuffleRoundTrip(t *testing.T) {
	const seed = uint64(0x1234567890abcdef)
	const domain = uint64(1000)
	const rounds = 4

	seen := make(map[uint64]bool, domain)
	for x := uint64(0); x < domain; x++ {
		shuffled, err := Shuffle(x, seed, domain, rounds)
		if err != nil {
			t.Fatalf("Shuffle(%d): %v", x, err)
		}
		if shuffled >= domain {
			t.Fatalf("Shuffle(%d) = %d, want < %d", x, shuffled, domain)
		}
		if seen[shuffled] {
			t.Fatalf("Shuffle is not injective: %d produced twice", shuffled)
		}
		seen[shuffled] = true

		back, err := Deshuffle(shuffled, seed, domain, rounds)
		if err != nil {
			t.Fatalf("Deshuffle(%d): %v", shuffled, err)
		}
		if back != x {
			t.Fatalf("Deshuffle(Shuffle(%d)) = %d, want %d", x, back, x)
		}
	}

	if len(seen) != int(domain) {
		t.Fatalf("Shuffle covered %d outputs, want %d (not bijective)", len(seen), domain)
	}
}

func TestDeshuffleIsRightInverse(t *testing.T) {
	const seed = uint64(42)
	const domain = uint64(777)
	const rounds = 4

	for xPrime := uint64(0); xPrime < domain; xPrime++ {
		x, err := Deshuffle(xPrime, seed, domain, rounds)
		if err != nil {
			t.Fatalf("Deshuffle(%d): %v", xPrime, err)
		}
		back, err := Shuffle(x, seed, domain, rounds)
		if err != nil {
			t.Fatalf("Shuffle(%d): %v", x, err)
		}
		if back != xPrime {
			t.Fatalf("Shuffle(Deshuffle(%d)) = %d, want %d", xPrime, back, xPrime)
		}
	}
}

func TestShufflePreconditions(t *testing.T) {
	if _, err := Shuffle(0, 0, 0, 4); err != ErrModulusNotPositive {
		t.Errorf("domain=0: got %v, want %v", err, ErrModulusNotPositive)
	}
	if _, err := Shuffle(10, 0, 10, 4); err != ErrInputTooLarge {
		t.Errorf("x>=domain: got %v, want %v", err, ErrInputTooLarge)
	}
	if _, err := Shuffle(0, 0, 10, 3); err != ErrRoundsNotEven {
		t.Errorf("odd rounds: got %v, want %v", err, ErrRoundsNotEven)
	}
}

func TestDeshufflePreconditions(t *testing.T) {
	if _, err := Deshuffle(0, 0, 0, 4); err != ErrModulusNotPositive {
		t.Errorf("domain=0: got %v, want %v", err, ErrModulusNotPositive)
	}
	if _, err := Deshuffle(10, 0, 10, 4); err != ErrInputTooLarge {
		t.Errorf("x>=domain: got %v, want %v", err, ErrInputTooLarge)
	}
	if _, err := Deshuffle(0, 0, 10, 3); err != ErrRoundsNotEven {
		t.Errorf("odd rounds: got %v, want %v", err, ErrRoundsNotEven)
	}
}

func TestShuffleDomainClosureNonSquare(t *testing.T) {
	// Domains that are not perfect squares exercise cycle-walking.
	for _, domain := range []uint64{1, 2, 3, 5, 10, 999, 1001} {
		for _, x := range []uint64{0, domain - 1} {
			y, err := Shuffle(x, 7, domain, 4)
			if err != nil {
				t.Fatalf("Shuffle(%d, domain=%d): %v", x, domain, err)
			}
			if y >= domain {
				t.Fatalf("Shuffle(%d, domain=%d) = %d, out of range", x, domain, y)
			}
		}
	}
}

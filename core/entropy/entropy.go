// core/entropy/entropy.go
package entropy

import "math"

// Estimate returns the guess-space size of pwd in bits. The character pool
// grows with each class present: 26 lowercase, 26 uppercase, 10 digits, and
// a 32-symbol pool that every other rune falls into. Entropy is rune count
// times log2(pool); the empty string scores 0.
func Estimate(pwd string) float64 {
	var lower, upper, digit, other bool
	n := 0
	for _, r := range pwd {
		n++
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			other = true
		}
	}
	pool := 0
	if lower {
		pool += 26
	}
	if upper {
		pool += 26
	}
	if digit {
		pool += 10
	}
	if other {
		pool += 32
	}
	if pool == 0 {
		return 0
	}
	return float64(n) * math.Log2(float64(pool))
}

// BruteForceSeconds is the average-case time to search a 2^bits space at
// rate guesses per second: half the space divided by the rate. Non-positive
// rates mean the attacker cannot guess at all, so +Inf. Overflow on large
// exponents also lands on +Inf, which is the intended terminal value.
func BruteForceSeconds(bits, rate float64) float64 {
	if rate <= 0 {
		return math.Inf(1)
	}
	return math.Exp2(bits) / 2 / rate
}

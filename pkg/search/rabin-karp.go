package search

import "log/slog"

// RabinKarp algorithm is inferior for single pattern searching to Knuth–Morris–Pratt algorithm or the
// Boyer–Moore string search algorithm (and other faster single pattern string searching algorithms) because
// of its slow worst case behavior. However, it is a useful algorithm for multiple pattern searches.
type RabinKarp struct {
	log     *slog.Logger
	base    uint64
	modulus uint64
}

func NewRabinKarp(opts ...Option) *RabinKarp {
	o := newOptions(opts)
	return &RabinKarp{
		log:     o.logger,
		base:    o.base,
		modulus: o.modulus,
	}
}

func (rk *RabinKarp) String() string {
	return "RABIN-KARP"
}

func (rk *RabinKarp) Match(text, pattern []byte) (Result, error) {
	if err := check(rk.log, rk, text == nil, pattern == nil, len(text), len(pattern)); err != nil {
		return Result{}, err
	}
	return rabinKarpFinder(text, pattern, rk.base, rk.modulus), nil
}

func (rk *RabinKarp) MatchString(text, pattern string) (Result, error) {
	if err := check(rk.log, rk, false, false, len(text), len(pattern)); err != nil {
		return Result{}, err
	}
	return rabinKarpFinder(text, pattern, rk.base, rk.modulus), nil
}

func (rk *RabinKarp) FindIndex(text, pattern []byte) int {
	return firstIndex(rk.Match(text, pattern))
}

func (rk *RabinKarp) FindIndexString(text, pattern string) int {
	return firstIndex(rk.MatchString(text, pattern))
}

// PrimeRK is the prime base used in Rabin-Karp algorithm.
const PrimeRK = 16777619

// ModRK is the default modulus, the Mersenne prime 2^31-1. With a base below
// 2^32 every intermediate product fits in a uint64.
const ModRK = 1<<31 - 1

// rollingHash is the per-call hashing state. Hashes are always reduced
// modulo modulus; equal hashes are only candidates and get verified.
type rollingHash struct {
	base, modulus  uint64
	highOrderPower uint64 // base^(m-1) mod modulus
	pattern        uint64
	window         uint64
}

func newRollingHash[T input](text, pattern T, base, modulus uint64) *rollingHash {
	h := &rollingHash{
		base:           base % modulus,
		modulus:        modulus,
		highOrderPower: 1 % modulus,
	}
	m := len(pattern)
	for i := 0; i < m-1; i++ {
		h.highOrderPower = h.highOrderPower * h.base % modulus
	}
	for i := 0; i < m; i++ {
		h.pattern = h.push(h.pattern, pattern[i])
		h.window = h.push(h.window, text[i])
	}
	return h
}

// push appends c to hash using Horner's rule.
func (h *rollingHash) push(hash uint64, c byte) uint64 {
	return (hash*h.base + uint64(c)) % h.modulus
}

// roll slides the window one character: out leaves on the left, in enters
// on the right.
func (h *rollingHash) roll(out, in byte) {
	drop := uint64(out) % h.modulus * h.highOrderPower % h.modulus
	h.window = h.push((h.window+h.modulus-drop)%h.modulus, in)
}

func rabinKarpFinder[T input](text, pattern T, base, modulus uint64) Result {
	n, m := len(text), len(pattern)
	h := newRollingHash(text, pattern, base, modulus)
	res := Result{Positions: []int{}}

	for i := 0; i <= n-m; i++ {
		if h.window == h.pattern {
			j := 0
			for j < m {
				res.Comparisons++
				if text[i+j] != pattern[j] {
					break
				}
				j++
			}
			if j == m {
				res.Positions = append(res.Positions, i+1)
			}
		} else {
			res.Comparisons++
		}
		if i < n-m {
			h.roll(text[i], text[i+m])
		}
	}
	return res
}

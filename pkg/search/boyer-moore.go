package search

import "log/slog"

// alphabetSize is the number of distinct byte values.
const alphabetSize = 256

// BoyerMoore compares the pattern right-to-left and, on a mismatch, shifts by
// the larger of the bad-character and strong good-suffix rules. On natural
// language text with longer patterns it skips most of the text without ever
// reading it.
type BoyerMoore struct {
	log *slog.Logger
}

func NewBoyerMoore(opts ...Option) *BoyerMoore {
	o := newOptions(opts)
	return &BoyerMoore{log: o.logger}
}

func (bm *BoyerMoore) String() string {
	return "BOYER-MOORE"
}

func (bm *BoyerMoore) Match(text, pattern []byte) (Result, error) {
	if err := check(bm.log, bm, text == nil, pattern == nil, len(text), len(pattern)); err != nil {
		return Result{}, err
	}
	return boyerMooreFinder(text, pattern), nil
}

func (bm *BoyerMoore) MatchString(text, pattern string) (Result, error) {
	if err := check(bm.log, bm, false, false, len(text), len(pattern)); err != nil {
		return Result{}, err
	}
	return boyerMooreFinder(text, pattern), nil
}

func (bm *BoyerMoore) FindIndex(text, pattern []byte) int {
	return firstIndex(bm.Match(text, pattern))
}

func (bm *BoyerMoore) FindIndexString(text, pattern string) int {
	return firstIndex(bm.MatchString(text, pattern))
}

// BadCharacterTable maps every byte to the index of its last occurrence in
// pattern, or -1 if it does not occur.
func BadCharacterTable(pattern []byte) [alphabetSize]int {
	return badCharTable(pattern)
}

// GoodSuffixTable returns the strong good-suffix shifts of pattern: entry j
// is how far to move the pattern after a mismatch at position j. Every entry
// lies in [1, len(pattern)]. It returns nil for an empty pattern.
func GoodSuffixTable(pattern []byte) []int {
	if len(pattern) == 0 {
		return nil
	}
	return goodSuffixTable(pattern)
}

func badCharTable[T input](pattern T) [alphabetSize]int {
	var table [alphabetSize]int
	for i := range table {
		table[i] = -1
	}
	for i := 0; i < len(pattern); i++ {
		table[pattern[i]] = i
	}
	return table
}

// suffixes returns, for each i, the length of the longest common suffix of
// x[:i+1] and x.
func suffixes[T input](x T) []int {
	m := len(x)
	suff := make([]int, m)
	suff[m-1] = m
	f, g := 0, m-1
	for i := m - 2; i >= 0; i-- {
		if i > g && suff[i+m-1-f] < i-g {
			suff[i] = suff[i+m-1-f]
			continue
		}
		if i < g {
			g = i
		}
		f = i
		for g >= 0 && x[g] == x[g+m-1-f] {
			g--
		}
		suff[i] = f - g
	}
	return suff
}

func goodSuffixTable[T input](x T) []int {
	m := len(x)
	suff := suffixes(x)
	table := make([]int, m)
	for i := range table {
		table[i] = m
	}

	// a border of length i+1 serves every mismatch whose matched suffix is
	// longer than it; walk from the longest border down so each position
	// keeps the smallest shift
	j := 0
	for i := m - 1; i >= 0; i-- {
		if suff[i] == i+1 {
			for ; j < m-1-i; j++ {
				if table[j] == m {
					table[j] = m - 1 - i
				}
			}
		}
	}

	// a full reoccurrence of the matched suffix ending at i, preceded by a
	// different byte (or by nothing). Later i is further right, so smaller
	// shifts overwrite larger ones.
	for i := 0; i <= m-2; i++ {
		table[m-1-suff[i]] = m - 1 - i
	}

	// nothing matched yet, leave it to the bad-character rule
	table[m-1] = 1
	return table
}

func boyerMooreFinder[T input](text, pattern T) Result {
	bc := badCharTable(pattern)
	gs := goodSuffixTable(pattern)
	n, m := len(text), len(pattern)
	res := Result{Positions: []int{}}

	for s := 0; s <= n-m; {
		j := m - 1
		for j >= 0 {
			res.Comparisons++
			if pattern[j] != text[s+j] {
				break
			}
			j--
		}
		if j < 0 {
			res.Positions = append(res.Positions, s+1)
			s += gs[0]
			continue
		}
		s += max(j-bc[text[s+j]], 1, gs[j])
	}
	return res
}

package search

import "log/slog"

// KnuthMorrisPratt algorithm is oftentimes only the best performing when it's used on shorter texts or
// if you are pre-computing the search tables beforehand. Otherwise, Boyer-Moore (and even Rabin-Karp) will
// beat it almost out most of the time. Its strength is the worst case: the text is read exactly once, so
// highly repetitive input costs O(n+m) where the naive scan degrades to O(n*m).
type KnuthMorrisPratt struct {
	log *slog.Logger
}

func NewKnuthMorrisPratt(opts ...Option) *KnuthMorrisPratt {
	o := newOptions(opts)
	return &KnuthMorrisPratt{log: o.logger}
}

func (kmp *KnuthMorrisPratt) String() string {
	return "KNUTH-MORRIS-PRATT"
}

func (kmp *KnuthMorrisPratt) Match(text, pattern []byte) (Result, error) {
	if err := check(kmp.log, kmp, text == nil, pattern == nil, len(text), len(pattern)); err != nil {
		return Result{}, err
	}
	return kmpFinder(text, pattern), nil
}

func (kmp *KnuthMorrisPratt) MatchString(text, pattern string) (Result, error) {
	if err := check(kmp.log, kmp, false, false, len(text), len(pattern)); err != nil {
		return Result{}, err
	}
	return kmpFinder(text, pattern), nil
}

func (kmp *KnuthMorrisPratt) FindIndex(text, pattern []byte) int {
	return firstIndex(kmp.Match(text, pattern))
}

func (kmp *KnuthMorrisPratt) FindIndexString(text, pattern string) int {
	return firstIndex(kmp.MatchString(text, pattern))
}

// PrefixTable returns the border function of pattern: entry q is the length
// of the longest proper prefix of pattern[:q+1] that is also its suffix.
// It returns nil for an empty pattern.
func PrefixTable(pattern []byte) []int {
	if len(pattern) == 0 {
		return nil
	}
	return prefixTable(pattern)
}

func prefixTable[T input](pattern T) []int {
	m := len(pattern)
	table := make([]int, m)
	k := 0
	for q := 1; q < m; q++ {
		for k > 0 && pattern[k] != pattern[q] {
			k = table[k-1]
		}
		if pattern[k] == pattern[q] {
			k++
		}
		table[q] = k
	}
	return table
}

func kmpFinder[T input](text, pattern T) Result {
	table := prefixTable(pattern)
	n, m := len(text), len(pattern)
	res := Result{Positions: []int{}}

	// k is the number of pattern characters currently matched
	k := 0
	for i := 0; i < n; i++ {
		for {
			res.Comparisons++
			if pattern[k] == text[i] {
				k++
				break
			}
			if k == 0 {
				break
			}
			k = table[k-1]
		}
		if k == m {
			res.Positions = append(res.Positions, i-m+2)
			// fall back so overlapping occurrences are still seen
			k = table[k-1]
		}
	}
	return res
}

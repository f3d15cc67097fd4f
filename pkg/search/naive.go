package search

import "log/slog"

// Naive is the brute force baseline. Every other Searcher is checked against
// it.
type Naive struct {
	log *slog.Logger
}

func NewNaive(opts ...Option) *Naive {
	o := newOptions(opts)
	return &Naive{log: o.logger}
}

func (nv *Naive) String() string {
	return "NAIVE"
}

func (nv *Naive) Match(text, pattern []byte) (Result, error) {
	if err := check(nv.log, nv, text == nil, pattern == nil, len(text), len(pattern)); err != nil {
		return Result{}, err
	}
	return naiveFinder(text, pattern), nil
}

func (nv *Naive) MatchString(text, pattern string) (Result, error) {
	if err := check(nv.log, nv, false, false, len(text), len(pattern)); err != nil {
		return Result{}, err
	}
	return naiveFinder(text, pattern), nil
}

func (nv *Naive) FindIndex(text, pattern []byte) int {
	return firstIndex(nv.Match(text, pattern))
}

func (nv *Naive) FindIndexString(text, pattern string) int {
	return firstIndex(nv.MatchString(text, pattern))
}

func naiveFinder[T input](text, pattern T) Result {
	n, m := len(text), len(pattern)
	res := Result{Positions: []int{}}
	for i := 0; i <= n-m; i++ {
		j := 0
		for j < m {
			res.Comparisons++
			if pattern[j] != text[i+j] {
				break
			}
			j++
		}
		if j == m {
			res.Positions = append(res.Positions, i+1)
		}
	}
	return res
}

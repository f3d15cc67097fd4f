package search

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/pkg/errors"

	"github.com/scottcagno/stringsearch/pkg/logging"
)

// Searcher finds every occurrence of a pattern in a text. All implementations
// return the same positions for the same input; they only differ in how much
// work they do to find them.
type Searcher interface {
	fmt.Stringer

	// Match returns the 1-based start of every occurrence of pattern in
	// text, in increasing order. Occurrences may overlap. A non-nil error
	// means the call itself was malformed (see IsInvalid).
	Match(text, pattern []byte) (Result, error)
	MatchString(text, pattern string) (Result, error)

	// FindIndex returns the 0-based index of the first occurrence, or -1.
	FindIndex(text, pattern []byte) int
	FindIndexString(text, pattern string) int
}

// Result is the outcome of a valid search.
type Result struct {
	// Positions holds 1-based match starts, strictly increasing. It is
	// never nil on success, only empty.
	Positions []int

	// Comparisons counts the character comparisons made by the scan.
	Comparisons uint64
}

// Naive:
// Tries every alignment of the pattern against the text and compares left to right until the first
// mismatch. There is no preprocessing at all, which makes it hard to beat on tiny inputs, but a
// pattern such as "AAAAB" against a run of A's costs n*m comparisons.

// Boyer-Moore:
// Works by pre-analyzing the pattern and comparing from right-to-left. If a mismatch occurs, the
// initial analysis is used to determine how far the pattern can be shifted w.r.t. the  text being
// searched. This works particularly well for long search patterns. In particular, it can be
// sublinear, as you do not need to read every single character of your text. So if your pattern is one
// or two characters, then it literally becomes linear searching. The length of your pattern you are
// trying to search is in theory equal to the best case scenario of how many characters you
// can skip for something that doesn't match.

// Knuth-Morris-Pratt:
// Also works by pre-analyzing the pattern, but tries to re-use whatever was already matched in the
// initial part of the pattern to avoid having to rematch that. This can work quite well, if your
// alphabet is small (f.ex. DNA bases), as you get a higher chance that your search patterns
// contain re-usable sub-patterns. KMP is best suited for searching texts that have a lot of tight
// repetition.

// Rabin-Karp:
// Works by utilizing efficient computation of hash values of the successive substrings of the text,
// which it then uses for comparing matches. It is best on large text in which you are finding multiple
// pattern matches, like detecting plagiarism.

// input is the set of character sequences a search can run over.
type input interface {
	~string | ~[]byte
}

// Option configures a Searcher.
type Option func(*options)

type options struct {
	logger  *slog.Logger
	base    uint64
	modulus uint64
}

// WithLogger sets the sink that receives a warning for every malformed call.
// Nothing is logged by default.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// maxModulus keeps every rolling hash product inside a uint64.
const maxModulus = 1 << 32

// WithHashParams overrides the Rabin-Karp base and modulus. It is ignored by
// the other algorithms. A zero base, or a modulus of zero or above 2^32,
// keeps the default.
func WithHashParams(base, modulus uint64) Option {
	return func(o *options) {
		if base > 0 {
			o.base = base
		}
		if modulus > 0 && modulus <= maxModulus {
			o.modulus = modulus
		}
	}
}

func newOptions(opts []Option) options {
	o := options{
		logger:  logging.Discard(),
		base:    PrimeRK,
		modulus: ModRK,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// check runs the match contract for s and reports any violation to logger.
func check(logger *slog.Logger, s fmt.Stringer, textNil, patternNil bool, n, m int) error {
	err := validate(textNil, patternNil, n, m)
	if err == nil {
		return nil
	}
	logger.Warn("invalid search",
		"algorithm", s.String(),
		"reason", err.Error(),
		"text_len", n,
		"pattern_len", m,
	)
	return errors.WithMessage(err, strings.ToLower(s.String()))
}

// firstIndex converts a Match outcome into the FindIndex convention.
func firstIndex(res Result, err error) int {
	if err != nil || len(res.Positions) == 0 {
		return -1
	}
	return res.Positions[0] - 1
}

// All returns one Searcher per algorithm, cheapest preprocessing first.
func All(opts ...Option) []Searcher {
	return []Searcher{
		NewNaive(opts...),
		NewKnuthMorrisPratt(opts...),
		NewBoyerMoore(opts...),
		NewRabinKarp(opts...),
	}
}

var aliases = map[string]string{
	"naive":              "naive",
	"kmp":                "kmp",
	"knuth-morris-pratt": "kmp",
	"bm":                 "bm",
	"boyer-moore":        "bm",
	"rk":                 "rk",
	"rabin-karp":         "rk",
}

// Names returns the short algorithm names accepted by Lookup, in the same
// order as All.
func Names() []string {
	return []string{"naive", "kmp", "bm", "rk"}
}

// Lookup returns the Searcher registered under name. Short names ("kmp")
// and long names ("knuth-morris-pratt") are both accepted, in any case.
func Lookup(name string, opts ...Option) (Searcher, error) {
	switch aliases[strings.ToLower(strings.TrimSpace(name))] {
	case "naive":
		return NewNaive(opts...), nil
	case "kmp":
		return NewKnuthMorrisPratt(opts...), nil
	case "bm":
		return NewBoyerMoore(opts...), nil
	case "rk":
		return NewRabinKarp(opts...), nil
	}
	return nil, errors.Wrapf(ErrUnknownAlgorithm, "%q", name)
}

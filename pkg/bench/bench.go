// Package bench measures the search algorithms against each other on
// generated texts of doubling size.
package bench

import (
	"context"
	"log/slog"
	"math/rand"
	"slices"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/scottcagno/stringsearch/pkg/config"
	"github.com/scottcagno/stringsearch/pkg/logging"
	"github.com/scottcagno/stringsearch/pkg/search"
	"github.com/scottcagno/stringsearch/pkg/util"
)

// ErrDisagreement is returned when two algorithms report different matches
// for the same text and pattern.
var ErrDisagreement = errors.New("algorithms disagree")

// Options tunes a run.
type Options struct {
	// Parallelism bounds how many algorithms search at once. Default: 1.
	Parallelism int

	// Logger receives one debug record per measurement. Default: discard.
	Logger *slog.Logger

	// Int63 is the source of random bits for random texts. Default:
	// math/rand.
	Int63 func() int64
}

func (o Options) withDefaults() Options {
	if o.Parallelism < 1 {
		o.Parallelism = 1
	}
	if o.Logger == nil {
		o.Logger = logging.Discard()
	}
	if o.Int63 == nil {
		o.Int63 = rand.Int63
	}
	return o
}

// Measurement is one algorithm searching one text.
type Measurement struct {
	Scenario    string
	Algorithm   string
	N           int
	M           int
	Matches     int
	Comparisons uint64
	Elapsed     time.Duration
}

// Ratio is the number of comparisons per text character.
func (m Measurement) Ratio() float64 {
	if m.N == 0 {
		return 0
	}
	return float64(m.Comparisons) / float64(m.N)
}

// RunAll runs every scenario of cfg in order.
func RunAll(ctx context.Context, cfg *config.Config, opts Options) ([]Measurement, error) {
	if opts.Parallelism == 0 {
		opts.Parallelism = cfg.Parallelism
	}
	var out []Measurement
	for _, sc := range cfg.Scenarios {
		ms, err := Run(ctx, sc, opts)
		out = append(out, ms...)
		if err != nil {
			return out, err
		}
	}
	return out, nil
}

// Run searches texts of sc.StartSize, doubling Steps times, with every
// algorithm of the scenario. The results come back ordered by text size,
// then by algorithm. Cancelling ctx stops the run between sizes and returns
// what was measured so far.
func Run(ctx context.Context, sc config.Scenario, opts Options) ([]Measurement, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()

	names := sc.Algorithms
	if len(names) == 0 {
		names = search.Names()
	}
	searchers := make([]search.Searcher, 0, len(names))
	for _, name := range names {
		s, err := search.Lookup(name, search.WithLogger(opts.Logger))
		if err != nil {
			return nil, err
		}
		searchers = append(searchers, s)
	}

	pattern := []byte(sc.Pattern)
	var out []Measurement
	size := sc.StartSize
	for step := 0; step < sc.Steps; step++ {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		text, err := generate(sc.Text, size, opts.Int63)
		if err != nil {
			return out, err
		}
		ms, err := runStep(ctx, searchers, text, pattern, opts.Parallelism)
		if err != nil {
			return out, errors.Wrapf(err, "scenario %q, n=%d", sc.Name, size)
		}
		for i := range ms {
			ms[i].Scenario = sc.Name
			opts.Logger.Debug("measured",
				"scenario", sc.Name,
				"algorithm", ms[i].Algorithm,
				"n", ms[i].N,
				"comparisons", ms[i].Comparisons,
				"elapsed", ms[i].Elapsed,
			)
		}
		out = append(out, ms...)
		size *= 2
	}
	return out, nil
}

func generate(kind config.TextKind, size int, int63 func() int64) ([]byte, error) {
	switch kind {
	case config.TextRandom:
		return util.RandomTextFrom(int63, size)
	case config.TextRepetitive:
		return util.RepetitiveText(size)
	}
	return nil, errors.Wrapf(config.ErrInvalid, "unknown text kind %q", kind)
}

// runStep lets every searcher loose on the same text, at most parallelism at
// a time, and checks that they all found the same positions.
func runStep(ctx context.Context, searchers []search.Searcher, text, pattern []byte, parallelism int) ([]Measurement, error) {
	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, parallelism)

	ms := make([]Measurement, len(searchers))
	positions := make([][]int, len(searchers))
	for i, s := range searchers {
		g.Go(func() error {
			select {
			case sem <- struct{}{}:
			case <-gctx.Done():
				return gctx.Err()
			}
			defer func() { <-sem }()

			start := time.Now()
			res, err := s.Match(text, pattern)
			elapsed := time.Since(start)
			if err != nil {
				return err
			}
			positions[i] = res.Positions
			ms[i] = Measurement{
				Algorithm:   s.String(),
				N:           len(text),
				M:           len(pattern),
				Matches:     len(res.Positions),
				Comparisons: res.Comparisons,
				Elapsed:     elapsed,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i := 1; i < len(positions); i++ {
		if !slices.Equal(positions[0], positions[i]) {
			return nil, errors.Wrapf(ErrDisagreement, "%s found %d matches, %s found %d",
				ms[0].Algorithm, len(positions[0]), ms[i].Algorithm, len(positions[i]))
		}
	}
	return ms, nil
}

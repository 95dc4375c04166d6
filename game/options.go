package game

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"
)

// Source is the uniform integer source used to place mines. *rand.Rand
// satisfies it.
type Source interface {
	Intn(n int) int
}

type Option func(*options)

type options struct {
	bounds  Bounds
	seed    int64
	hasSeed bool
	source  Source
}

// WithSeed places mines using a math/rand source seeded with seed
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.hasSeed = true
	}
}

// WithSource places mines using the given source. It takes precedence over
// WithSeed.
func WithSource(source Source) Option {
	return func(o *options) {
		o.source = source
	}
}

// WithBounds replaces DefaultBounds when validating board dimensions
func WithBounds(bounds Bounds) Option {
	return func(o *options) {
		o.bounds = bounds
	}
}

func newOptions(opts []Option) options {
	o := options{bounds: DefaultBounds}
	for _, opt := range opts {
		opt(&o)
	}

	if !o.hasSeed {
		o.seed = time.Now().UnixNano()
	}
	if o.source == nil {
		o.source = rand.New(rand.NewSource(o.seed))
	}
	return o
}

// Bounds limits the size of boards accepted by New
type Bounds struct {
	MinRows, MaxRows int
	MinCols, MaxCols int
}

var (
	DefaultBounds = Bounds{
		MinRows: MinRows,
		MaxRows: MaxRows,
		MinCols: MinCols,
		MaxCols: MaxCols,
	}

	Unbounded = Bounds{
		MinRows: 1,
		MaxRows: MaxDimension,
		MinCols: 1,
		MaxCols: MaxDimension,
	}
)

// Validate checks construction parameters, returning an error wrapping
// ErrInvalidDimensions or ErrInvalidMineCount
func (bounds Bounds) Validate(rows, cols, numMines int) error {
	if rows < bounds.MinRows || rows > bounds.MaxRows {
		return errors.Wrapf(ErrInvalidDimensions,
			"rows must be within [%d, %d], got %d", bounds.MinRows, bounds.MaxRows, rows)
	}
	if cols < bounds.MinCols || cols > bounds.MaxCols {
		return errors.Wrapf(ErrInvalidDimensions,
			"cols must be within [%d, %d], got %d", bounds.MinCols, bounds.MaxCols, cols)
	}

	// At least one cell must stay free for the first reveal
	maxMines := rows*cols - 1
	if numMines < MinMines || numMines > maxMines {
		return errors.Wrapf(ErrInvalidMineCount,
			"mines must be within [%d, %d] on a %dx%d board, got %d", MinMines, maxMines, rows, cols, numMines)
	}

	return nil
}

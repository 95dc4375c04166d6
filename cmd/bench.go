package cmd

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/they4kman/termsweep/game"
	"golang.org/x/sync/errgroup"
)

var benchOpts = newBenchOptions()

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Measure how often a director clears the board",
	Long: `bench plays many games with a director, without rendering them, and
reports how many were won.

	termsweep bench --director constraint --games 500 --difficulty medium
`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBench(cmd.Context(), benchOpts, cmd.OutOrStdout())
	},
}

type benchOptions struct {
	difficulty difficultyValue
	director   directorValue
	games      int
	workers    int
	seed       int64
	verbose    bool
}

func newBenchOptions() *benchOptions {
	return &benchOptions{
		difficulty: difficultyValue(game.Easy),
		director:   directorConstraint,
		games:      100,
		workers:    runtime.NumCPU(),
	}
}

func (o *benchOptions) register(flags *pflag.FlagSet) {
	flags.VarP(&o.difficulty, "difficulty", "d", "Board preset: easy, medium or hard")
	flags.Var(&o.director, "director", "Director to measure: random or constraint")
	flags.IntVarP(&o.games, "games", "n", o.games, "Number of games to play")
	flags.IntVarP(&o.workers, "workers", "w", o.workers, "Number of games played at once")
	flags.Int64VarP(&o.seed, "seed", "s", 0, "Seed of the first game; game i uses seed+i (0 = random)")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "Log debug information")
}

type benchResult struct {
	games, wins int
	elapsed     time.Duration
}

func (r benchResult) WinRate() float64 {
	if r.games == 0 {
		return 0
	}
	return float64(r.wins) / float64(r.games)
}

func runBench(ctx context.Context, o *benchOptions, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := setupLogging("", o.verbose); err != nil {
		return err
	}

	result, err := o.bench(ctx)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "%s director won %d of %d %s games (%.1f%%) in %s\n",
		o.director, result.wins, result.games, o.difficulty.Name,
		100*result.WinRate(), result.elapsed.Round(time.Millisecond))
	return err
}

func (o *benchOptions) bench(ctx context.Context) (benchResult, error) {
	if o.director == directorNone {
		return benchResult{}, errors.New("bench needs a director")
	}
	if o.games < 1 {
		return benchResult{}, errors.Errorf("invalid number of games %d", o.games)
	}

	difficulty := game.Difficulty(o.difficulty)
	if err := difficulty.Validate(game.DefaultBounds); err != nil {
		return benchResult{}, errors.Wrapf(err, "difficulty %s", difficulty.Name)
	}

	baseSeed := o.seed
	if baseSeed == 0 {
		baseSeed = time.Now().UnixNano()
	}

	log.WithFields(logrus.Fields{
		"difficulty": difficulty.Name,
		"director":   o.director,
		"games":      o.games,
		"workers":    o.workers,
		"seed":       baseSeed,
	}).Debug("starting bench")

	start := time.Now()
	won := make([]bool, o.games)

	g, gCtx := errgroup.WithContext(ctx)
	if o.workers > 0 {
		g.SetLimit(o.workers)
	}
	for i := range won {
		i := i
		g.Go(func() error {
			seed := baseSeed + int64(i)
			board, err := game.New(difficulty.Rows, difficulty.Cols, difficulty.NumMines, game.WithSeed(seed))
			if err != nil {
				return err
			}
			if err := game.Autoplay(gCtx, board, o.director.newDirector(seed)); err != nil {
				return errors.Wrapf(err, "game %d (seed %d)", i, seed)
			}
			won[i] = board.IsWon()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return benchResult{}, err
	}

	result := benchResult{games: o.games, elapsed: time.Since(start)}
	for _, w := range won {
		if w {
			result.wins++
		}
	}
	return result, nil
}

func init() {
	benchOpts.register(benchCmd.Flags())
}

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/they4kman/termsweep/director/constraint"
	"github.com/they4kman/termsweep/director/random"
	"github.com/they4kman/termsweep/game"
)

var (
	log = logrus.New()

	opts = newOptions()
)

var rootCmd = &cobra.Command{
	Use:   "termsweep",
	Short: "Play manual or computer-driven Minesweeper in the terminal",
	Long: `termsweep is a terminal Minesweeper game which supports human- or
computer-driven playing. The first revealed cell never hides a mine.

Run with no arguments to play an easy board
	termsweep

Pick a preset, or a custom board
	termsweep --difficulty hard
	termsweep --rows 10 --cols 12 --mines 20

Use the director flag to make the computer play for you
	termsweep --director constraint
`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, opts)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

type options struct {
	difficulty difficultyValue
	rows, cols int
	mines      int
	seed       int64
	director   directorValue
	layout     string
	fresh      bool
	rules      bool
	dump       bool
	once       bool
	configPath string
	verbose    bool
	logLevel   string
}

func newOptions() *options {
	return &options{
		difficulty: difficultyValue(game.Easy),
		director:   directorNone,
		fresh:      true,
		rules:      true,
	}
}

func (o *options) register(flags *pflag.FlagSet) {
	flags.VarP(&o.difficulty, "difficulty", "d", "Board preset: easy (8x8, 10 mines), medium (16x16, 40 mines) or hard (24x24, 99 mines)")
	flags.IntVarP(&o.rows, "rows", "r", 0, fmt.Sprintf("Custom number of rows (%d-%d), overriding the difficulty", game.MinRows, game.MaxRows))
	flags.IntVarP(&o.cols, "cols", "c", 0, fmt.Sprintf("Custom number of columns (%d-%d), overriding the difficulty", game.MinCols, game.MaxCols))
	flags.IntVarP(&o.mines, "mines", "m", 0, "Custom number of mines, overriding the difficulty")
	flags.Int64VarP(&o.seed, "seed", "s", 0, "Seed for mine placement (0 = random)")
	flags.Var(&o.director, "director", `Make the computer play:
none: read moves from the terminal
random: reveal random cells
constraint: deduce moves from the revealed numbers`)
	flags.StringVarP(&o.layout, "layout", "l", "", "Play the board stored in a YAML snapshot file")
	flags.BoolVar(&o.fresh, "fresh", true, "Hide every cell of the layout before playing")
	flags.BoolVar(&o.rules, "rules", true, "Print the rules before the first game")
	flags.BoolVar(&o.dump, "dump", false, "Print a YAML snapshot of each board when its game ends")
	flags.BoolVar(&o.once, "once", false, "Exit after a single game")
	flags.StringVar(&o.configPath, "config", "", "YAML config file providing defaults for these flags")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "Log debug information")
}

// applyFileConfig copies values from the config file for every flag not set
// on the command line
func (o *options) applyFileConfig(flags *pflag.FlagSet, config *fileConfig) error {
	unset := func(name string) bool {
		return !flags.Changed(name)
	}

	if config.Difficulty != "" && unset("difficulty") {
		if err := o.difficulty.Set(config.Difficulty); err != nil {
			return err
		}
	}
	if config.Rows != 0 && unset("rows") {
		o.rows = config.Rows
	}
	if config.Cols != 0 && unset("cols") {
		o.cols = config.Cols
	}
	if config.Mines != 0 && unset("mines") {
		o.mines = config.Mines
	}
	if config.Seed != 0 && unset("seed") {
		o.seed = config.Seed
	}
	if config.Director != "" && unset("director") {
		if err := o.director.Set(config.Director); err != nil {
			return err
		}
	}
	if config.Layout != "" && unset("layout") {
		o.layout = config.Layout
	}
	if config.Rules != nil && unset("rules") {
		o.rules = *config.Rules
	}
	if config.Dump != nil && unset("dump") {
		o.dump = *config.Dump
	}
	if config.PlayAgain != nil && unset("once") {
		o.once = !*config.PlayAgain
	}
	o.logLevel = config.LogLevel

	return nil
}

func (o *options) boardDifficulty() game.Difficulty {
	difficulty := game.Difficulty(o.difficulty)
	if o.rows == 0 && o.cols == 0 && o.mines == 0 {
		return difficulty
	}

	custom := game.Custom(difficulty.Rows, difficulty.Cols, difficulty.NumMines)
	if o.rows != 0 {
		custom.Rows = o.rows
	}
	if o.cols != 0 {
		custom.Cols = o.cols
	}
	if o.mines != 0 {
		custom.NumMines = o.mines
	}
	return custom
}

func (o *options) gameConfig() (game.GameConfig, error) {
	config := game.NewGameConfig()

	difficulty := o.boardDifficulty()
	if err := difficulty.Validate(config.Bounds); err != nil {
		return config, errors.Wrapf(err, "difficulty %s", difficulty.Name)
	}
	config.SetDifficulty(difficulty)

	config.Seed = o.seed
	config.Director = o.director.newDirector(o.seed)
	config.ShowRules = o.rules
	config.DumpSnapshots = o.dump
	config.PlayAgain = !o.once

	if o.layout != "" {
		layoutBytes, err := os.ReadFile(o.layout)
		if err != nil {
			return config, errors.Wrapf(err, "unable to read layout %s", o.layout)
		}
		snapshot, err := game.LoadSnapshot(string(layoutBytes))
		if err != nil {
			return config, errors.Wrapf(err, "unable to load layout %s", o.layout)
		}
		config.Snapshot = snapshot
		config.LoadSnapshotFresh = o.fresh
	}

	return config, nil
}

func (o *options) setupLogging() error {
	return setupLogging(o.logLevel, o.verbose)
}

func setupLogging(levelName string, verbose bool) error {
	logLevel := logrus.InfoLevel
	if levelName != "" {
		level, err := logrus.ParseLevel(levelName)
		if err != nil {
			return errors.Wrap(err, "invalid log level")
		}
		logLevel = level
	}
	if verbose {
		logLevel = logrus.DebugLevel
	}

	for _, logger := range []*logrus.Logger{log, game.Log} {
		logger.SetLevel(logLevel)
		logger.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	}
	return nil
}

func run(cmd *cobra.Command, o *options) error {
	flags := cmd.Flags()

	if o.configPath != "" {
		config, err := loadFileConfig(o.configPath)
		if err != nil {
			return err
		}
		if err := o.applyFileConfig(flags, config); err != nil {
			return err
		}
		log.WithFields(config.Fields()).Debug("config file")
	}

	if err := o.setupLogging(); err != nil {
		return err
	}

	gameConfig, err := o.gameConfig()
	if err != nil {
		return err
	}
	log.WithFields(gameConfig.Fields()).Debug("game config")

	return game.Run(gameConfig, cmd.InOrStdin(), cmd.OutOrStdout())
}

type difficultyValue game.Difficulty

func (value *difficultyValue) String() string {
	return value.Name
}

func (value *difficultyValue) Set(name string) error {
	difficulty, isValid := game.DifficultyByName(name)
	if !isValid {
		return fmt.Errorf("invalid difficulty %q", name)
	}
	*value = difficultyValue(difficulty)
	return nil
}

func (value *difficultyValue) Type() string {
	return "game.Difficulty"
}

type directorValue string

const (
	directorNone       directorValue = "none"
	directorRandom     directorValue = "random"
	directorConstraint directorValue = "constraint"
)

func (value *directorValue) String() string {
	return string(*value)
}

func (value *directorValue) Set(name string) error {
	switch director := directorValue(strings.ToLower(name)); director {
	case directorNone, directorRandom, directorConstraint:
		*value = director
		return nil
	default:
		return fmt.Errorf("invalid director %q", name)
	}
}

func (value *directorValue) Type() string {
	return "game.Director"
}

func (value directorValue) newDirector(seed int64) game.Director {
	switch value {
	case directorRandom:
		return &random.Director{Seed: seed}
	case directorConstraint:
		return &constraint.Director{Seed: seed}
	default:
		return nil
	}
}

func init() {
	opts.register(rootCmd.Flags())
	rootCmd.AddCommand(benchCmd)
}

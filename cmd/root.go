package cmd

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/they4kman/squaresweep/console"
	"github.com/they4kman/squaresweep/director/constraint"
	"github.com/they4kman/squaresweep/director/random"
	"github.com/they4kman/squaresweep/game"
)

var log = logrus.New()

type options struct {
	game.GameConfig

	configPath   string
	directorName string
	logLevel     string
	dump         bool
}

func newRootCmd() *cobra.Command {
	opts := options{GameConfig: game.NewGameConfig()}

	rootCmd := &cobra.Command{
		Use:   "squaresweep",
		Short: "Play Minesweeper on a square grid in the terminal",
		Long: `squaresweep is a console Minesweeper game on a square grid,
played by a human or by the computer.

Run with no arguments to be asked for the grid size and mine count
	squaresweep

Pick the board up front
	squaresweep -s 8 -m 10

Use the director flag to make the computer play for you
	squaresweep -s 8 -m 10 --director constraint
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.load(cmd); err != nil {
				return err
			}
			return run(opts, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	flags := rootCmd.Flags()
	flags.IntVarP(&opts.Size, "size", "s", 0, "Cells per side of the board (2-26); asked for when omitted")
	flags.IntVarP(&opts.NumMines, "mines", "m", 0, "Number of mines, at most 35% of the cells; asked for when omitted")
	flags.Int64Var(&opts.Seed, "seed", 0, "Seed for mine placement (0 seeds from the clock)")
	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML file with size, mines and seed")
	flags.StringVarP(&opts.directorName, "director", "d", "", `Make the computer play.
random: reveal cells at random
constraint: reveal cells proven safe, guessing only when stuck`)
	flags.StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	flags.BoolVar(&opts.dump, "dump", false, "Print the final board as YAML after each game")

	return rootCmd
}

// load applies the config file under any flags given explicitly
func (opts *options) load(cmd *cobra.Command) error {
	level, err := logrus.ParseLevel(opts.logLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)
	game.Log.SetLevel(level)
	random.Log.SetLevel(level)
	constraint.Log.SetLevel(level)

	if _, err := newDirector(opts.directorName, nil); err != nil {
		return err
	}

	if opts.configPath == "" {
		return nil
	}

	fileConfig, err := game.LoadGameConfig(opts.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("size") {
		opts.Size = fileConfig.Size
	}
	if !flags.Changed("mines") {
		opts.NumMines = fileConfig.NumMines
	}
	if !flags.Changed("seed") {
		opts.Seed = fileConfig.Seed
	}

	log.WithFields(logrus.Fields{
		"path":  opts.configPath,
		"size":  opts.Size,
		"mines": opts.NumMines,
		"seed":  opts.Seed,
	}).Debug("loaded config")

	return nil
}

func newDirector(name string, rng *rand.Rand) (game.Director, error) {
	switch name {
	case "":
		return nil, nil
	case "random":
		return random.New(rng), nil
	case "constraint":
		return constraint.New(rng), nil
	default:
		return nil, fmt.Errorf("invalid director %q (expected random or constraint)", name)
	}
}

func run(opts options, in io.Reader, out io.Writer) error {
	prompter := console.NewPrompter(in, out)
	printer := console.NewPrinter(out)
	config := opts.GameConfig

	if config.Size != 0 && config.NumMines != 0 {
		if err := config.Validate(); err != nil {
			return err
		}
	}

	for {
		fmt.Fprintln(out, "Welcome to Minesweeper!")

		if err := askConfig(&config, prompter); err != nil {
			return ignoreEOF(err)
		}

		board, err := config.CreateBoard()
		if err != nil {
			return err
		}

		var director game.Director
		if opts.directorName != "" {
			director, _ = newDirector(opts.directorName, board.Rand())
		}

		session := &session{board: board, prompter: prompter, printer: printer, out: out}
		status, err := session.play(director)
		if err != nil {
			return ignoreEOF(err)
		}

		log.WithFields(logrus.Fields{
			"size":     board.Size(),
			"mines":    board.MineCount(),
			"revealed": board.RevealedCount(),
			"status":   status,
		}).Info("game over")

		if opts.dump {
			serialized, err := board.Snapshot(true).Serialize()
			if err != nil {
				return err
			}
			fmt.Fprint(out, serialized)
		}

		again, err := prompter.PlayAgain()
		if err != nil || !again {
			return ignoreEOF(err)
		}

		// New settings are asked for unless they were given up front
		config.Seed = board.Rand().Int63()
		if opts.Size == 0 {
			config.Size = 0
		}
		if opts.NumMines == 0 {
			config.NumMines = 0
		}
	}
}

func askConfig(config *game.GameConfig, prompter *console.Prompter) error {
	var err error
	if config.Size == 0 {
		if config.Size, err = prompter.ReadGridSize(); err != nil {
			return err
		}
	}
	if config.NumMines == 0 {
		if config.NumMines, err = prompter.ReadMineCount(config.Size); err != nil {
			return err
		}
	}
	return config.Validate()
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

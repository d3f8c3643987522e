// minesweeper plays minesweeper in the terminal.
//
// Usage:
//
//	minesweeper play    - Play interactively
//	minesweeper run     - Read commands from stdin, write JSON snapshots to stdout
//
// Global flags:
//
//	--config <path>   - YAML config file (default: minesweeper.yaml if present)
//	--params WxH(M)   - Board size and mine count, e.g. 30x16(99)
//	--width, --height - Board size
//	--mines <count>   - Number of mines, clamped to the board
//	--uniform         - Place mines without probe bias
//	--seed <value>    - RNG seed for reproducible boards
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/mines"
)

const defaultConfigPath = "minesweeper.yaml"

var (
	flagConfig  string
	flagParams  string
	flagWidth   int
	flagHeight  int
	flagMines   int
	flagUniform bool
	flagSeed    uint64
	flagDev     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "minesweeper",
	Short: "Minesweeper in your terminal",
	Long: `Minesweeper clears a board of hidden mines one cell at a time.

Settings come from defaults, then the YAML config file, then MINES_*
environment variables, then flags.

Examples:
  minesweeper play
  minesweeper play --width 30 --height 16 --mines 99
  minesweeper play --params '30x16(99)'
  echo "o 3 3" | minesweeper run --seed 7`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flagConfig, "config", "c", "", "config file path")
	pf.StringVarP(&flagParams, "params", "p", "", "board as WxH(M), e.g. 16x16(40)")
	pf.IntVar(&flagWidth, "width", 0, "board width")
	pf.IntVar(&flagHeight, "height", 0, "board height")
	pf.IntVarP(&flagMines, "mines", "m", 0, "mine count")
	pf.BoolVar(&flagUniform, "uniform", false, "uniform mine placement")
	pf.Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random)")
	pf.BoolVar(&flagDev, "dev", false, "development logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(runCmd)
}

// loadConfig layers the flags the user actually set over the file and
// environment. --width, --height and --mines win over --params.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if flagConfig != "" {
		cfg, err = config.Load(flagConfig)
	} else {
		cfg, err = config.LoadOptional(defaultConfigPath)
	}
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("params") {
		p, err := mines.ParseGameParams(flagParams)
		if err != nil {
			return nil, err
		}
		cfg.Width, cfg.Height, cfg.MineCount = p.Width, p.Height, p.MineCount
	}
	if flags.Changed("width") {
		cfg.Width = flagWidth
	}
	if flags.Changed("height") {
		cfg.Height = flagHeight
	}
	if flags.Changed("mines") {
		cfg.MineCount = flagMines
	}
	if flags.Changed("uniform") {
		cfg.Uniform = flagUniform
	}
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("dev") {
		cfg.Development = flagDev
	}
	return cfg, nil
}

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tverdon/minegrid/game"
	"github.com/tverdon/minegrid/scores"
	"github.com/tverdon/minegrid/settings"
	"github.com/tverdon/minegrid/storage"
)

var gameConfig = game.Beginner

var (
	preset       string
	dataDir      string
	snapshotsDir string
	snapshotPath string
	nickname     string
	showScores   bool
	clearScores  bool
	verbose      bool
)

var presets = map[string]game.Config{
	"beginner":     game.Beginner,
	"intermediate": game.Intermediate,
	"expert":       game.Expert,
}

var rootCmd = &cobra.Command{
	Use:   "minegrid",
	Short: "Clear the grid without opening a mine",
	Long: `minegrid is a terminal grid-clearing puzzle. Open every safe
cell before opening a mine; best times are kept per board size.

Run with no arguments for a beginner 9x9 board
	minegrid

Pick a preset, or size the board yourself
	minegrid --preset expert
	minegrid -w 24 -h 20 --mines 70
`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		} else {
			logrus.SetLevel(logrus.WarnLevel)
		}

		if preset != "" {
			presetConfig, isValid := presets[preset]
			if !isValid {
				return fmt.Errorf("unknown preset %q", preset)
			}
			gameConfig = presetConfig
		}
		if err := gameConfig.Validate(); err != nil {
			return err
		}

		store := openStore()
		table := scores.Load(store)
		userSettings := settings.Load(store)
		if nickname != "" {
			userSettings.Nickname = nickname
			userSettings.Save(store)
		}

		switch {
		case clearScores:
			table.Clear()
			fmt.Println("Best times cleared.")
			return nil
		case showScores:
			printScores(table, gameConfig)
			return nil
		}

		return play(table, userSettings)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openStore opens the on-disk store, falling back to memory when the
// data directory is unusable.
func openStore() storage.Store {
	dir := dataDir
	if dir == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			logrus.WithError(err).Warn("no config directory; best times will not persist")
			return storage.MemStore{}
		}
		dir = filepath.Join(configDir, "minegrid")
	}

	store, err := storage.NewFileStore(dir)
	if err != nil {
		logrus.WithError(err).Warn("data directory unusable; best times will not persist")
		return storage.MemStore{}
	}
	return store
}

func printScores(table *scores.Table, config game.Config) {
	fmt.Printf("Best times — %s\n", config.Label())

	entries := table.Entries(config)
	if len(entries) == 0 {
		fmt.Println("  (no times recorded)")
		return
	}
	for i, entry := range entries {
		fmt.Printf("  %d. %-12s %3ds\n", i+1, entry.Name, entry.Time)
	}
}

func init() {
	// Define our root --help without a shorthand, as we'll use -h for --height
	// Ref: https://github.com/spf13/cobra/issues/291
	rootCmd.Flags().Bool("help", false, "Help for this command")

	rootCmd.Flags().IntVarP(&gameConfig.Cols, "width", "w", game.Beginner.Cols, "Width of game board, in cells")
	rootCmd.Flags().IntVarP(&gameConfig.Rows, "height", "h", game.Beginner.Rows, "Height of game board, in cells")
	rootCmd.Flags().IntVarP(&gameConfig.Mines, "mines", "m", game.Beginner.Mines, "Number of mines to place in the game board")
	rootCmd.Flags().Int64Var(&gameConfig.Seed, "seed", 0, "Mine placement seed (0 seeds from the clock)")
	rootCmd.Flags().StringVarP(&preset, "preset", "p", "", "Board preset: beginner, intermediate or expert")
	rootCmd.Flags().StringVar(&dataDir, "data-dir", "", "Directory for best times and settings")
	rootCmd.Flags().StringVar(&snapshotsDir, "save-snapshots", "", "Directory where finished boards are saved")
	rootCmd.Flags().StringVar(&snapshotPath, "snapshot", "", "Play the mine layout from a saved board snapshot")
	rootCmd.Flags().StringVarP(&nickname, "name", "n", "", "Name recorded with your best times")
	rootCmd.Flags().BoolVar(&showScores, "scores", false, "Print the best times for the chosen board and exit")
	rootCmd.Flags().BoolVar(&clearScores, "clear-scores", false, "Forget all recorded best times and exit")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

package game

import (
	"fmt"
)

// Config identifies a board class: dimensions plus mine count. It is
// also the leaderboard partition key via Key.
type Config struct {
	Rows, Cols int
	Mines      int

	// Seed drives mine placement and hint selection; zero means seed
	// from the clock.
	Seed int64
}

// The standard difficulty presets.
var (
	Beginner     = Config{Rows: 9, Cols: 9, Mines: 10}
	Intermediate = Config{Rows: 16, Cols: 16, Mines: 40}
	Expert       = Config{Rows: 16, Cols: 30, Mines: 99}
)

func (config Config) Validate() error {
	if config.Rows <= 0 {
		return fmt.Errorf("invalid board height: %d", config.Rows)
	}
	if config.Cols <= 0 {
		return fmt.Errorf("invalid board width: %d", config.Cols)
	}
	if config.Mines <= 0 || config.Mines >= config.Rows*config.Cols {
		return fmt.Errorf("mine count must be between 1 and %d, got %d",
			config.Rows*config.Cols-1, config.Mines)
	}
	return nil
}

// Key is the string under which this board class' best times are kept.
func (config Config) Key() string {
	return fmt.Sprintf("%dx%d-%d", config.Cols, config.Rows, config.Mines)
}

// Label is the display name for this board class: the preset name when
// it matches one, otherwise a generated custom label.
func (config Config) Label() string {
	stripped := Config{Rows: config.Rows, Cols: config.Cols, Mines: config.Mines}

	switch stripped {
	case Beginner:
		return "Beginner"
	case Intermediate:
		return "Intermediate"
	case Expert:
		return "Expert"
	}
	return fmt.Sprintf("custom %dx%d/%d", config.Cols, config.Rows, config.Mines)
}

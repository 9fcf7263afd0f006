package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/tverdon/minegrid/game"
	"github.com/tverdon/minegrid/scores"
	"github.com/tverdon/minegrid/settings"
)

const playHelp = `Commands:
  o ROW COL   open a cell          f ROW COL   toggle a flag
  x           hint (opens a safe cell)
  t           reset the clock      n           new game
  s           best times           q           quit`

// play runs the interactive terminal loop. It is a thin adapter: all
// game decisions live in the game package.
func play(table *scores.Table, userSettings settings.Settings) error {
	session, err := newSession()
	if err != nil {
		return err
	}
	recorded := false

	fmt.Println(playHelp)
	fmt.Println()
	printBoard(session)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Printf("[%03d] %s> ", session.Elapsed(), session.Config().Label())
		if !scanner.Scan() {
			break
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			printBoard(session)
			continue
		}

		switch fields[0] {
		case "o", "open":
			row, col, ok := parseCoords(fields)
			if !ok {
				continue
			}
			if !session.Open(row, col) && session.Status() == game.Lost {
				ding(userSettings)
			}
		case "f", "flag":
			row, col, ok := parseCoords(fields)
			if !ok {
				continue
			}
			session.ToggleFlag(row, col)
		case "x", "hint":
			cell, ok := session.Hint()
			if !ok && !isOver(session) {
				fmt.Println("No safe cells left to hint.")
				continue
			}
			if cell != nil {
				fmt.Printf("Hint: (%d, %d)\n", cell.Row(), cell.Col())
			}
		case "t", "reset":
			session.ResetTimer()
		case "n", "new":
			session, err = newSession()
			if err != nil {
				return err
			}
			recorded = false
		case "s", "scores":
			printScores(table, session.Config())
			continue
		case "q", "quit":
			return nil
		default:
			fmt.Println(playHelp)
			continue
		}

		printBoard(session)

		if isOver(session) && !recorded {
			recorded = true
			finishGame(session, table, userSettings)
		}
	}

	return scanner.Err()
}

func newSession() (*game.Session, error) {
	session, err := loadSession()
	if err != nil {
		return nil, err
	}

	// The terminal title carries the running clock.
	session.Timer().OnTick(func(seconds int) {
		fmt.Printf("\033]0;minegrid %03d\007", seconds)
	})

	return session, nil
}

func loadSession() (*game.Session, error) {
	if snapshotPath == "" {
		return game.NewSession(gameConfig)
	}

	raw, err := os.ReadFile(snapshotPath)
	if err != nil {
		return nil, err
	}
	snapshot, err := game.LoadSnapshot(string(raw))
	if err != nil {
		return nil, err
	}
	return snapshot.CreateSession(true)
}

func isOver(session *game.Session) bool {
	return session.Status() == game.Won || session.Status() == game.Lost
}

func finishGame(session *game.Session, table *scores.Table, userSettings settings.Settings) {
	fmt.Printf("%s  (%03d seconds", session.Status(), session.Elapsed())
	if session.HintsUsed() > 0 {
		fmt.Printf(", %d hints", session.HintsUsed())
	}
	fmt.Println(")")

	if session.Status() == game.Won {
		ding(userSettings)

		name := userSettings.Nickname
		if name == "" {
			name = scores.DefaultName
		}
		table.RecordWin(session.Config(), scores.Entry{Name: name, Time: session.Elapsed()})
		printScores(table, session.Config())
	}

	if snapshotsDir != "" {
		if err := session.WriteSnapshot(snapshotsDir); err != nil {
			logrus.WithError(err).Warn("could not save board snapshot")
		}
	}

	fmt.Println(`Press "n" for a new game.`)
}

func ding(userSettings settings.Settings) {
	if userSettings.SoundEnabled {
		fmt.Print("\a")
	}
}

func parseCoords(fields []string) (int, int, bool) {
	if len(fields) != 3 {
		fmt.Println("Usage:", fields[0], "ROW COL")
		return 0, 0, false
	}

	row, errRow := strconv.Atoi(fields[1])
	col, errCol := strconv.Atoi(fields[2])
	if errRow != nil || errCol != nil {
		fmt.Println("Usage:", fields[0], "ROW COL")
		return 0, 0, false
	}
	return row, col, true
}

func printBoard(session *game.Session) {
	board := session.Board()

	fmt.Printf("%03d mines  %s\n", session.MinesRemaining(), session.Status())

	fmt.Print("    ")
	for col := 0; col < board.Cols(); col++ {
		fmt.Printf("%2d", col%100)
	}
	fmt.Println()

	for row := 0; row < board.Rows(); row++ {
		fmt.Printf("%3d ", row)
		for col := 0; col < board.Cols(); col++ {
			fmt.Printf(" %s", cellGlyph(board.CellAt(row, col)))
		}
		fmt.Println()
	}
}

func cellGlyph(cell *game.Cell) string {
	switch {
	case cell.IsWrongFlag():
		return "X"
	case cell.IsOpen() && cell.IsMine():
		return "*"
	case cell.IsFlagged():
		return "F"
	case !cell.IsOpen():
		return "#"
	case cell.Adjacent() == 0:
		return "."
	default:
		return strconv.Itoa(cell.Adjacent())
	}
}

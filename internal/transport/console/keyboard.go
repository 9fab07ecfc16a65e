// Package console reads human input from a terminal.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-tournament/internal/player"
)

// Keyboard - reads one integer coordinate per line.
type Keyboard struct {
	scanner *bufio.Scanner
}

func NewKeyboard(in io.Reader) *Keyboard {
	return &Keyboard{
		scanner: bufio.NewScanner(in),
	}
}

// ReadCoordinate - blocks until a non-empty line arrives. Lines that are not integers
// are reported as player.ErrMalformedInput, the end of input as io.EOF.
func (that *Keyboard) ReadCoordinate() (int, error) {
	for that.scanner.Scan() {
		line := strings.TrimSpace(that.scanner.Text())
		if line == "" {
			continue
		}

		coordinate, err := strconv.Atoi(line)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", player.ErrMalformedInput, line)
		}

		return coordinate, nil
	}

	if err := that.scanner.Err(); err != nil {
		return 0, fmt.Errorf("failed to read input: %w", err)
	}

	return 0, io.EOF
}

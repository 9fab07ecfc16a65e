package usecase

import (
	"fmt"
	"io"

	"github.com/rocketscienceinc/tictactoe-tournament/internal/entity"
)

// PrintResults - writes the final score of a tournament.
func PrintResults(out io.Writer, player1Name, player2Name string, tally entity.Tally) {
	fmt.Fprintln(out, "######### Results #########")
	fmt.Fprintf(out, "Player 1, %s won: %d rounds\n", player1Name, tally.Player1Wins)
	fmt.Fprintf(out, "Player 2, %s won: %d rounds\n", player2Name, tally.Player2Wins)
	fmt.Fprintf(out, "Ties: %d\n", tally.Draws)
}

package entity

// Tally - results of a tournament from the point of view of the two configured players.
type Tally struct {
	Player1Wins int `json:"player1_wins"`
	Player2Wins int `json:"player2_wins"`
	Draws       int `json:"draws"`
}

func (that Tally) Rounds() int {
	return that.Player1Wins + that.Player2Wins + that.Draws
}

// Standings - cumulative tallies of every tournament played between two named strategies.
type Standings struct {
	Player1     string `json:"player1"`
	Player2     string `json:"player2"`
	Tournaments int    `json:"tournaments"`
	Tally
}

func NewStandings(player1, player2 string) *Standings {
	return &Standings{
		Player1: player1,
		Player2: player2,
	}
}

// Add - accumulates one tournament result.
func (that *Standings) Add(tally Tally) {
	that.Tournaments++
	that.Player1Wins += tally.Player1Wins
	that.Player2Wins += tally.Player2Wins
	that.Draws += tally.Draws
}

// Key - identifies the matchup, the order of the players matters.
func (that *Standings) Key() string {
	return that.Player1 + ":" + that.Player2
}

package models

import "time"

// TournamentResult is the tally of a finished tournament.
type TournamentResult struct {
	ID            string    `db:"id"`
	PlayerOne     string    `db:"player_one"`
	PlayerTwo     string    `db:"player_two"`
	BoardSize     int       `db:"board_size"`
	WinStreak     int       `db:"win_streak"`
	Rounds        int       `db:"rounds"`
	PlayerOneWins int       `db:"player_one_wins"`
	PlayerTwoWins int       `db:"player_two_wins"`
	Ties          int       `db:"ties"`
	CreatedAt     time.Time `db:"created_at"`
}

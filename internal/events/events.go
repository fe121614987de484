package events

import (
	"ctchen222/Streak-Tac-Toe/internal/game"
	"encoding/json"
	"fmt"
)

// Pub/Sub channel constants
const (
	BoardChannel = "channel:board"
)

// Event types
const (
	TypeBoardChanged = "board_changed"
)

// Event represents a message published via Pub/Sub.
type Event struct {
	Type    string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}

// BoardChangedPayload is the payload for the "board_changed" event.
type BoardChangedPayload struct {
	GameID string              `json:"game_id"`
	Turn   int                 `json:"turn"`
	Mark   game.PlayerMark     `json:"mark"`
	Row    int                 `json:"row"`
	Col    int                 `json:"col"`
	Board  [][]game.PlayerMark `json:"board"`
}

// NewBoardChanged builds the event published after a placement.
func NewBoardChanged(p game.Placement) (Event, error) {
	payload, err := json.Marshal(BoardChangedPayload{
		GameID: p.GameID,
		Turn:   p.Turn,
		Mark:   p.Mark,
		Row:    p.Row,
		Col:    p.Col,
		Board:  p.Board,
	})
	if err != nil {
		return Event{}, fmt.Errorf("failed to marshal board payload: %w", err)
	}
	return Event{Type: TypeBoardChanged, Payload: payload}, nil
}

package bot

import (
	"context"
	"ctchen222/Streak-Tac-Toe/internal/game"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
)

// Strategy names.
const (
	Clever   = "clever"
	Whatever = "whatever"
	Genius   = "genius"
)

var (
	ErrUnknownStrategy  = errors.New("unknown bot strategy")
	ErrNoAvailableMoves = errors.New("no available moves")
)

// Strategies lists every strategy a bot can play.
var Strategies = []string{Clever, Whatever, Genius}

// Bot is a non-interactive game.Player backed by one of the strategies.
type Bot struct {
	strategy string
	rng      *rand.Rand
}

// NewBot creates a bot playing strategy. The name is case-insensitive.
func NewBot(strategy string) (*Bot, error) {
	return NewBotWithSource(strategy, rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// NewBotWithSource is NewBot with an explicit random source.
func NewBotWithSource(strategy string, src rand.Source) (*Bot, error) {
	strategy = strings.ToLower(strategy)
	if !IsStrategy(strategy) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}
	return &Bot{strategy: strategy, rng: rand.New(src)}, nil
}

// IsStrategy reports whether name is a known strategy.
func IsStrategy(name string) bool {
	for _, s := range Strategies {
		if strings.EqualFold(s, name) {
			return true
		}
	}
	return false
}

// Strategy returns the name of the strategy the bot plays.
func (b *Bot) Strategy() string {
	return b.strategy
}

// NextMove implements game.Player.
func (b *Bot) NextMove(_ context.Context, board [][]game.PlayerMark, mark game.PlayerMark) (int, int, error) {
	row, col := CalculateNextMove(board, mark, b.strategy, b.rng.IntN)
	if row == -1 {
		return -1, -1, ErrNoAvailableMoves
	}
	return row, col, nil
}

package render

import (
	"ctchen222/Streak-Tac-Toe/internal/game"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

// Renderer names.
const (
	ConsoleName = "console"
	NoneName    = "none"
	RedisName   = "redis"
)

var (
	ErrUnknownRenderer = errors.New("unknown renderer")
	ErrNoPublisher     = errors.New("redis renderer needs a redis client")
)

// Names lists every renderer New accepts.
var Names = []string{ConsoleName, NoneName, RedisName}

// Options carries what the individual renderers need.
type Options struct {
	Out            io.Writer
	Publisher      Publisher
	Channel        string
	PublishTimeout time.Duration
}

// IsRenderer reports whether name is a known renderer. The check is case-insensitive.
func IsRenderer(name string) bool {
	for _, n := range Names {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}

// New creates the renderer called name.
func New(name string, opts Options) (game.Renderer, error) {
	switch strings.ToLower(name) {
	case ConsoleName:
		if opts.Out == nil {
			opts.Out = io.Discard
		}
		return NewConsole(opts.Out), nil
	case NoneName:
		return Void{}, nil
	case RedisName:
		if opts.Publisher == nil {
			return nil, ErrNoPublisher
		}
		return NewRedis(opts.Publisher, opts.Channel, opts.PublishTimeout), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRenderer, name)
	}
}

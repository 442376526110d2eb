package game

import "github.com/lgbarn/chessnote/internal/chess"

// Option configures a game at construction.
type Option func(*Game)

// WithHeaders copies the given headers into the game.
func WithHeaders(h chess.Headers) Option {
	return func(g *Game) {
		g.headers = h.Clone()
	}
}

// WithHeader sets one header.
func WithHeader(name, value string) Option {
	return func(g *Game) {
		g.headers.Set(name, value)
	}
}

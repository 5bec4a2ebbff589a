// internal/player/interface.go
package player

import (
	"errors"
	"time"
)

// ErrUnsupported is returned when no backend can play a stream.
var ErrUnsupported = errors.New("unsupported stream")

// Media is a stream handed to a backend.
type Media struct {
	URL   string
	Title string
	Radio bool // audio-only station
}

// Interface defines the player contract for dependency injection and testing.
type Interface interface {
	Play(m Media) error
	Stop()
	Toggle() error
	State() State
	Current() *Media
	Position() time.Duration
	SetVolume(level int)
	Volume() int
	SetMuted(muted bool)
	Muted() bool
	Done() <-chan struct{}
}

// Verify backends implement Interface at compile time.
var (
	_ Interface = (*External)(nil)
	_ Interface = (*Audio)(nil)
	_ Interface = (*Router)(nil)
)

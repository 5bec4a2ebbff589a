// Package mpris exposes the player on the session bus so desktop media keys
// and widgets can control it.
package mpris

import (
	"errors"
	"sync"
	"time"

	"github.com/llehouerou/sombox/internal/catalog"
	"github.com/llehouerou/sombox/internal/player"
)

var errDetached = errors.New("mpris: remote not attached to a program")

// Command is a control request coming from the bus.
type Command int

const (
	CmdPlay Command = iota
	CmdPause
	CmdPlayPause
	CmdStop
	CmdNext
	CmdPrevious
	CmdVolume
)

func (c Command) String() string {
	switch c {
	case CmdPlay:
		return "play"
	case CmdPause:
		return "pause"
	case CmdPlayPause:
		return "play-pause"
	case CmdStop:
		return "stop"
	case CmdNext:
		return "next"
	case CmdPrevious:
		return "previous"
	case CmdVolume:
		return "volume"
	}
	return "unknown"
}

// CommandMsg is delivered to the Bubble Tea program. Volume is 0-100 and
// only set for CmdVolume.
type CommandMsg struct {
	Command Command
	Volume  int
}

// Snapshot is what the bus sees of the player.
type Snapshot struct {
	State    player.State
	Channel  *catalog.Channel
	Program  catalog.Program
	Position time.Duration
	Volume   int
	CanZap   bool
}

// Remote is shared between the UI goroutine, which publishes snapshots, and
// the D-Bus goroutine, which reads them and sends commands back.
type Remote struct {
	mu   sync.RWMutex
	snap Snapshot
	send func(CommandMsg)
}

// NewRemote creates a detached remote. Commands fail until Attach.
func NewRemote() *Remote {
	return &Remote{}
}

// Attach sets where commands go, usually tea.Program.Send.
func (r *Remote) Attach(send func(CommandMsg)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.send = send
}

// Update publishes the current player state.
func (r *Remote) Update(s Snapshot) {
	if r == nil {
		return
	}
	if s.Channel != nil {
		ch := *s.Channel
		s.Channel = &ch
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snap = s
}

// Snapshot returns the last published state.
func (r *Remote) Snapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snap
}

func (r *Remote) dispatch(msg CommandMsg) error {
	r.mu.RLock()
	send := r.send
	r.mu.RUnlock()
	if send == nil {
		return errDetached
	}
	send(msg)
	return nil
}

package player

import "time"

// Mock is a test double for Interface.
type Mock struct {
	state     State
	media     *Media
	position  time.Duration
	volume    int
	muted     bool
	playErr   error
	toggleErr error
	playCalls []Media
	stops     int
	done      chan struct{}
}

// NewMock creates a stopped mock at full volume.
func NewMock() *Mock {
	return &Mock{state: Stopped, volume: MaxVolume, done: make(chan struct{})}
}

func (m *Mock) Play(media Media) error {
	m.playCalls = append(m.playCalls, media)
	if m.playErr != nil {
		return m.playErr
	}
	m.media = &media
	m.state = Playing
	m.done = make(chan struct{})
	return nil
}

func (m *Mock) Stop() {
	m.stops++
	m.state = Stopped
	m.media = nil
}

func (m *Mock) Toggle() error {
	if m.toggleErr != nil {
		return m.toggleErr
	}
	switch m.state {
	case Playing:
		m.state = Paused
	case Paused:
		m.state = Playing
	case Stopped:
	}
	return nil
}

func (m *Mock) State() State { return m.state }
func (m *Mock) Current() *Media { return m.media }
func (m *Mock) Position() time.Duration { return m.position }
func (m *Mock) SetVolume(level int) { m.volume = clampVolume(level) }
func (m *Mock) Volume() int { return m.volume }
func (m *Mock) SetMuted(muted bool) { m.muted = muted }
func (m *Mock) Muted() bool { return m.muted }
func (m *Mock) Done() <-chan struct{} { return m.done }

// Test helpers.

func (m *Mock) SetState(s State) { m.state = s }
func (m *Mock) SetPosition(d time.Duration) { m.position = d }
func (m *Mock) SetPlayError(err error) { m.playErr = err }
func (m *Mock) SetToggleError(err error) { m.toggleErr = err }
func (m *Mock) PlayCalls() []Media { return m.playCalls }
func (m *Mock) StopCalls() int { return m.stops }

// Finish simulates the stream ending on its own.
func (m *Mock) Finish() {
	m.state = Stopped
	close(m.done)
}

var _ Interface = (*Mock)(nil)

package player

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"slices"
	"strconv"
	"sync"
	"time"
)

// External plays streams by handing the URL to a media player process.
// A live stream cannot be paused in place, so Toggle stops the process and
// resuming starts it again at the live edge.
type External struct {
	mu      sync.Mutex
	command string
	args    []string
	cmd     *exec.Cmd
	media   *Media
	state   State
	started time.Time
	volume  int
	muted   bool
	done    chan struct{}
	gen     uint64
}

// NewExternal creates a backend that runs command with args followed by the
// stream URL.
func NewExternal(command string, args []string) *External {
	return &External{
		command: command,
		args:    slices.Clone(args),
		volume:  MaxVolume,
		done:    closedChan(),
	}
}

// Play stops any running stream and starts m.
func (e *External) Play(m Media) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.kill()
	e.state = Stopped
	e.media = nil
	if err := e.start(m); err != nil {
		return err
	}
	e.media = &m
	return nil
}

// start launches the process. Caller holds mu.
func (e *External) start(m Media) error {
	bin, err := exec.LookPath(e.command)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrUnsupported, e.command, err)
	}

	args := append(slices.Clone(e.args), e.levelArgs()...)
	args = append(args, m.URL)
	cmd := exec.Command(bin, args...) //nolint:gosec // command comes from user config
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", e.command, err)
	}

	e.gen++
	gen := e.gen
	done := make(chan struct{})
	e.cmd = cmd
	e.done = done
	e.state = Playing
	e.started = time.Now()

	go func() {
		_ = cmd.Wait()
		e.mu.Lock()
		if e.gen == gen {
			e.cmd = nil
			e.state = Stopped
		}
		e.mu.Unlock()
		close(done)
	}()
	return nil
}

// levelArgs passes volume and mute to players known to accept them.
// Changes made while a process runs apply on the next start.
func (e *External) levelArgs() []string {
	if filepath.Base(e.command) != "mpv" {
		return nil
	}
	mute := "no"
	if e.muted {
		mute = "yes"
	}
	return []string{"--volume=" + strconv.Itoa(e.volume), "--mute=" + mute}
}

// kill ends the running process without reporting it as finished on its
// own. Caller holds mu.
func (e *External) kill() {
	e.gen++
	if e.cmd != nil && e.cmd.Process != nil {
		_ = e.cmd.Process.Kill()
	}
	e.cmd = nil
}

// Stop ends playback.
func (e *External) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.kill()
	e.state = Stopped
	e.media = nil
}

// Toggle pauses a playing stream or rejoins a paused one.
func (e *External) Toggle() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch e.state {
	case Playing:
		e.kill()
		e.state = Paused
	case Paused:
		if e.media == nil {
			e.state = Stopped
			return nil
		}
		return e.start(*e.media)
	case Stopped:
	}
	return nil
}

func (e *External) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

func (e *External) Current() *Media {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.media == nil {
		return nil
	}
	m := *e.media
	return &m
}

// Position is the time since the stream was last (re)joined.
func (e *External) Position() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != Playing {
		return 0
	}
	return time.Since(e.started)
}

func (e *External) SetVolume(level int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.volume = clampVolume(level)
}

func (e *External) Volume() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.volume
}

func (e *External) SetMuted(muted bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.muted = muted
}

func (e *External) Muted() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.muted
}

// Done is closed when the current process exits for any reason.
func (e *External) Done() <-chan struct{} {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.done
}

func closedChan() chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}

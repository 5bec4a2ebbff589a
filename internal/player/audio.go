package player

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
)

const speakerRate = beep.SampleRate(44100)

var (
	speakerOnce sync.Once
	speakerErr  error
)

func initSpeaker() error {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(speakerRate, speakerRate.N(time.Second/10))
	})
	return speakerErr
}

// Audio decodes radio streams in-process and plays them on the speaker.
// Pausing drops the connection; resuming reconnects at the live edge.
type Audio struct {
	mu      sync.Mutex
	client  *http.Client
	media   *Media
	state   State
	stream  beep.StreamSeekCloser
	ctrl    *beep.Ctrl
	vol     *effects.Volume
	cancel  context.CancelFunc
	started time.Time
	level   int
	muted   bool
	done    chan struct{}
	gen     uint64
}

// NewAudio creates the in-process backend. A nil client uses a default one
// without a body timeout, since stations stream forever.
func NewAudio(client *http.Client) *Audio {
	if client == nil {
		client = &http.Client{}
	}
	return &Audio{
		client: client,
		level:  MaxVolume,
		done:   closedChan(),
	}
}

func (a *Audio) Play(m Media) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.teardown()
	a.state = Stopped
	a.media = nil
	if err := a.open(m); err != nil {
		return err
	}
	a.media = &m
	return nil
}

// open connects, decodes the stream header and starts the speaker.
// Caller holds mu.
func (a *Audio) open(m Media) error {
	ctx, cancel := context.WithCancel(context.Background())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.URL, nil)
	if err != nil {
		cancel()
		return fmt.Errorf("connect: %w", err)
	}
	req.Header.Set("Icy-MetaData", "0")

	resp, err := a.client.Do(req)
	if err != nil {
		cancel()
		return fmt.Errorf("connect: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		cancel()
		return fmt.Errorf("connect: %s", resp.Status)
	}

	stream, format, err := decodeStream(resp.Body, resp.Header.Get("Content-Type"), m.URL)
	if err != nil {
		resp.Body.Close()
		cancel()
		return err
	}
	if err := initSpeaker(); err != nil {
		stream.Close()
		cancel()
		return fmt.Errorf("audio output: %w", err)
	}

	var s beep.Streamer = stream
	if format.SampleRate != speakerRate {
		s = beep.Resample(4, format.SampleRate, speakerRate, stream)
	}
	ctrl := &beep.Ctrl{Streamer: s}
	vol := &effects.Volume{
		Streamer: ctrl,
		Base:     2,
		Volume:   levelToGain(a.level),
		Silent:   a.muted || a.level == 0,
	}

	a.gen++
	gen := a.gen
	done := make(chan struct{})
	a.stream, a.ctrl, a.vol = stream, ctrl, vol
	a.cancel = cancel
	a.done = done
	a.state = Playing
	a.started = time.Now()

	// The callback runs under the speaker lock, so it must not take mu.
	speaker.Play(beep.Seq(vol, beep.Callback(func() {
		go a.finished(gen, done)
	})))
	return nil
}

func (a *Audio) finished(gen uint64, done chan struct{}) {
	a.mu.Lock()
	defer a.mu.Unlock()
	// A stale generation was already closed by teardown.
	if a.gen != gen {
		return
	}
	a.closeStream()
	a.state = Stopped
	close(done)
}

// teardown silences and releases the current connection. Caller holds mu.
func (a *Audio) teardown() {
	if a.ctrl == nil {
		return
	}
	a.gen++
	speaker.Lock()
	a.ctrl.Paused = true
	speaker.Unlock()
	speaker.Clear()
	a.closeStream()
	done := a.done
	a.done = closedChan()
	select {
	case <-done:
	default:
		close(done)
	}
}

func (a *Audio) closeStream() {
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
	if a.stream != nil {
		_ = a.stream.Close()
		a.stream = nil
	}
	a.ctrl, a.vol = nil, nil
}

func (a *Audio) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.teardown()
	a.state = Stopped
	a.media = nil
}

func (a *Audio) Toggle() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	switch a.state {
	case Playing:
		a.teardown()
		a.state = Paused
	case Paused:
		if a.media == nil {
			a.state = Stopped
			return nil
		}
		return a.open(*a.media)
	case Stopped:
	}
	return nil
}

func (a *Audio) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

func (a *Audio) Current() *Media {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.media == nil {
		return nil
	}
	m := *a.media
	return &m
}

func (a *Audio) Position() time.Duration {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.state != Playing {
		return 0
	}
	return time.Since(a.started)
}

func (a *Audio) SetVolume(level int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.level = clampVolume(level)
	a.applyLevel()
}

func (a *Audio) Volume() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.level
}

func (a *Audio) SetMuted(muted bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.muted = muted
	a.applyLevel()
}

func (a *Audio) Muted() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.muted
}

// applyLevel pushes volume and mute to the live stream. Caller holds mu.
func (a *Audio) applyLevel() {
	if a.vol == nil {
		return
	}
	speaker.Lock()
	a.vol.Volume = levelToGain(a.level)
	a.vol.Silent = a.muted || a.level == 0
	speaker.Unlock()
}

// Done is closed when the station ends the stream or playback stops.
func (a *Audio) Done() <-chan struct{} {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.done
}

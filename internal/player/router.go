package player

import "time"

// Router sends radio stations to the audio backend and everything else to
// the video backend. Volume and mute are shared by both.
type Router struct {
	video  Interface
	radio  Interface
	active Interface
	level  int
	muted  bool
}

// NewRouter creates a router over two backends. radio may be nil, in which
// case every stream goes to video.
func NewRouter(video, radio Interface) *Router {
	r := &Router{video: video, radio: radio, level: video.Volume()}
	return r
}

func (r *Router) backendFor(m Media) Interface {
	if m.Radio && r.radio != nil {
		return r.radio
	}
	return r.video
}

func (r *Router) Play(m Media) error {
	next := r.backendFor(m)
	if r.active != nil && r.active != next {
		r.active.Stop()
	}
	r.active = next
	next.SetVolume(r.level)
	next.SetMuted(r.muted)
	return next.Play(m)
}

func (r *Router) Stop() {
	if r.active != nil {
		r.active.Stop()
	}
}

func (r *Router) Toggle() error {
	if r.active == nil {
		return nil
	}
	return r.active.Toggle()
}

func (r *Router) State() State {
	if r.active == nil {
		return Stopped
	}
	return r.active.State()
}

func (r *Router) Current() *Media {
	if r.active == nil {
		return nil
	}
	return r.active.Current()
}

func (r *Router) Position() time.Duration {
	if r.active == nil {
		return 0
	}
	return r.active.Position()
}

func (r *Router) SetVolume(level int) {
	r.level = clampVolume(level)
	r.each(func(p Interface) { p.SetVolume(r.level) })
}

func (r *Router) Volume() int { return r.level }

func (r *Router) SetMuted(muted bool) {
	r.muted = muted
	r.each(func(p Interface) { p.SetMuted(muted) })
}

func (r *Router) Muted() bool { return r.muted }

// Done returns the active backend's channel, or nil (never ready) when
// nothing has played yet.
func (r *Router) Done() <-chan struct{} {
	if r.active == nil {
		return nil
	}
	return r.active.Done()
}

func (r *Router) each(fn func(Interface)) {
	fn(r.video)
	if r.radio != nil {
		fn(r.radio)
	}
}

// Package notify provides desktop notifications via D-Bus.
package notify

import (
	"fmt"
	"time"

	"github.com/llehouerou/sombox/internal/catalog"
)

// Urgency is a freedesktop notification priority level.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// Timeout for "now watching" notifications, in ms.
const tunedTimeout = 4000

// Notification contains data for a desktop notification.
type Notification struct {
	Title      string  // Summary text (required)
	Body       string  // Body text (optional, supports basic markup)
	Icon       string  // Path to image file or icon name (optional)
	Timeout    int32   // ms, -1 = server default, 0 = never expire
	ReplacesID uint32  // 0 = new notification, >0 = replace existing
	Urgency    Urgency // Low, Normal, Critical
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify sends a notification and returns its ID.
	// Returns 0 and nil error if notifications are disabled or unavailable.
	Notify(n Notification) (uint32, error)
	// Close closes a notification by ID.
	Close(id uint32) error
}

// nop drops every notification.
type nop struct{}

func (nop) Notify(Notification) (uint32, error) { return 0, nil }
func (nop) Close(uint32) error { return nil }

// Tuned builds the notification shown when a channel starts playing.
func Tuned(ch catalog.Channel, now time.Time) Notification {
	prog := catalog.NowPlaying(ch, now)
	icon := "video-display"
	verb := "Now watching"
	if ch.IsRadio() {
		icon = "audio-x-generic"
		verb = "Now listening"
	}
	return Notification{
		Title:   fmt.Sprintf("%s %s", verb, ch.Name),
		Body:    fmt.Sprintf("%s\n%s · %s", prog.Title, ch.Category, ch.Country),
		Icon:    icon,
		Timeout: tunedTimeout,
		Urgency: UrgencyLow,
	}
}

// Replacer sends notifications that replace the previous one it sent, so
// zapping through channels leaves a single popup on screen.
type Replacer struct {
	notifier Notifier
	last     uint32
}

// NewReplacer wraps n. A nil notifier makes Send a no-op.
func NewReplacer(n Notifier) *Replacer {
	return &Replacer{notifier: n}
}

// Send shows notif in place of the previous notification.
func (r *Replacer) Send(notif Notification) error {
	if r == nil || r.notifier == nil {
		return nil
	}
	notif.ReplacesID = r.last
	id, err := r.notifier.Notify(notif)
	if err != nil {
		return fmt.Errorf("notify: %w", err)
	}
	r.last = id
	return nil
}

// Dismiss closes the last notification, if any.
func (r *Replacer) Dismiss() error {
	if r == nil || r.notifier == nil || r.last == 0 {
		return nil
	}
	id := r.last
	r.last = 0
	return r.notifier.Close(id)
}

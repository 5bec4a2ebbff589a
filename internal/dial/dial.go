// Package dial accumulates channel numbers typed on the number keys.
package dial

import (
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultTimeout is the idle time after which a partial number is dropped.
const DefaultTimeout = 2 * time.Second

// ExpiredMsg is delivered when the idle timer armed by a digit fires.
type ExpiredMsg struct {
	Version uint64
}

// Buffer holds the digits typed so far.
//
// Numbers are 1-based positions in the collection currently on screen.
// Matching is greedy: every digit is matched as soon as it is typed, and the
// buffer stays open while a longer number could still match, so "1" "2"
// selects #1 and then #12.
type Buffer struct {
	digits  string
	version uint64
	timeout time.Duration
}

// New returns an empty buffer. A non-positive timeout uses DefaultTimeout.
func New(timeout time.Duration) *Buffer {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Buffer{timeout: timeout}
}

// Digits returns the pending digits.
func (b *Buffer) Digits() string {
	return b.digits
}

// Active reports whether digits are pending.
func (b *Buffer) Active() bool {
	return b.digits != ""
}

// Version identifies the most recent digit. Timers carry it back.
func (b *Buffer) Version() uint64 {
	return b.version
}

// Timeout returns the idle timeout.
func (b *Buffer) Timeout() time.Duration {
	return b.timeout
}

// Digit appends d and looks the number up in a collection of length items.
// It returns the matched index (or -1) and the command arming the idle
// timer. Non-digit runes are ignored.
func (b *Buffer) Digit(d rune, length int) (int, tea.Cmd) {
	if d < '0' || d > '9' {
		return -1, nil
	}
	b.version++

	// A number can never have more digits than the largest display number;
	// typing past that starts a new number.
	if len(b.digits) >= len(strconv.Itoa(max(length, 1))) {
		b.digits = ""
	}
	b.digits += string(d)

	n, _ := strconv.Atoi(b.digits)
	match := -1
	if n >= 1 && n <= length {
		match = n - 1
		if n*10 > length {
			b.digits = ""
			return match, nil
		}
	}
	return match, b.tick()
}

// Expire clears the buffer if version is still the latest. It reports
// whether the buffer was cleared.
func (b *Buffer) Expire(version uint64) bool {
	if version != b.version || b.digits == "" {
		return false
	}
	b.digits = ""
	return true
}

// Cancel drops pending digits and invalidates armed timers.
func (b *Buffer) Cancel() {
	b.digits = ""
	b.version++
}

func (b *Buffer) tick() tea.Cmd {
	v := b.version
	return tea.Tick(b.timeout, func(time.Time) tea.Msg {
		return ExpiredMsg{Version: v}
	})
}

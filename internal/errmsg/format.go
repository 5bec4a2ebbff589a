// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import (
	"errors"
	"fmt"
)

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Playback
	OpPlaybackStart  Op = "start playback"
	OpPlaybackToggle Op = "pause playback"
	OpPlaybackZap    Op = "switch channel"

	// Catalog
	OpPlaylistLoad Op = "load playlist"
	OpChannelFind  Op = "find channel"

	// Persistence
	OpFavoriteToggle Op = "update favorites"
	OpFavoritesLoad  Op = "load favorites"
	OpHistoryRecord  Op = "record watch history"
	OpSessionLoad    Op = "restore last session"
	OpSessionSave    Op = "save session"
	OpVolumeSave     Op = "save volume"

	// Desktop integration
	OpNotify Op = "send notification"
	OpRemote Op = "start media remote"

	// Initialization
	OpConfigLoad Op = "load configuration"
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}

// Error pairs an operation with its cause so it can travel as a message
// and be formatted where it is displayed.
type Error struct {
	Op      Op
	Context string
	Err     error
}

// Wrap returns nil when err is nil.
func Wrap(op Op, context string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Context: context, Err: err}
}

func (e *Error) Error() string { return FormatWith(e.Op, e.Context, e.Err) }

func (e *Error) Unwrap() error { return e.Err }

// Message formats any error for display, using the operation when err
// carries one.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Error()
	}
	return err.Error()
}

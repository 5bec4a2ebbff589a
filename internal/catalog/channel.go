// Package catalog holds the channel line-up: channels, countries, the home
// menu cards and the synthetic programme schedule.
package catalog

import (
	"errors"
	"strings"
	"unicode"
)

var (
	// ErrNotFound is returned when a channel id is unknown.
	ErrNotFound = errors.New("channel not found")
	// ErrEmptyPlaylist is returned when an imported playlist has no entries.
	ErrEmptyPlaylist = errors.New("playlist has no channels")
)

// Kind distinguishes video channels from radio stations.
type Kind int

const (
	KindTV Kind = iota
	KindRadio
)

func (k Kind) String() string {
	if k == KindRadio {
		return "radio"
	}
	return "tv"
}

// Channel is one entry of the line-up.
type Channel struct {
	ID          string
	Name        string
	Category    string
	Country     string
	Logo        string
	StreamURL   string
	Description string
	Rating      float64
	Live        bool
	Viewers     int
	Views       int64
	Badges      []string
	Favorite    bool // initial favorite flag, seeds the favorites set
	Kind        Kind
}

// IsRadio reports whether the channel is an audio-only station.
func (c Channel) IsRadio() bool {
	return c.Kind == KindRadio
}

// Initials returns up to two letters used as a logo placeholder.
func (c Channel) Initials() string {
	var b strings.Builder
	for _, word := range strings.Fields(c.Name) {
		r := []rune(word)[0]
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
		if b.Len() >= 2 {
			break
		}
	}
	if b.Len() == 0 {
		return "TV"
	}
	return b.String()
}

// Country is a guide filter entry.
type Country struct {
	ID   string
	Name string
	Code string // two-letter code shown instead of a flag
}

// AllCountries is the name of the catch-all country entry.
const AllCountries = "All"

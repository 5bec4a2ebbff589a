package render

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// Viewers formats a live viewer count: "12,847 watching".
func Viewers(n int) string {
	return humanize.Comma(int64(n)) + " watching"
}

// Views formats a total view count compactly: "4.3M views".
func Views(n int64) string {
	switch {
	case n >= 1_000_000:
		return trimZero(fmt.Sprintf("%.1f", float64(n)/1_000_000)) + "M views"
	case n >= 1_000:
		return trimZero(fmt.Sprintf("%.1f", float64(n)/1_000)) + "K views"
	}
	return fmt.Sprintf("%d views", n)
}

func trimZero(s string) string {
	if len(s) > 2 && s[len(s)-2:] == ".0" {
		return s[:len(s)-2]
	}
	return s
}

// Ago formats t relative to now: "3 minutes ago".
func Ago(t, now time.Time) string {
	return humanize.RelTime(t, now, "ago", "from now")
}

// Clock formats the header time: "20:15".
func Clock(t time.Time) string {
	return t.Format("15:04")
}

// Date formats the header date: "Sunday, Mar 1".
func Date(t time.Time) string {
	return t.Format("Monday, Jan 2")
}

// Remaining formats time left in a programme: "12 min left".
func Remaining(d time.Duration) string {
	m := int(d.Round(time.Minute).Minutes())
	if m < 1 {
		return "ending"
	}
	return fmt.Sprintf("%d min left", m)
}

package catalog

import (
	"hash/fnv"
	"time"
)

// Program is a schedule slot of a channel.
type Program struct {
	Title string
	Start time.Time
	End   time.Time
}

var programTitles = map[string][]string{
	"Movies":        {"Midnight Express", "The Last Detective", "Cosmic Odyssey", "Summer in Lisbon"},
	"Sports":        {"Match Day Live", "Championship Highlights", "Grand Prix Qualifying", "The Locker Room"},
	"News":          {"World Report", "Morning Briefing", "Business Today", "Evening Headlines"},
	"Entertainment": {"Stand-up Night", "Family Quiz", "Talent Show", "Late Night Talk"},
	"Documentary":   {"Animals and Nature", "Nature's Symphony", "Deep Oceans", "Ancient Cities"},
	"Technology":    {"Gadget Lab", "Future Code", "Startup Stories", "Review Roundup"},
	"Radio":         {"Non-stop Music", "Drive Time", "Night Sessions", "Morning Show"},
}

var fallbackTitles = []string{"On Air", "Live Programme", "Special Edition", "Replay"}

// NowPlaying synthesizes the programme airing on ch at now. Slots are 30 or
// 60 minutes, aligned on the hour, and stable for a given channel and time.
func NowPlaying(ch Channel, now time.Time) Program {
	h := hash(ch.ID)
	slot := 30 * time.Minute
	if h%2 == 0 {
		slot = time.Hour
	}
	start := now.Truncate(slot)
	titles, ok := programTitles[ch.Category]
	if !ok {
		titles = fallbackTitles
	}
	n := uint32(start.Unix() / int64(slot.Seconds()))
	return Program{
		Title: titles[(h+n)%uint32(len(titles))],
		Start: start,
		End:   start.Add(slot),
	}
}

// Progress returns the elapsed fraction of p at now, in [0, 1].
func (p Program) Progress(now time.Time) float64 {
	total := p.End.Sub(p.Start)
	if total <= 0 {
		return 0
	}
	f := float64(now.Sub(p.Start)) / float64(total)
	return min(max(f, 0), 1)
}

// Remaining returns the time left in p at now.
func (p Program) Remaining(now time.Time) time.Duration {
	return max(p.End.Sub(now), 0)
}

func hash(s string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s))
	return h.Sum32()
}

package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jamesnetherton/m3u"
)

// RadioGroup is the group-title that marks radio stations in a playlist.
const RadioGroup = "Radio"

// LoadM3U reads an extended M3U playlist from a file path or an http(s) URL.
func LoadM3U(location string) ([]Channel, error) {
	pl, err := m3u.Parse(location)
	if err != nil {
		return nil, fmt.Errorf("read playlist: %w", err)
	}
	return FromPlaylist(pl)
}

// FromPlaylist maps playlist tracks to channels. tvg-id, tvg-name,
// tvg-country, tvg-logo and group-title tags are honoured; tracks without a
// stream URL are skipped. IDs are unique within the result.
func FromPlaylist(pl m3u.Playlist) ([]Channel, error) {
	channels := make([]Channel, 0, len(pl.Tracks))
	ids := make(map[string]bool, len(pl.Tracks))
	for _, tr := range pl.Tracks {
		if tr.URI == "" {
			continue
		}
		ch := trackChannel(tr)
		ch.ID = uniqueID(ids, ch.ID, len(channels)+1)
		channels = append(channels, ch)
	}
	if len(channels) == 0 {
		return nil, ErrEmptyPlaylist
	}
	return channels, nil
}

func trackChannel(tr m3u.Track) Channel {
	ch := Channel{
		Name:      strings.TrimSpace(tr.Name),
		StreamURL: tr.URI,
		Live:      true,
	}
	for _, tag := range tr.Tags {
		switch strings.ToLower(tag.Name) {
		case "tvg-id":
			ch.ID = tag.Value
		case "tvg-name":
			if ch.Name == "" {
				ch.Name = tag.Value
			}
		case "tvg-country":
			ch.Country = tag.Value
		case "tvg-logo":
			ch.Logo = tag.Value
		case "group-title":
			ch.Category = tag.Value
		}
	}
	if ch.Name == "" {
		ch.Name = tr.URI
	}
	if strings.EqualFold(ch.Category, RadioGroup) {
		ch.Kind = KindRadio
		ch.Category = RadioGroup
	}
	return ch
}

// uniqueID claims id in seen. An empty id becomes the position n; a taken
// one gets a -2, -3, ... suffix.
func uniqueID(seen map[string]bool, id string, n int) string {
	if id == "" {
		id = strconv.Itoa(n)
	}
	out := id
	for i := 2; seen[out]; i++ {
		out = id + "-" + strconv.Itoa(i)
	}
	seen[out] = true
	return out
}

//go:build linux

package mpris

import (
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/llehouerou/sombox/internal/player"
)

// Adapter serves a Remote over D-Bus.
type Adapter struct {
	server *server.Server
}

// New creates and starts a new MPRIS adapter.
func New(remote *Remote) (*Adapter, error) {
	a := &Adapter{
		server: server.NewServer("sombox", &rootAdapter{}, &playerAdapter{remote: remote}),
	}
	go func() {
		_ = a.server.Listen()
	}()
	return a, nil
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	return a.server.Stop()
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error { return nil }

// Quit is refused: the terminal owns the lifecycle.
func (r *rootAdapter) Quit() error { return nil }

func (r *rootAdapter) CanQuit() (bool, error) { return false, nil }

func (r *rootAdapter) CanRaise() (bool, error) { return false, nil }

func (r *rootAdapter) HasTrackList() (bool, error) { return false, nil }

func (r *rootAdapter) Identity() (string, error) { return "SomBox TV", nil }

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"http", "https"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/ogg", "audio/flac", "application/vnd.apple.mpegurl"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter. Every method
// runs on the D-Bus goroutine, so it only reads snapshots and sends commands.
type playerAdapter struct {
	remote *Remote
}

func (p *playerAdapter) send(c Command) error {
	return p.remote.dispatch(CommandMsg{Command: c})
}

func (p *playerAdapter) Next() error { return p.send(CmdNext) }
func (p *playerAdapter) Previous() error { return p.send(CmdPrevious) }
func (p *playerAdapter) Pause() error { return p.send(CmdPause) }
func (p *playerAdapter) PlayPause() error { return p.send(CmdPlayPause) }
func (p *playerAdapter) Stop() error { return p.send(CmdStop) }
func (p *playerAdapter) Play() error { return p.send(CmdPlay) }

// Seek is not possible on live streams.
func (p *playerAdapter) Seek(_ types.Microseconds) error { return nil }

func (p *playerAdapter) SetPosition(_ string, _ types.Microseconds) error { return nil }

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error { return nil }

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	switch p.remote.Snapshot().State {
	case player.Playing:
		return types.PlaybackStatusPlaying, nil
	case player.Paused:
		return types.PlaybackStatusPaused, nil
	case player.Stopped:
	}
	return types.PlaybackStatusStopped, nil
}

func (p *playerAdapter) Rate() (float64, error) { return 1.0, nil }

func (p *playerAdapter) SetRate(_ float64) error { return nil }

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	snap := p.remote.Snapshot()
	ch := snap.Channel
	if ch == nil {
		return types.Metadata{}, nil
	}

	meta := types.Metadata{
		TrackId: dbus.ObjectPath(formatTrackID(ch.ID)),
		Length:  types.Microseconds(snap.Program.End.Sub(snap.Program.Start).Microseconds()),
		Title:   snap.Program.Title,
		Artist:  []string{ch.Name},
		Album:   ch.Category,
	}
	if meta.Title == "" {
		meta.Title = ch.Name
	}
	if strings.HasPrefix(ch.Logo, "http://") || strings.HasPrefix(ch.Logo, "https://") {
		meta.ArtUrl = ch.Logo
	}
	return meta, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return float64(p.remote.Snapshot().Volume) / player.MaxVolume, nil
}

func (p *playerAdapter) SetVolume(v float64) error {
	level := int(v*player.MaxVolume + 0.5)
	return p.remote.dispatch(CommandMsg{Command: CmdVolume, Volume: level})
}

func (p *playerAdapter) Position() (int64, error) {
	return p.remote.Snapshot().Position.Microseconds(), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) { return 1.0, nil }

func (p *playerAdapter) MaximumRate() (float64, error) { return 1.0, nil }

func (p *playerAdapter) CanGoNext() (bool, error) { return p.remote.Snapshot().CanZap, nil }

func (p *playerAdapter) CanGoPrevious() (bool, error) { return p.remote.Snapshot().CanZap, nil }

func (p *playerAdapter) CanPlay() (bool, error) { return p.remote.Snapshot().Channel != nil, nil }

func (p *playerAdapter) CanPause() (bool, error) {
	return p.remote.Snapshot().State == player.Playing, nil
}

func (p *playerAdapter) CanSeek() (bool, error) { return false, nil }

func (p *playerAdapter) CanControl() (bool, error) { return true, nil }

func formatTrackID(channelID string) string {
	h := fnv.New64a()
	h.Write([]byte(channelID))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Channel/%x", h.Sum64())
}

package mpris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/sombox/internal/catalog"
	"github.com/llehouerou/sombox/internal/player"
)

func TestRemote_Detached(t *testing.T) {
	r := NewRemote()
	assert.ErrorIs(t, r.dispatch(CommandMsg{Command: CmdNext}), errDetached)
}

func TestRemote_Dispatch(t *testing.T) {
	r := NewRemote()
	var got []CommandMsg
	r.Attach(func(m CommandMsg) { got = append(got, m) })

	require.NoError(t, r.dispatch(CommandMsg{Command: CmdPlayPause}))
	require.NoError(t, r.dispatch(CommandMsg{Command: CmdVolume, Volume: 40}))
	assert.Equal(t, []CommandMsg{
		{Command: CmdPlayPause},
		{Command: CmdVolume, Volume: 40},
	}, got)
}

func TestRemote_SnapshotIsCopied(t *testing.T) {
	r := NewRemote()
	ch := catalog.Channel{ID: "7", Name: "Sports Central"}
	r.Update(Snapshot{State: player.Playing, Channel: &ch, Volume: 55})

	ch.Name = "changed"
	snap := r.Snapshot()
	require.NotNil(t, snap.Channel)
	assert.Equal(t, "Sports Central", snap.Channel.Name)
	assert.Equal(t, player.Playing, snap.State)
	assert.Equal(t, 55, snap.Volume)
}

func TestRemote_NilUpdate(t *testing.T) {
	var r *Remote
	assert.NotPanics(t, func() { r.Update(Snapshot{}) })
}

func TestCommandString(t *testing.T) {
	assert.Equal(t, "next", CmdNext.String())
	assert.Equal(t, "play-pause", CmdPlayPause.String())
	assert.Equal(t, "unknown", Command(42).String())
}

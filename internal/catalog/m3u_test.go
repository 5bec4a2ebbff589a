package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jamesnetherton/m3u"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePlaylist = `#EXTM3U
#EXTINF:-1 tvg-id="news.fr" tvg-country="France" tvg-logo="http://logo/news.png" group-title="News",France Info
http://example.com/franceinfo.m3u8

#EXTINF:-1 tvg-id="nova" group-title="radio",Radio Nova
#EXTVLCOPT:http-user-agent=Mozilla
http://example.com/nova.mp3
`

func writePlaylist(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "list.m3u")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoadM3U(t *testing.T) {
	got, err := LoadM3U(writePlaylist(t, samplePlaylist))
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "news.fr", got[0].ID)
	assert.Equal(t, "France Info", got[0].Name)
	assert.Equal(t, "France", got[0].Country)
	assert.Equal(t, "News", got[0].Category)
	assert.Equal(t, "http://logo/news.png", got[0].Logo)
	assert.Equal(t, "http://example.com/franceinfo.m3u8", got[0].StreamURL)
	assert.Equal(t, KindTV, got[0].Kind)
	assert.True(t, got[0].Live)

	assert.Equal(t, "nova", got[1].ID)
	assert.Equal(t, KindRadio, got[1].Kind)
	assert.Equal(t, RadioGroup, got[1].Category)
	assert.Equal(t, "http://example.com/nova.mp3", got[1].StreamURL)
}

func TestLoadM3U_Errors(t *testing.T) {
	_, err := LoadM3U(writePlaylist(t, "#EXTM3U\n"))
	assert.ErrorIs(t, err, ErrEmptyPlaylist)

	_, err = LoadM3U(writePlaylist(t, "not a playlist\n"))
	assert.Error(t, err)

	_, err = LoadM3U(filepath.Join(t.TempDir(), "missing.m3u"))
	assert.Error(t, err)
}

func TestFromPlaylist_UniqueIDs(t *testing.T) {
	pl := m3u.Playlist{Tracks: []m3u.Track{
		{Name: "First", URI: "http://a"},
		{Name: "Tagged", URI: "http://b", Tags: []m3u.Tag{{Name: "tvg-id", Value: "1"}}},
		{Name: "Dup", URI: "http://c", Tags: []m3u.Tag{{Name: "tvg-id", Value: "1"}}},
		{Name: "Third", URI: "http://d"},
	}}
	got, err := FromPlaylist(pl)
	require.NoError(t, err)

	ids := make([]string, 0, len(got))
	for _, ch := range got {
		ids = append(ids, ch.ID)
	}
	assert.Equal(t, []string{"1", "1-2", "1-3", "4"}, ids)
}

func TestFromPlaylist_Fallbacks(t *testing.T) {
	pl := m3u.Playlist{Tracks: []m3u.Track{
		{Name: "No stream"},
		{URI: "http://bare", Tags: []m3u.Tag{{Name: "TVG-NAME", Value: "Bare TV"}}},
		{URI: "http://anon"},
	}}
	got, err := FromPlaylist(pl)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Bare TV", got[0].Name)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "http://anon", got[1].Name)
	assert.Equal(t, "2", got[1].ID)
}

package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func actionsOf(bindings []Binding) []Action {
	out := make([]Action, 0, len(bindings))
	for _, b := range bindings {
		out = append(out, b.Action)
	}
	return out
}

func TestByContext(t *testing.T) {
	tests := []struct {
		context string
		want    []Action
	}{
		{ContextGlobal, []Action{ActionQuit, ActionHelp, ActionBack}},
		{ContextNav, []Action{ActionUp, ActionDown, ActionLeft, ActionRight, ActionConfirm}},
		{ContextGuide, []Action{ActionFavoritesOnly, ActionCycleCategory, ActionStar}},
		{ContextGrid, []Action{ActionSearch, ActionStar}},
		{ContextPlayer, []Action{
			ActionPlayPause, ActionStop, ActionMute, ActionVolumeUp, ActionVolumeDown,
			ActionFullscreen, ActionChannelUp, ActionChannelDown,
		}},
	}
	for _, tt := range tests {
		t.Run(tt.context, func(t *testing.T) {
			got := ByContext(tt.context)
			assert.Equal(t, tt.want, actionsOf(got))
			for _, b := range got {
				assert.Equal(t, tt.context, b.Context)
			}
		})
	}

	assert.Empty(t, ByContext("unknown"))
}

func TestBindings_Complete(t *testing.T) {
	valid := map[string]bool{
		ContextGlobal: true, ContextNav: true, ContextGuide: true,
		ContextGrid: true, ContextPlayer: true,
	}
	for i, b := range Bindings {
		require.NotEmpty(t, b.Action, "binding %d", i)
		assert.NotEmpty(t, b.Keys, "binding %s", b.Action)
		assert.NotEmpty(t, b.Description, "binding %s", b.Action)
		assert.True(t, valid[b.Context], "binding %s has context %q", b.Action, b.Context)
	}
}

func TestBindings_NoKeyClashWithinContext(t *testing.T) {
	seen := make(map[string]map[string]Action)
	for _, b := range Bindings {
		if seen[b.Context] == nil {
			seen[b.Context] = make(map[string]Action)
		}
		for _, k := range b.Keys {
			if prev, ok := seen[b.Context][k]; ok {
				assert.Equal(t, prev, b.Action, "key %q in %s", k, b.Context)
			}
			seen[b.Context][k] = b.Action
		}
	}
}

// Digits dial channels in the guide, so no binding may claim one.
func TestBindings_DigitsFree(t *testing.T) {
	for _, b := range Bindings {
		for _, k := range b.Keys {
			assert.False(t, len(k) == 1 && k[0] >= '0' && k[0] <= '9', "%s binds %q", b.Action, k)
		}
	}
}

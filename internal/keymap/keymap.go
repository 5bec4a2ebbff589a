package keymap

// Contexts a binding can belong to. Global bindings apply everywhere unless
// a more specific context overrides the key.
const (
	ContextGlobal = "global"
	ContextNav    = "navigation"
	ContextGuide  = "guide"
	ContextGrid   = "grid"
	ContextPlayer = "player"
)

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string
}

// Bindings contains all key bindings.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", ContextGlobal},
	{ActionHelp, []string{"?"}, "Navigation guide", ContextGlobal},
	{ActionBack, []string{"esc", "backspace"}, "Back", ContextGlobal},

	// Navigation
	{ActionUp, []string{"up", "k"}, "Move up", ContextNav},
	{ActionDown, []string{"down", "j"}, "Move down", ContextNav},
	{ActionLeft, []string{"left", "h"}, "Move left", ContextNav},
	{ActionRight, []string{"right", "l"}, "Move right", ContextNav},
	{ActionConfirm, []string{"enter", " "}, "Select", ContextNav},

	// Guide
	{ActionFavoritesOnly, []string{"f"}, "Favorites only", ContextGuide},
	{ActionCycleCategory, []string{"c"}, "Cycle category", ContextGuide},
	{ActionStar, []string{"*"}, "Star channel", ContextGuide},

	// Grid
	{ActionSearch, []string{"/"}, "Search", ContextGrid},
	{ActionStar, []string{"*"}, "Star channel", ContextGrid},

	// Player
	{ActionPlayPause, []string{" "}, "Play/pause", ContextPlayer},
	{ActionStop, []string{"s"}, "Stop", ContextPlayer},
	{ActionMute, []string{"m"}, "Mute", ContextPlayer},
	{ActionVolumeUp, []string{"+", "="}, "Volume up", ContextPlayer},
	{ActionVolumeDown, []string{"-"}, "Volume down", ContextPlayer},
	{ActionFullscreen, []string{"f"}, "Fullscreen", ContextPlayer},
	{ActionChannelUp, []string{"pgup"}, "Channel up", ContextPlayer},
	{ActionChannelDown, []string{"pgdown"}, "Channel down", ContextPlayer},
}

// ByContext returns bindings for a specific context.
func ByContext(ctx string) []Binding {
	var result []Binding
	for _, b := range Bindings {
		if b.Context == ctx {
			result = append(result, b)
		}
	}
	return result
}

// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit Action = "quit"
	ActionHelp Action = "help"
	ActionBack Action = "back"

	// Directional navigation
	ActionUp      Action = "up"
	ActionDown    Action = "down"
	ActionLeft    Action = "left"
	ActionRight   Action = "right"
	ActionConfirm Action = "confirm"

	// Guide and grid
	ActionFavoritesOnly Action = "favorites_only"
	ActionCycleCategory Action = "cycle_category"
	ActionStar          Action = "star"
	ActionSearch        Action = "search"

	// Player
	ActionPlayPause   Action = "play_pause"
	ActionStop        Action = "stop"
	ActionMute        Action = "mute"
	ActionVolumeUp    Action = "volume_up"
	ActionVolumeDown  Action = "volume_down"
	ActionFullscreen  Action = "fullscreen"
	ActionChannelUp   Action = "channel_up"
	ActionChannelDown Action = "channel_down"
)

package popupctl

// Type names a popup the manager can show.
type Type int

const (
	None Type = iota
	Help
	Error
)

// Priority lists popups from the one that receives keys first.
var Priority = []Type{Error, Help}

// RenderOrder lists popups from the bottom of the stack up.
var RenderOrder = []Type{Help, Error}

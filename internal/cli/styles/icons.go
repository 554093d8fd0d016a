package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconCheck    = "" // check
	IconX        = "" // x
	IconConfig   = "" // config
	IconDatabase = "" // database
	IconFolder   = "" // folder
	IconKeyboard = "" // keyboard
	IconEye      = "" // eye
	IconCursor   = "" // chevron-right
	IconRefresh  = "" // refresh
	IconUndo     = "" // rotate-left
)

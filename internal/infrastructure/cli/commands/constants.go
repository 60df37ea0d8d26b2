package commands

// CLI-specific constants
const (
	// DefaultEditorCommand is used when EDITOR is unset.
	DefaultEditorCommand = "vi"
)

// Error messages
const (
	ErrAssistServiceUnavailable = "assist service unavailable"
	ErrDoctorServiceUnavailable = "doctor service unavailable"
	ErrTranscriptsUnavailable   = "transcript store unavailable (history.enabled is false)"
	ErrQueryRequired            = "--query required"
)

// Success messages
const (
	MsgConfigurationValid = "Configuration valid"
	MsgNoHistoryRecorded  = "No conversation history recorded yet."
	MsgHistoryCleared     = "Conversation history cleared."
)

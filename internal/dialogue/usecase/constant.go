package usecase

// Dialogue defaults.
const (
	DefaultHistoryLength       = 7
	DefaultConfidenceThreshold = 0.6
	DefaultMinUtteranceWords   = 2
)

// Canned user-facing messages for paths where the generator is not consulted
// or has failed.
const (
	MsgResetDone        = "Starting fresh. What would you like to do?"
	MsgExtractionFailed = "Sorry, I couldn't work out what you need. Could you rephrase that?"
	MsgHandlerFailed    = "Sorry, I couldn't reach the transit service just now. Please try again in a moment."
)

// Log prefixes.
const (
	logPrefixProcessTurn = "dialogue.usecase.ProcessTurn"
	logPrefixExecute     = "dialogue.usecase.execute"
)

package domain

import "time"

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// SecureFilePermissions is the permission for sensitive files (rw-------)
	SecureFilePermissions = 0o600
)

// Network probing constants
const (
	// DefaultNetworkCacheTTL is how long probe results are reused.
	DefaultNetworkCacheTTL = 30 * time.Second
	// PingTimeout bounds each reachability probe.
	PingTimeout = 3 * time.Second
	// HTTPProbeTimeout bounds each HTTP HEAD fallback probe.
	HTTPProbeTimeout = 5 * time.Second
	// FastNetworkThreshold classifies a round trip as fast.
	FastNetworkThreshold = 1000 * time.Millisecond
)

// Provider timeout constants
const (
	// ConnectTimeout bounds connection establishment for every provider.
	ConnectTimeout = 15 * time.Second
	// ReadTimeoutOnline bounds cloud provider responses.
	ReadTimeoutOnline = 30 * time.Second
	// ReadTimeoutOllama bounds local model responses; offline models are slow.
	ReadTimeoutOllama = 120 * time.Second
)

// Planner constants
const (
	// DefaultStepDelay paces automation steps so the UI can settle.
	DefaultStepDelay = 1500 * time.Millisecond
	// WaitStepDelay is how long an explicit "wait" step sleeps.
	WaitStepDelay = 2 * time.Second
	// DefaultMaxPlanSteps caps how many model-authored steps are executed.
	DefaultMaxPlanSteps = 10
)

// History constants
const (
	// DefaultConversationLimit bounds the in-memory conversation log.
	DefaultConversationLimit = 10
	// DefaultTranscriptListLimit is the default number of transcript rows shown.
	DefaultTranscriptListLimit = 20
)

// Time formats
const (
	// ClockFormat renders spoken time ("3:04 PM").
	ClockFormat = "3:04 PM"
	// DateFormat renders spoken dates ("Monday, January 2, 2006").
	DateFormat = "Monday, January 2, 2006"
	// TimestampFormat is the standard persistence timestamp format.
	TimestampFormat = time.RFC3339
)

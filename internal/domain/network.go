package domain

import "time"

// NetworkStatus is a cached snapshot of connectivity probing. Within the
// cache TTL repeated reads return the same values even if real conditions
// changed.
type NetworkStatus struct {
	Online    bool
	Fast      bool
	CheckedAt time.Time
}

// String collapses the two booleans into the user-facing status label.
func (s NetworkStatus) String() string {
	switch {
	case !s.Online:
		return "Offline"
	case s.Fast:
		return "Online (Fast)"
	default:
		return "Online (Slow)"
	}
}

package utils

import (
	"os"
	"strconv"
	"time"
)

const defaultSessionTTLMinutes = 120

// SessionTTL is how long an idle session keeps its in-memory itinerary and
// how long its token stays valid.
func SessionTTL() time.Duration {
	if v := os.Getenv("SESSION_TTL_MINUTES"); v != "" {
		if minutes, err := strconv.Atoi(v); err == nil && minutes > 0 {
			return time.Duration(minutes) * time.Minute
		}
	}
	return defaultSessionTTLMinutes * time.Minute
}

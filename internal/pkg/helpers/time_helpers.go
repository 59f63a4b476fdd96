package helpers

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// ParseDuration parses a config duration such as "12h", returning def when the value is empty,
// malformed or not positive.
func ParseDuration(value string, def time.Duration) time.Duration {
	value = strings.TrimSpace(value)
	if value == "" {
		return def
	}
	if d, err := time.ParseDuration(value); err == nil && d > 0 {
		return d
	}
	log.Warn().Str("value", value).Dur("default", def).Msg("Failed to parse duration, using default")
	return def
}

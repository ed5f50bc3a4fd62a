package shared

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateNumber returns a human-readable document number such as EST-20260314-7F3A2C
func GenerateNumber(prefix string) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return prefix + "-" + time.Now().Format("20060102") + "-" + suffix
}

// TruncateToDay strips the clock part of t, keeping its location
func TruncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

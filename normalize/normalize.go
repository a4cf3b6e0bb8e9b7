// Package normalize holds the pure field-coercion helpers shared by
// the service adapters: tag lookup, timestamp, size and count
// formatting. No backend calls happen here.
package normalize

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Missing is the sentinel rendered for absent optional fields. A row
// is never dropped because an optional field is missing.
const Missing = "—"

// timeLayout is the one display format used for every timestamp,
// regardless of the backend's native representation.
const timeLayout = "2006-01-02 15:04:05"

// lambdaTimeLayout matches Lambda's LastModified string,
// e.g. 2023-11-14T12:00:00.000+0000.
const lambdaTimeLayout = "2006-01-02T15:04:05.000-0700"

// KV is one tag as an ordered key/value pair.
type KV struct {
	Key   string
	Value string
}

// Lookup returns the value of the first pair matching key, or
// fallback when the key is absent or its value is empty.
func Lookup(kvs []KV, key, fallback string) string {
	for _, kv := range kvs {
		if kv.Key == key && kv.Value != "" {
			return kv.Value
		}
	}
	return fallback
}

// Timestamp renders t in the canonical display format, UTC.
func Timestamp(t *time.Time) string {
	if t == nil || t.IsZero() {
		return Missing
	}
	return t.UTC().Format(timeLayout)
}

// TimestampString re-renders a backend-native timestamp string in the
// canonical display format. Unparseable values pass through as-is so
// a row is never lost to a format change.
func TimestampString(s string) string {
	if s == "" {
		return Missing
	}
	for _, layout := range []string{lambdaTimeLayout, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC().Format(timeLayout)
		}
	}
	return s
}

// MiB renders a byte count in mebibytes, the one size unit used for
// every row of a kind.
func MiB(bytes int64) string {
	return humanize.FormatFloat("#,###.#", float64(bytes)/(1<<20)) + " MiB"
}

// Count renders n with thousands separators.
func Count(n int64) string {
	return humanize.Comma(n)
}

// OrMissing substitutes the sentinel for empty values.
func OrMissing(s string) string {
	if strings.TrimSpace(s) == "" {
		return Missing
	}
	return s
}

// Package render turns a validated letter request into finished prose. One
// pure function per letter type; both share the fallback rules below so date,
// amount, and optional-block behavior never drifts between templates.
package render

import (
	"strings"
	"time"
)

const (
	isoDate  = "2006-01-02"
	longDate = "January 2, 2006"

	datePlaceholder   = "[Date]"
	amountPlaceholder = "[Amount]"
)

// headerDate renders the always-present letter date.
func headerDate(now time.Time) string {
	return now.Format(longDate)
}

// transactionDate renders an ISO date as a long date, an absent date as the
// bracket placeholder, and anything else verbatim. Malformed input is the
// user's text, not an error.
func transactionDate(value string) string {
	if value == "" {
		return datePlaceholder
	}
	if t, err := time.Parse(isoDate, value); err == nil {
		return t.Format(longDate)
	}
	return value
}

// amount renders the numeric part after the "$" prefix. The prefix is emitted
// by the caller in all cases; only the value falls back.
func amount(value string) string {
	if value == "" {
		return amountPlaceholder
	}
	return value
}

// orPlaceholder substitutes fallback for an absent value.
func orPlaceholder(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// writeOptionalBlock emits "label\nvalue\n" so the next paragraph starts on
// the following line, or nothing at all when value is empty. The label is
// never rendered without its content.
func writeOptionalBlock(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	b.WriteString(label)
	b.WriteString("\n")
	b.WriteString(value)
	b.WriteString("\n")
}

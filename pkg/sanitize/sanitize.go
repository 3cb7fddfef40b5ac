// Package sanitize scrubs PII-shaped substrings from user text before it
// reaches the transcript or stored answers. Names are not detected:
// reliable name filtering needs more than pattern matching, so that gap
// is deliberate.
package sanitize

import "regexp"

var (
	phoneRe = regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`)
	emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	ssnRe   = regexp.MustCompile(`\b\d{3}-?\d{2}-?\d{4}\b`)
)

// Scrub replaces phone-, email- and SSN-shaped substrings with fixed
// placeholders, in that order, leftmost-first and non-overlapping. It is
// total: text without matches passes through untouched.
func Scrub(text string) string {
	text = phoneRe.ReplaceAllString(text, "[PHONE NUMBER REMOVED]")
	text = emailRe.ReplaceAllString(text, "[EMAIL REMOVED]")
	text = ssnRe.ReplaceAllString(text, "[SSN REMOVED]")
	return text
}

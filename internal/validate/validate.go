// Package validate holds pure input validators shared by services and
// handlers. None of these touch the network or the database.
package validate

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Email reports whether s looks like a conventional local@domain.tld
// address. No DNS or MX lookup is performed.
func Email(s string) bool {
	return emailPattern.MatchString(s)
}

// Password reports whether s meets the minimum length of 8 characters.
func Password(s string) bool {
	return len(s) >= 8
}

// Phone reports whether s is a usable phone number: after stripping
// whitespace, hyphens, and parentheses it must be all digits and at
// least 10 of them.
func Phone(s string) bool {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case ' ', '\t', '-', '(', ')':
			continue
		}
		b.WriteRune(r)
	}
	cleaned := b.String()
	if len(cleaned) < 10 {
		return false
	}
	for _, r := range cleaned {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// SplitList splits comma-separated free text into trimmed items, dropping
// items that are empty after trimming. Empty input yields an empty list.
func SplitList(s string) []string {
	items := []string{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			items = append(items, part)
		}
	}
	return items
}

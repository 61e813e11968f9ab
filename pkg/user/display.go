package user

import (
	"strings"
	"unicode/utf8"
)

const (
	DefaultMaxLength = 20

	// Two-word short names longer than this collapse to the first word.
	shortNameLimit = 12
	ellipsis       = "..."
)

type DisplayNameOptions struct {
	FullName    string
	UseFullName bool
	// MaxLength caps the full-name form, ellipsis included. Zero or
	// negative means DefaultMaxLength.
	MaxLength int
}

// DisplayName derives a display name from a full name.
//
// With UseFullName the whitespace-normalized name is returned, truncated to
// MaxLength characters with a trailing "...". Otherwise the first two words
// are returned when their combined length is at most 12, else the first word.
func DisplayName(opts DisplayNameOptions) string {
	words := strings.Fields(opts.FullName)
	if len(words) == 0 {
		return ""
	}

	if opts.UseFullName {
		limit := opts.MaxLength
		if limit <= 0 {
			limit = DefaultMaxLength
		}
		return truncate(strings.Join(words, " "), limit)
	}

	first, second := words[0], ""
	if len(words) > 1 {
		second = words[1]
	}
	if utf8.RuneCountInString(first)+utf8.RuneCountInString(second) <= shortNameLimit {
		return strings.TrimSpace(first + " " + second)
	}
	return first
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	cut := limit - len(ellipsis)
	if cut < 0 {
		cut = 0
	}
	return strings.TrimRight(string(runes[:cut]), " ") + ellipsis
}

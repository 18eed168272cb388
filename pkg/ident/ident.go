package ident

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// NewID returns a new opaque unique identifier.
func NewID() string {
	return uuid.New().String()
}

// Initials derives display initials from a name: the first letter of each
// whitespace-separated token, uppercased, truncated to two characters.
func Initials(name string) string {
	initials := make([]rune, 0, 2)
	for _, word := range strings.Fields(name) {
		for _, r := range word {
			initials = append(initials, unicode.ToUpper(r))
			break
		}
		if len(initials) == 2 {
			break
		}
	}
	return string(initials)
}

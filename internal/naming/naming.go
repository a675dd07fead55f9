// Package naming generates filesystem-safe folder names for imported volumes.
package naming

import (
	"fmt"
	"regexp"
)

var (
	// reQuestionMarks matches ? and ¿
	reQuestionMarks = regexp.MustCompile(`[¿?]+`)
	// reIllegalFileChars matches characters not allowed in folder names, with surrounding whitespace
	// Includes: / \ > < * : " |
	reIllegalFileChars = regexp.MustCompile(`\s*[/\\><*:"|]+\s*`)
	// reEndPeriod matches a period at the end of a string
	reEndPeriod = regexp.MustCompile(`\.+$`)
	// reMultiSpace matches multiple whitespace characters
	reMultiSpace = regexp.MustCompile(`\s+`)
)

// Folder returns the destination folder name for a volume: "Name (Year)",
// or just the sanitized name when the start year is unknown.
func Folder(name string, year int) string {
	clean := Sanitize(name)
	if clean == "" {
		clean = "Unknown Volume"
	}
	if year > 0 {
		return fmt.Sprintf("%s (%d)", clean, year)
	}
	return clean
}

// Sanitize makes a volume name safe for use as a folder name.
func Sanitize(s string) string {
	s = reQuestionMarks.ReplaceAllString(s, "")
	s = reIllegalFileChars.ReplaceAllString(s, " - ")
	s = reMultiSpace.ReplaceAllString(s, " ")
	s = trimSpaces(s)
	s = reEndPeriod.ReplaceAllString(s, "")
	return trimSpaces(s)
}

func trimSpaces(s string) string {
	for s != "" && s[0] == ' ' {
		s = s[1:]
	}
	for s != "" && s[len(s)-1] == ' ' {
		s = s[:len(s)-1]
	}
	return s
}

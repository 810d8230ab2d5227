package service

import (
	"strings"
	"unicode/utf8"
)

// sanitizeUTF8 removes invalid UTF-8 sequences from model output
func sanitizeUTF8(s string) string {
	if utf8.ValidString(s) {
		return s
	}

	var result strings.Builder
	result.Grow(len(s))

	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError && size == 1 {
			s = s[1:]
			continue
		}
		result.WriteRune(r)
		s = s[size:]
	}

	return result.String()
}

// stripFences removes a surrounding markdown code fence from model output.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
	} else {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// extractJSON cuts the outermost JSON array or object out of free-form model text.
// It returns the input unchanged when no delimiters are found.
func extractJSON(content string, schemaType SchemaType) string {
	content = stripFences(content)
	open, closing := "{", "}"
	if schemaType == SchemaTypeArray {
		open, closing = "[", "]"
	}
	start := strings.Index(content, open)
	end := strings.LastIndex(content, closing)
	if start == -1 || end == -1 || end < start {
		return content
	}
	return content[start : end+1]
}

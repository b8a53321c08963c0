package textutil

import (
	"strings"
	"unicode"
)

// Normalize canonicalizes a raw product or location key into a display
// label: underscores become spaces, a trailing parenthetical qualifier is
// extracted and re-appended as capitalized tokens, and every token is
// title-cased. "red_onion_(elfora)" becomes "Red Onion Elfora".
//
// The function is total and idempotent: already normalized labels pass
// through unchanged, and malformed parentheses are kept as literal text.
func Normalize(raw string) string {
	s := strings.ReplaceAll(raw, "_", " ")
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	base, qualifier := splitQualifier(s)

	tokens := strings.Fields(base)
	for i, t := range tokens {
		tokens[i] = titleToken(t)
	}
	for _, t := range strings.Fields(qualifier) {
		tokens = append(tokens, titleToken(t))
	}
	return strings.Join(tokens, " ")
}

// splitQualifier detaches a single well-formed trailing "(...)" segment.
// Anything else, including unmatched or non-trailing parentheses, is
// returned untouched as the base.
func splitQualifier(s string) (base, qualifier string) {
	if !strings.HasSuffix(s, ")") {
		return s, ""
	}
	open := strings.LastIndex(s, "(")
	if open < 0 {
		return s, ""
	}
	inner := s[open+1 : len(s)-1]
	if strings.ContainsAny(inner, "()") || strings.TrimSpace(inner) == "" {
		return s, ""
	}
	return strings.TrimSpace(s[:open]), strings.TrimSpace(inner)
}

// titleToken uppercases a letter that starts the token or follows a
// non-letter, and lowercases the rest. Applying it twice gives the same
// result, which keeps Normalize idempotent.
func titleToken(t string) string {
	var b strings.Builder
	b.Grow(len(t))
	prevLetter := false
	for _, r := range t {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}

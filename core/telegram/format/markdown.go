package format

import "strings"

var markdownV2Escaper = strings.NewReplacer(
	"_", "\\_", "*", "\\*", "[", "\\[", "]", "\\]",
	"(", "\\(", ")", "\\)", "~", "\\~", "`", "\\`",
	">", "\\>", "#", "\\#", "+", "\\+", "-", "\\-",
	"=", "\\=", "|", "\\|", "{", "\\{", "}", "\\}",
	".", "\\.", "!", "\\!",
)

// EscapeMarkdown escapes the MarkdownV2 special characters in s so user
// supplied values can be embedded into formatted messages.
func EscapeMarkdown(s string) string {
	return markdownV2Escaper.Replace(s)
}

// Code wraps s in an inline code span, escaping backticks and backslashes.
func Code(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "`", "\\`")
	return "`" + s + "`"
}

// Bold wraps already escaped text in MarkdownV2 bold markers.
func Bold(s string) string {
	return "*" + s + "*"
}

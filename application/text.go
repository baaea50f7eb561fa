package application

import (
	"regexp"
	"strings"
)

var mentionPattern = regexp.MustCompile(`<@!?[0-9]+>`)

// CleanMentions strips addressed-recipient markup and invisible characters
// from message text and trims the result.
func CleanMentions(text string) string {
	text = mentionPattern.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "\r", "")
	text = strings.ReplaceAll(text, "​", "")
	return strings.TrimSpace(text)
}

// CleanLookupTerm reduces message text to a dictionary lookup phrase:
// mention markup gone, surrounding quoting and formatting punctuation
// stripped. An empty result means the message should be dropped.
func CleanLookupTerm(text string) string {
	term := CleanMentions(text)
	term = strings.Trim(term, "`*_ \t")
	return strings.TrimSpace(term)
}

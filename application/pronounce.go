package application

import "strings"

// DefaultAccent is used when the input does not name one.
const DefaultAccent = "us"

// SupportedAccents is the fixed set of accent codes the pronunciation
// feature understands.
var SupportedAccents = []string{"us", "uk", "au", "in", "ca", "ie", "za"}

// PronounceRequest is the parsed form of a pronunciation command input.
type PronounceRequest struct {
	Accent string
	Text   string
}

// ParsePronounceInput interprets free-form pronunciation input in two
// stages: if the leading token matches a supported accent code and more
// text follows, that token is the accent; otherwise the entire input is the
// text to pronounce with the default accent.
func ParsePronounceInput(input string) (PronounceRequest, bool) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return PronounceRequest{}, false
	}

	first := strings.ToLower(fields[0])
	if len(fields) > 1 && isSupportedAccent(first) {
		return PronounceRequest{
			Accent: first,
			Text:   strings.Join(fields[1:], " "),
		}, true
	}

	return PronounceRequest{
		Accent: DefaultAccent,
		Text:   strings.Join(fields, " "),
	}, true
}

func isSupportedAccent(code string) bool {
	for _, a := range SupportedAccents {
		if a == code {
			return true
		}
	}
	return false
}

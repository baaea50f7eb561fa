package application

import "regexp"

// maxRatingEmojis caps how many suggested reactions a rating may carry.
const maxRatingEmojis = 5

var digitEmojis = map[string]string{
	"0": "0️⃣", "1": "1️⃣", "2": "2️⃣",
	"3": "3️⃣", "4": "4️⃣", "5": "5️⃣",
	"6": "6️⃣", "7": "7️⃣", "8": "8️⃣",
	"9": "9️⃣",
}

var (
	ratingLinePattern = regexp.MustCompile(`Rating:\s*([0-9])`)
	emojiLinePattern  = regexp.MustCompile(`Emojis:\s*(.+)`)
	emojiPattern      = regexp.MustCompile(`[\x{1F600}-\x{1F64F}` +
		`\x{1F300}-\x{1F5FF}` +
		`\x{1F680}-\x{1F6FF}` +
		`\x{1F1E0}-\x{1F1FF}` +
		`\x{2700}-\x{27BF}` +
		`\x{1F900}-\x{1F9FF}` +
		`\x{2600}-\x{26FF}]`)
)

// ParseRating extracts a single rating digit and up to five emoji from a
// model response of the form "Rating: <digit>\nEmojis: ...". Missing or
// malformed output falls back to digit "0" and no emoji; parsing never
// fails.
func ParseRating(text string) (digit string, emojis []string) {
	digit = "0"
	if m := ratingLinePattern.FindStringSubmatch(text); m != nil {
		digit = m[1]
	}
	if m := emojiLinePattern.FindStringSubmatch(text); m != nil {
		emojis = emojiPattern.FindAllString(m[1], -1)
		if len(emojis) > maxRatingEmojis {
			emojis = emojis[:maxRatingEmojis]
		}
	}
	return digit, emojis
}

// DigitEmoji maps a rating digit to its keycap emoji, or "" for anything
// that is not a single digit.
func DigitEmoji(digit string) string {
	return digitEmojis[digit]
}

package common

// languageFlags maps ISO 639-1 codes to a representative flag emoji.
var languageFlags = map[string]string{
	"en": "🇺🇸", "fr": "🇫🇷", "es": "🇪🇸", "de": "🇩🇪", "it": "🇮🇹", "pt": "🇵🇹",
	"ar": "🇸🇦", "fa": "🇮🇷", "zh": "🇨🇳", "ru": "🇷🇺", "ko": "🇰🇷",
	"ja": "🇯🇵", "tr": "🇹🇷", "hi": "🇮🇳",
}

// FlagForLanguage returns a flag emoji for a language code, or a globe for
// anything unmapped.
func FlagForLanguage(code string) string {
	if flag, ok := languageFlags[code]; ok {
		return flag
	}
	return "🌐"
}

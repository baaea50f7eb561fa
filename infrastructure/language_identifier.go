package infrastructure

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// UndeterminedLanguage is returned when no language can be identified.
const UndeterminedLanguage = "und"

// LinguaIdentifier detects message languages with the lingua statistical
// models. Building the detector loads the models once; the detector itself
// is safe for concurrent use.
type LinguaIdentifier struct {
	detector lingua.LanguageDetector
}

// NewLinguaIdentifier creates a language identifier covering all languages
// lingua supports.
func NewLinguaIdentifier() *LinguaIdentifier {
	return &LinguaIdentifier{
		detector: lingua.NewLanguageDetectorBuilder().FromAllLanguages().Build(),
	}
}

// Identify returns the ISO 639-1 code and confidence for the given text.
// It never fails: undetermined input yields "und" with zero confidence.
func (l *LinguaIdentifier) Identify(text string) (string, float64) {
	text = strings.TrimSpace(strings.ReplaceAll(text, "\n", " "))
	if text == "" {
		return UndeterminedLanguage, 0
	}

	values := l.detector.ComputeLanguageConfidenceValues(text)
	if len(values) == 0 {
		return UndeterminedLanguage, 0
	}

	top := values[0]
	code := strings.ToLower(top.Language().IsoCode639_1().String())
	if code == "" {
		return UndeterminedLanguage, 0
	}
	return code, top.Value()
}

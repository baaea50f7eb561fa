package infrastructure

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinguaIdentifier_Identify(t *testing.T) {
	// Detector construction loads statistical models; build once and share.
	identifier := NewLinguaIdentifier()

	t.Run("identifies common languages", func(t *testing.T) {
		tests := []struct {
			text string
			want string
		}{
			{"Hello, how are you doing today my friend?", "en"},
			{"Bonjour, comment allez-vous aujourd'hui?", "fr"},
			{"Hola, ¿cómo estás hoy? Espero que todo vaya bien.", "es"},
			{"Guten Morgen, wie geht es dir heute?", "de"},
		}

		for _, tt := range tests {
			code, confidence := identifier.Identify(tt.text)
			assert.Equal(t, tt.want, code, "text: %s", tt.text)
			assert.Greater(t, confidence, 0.0)
		}
	})

	t.Run("empty input is undetermined", func(t *testing.T) {
		code, confidence := identifier.Identify("")
		assert.Equal(t, UndeterminedLanguage, code)
		assert.Zero(t, confidence)
	})

	t.Run("whitespace only is undetermined", func(t *testing.T) {
		code, confidence := identifier.Identify("  \n\t ")
		assert.Equal(t, UndeterminedLanguage, code)
		assert.Zero(t, confidence)
	})

	t.Run("newlines are flattened before detection", func(t *testing.T) {
		code, _ := identifier.Identify("Hello there,\nhow are you\ndoing today?")
		assert.Equal(t, "en", code)
	})
}

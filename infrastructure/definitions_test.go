package infrastructure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSalvageJSON(t *testing.T) {
	t.Parallel()

	t.Run("clean JSON parses", func(t *testing.T) {
		parsed := salvageJSON(`{"word": "owl", "entries": [{"pos": "noun", "meaning": "a nocturnal bird"}]}`)
		require.NotNil(t, parsed)
		assert.Equal(t, "owl", parsed.Word)
		require.Len(t, parsed.Entries, 1)
		assert.Equal(t, "noun", parsed.Entries[0].Pos)
	})

	t.Run("code fenced JSON is unwrapped", func(t *testing.T) {
		parsed := salvageJSON("```json\n{\"word\": \"owl\", \"entries\": []}\n```")
		require.NotNil(t, parsed)
		assert.Equal(t, "owl", parsed.Word)
	})

	t.Run("JSON embedded in chatter is salvaged", func(t *testing.T) {
		parsed := salvageJSON(`Here you go! {"word": "owl", "entries": []} Hope that helps.`)
		require.NotNil(t, parsed)
		assert.Equal(t, "owl", parsed.Word)
	})

	t.Run("unparseable text yields nil", func(t *testing.T) {
		assert.Nil(t, salvageJSON("no json here at all"))
		assert.Nil(t, salvageJSON(""))
	})
}

func TestCleanWordList(t *testing.T) {
	t.Parallel()

	assert.Nil(t, cleanWordList(nil))
	assert.Nil(t, cleanWordList([]string{"", "  "}))
	assert.Equal(t, []string{"wise", "sage"}, cleanWordList([]string{" wise ", "", "sage"}))
	assert.Len(t, cleanWordList([]string{"a", "b", "c", "d", "e", "f", "g"}), 5)
}

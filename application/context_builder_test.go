package application

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"owl/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubHistoryFetcher returns a canned newest-first message list.
type stubHistoryFetcher struct {
	messages []HistoryMessage
	err      error
	gotLimit int
}

func (s *stubHistoryFetcher) MessagesBefore(ctx context.Context, channelID, beforeID string, limit int) ([]HistoryMessage, error) {
	s.gotLimit = limit
	if s.err != nil {
		return nil, s.err
	}
	if len(s.messages) > limit {
		return s.messages[:limit], nil
	}
	return s.messages, nil
}

func TestContextBuilder_BuildHistory(t *testing.T) {
	t.Parallel()

	t.Run("orders turns oldest to newest", func(t *testing.T) {
		t.Parallel()

		fetcher := &stubHistoryFetcher{messages: []HistoryMessage{
			{AuthorID: "u1", AuthorDisplayName: "alice", Content: "third"},
			{AuthorID: "u2", AuthorDisplayName: "bob", Content: "second"},
			{AuthorID: "u1", AuthorDisplayName: "alice", Content: "first"},
		}}
		builder := NewContextBuilder(fetcher, "bot1")

		turns, err := builder.BuildHistory(context.Background(), "chan", "msg")

		require.NoError(t, err)
		require.Len(t, turns, 3)
		assert.Equal(t, "alice: first", turns[0].Content)
		assert.Equal(t, "bob: second", turns[1].Content)
		assert.Equal(t, "alice: third", turns[2].Content)
	})

	t.Run("own messages become assistant turns, other bots stay user", func(t *testing.T) {
		t.Parallel()

		fetcher := &stubHistoryFetcher{messages: []HistoryMessage{
			{AuthorID: "bot1", AuthorDisplayName: "Owl", AuthorIsBot: true, Content: "my reply"},
			{AuthorID: "otherbot", AuthorDisplayName: "Tix", AuthorIsBot: true, Content: "beep"},
			{AuthorID: "u1", AuthorDisplayName: "alice", Content: "hi"},
		}}
		builder := NewContextBuilder(fetcher, "bot1")

		turns, err := builder.BuildHistory(context.Background(), "chan", "msg")

		require.NoError(t, err)
		require.Len(t, turns, 3)
		assert.Equal(t, entities.TurnRoleUser, turns[0].Role)
		assert.Equal(t, entities.TurnRoleUser, turns[1].Role)
		assert.Equal(t, entities.TurnRoleAssistant, turns[2].Role)
		assert.Equal(t, "Owl: my reply", turns[2].Content)
	})

	t.Run("skips empty and whitespace messages", func(t *testing.T) {
		t.Parallel()

		fetcher := &stubHistoryFetcher{messages: []HistoryMessage{
			{AuthorID: "u1", AuthorDisplayName: "alice", Content: "real"},
			{AuthorID: "u2", AuthorDisplayName: "bob", Content: "   "},
			{AuthorID: "u3", AuthorDisplayName: "carol", Content: ""},
		}}
		builder := NewContextBuilder(fetcher, "bot1")

		turns, err := builder.BuildHistory(context.Background(), "chan", "msg")

		require.NoError(t, err)
		require.Len(t, turns, 1)
		assert.Equal(t, "alice: real", turns[0].Content)
	})

	t.Run("keeps only the most recent twenty of fifty scanned", func(t *testing.T) {
		t.Parallel()

		var messages []HistoryMessage
		for i := 0; i < 60; i++ {
			// newest first: message 59 is the most recent
			messages = append(messages, HistoryMessage{
				AuthorID:          "u1",
				AuthorDisplayName: "alice",
				Content:           fmt.Sprintf("msg-%d", 59-i),
			})
		}
		fetcher := &stubHistoryFetcher{messages: messages}
		builder := NewContextBuilder(fetcher, "bot1")

		turns, err := builder.BuildHistory(context.Background(), "chan", "msg")

		require.NoError(t, err)
		assert.Equal(t, 50, fetcher.gotLimit)
		require.Len(t, turns, 20)
		assert.Equal(t, "alice: msg-40", turns[0].Content)
		assert.Equal(t, "alice: msg-59", turns[19].Content)
	})

	t.Run("fetch failure propagates", func(t *testing.T) {
		t.Parallel()

		fetcher := &stubHistoryFetcher{err: errors.New("rate limited")}
		builder := NewContextBuilder(fetcher, "bot1")

		_, err := builder.BuildHistory(context.Background(), "chan", "msg")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to fetch channel history")
	})

	t.Run("empty channel yields no turns", func(t *testing.T) {
		t.Parallel()

		builder := NewContextBuilder(&stubHistoryFetcher{}, "bot1")

		turns, err := builder.BuildHistory(context.Background(), "chan", "msg")

		require.NoError(t, err)
		assert.Empty(t, turns)
	})
}

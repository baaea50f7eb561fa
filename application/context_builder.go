package application

import (
	"context"
	"fmt"
	"strings"

	"owl/domain/entities"
)

const (
	// historyScanLimit bounds how many prior messages are examined.
	historyScanLimit = 50
	// historyKeepLast bounds how many turns survive into the context.
	historyKeepLast = 20
)

// ContextBuilder reconstructs a bounded conversation history window from
// channel history for mention-triggered replies.
type ContextBuilder struct {
	history   HistoryFetcher
	botUserID string
}

// NewContextBuilder creates a context builder reading through the given
// history fetcher.
func NewContextBuilder(history HistoryFetcher, botUserID string) *ContextBuilder {
	return &ContextBuilder{history: history, botUserID: botUserID}
}

// BuildHistory returns conversation turns for up to the 20 most recent
// non-empty messages among the 50 preceding the trigger, ordered oldest to
// newest. The bot's own messages become assistant turns; every other
// author, bots included, becomes a user turn. Content keeps uniform speaker
// attribution so the model stays aware of multi-party context.
func (b *ContextBuilder) BuildHistory(ctx context.Context, channelID, beforeID string) ([]entities.ConversationTurn, error) {
	messages, err := b.history.MessagesBefore(ctx, channelID, beforeID, historyScanLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch channel history: %w", err)
	}

	// messages arrive newest first; collect eligible turns in that order,
	// cap to the most recent, then reverse into chronological order.
	var newestFirst []entities.ConversationTurn
	for _, msg := range messages {
		content := strings.TrimSpace(msg.Content)
		if content == "" {
			continue
		}
		role := entities.TurnRoleUser
		if msg.AuthorID == b.botUserID {
			role = entities.TurnRoleAssistant
		}
		newestFirst = append(newestFirst, entities.ConversationTurn{
			Role:    role,
			Content: fmt.Sprintf("%s: %s", msg.AuthorDisplayName, content),
		})
		if len(newestFirst) == historyKeepLast {
			break
		}
	}

	turns := make([]entities.ConversationTurn, len(newestFirst))
	for i, turn := range newestFirst {
		turns[len(turns)-1-i] = turn
	}
	return turns, nil
}

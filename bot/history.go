package bot

import (
	"context"
	"fmt"

	"owl/application"
	"owl/bot/common"

	"github.com/bwmarrin/discordgo"
)

// sessionHistoryFetcher reads prior channel messages through the gateway
// session's REST client.
type sessionHistoryFetcher struct {
	session *discordgo.Session
}

func newSessionHistoryFetcher(session *discordgo.Session) *sessionHistoryFetcher {
	return &sessionHistoryFetcher{session: session}
}

// MessagesBefore returns up to limit messages strictly before beforeID,
// newest first, matching the order Discord returns them in.
func (f *sessionHistoryFetcher) MessagesBefore(ctx context.Context, channelID, beforeID string, limit int) ([]application.HistoryMessage, error) {
	messages, err := f.session.ChannelMessages(channelID, limit, beforeID, "", "", discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch channel history for %s: %w", channelID, err)
	}

	history := make([]application.HistoryMessage, 0, len(messages))
	for _, msg := range messages {
		if msg.Author == nil {
			continue
		}
		history = append(history, application.HistoryMessage{
			AuthorID:          msg.Author.ID,
			AuthorDisplayName: common.DisplayName(msg.Member, msg.Author),
			AuthorIsBot:       msg.Author.Bot,
			Content:           msg.Content,
		})
	}
	return history, nil
}

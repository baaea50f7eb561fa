package application

import (
	"context"
	"strings"

	"owl/domain/entities"

	log "github.com/sirupsen/logrus"
)

const (
	// mentionTokenLimit bounds the length of a mention-chat reply.
	mentionTokenLimit = 200
	// memoryMarker in the cleaned text requests a conversation history
	// window.
	memoryMarker = "-"
)

const mentionSystemPrompt = "You are Owl 🦉, a smart assistant in a Discord server. " +
	"Keep it short, lighthearted, and clever. Under 200 tokens."

const mentionMemorySystemPrompt = "You are Owl 🦉, a witty but thoughtful assistant in a Discord server. " +
	"Be helpful, kind, and sharp. Keep replies under 200 tokens."

// handleMention answers a message that addressed the bot directly,
// optionally pulling a bounded history window when the memory marker is
// present.
func (r *Router) handleMention(ctx context.Context, msg *InboundMessage) (Action, error) {
	cleaned := CleanMentions(msg.Content)
	useMemory := strings.Contains(cleaned, memoryMarker)

	var history []entities.ConversationTurn
	if useMemory {
		var err error
		history, err = r.builder.BuildHistory(ctx, msg.ChannelID, msg.ID)
		if err != nil {
			// Degrade to a memoryless reply rather than failing the mention.
			log.WithFields(log.Fields{
				"channel_id": msg.ChannelID,
				"message_id": msg.ID,
			}).WithError(err).Warn("history fetch failed; replying without memory")
			history = nil
		}
	}

	system := mentionSystemPrompt
	if len(history) > 0 {
		system = mentionMemorySystemPrompt
	}

	turns := make([]entities.ConversationTurn, 0, len(history)+2)
	turns = append(turns, entities.ConversationTurn{Role: entities.TurnRoleSystem, Content: system})
	turns = append(turns, history...)
	turns = append(turns, entities.ConversationTurn{Role: entities.TurnRoleUser, Content: cleaned})

	reply, err := r.chat.Complete(ctx, turns, mentionTokenLimit)
	if err != nil {
		r.postFailure(ctx, msg.ChannelID, "Couldn't come up with a reply.")
		return ActionMentionChat, err
	}

	r.postResult(ctx, msg.ChannelID, &Result{
		Behavior: BehaviorMention,
		Title:    "🦉 Owl says",
		Body:     reply,
	})
	return ActionMentionChat, nil
}

// postResult delivers a result, logging delivery failures. Presentation
// failures are terminal for the message; there is nothing further to do.
func (r *Router) postResult(ctx context.Context, channelID string, result *Result) {
	if err := r.presenter.PostResult(ctx, channelID, result); err != nil {
		log.WithFields(log.Fields{
			"channel_id": channelID,
			"behavior":   result.Behavior,
		}).WithError(err).Error("failed to post result")
	}
}

// postFailure delivers the single short failure notice a handler owes the
// channel when its capability call fails.
func (r *Router) postFailure(ctx context.Context, channelID, notice string) {
	if err := r.presenter.PostFailure(ctx, channelID, notice); err != nil {
		log.WithField("channel_id", channelID).WithError(err).Error("failed to post failure notice")
	}
}

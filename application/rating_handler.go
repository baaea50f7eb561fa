package application

import (
	"context"
	"fmt"
	"strings"

	"owl/domain/entities"

	log "github.com/sirupsen/logrus"
)

// ratingTokenLimit bounds the rating response; the expected shape is two
// short lines.
const ratingTokenLimit = 40

const ratingPromptFormat = "You are Owl 🦉, a sharp and witty judge. " +
	"First, rate the following message with a single digit based on how cool (0–9). " +
	"Then, suggest 5 emoji reactions (funny, emotional, expressive) matching the vibe.\n\n" +
	"Format:\nRating: <digit>\nEmojis: 😬 🔥 💯 🤡 🧠\n\n" +
	"Message:\n\"%s\""

// handleRating rates a message in the judge channel with a digit reaction
// and up to five suggested emoji. Malformed model output degrades to digit
// zero with no emoji rather than failing the handler.
func (r *Router) handleRating(ctx context.Context, msg *InboundMessage) (Action, error) {
	content := strings.TrimSpace(msg.Content)
	if content == "" {
		return ActionDropped, nil
	}

	out, err := r.chat.Complete(ctx, []entities.ConversationTurn{
		{Role: entities.TurnRoleUser, Content: fmt.Sprintf(ratingPromptFormat, content)},
	}, ratingTokenLimit)
	if err != nil {
		r.postFailure(ctx, msg.ChannelID, "Couldn't rate that message.")
		return ActionRating, err
	}

	digit, emojis := ParseRating(out)

	// Reaction failures (missing permission, removed message) are skipped,
	// not surfaced; the summary below is the observable outcome.
	if keycap := DigitEmoji(digit); keycap != "" {
		if err := r.presenter.React(ctx, msg.ChannelID, msg.ID, keycap); err != nil {
			log.WithField("message_id", msg.ID).WithError(err).Debug("skipping digit reaction")
		}
	}
	for _, emoji := range emojis {
		if err := r.presenter.React(ctx, msg.ChannelID, msg.ID, emoji); err != nil {
			log.WithField("message_id", msg.ID).WithError(err).Debug("skipping emoji reaction")
		}
	}

	emojiLine := "none"
	if len(emojis) > 0 {
		emojiLine = strings.Join(emojis, " ")
	}
	r.postResult(ctx, msg.ChannelID, &Result{
		Behavior: BehaviorRating,
		Title:    "🧮 Owl Rating",
		Body:     fmt.Sprintf("Score: %s / 9", digit),
		Fields:   []Field{{Name: "Emojis", Value: emojiLine, Inline: true}},
	})
	return ActionRating, nil
}

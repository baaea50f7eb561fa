package application

import (
	"context"
	"fmt"

	"owl/domain/entities"
)

// translationTokenLimit bounds the length of a translated reply.
const translationTokenLimit = 120

// handleTranslation identifies the language of a message in the
// translation channel and translates it to English, forwarding the detected
// language and confidence downstream.
func (r *Router) handleTranslation(ctx context.Context, msg *InboundMessage) (Action, error) {
	cleaned := CleanMentions(msg.Content)
	if cleaned == "" {
		return ActionDropped, nil
	}

	code, confidence := r.languages.Identify(cleaned)

	prompt := fmt.Sprintf("Translate the following to natural English. Only return the translation:\n\n\"%s\"", cleaned)
	translated, err := r.chat.Complete(ctx, []entities.ConversationTurn{
		{Role: entities.TurnRoleUser, Content: prompt},
	}, translationTokenLimit)
	if err != nil {
		r.postFailure(ctx, msg.ChannelID, "Couldn't translate that message.")
		return ActionTranslation, err
	}

	r.postResult(ctx, msg.ChannelID, &Result{
		Behavior: BehaviorTranslation,
		Title:    "Translation",
		Body:     translated,
		Fields: []Field{
			{Name: "Language", Value: code, Inline: true},
			{Name: "Confidence", Value: fmt.Sprintf("%.2f", confidence), Inline: true},
		},
		Footer: fmt.Sprintf("Requested by %s", msg.AuthorDisplayName),
	})
	return ActionTranslation, nil
}

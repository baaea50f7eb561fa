package bot

import (
	"context"
	"fmt"
	"unicode/utf8"

	"owl/application"
	"owl/bot/common"

	"github.com/bwmarrin/discordgo"
)

// presenter posts handler results back to Discord. It owns all formatting
// decisions; the application layer only hands it plain data.
type presenter struct {
	session *discordgo.Session
}

func newPresenter(session *discordgo.Session) *presenter {
	return &presenter{session: session}
}

// PostResult renders a result as an embed.
func (p *presenter) PostResult(ctx context.Context, channelID string, result *application.Result) error {
	body := result.Body

	// Translations get a source → target flag line above the text.
	if result.Behavior == application.BehaviorTranslation {
		if code := fieldValue(result, "Language"); code != "" {
			body = fmt.Sprintf("%s → %s\n\n> %s", common.FlagForLanguage(code), common.FlagForLanguage("en"), result.Body)
		}
	}

	embed := common.ResultEmbed(result.Title, body)
	for _, field := range result.Fields {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   field.Name,
			Value:  truncateField(field.Value),
			Inline: field.Inline,
		})
	}
	if result.Footer != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: result.Footer}
	}

	_, err := p.session.ChannelMessageSendEmbed(channelID, embed, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to send embed to channel %s: %w", channelID, err)
	}
	return nil
}

// PostFailure posts the single short failure notice for a handler.
func (p *presenter) PostFailure(ctx context.Context, channelID, notice string) error {
	_, err := p.session.ChannelMessageSendEmbed(channelID, common.ErrorEmbed(notice), discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to send failure notice to channel %s: %w", channelID, err)
	}
	return nil
}

// React adds an emoji reaction to a message.
func (p *presenter) React(ctx context.Context, channelID, messageID, emoji string) error {
	if err := p.session.MessageReactionAdd(channelID, messageID, emoji, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to react to message %s: %w", messageID, err)
	}
	return nil
}

func fieldValue(result *application.Result, name string) string {
	for _, field := range result.Fields {
		if field.Name == name {
			return field.Value
		}
	}
	return ""
}

// truncateField keeps a field value inside Discord's 1024-char limit,
// trimming on a rune boundary.
func truncateField(value string) string {
	if len(value) <= 1024 {
		return value
	}
	cut := 1024
	for cut > 0 && !utf8.RuneStart(value[cut]) {
		cut--
	}
	return value[:cut]
}

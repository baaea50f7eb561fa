package bot

import (
	"context"
	"fmt"
	"time"

	"owl/application"
	"owl/bot/common"
	"owl/bot/features/dictionary"
	"owl/bot/features/pronounce"
	"owl/bot/features/settings"
	"owl/domain/interfaces"
	"owl/domain/services"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Config holds bot configuration
type Config struct {
	Token          string
	GuildID        string
	HandlerTimeout time.Duration
	TempDir        string
}

// Deps carries the capability adapters and services the bot wires into its
// router and feature modules.
type Deps struct {
	SettingsService services.GuildSettingsService
	Chat            interfaces.ChatCompleter
	Languages       interfaces.LanguageIdentifier
	Transcriber     interfaces.Transcriber
	Synthesizer     interfaces.SpeechSynthesizer
	Fetcher         interfaces.FileFetcher
	Definitions     interfaces.DefinitionProvider
}

// Bot manages the Discord session, message routing, and feature modules.
type Bot struct {
	config  Config
	session *discordgo.Session
	router  *application.Router

	// Feature modules
	settings   *settings.Feature
	dictionary *dictionary.Feature
	pronounce  *pronounce.Feature
}

// New creates a bot instance, opens the gateway connection, and registers
// slash commands.
func New(config Config, deps Deps) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMessageReactions |
		discordgo.IntentsMessageContent

	bot := &Bot{
		config:  config,
		session: dg,
	}

	bot.settings = settings.NewFeature(deps.SettingsService)
	bot.dictionary = dictionary.NewFeature(deps.Definitions)
	bot.pronounce = pronounce.NewFeature(deps.Synthesizer)

	dg.AddHandler(bot.handleCommands)
	dg.AddHandler(bot.handleMessageCreate)

	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	// The router needs the session-scoped bot user id, which is only known
	// after the gateway handshake.
	bot.router = application.NewRouter(application.RouterDeps{
		Settings:    deps.SettingsService,
		History:     newSessionHistoryFetcher(dg),
		Chat:        deps.Chat,
		Languages:   deps.Languages,
		Transcriber: deps.Transcriber,
		Fetcher:     deps.Fetcher,
		Definitions: deps.Definitions,
		Presenter:   newPresenter(dg),
		BotUserID:   dg.State.User.ID,
		TempDir:     config.TempDir,
	})

	if err := bot.registerCommands(); err != nil {
		dg.Close()
		return nil, fmt.Errorf("error registering commands: %w", err)
	}

	log.Infof("Bot connected as %s", dg.State.User.Username)
	return bot, nil
}

// Close gracefully shuts down the bot
func (b *Bot) Close() error {
	return b.session.Close()
}

// GetSession returns the Discord session
func (b *Bot) GetSession() *discordgo.Session {
	return b.session
}

// handleCommands routes slash commands to appropriate handlers
func (b *Bot) handleCommands(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	switch i.ApplicationCommandData().Name {
	case "settings":
		b.settings.HandleCommand(s, i)
	case "owl":
		b.handleOwlCommand(s, i)
	}
}

// handleOwlCommand dispatches /owl subcommands to their feature modules.
func (b *Bot) handleOwlCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		return
	}

	switch options[0].Name {
	case "define":
		b.dictionary.HandleCommand(s, i)
	case "pronounce":
		b.pronounce.HandleCommand(s, i)
	case "settings":
		b.settings.HandleShow(s, i)
	}
}

// handleMessageCreate converts the gateway event to the transport-free
// message shape and hands it to the router. discordgo invokes handlers on
// separate goroutines, so messages are processed concurrently; the router
// guarantees a panic-free single action per message.
func (b *Bot) handleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil {
		return
	}

	msg := &application.InboundMessage{
		ID:                m.ID,
		GuildID:           m.GuildID,
		ChannelID:         m.ChannelID,
		AuthorID:          m.Author.ID,
		AuthorDisplayName: common.DisplayName(m.Member, m.Author),
		AuthorIsBot:       m.Author.Bot,
		Content:           m.Content,
	}
	for _, user := range m.Mentions {
		msg.Mentions = append(msg.Mentions, user.ID)
	}
	for _, att := range m.Attachments {
		msg.Attachments = append(msg.Attachments, application.Attachment{
			Filename:    att.Filename,
			URL:         att.URL,
			ContentType: att.ContentType,
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), b.config.HandlerTimeout)
	defer cancel()

	action, err := b.router.HandleMessage(ctx, msg)
	if err != nil {
		log.WithFields(log.Fields{
			"message_id": m.ID,
			"action":     action,
		}).WithError(err).Warn("message handler finished with error")
		return
	}
	if action != application.ActionDropped {
		log.WithFields(log.Fields{
			"message_id": m.ID,
			"channel_id": m.ChannelID,
			"action":     action,
		}).Debug("message handled")
	}
}

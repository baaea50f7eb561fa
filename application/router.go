package application

import (
	"context"
	"strconv"

	"owl/domain/entities"
	"owl/domain/interfaces"
	"owl/domain/services"

	log "github.com/sirupsen/logrus"
)

// Router is the single dispatch point for inbound guild messages. For each
// message it looks up the guild's settings, resolves the channel's role,
// and fires at most one behavior handler. Channel-role paths take
// precedence over mention-chat; mention-chat additionally refuses channels
// claimed by the translation, voice, or judge roles.
type Router struct {
	settings    SettingsReader
	builder     *ContextBuilder
	chat        interfaces.ChatCompleter
	languages   interfaces.LanguageIdentifier
	transcriber interfaces.Transcriber
	fetcher     interfaces.FileFetcher
	definitions interfaces.DefinitionProvider
	presenter   Presenter
	botUserID   string
	tempDir     string
}

// RouterDeps carries the collaborators a Router needs. All capability
// adapters are constructed once at startup and injected.
type RouterDeps struct {
	Settings    SettingsReader
	History     HistoryFetcher
	Chat        interfaces.ChatCompleter
	Languages   interfaces.LanguageIdentifier
	Transcriber interfaces.Transcriber
	Fetcher     interfaces.FileFetcher
	Definitions interfaces.DefinitionProvider
	Presenter   Presenter
	BotUserID   string
	TempDir     string
}

// NewRouter creates a message router.
func NewRouter(deps RouterDeps) *Router {
	return &Router{
		settings:    deps.Settings,
		builder:     NewContextBuilder(deps.History, deps.BotUserID),
		chat:        deps.Chat,
		languages:   deps.Languages,
		transcriber: deps.Transcriber,
		fetcher:     deps.Fetcher,
		definitions: deps.Definitions,
		presenter:   deps.Presenter,
		botUserID:   deps.BotUserID,
		tempDir:     deps.TempDir,
	}
}

// HandleMessage decides which behavior (if any) fires for one inbound
// message and runs it. The returned action says what happened; the returned
// error is already handled (notice posted, message dropped) and is only
// useful for logging. The dispatch loop must never crash on it.
func (r *Router) HandleMessage(ctx context.Context, msg *InboundMessage) (Action, error) {
	if msg.AuthorIsBot || msg.AuthorID == r.botUserID || msg.GuildID == "" {
		return ActionDropped, nil
	}

	guildID, err := strconv.ParseInt(msg.GuildID, 10, 64)
	if err != nil {
		log.WithField("guild_id", msg.GuildID).Warn("unparseable guild id; dropping message")
		return ActionDropped, nil
	}
	channelID, err := strconv.ParseInt(msg.ChannelID, 10, 64)
	if err != nil {
		log.WithField("channel_id", msg.ChannelID).Warn("unparseable channel id; dropping message")
		return ActionDropped, nil
	}

	settings, err := r.settings.GetSettings(ctx, guildID)
	if err != nil {
		// A store failure must not take down the dispatch loop.
		log.WithFields(log.Fields{
			"guild_id":   guildID,
			"message_id": msg.ID,
		}).WithError(err).Warn("settings lookup failed; dropping message")
		return ActionDropped, nil
	}

	if role, ok := services.ResolveChannelRole(settings, channelID); ok {
		switch role {
		case entities.RoleTranslation:
			return r.handleTranslation(ctx, msg)
		case entities.RoleJudge:
			return r.handleRating(ctx, msg)
		case entities.RoleDictionary:
			return r.handleDictionary(ctx, msg)
		case entities.RoleVoice:
			return r.handleTranscription(ctx, msg)
		}
	}

	if msg.MentionsUser(r.botUserID) && !services.IsExcludedChannel(settings, channelID) {
		return r.handleMention(ctx, msg)
	}

	return ActionDropped, nil
}

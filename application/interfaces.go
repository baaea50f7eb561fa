package application

import (
	"context"

	"owl/domain/entities"
)

// SettingsReader provides read access to guild settings. Settings are
// looked up per message and never cached across messages.
type SettingsReader interface {
	GetSettings(ctx context.Context, guildID int64) (*entities.GuildSettings, error)
}

// HistoryMessage is one prior channel message as seen by the context
// builder.
type HistoryMessage struct {
	AuthorID          string
	AuthorDisplayName string
	AuthorIsBot       bool
	Content           string
}

// HistoryFetcher retrieves up to limit messages strictly before the given
// message id, newest first.
type HistoryFetcher interface {
	MessagesBefore(ctx context.Context, channelID, beforeID string, limit int) ([]HistoryMessage, error)
}

// Behavior tags a presented result with the handler that produced it.
type Behavior string

const (
	BehaviorMention       Behavior = "mention"
	BehaviorTranslation   Behavior = "translation"
	BehaviorRating        Behavior = "rating"
	BehaviorDictionary    Behavior = "dictionary"
	BehaviorTranscription Behavior = "transcription"
	BehaviorPronounce     Behavior = "pronounce"
)

// Field is one structured name/value pair attached to a result.
type Field struct {
	Name   string
	Value  string
	Inline bool
}

// Result is the plain data a handler hands to the presentation layer.
// Formatting and markup decisions stay on the presenter side.
type Result struct {
	Behavior Behavior
	Title    string
	Body     string
	Fields   []Field
	Footer   string
}

// Presenter delivers handler outcomes back to the channel. Every handler
// produces exactly one observable outcome per triggering message: a result
// or a single short failure notice.
type Presenter interface {
	PostResult(ctx context.Context, channelID string, result *Result) error
	PostFailure(ctx context.Context, channelID, notice string) error
	React(ctx context.Context, channelID, messageID, emoji string) error
}

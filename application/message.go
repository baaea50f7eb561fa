package application

// Attachment is a transport-free view of a message attachment.
type Attachment struct {
	Filename    string
	URL         string
	ContentType string
}

// InboundMessage is a transport-free view of an incoming guild message.
// The bot layer converts Discord events to this shape before dispatch so
// routing logic stays independent of the chat transport.
type InboundMessage struct {
	ID                string
	GuildID           string
	ChannelID         string
	AuthorID          string
	AuthorDisplayName string
	AuthorIsBot       bool
	Content           string
	Mentions          []string
	Attachments       []Attachment
}

// MentionsUser reports whether the given user id appears among the
// message's addressed recipients.
func (m *InboundMessage) MentionsUser(userID string) bool {
	for _, id := range m.Mentions {
		if id == userID {
			return true
		}
	}
	return false
}

// Action is the single behavior the router took for an inbound message.
type Action string

const (
	ActionDropped       Action = "dropped"
	ActionMentionChat   Action = "mention_chat"
	ActionTranslation   Action = "translation"
	ActionRating        Action = "rating"
	ActionDictionary    Action = "dictionary"
	ActionTranscription Action = "transcription"
)

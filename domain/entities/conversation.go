package entities

// TurnRole is the speaker role of a reconstructed conversation turn.
type TurnRole string

const (
	TurnRoleSystem    TurnRole = "system"
	TurnRoleUser      TurnRole = "user"
	TurnRoleAssistant TurnRole = "assistant"
)

// ConversationTurn is one attributed utterance used as conversational
// context for a mention-triggered reply. Turns are built per invocation and
// never persisted.
type ConversationTurn struct {
	Role    TurnRole
	Content string
}

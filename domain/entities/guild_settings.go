package entities

import "time"

// ChannelRole identifies the behavior assigned to a channel within a guild.
type ChannelRole string

const (
	RoleTranslation ChannelRole = "translation"
	RoleVoice       ChannelRole = "voice"
	RoleJudge       ChannelRole = "judge"
	RoleDictionary  ChannelRole = "dictionary"
)

// RolePriority is the deterministic tie-break order used when a guild's
// settings violate the one-role-per-channel invariant. Resolution always
// returns the first matching role in this order.
var RolePriority = []ChannelRole{RoleDictionary, RoleJudge, RoleTranslation, RoleVoice}

// GuildSettings represents per-guild channel routing configuration.
// Each role field is nullable; nil means the role is unassigned.
type GuildSettings struct {
	GuildID              int64      `db:"guild_id"`
	TranslationChannelID *int64     `db:"translation_channel_id"` // Nullable - channel watched for translation
	VoiceChannelID       *int64     `db:"voice_channel_id"`       // Nullable - channel watched for transcription
	JudgeChannelID       *int64     `db:"judge_channel_id"`       // Nullable - channel watched for rating
	DictionaryChannelID  *int64     `db:"dictionary_channel_id"`  // Nullable - channel watched for lookups
	UpdatedAt            *time.Time `db:"updated_at"`
}

// NewGuildSettings returns the default settings value for a guild with no
// stored row. The default is a value only; nothing is persisted until the
// first write.
func NewGuildSettings(guildID int64) *GuildSettings {
	return &GuildSettings{GuildID: guildID}
}

// ChannelFor returns the channel id configured for the given role, or nil.
func (gs *GuildSettings) ChannelFor(role ChannelRole) *int64 {
	switch role {
	case RoleTranslation:
		return gs.TranslationChannelID
	case RoleVoice:
		return gs.VoiceChannelID
	case RoleJudge:
		return gs.JudgeChannelID
	case RoleDictionary:
		return gs.DictionaryChannelID
	}
	return nil
}

// HasRole checks if the given role has a channel assigned.
func (gs *GuildSettings) HasRole(role ChannelRole) bool {
	id := gs.ChannelFor(role)
	return id != nil && *id > 0
}

// RolesForChannel returns every role currently pointing at the given
// channel, in priority order. More than one entry means the uniqueness
// invariant has been violated.
func (gs *GuildSettings) RolesForChannel(channelID int64) []ChannelRole {
	var roles []ChannelRole
	for _, role := range RolePriority {
		if id := gs.ChannelFor(role); id != nil && *id == channelID {
			roles = append(roles, role)
		}
	}
	return roles
}

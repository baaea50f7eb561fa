package services

import (
	"owl/domain/entities"

	log "github.com/sirupsen/logrus"
)

// ResolveChannelRole returns the role configured for the given channel, if
// any. Assignment keeps channels unique across roles, so at most one role
// should ever match; if a stored record violates that, the match with the
// highest priority (dictionary > judge > translation > voice) wins and the
// violation is logged, so a message is never handled twice.
func ResolveChannelRole(settings *entities.GuildSettings, channelID int64) (entities.ChannelRole, bool) {
	roles := settings.RolesForChannel(channelID)
	if len(roles) == 0 {
		return "", false
	}
	if len(roles) > 1 {
		log.WithFields(log.Fields{
			"guild_id":   settings.GuildID,
			"channel_id": channelID,
			"roles":      roles,
		}).Warn("channel assigned to multiple roles; using highest priority")
	}
	return roles[0], true
}

// IsExcludedChannel reports whether the channel is claimed by the
// translation, voice, or judge role. Mention-chat refuses to operate in
// those channels so unrelated behaviors never stack on one message.
func IsExcludedChannel(settings *entities.GuildSettings, channelID int64) bool {
	for _, role := range []entities.ChannelRole{entities.RoleTranslation, entities.RoleVoice, entities.RoleJudge} {
		if id := settings.ChannelFor(role); id != nil && *id == channelID {
			return true
		}
	}
	return false
}

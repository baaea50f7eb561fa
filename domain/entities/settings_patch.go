package entities

// SettingsPatch is a partial update to a guild's settings. Nil fields are
// left unchanged; roles listed in Clear are set to unassigned. A patch is
// applied as a single atomic statement so concurrent patches to different
// fields never lose each other's writes.
type SettingsPatch struct {
	TranslationChannelID *int64
	VoiceChannelID       *int64
	JudgeChannelID       *int64
	DictionaryChannelID  *int64
	Clear                []ChannelRole
}

// Clears reports whether the patch unassigns the given role.
func (p *SettingsPatch) Clears(role ChannelRole) bool {
	for _, r := range p.Clear {
		if r == role {
			return true
		}
	}
	return false
}

// Set assigns a channel id to the given role in the patch.
func (p *SettingsPatch) Set(role ChannelRole, channelID int64) {
	switch role {
	case RoleTranslation:
		p.TranslationChannelID = &channelID
	case RoleVoice:
		p.VoiceChannelID = &channelID
	case RoleJudge:
		p.JudgeChannelID = &channelID
	case RoleDictionary:
		p.DictionaryChannelID = &channelID
	}
}

package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(v int64) *int64 {
	return &v
}

func TestNewGuildSettings_Defaults(t *testing.T) {
	settings := NewGuildSettings(123456789)

	assert.Equal(t, int64(123456789), settings.GuildID)
	assert.Nil(t, settings.TranslationChannelID)
	assert.Nil(t, settings.VoiceChannelID)
	assert.Nil(t, settings.JudgeChannelID)
	assert.Nil(t, settings.DictionaryChannelID)
	for _, role := range RolePriority {
		assert.False(t, settings.HasRole(role))
	}
}

func TestGuildSettings_ChannelFor(t *testing.T) {
	settings := &GuildSettings{
		GuildID:              1,
		TranslationChannelID: ptr(100),
		JudgeChannelID:       ptr(200),
	}

	assert.Equal(t, int64(100), *settings.ChannelFor(RoleTranslation))
	assert.Equal(t, int64(200), *settings.ChannelFor(RoleJudge))
	assert.Nil(t, settings.ChannelFor(RoleVoice))
	assert.Nil(t, settings.ChannelFor(RoleDictionary))
}

func TestGuildSettings_RolesForChannel(t *testing.T) {
	tests := []struct {
		name      string
		settings  *GuildSettings
		channelID int64
		want      []ChannelRole
	}{
		{
			name:      "no roles assigned",
			settings:  NewGuildSettings(1),
			channelID: 100,
			want:      nil,
		},
		{
			name: "single match",
			settings: &GuildSettings{
				GuildID:        1,
				VoiceChannelID: ptr(100),
			},
			channelID: 100,
			want:      []ChannelRole{RoleVoice},
		},
		{
			name: "duplicate assignment returns priority order",
			settings: &GuildSettings{
				GuildID:              1,
				TranslationChannelID: ptr(100),
				VoiceChannelID:       ptr(100),
				JudgeChannelID:       ptr(100),
				DictionaryChannelID:  ptr(100),
			},
			channelID: 100,
			want:      []ChannelRole{RoleDictionary, RoleJudge, RoleTranslation, RoleVoice},
		},
		{
			name: "other channel does not match",
			settings: &GuildSettings{
				GuildID:             1,
				DictionaryChannelID: ptr(100),
			},
			channelID: 200,
			want:      nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.settings.RolesForChannel(tt.channelID))
		})
	}
}

func TestSettingsPatch_SetAndClears(t *testing.T) {
	patch := SettingsPatch{}
	patch.Set(RoleJudge, 42)

	assert.NotNil(t, patch.JudgeChannelID)
	assert.Equal(t, int64(42), *patch.JudgeChannelID)
	assert.Nil(t, patch.TranslationChannelID)

	patch.Clear = append(patch.Clear, RoleVoice)
	assert.True(t, patch.Clears(RoleVoice))
	assert.False(t, patch.Clears(RoleJudge))
}

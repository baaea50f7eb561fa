package services

import (
	"testing"

	"owl/domain/entities"

	"github.com/stretchr/testify/assert"
)

func TestResolveChannelRole(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		settings  *entities.GuildSettings
		channelID int64
		wantRole  entities.ChannelRole
		wantOK    bool
	}{
		{
			name:      "no roles assigned",
			settings:  entities.NewGuildSettings(1),
			channelID: 100,
			wantOK:    false,
		},
		{
			name: "translation channel resolves",
			settings: &entities.GuildSettings{
				GuildID:              1,
				TranslationChannelID: ptr(100),
			},
			channelID: 100,
			wantRole:  entities.RoleTranslation,
			wantOK:    true,
		},
		{
			name: "unrelated channel does not resolve",
			settings: &entities.GuildSettings{
				GuildID:              1,
				TranslationChannelID: ptr(100),
			},
			channelID: 200,
			wantOK:    false,
		},
		{
			name: "duplicate assignment picks dictionary over judge",
			settings: &entities.GuildSettings{
				GuildID:             1,
				JudgeChannelID:      ptr(100),
				DictionaryChannelID: ptr(100),
			},
			channelID: 100,
			wantRole:  entities.RoleDictionary,
			wantOK:    true,
		},
		{
			name: "duplicate assignment picks translation over voice",
			settings: &entities.GuildSettings{
				GuildID:              1,
				TranslationChannelID: ptr(100),
				VoiceChannelID:       ptr(100),
			},
			channelID: 100,
			wantRole:  entities.RoleTranslation,
			wantOK:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			role, ok := ResolveChannelRole(tt.settings, tt.channelID)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantRole, role)
			}
		})
	}
}

func TestIsExcludedChannel(t *testing.T) {
	t.Parallel()

	settings := &entities.GuildSettings{
		GuildID:              1,
		TranslationChannelID: ptr(100),
		VoiceChannelID:       ptr(200),
		JudgeChannelID:       ptr(300),
		DictionaryChannelID:  ptr(400),
	}

	assert.True(t, IsExcludedChannel(settings, 100))
	assert.True(t, IsExcludedChannel(settings, 200))
	assert.True(t, IsExcludedChannel(settings, 300))

	// Dictionary channels do not block mention chat.
	assert.False(t, IsExcludedChannel(settings, 400))
	assert.False(t, IsExcludedChannel(settings, 500))
	assert.False(t, IsExcludedChannel(entities.NewGuildSettings(1), 100))
}

package settings

import (
	"owl/domain/services"

	"github.com/bwmarrin/discordgo"
)

// Feature handles guild channel-role configuration
type Feature struct {
	settingsService services.GuildSettingsService
}

// NewFeature creates a new settings feature instance
func NewFeature(settingsService services.GuildSettingsService) *Feature {
	return &Feature{
		settingsService: settingsService,
	}
}

// HandleCommand routes settings commands to appropriate handlers
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		return
	}

	switch options[0].Name {
	case "translation-channel":
		f.handleTranslationChannel(s, i)
	case "voice-channel":
		f.handleVoiceChannel(s, i)
	case "judge-channel":
		f.handleJudgeChannel(s, i)
	case "dictionary-channel":
		f.handleDictionaryChannel(s, i)
	}
}

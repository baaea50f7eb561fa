package settings

import (
	"context"
	"fmt"
	"strconv"

	"owl/bot/common"
	"owl/domain/entities"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// handleTranslationChannel handles the /settings translation-channel command
func (f *Feature) handleTranslationChannel(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleChannelRole(s, i, entities.RoleTranslation, "Translation")
}

// handleVoiceChannel handles the /settings voice-channel command
func (f *Feature) handleVoiceChannel(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleChannelRole(s, i, entities.RoleVoice, "Voice")
}

// handleJudgeChannel handles the /settings judge-channel command
func (f *Feature) handleJudgeChannel(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleChannelRole(s, i, entities.RoleJudge, "Judge")
}

// handleDictionaryChannel handles the /settings dictionary-channel command
func (f *Feature) handleDictionaryChannel(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleChannelRole(s, i, entities.RoleDictionary, "Dictionary")
}

// handleChannelRole sets or clears one channel role. Omitting the channel
// option clears the role.
func (f *Feature) handleChannelRole(s *discordgo.Session, i *discordgo.InteractionCreate, role entities.ChannelRole, label string) {
	// Check if user has admin permissions
	if !common.IsUserAdmin(s, i.GuildID, i.Member.User.ID) {
		common.RespondWithError(s, i, "❌ You need administrator permissions to use this command")
		return
	}

	guildID, err := strconv.ParseInt(i.GuildID, 10, 64)
	if err != nil {
		log.Errorf("Failed to parse guild ID: %v", err)
		common.RespondWithError(s, i, "❌ Failed to process command")
		return
	}

	// Get the channel option (if provided)
	options := i.ApplicationCommandData().Options[0].Options
	var channelID *int64

	if len(options) > 0 && options[0].Name == "channel" {
		channelIDStr := options[0].ChannelValue(s).ID
		if channelIDStr != "" {
			channelIDInt, err := strconv.ParseInt(channelIDStr, 10, 64)
			if err != nil {
				log.Errorf("Failed to parse channel ID: %v", err)
				common.RespondWithError(s, i, "❌ Invalid channel selected")
				return
			}
			channelID = &channelIDInt
		}
	}

	ctx := context.Background()

	if channelID != nil {
		if _, err := f.settingsService.AssignChannelRole(ctx, guildID, role, *channelID); err != nil {
			log.Errorf("Failed to assign %s channel: %v", role, err)
			common.RespondWithError(s, i, "❌ Failed to update settings")
			return
		}
	} else {
		if _, err := f.settingsService.ClearChannelRole(ctx, guildID, role); err != nil {
			log.Errorf("Failed to clear %s channel: %v", role, err)
			common.RespondWithError(s, i, "❌ Failed to update settings")
			return
		}
	}

	var message string
	if channelID != nil {
		message = fmt.Sprintf("✅ %s channel updated to <#%d>", label, *channelID)
	} else {
		message = fmt.Sprintf("✅ %s channel cleared", label)
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})

	if err != nil {
		log.Errorf("Failed to respond to interaction: %v", err)
	}
}

// HandleShow handles the /owl settings subcommand, showing the current
// channel configuration for the guild.
func (f *Feature) HandleShow(s *discordgo.Session, i *discordgo.InteractionCreate) {
	guildID, err := strconv.ParseInt(i.GuildID, 10, 64)
	if err != nil {
		log.Errorf("Failed to parse guild ID: %v", err)
		common.RespondWithError(s, i, "❌ Failed to process command")
		return
	}

	ctx := context.Background()
	settings, err := f.settingsService.GetSettings(ctx, guildID)
	if err != nil {
		log.Errorf("Failed to get settings for guild %d: %v", guildID, err)
		common.RespondWithError(s, i, "❌ Failed to load settings")
		return
	}

	embed := common.InfoEmbed("Channel Settings", "Channels Owl is currently watching in this guild.")
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Translation", Value: channelMention(settings.TranslationChannelID), Inline: true},
		{Name: "Voice", Value: channelMention(settings.VoiceChannelID), Inline: true},
		{Name: "Judge", Value: channelMention(settings.JudgeChannelID), Inline: true},
		{Name: "Dictionary", Value: channelMention(settings.DictionaryChannelID), Inline: true},
	}

	if err := common.RespondWithEmbed(s, i, embed, true); err != nil {
		log.Errorf("Failed to respond to interaction: %v", err)
	}
}

func channelMention(channelID *int64) string {
	if channelID == nil {
		return "not set"
	}
	return fmt.Sprintf("<#%d>", *channelID)
}

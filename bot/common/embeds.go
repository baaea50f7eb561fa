package common

import (
	"github.com/bwmarrin/discordgo"
)

// Embed colors
const (
	ColorPrimary = 0x9B59B6 // owl purple
	ColorSuccess = 0x2ECC71
	ColorError   = 0xE74C3C
	ColorInfo    = 0x3498DB
)

// ResultEmbed builds a standard result embed.
func ResultEmbed(title, body string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: body,
		Color:       ColorPrimary,
	}
}

// ErrorEmbed builds a short failure notice embed.
func ErrorEmbed(body string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "⚠️ Something went wrong",
		Description: body,
		Color:       ColorError,
	}
}

// InfoEmbed builds an informational embed.
func InfoEmbed(title, body string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: body,
		Color:       ColorInfo,
	}
}

package interfaces

import (
	"context"

	"owl/domain/entities"
)

// GuildSettingsRepository defines persistence for per-guild settings.
type GuildSettingsRepository interface {
	// GetSettings returns the guild's stored settings, or a default value
	// with all roles unassigned if no row exists. A missing row is never
	// created on read.
	GetSettings(ctx context.Context, guildID int64) (*entities.GuildSettings, error)

	// UpsertSettings atomically merges the patch into the guild's row,
	// creating the row if absent, and returns the merged settings. Fields
	// omitted from the patch are left untouched.
	UpsertSettings(ctx context.Context, guildID int64, patch entities.SettingsPatch) (*entities.GuildSettings, error)
}

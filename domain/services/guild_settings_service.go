package services

import (
	"context"
	"fmt"

	"owl/domain/entities"
	"owl/domain/interfaces"
)

// GuildSettingsService owns reads and role assignments for guild settings.
type GuildSettingsService interface {
	GetSettings(ctx context.Context, guildID int64) (*entities.GuildSettings, error)
	AssignChannelRole(ctx context.Context, guildID int64, role entities.ChannelRole, channelID int64) (*entities.GuildSettings, error)
	ClearChannelRole(ctx context.Context, guildID int64, role entities.ChannelRole) (*entities.GuildSettings, error)
}

// guildSettingsService implements the GuildSettingsService interface
type guildSettingsService struct {
	guildSettingsRepo interfaces.GuildSettingsRepository
}

// NewGuildSettingsService creates a new guild settings service
func NewGuildSettingsService(guildSettingsRepo interfaces.GuildSettingsRepository) GuildSettingsService {
	return &guildSettingsService{
		guildSettingsRepo: guildSettingsRepo,
	}
}

// GetSettings retrieves guild settings, defaulting to all roles unassigned
// for a guild with no stored row.
func (s *guildSettingsService) GetSettings(ctx context.Context, guildID int64) (*entities.GuildSettings, error) {
	settings, err := s.guildSettingsRepo.GetSettings(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to get guild settings: %w", err)
	}
	return settings, nil
}

// AssignChannelRole points a role at a channel. Any other role in the guild
// currently claiming the same channel is cleared in the same write, keeping
// resolution to at most one role per channel.
func (s *guildSettingsService) AssignChannelRole(ctx context.Context, guildID int64, role entities.ChannelRole, channelID int64) (*entities.GuildSettings, error) {
	current, err := s.guildSettingsRepo.GetSettings(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to get guild settings: %w", err)
	}

	patch := entities.SettingsPatch{}
	patch.Set(role, channelID)
	for _, other := range current.RolesForChannel(channelID) {
		if other != role {
			patch.Clear = append(patch.Clear, other)
		}
	}

	settings, err := s.guildSettingsRepo.UpsertSettings(ctx, guildID, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update guild settings: %w", err)
	}
	return settings, nil
}

// ClearChannelRole unassigns exactly one role, leaving the others untouched.
func (s *guildSettingsService) ClearChannelRole(ctx context.Context, guildID int64, role entities.ChannelRole) (*entities.GuildSettings, error) {
	settings, err := s.guildSettingsRepo.UpsertSettings(ctx, guildID, entities.SettingsPatch{
		Clear: []entities.ChannelRole{role},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update guild settings: %w", err)
	}
	return settings, nil
}

package repository

import (
	"context"
	"fmt"

	"owl/database"
	"owl/domain/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Queryable is the subset of pgx operations the repositories need, satisfied
// by both a pool and a transaction.
type Queryable interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// GuildSettingsRepository persists per-guild channel routing settings.
type GuildSettingsRepository struct {
	q Queryable
}

// NewGuildSettingsRepository creates a new guild settings repository
func NewGuildSettingsRepository(db *database.DB) *GuildSettingsRepository {
	return &GuildSettingsRepository{q: db.Pool}
}

// NewGuildSettingsRepositoryWithTx creates a new guild settings repository with a transaction
func NewGuildSettingsRepositoryWithTx(tx Queryable) *GuildSettingsRepository {
	return &GuildSettingsRepository{q: tx}
}

// GetSettings retrieves a guild's settings. A guild with no stored row gets
// the default value back; the row itself is only ever created by a write.
func (r *GuildSettingsRepository) GetSettings(ctx context.Context, guildID int64) (*entities.GuildSettings, error) {
	query := `
		SELECT guild_id, translation_channel_id, voice_channel_id, judge_channel_id, dictionary_channel_id, updated_at
		FROM guild_settings
		WHERE guild_id = $1
	`

	var settings entities.GuildSettings
	err := r.q.QueryRow(ctx, query, guildID).Scan(
		&settings.GuildID,
		&settings.TranslationChannelID,
		&settings.VoiceChannelID,
		&settings.JudgeChannelID,
		&settings.DictionaryChannelID,
		&settings.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return entities.NewGuildSettings(guildID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get guild settings for guild %d: %w", guildID, err)
	}

	return &settings, nil
}

// UpsertSettings merges the patch into the guild's row in a single
// insert-or-update statement. Unpatched fields keep their stored value, so
// concurrent patches to different fields both take effect.
func (r *GuildSettingsRepository) UpsertSettings(ctx context.Context, guildID int64, patch entities.SettingsPatch) (*entities.GuildSettings, error) {
	query := `
		INSERT INTO guild_settings (guild_id, translation_channel_id, voice_channel_id, judge_channel_id, dictionary_channel_id, updated_at)
		VALUES ($1, $2, $3, $4, $5, now())
		ON CONFLICT (guild_id) DO UPDATE SET
			translation_channel_id = CASE WHEN $6 THEN NULL ELSE COALESCE($2, guild_settings.translation_channel_id) END,
			voice_channel_id       = CASE WHEN $7 THEN NULL ELSE COALESCE($3, guild_settings.voice_channel_id) END,
			judge_channel_id       = CASE WHEN $8 THEN NULL ELSE COALESCE($4, guild_settings.judge_channel_id) END,
			dictionary_channel_id  = CASE WHEN $9 THEN NULL ELSE COALESCE($5, guild_settings.dictionary_channel_id) END,
			updated_at = now()
		RETURNING guild_id, translation_channel_id, voice_channel_id, judge_channel_id, dictionary_channel_id, updated_at
	`

	var settings entities.GuildSettings
	err := r.q.QueryRow(ctx, query,
		guildID,
		patch.TranslationChannelID,
		patch.VoiceChannelID,
		patch.JudgeChannelID,
		patch.DictionaryChannelID,
		patch.Clears(entities.RoleTranslation),
		patch.Clears(entities.RoleVoice),
		patch.Clears(entities.RoleJudge),
		patch.Clears(entities.RoleDictionary),
	).Scan(
		&settings.GuildID,
		&settings.TranslationChannelID,
		&settings.VoiceChannelID,
		&settings.JudgeChannelID,
		&settings.DictionaryChannelID,
		&settings.UpdatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to upsert guild settings for guild %d: %w", guildID, err)
	}

	return &settings, nil
}

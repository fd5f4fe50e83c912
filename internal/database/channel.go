package database

import (
	"database/sql"
	"fmt"

	"github.com/diegoclair/shift-roster/internal/domain/contract"
	"github.com/diegoclair/shift-roster/internal/domain/entity"
)

type channelRepo struct {
	db dbConn
}

func newChannelRepo(db dbConn) contract.ChannelRepo {
	return &channelRepo{db: db}
}

func (r *channelRepo) Create(channel *entity.Channel) error {
	query := `
		INSERT INTO channels (slack_channel_id, slack_channel_name, slack_team_id, is_active)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		channel.SlackChannelID,
		channel.SlackChannelName,
		channel.SlackTeamID,
		channel.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to create channel: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	channel.ID = id
	return nil
}

const channelColumns = `id, slack_channel_id, slack_channel_name, slack_team_id, is_active, created_at, updated_at`

func scanChannel(row *sql.Row) (*entity.Channel, error) {
	channel := &entity.Channel{}
	err := row.Scan(
		&channel.ID,
		&channel.SlackChannelID,
		&channel.SlackChannelName,
		&channel.SlackTeamID,
		&channel.IsActive,
		&channel.CreatedAt,
		&channel.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get channel: %w", err)
	}

	return channel, nil
}

func (r *channelRepo) GetBySlackID(slackChannelID string) (*entity.Channel, error) {
	query := `SELECT ` + channelColumns + ` FROM channels WHERE slack_channel_id = ?`
	return scanChannel(r.db.QueryRow(query, slackChannelID))
}

func (r *channelRepo) GetByID(id int64) (*entity.Channel, error) {
	query := `SELECT ` + channelColumns + ` FROM channels WHERE id = ?`
	return scanChannel(r.db.QueryRow(query, id))
}

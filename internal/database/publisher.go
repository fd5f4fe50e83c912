package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/diegoclair/shift-roster/internal/domain/contract"
	"github.com/diegoclair/shift-roster/internal/domain/entity"
)

type publisherRepo struct {
	db dbConn
}

func newPublisherRepo(db dbConn) contract.PublisherRepo {
	return &publisherRepo{db: db}
}

func (r *publisherRepo) Create(publisher *entity.Publisher) error {
	query := `
		INSERT INTO publishers (channel_id, publish_day, publish_time, utc_offset, is_enabled)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		publisher.ChannelID,
		publisher.PublishDay,
		publisher.PublishTime,
		publisher.UTCOffset,
		publisher.IsEnabled,
	)
	if err != nil {
		return fmt.Errorf("failed to create publisher: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	publisher.ID = id
	return nil
}

func (r *publisherRepo) GetByChannelID(channelID int64) (*entity.Publisher, error) {
	publisher := &entity.Publisher{}
	query := `
		SELECT id, channel_id, publish_day, publish_time, utc_offset, is_enabled, created_at, updated_at
		FROM publishers
		WHERE channel_id = ?
	`

	err := r.db.QueryRow(query, channelID).Scan(
		&publisher.ID,
		&publisher.ChannelID,
		&publisher.PublishDay,
		&publisher.PublishTime,
		&publisher.UTCOffset,
		&publisher.IsEnabled,
		&publisher.CreatedAt,
		&publisher.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get publisher: %w", err)
	}

	return publisher, nil
}

func (r *publisherRepo) Update(publisher *entity.Publisher) error {
	query := `
		UPDATE publishers SET
			publish_day = ?,
			publish_time = ?,
			utc_offset = ?,
			is_enabled = ?,
			updated_at = ?
		WHERE channel_id = ?
	`

	_, err := r.db.Exec(query,
		publisher.PublishDay,
		publisher.PublishTime,
		publisher.UTCOffset,
		publisher.IsEnabled,
		time.Now(),
		publisher.ChannelID,
	)
	if err != nil {
		return fmt.Errorf("failed to update publisher: %w", err)
	}

	return nil
}

func (r *publisherRepo) GetEnabled() ([]*entity.Publisher, error) {
	query := `
		SELECT p.id, p.channel_id, p.publish_day, p.publish_time, p.utc_offset, p.is_enabled, p.created_at, p.updated_at
		FROM publishers p
		JOIN channels c ON c.id = p.channel_id
		WHERE p.is_enabled = 1 AND c.is_active = 1
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get enabled publishers: %w", err)
	}
	defer rows.Close()

	var publishers []*entity.Publisher
	for rows.Next() {
		publisher := &entity.Publisher{}
		err := rows.Scan(
			&publisher.ID,
			&publisher.ChannelID,
			&publisher.PublishDay,
			&publisher.PublishTime,
			&publisher.UTCOffset,
			&publisher.IsEnabled,
			&publisher.CreatedAt,
			&publisher.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan publisher: %w", err)
		}
		publishers = append(publishers, publisher)
	}

	return publishers, rows.Err()
}

func (r *publisherRepo) SetEnabled(channelID int64, enabled bool) error {
	query := `
		UPDATE publishers SET
			is_enabled = ?,
			updated_at = ?
		WHERE channel_id = ?
	`

	_, err := r.db.Exec(query, enabled, time.Now(), channelID)
	if err != nil {
		return fmt.Errorf("failed to set publisher enabled status: %w", err)
	}

	return nil
}

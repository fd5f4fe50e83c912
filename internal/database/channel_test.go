package database

import (
	"testing"

	"github.com/diegoclair/shift-roster/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestChannel(t *testing.T, db *DB, slackID string) *entity.Channel {
	t.Helper()

	channel := &entity.Channel{
		SlackChannelID:   slackID,
		SlackChannelName: "roster-" + slackID,
		SlackTeamID:      "T123456789",
		IsActive:         true,
	}
	require.NoError(t, newChannelRepo(db.conn).Create(channel))
	return channel
}

func TestChannelRepo_Create(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newChannelRepo(db.conn)

	channel := &entity.Channel{
		SlackChannelID:   "C123456789",
		SlackChannelName: "shift-roster",
		SlackTeamID:      "T123456789",
		IsActive:         true,
	}

	err := repo.Create(channel)
	require.NoError(t, err, "Failed to create channel")
	assert.NotZero(t, channel.ID, "Expected channel ID to be set after creation")

	duplicate := *channel
	err = repo.Create(&duplicate)
	require.Error(t, err, "Expected unique violation on slack_channel_id")
}

func TestChannelRepo_Get(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newChannelRepo(db.conn)
	original := createTestChannel(t, db, "C123456789")

	t.Run("should get by slack id", func(t *testing.T) {
		found, err := repo.GetBySlackID("C123456789")
		require.NoError(t, err)
		require.NotNil(t, found)

		assert.Equal(t, original.ID, found.ID)
		assert.Equal(t, original.SlackChannelName, found.SlackChannelName)
		assert.Equal(t, original.SlackTeamID, found.SlackTeamID)
		assert.True(t, found.IsActive)
		assert.False(t, found.CreatedAt.IsZero())
	})

	t.Run("should get by id", func(t *testing.T) {
		found, err := repo.GetByID(original.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, original.SlackChannelID, found.SlackChannelID)
	})

	t.Run("should return nil when not found", func(t *testing.T) {
		found, err := repo.GetBySlackID("NONEXISTENT")
		require.NoError(t, err)
		assert.Nil(t, found)

		found, err = repo.GetByID(9999)
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}

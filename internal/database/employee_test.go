package database

import (
	"testing"

	"github.com/diegoclair/shift-roster/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestEmployee(t *testing.T, db *DB, channelID int64, slackUserID string) *entity.Employee {
	t.Helper()

	employee := &entity.Employee{
		ChannelID:     channelID,
		SlackUserID:   slackUserID,
		SlackUserName: "user-" + slackUserID,
		DisplayName:   "User " + slackUserID,
		IsActive:      true,
	}
	require.NoError(t, newEmployeeRepo(db.conn).Create(employee))
	return employee
}

func TestEmployeeRepo_Create(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newEmployeeRepo(db.conn)
	channel := createTestChannel(t, db, "C123456789")

	t.Run("should create employee successfully", func(t *testing.T) {
		employee := &entity.Employee{
			ChannelID:     channel.ID,
			SlackUserID:   "U123456789",
			SlackUserName: "doi",
			DisplayName:   "Doi",
			WeekendOff:    true,
			IsActive:      true,
		}

		err := repo.Create(employee)
		require.NoError(t, err)
		assert.NotZero(t, employee.ID)

		found, err := repo.GetByChannelAndSlackID(channel.ID, "U123456789")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "Doi", found.DisplayName)
		assert.True(t, found.WeekendOff)
		assert.False(t, found.JoinedAt.IsZero())
	})

	t.Run("should reject the same user twice in a channel", func(t *testing.T) {
		err := repo.Create(&entity.Employee{ChannelID: channel.ID, SlackUserID: "U123456789", IsActive: true})
		require.Error(t, err)
	})

	t.Run("should allow the same user in another channel", func(t *testing.T) {
		other := createTestChannel(t, db, "C987654321")
		err := repo.Create(&entity.Employee{ChannelID: other.ID, SlackUserID: "U123456789", IsActive: true})
		require.NoError(t, err)
	})
}

func TestEmployeeRepo_GetActiveByChannel(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newEmployeeRepo(db.conn)
	channel := createTestChannel(t, db, "C123456789")

	first := createTestEmployee(t, db, channel.ID, "U1")
	second := createTestEmployee(t, db, channel.ID, "U2")
	third := createTestEmployee(t, db, channel.ID, "U3")

	_, err := db.conn.Exec(`UPDATE employees SET is_active = 0 WHERE id = ?`, second.ID)
	require.NoError(t, err)

	employees, err := repo.GetActiveByChannel(channel.ID)
	require.NoError(t, err)
	require.Len(t, employees, 2)
	assert.Equal(t, first.ID, employees[0].ID)
	assert.Equal(t, third.ID, employees[1].ID)

	employees, err = repo.GetActiveByChannel(9999)
	require.NoError(t, err)
	assert.Empty(t, employees)
}

func TestEmployeeRepo_SetWeekendOffAndDelete(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newEmployeeRepo(db.conn)
	channel := createTestChannel(t, db, "C123456789")
	employee := createTestEmployee(t, db, channel.ID, "U1")

	require.NoError(t, repo.SetWeekendOff(employee.ID, true))
	found, err := repo.GetByChannelAndSlackID(channel.ID, "U1")
	require.NoError(t, err)
	assert.True(t, found.WeekendOff)

	require.NoError(t, repo.SetWeekendOff(employee.ID, false))
	found, err = repo.GetByChannelAndSlackID(channel.ID, "U1")
	require.NoError(t, err)
	assert.False(t, found.WeekendOff)

	require.NoError(t, repo.Delete(employee.ID))
	found, err = repo.GetByChannelAndSlackID(channel.ID, "U1")
	require.NoError(t, err)
	assert.Nil(t, found)
}

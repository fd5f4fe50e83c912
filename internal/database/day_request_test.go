package database

import (
	"testing"

	"github.com/diegoclair/shift-roster/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayRequestRepo_Upsert(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newDayRequestRepo(db.conn)
	channel := createTestChannel(t, db, "C123456789")
	employee := createTestEmployee(t, db, channel.ID, "U1")

	request := &entity.DayRequest{EmployeeID: employee.ID, Day: "2024-07-10", Kind: entity.RequestPreferred}
	require.NoError(t, repo.Upsert(request))
	assert.NotZero(t, request.ID)

	again := &entity.DayRequest{EmployeeID: employee.ID, Day: "2024-07-10", Kind: entity.RequestOff}
	require.NoError(t, repo.Upsert(again))
	assert.Equal(t, request.ID, again.ID, "same employee and day updates in place")

	requests, err := repo.ListByChannel(channel.ID, "2024-07-01", "2024-07-31")
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, entity.RequestOff, requests[0].Kind)
	assert.Equal(t, "U1", requests[0].SlackUserID)

	err = repo.Upsert(&entity.DayRequest{EmployeeID: employee.ID, Day: "2024-07-11", Kind: "holiday"})
	require.Error(t, err, "kind is constrained by the schema")
}

func TestDayRequestRepo_ListByChannel(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newDayRequestRepo(db.conn)
	channel := createTestChannel(t, db, "C123456789")
	other := createTestChannel(t, db, "C987654321")

	u1 := createTestEmployee(t, db, channel.ID, "U1")
	u2 := createTestEmployee(t, db, channel.ID, "U2")
	stranger := createTestEmployee(t, db, other.ID, "U9")

	for _, r := range []*entity.DayRequest{
		{EmployeeID: u2.ID, Day: "2024-07-05", Kind: entity.RequestOff},
		{EmployeeID: u1.ID, Day: "2024-07-05", Kind: entity.RequestPreferred},
		{EmployeeID: u1.ID, Day: "2024-07-02", Kind: entity.RequestOff},
		{EmployeeID: u1.ID, Day: "2024-08-01", Kind: entity.RequestOff},
		{EmployeeID: stranger.ID, Day: "2024-07-03", Kind: entity.RequestOff},
	} {
		require.NoError(t, repo.Upsert(r))
	}

	requests, err := repo.ListByChannel(channel.ID, "2024-07-01", "2024-07-31")
	require.NoError(t, err)
	require.Len(t, requests, 3)

	assert.Equal(t, "2024-07-02", requests[0].Day)
	assert.Equal(t, "U1", requests[1].SlackUserID)
	assert.Equal(t, "U2", requests[2].SlackUserID)

	require.NoError(t, repo.Delete(u1.ID, "2024-07-02"))
	requests, err = repo.ListByChannel(channel.ID, "2024-07-01", "2024-07-31")
	require.NoError(t, err)
	assert.Len(t, requests, 2)
}

func TestDayRequestRepo_CascadeOnEmployeeDelete(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newDayRequestRepo(db.conn)
	channel := createTestChannel(t, db, "C123456789")
	employee := createTestEmployee(t, db, channel.ID, "U1")

	require.NoError(t, repo.Upsert(&entity.DayRequest{EmployeeID: employee.ID, Day: "2024-07-02", Kind: entity.RequestOff}))
	require.NoError(t, newEmployeeRepo(db.conn).Delete(employee.ID))

	var count int
	require.NoError(t, db.conn.QueryRow(`SELECT COUNT(*) FROM day_requests`).Scan(&count))
	assert.Zero(t, count)
}

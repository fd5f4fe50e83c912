package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/diegoclair/shift-roster/internal/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type generatedRoster struct {
	ID         string                               `json:"id"`
	Roster     []string                             `json:"roster"`
	Schedule   map[string]map[string]map[string]any `json:"schedule"`
	Shortfalls []schedule.Shortfall                 `json:"shortfalls"`
}

func runCmd(t *testing.T, args ...string) (*bytes.Buffer, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newGenerateCmd(&out)
	cmd.SetArgs(args)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	return &out, cmd.Execute()
}

func TestGenerateCmd(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "prefs.json")
	require.NoError(t, os.WriteFile(input, []byte(`{"offDays":{"c":["2024-07-03"]},"preferredDays":{"d":["2024-07-09"]}}`), 0o600))

	t.Run("Should print the seeded roster as JSON", func(t *testing.T) {
		out, err := runCmd(t, "--roster", "a,b,c,d,e", "--weekend-off", "a", "--month", "2024-07", "--input", input, "--seed", "7")
		require.NoError(t, err)

		var got generatedRoster
		require.NoError(t, json.Unmarshal(out.Bytes(), &got))
		assert.NotEmpty(t, got.ID)
		assert.Equal(t, []string{"a", "b", "c", "d", "e"}, got.Roster)
		assert.Len(t, got.Schedule, 31)
		assert.Equal(t, "off", got.Schedule["2024-07-03"]["c"]["tag"])
		assert.Equal(t, "preferred", got.Schedule["2024-07-09"]["d"]["tag"])
		assert.Equal(t, "rest", got.Schedule["2024-07-06"]["a"]["label"])
	})

	t.Run("Should be reproducible with the same seed", func(t *testing.T) {
		first, err := runCmd(t, "--roster", "a,b,c,d,e", "--month", "2024-07", "--seed", "3")
		require.NoError(t, err)
		second, err := runCmd(t, "--roster", "a,b,c,d,e", "--month", "2024-07", "--seed", "3")
		require.NoError(t, err)

		var a, b generatedRoster
		require.NoError(t, json.Unmarshal(first.Bytes(), &a))
		require.NoError(t, json.Unmarshal(second.Bytes(), &b))
		assert.Equal(t, a.Schedule, b.Schedule)
		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("Should fail in strict mode with shortfalls", func(t *testing.T) {
		out, err := runCmd(t, "--roster", "a,b", "--start", "2024-07-01", "--days", "7", "--strict", "--seed", "1")
		require.ErrorIs(t, err, errStrict)
		assert.NotEmpty(t, out.String())
	})

	t.Run("Should reject month with start", func(t *testing.T) {
		_, err := runCmd(t, "--roster", "a", "--month", "2024-07", "--start", "2024-07-01", "--days", "3")
		require.Error(t, err)
	})

	t.Run("Should reject a period past the limit", func(t *testing.T) {
		out, err := runCmd(t, "--roster", "a,b,c", "--start", "2024-07-01", "--days", "1000000000")
		require.ErrorIs(t, err, schedule.ErrPeriodTooLong)
		assert.Empty(t, out.String())
	})

	t.Run("Should require a roster", func(t *testing.T) {
		_, err := runCmd(t, "--month", "2024-07")
		require.EqualError(t, err, "--roster is required")
	})

	t.Run("Should reject a bad offset", func(t *testing.T) {
		_, err := runCmd(t, "--roster", "a", "--month", "2024-07", "--offset", "Tokyo")
		require.ErrorIs(t, err, schedule.ErrInvalidOffset)
	})
}

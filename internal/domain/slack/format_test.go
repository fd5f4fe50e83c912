package slack

import (
	"strings"
	"testing"
	"time"

	"github.com/diegoclair/shift-roster/internal/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type firstSource struct{}

func (firstSource) IntN(int) int { return 0 }

func TestFormatSchedule(t *testing.T) {
	loc := time.FixedZone("+09:00", 9*3600)
	in := schedule.Input{
		Roster: []string{"U1", "U2", "U3", "U4", "U5"},
		Period: schedule.Period{Start: time.Date(2024, 7, 1, 0, 0, 0, 0, loc), Days: 2, Location: loc},
	}

	result, err := schedule.NewEngine(firstSource{}).Generate(in)
	require.NoError(t, err)

	text := FormatSchedule(result)
	lines := strings.Split(text, "\n")

	assert.Equal(t, "📅 *Duty roster 2024-07-01 to 2024-07-02*", lines[0])
	// firstSource rests the first two and gives roles in roster order.
	assert.Equal(t, "`07-01 Mon`  公 <@U1> <@U2>  早 <@U3>  ★ <@U4>  検 <@U5>", lines[2])
	assert.Contains(t, text, "公 rest  早 early  ★ cleaning  検 inspection")
	assert.NotContains(t, text, "unmet targets")
}

func TestFormatSchedule_Shortfalls(t *testing.T) {
	in := schedule.Input{
		Roster: []string{"U1", "U2"},
		Period: schedule.Period{Start: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), Days: 3},
	}

	result, err := schedule.NewEngine(firstSource{}).Generate(in)
	require.NoError(t, err)
	require.NotEmpty(t, result.Shortfalls)

	text := FormatSchedule(result)
	assert.Contains(t, text, "早 -")
	assert.Contains(t, text, "unmet targets: 2024-07-01 early (0/1)")
	assert.Contains(t, text, "more")
}

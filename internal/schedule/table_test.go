package schedule

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable(t *testing.T) {
	days, err := GenerateDays(julyWeek(2))
	require.NoError(t, err)

	table := NewTable(days, []string{"a", "b"})

	for d := range days {
		for e := range table.Roster() {
			assert.Equal(t, Cell{Label: LabelNone}, table.Cell(d, e))
		}
	}

	d, ok := table.DayIndex("2024-07-02")
	require.True(t, ok)
	assert.Equal(t, 1, d)
	_, ok = table.DayIndex("2024-08-01")
	assert.False(t, ok)

	e, ok := table.EmployeeIndex("b")
	require.True(t, ok)
	assert.Equal(t, 1, e)

	table.Set(0, 0, LabelRest, true, TagOff)
	table.Set(0, 1, LabelRest, false, TagNone)
	assert.Equal(t, 2, table.CountByLabel(0, LabelRest))
	assert.Equal(t, 0, table.CountByLabel(1, LabelRest))

	assert.Panics(t, func() { table.Set(0, 0, LabelEarly, false, TagNone) })
	table.Set(0, 1, LabelEarly, false, TagNone)
	assert.Equal(t, 1, table.CountByLabel(0, LabelRest))
}

func TestTable_ScheduleIsACopy(t *testing.T) {
	days, err := GenerateDays(julyWeek(1))
	require.NoError(t, err)

	table := NewTable(days, []string{"a"})
	s := table.Schedule()
	table.Set(0, 0, LabelRest, false, TagNone)

	cell, ok := s.Get("2024-07-01", "a")
	require.True(t, ok)
	assert.Equal(t, LabelNone, cell.Label)
}

func TestSchedule_MarshalJSONKeepsOrder(t *testing.T) {
	days, err := GenerateDays(julyWeek(2))
	require.NoError(t, err)

	table := NewTable(days, []string{"zed", "amy"})
	table.Set(0, 0, LabelRest, true, TagOff)
	table.Set(1, 1, LabelEarly, false, TagNone)

	b, err := json.Marshal(table.Schedule())
	require.NoError(t, err)

	want := `{"2024-07-01":{"zed":{"label":"rest","symbol":"公","locked":true,"tag":"off"},` +
		`"amy":{"label":"none","symbol":"","locked":false}},` +
		`"2024-07-02":{"zed":{"label":"none","symbol":"","locked":false},` +
		`"amy":{"label":"early","symbol":"早","locked":false}}}`
	assert.Equal(t, want, string(b))
}

func TestResult_Err(t *testing.T) {
	r := &Result{}
	assert.NoError(t, r.Err())

	r.Shortfalls = []Shortfall{{Day: "2024-07-01", Kind: ShortfallEarly, Want: 1}}
	require.ErrorIs(t, r.Err(), ErrQuotaShortfall)
	assert.False(t, r.RestShortfall("2024-07-01"))
}

func TestSchedule_GetUnknownKeys(t *testing.T) {
	days, err := GenerateDays(julyWeek(3))
	require.NoError(t, err)

	table := NewTable(days, []string{"a", "b"})
	table.Set(2, 1, LabelCleaning, false, TagNone)
	s := table.Schedule()

	cell, ok := s.Get("2024-07-03", "b")
	require.True(t, ok)
	assert.Equal(t, LabelCleaning, cell.Label)

	_, ok = s.Get("2024-07-04", "b")
	assert.False(t, ok)

	_, ok = s.Get("2024-07-01", "c")
	assert.False(t, ok)
}

package schedule

import "fmt"

// Table is the day x employee grid the engine mutates. It is owned by a
// single generation and is not safe for concurrent use.
type Table struct {
	days      []Day
	roster    []string
	cells     [][]Cell
	dayIdx    map[string]int
	employIdx map[string]int
}

// NewTable returns a table with every cell set to LabelNone, unlocked.
func NewTable(days []Day, roster []string) *Table {
	t := &Table{
		days:      days,
		roster:    roster,
		cells:     make([][]Cell, len(days)),
		dayIdx:    make(map[string]int, len(days)),
		employIdx: make(map[string]int, len(roster)),
	}
	for d, day := range days {
		row := make([]Cell, len(roster))
		for e := range row {
			row[e] = Cell{Label: LabelNone}
		}
		t.cells[d] = row
		t.dayIdx[day.Key] = d
	}
	for e, id := range roster {
		t.employIdx[id] = e
	}
	return t
}

func (t *Table) Days() []Day       { return t.days }
func (t *Table) Roster() []string  { return t.roster }
func (t *Table) Cell(d, e int) Cell { return t.cells[d][e] }

// DayIndex returns the row of a day key, or false when the key is outside the period.
func (t *Table) DayIndex(key string) (int, bool) {
	d, ok := t.dayIdx[key]
	return d, ok
}

func (t *Table) EmployeeIndex(id string) (int, bool) {
	e, ok := t.employIdx[id]
	return e, ok
}

// Set overwrites a cell. Writing a locked cell is a programming error and panics;
// callers check Cell(d, e).Locked first.
func (t *Table) Set(d, e int, label Label, locked bool, tag Tag) {
	if t.cells[d][e].Locked {
		panic(fmt.Sprintf("schedule: cell %s/%s is locked", t.days[d].Key, t.roster[e]))
	}
	t.cells[d][e] = Cell{Label: label, Locked: locked, Tag: tag}
}

func (t *Table) CountByLabel(d int, label Label) int {
	n := 0
	for _, c := range t.cells[d] {
		if c.Label == label {
			n++
		}
	}
	return n
}

// Schedule copies the table into the output form.
func (t *Table) Schedule() *Schedule {
	cells := make([][]Cell, len(t.cells))
	for d, row := range t.cells {
		cells[d] = append([]Cell(nil), row...)
	}
	return &Schedule{
		days:      t.days,
		roster:    t.roster,
		cells:     cells,
		dayIdx:    t.dayIdx,
		employIdx: t.employIdx,
	}
}

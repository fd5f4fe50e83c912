package schedule

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Schedule is the finished grid. Days iterate in ascending key order and
// employees in roster order.
type Schedule struct {
	days      []Day
	roster    []string
	cells     [][]Cell
	dayIdx    map[string]int
	employIdx map[string]int
}

func (s *Schedule) Days() []Day      { return s.days }
func (s *Schedule) Roster() []string { return s.roster }

// Get returns the cell of an employee on a day key.
func (s *Schedule) Get(day, employee string) (Cell, bool) {
	d, ok := s.dayIdx[day]
	if !ok {
		return Cell{}, false
	}
	e, ok := s.employIdx[employee]
	if !ok {
		return Cell{}, false
	}
	return s.cells[d][e], true
}

// Row returns the cells of day index d keyed by employee.
func (s *Schedule) Row(d int) map[string]Cell {
	row := make(map[string]Cell, len(s.roster))
	for e, id := range s.roster {
		row[id] = s.cells[d][e]
	}
	return row
}

// Holders lists the employees holding label on day index d.
func (s *Schedule) Holders(d int, label Label) []string {
	var ids []string
	for e, id := range s.roster {
		if s.cells[d][e].Label == label {
			ids = append(ids, id)
		}
	}
	return ids
}

// Map returns the schedule as dayKey -> employee -> cell.
func (s *Schedule) Map() map[string]map[string]Cell {
	out := make(map[string]map[string]Cell, len(s.days))
	for d, day := range s.days {
		out[day.Key] = s.Row(d)
	}
	return out
}

// MarshalJSON keeps day and roster order instead of sorting map keys.
func (s *Schedule) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for d, day := range s.days {
		if d > 0 {
			buf.WriteByte(',')
		}
		if err := writeKey(&buf, day.Key); err != nil {
			return nil, err
		}
		buf.WriteByte('{')
		for e, id := range s.roster {
			if e > 0 {
				buf.WriteByte(',')
			}
			if err := writeKey(&buf, id); err != nil {
				return nil, err
			}
			cell, err := json.Marshal(s.cells[d][e])
			if err != nil {
				return nil, err
			}
			buf.Write(cell)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeKey(buf *bytes.Buffer, key string) error {
	k, err := json.Marshal(key)
	if err != nil {
		return err
	}
	buf.Write(k)
	buf.WriteByte(':')
	return nil
}

// Result is the output of one generation.
type Result struct {
	ID         string      `json:"id"`
	Period     Period      `json:"period"`
	Roster     []string    `json:"roster"`
	Schedule   *Schedule   `json:"schedule"`
	Shortfalls []Shortfall `json:"shortfalls"`
}

// Err returns an error wrapping ErrQuotaShortfall when any day missed a
// target, nil otherwise.
func (r *Result) Err() error {
	if len(r.Shortfalls) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %d unmet targets, first on %s (%s)",
		ErrQuotaShortfall, len(r.Shortfalls), r.Shortfalls[0].Day, r.Shortfalls[0].Kind)
}

// RestShortfall reports whether day missed its rest target.
func (r *Result) RestShortfall(day string) bool {
	for _, s := range r.Shortfalls {
		if s.Day == day && s.Kind == ShortfallRest {
			return true
		}
	}
	return false
}

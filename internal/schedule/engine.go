package schedule

import "fmt"

const (
	// WeekdayRestTarget is how many employees rest on a weekday.
	WeekdayRestTarget = 2
	// WeekendOnDuty is how many employees stay on duty on a weekend day;
	// everyone else rests.
	WeekendOnDuty = 3
)

var roleShortfall = map[Label]ShortfallKind{
	LabelEarly:      ShortfallEarly,
	LabelCleaning:   ShortfallCleaning,
	LabelInspection: ShortfallInspection,
}

// Engine runs the four assignment phases. An Engine draws from one Source
// and must not be shared across concurrent generations.
type Engine struct {
	src Source
}

func NewEngine(src Source) *Engine {
	if src == nil {
		src = RandomSource()
	}
	return &Engine{src: src}
}

// run is the state of a single generation.
type run struct {
	table      *Table
	prefs      map[string]*PreferenceSet
	shortfalls []Shortfall
	src        Source
}

// Generate builds the schedule for in. Only invalid input fails; unmet
// targets are reported in Result.Shortfalls.
func (g *Engine) Generate(in Input) (*Result, error) {
	r, err := newRun(in, g.src)
	if err != nil {
		return nil, err
	}

	r.assignOffDays()
	r.assignPreferredDays()
	r.fillRestQuota()
	r.assignRoles()

	return &Result{
		Period:     in.Period,
		Roster:     r.table.Roster(),
		Schedule:   r.table.Schedule(),
		Shortfalls: r.shortfalls,
	}, nil
}

func newRun(in Input, src Source) (*run, error) {
	if err := validateRoster(in.Roster); err != nil {
		return nil, err
	}

	days, err := GenerateDays(in.Period)
	if err != nil {
		return nil, err
	}

	roster := append([]string(nil), in.Roster...)
	return &run{
		table:      NewTable(days, roster),
		prefs:      Normalize(roster, in.Preferred, in.Off, in.WeekendOff, WeekendKeys(days)),
		shortfalls: []Shortfall{},
		src:        src,
	}, nil
}

func validateRoster(roster []string) error {
	if len(roster) > MaxRosterSize {
		return ErrRosterTooLarge
	}
	seen := make(map[string]bool, len(roster))
	for _, id := range roster {
		if seen[id] {
			return fmt.Errorf("%w: %q", ErrDuplicateEmployee, id)
		}
		seen[id] = true
	}
	return nil
}

// assignOffDays locks every mandatory off day as rest. Cells already
// locked are left alone, so running it twice changes nothing.
func (r *run) assignOffDays() {
	for e, id := range r.table.Roster() {
		set := r.prefs[id]
		for key := range set.Off {
			d, ok := r.table.DayIndex(key)
			if !ok || r.table.Cell(d, e).Locked {
				continue
			}
			tag := TagOff
			if !set.Declared(key) {
				tag = TagNone
			}
			r.table.Set(d, e, LabelRest, true, tag)
		}
	}
}

// assignPreferredDays turns preferred days into unlocked rest. These cells
// count toward the rest quota of fillRestQuota.
func (r *run) assignPreferredDays() {
	for e, id := range r.table.Roster() {
		for key := range r.prefs[id].Preferred {
			d, ok := r.table.DayIndex(key)
			if !ok {
				continue
			}
			cell := r.table.Cell(d, e)
			if cell.Locked || cell.Label != LabelNone {
				continue
			}
			r.table.Set(d, e, LabelRest, false, TagPreferred)
		}
	}
}

func restTarget(day Day, employees int) int {
	if day.Weekend {
		return employees - WeekendOnDuty
	}
	return WeekdayRestTarget
}

// fillRestQuota walks fixed seven day windows from the first day of the
// period and tops each day up to its rest target.
func (r *run) fillRestQuota() {
	days := r.table.Days()
	roster := r.table.Roster()

	for weekStart := 0; weekStart < len(days); weekStart += daysPerWeek {
		week := weekStart / daysPerWeek
		for d := weekStart; d < weekStart+daysPerWeek && d < len(days); d++ {
			day := days[d]
			target := restTarget(day, len(roster))
			current := r.table.CountByLabel(d, LabelRest)
			if current >= target {
				continue
			}

			var candidates []int
			for e, id := range roster {
				if r.table.Cell(d, e).Label == LabelNone && !r.prefs[id].IsOff(day.Key) {
					candidates = append(candidates, e)
				}
			}

			// candidates[:drawn] hold earlier picks; each draw swaps its pick to the front of what remains.
			for drawn := 0; current < target; drawn++ {
				remaining := candidates[drawn:]
				if len(remaining) == 0 {
					r.shortfalls = append(r.shortfalls, Shortfall{
						Day: day.Key, Week: week, Kind: ShortfallRest, Want: target, Got: current,
					})
					break
				}

				i, _ := PickIndex(r.src, len(remaining))
				remaining[0], remaining[i] = remaining[i], remaining[0]
				r.table.Set(d, remaining[0], LabelRest, false, TagNone)
				current++
			}
		}
	}
}

// assignRoles gives early, cleaning and inspection to distinct employees
// who are not resting. A role with nobody left stays unassigned.
func (r *run) assignRoles() {
	days := r.table.Days()
	roster := r.table.Roster()

	for d, day := range days {
		var pool []int
		for e := range roster {
			if r.table.Cell(d, e).Label != LabelRest {
				pool = append(pool, e)
			}
		}

		for _, role := range Roles {
			var candidates []int
			for _, e := range pool {
				if !r.prefs[roster[e]].IsOff(day.Key) {
					candidates = append(candidates, e)
				}
			}
			if len(candidates) == 0 {
				r.shortfalls = append(r.shortfalls, Shortfall{
					Day: day.Key, Week: d / daysPerWeek, Kind: roleShortfall[role], Want: 1, Got: 0,
				})
				continue
			}

			e, _ := Pick(r.src, candidates)
			if cell := r.table.Cell(d, e); cell.Label == LabelNone && !cell.Locked {
				r.table.Set(d, e, role, false, TagNone)
			}
			pool = removeIndex(pool, e)
		}
	}
}

func removeIndex(pool []int, e int) []int {
	out := pool[:0]
	for _, x := range pool {
		if x != e {
			out = append(out, x)
		}
	}
	return out
}

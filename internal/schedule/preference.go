package schedule

// PreferenceSet holds the normalized day requests of one employee.
// Structural marks the subset of Off that comes from the weekend-off rule
// rather than from a declaration.
type PreferenceSet struct {
	Preferred  map[string]bool
	Off        map[string]bool
	Structural map[string]bool
}

func newPreferenceSet() *PreferenceSet {
	return &PreferenceSet{
		Preferred:  make(map[string]bool),
		Off:        make(map[string]bool),
		Structural: make(map[string]bool),
	}
}

// IsOff reports whether day is a mandatory off day, declared or structural.
func (p *PreferenceSet) IsOff(day string) bool {
	return p != nil && p.Off[day]
}

// Declared reports whether day was declared off by the caller.
func (p *PreferenceSet) Declared(day string) bool {
	return p.IsOff(day) && !p.Structural[day]
}

// Normalize builds a PreferenceSet for every roster member. Identifiers
// outside the roster are ignored. Employees listed in weekendOff get every
// key of weekendKeys merged into their off days.
func Normalize(roster []string, preferred, off map[string][]string, weekendOff []string, weekendKeys []string) map[string]*PreferenceSet {
	designated := make(map[string]bool, len(weekendOff))
	for _, id := range weekendOff {
		designated[id] = true
	}

	sets := make(map[string]*PreferenceSet, len(roster))
	for _, id := range roster {
		set := newPreferenceSet()
		for _, day := range preferred[id] {
			set.Preferred[day] = true
		}
		for _, day := range off[id] {
			set.Off[day] = true
		}
		if designated[id] {
			for _, day := range weekendKeys {
				if !set.Off[day] {
					set.Structural[day] = true
				}
				set.Off[day] = true
			}
		}
		sets[id] = set
	}
	return sets
}

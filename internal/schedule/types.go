package schedule

import (
	"encoding/json"
	"time"
)

// Label is the duty classification of an employee on a day.
type Label string

const (
	LabelNone       Label = "none"
	LabelRest       Label = "rest"
	LabelEarly      Label = "early"
	LabelCleaning   Label = "cleaning"
	LabelInspection Label = "inspection"
)

// Roles are assigned in this order every day.
var Roles = []Label{LabelEarly, LabelCleaning, LabelInspection}

var labelSymbols = map[Label]string{
	LabelNone:       "",
	LabelRest:       "公",
	LabelEarly:      "早",
	LabelCleaning:   "★",
	LabelInspection: "検",
}

// Symbol returns the short mark printed on rosters for the label.
func (l Label) Symbol() string {
	return labelSymbols[l]
}

func (l Label) IsRole() bool {
	return l == LabelEarly || l == LabelCleaning || l == LabelInspection
}

// Tag is a presentation marker. It never influences scheduling.
type Tag string

const (
	TagNone      Tag = ""
	TagOff       Tag = "off"
	TagPreferred Tag = "preferred"
)

type Cell struct {
	Label  Label
	Locked bool
	Tag    Tag
}

func (c Cell) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Label  Label  `json:"label"`
		Symbol string `json:"symbol"`
		Locked bool   `json:"locked"`
		Tag    Tag    `json:"tag,omitempty"`
	}{
		Label:  c.Label,
		Symbol: c.Label.Symbol(),
		Locked: c.Locked,
		Tag:    c.Tag,
	})
}

// Day is one calendar date of the period.
type Day struct {
	Key     string    `json:"key"`
	Date    time.Time `json:"-"`
	Weekend bool      `json:"weekend"`
}

// Input is everything one generation needs. Day keys use DayKeyLayout in
// the period's location.
type Input struct {
	Roster     []string
	Period     Period
	Preferred  map[string][]string
	Off        map[string][]string
	WeekendOff []string
}

type ShortfallKind string

const (
	ShortfallRest       ShortfallKind = "rest"
	ShortfallEarly      ShortfallKind = "early"
	ShortfallCleaning   ShortfallKind = "cleaning"
	ShortfallInspection ShortfallKind = "inspection"
)

// Shortfall reports a day whose target could not be met. It is a
// diagnostic, not a failure.
type Shortfall struct {
	Day  string        `json:"day"`
	Week int           `json:"week"`
	Kind ShortfallKind `json:"kind"`
	Want int           `json:"want"`
	Got  int           `json:"got"`
}

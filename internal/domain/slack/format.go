package slack

import (
	"fmt"
	"strings"

	"github.com/diegoclair/shift-roster/internal/domain"
	"github.com/diegoclair/shift-roster/internal/schedule"
)

const maxShortfallLines = 5

// FormatSchedule renders a result as one line per day: resting employees
// first, then each role holder.
func FormatSchedule(result *schedule.Result) string {
	s := result.Schedule
	days := s.Days()

	var b strings.Builder
	if len(days) > 0 {
		fmt.Fprintf(&b, "📅 *Duty roster %s to %s*\n\n", days[0].Key, days[len(days)-1].Key)
	}

	for d, day := range days {
		fmt.Fprintf(&b, "`%s %s`", day.Date.Format("01-02"), domain.WeekdayShortNames[day.Date.Weekday()])

		if rest := s.Holders(d, schedule.LabelRest); len(rest) > 0 {
			fmt.Fprintf(&b, "  %s %s", schedule.LabelRest.Symbol(), mentions(rest))
		}
		for _, role := range schedule.Roles {
			holder := "-"
			if ids := s.Holders(d, role); len(ids) > 0 {
				holder = mentions(ids)
			}
			fmt.Fprintf(&b, "  %s %s", role.Symbol(), holder)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "%s rest  %s early  %s cleaning  %s inspection\n",
		schedule.LabelRest.Symbol(), schedule.LabelEarly.Symbol(),
		schedule.LabelCleaning.Symbol(), schedule.LabelInspection.Symbol())

	if n := len(result.Shortfalls); n > 0 {
		var items []string
		for _, sf := range result.Shortfalls[:min(n, maxShortfallLines)] {
			items = append(items, fmt.Sprintf("%s %s (%d/%d)", sf.Day, sf.Kind, sf.Got, sf.Want))
		}
		fmt.Fprintf(&b, "\n⚠️ %d unmet targets: %s", n, strings.Join(items, ", "))
		if n > maxShortfallLines {
			fmt.Fprintf(&b, " and %d more", n-maxShortfallLines)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func EmptyRosterText() string {
	return "🤖 *Duty roster*\n\nNo members in the roster. Use `/roster add @user` to add team members!"
}

func mentions(ids []string) string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = fmt.Sprintf("<@%s>", id)
	}
	return strings.Join(out, " ")
}

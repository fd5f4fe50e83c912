package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/diegoclair/shift-roster/internal/schedule"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// preferences is the --input file. Roster and weekendOff are used when
// the matching flag is not set.
type preferences struct {
	Roster        []string            `json:"roster"`
	WeekendOff    []string            `json:"weekendOff"`
	PreferredDays map[string][]string `json:"preferredDays"`
	OffDays       map[string][]string `json:"offDays"`
}

type generateOptions struct {
	roster     string
	weekendOff string
	month      string
	start      string
	days       int
	offset     string
	input      string
	seed       uint64
	strict     bool
}

var errStrict = errors.New("roster has unmet targets")

func main() {
	root := &cobra.Command{
		Use:           "rostergen",
		Short:         "Generate monthly duty rosters from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newGenerateCmd(os.Stdout))

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newGenerateCmd(out io.Writer) *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a generated roster as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			seeded := cmd.Flags().Changed("seed")
			return runGenerate(out, opts, seeded)
		},
	}

	cmd.Flags().StringVar(&opts.roster, "roster", "", "Comma separated employee IDs in roster order")
	cmd.Flags().StringVar(&opts.weekendOff, "weekend-off", "", "Comma separated employees with every weekend off")
	cmd.Flags().StringVar(&opts.month, "month", "", "Month to generate (YYYY-MM)")
	cmd.Flags().StringVar(&opts.start, "start", "", "First day (YYYY-MM-DD), used with --days")
	cmd.Flags().IntVar(&opts.days, "days", 0, "Number of days from --start")
	cmd.Flags().StringVar(&opts.offset, "offset", "+09:00", "UTC offset for day keys and weekends")
	cmd.Flags().StringVar(&opts.input, "input", "", "JSON file with preferredDays and offDays")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "Seed for a reproducible roster")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Exit non-zero when any target is unmet")
	cmd.MarkFlagsMutuallyExclusive("month", "start")

	return cmd
}

func runGenerate(out io.Writer, opts generateOptions, seeded bool) error {
	var prefs preferences
	if opts.input != "" {
		data, err := os.ReadFile(opts.input)
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		if err := json.Unmarshal(data, &prefs); err != nil {
			return fmt.Errorf("failed to parse input: %w", err)
		}
	}

	in, err := buildInput(opts, prefs, time.Now())
	if err != nil {
		return err
	}

	src := schedule.RandomSource()
	if seeded {
		src = schedule.NewSource(opts.seed)
	}

	result, err := schedule.NewEngine(src).Generate(in)
	if err != nil {
		return err
	}
	result.ID = uuid.NewString()

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return err
	}

	if opts.strict && result.Err() != nil {
		return fmt.Errorf("%w: %v", errStrict, result.Err())
	}
	return nil
}

func buildInput(opts generateOptions, prefs preferences, now time.Time) (schedule.Input, error) {
	loc, err := schedule.ParseOffset(opts.offset)
	if err != nil {
		return schedule.Input{}, err
	}

	period, err := schedule.ResolvePeriod(opts.month, opts.start, opts.days, loc, now)
	if err != nil {
		return schedule.Input{}, err
	}

	roster := prefs.Roster
	if opts.roster != "" {
		roster = splitList(opts.roster)
	}
	if len(roster) == 0 {
		return schedule.Input{}, errors.New("--roster is required")
	}

	weekendOff := prefs.WeekendOff
	if opts.weekendOff != "" {
		weekendOff = splitList(opts.weekendOff)
	}

	return schedule.Input{
		Roster:     roster,
		Period:     period,
		Preferred:  prefs.PreferredDays,
		Off:        prefs.OffDays,
		WeekendOff: weekendOff,
	}, nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

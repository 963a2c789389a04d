package commands

import (
	"fmt"
	"sort"

	"github.com/2beens/gymdash/internal/analytics"

	"github.com/spf13/cobra"
)

type statsOutput struct {
	Period analytics.Period `json:"period"`
	analytics.Stats
	TotalVolume  float64        `json:"totalVolume"`
	MuscleGroups map[string]int `json:"muscleGroups"`
	Consistency  float64        `json:"consistency"`
}

// NewStatsCommand creates the stats command
func NewStatsCommand(opts *rootOptions) *cobra.Command {
	var period string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show totals, averages and exercise frequency",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := analytics.ParsePeriod(period)
			if err != nil {
				return err
			}
			all, err := opts.loadWorkouts()
			if err != nil {
				return err
			}
			engine, c, err := opts.engine()
			if err != nil {
				return err
			}

			now := opts.now()
			ws := analytics.FilterByPeriod(all, p, now)
			cfg := engine.Config()
			out := statsOutput{
				Period:       p,
				Stats:        analytics.ComputeStats(ws),
				TotalVolume:  analytics.TotalVolume(ws),
				MuscleGroups: analytics.ComputeMuscleGroupDistribution(ws, c),
				Consistency:  analytics.ComputeConsistency(all, now, cfg.ConsistencyWindowDays, cfg.TargetFrequencyDays),
			}

			w := cmd.OutOrStdout()
			if opts.jsonOutput {
				return printJSON(w, out)
			}

			fmt.Fprintf(w, "Period: %s\n", out.Period)
			fmt.Fprintf(w, "Workouts: %d\n", out.TotalWorkouts)
			fmt.Fprintf(w, "Total duration: %d min\n", out.TotalDurationMinutes)
			fmt.Fprintf(w, "Average duration: %d min\n", out.AverageDurationMinutes)
			fmt.Fprintf(w, "Total volume: %.0f\n", out.TotalVolume)
			fmt.Fprintf(w, "Consistency: %.0f%%\n", out.Consistency*100)

			if len(out.ExerciseFrequency) > 0 {
				fmt.Fprintln(w, "Exercises:")
				for _, name := range sortedKeys(out.ExerciseFrequency) {
					fmt.Fprintf(w, "  %s: %d\n", name, out.ExerciseFrequency[name])
				}
			}
			if len(out.MuscleGroups) > 0 {
				fmt.Fprintln(w, "Muscle groups:")
				for _, name := range sortedKeys(out.MuscleGroups) {
					fmt.Fprintf(w, "  %s: %d\n", name, out.MuscleGroups[name])
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&period, "period", "p", string(analytics.PeriodAllTime), "week, month, quarter, year or all_time")
	return cmd
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

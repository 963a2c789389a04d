package commands

import (
	"fmt"

	"github.com/2beens/gymdash/internal/progress"
	"github.com/2beens/gymdash/pkg"

	"github.com/spf13/cobra"
)

type progressOutput struct {
	Exercise          string                   `json:"exercise"`
	Series            []progress.ProgressPoint `json:"series"`
	PersonalRecord    *progress.ProgressPoint  `json:"personalRecord"`
	RecentImprovement float64                  `json:"recentImprovement"`
	Trend             progress.Trend           `json:"trend"`
}

// NewProgressCommand creates the progress command
func NewProgressCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "progress <exercise>",
		Short: "Show the weight progression and personal record of one exercise",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exercise := args[0]
			ws, err := opts.loadWorkouts()
			if err != nil {
				return err
			}

			out := progressOutput{
				Exercise: exercise,
				Series:   progress.BuildProgressSeries(ws)[exercise],
			}
			if out.Series == nil {
				out.Series = make([]progress.ProgressPoint, 0)
			}
			if pr, ok := progress.PersonalRecord(exercise, ws); ok {
				out.PersonalRecord = &pr
			}
			out.RecentImprovement = progress.RecentImprovement(exercise, ws)
			out.Trend = progress.ClassifyChange(out.RecentImprovement)

			w := cmd.OutOrStdout()
			if opts.jsonOutput {
				return printJSON(w, out)
			}

			if len(out.Series) == 0 {
				fmt.Fprintf(w, "No entries for %s\n", exercise)
				return nil
			}

			fmt.Fprintf(w, "%s\n", exercise)
			for _, p := range out.Series {
				fmt.Fprintf(w, "  %s  %g (volume %.0f)\n", p.Date.UTC().Format(pkg.DateLayout), p.Weight, p.Volume)
			}
			fmt.Fprintf(w, "Personal record: %g on %s\n", out.PersonalRecord.Weight, out.PersonalRecord.Date.UTC().Format(pkg.DateLayout))
			fmt.Fprintf(w, "Recent change: %+g (%s)\n", out.RecentImprovement, out.Trend)
			return nil
		},
	}
}

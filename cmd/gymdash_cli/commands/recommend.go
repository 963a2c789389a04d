package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRecommendCommand creates the recommend command
func NewRecommendCommand(opts *rootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Show training recommendations, highest priority first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 0 {
				return fmt.Errorf("invalid limit: %d", limit)
			}
			ws, err := opts.loadWorkouts()
			if err != nil {
				return err
			}
			engine, _, err := opts.engine()
			if err != nil {
				return err
			}

			recs := engine.Generate(ws, opts.now())
			if limit > 0 && len(recs) > limit {
				recs = recs[:limit]
			}

			w := cmd.OutOrStdout()
			if opts.jsonOutput {
				return printJSON(w, recs)
			}

			if len(recs) == 0 {
				fmt.Fprintln(w, "No recommendations, keep it up")
				return nil
			}
			for i, rec := range recs {
				fmt.Fprintf(w, "%d. [%s] %s (%d%%)\n", i+1, rec.Priority, rec.Title, rec.Confidence)
				fmt.Fprintf(w, "   %s\n", rec.Description)
				fmt.Fprintf(w, "   -> %s\n", rec.Action)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "max number of recommendations (0 = all)")
	return cmd
}
